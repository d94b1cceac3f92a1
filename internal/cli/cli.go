// Package cli implements the ean13 command-line interface.
//
// This package provides commands for generating EAN-13 barcode images,
// validating codes, and previewing symbols in the terminal. The CLI is
// built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Render a code to PNG or SVG files
//   - check: Validate a code and show its check digit
//   - preview: Interactive terminal preview of the bar pattern
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/quietzone/ean13/pkg/buildinfo"
)

// appName is the application name used for config paths and display.
const appName = "ean13"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "ean13 encodes and renders EAN-13 barcodes",
		Long:          `ean13 is a CLI tool for encoding product codes into the EAN-13 symbology and rendering them as PNG or SVG images with GS1-compliant digit placement.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}
