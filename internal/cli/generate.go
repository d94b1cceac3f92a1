package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quietzone/ean13/pkg/ean13"
	"github.com/quietzone/ean13/pkg/errors"
	"github.com/quietzone/ean13/pkg/render"
	"github.com/quietzone/ean13/pkg/render/sink"
)

// generateCommand creates the generate command for rendering barcode images.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output      string
		formatsStr  string
		profileName string
		configPath  string
		background  string
		foreground  string
	)
	opts := render.Defaults()

	cmd := &cobra.Command{
		Use:   "generate <code>",
		Short: "Render an EAN-13 barcode to PNG or SVG",
		Long: `Render an EAN-13 barcode to PNG or SVG.

The code may have 12 digits (the check digit is computed and appended)
or 13 digits. Non-digit separators such as hyphens are ignored.

Geometry flags override profile values, which override the defaults.
Profiles are named option sets in ` + "`~/.config/ean13/config.toml`" + `:

    [profile.retail]
    module_width = 3
    height = 80`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := parseFormats(formatsStr)
			if err != nil {
				return err
			}
			if background != "" {
				if opts.Background, err = parseHexColor(background); err != nil {
					return err
				}
			}
			if foreground != "" {
				if opts.Foreground, err = parseHexColor(foreground); err != nil {
					return err
				}
			}
			if profileName != "" {
				path := configPath
				if path == "" {
					path = defaultConfigPath()
				}
				profile, err := loadProfile(path, profileName)
				if err != nil {
					return err
				}
				if err := profile.apply(&opts, cmd.Flags().Changed); err != nil {
					return err
				}
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runGenerate(ctx, args[0], opts, formats, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "png", "output format(s): png, svg (comma-separated)")
	cmd.Flags().StringVar(&profileName, "profile", "", "named option profile from the config file")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/ean13/config.toml)")

	// Geometry flags
	cmd.Flags().Float64Var(&opts.ModuleWidth, "module-width", opts.ModuleWidth, "width of one module in px")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "data bar height in px")
	cmd.Flags().Float64Var(&opts.GuardExtend, "guard-extend", opts.GuardExtend, "extra guard bar height in px")
	cmd.Flags().Float64Var(&opts.FontSize, "font-size", opts.FontSize, "digit glyph size in px")
	cmd.Flags().Float64Var(&opts.TextMargin, "text-margin", opts.TextMargin, "gap between bars and digits in px")
	cmd.Flags().Float64Var(&opts.QuietZone, "quiet-zone", opts.QuietZone, "blank margin either side of the symbol in px")
	cmd.Flags().Float64Var(&opts.SideDigitGap, "side-digit-gap", opts.SideDigitGap, "gap between first digit and start guard in px")
	cmd.Flags().Float64Var(&opts.PaddingTop, "padding-top", opts.PaddingTop, "top padding in px")
	cmd.Flags().Float64Var(&opts.PaddingRight, "padding-right", opts.PaddingRight, "right padding in px")
	cmd.Flags().Float64Var(&opts.PaddingBottom, "padding-bottom", opts.PaddingBottom, "bottom padding in px")
	cmd.Flags().Float64Var(&opts.PaddingLeft, "padding-left", opts.PaddingLeft, "left padding in px")
	cmd.Flags().StringVar(&background, "background", "", "background color (#rrggbb)")
	cmd.Flags().StringVar(&foreground, "foreground", "", "bar and digit color (#rrggbb)")
	cmd.Flags().BoolVar(&opts.ISBNMode, "isbn", opts.ISBNMode, "draw an ISBN caption above the symbol")
	cmd.Flags().Float64Var(&opts.ISBNFontSize, "isbn-font-size", opts.ISBNFontSize, "ISBN caption glyph size in px")

	return cmd
}

// runGenerate renders the code in every requested format.
func (c *CLI) runGenerate(ctx context.Context, code string, opts render.Options, formats []string, output string) error {
	logger := loggerFromContext(ctx)

	res, err := ean13.Encode(code)
	if err != nil {
		return err
	}
	logger.Debug("encoded", "code", res.FullCode, "modules", len(res.Encoding))

	prog := newProgress(logger)
	var written []string
	for _, format := range formats {
		path := outputPath(output, res.FullCode, format, len(formats) > 1)

		var data []byte
		switch format {
		case "png":
			data, err = sink.EncodePNG(code, opts)
		case "svg":
			var doc string
			doc, err = sink.SVG(code, opts)
			data = []byte(doc)
		}
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeFileWrite, err, "write %s", path)
		}
		written = append(written, path)
	}
	prog.done(fmt.Sprintf("Rendered %s", res.FullCode))

	printSuccess("Generated %s", StyleHighlight.Render(res.FullCode))
	for _, path := range written {
		printFile(path)
	}
	return nil
}

// parseFormats splits and validates the --format value.
func parseFormats(s string) ([]string, error) {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		if f != "png" && f != "svg" {
			return nil, errors.New(errors.ErrCodeUnsupportedFormat, "unsupported format %q, want png or svg", f)
		}
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		formats = []string{"png"}
	}
	return formats, nil
}

// outputPath picks the file path for one rendered format. With multiple
// formats the extension of the base path is replaced per format.
func outputPath(output, fullCode, format string, multi bool) string {
	if output == "" {
		return fullCode + "." + format
	}
	if multi {
		base := strings.TrimSuffix(output, filepath.Ext(output))
		return base + "." + format
	}
	return output
}
