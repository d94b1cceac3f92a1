package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quietzone/ean13/pkg/ean13"
	"github.com/quietzone/ean13/pkg/errors"
)

// checkCommand creates the check command for validating codes.
func (c *CLI) checkCommand() *cobra.Command {
	var showBars bool

	cmd := &cobra.Command{
		Use:   "check <code>",
		Short: "Validate an EAN-13 code and show its check digit",
		Long: `Validate an EAN-13 code and show its check digit.

A 12-digit code is always accepted and the check digit is computed for
it. A 13-digit code is verified against its check digit. The command
exits non-zero for invalid codes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(args[0], showBars)
		},
	}

	cmd.Flags().BoolVar(&showBars, "bars", false, "print the 95-module bar pattern")

	return cmd
}

func (c *CLI) runCheck(code string, showBars bool) error {
	if !ean13.Validate(code) {
		res, err := ean13.Encode(code)
		if err != nil {
			printError("%s is not a valid EAN-13 code", code)
			return err
		}
		// 13 digits with a bad check digit: show the expected one.
		want := ean13.CalculateChecksum(res.FullCode[:12])
		printError("checksum mismatch: last digit of %s should be %d", res.FullCode, want)
		return errors.New(errors.ErrCodeInvalidChecksum, "check digit should be %d", want)
	}

	res, err := ean13.Encode(code)
	if err != nil {
		return err
	}

	printSuccess("%s is a valid EAN-13 code", StyleHighlight.Render(res.FullCode))
	if len(keepDigits(code)) == 12 {
		printInfo("check digit %c computed and appended", res.FullCode[12])
	}
	printKeyValue("Code", res.FullCode)
	printKeyValue("Check digit", string(res.FullCode[12]))
	printKeyValue("ISBN", ean13.FormatISBN(res.FullCode))

	if showBars {
		fmt.Println()
		fmt.Println(asciiBars(res.Encoding))
	}
	return nil
}
