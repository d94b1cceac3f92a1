// Package ean13 implements the EAN-13 barcode symbology.
//
// It provides the GS1 mod-10 checksum, code validation, and generation of
// the 95-module bar pattern from the standard L/G/R code tables. All
// functions are pure: identical input always yields identical output, and
// the lookup tables are package-private constants that are never mutated.
//
// A code may be supplied with 12 or 13 digits. With 12 digits the check
// digit is computed and appended; with 13 it must already be correct.
// Non-digit characters (hyphens, spaces) are stripped before any other
// processing, so "978-0-201-37962-4" and "9780201379624" are equivalent.
package ean13

import (
	"strings"

	"github.com/quietzone/ean13/pkg/errors"
)

// PatternWidth is the number of modules in an EAN-13 symbol:
// start guard + six 7-module left digits + center guard + six 7-module
// right digits + end guard.
const PatternWidth = 3 + 7*6 + 5 + 7*6 + 3 // = 95

const (
	startGuard  = "101"
	centerGuard = "01010"
	endGuard    = "101"
)

// lCodes and gCodes encode the six left-side digits; which of the two
// tables applies per position is selected by the structure pattern for
// the code's first digit. rCodes encode the six right-side digits.
var lCodes = [10]string{
	"0001101", "0011001", "0010011", "0111101", "0100011",
	"0110001", "0101111", "0111011", "0110111", "0001011",
}

var gCodes = [10]string{
	"0100111", "0110011", "0011011", "0100001", "0011101",
	"0111001", "0000101", "0010001", "0001001", "0010111",
}

var rCodes = [10]string{
	"1110010", "1100110", "1101100", "1000010", "1011100",
	"1001110", "1010000", "1000100", "1001000", "1110100",
}

// structures is the GS1 parity table: for each possible first digit, the
// L/G encoding choice for the six left-side digits.
var structures = [10]string{
	"LLLLLL", "LLGLGG", "LLGGLG", "LLGGGL", "LGLLGG",
	"LGGLLG", "LGGGLL", "LGLGLG", "LGLGGL", "LGGLGL",
}

// Result is the outcome of encoding a code.
type Result struct {
	// Encoding is the 95-character module string over {0,1}.
	// '1' is an inked module, '0' is background.
	Encoding string

	// FullCode is the normalized 13-digit code that was encoded,
	// including an auto-appended check digit when 12 digits were given.
	FullCode string
}

// CalculateChecksum computes the GS1 mod-10 check digit for the first 12
// characters of code12. Digits are weighted 1,3,1,3,... starting at
// weight 1 for index 0.
//
// The input is assumed to be 12 numeric characters; each character is
// parsed independently, so non-digit input produces a meaningless value
// rather than an error. Encode and Validate strip non-digits before
// calling this.
func CalculateChecksum(code12 string) int {
	sum := 0
	for i := 0; i < 12; i++ {
		d := int(code12[i] - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return (10 - sum%10) % 10
}

// Validate reports whether code is a well-formed EAN-13 code after
// stripping non-digit characters.
//
// A 13-digit code validates when its last digit matches the checksum of
// the first 12. A 12-digit code always validates: the check digit is not
// present, so there is nothing to verify against. Any other length is
// invalid.
func Validate(code string) bool {
	digits := stripNonDigits(code)
	switch len(digits) {
	case 12:
		return true
	case 13:
		return CalculateChecksum(digits[:12]) == int(digits[12]-'0')
	default:
		return false
	}
}

// Encode converts code into its 95-module bar pattern.
//
// Non-digits are stripped first. A 12-digit code gets its check digit
// appended; anything that does not reduce to 13 digits fails with
// errors.ErrCodeInvalidCodeLength. The returned FullCode is the exact
// 13-digit string the pattern encodes.
func Encode(code string) (Result, error) {
	digits := stripNonDigits(code)
	if len(digits) == 12 {
		digits += string(rune('0' + CalculateChecksum(digits)))
	}
	if len(digits) != 13 {
		return Result{}, errors.New(errors.ErrCodeInvalidCodeLength,
			"code must have 12 or 13 digits, got %d", len(digits))
	}

	structure := structures[digits[0]-'0']

	var b strings.Builder
	b.Grow(PatternWidth)
	b.WriteString(startGuard)
	for i := 1; i <= 6; i++ {
		d := digits[i] - '0'
		if structure[i-1] == 'G' {
			b.WriteString(gCodes[d])
		} else {
			b.WriteString(lCodes[d])
		}
	}
	b.WriteString(centerGuard)
	for i := 7; i <= 12; i++ {
		b.WriteString(rCodes[digits[i]-'0'])
	}
	b.WriteString(endGuard)

	return Result{Encoding: b.String(), FullCode: digits}, nil
}

func stripNonDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}
