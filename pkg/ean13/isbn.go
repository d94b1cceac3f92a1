package ean13

// FormatISBN hyphenates a 13-digit code into the fixed 3-1-2-6-1 grouping
// used for Bookland codes, e.g. "9780201379624" -> "978-0-20-137962-4".
//
// Real ISBN hyphenation depends on per-agency registration group tables;
// this fixed split is a cosmetic approximation and is applied regardless
// of the actual publisher prefix. Input of any other length is returned
// unchanged.
func FormatISBN(code13 string) string {
	if len(code13) != 13 {
		return code13
	}
	return code13[:3] + "-" + code13[3:4] + "-" + code13[4:6] + "-" +
		code13[6:12] + "-" + code13[12:]
}
