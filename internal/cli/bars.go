package cli

import "strings"

// barRows is the height of the terminal bar pattern in text rows.
const barRows = 4

// asciiBars renders a module string as full-block characters, one column
// per module. Guard bars get an extra row, mirroring the printed symbol.
func asciiBars(encoding string) string {
	var b strings.Builder
	for row := 0; row < barRows; row++ {
		for i := 0; i < len(encoding); i++ {
			if encoding[i] == '1' {
				b.WriteRune('█')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	// Guard extension row: only the start, center, and end guards.
	for i := 0; i < len(encoding); i++ {
		if encoding[i] == '1' && isGuardIndex(i) {
			b.WriteRune('█')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// isGuardIndex mirrors the layout engine's guard ranges: start guard,
// center guard after the 42 left modules, end guard.
func isGuardIndex(i int) bool {
	return i < 3 || (i >= 45 && i < 50) || i >= 92
}
