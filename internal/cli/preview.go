package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quietzone/ean13/pkg/ean13"
	"github.com/spf13/cobra"
)

// previewCommand creates the preview command for interactive terminal preview.
func (c *CLI) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview [code]",
		Short: "Interactively preview an EAN-13 bar pattern in the terminal",
		Long: `Interactively preview an EAN-13 bar pattern in the terminal.

Type digits to build up a code; the bar pattern, check digit, and
validity update on every keystroke. Press enter or esc to leave.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := ""
			if len(args) == 1 {
				initial = args[0]
			}
			_, err := tea.NewProgram(newPreviewModel(initial)).Run()
			return err
		},
	}
}

// previewModel is the bubbletea model for the live preview.
type previewModel struct {
	digits string // typed digits, at most 13
}

func newPreviewModel(initial string) previewModel {
	digits := keepDigits(initial)
	if len(digits) > 13 {
		digits = digits[:13]
	}
	return previewModel{digits: digits}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "enter", "q":
			return m, tea.Quit
		case "backspace":
			if len(m.digits) > 0 {
				m.digits = m.digits[:len(m.digits)-1]
			}
		default:
			s := msg.String()
			if len(s) == 1 && s[0] >= '0' && s[0] <= '9' && len(m.digits) < 13 {
				m.digits += s
			}
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("EAN-13 preview") + "\n\n")
	b.WriteString(StyleValue.Render(m.digits) + StyleDim.Render(strings.Repeat("·", 13-len(m.digits))) + "\n\n")

	switch {
	case len(m.digits) < 12:
		b.WriteString(StyleDim.Render(fmt.Sprintf("%d more digit(s) needed", 12-len(m.digits))) + "\n")
	case len(m.digits) == 12:
		check := ean13.CalculateChecksum(m.digits)
		b.WriteString(StyleSuccess.Render(fmt.Sprintf("check digit: %d", check)) + "\n\n")
		b.WriteString(m.bars(m.digits))
	default: // 13
		if ean13.Validate(m.digits) {
			b.WriteString(StyleSuccess.Render("valid") + "\n\n")
			b.WriteString(m.bars(m.digits))
		} else {
			want := ean13.CalculateChecksum(m.digits[:12])
			b.WriteString(StyleWarning.Render(fmt.Sprintf("invalid: check digit should be %d", want)) + "\n")
		}
	}

	b.WriteString("\n" + StyleDim.Render("type digits · backspace to edit · enter to quit") + "\n")
	return b.String()
}

// bars renders the pattern for the current digits, quietly skipping
// codes the encoder rejects.
func (m previewModel) bars(code string) string {
	res, err := ean13.Encode(code)
	if err != nil {
		return ""
	}
	return asciiBars(res.Encoding) + "\n" + StyleDim.Render(res.FullCode) + "\n"
}

func keepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}
