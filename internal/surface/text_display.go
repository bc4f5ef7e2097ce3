package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	textTitleStyle   = lipgloss.NewStyle().Bold(true)
	textLabelStyle   = lipgloss.NewStyle().Faint(true)
	textWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	textErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// TextDisplay prints shown results and errors to a writer. It is used by the
// non-interactive command line.
type TextDisplay struct {
	out io.Writer
	err io.Writer
}

// NewTextDisplay returns a TextDisplay writing results to out and errors to
// errOut.
func NewTextDisplay(out, errOut io.Writer) *TextDisplay {
	return &TextDisplay{out: out, err: errOut}
}

// Cleared implements [Display]. Printed output cannot be taken back, so it
// does nothing.
func (d *TextDisplay) Cleared() {}

// Shown implements [Display].
func (d *TextDisplay) Shown(c Content) {
	_, _ = fmt.Fprintln(d.out, FormatContent(c))
}

// Errored implements [Display].
func (d *TextDisplay) Errored(message string) {
	_, _ = fmt.Fprintln(d.err, textErrorStyle.Render("Error: ")+message)
}

// FormatContent renders c as plain text blocks.
func FormatContent(c Content) string {
	var b strings.Builder

	b.WriteString(textTitleStyle.Render(c.Title))
	b.WriteString("\n")

	for _, a := range c.Artifacts {
		b.WriteString("\n")
		b.WriteString(textLabelStyle.Render(a.Label + ":"))
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(a.Text, "\n"))
		b.WriteString("\n")
	}

	if len(c.Details) > 0 {
		b.WriteString("\n")
		for _, d := range c.Details {
			b.WriteString(textLabelStyle.Render(d.Label+": ") + d.Value + "\n")
		}
	}

	if c.Warning != "" {
		b.WriteString("\n")
		b.WriteString(textWarningStyle.Render("Warning: " + c.Warning))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
