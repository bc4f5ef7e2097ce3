package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/keyforge/internal/app"
	"github.com/MKhiriev/keyforge/internal/surface"
)

const maskedSecret = "••••••••••••  (ctrl+r to show)"

// renderResult draws the shown content with one copy control per artifact.
// The control of the artifact copied last shows the confirmation instead.
func renderResult(c surface.Content, reveal bool, copied string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(c.Title))
	b.WriteString("\n")

	for i, a := range c.Artifacts {
		control := helpStyle.Render(fmt.Sprintf("[alt+%d copy]", i+1))
		if a.ID == copied {
			control = successStyle.Render(app.MsgCopied)
		}

		b.WriteString("\n")
		b.WriteString(a.Label + "  " + control + "\n")
		text := strings.TrimRight(a.Text, "\n")
		if a.Secret && !reveal {
			text = maskedSecret
		}
		b.WriteString(text + "\n")
	}

	if len(c.Details) > 0 {
		b.WriteString("\n")
		for _, d := range c.Details {
			b.WriteString(labelStyle.Render(d.Label) + d.Value + "\n")
		}
	}

	if c.Warning != "" {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render("Note: " + c.Warning))
		b.WriteString("\n")
	}

	return resultBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}
