package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	iconHidden   = "◉"
	iconRevealed = "○"
)

// secretField is a text input whose echo can be switched between obscured
// and plain. It only changes rendering; the value is never touched.
type secretField struct {
	input    textinput.Model
	revealed bool
}

func newSecretField(placeholder string) secretField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	return secretField{input: in}
}

// Toggle flips between obscured and plain echo.
func (s *secretField) Toggle() {
	s.revealed = !s.revealed
	if s.revealed {
		s.input.EchoMode = textinput.EchoNormal
		return
	}
	s.input.EchoMode = textinput.EchoPassword
}

// Icon returns the eye marker paired with the current echo mode.
func (s secretField) Icon() string {
	if s.revealed {
		return iconRevealed
	}
	return iconHidden
}
