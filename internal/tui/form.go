package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/keyforge/internal/options"
	"github.com/MKhiriev/keyforge/internal/validators"
	"github.com/MKhiriev/keyforge/models"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldSecret
	fieldSelect
	fieldToggle
)

type formField struct {
	name  string
	label string
	kind  fieldKind

	input  textinput.Model
	secret secretField

	choices  []options.Option
	selected int
	// primary selects drive the choices of the dependent select
	primary   bool
	dependent bool

	on bool

	preview bool
}

func (f *formField) value() string {
	switch f.kind {
	case fieldText:
		return f.input.Value()
	case fieldSecret:
		return f.secret.input.Value()
	case fieldSelect:
		if f.selected < 0 || f.selected >= len(f.choices) {
			return ""
		}
		return f.choices[f.selected].Value
	case fieldToggle:
		return strconv.FormatBool(f.on)
	}
	return ""
}

func (f *formField) focus() tea.Cmd {
	switch f.kind {
	case fieldText:
		return f.input.Focus()
	case fieldSecret:
		return f.secret.input.Focus()
	}
	return nil
}

func (f *formField) blur() {
	switch f.kind {
	case fieldText:
		f.input.Blur()
	case fieldSecret:
		f.secret.input.Blur()
	}
}

func textField(name, label, placeholder, initial string) *formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = 40
	in.CharLimit = 256
	in.SetValue(initial)
	return &formField{name: name, label: label, kind: fieldText, input: in}
}

func secretInput(name, label string) *formField {
	return &formField{name: name, label: label, kind: fieldSecret, secret: newSecretField("optional")}
}

func selectField(name, label string, choices []options.Option, def string) *formField {
	f := &formField{name: name, label: label, kind: fieldSelect}
	f.replaceChoices(choices, def)
	return f
}

func toggleField(name, label string, on bool) *formField {
	return &formField{name: name, label: label, kind: fieldToggle, on: on}
}

// replaceChoices drops every previous choice and selects def.
func (f *formField) replaceChoices(choices []options.Option, def string) {
	f.choices = choices
	f.selected = 0
	for i, c := range choices {
		if c.Value == def {
			f.selected = i
			break
		}
	}
}

// generationForm is the input form of one mode.
type generationForm struct {
	mode   models.Mode
	fields []*formField
	focus  int
}

func newGenerationForm(mode models.Mode) generationForm {
	f := generationForm{mode: mode}

	switch mode {
	case models.ModePassphrase:
		f.fields = []*formField{
			textField(models.FieldLength, "Length", "8-64", strconv.Itoa(validators.DefaultPassphraseLength)),
			toggleField(models.FieldIncludeNumbers, "Numbers", true),
			toggleField(models.FieldIncludeSpecial, "Special chars", true),
			textField(models.FieldExcludeChars, "Exclude", "characters to leave out", ""),
		}

	case models.ModeSSHKey:
		f.fields = []*formField{
			primarySelect(mode),
			{name: models.FieldKeySize, label: "Key size", kind: fieldSelect, dependent: true},
			textField(models.FieldComment, "Comment", "letters, digits, . _ -", ""),
			secretInput(models.FieldPassphrase, "Passphrase"),
		}

	case models.ModeRSAKey:
		f.fields = []*formField{
			selectField(models.FieldKeySize, "Key size", options.RSAKeySizes(), options.RSADefaultKeySize()),
			textField(models.FieldComment, "Comment", "letters, digits, . _ -", ""),
			secretInput(models.FieldPassphrase, "Passphrase"),
		}

	case models.ModePGPKey:
		comment := textField(models.FieldComment, "Comment", "optional", "")
		comment.preview = true
		f.fields = []*formField{
			textField(models.FieldName, "Name", "required", ""),
			textField(models.FieldEmail, "Email", "required", ""),
			comment,
			primarySelect(mode),
			{name: models.FieldKeyLength, label: "Key length", kind: fieldSelect, dependent: true},
			textField(models.FieldExpireTime, "Expires", "0 = never, or 30d, 2w, 6m, 1y", validators.DefaultExpireTime),
			secretInput(models.FieldPassphrase, "Passphrase"),
		}
	}

	if _, _, def, ok := options.Primary(mode); ok {
		f.populate(def)
	}
	if len(f.fields) > 0 {
		f.fields[0].focus()
	}
	return f
}

func primarySelect(mode models.Mode) *formField {
	field, choices, def, _ := options.Primary(mode)
	f := selectField(field, "Key type", choices, def)
	f.primary = true
	return f
}

// populate rebuilds the dependent select for a primary selection.
func (f *generationForm) populate(primary string) {
	dep, err := options.DependentFor(f.mode, primary)
	if err != nil {
		return
	}
	for _, field := range f.fields {
		if !field.dependent {
			continue
		}
		field.name = dep.Field
		field.label = dependentLabel(dep.Field)
		field.replaceChoices(dep.Options, dep.Default)
	}
}

func dependentLabel(field string) string {
	switch field {
	case models.FieldCurve:
		return "Curve"
	case models.FieldKeyLength:
		return "Key length"
	default:
		return "Key size"
	}
}

// Values returns the raw form values keyed by field name.
func (f generationForm) Values() models.FormValues {
	out := make(models.FormValues, len(f.fields))
	for _, field := range f.fields {
		out[field.name] = field.value()
	}
	return out
}

func (f *generationForm) focused() *formField {
	if f.focus < 0 || f.focus >= len(f.fields) {
		return nil
	}
	return f.fields[f.focus]
}

func (f *generationForm) move(delta int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	f.fields[f.focus].blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	return f.fields[f.focus].focus()
}

// cycle moves the selection of the focused select field.
func (f *generationForm) cycle(delta int) bool {
	field := f.focused()
	if field == nil || field.kind != fieldSelect || len(field.choices) == 0 {
		return false
	}
	field.selected = (field.selected + delta + len(field.choices)) % len(field.choices)
	if field.primary {
		f.populate(field.value())
	}
	return true
}

// flip switches the focused toggle field.
func (f *generationForm) flip() bool {
	field := f.focused()
	if field == nil || field.kind != fieldToggle {
		return false
	}
	field.on = !field.on
	return true
}

// toggleSecret switches the echo of the focused secret field.
func (f *generationForm) toggleSecret() bool {
	field := f.focused()
	if field == nil || field.kind != fieldSecret {
		return false
	}
	field.secret.Toggle()
	return true
}

// input forwards msg to the focused text input.
func (f *generationForm) input(msg tea.Msg) tea.Cmd {
	field := f.focused()
	if field == nil {
		return nil
	}

	var cmd tea.Cmd
	switch field.kind {
	case fieldText:
		field.input, cmd = field.input.Update(msg)
	case fieldSecret:
		field.secret.input, cmd = field.secret.input.Update(msg)
	}
	return cmd
}

func (f generationForm) View(disabled bool) string {
	var b strings.Builder

	for i, field := range f.fields {
		label := labelStyle.Render(field.label)
		if i == f.focus {
			label = focusedLabelStyle.Render("› " + field.label)
		}

		var control string
		switch field.kind {
		case fieldText:
			control = field.input.View()
		case fieldSecret:
			control = field.secret.input.View() + " " + field.secret.Icon()
		case fieldSelect:
			control = "‹ " + choiceLabel(field) + " ›"
		case fieldToggle:
			control = "[ ]"
			if field.on {
				control = "[x]"
			}
		}
		if disabled {
			control = disabledStyle.Render(control)
		}

		b.WriteString(label + control + "\n")

		if field.preview && strings.TrimSpace(field.input.Value()) != "" {
			preview := validators.PreviewComment(field.input.Value())
			if preview == "" {
				preview = "(rejected)"
			}
			b.WriteString(labelStyle.Render("") + helpStyle.Render("sent as: "+preview) + "\n")
		}
	}

	return b.String()
}

func choiceLabel(f *formField) string {
	if f.selected < 0 || f.selected >= len(f.choices) {
		return "-"
	}
	c := f.choices[f.selected]
	if c.Label != "" {
		return c.Label
	}
	return c.Value
}
