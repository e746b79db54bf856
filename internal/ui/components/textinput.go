package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/disc/internal/ui/theme"
)

// Field is a labeled bubbles/textinput with an inline error message.
type Field struct {
	Label string
	Model textinput.Model
	Err   string
}

// NewField creates an unfocused labeled input.
func NewField(label, placeholder string, charLimit int) Field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return Field{Label: label, Model: ti}
}

// NewPasswordField creates an input that masks what is typed.
func NewPasswordField(label string) Field {
	f := NewField(label, "password", 64)
	f.Model.EchoMode = textinput.EchoPassword
	f.Model.EchoCharacter = '•'
	return f
}

// Focus focuses the input and returns the cursor blink command.
func (f *Field) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur removes focus from the input.
func (f *Field) Blur() {
	f.Model.Blur()
}

// Focused reports whether the input has focus.
func (f Field) Focused() bool {
	return f.Model.Focused()
}

// Update forwards msg to the input.
func (f Field) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// Value returns the current input value.
func (f Field) Value() string {
	return f.Model.Value()
}

// SetValue replaces the input value.
func (f *Field) SetValue(v string) {
	f.Model.SetValue(v)
}

// Reset clears the value and the error.
func (f *Field) Reset() {
	f.Model.Reset()
	f.Err = ""
}

// View renders the label, the input and any error below it.
func (f Field) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if f.Focused() {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	view := labelStyle.Render(f.Label) + "\n" + f.Model.View()
	if f.Err != "" {
		view += "\n" + theme.ErrorText.Render("✗ "+f.Err)
	}
	return view
}
