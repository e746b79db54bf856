package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/disc/internal/ui/theme"
)

// Checkbox is a focusable boolean toggle.
type Checkbox struct {
	Label   string
	Checked bool
	Focused bool
	Err     string
}

// NewCheckbox creates an unchecked checkbox.
func NewCheckbox(label string) Checkbox {
	return Checkbox{Label: label}
}

// Update toggles on space while focused.
func (c Checkbox) Update(msg tea.Msg) (Checkbox, tea.Cmd) {
	if !c.Focused {
		return c, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "space", " ":
			c.Checked = !c.Checked
		}
	}
	return c, nil
}

// View renders the checkbox.
func (c Checkbox) View(width int) string {
	box := "[ ]"
	if c.Checked {
		box = "[x]"
	}
	style := theme.Unselected
	if c.Focused {
		style = theme.Selected
	}
	view := style.Render(box) + " " + lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width-4).
		Render(c.Label)
	if c.Err != "" {
		view += "\n" + theme.ErrorText.Render("✗ "+c.Err)
	}
	return view
}
