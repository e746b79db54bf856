package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/disc/internal/ui/theme"
)

// NoMark means no option carries a mark.
const NoMark = -1

// MostLeastPicker lists options and lets the user mark one as "most like
// me" and one as "least like me". Marks are display state only; the owner
// decides whether a pick is accepted.
type MostLeastPicker struct {
	Options []string
	Cursor  int
	Most    int
	Least   int
}

// NewMostLeastPicker creates a picker with no marks.
func NewMostLeastPicker(options []string) MostLeastPicker {
	return MostLeastPicker{
		Options: options,
		Most:    NoMark,
		Least:   NoMark,
	}
}

// Update moves the cursor. Number keys 1-9 jump to an option.
func (p MostLeastPicker) Update(msg tea.Msg) (MostLeastPicker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if p.Cursor > 0 {
			p.Cursor--
		}
	case "down", "j":
		if p.Cursor < len(p.Options)-1 {
			p.Cursor++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(p.Options) {
				p.Cursor = i
			}
		}
	}
	return p, nil
}

// View renders the options with cursor and marks.
func (p MostLeastPicker) View(width int) string {
	var b strings.Builder
	for i, opt := range p.Options {
		prefix := "  "
		if i == p.Cursor {
			prefix = "▸ "
		}

		mark := "    "
		switch {
		case i == p.Most && i == p.Least:
			mark = theme.MostMark.Render("[M") + theme.LeastMark.Render("L]")
		case i == p.Most:
			mark = theme.MostMark.Render("[M] ")
		case i == p.Least:
			mark = theme.LeastMark.Render("[L] ")
		}

		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)
		style := theme.Unselected
		if i == p.Cursor {
			style = theme.Selected
		}
		b.WriteString(mark + " " + style.Width(width-5).Render(line))
		b.WriteString("\n")
	}

	legend := theme.MostMark.Render("[M]") + " most like me   " +
		theme.LeastMark.Render("[L]") + " least like me"
	b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(legend))
	return b.String()
}
