package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dbi/internal/quiz"
	"github.com/abhisek/dbi/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. Once Marks is set the options
// are locked and shown with their feedback marks.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int
	Marks    []quiz.Mark
}

// NewMultiChoice creates an unlocked multiple-choice component.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
	}
}

// Locked reports whether the options no longer accept input.
func (m MultiChoice) Locked() bool {
	return m.Marks != nil
}

// Lock freezes the options and shows marks.
func (m MultiChoice) Lock(marks []quiz.Mark) MultiChoice {
	m.Marks = marks
	return m
}

// Update handles cursor movement. It returns the index the user picked, if
// any: Enter picks the cursor position, digits 1-9 pick directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, int, bool) {
	if m.Locked() {
		return m, 0, false
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, 0, false
	}

	switch s := kmsg.String(); s {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter", "space", " ":
		return m, m.Selected, true
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			i := int(s[0] - '1')
			if i < len(m.Options) {
				m.Selected = i
				return m, i, true
			}
		}
	}

	return m, 0, false
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Locked() {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if m.Locked() {
			switch m.markAt(i) {
			case quiz.MarkCorrect:
				s += theme.Correct.Render(line+"  ✓") + "\n"
			case quiz.MarkWrong:
				s += theme.Incorrect.Render(line+"  ✗") + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
			continue
		}

		if i == m.Selected {
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

func (m MultiChoice) markAt(i int) quiz.Mark {
	if i < len(m.Marks) {
		return m.Marks[i]
	}
	return quiz.MarkNone
}
