package history

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dbi/internal/quiz"
	"github.com/abhisek/dbi/internal/screen"
	"github.com/abhisek/dbi/internal/ui/components"
	"github.com/abhisek/dbi/internal/ui/layout"
	"github.com/abhisek/dbi/internal/ui/theme"
)

// DetailScreen shows one stored result. It is pushed over the history page
// and popped with Esc.
type DetailScreen struct {
	result quiz.Result
	best   bool
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// NewDetail creates a detail view for r; best marks it as the top result.
func NewDetail(r quiz.Result, best bool) *DetailScreen {
	return &DetailScreen{result: r, best: best}
}

// Result returns the result being shown.
func (d *DetailScreen) Result() quiz.Result {
	return d.result
}

func (d *DetailScreen) Init() tea.Cmd {
	return nil
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *DetailScreen) View(width, height int) string {
	cw := min(width-4, 60)
	r := d.result

	lines := []string{
		theme.Title.Render("Wynik quizu"),
		theme.Hint.Render(formatTimestamp(r)),
		"",
		theme.Heading.Render(r.ScoreText()),
		components.NewProgressBar("", r.Percentage, cw-6).View(),
		"",
		theme.Body.Render(quiz.TierFor(r.Percentage).Message()),
	}
	if d.best {
		lines = append(lines, "", theme.Correct.Render("🏆 Najlepszy wynik"))
	}
	lines = append(lines, "", theme.Hint.Render(fmt.Sprintf("Poprawne odpowiedzi: %d", r.Score)))

	card := theme.Card.Width(cw).Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (d *DetailScreen) Title() string {
	return "Wynik"
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Wróć"}}
}
