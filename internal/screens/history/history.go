package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dbi/internal/countdown"
	"github.com/abhisek/dbi/internal/quiz"
	"github.com/abhisek/dbi/internal/router"
	"github.com/abhisek/dbi/internal/screen"
	"github.com/abhisek/dbi/internal/ui/components"
	"github.com/abhisek/dbi/internal/ui/layout"
	"github.com/abhisek/dbi/internal/ui/theme"
)

// Href is the page name of the history page.
const Href = "historia.html"

const quizHref = "quiz.html"

type historyLoadedMsg struct {
	Results []quiz.Result
}

// HistoryScreen lists past quiz results, newest first, and the best one.
type HistoryScreen struct {
	history  *quiz.History
	results  []quiz.Result
	best     quiz.Result
	hasBest  bool
	selected int
	loaded   bool
}

var _ screen.Page = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. history may be nil when no storage is
// available.
func New(history *quiz.History) *HistoryScreen {
	return &HistoryScreen{history: history}
}

func (s *HistoryScreen) Init() tea.Cmd {
	h := s.history
	return func() tea.Msg {
		if h == nil {
			return historyLoadedMsg{}
		}
		return historyLoadedMsg{Results: h.List(context.Background())}
	}
}

func (s *HistoryScreen) Title() string {
	return "Historia"
}

func (s *HistoryScreen) Href() string {
	return Href
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Przeglądaj"},
		{Key: "Enter", Description: "Szczegóły"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.results = make([]quiz.Result, 0, len(msg.Results))
		for i := len(msg.Results) - 1; i >= 0; i-- {
			s.results = append(s.results, msg.Results[i])
		}
		s.best, s.hasBest = quiz.BestOf(msg.Results)
		s.selected = 0
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		case "enter":
			if !s.loaded {
				return s, nil
			}
			if len(s.results) == 0 {
				return s, screen.Navigate(quizHref)
			}
			r := s.results[s.selected]
			detail := NewDetail(r, s.hasBest && r == s.best)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: detail} }
		}
	}
	return s, nil
}

// formatTimestamp renders a stored timestamp in local time, falling back to
// the raw value when it does not parse.
func formatTimestamp(r quiz.Result) string {
	t, err := r.Time()
	if err != nil {
		return r.Timestamp
	}
	t = t.Local()
	return countdown.FormatDate(t) + " " + t.Format("15:04")
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Wczytywanie historii...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Brak wyników. Rozwiąż quiz!\n\n  Enter: przejdź do quizu")
	}

	cw := min(width-4, 72)
	var b strings.Builder
	b.WriteString("\n")

	if s.hasBest {
		best := theme.Heading.Render(fmt.Sprintf("🏆 Najlepszy wynik: %s", s.best.ScoreText())) +
			theme.Hint.Render("  "+formatTimestamp(s.best))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, best))
		b.WriteString("\n\n")
	}

	for i, r := range s.results {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			style = theme.Selected
		}
		line := style.Render(fmt.Sprintf("%s%-24s %s", prefix, formatTimestamp(r), r.ScoreText()))
		bar := components.NewProgressBar("", r.Percentage, cw).View()

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar))
		b.WriteString("\n")
	}

	return b.String()
}
