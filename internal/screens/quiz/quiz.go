// Package quiz is the quiz page. It is the rendering target of the quiz
// engine and translates key presses into engine transitions.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/dbi/internal/quiz"
	"github.com/abhisek/dbi/internal/screen"
	"github.com/abhisek/dbi/internal/ui/components"
	"github.com/abhisek/dbi/internal/ui/layout"
	"github.com/abhisek/dbi/internal/ui/theme"
)

// Href is the page name of the quiz page.
const Href = "quiz.html"

const (
	startLabel   = "Rozpocznij quiz"
	restartLabel = "Spróbuj ponownie"
)

const intro = "Sprawdź, ile wiesz o bezpieczeństwie w internecie!"

// QuizScreen renders the quiz page.
type QuizScreen struct {
	engine  *qz.Engine
	history *qz.History

	choice   components.MultiChoice
	prompt   qz.Prompt
	feedback *qz.Feedback
	outcome  *qz.Outcome
	best     *qz.Result
}

var _ screen.Page = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ qz.View = (*QuizScreen)(nil)

// New creates the quiz page over questions. history may be nil, in which
// case results are not persisted.
func New(questions []qz.Question, history *qz.History, opts ...qz.Option) *QuizScreen {
	s := &QuizScreen{history: history}
	s.engine = qz.NewEngine(questions, s, history, opts...)
	return s
}

// Engine exposes the underlying engine.
func (s *QuizScreen) Engine() *qz.Engine {
	return s.engine
}

// RenderQuestion implements qz.View.
func (s *QuizScreen) RenderQuestion(p qz.Prompt) {
	s.prompt = p
	s.feedback = nil
	s.outcome = nil
	s.choice = components.NewMultiChoice(p.Text, p.Answers)
}

// RenderFeedback implements qz.View.
func (s *QuizScreen) RenderFeedback(f qz.Feedback) {
	s.feedback = &f
	s.choice.Selected = f.Selected
	s.choice = s.choice.Lock(f.Marks)
}

// RenderResults implements qz.View.
func (s *QuizScreen) RenderResults(o qz.Outcome) {
	s.outcome = &o
	s.feedback = nil
	s.best = nil
	if s.history != nil {
		if best, ok := s.history.Best(context.Background()); ok {
			s.best = &best
		}
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	var err error
	switch s.engine.Phase() {
	case qz.PhaseNotStarted:
		switch kmsg.String() {
		case "enter", "space", " ":
			err = s.engine.Start()
		}

	case qz.PhaseInQuestion:
		var picked int
		var chosen bool
		s.choice, picked, chosen = s.choice.Update(kmsg)
		if chosen {
			err = s.engine.SelectAnswer(picked)
		}

	case qz.PhaseFeedback:
		switch kmsg.String() {
		case "enter", "space", " ", "n":
			err = s.engine.Advance(context.Background())
		}

	case qz.PhaseResults:
		switch kmsg.String() {
		case "r", "enter":
			err = s.engine.Restart()
		}
	}

	if err != nil && !errors.Is(err, qz.ErrInvalidTransition) {
		log.Printf("warning: quiz: %v", err)
	}
	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	cw := min(width-4, 76)

	var body string
	switch s.engine.Phase() {
	case qz.PhaseNotStarted:
		body = s.viewStart()
	case qz.PhaseInQuestion, qz.PhaseFeedback:
		body = s.viewQuestion(cw)
	case qz.PhaseResults:
		body = s.viewResults()
	}

	card := theme.Card.Width(cw).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *QuizScreen) viewStart() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Quiz bezpieczeństwa"),
		"",
		theme.Body.Render(intro),
		theme.Subtitle.Render(fmt.Sprintf("Liczba pytań: %d", s.engine.Len())),
		"",
		components.NewButton(startLabel, true).View(),
	)
}

func (s *QuizScreen) viewQuestion(cw int) string {
	var b strings.Builder

	counter := fmt.Sprintf("Pytanie %d z %d", s.prompt.Index+1, s.prompt.Total)
	b.WriteString(theme.Hint.Render(counter))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", qz.Percentage(s.prompt.Index, s.prompt.Total), cw-6).View())
	b.WriteString("\n\n")
	b.WriteString(s.choice.View())

	if f := s.feedback; f != nil {
		style := theme.Incorrect
		if f.IsCorrect {
			style = theme.Correct
		}
		b.WriteString("\n")
		b.WriteString(style.Render(f.Heading))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(f.Explanation))
		b.WriteString("\n\n")
		b.WriteString(components.NewButton(f.AdvanceLabel, true).View())
	}

	return b.String()
}

func (s *QuizScreen) viewResults() string {
	o := s.outcome
	if o == nil {
		return ""
	}

	lines := []string{
		theme.Title.Render("Twój wynik"),
		"",
		theme.Heading.Render(o.ScoreText()),
		"",
		theme.Body.Render(o.Message),
	}
	if s.best != nil {
		lines = append(lines, "", theme.Hint.Render("Najlepszy wynik: "+s.best.ScoreText()))
	}
	lines = append(lines, "", components.NewButton(restartLabel, true).View())

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Href() string {
	return Href
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.engine.Phase() {
	case qz.PhaseNotStarted:
		return []layout.KeyHint{{Key: "Enter", Description: startLabel}}
	case qz.PhaseInQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Wybierz"},
			{Key: "Enter/1-4", Description: "Odpowiedz"},
		}
	case qz.PhaseFeedback:
		if s.feedback != nil {
			return []layout.KeyHint{{Key: "Enter/n", Description: s.feedback.AdvanceLabel}}
		}
	case qz.PhaseResults:
		return []layout.KeyHint{{Key: "r", Description: restartLabel}}
	}
	return nil
}
