package quiz

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/dbi/internal/quiz"
	"github.com/abhisek/dbi/internal/store"
)

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func digit(n int) tea.KeyPressMsg {
	r := rune('0' + n)
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestScreen(t *testing.T) (*QuizScreen, *qz.History) {
	t.Helper()
	hist := qz.NewHistory(store.NewMemory())
	clock := func() time.Time { return time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC) }
	return New(qz.Bank(), hist, qz.WithClock(clock)), hist
}

func TestStartScreen(t *testing.T) {
	s, _ := newTestScreen(t)
	if !strings.Contains(s.View(100, 30), startLabel) {
		t.Error("start view should show the start button")
	}

	s.Update(enter())
	if s.Engine().Phase() != qz.PhaseInQuestion {
		t.Fatalf("phase = %v, want in-question", s.Engine().Phase())
	}
	if !strings.Contains(s.View(100, 30), "Pytanie 1 z 10") {
		t.Error("question view should show the counter")
	}
}

func TestDigitAnswersAndFeedback(t *testing.T) {
	s, _ := newTestScreen(t)
	s.Update(enter())

	// The third option of the first question is correct.
	s.Update(digit(3))

	if s.Engine().Phase() != qz.PhaseFeedback {
		t.Fatalf("phase = %v, want feedback", s.Engine().Phase())
	}
	if s.Engine().Session().Score != 1 {
		t.Errorf("score = %d, want 1", s.Engine().Session().Score)
	}
	view := s.View(100, 40)
	for _, want := range []string{qz.CorrectHeading, qz.NextLabel} {
		if !strings.Contains(view, want) {
			t.Errorf("feedback view missing %q", want)
		}
	}

	// Further answers are ignored while feedback shows.
	s.Update(digit(1))
	if s.Engine().Session().Score != 1 || s.Engine().Phase() != qz.PhaseFeedback {
		t.Error("locked options must ignore input")
	}

	s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if s.Engine().Session().Index != 1 || s.Engine().Phase() != qz.PhaseInQuestion {
		t.Error("n should advance to the second question")
	}
}

func TestCursorAnswer(t *testing.T) {
	s, _ := newTestScreen(t)
	s.Update(enter())

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(enter())

	if s.Engine().Phase() != qz.PhaseFeedback {
		t.Fatal("enter should answer with the cursor position")
	}
	if !strings.Contains(s.View(100, 40), qz.IncorrectHeading) {
		t.Error("second option of the first question is wrong")
	}
}

func TestFullRunShowsResultsAndRestart(t *testing.T) {
	s, hist := newTestScreen(t)
	s.Update(enter())

	for i := 0; i < s.Engine().Len(); i++ {
		q, ok := s.Engine().Current()
		if !ok {
			t.Fatalf("no current question at %d", i)
		}
		s.Update(digit(q.Correct + 1))
		if i == s.Engine().Len()-1 && !strings.Contains(s.View(100, 40), qz.ResultsLabel) {
			t.Error("last question should offer the results label")
		}
		s.Update(enter())
	}

	if s.Engine().Phase() != qz.PhaseResults {
		t.Fatalf("phase = %v, want results", s.Engine().Phase())
	}
	view := s.View(100, 40)
	for _, want := range []string{"10/10 (100%)", qz.TierTop.Message(), "Najlepszy wynik"} {
		if !strings.Contains(view, want) {
			t.Errorf("results view missing %q", want)
		}
	}
	if got := hist.List(context.Background()); len(got) != 1 {
		t.Errorf("history has %d results, want 1", len(got))
	}

	s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if s.Engine().Phase() != qz.PhaseInQuestion || s.Engine().Session().Index != 0 {
		t.Error("r should restart at the first question")
	}
}
