package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dbi/internal/quiz"
	"github.com/abhisek/dbi/internal/router"
	"github.com/abhisek/dbi/internal/screen"
	"github.com/abhisek/dbi/internal/store"
)

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init should load the history")
	}
	s.Update(cmd())
}

func TestEmptyHistory(t *testing.T) {
	s := New(quiz.NewHistory(store.NewMemory()))
	if !strings.Contains(s.View(80, 20), "Wczytywanie") {
		t.Error("expected a loading message before the load completes")
	}
	load(t, s)
	if !strings.Contains(s.View(80, 20), "Brak wyników") {
		t.Error("expected the empty message")
	}
}

func TestEnterOnEmptyHistoryOpensQuiz(t *testing.T) {
	s := New(quiz.NewHistory(store.NewMemory()))
	load(t, s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg, ok := cmd().(screen.NavigateMsg)
	if !ok || msg.Href != "quiz.html" {
		t.Errorf("expected NavigateMsg to quiz.html, got %#v", cmd())
	}
}

func TestEnterPushesSelectedDetail(t *testing.T) {
	ctx := context.Background()
	h := quiz.NewHistory(store.NewMemory())
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	for i, score := range []int{9, 5} {
		if err := h.Append(ctx, quiz.NewResult(base.Add(time.Duration(i)*time.Hour), score, 10)); err != nil {
			t.Fatal(err)
		}
	}

	s := New(h)
	load(t, s)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %#v", cmd())
	}
	detail, ok := push.Screen.(*DetailScreen)
	if !ok {
		t.Fatalf("pushed %T", push.Screen)
	}
	if detail.Result().Score != 9 {
		t.Errorf("detail score = %d, want the selected (older) 9", detail.Result().Score)
	}
	view := detail.View(80, 24)
	for _, want := range []string{"9/10 (90%)", "Najlepszy wynik", "Świetnie!"} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q", want)
		}
	}
}

func TestNilHistory(t *testing.T) {
	s := New(nil)
	load(t, s)
	if !strings.Contains(s.View(80, 20), "Brak wyników") {
		t.Error("missing storage should look like an empty history")
	}
}

func TestListsNewestFirstWithBest(t *testing.T) {
	ctx := context.Background()
	h := quiz.NewHistory(store.NewMemory())
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	for i, score := range []int{4, 9, 6} {
		if err := h.Append(ctx, quiz.NewResult(base.Add(time.Duration(i)*24*time.Hour), score, 10)); err != nil {
			t.Fatal(err)
		}
	}

	s := New(h)
	load(t, s)

	if len(s.results) != 3 || s.results[0].Score != 6 || s.results[2].Score != 4 {
		t.Fatalf("results not newest first: %+v", s.results)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Najlepszy wynik: 9/10 (90%)") {
		t.Error("view should show the best result")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 2 {
		t.Errorf("selected = %d, want clamped at 2", s.selected)
	}
}

func TestFormatTimestampFallsBack(t *testing.T) {
	r := quiz.Result{Timestamp: "wczoraj"}
	if got := formatTimestamp(r); got != "wczoraj" {
		t.Errorf("formatTimestamp = %q", got)
	}
}
