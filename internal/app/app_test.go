package app

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dbi/internal/config"
	"github.com/abhisek/dbi/internal/quiz"
	"github.com/abhisek/dbi/internal/screen"
	"github.com/abhisek/dbi/internal/screens/history"
	"github.com/abhisek/dbi/internal/store"
	"github.com/abhisek/dbi/internal/themepref"
	"github.com/abhisek/dbi/internal/ui/layout"
	"github.com/abhisek/dbi/internal/ui/theme"
)

var fixedNow = func() time.Time { return time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC) }

func newTestApp(t *testing.T, kv store.KV, mutate func(*config.Config)) AppModel {
	t.Helper()
	t.Cleanup(theme.Document{}.ClearOverrides)

	cfg := config.DefaultConfig()
	cfg.Splash = false
	if mutate != nil {
		mutate(cfg)
	}
	m := New(Options{Config: cfg, KV: kv, Now: fixedNow})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(AppModel)
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func activeHref(t *testing.T, m AppModel) string {
	t.Helper()
	p, ok := m.router.Active().(screen.Page)
	if !ok {
		t.Fatalf("active screen %T is not a page", m.router.Active())
	}
	return p.Href()
}

func activeLink(m AppModel) string {
	for _, l := range m.bar.Links {
		if l.Active {
			return l.Href
		}
	}
	return ""
}

func TestStartsOnConfiguredPage(t *testing.T) {
	m := newTestApp(t, store.NewMemory(), func(c *config.Config) { c.Page = "porady.html" })
	if got := activeHref(t, m); got != "porady.html" {
		t.Errorf("active page = %q", got)
	}
	if got := activeLink(m); got != "porady.html" {
		t.Errorf("highlighted link = %q", got)
	}
}

func TestNavigateMsgSwitchesPage(t *testing.T) {
	m := newTestApp(t, store.NewMemory(), nil)

	m, _ = update(t, m, screen.NavigateMsg{Href: "quiz.html"})
	if got := activeHref(t, m); got != "quiz.html" {
		t.Errorf("active page = %q", got)
	}
	if got := activeLink(m); got != "quiz.html" {
		t.Errorf("highlighted link = %q", got)
	}
	if m.router.Depth() != 1 {
		t.Errorf("navigation must replace, depth = %d", m.router.Depth())
	}
}

func TestHistoryDetailPushAndPop(t *testing.T) {
	kv := store.NewMemory()
	if err := quiz.NewHistory(kv).Append(context.Background(), quiz.NewResult(fixedNow(), 8, 10)); err != nil {
		t.Fatal(err)
	}

	m := newTestApp(t, kv, nil)
	m, cmd := update(t, m, screen.NavigateMsg{Href: "historia.html"})
	if cmd == nil {
		t.Fatal("history page should load its results")
	}
	m, _ = update(t, m, cmd())

	m, cmd = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on a result should open its details")
	}
	m, _ = update(t, m, cmd())
	if m.router.Depth() != 2 {
		t.Fatalf("detail should be pushed, depth = %d", m.router.Depth())
	}
	if _, ok := m.router.Active().(*history.DetailScreen); !ok {
		t.Fatalf("active screen = %T", m.router.Active())
	}
	if !strings.Contains(m.render(), "8/10 (80%)") {
		t.Error("detail should show the score")
	}

	m, cmd = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should pop the detail")
	}
	m, _ = update(t, m, cmd())
	if m.router.Depth() != 1 || activeHref(t, m) != "historia.html" {
		t.Errorf("expected back on history, depth = %d", m.router.Depth())
	}

	// Navigating away from a pushed detail leaves a single page.
	m, cmd = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m, _ = update(t, m, cmd())
	m, _ = update(t, m, screen.NavigateMsg{Href: "quiz.html"})
	if m.router.Depth() != 1 || activeHref(t, m) != "quiz.html" {
		t.Errorf("navigation should reset the stack, depth = %d", m.router.Depth())
	}
}

func TestUnknownPageHighlightsNothing(t *testing.T) {
	m := newTestApp(t, store.NewMemory(), nil)
	m, _ = update(t, m, screen.NavigateMsg{Href: "about.html"})
	if got := activeLink(m); got != "" {
		t.Errorf("no link should be active, got %q", got)
	}
	if !strings.Contains(m.render(), "404") {
		t.Error("expected the not-found page")
	}
}

func TestKeyboardNavEqualsClick(t *testing.T) {
	byKey := newTestApp(t, store.NewMemory(), nil)
	byKey, _ = update(t, byKey, tea.KeyPressMsg{Code: tea.KeyTab})
	if !byKey.bar.Focused {
		t.Fatal("tab should focus the nav bar")
	}
	byKey, _ = update(t, byKey, tea.KeyPressMsg{Code: tea.KeyRight})
	byKey, _ = update(t, byKey, tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})

	byClick := newTestApp(t, store.NewMemory(), nil)
	x := 0
	for ; x < 100; x++ {
		if i, ok := layout.NavLinkAt(byClick.bar.Links, x, 0); ok && i == 1 {
			break
		}
	}
	cmd, handled := byClick.click(x, 0)
	if !handled || cmd == nil {
		t.Fatal("click on a link should navigate")
	}

	if activeHref(t, byKey) != activeHref(t, byClick) || activeHref(t, byKey) != "porady.html" {
		t.Errorf("key -> %q, click -> %q", activeHref(t, byKey), activeHref(t, byClick))
	}
	if byKey.bar.Focused {
		t.Error("activating a link should release bar focus")
	}
}

func TestToggleThemeKey(t *testing.T) {
	kv := store.NewMemory()
	m := newTestApp(t, kv, func(c *config.Config) { c.SystemTheme = config.SystemLight })

	m, cmd := update(t, m, tea.KeyPressMsg{Code: 't', Text: "t"})
	if cmd == nil {
		t.Fatal("toggle should schedule the notification expiry")
	}
	if !theme.IsDark() {
		t.Error("expected dark palette after toggle")
	}
	if v, _ := kv.Get(context.Background(), themepref.PreferenceKey); v != "dark" {
		t.Errorf("persisted = %q, want dark", v)
	}

	n, ok := m.theme.Notification()
	if !ok {
		t.Fatal("expected a notification")
	}
	if !strings.Contains(m.render(), n.Text) {
		t.Error("view should show the notification")
	}

	m, _ = update(t, m, notificationExpiredMsg{seq: n.Seq})
	if _, ok := m.theme.Notification(); ok {
		t.Error("notification should expire")
	}
}

func TestResetThemeKey(t *testing.T) {
	kv := store.NewMemory()
	m := newTestApp(t, kv, func(c *config.Config) { c.SystemTheme = config.SystemDark })
	if !theme.IsDark() {
		t.Fatal("pinned dark system should start dark")
	}

	m, _ = update(t, m, tea.KeyPressMsg{Code: 't', Text: "t"})
	m, _ = update(t, m, tea.KeyPressMsg{Code: 't', Text: "t"})
	if theme.IsDark() {
		t.Fatal("second toggle should be light")
	}

	update(t, m, tea.KeyPressMsg{Code: 'T', Text: "T"})
	if _, err := kv.Get(context.Background(), themepref.PreferenceKey); err == nil {
		t.Error("reset should clear the stored preference")
	}
	if !theme.IsDark() {
		t.Error("reset should return to the dark system theme")
	}
}

func TestSystemSignal(t *testing.T) {
	m := newTestApp(t, store.NewMemory(), nil)

	m.systemChanged(true)
	if !theme.IsDark() {
		t.Error("auto mode should follow the system")
	}

	pinned := newTestApp(t, store.NewMemory(), func(c *config.Config) { c.SystemTheme = config.SystemLight })
	pinned.systemChanged(true)
	if theme.IsDark() {
		t.Error("a pinned system theme ignores the terminal signal")
	}
}

func TestSplashHandsOverToStartPage(t *testing.T) {
	m := newTestApp(t, store.NewMemory(), func(c *config.Config) { c.Splash = true })
	if _, ok := m.router.Active().(screen.Page); ok {
		t.Fatal("expected the splash first")
	}

	m, cmd := update(t, m, tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd == nil {
		t.Fatal("key should end the splash")
	}
	m, _ = update(t, m, cmd())
	if got := activeHref(t, m); got != "index.html" {
		t.Errorf("active page = %q", got)
	}
}

func TestViewFrame(t *testing.T) {
	m := newTestApp(t, store.NewMemory(), nil)
	out := m.render()
	for _, want := range []string{"DBI", "Start", "Porady", "Quiz", "Historia", "Data: 10 lutego 2026"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	small, _ := update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(small.render(), "za małe") {
		t.Error("expected the too-small message")
	}
}
