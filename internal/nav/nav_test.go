package nav

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func testLinks() []Link {
	return []Link{
		{Label: "Start", Href: "index.html"},
		{Label: "Porady", Href: "porady.html"},
		{Label: "Quiz", Href: "quiz.html"},
	}
}

func TestCurrentPage(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/dbi/quiz.html", "quiz.html"},
		{"quiz.html", "quiz.html"},
		{"/dbi/", "index.html"},
		{"", "index.html"},
		{"/", "index.html"},
		{"/a/b/porady.html?x=1", "porady.html?x=1"},
	}
	for _, tt := range tests {
		if got := CurrentPage(tt.path); got != tt.want {
			t.Errorf("CurrentPage(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestHighlightExactMatch(t *testing.T) {
	links := testLinks()
	links[0].Active = true // stale marking must be cleared

	Highlight(links, "quiz.html")

	for _, l := range links {
		want := l.Href == "quiz.html"
		if l.Active != want {
			t.Errorf("link %q active = %v, want %v", l.Href, l.Active, want)
		}
	}
}

func TestHighlightNoNormalization(t *testing.T) {
	for _, current := range []string{"Quiz.html", "quiz.html?x=1", "./quiz.html"} {
		links := testLinks()
		Highlight(links, current)
		for _, l := range links {
			if l.Active {
				t.Errorf("current %q: link %q should not be active", current, l.Href)
			}
		}
	}
}

func TestScrollToAnchor(t *testing.T) {
	sections := []Section{{ID: "hasla", Offset: 0}, {ID: "phishing", Offset: 14}}

	if off, ok := ScrollToAnchor("#phishing", sections); !ok || off != 14 {
		t.Errorf("#phishing = (%d, %v), want (14, true)", off, ok)
	}
	if _, ok := ScrollToAnchor("#missing", sections); ok {
		t.Error("missing anchor should be a no-op")
	}
	if _, ok := ScrollToAnchor("porady.html", sections); ok {
		t.Error("non-anchor href should be ignored")
	}
}

func TestBarKeyboardMatchesClick(t *testing.T) {
	for _, k := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: tea.KeySpace, Text: " "},
	} {
		b := NewBar(testLinks(), "index.html")
		b.Focused = true
		b, _, _ = b.HandleKey(tea.KeyPressMsg{Code: tea.KeyRight})

		_, href, ok := b.HandleKey(k)
		clicked, clickOK := b.Click(1)
		if !ok || !clickOK || href != clicked {
			t.Errorf("key %q: got (%q, %v), click gives (%q, %v)", k.String(), href, ok, clicked, clickOK)
		}
		if href != "porady.html" {
			t.Errorf("key %q: href = %q, want porady.html", k.String(), href)
		}
	}
}

func TestBarFocusBounds(t *testing.T) {
	b := NewBar(testLinks(), "index.html")
	b, _, _ = b.HandleKey(tea.KeyPressMsg{Code: tea.KeyLeft})
	if b.Focus != 0 {
		t.Errorf("focus = %d, want 0", b.Focus)
	}
	for i := 0; i < 5; i++ {
		b, _, _ = b.HandleKey(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	if b.Focus != 2 {
		t.Errorf("focus = %d, want 2", b.Focus)
	}
}

func TestBarSetCurrent(t *testing.T) {
	b := NewBar(testLinks(), "index.html")
	b.SetCurrent("quiz.html")

	if b.Current() != "quiz.html" {
		t.Errorf("current = %q", b.Current())
	}
	if !b.Links[2].Active || b.Links[0].Active {
		t.Error("highlight not moved to quiz.html")
	}
	if b.Focus != 2 {
		t.Errorf("focus = %d, want 2", b.Focus)
	}
}

func TestBarEscReleasesFocus(t *testing.T) {
	b := NewBar(testLinks(), "index.html")
	b.Focused = true
	b, _, _ = b.HandleKey(tea.KeyPressMsg{Code: tea.KeyEscape})
	if b.Focused {
		t.Error("esc should release bar focus")
	}
}
