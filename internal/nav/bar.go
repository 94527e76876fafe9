package nav

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Bar is the site navigation: the links, which one is focused, and whether
// keyboard focus is on the bar at all.
type Bar struct {
	Links   []Link
	Focus   int
	Focused bool
	current string
}

// NewBar builds a bar with the link for current highlighted and focused.
func NewBar(links []Link, current string) Bar {
	b := Bar{Links: append([]Link(nil), links...)}
	b.SetCurrent(current)
	return b
}

// Current returns the page the bar was last highlighted for.
func (b Bar) Current() string {
	return b.current
}

// SetCurrent re-highlights the bar for a new current page and moves focus to
// its link.
func (b *Bar) SetCurrent(current string) {
	b.current = current
	Highlight(b.Links, current)
	for i, l := range b.Links {
		if l.Active {
			b.Focus = i
			break
		}
	}
}

// Click returns the href of link i as a pointer click would.
func (b Bar) Click(i int) (string, bool) {
	if i < 0 || i >= len(b.Links) {
		return "", false
	}
	return b.Links[i].Href, true
}

// HandleKey processes a key while the bar has focus. It returns the href to
// navigate to when the key activates the focused link.
func (b Bar) HandleKey(msg tea.KeyPressMsg) (Bar, string, bool) {
	switch msg.String() {
	case "left", "h", "shift+tab":
		if b.Focus > 0 {
			b.Focus--
		}
		return b, "", false
	case "right", "l", "tab":
		if b.Focus < len(b.Links)-1 {
			b.Focus++
		}
		return b, "", false
	case "esc":
		b.Focused = false
		return b, "", false
	}

	if key.Matches(msg, ActivateKeys) {
		href, ok := b.Click(b.Focus)
		return b, href, ok
	}
	return b, "", false
}
