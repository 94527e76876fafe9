// Package nav marks the navigation link for the current page and resolves
// in-page anchors to scroll offsets.
package nav

import (
	"strings"

	"charm.land/bubbles/v2/key"
)

// DefaultPage is the page name used when the path has no final segment.
const DefaultPage = "index.html"

// Link is one navigation entry.
type Link struct {
	Label  string
	Href   string
	Active bool
}

// ActivateKeys trigger a focused link the same way a pointer click does.
var ActivateKeys = key.NewBinding(
	key.WithKeys("enter", "space", " "),
	key.WithHelp("Enter/Spacja", "Otwórz"),
)

// CurrentPage returns the path segment after the last "/", or DefaultPage
// when that segment is empty.
func CurrentPage(path string) string {
	page := path[strings.LastIndex(path, "/")+1:]
	if page == "" {
		return DefaultPage
	}
	return page
}

// Highlight clears every link's active flag and then marks each link whose
// Href equals current exactly.
func Highlight(links []Link, current string) {
	for i := range links {
		links[i].Active = false
		if links[i].Href == current {
			links[i].Active = true
		}
	}
}

// IsAnchor reports whether href points inside the current page.
func IsAnchor(href string) bool {
	return strings.HasPrefix(href, "#")
}

// Section is an addressable block of a page.
type Section struct {
	ID     string
	Offset int // first line of the section within the page
}

// ScrollToAnchor resolves an in-page href like "#hasla" to the offset of the
// matching section. ok is false when href is not an anchor or nothing
// matches, in which case the caller leaves the scroll position alone.
func ScrollToAnchor(href string, sections []Section) (offset int, ok bool) {
	if !IsAnchor(href) {
		return 0, false
	}
	id := strings.TrimPrefix(href, "#")
	for _, s := range sections {
		if s.ID == id {
			return s.Offset, true
		}
	}
	return 0, false
}

// SiteLinks returns the site navigation in display order.
func SiteLinks() []Link {
	return []Link{
		{Label: "Start", Href: "index.html"},
		{Label: "Porady", Href: "porady.html"},
		{Label: "Quiz", Href: "quiz.html"},
		{Label: "Historia", Href: "historia.html"},
	}
}

// IsSitePage reports whether href is one of the site's pages.
func IsSitePage(href string) bool {
	for _, l := range SiteLinks() {
		if l.Href == href {
			return true
		}
	}
	return false
}
