// Package tips is the safety tips page: a table of contents of in-page
// anchors over a scrollable list of sections.
package tips

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dbi/internal/nav"
	"github.com/abhisek/dbi/internal/screen"
	"github.com/abhisek/dbi/internal/ui/components"
	"github.com/abhisek/dbi/internal/ui/layout"
	"github.com/abhisek/dbi/internal/ui/theme"
)

// Href is the page name of the tips page.
const Href = "porady.html"

const scrollInterval = 30 * time.Millisecond

// anchorMsg is emitted when an in-page link is activated.
type anchorMsg struct {
	href string
}

// scrollStepMsg advances a smooth scroll. gen ties it to the activation that
// started it so a newer scroll supersedes an older one.
type scrollStepMsg struct {
	gen int
}

// TipsScreen renders the tips page.
type TipsScreen struct {
	toc      components.Menu
	lines    []bodyLine
	sections []nav.Section
	offset   int
	target   int
	gen      int
	height   int
}

var _ screen.Page = (*TipsScreen)(nil)
var _ screen.KeyHintProvider = (*TipsScreen)(nil)

// New creates the tips page.
func New() *TipsScreen {
	items := make([]components.MenuItem, 0, len(tipSections))
	for _, t := range tipSections {
		href := "#" + t.id
		items = append(items, components.MenuItem{
			Label: t.title,
			Action: func() tea.Cmd {
				return func() tea.Msg { return anchorMsg{href: href} }
			},
		})
	}

	s := &TipsScreen{toc: components.NewMenu(items)}
	s.lines, s.sections = buildBody()
	return s
}

type lineKind int

const (
	lineBlank lineKind = iota
	lineHeading
	lineBullet
)

// bodyLine is unstyled; styles are applied when rendering so the body
// follows theme changes.
type bodyLine struct {
	kind lineKind
	text string
}

func (l bodyLine) render() string {
	switch l.kind {
	case lineHeading:
		return theme.Heading.Render(l.text)
	case lineBullet:
		return theme.Body.Render("  • " + l.text)
	default:
		return ""
	}
}

// buildBody lays the sections out as lines and records where each starts.
func buildBody() ([]bodyLine, []nav.Section) {
	var lines []bodyLine
	var sections []nav.Section
	for _, t := range tipSections {
		sections = append(sections, nav.Section{ID: t.id, Offset: len(lines)})
		lines = append(lines, bodyLine{kind: lineHeading, text: t.title}, bodyLine{})
		for _, b := range t.body {
			lines = append(lines, bodyLine{kind: lineBullet, text: b})
		}
		lines = append(lines, bodyLine{})
	}
	return lines, sections
}

func (s *TipsScreen) Init() tea.Cmd {
	return nil
}

// Offset returns the current scroll position in lines.
func (s *TipsScreen) Offset() int {
	return s.offset
}

// Sections returns the anchor targets of the page.
func (s *TipsScreen) Sections() []nav.Section {
	return s.sections
}

// ScrollTo starts a smooth scroll to the section href points at. An href that
// matches nothing leaves the page where it is.
func (s *TipsScreen) ScrollTo(href string) tea.Cmd {
	off, ok := nav.ScrollToAnchor(href, s.sections)
	if !ok {
		return nil
	}
	s.target = s.clamp(off)
	s.gen++
	return s.step()
}

func (s *TipsScreen) step() tea.Cmd {
	gen := s.gen
	return tea.Tick(scrollInterval, func(time.Time) tea.Msg {
		return scrollStepMsg{gen: gen}
	})
}

func (s *TipsScreen) maxOffset() int {
	m := len(s.lines) - 1
	if m < 0 {
		return 0
	}
	return m
}

func (s *TipsScreen) clamp(off int) int {
	return min(max(off, 0), s.maxOffset())
}

// jump moves immediately, cancelling any running smooth scroll.
func (s *TipsScreen) jump(off int) {
	s.gen++
	s.offset = s.clamp(off)
	s.target = s.offset
}

func (s *TipsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case anchorMsg:
		return s, s.ScrollTo(msg.href)

	case scrollStepMsg:
		if msg.gen != s.gen || s.offset == s.target {
			return s, nil
		}
		diff := s.target - s.offset
		delta := diff / 3
		if delta == 0 {
			delta = 1
			if diff < 0 {
				delta = -1
			}
		}
		s.offset += delta
		if s.offset == s.target {
			return s, nil
		}
		return s, s.step()

	case tea.MouseWheelMsg:
		switch msg.Mouse().Button {
		case tea.MouseWheelUp:
			s.jump(s.offset - 3)
		case tea.MouseWheelDown:
			s.jump(s.offset + 3)
		}
		return s, nil

	case tea.KeyPressMsg:
		page := max(s.height-1, 1)
		switch msg.String() {
		case "pgdown", "J":
			s.jump(s.offset + page)
			return s, nil
		case "pgup", "K":
			s.jump(s.offset - page)
			return s, nil
		case "home", "g":
			s.jump(0)
			return s, nil
		case "end", "G":
			s.jump(s.maxOffset())
			return s, nil
		}
		var cmd tea.Cmd
		s.toc, cmd = s.toc.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *TipsScreen) View(width, height int) string {
	tocTitle := theme.Heading.Render("Spis treści")
	toc := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(tocTitle + "\n" + strings.TrimRight(s.toc.View(), "\n"))

	if layout.IsCompactWidth(width) {
		bodyHeight := max(height-lipgloss.Height(toc), 1)
		s.height = bodyHeight
		return toc + "\n" + s.visible(bodyHeight)
	}

	s.height = height
	body := lipgloss.NewStyle().
		PaddingLeft(2).
		Width(max(width-lipgloss.Width(toc)-1, 10)).
		Render(s.visible(height))
	return lipgloss.JoinHorizontal(lipgloss.Top, toc, body)
}

func (s *TipsScreen) visible(height int) string {
	end := min(s.offset+height, len(s.lines))
	rendered := make([]string, 0, end-s.offset)
	for _, l := range s.lines[s.offset:end] {
		rendered = append(rendered, l.render())
	}
	return strings.Join(rendered, "\n")
}

func (s *TipsScreen) Title() string {
	return "Porady"
}

func (s *TipsScreen) Href() string {
	return Href
}

func (s *TipsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Spis treści"},
		{Key: "Enter", Description: "Przejdź"},
		{Key: "PgUp/PgDn", Description: "Przewiń"},
	}
}
