package notfound

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dbi/internal/nav"
	"github.com/abhisek/dbi/internal/screen"
	"github.com/abhisek/dbi/internal/ui/theme"
)

// NotFoundScreen is shown for a page name no screen serves.
type NotFoundScreen struct {
	href string
}

var _ screen.Page = (*NotFoundScreen)(nil)

// New creates a NotFoundScreen for href.
func New(href string) *NotFoundScreen {
	return &NotFoundScreen{href: href}
}

func (p *NotFoundScreen) Init() tea.Cmd {
	return nil
}

func (p *NotFoundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "enter" {
		return p, screen.Navigate(nav.DefaultPage)
	}
	return p, nil
}

func (p *NotFoundScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("╌╌ 404 ╌╌\n\nNie znaleziono strony %q.\nNaciśnij Enter, aby wrócić na stronę startową.", p.href))
}

func (p *NotFoundScreen) Title() string {
	return "404"
}

// Href is the requested page name, so no navigation link is highlighted
// unless one points at it exactly.
func (p *NotFoundScreen) Href() string {
	return p.href
}
