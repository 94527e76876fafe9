package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dbi/internal/config"
	"github.com/abhisek/dbi/internal/nav"
	"github.com/abhisek/dbi/internal/quiz"
	"github.com/abhisek/dbi/internal/router"
	"github.com/abhisek/dbi/internal/screen"
	"github.com/abhisek/dbi/internal/screens/history"
	"github.com/abhisek/dbi/internal/screens/home"
	"github.com/abhisek/dbi/internal/screens/notfound"
	quizscreen "github.com/abhisek/dbi/internal/screens/quiz"
	"github.com/abhisek/dbi/internal/screens/tips"
	"github.com/abhisek/dbi/internal/screens/welcome"
	"github.com/abhisek/dbi/internal/store"
	"github.com/abhisek/dbi/internal/themepref"
	"github.com/abhisek/dbi/internal/ui/components"
	"github.com/abhisek/dbi/internal/ui/layout"
	"github.com/abhisek/dbi/internal/ui/theme"
)

// Options configures the application.
type Options struct {
	Config *config.Config
	KV     store.KV
	// Now is the clock for the countdown and quiz timestamps. Nil uses the
	// wall clock.
	Now func() time.Time
}

type notificationExpiredMsg struct {
	seq int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	bar     nav.Bar
	theme   *themepref.Manager
	history *quiz.History
	pinned  bool
	now     func() time.Time
	width   int
	height  int
}

// New creates the root model and applies the effective theme.
func New(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	kv := opts.KV
	if kv == nil {
		log.Printf("warning: no storage backend, preferences will not persist")
		kv = store.NewMemory()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	systemDark, pinned := cfg.PinnedDark()
	mgr := themepref.NewManager(kv, theme.Document{}, systemDark)
	mgr.Load(context.Background())

	start := cfg.Page
	if start == "" {
		start = nav.DefaultPage
	}

	m := AppModel{
		bar:     nav.NewBar(nav.SiteLinks(), start),
		theme:   mgr,
		history: quiz.NewHistory(kv),
		pinned:  pinned,
		now:     now,
	}

	var first screen.Screen
	if cfg.Splash {
		first = welcome.New(func() screen.Screen { return m.page(start) })
	} else {
		first = m.page(start)
	}
	m.router = router.New(first)

	log.Printf("🌐 Dzień Bezpiecznego Internetu - Nawigacja załadowana")
	log.Printf("📍 Aktualna strona: %s", start)
	return m
}

// page builds the screen served for href.
func (m AppModel) page(href string) screen.Screen {
	switch href {
	case home.Href:
		return home.New(m.now)
	case tips.Href:
		return tips.New()
	case quizscreen.Href:
		return quizscreen.New(quiz.Bank(), m.history, quiz.WithClock(m.now))
	case history.Href:
		return history.New(m.history)
	default:
		log.Printf("warning: no page for %q", href)
		return notfound.New(href)
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	if !m.pinned {
		cmds = append(cmds, tea.RequestBackgroundColor)
	}
	return tea.Batch(cmds...)
}

// navigate opens the page for href, as following a link would. Screens
// pushed over the previous page are dropped.
func (m *AppModel) navigate(href string) tea.Cmd {
	m.bar.SetCurrent(href)
	m.bar.Focused = false
	log.Printf("📍 Aktualna strona: %s", href)
	return m.router.Reset(m.page(href))
}

func (m *AppModel) toggleTheme() tea.Cmd {
	n, err := m.theme.Toggle(context.Background())
	if err != nil {
		log.Printf("warning: %v", err)
	}
	return tea.Tick(themepref.NotificationTTL, func(time.Time) tea.Msg {
		return notificationExpiredMsg{seq: n.Seq}
	})
}

func (m *AppModel) resetTheme() {
	if err := m.theme.ResetToSystemDefault(context.Background()); err != nil {
		log.Printf("warning: %v", err)
	}
}

func (m *AppModel) systemChanged(dark bool) {
	if m.pinned {
		return
	}
	if m.theme.SystemChanged(context.Background(), dark) {
		log.Printf("theme: following system, dark=%v", dark)
	}
}

// click handles a pointer click on the header row, returning handled=false
// for clicks meant for the active screen.
func (m *AppModel) click(x, y int) (tea.Cmd, bool) {
	if y != 0 {
		return nil, false
	}
	if i, ok := layout.NavLinkAt(m.bar.Links, x, y); ok {
		href, _ := m.bar.Click(i)
		return m.navigate(href), true
	}
	if layout.ControlAt(m.theme.Control(), x, y, m.width) {
		return m.toggleTheme(), true
	}
	return nil, true
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.BackgroundColorMsg:
		m.systemChanged(msg.IsDark())
		return m, nil

	case notificationExpiredMsg:
		m.theme.Expire(msg.seq)
		return m, nil

	case screen.NavigateMsg:
		return m, m.navigate(msg.Href)

	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if cmd, handled := m.click(mouse.X, mouse.Y); handled {
			return m, cmd
		}

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.bar.Focused {
			var href string
			var ok bool
			m.bar, href, ok = m.bar.HandleKey(msg)
			if ok {
				return m, m.navigate(href)
			}
			return m, nil
		}

		switch msg.String() {
		case "tab":
			m.bar.Focused = true
			return m, nil
		case "t":
			return m, m.toggleTheme()
		case "T":
			m.resetTheme()
			return m, nil
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) footerHints() []layout.KeyHint {
	if m.bar.Focused {
		help := nav.ActivateKeys.Help()
		return []layout.KeyHint{
			{Key: "←→", Description: "Wybierz stronę"},
			{Key: help.Key, Description: help.Desc},
			{Key: "Esc", Description: "Wróć"},
		}
	}

	var hints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	hints = append(hints,
		layout.KeyHint{Key: "Tab", Description: "Menu"},
		layout.KeyHint{Key: "t", Description: m.theme.Control().Title},
	)
	if !layout.IsCompactWidth(m.width) {
		hints = append(hints, layout.KeyHint{Key: "T", Description: "Motyw systemowy"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Wyjście"})
	return hints
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.render())
	return v
}

// render draws the whole frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	header := layout.RenderHeader(m.bar, m.theme.Control(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	if n, ok := m.theme.Notification(); ok {
		toast := components.Toast(n.Text, m.width)
		rest := max(contentHeight-lipgloss.Height(toast), 0)
		content = toast + "\n" + m.router.View(m.width, rest)
	} else {
		content = m.router.View(m.width, contentHeight)
	}

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
