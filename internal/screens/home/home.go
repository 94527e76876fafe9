package home

import (
	"log"
	"strings"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dbi/internal/countdown"
	"github.com/abhisek/dbi/internal/screen"
	"github.com/abhisek/dbi/internal/ui/components"
	"github.com/abhisek/dbi/internal/ui/layout"
	"github.com/abhisek/dbi/internal/ui/theme"
)

// Href is the page name of the start page.
const Href = "index.html"

const (
	tickInterval     = time.Second
	celebrationDelay = time.Second
)

// Timer messages carry the id of the screen that scheduled them, so a chain
// left over from an earlier visit stops at the next page's screen.
type tickMsg struct{ id int64 }

type celebrationCheckMsg struct{ id int64 }

var screenIDs atomic.Int64

const intro = "Każdego roku w lutym obchodzimy Dzień Bezpiecznego Internetu.\n" +
	"Sprawdź porady, rozwiąż quiz i dbaj o swoje bezpieczeństwo w sieci."

// HomeScreen is the start page: a live countdown to the next Safer Internet
// Day and, on the day itself, a celebration overlay.
type HomeScreen struct {
	id          int64
	now         func() time.Time
	target      time.Time
	state       countdown.DisplayState
	checked     bool
	celebrating bool
}

var _ screen.Page = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the start page. The target date is fixed when the page is
// created; now may be nil to use the wall clock.
func New(now func() time.Time) *HomeScreen {
	if now == nil {
		now = time.Now
	}
	t := now()
	target := countdown.NextOccurrence(t)
	log.Printf("countdown: target %s", target.Format(time.RFC3339))
	return &HomeScreen{
		id:     screenIDs.Add(1),
		now:    now,
		target: target,
		state:  countdown.Render(target, t),
	}
}

func (h *HomeScreen) tick() tea.Cmd {
	id := h.id
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

func (h *HomeScreen) Init() tea.Cmd {
	id := h.id
	return tea.Batch(
		h.tick(),
		tea.Tick(celebrationDelay, func(time.Time) tea.Msg {
			return celebrationCheckMsg{id: id}
		}),
	)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.id != h.id {
			return h, nil
		}
		h.state = countdown.Render(h.target, h.now())
		return h, h.tick()

	case celebrationCheckMsg:
		if msg.id == h.id && !h.checked {
			h.checked = true
			h.celebrating = countdown.IsTargetDay(h.target, h.now())
		}
		return h, nil

	case tea.KeyPressMsg:
		if h.celebrating {
			switch msg.String() {
			case "enter", "space", " ", "esc":
				h.celebrating = false
			}
		}
		return h, nil

	case tea.MouseClickMsg:
		if h.celebrating {
			h.celebrating = false
		}
		return h, nil
	}
	return h, nil
}

// Target returns the countdown target fixed at page load.
func (h *HomeScreen) Target() time.Time {
	return h.target
}

// State returns the last rendered countdown state.
func (h *HomeScreen) State() countdown.DisplayState {
	return h.state
}

// Celebrating reports whether the celebration overlay is showing.
func (h *HomeScreen) Celebrating() bool {
	return h.celebrating
}

func (h *HomeScreen) View(width, height int) string {
	if h.celebrating {
		return components.Overlay(
			countdown.CelebrationTitle,
			countdown.CelebrationMessage,
			countdown.CloseLabel,
			width, height,
		)
	}

	compact := layout.IsCompactWidth(width) || layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight)
	cw := contentWidth(width)
	days := countdown.DaysRemaining(h.target, h.now())

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(RenderShield(shieldFor(days, h.state.Elapsed()))))
	}
	sections = append(sections,
		renderCountdown(h.state, cw, compact)+"\n"+renderDate(countdown.FormatDate(h.target), cw),
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Foreground(theme.Text).Render(intro),
	)

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Start"
}

func (h *HomeScreen) Href() string {
	return Href
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.celebrating {
		return []layout.KeyHint{{Key: "Enter", Description: countdown.CloseLabel}}
	}
	return nil
}
