// Package themepref resolves and persists the light/dark theme preference.
package themepref

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/abhisek/dbi/internal/store"
)

// PreferenceKey is the storage key for an explicit user choice. Absence
// means the theme follows the system.
const PreferenceKey = "dbi-theme"

// NotificationTTL is how long a theme-change notification stays visible.
const NotificationTTL = 3000 * time.Millisecond

// ErrInvalidTheme is returned when parsing an unknown theme name.
var ErrInvalidTheme = errors.New("themepref: invalid theme")

// Theme is an effective page theme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Parse validates a theme name.
func Parse(s string) (Theme, error) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

// Other returns the opposite theme.
func (t Theme) Other() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// systemTheme maps the system dark-mode signal to a theme.
func systemTheme(dark bool) Theme {
	if dark {
		return Dark
	}
	return Light
}

// Palette is the styling target a theme is applied to.
type Palette interface {
	// SetOverrides applies the fixed dark override set.
	SetOverrides()
	// ClearOverrides drops every override, back to baseline styling.
	ClearOverrides()
}

// Control is the toggle button; it shows the action it will take, i.e. the
// other theme.
type Control struct {
	Icon  string
	Title string
}

// ControlFor returns the toggle control for the currently applied theme.
func ControlFor(current Theme) Control {
	if current == Dark {
		return Control{Icon: "☀️", Title: "Włącz jasny motyw"}
	}
	return Control{Icon: "🌙", Title: "Włącz ciemny motyw"}
}

// Notification announces a theme change. Seq identifies it so a stale
// expiry cannot dismiss a newer one.
type Notification struct {
	Seq   int
	Theme Theme
	Text  string
}

func notificationText(t Theme) string {
	if t == Dark {
		return "🌙 Włączono ciemny motyw"
	}
	return "☀️ Włączono jasny motyw"
}

// Manager owns the effective theme and its persistence.
type Manager struct {
	kv         store.KV
	palette    Palette
	systemDark bool

	effective    Theme
	control      Control
	notification *Notification
	seq          int
}

// NewManager creates a manager. palette may be nil for headless use.
func NewManager(kv store.KV, palette Palette, systemDark bool) *Manager {
	return &Manager{
		kv:         kv,
		palette:    palette,
		systemDark: systemDark,
		effective:  Light,
		control:    ControlFor(Light),
	}
}

// Load resolves the effective theme and applies it, as on page load.
func (m *Manager) Load(ctx context.Context) Theme {
	t := m.ResolveEffective(ctx)
	m.Apply(t)
	return t
}

// Stored returns the persisted preference, if any. Unknown stored values are
// ignored.
func (m *Manager) Stored(ctx context.Context) (Theme, bool) {
	raw, err := m.kv.Get(ctx, PreferenceKey)
	if errors.Is(err, store.ErrNotFound) {
		return "", false
	}
	if err != nil {
		log.Printf("warning: read theme preference: %v", err)
		return "", false
	}
	t, err := Parse(raw)
	if err != nil {
		log.Printf("warning: ignoring stored theme: %v", err)
		return "", false
	}
	return t, true
}

// ResolveEffective returns the persisted preference, else the system signal,
// else light.
func (m *Manager) ResolveEffective(ctx context.Context) Theme {
	if t, ok := m.Stored(ctx); ok {
		return t
	}
	return systemTheme(m.systemDark)
}

// Apply sets or clears the palette overrides and updates the toggle control.
// Applying the same theme twice leaves the same result.
func (m *Manager) Apply(t Theme) {
	if m.palette != nil {
		if t == Dark {
			m.palette.SetOverrides()
		} else {
			m.palette.ClearOverrides()
		}
	}
	m.effective = t
	m.control = ControlFor(t)
}

// Toggle flips relative to the persisted value (light when none), persists
// the result unconditionally, applies it and returns the notification to show.
// A storage failure is returned after the theme has been applied.
func (m *Manager) Toggle(ctx context.Context) (Notification, error) {
	current, ok := m.Stored(ctx)
	if !ok {
		current = Light
	}
	next := current.Other()

	err := m.kv.Set(ctx, PreferenceKey, string(next))
	if err != nil {
		err = fmt.Errorf("persist theme: %w", err)
	}
	m.Apply(next)

	m.seq++
	n := Notification{Seq: m.seq, Theme: next, Text: notificationText(next)}
	m.notification = &n
	return n, err
}

// ResetToSystemDefault forgets the persisted preference and applies the
// system theme.
func (m *Manager) ResetToSystemDefault(ctx context.Context) error {
	if err := m.kv.Delete(ctx, PreferenceKey); err != nil {
		return fmt.Errorf("clear theme: %w", err)
	}
	m.Apply(systemTheme(m.systemDark))
	return nil
}

// SystemChanged records a new system dark-mode signal. The system theme is
// re-applied only while no explicit preference is persisted; it reports
// whether it did so.
func (m *Manager) SystemChanged(ctx context.Context, dark bool) bool {
	m.systemDark = dark
	if _, ok := m.Stored(ctx); ok {
		return false
	}
	m.Apply(systemTheme(dark))
	return true
}

// SystemDark returns the last known system signal.
func (m *Manager) SystemDark() bool {
	return m.systemDark
}

// Effective returns the applied theme.
func (m *Manager) Effective() Theme {
	return m.effective
}

// Control returns the toggle control for the applied theme.
func (m *Manager) Control() Control {
	return m.control
}

// Notification returns the visible notification, if any.
func (m *Manager) Notification() (Notification, bool) {
	if m.notification == nil {
		return Notification{}, false
	}
	return *m.notification, true
}

// Expire dismisses the notification with the given sequence number. Expiring
// a notification that has already been replaced does nothing.
func (m *Manager) Expire(seq int) {
	if m.notification != nil && m.notification.Seq == seq {
		m.notification = nil
	}
}
