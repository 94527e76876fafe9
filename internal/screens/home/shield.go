package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dbi/internal/ui/theme"
)

// ShieldVariant selects which shield art to display.
type ShieldVariant int

const (
	ShieldIdle        ShieldVariant = iota // More than a week to go
	ShieldSoon                             // Final week
	ShieldCelebrating                      // The day itself
)

// soonDays is the number of remaining days at which the shield turns to
// the accent color.
const soonDays = 7

const shieldIdle = `╭──────╮
│  ╭╮  │
│  ╰╯  │
╰╮    ╭╯
 ╰─╮╭─╯
   ╰╯`

const shieldSoon = `╭──────╮
│  ╭╮  │ !
│  ╰╯  │
╰╮    ╭╯
 ╰─╮╭─╯
   ╰╯`

const shieldCelebrating = `  ★  ★
╭──────╮
│  ✓   │
╰╮    ╭╯
 ╰─╮╭─╯
   ╰╯`

// shieldFor picks the variant for the number of whole days remaining.
func shieldFor(daysRemaining int, celebrating bool) ShieldVariant {
	switch {
	case celebrating:
		return ShieldCelebrating
	case daysRemaining < soonDays:
		return ShieldSoon
	default:
		return ShieldIdle
	}
}

// RenderShield returns the shield art for the given variant.
func RenderShield(v ShieldVariant) string {
	art := shieldIdle
	fg := theme.Primary

	switch v {
	case ShieldCelebrating:
		art = shieldCelebrating
		fg = theme.Success
	case ShieldSoon:
		art = shieldSoon
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
