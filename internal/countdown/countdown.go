// Package countdown computes the next Safer Internet Day (the second Tuesday
// of February, 10:00 local time) and the remaining time until it.
package countdown

import (
	"fmt"
	"time"
)

// EventHour is the local hour at which the day's events start.
const EventHour = 10

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Display strings.
const (
	ElapsedMessage     = "🎉 Dziś jest Dzień Bezpiecznego Internetu! 🎉"
	CelebrationTitle   = ElapsedMessage
	CelebrationMessage = "Dbajmy o bezpieczeństwo w sieci razem!"
	CloseLabel         = "Zamknij"
)

// NextOccurrence returns the next second Tuesday of February at 10:00 in
// now's location that lies strictly after now. An occurrence equal to now
// counts as reached, so feeding the result back in yields next year's date.
func NextOccurrence(now time.Time) time.Time {
	target := secondTuesday(now.Year(), now.Location())
	if !target.After(now) {
		target = secondTuesday(now.Year()+1, now.Location())
	}
	return target
}

// secondTuesday walks forward from February 1 to the first Tuesday and adds
// a week.
func secondTuesday(year int, loc *time.Location) time.Time {
	d := time.Date(year, time.February, 1, 0, 0, 0, 0, loc)
	for d.Weekday() != time.Tuesday {
		d = d.AddDate(0, 0, 1)
	}
	d = d.AddDate(0, 0, 7)
	return time.Date(d.Year(), d.Month(), d.Day(), EventHour, 0, 0, 0, loc)
}

// Kind tags a DisplayState.
type Kind int

const (
	KindRemaining Kind = iota
	KindElapsed
)

// DisplayState is what the countdown shows at a given moment.
type DisplayState struct {
	Kind    Kind
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Elapsed reports whether the target has been reached.
func (d DisplayState) Elapsed() bool {
	return d.Kind == KindElapsed
}

// Unit is one labelled cell of the countdown.
type Unit struct {
	Value string
	Label string
}

// Units returns the four countdown cells. Days are not padded; hours,
// minutes and seconds are padded to two digits.
func (d DisplayState) Units() []Unit {
	return []Unit{
		{Value: fmt.Sprintf("%d", d.Days), Label: "dni"},
		{Value: fmt.Sprintf("%02d", d.Hours), Label: "godzin"},
		{Value: fmt.Sprintf("%02d", d.Minutes), Label: "minut"},
		{Value: fmt.Sprintf("%02d", d.Seconds), Label: "sekund"},
	}
}

// String renders the state on one line.
func (d DisplayState) String() string {
	if d.Elapsed() {
		return ElapsedMessage
	}
	u := d.Units()
	return fmt.Sprintf("%s %s %s:%s:%s", u[0].Value, u[0].Label, u[1].Value, u[2].Value, u[3].Value)
}

// Render computes the display state for target as seen at now.
func Render(target, now time.Time) DisplayState {
	diff := target.Sub(now).Milliseconds()
	if diff <= 0 {
		return DisplayState{Kind: KindElapsed}
	}
	return DisplayState{
		Kind:    KindRemaining,
		Days:    int(diff / msPerDay),
		Hours:   int((diff % msPerDay) / msPerHour),
		Minutes: int((diff % msPerHour) / msPerMinute),
		Seconds: int((diff % msPerMinute) / msPerSecond),
	}
}

// DaysRemaining returns whole days left until target, or 0 once reached.
func DaysRemaining(target, now time.Time) int {
	diff := target.Sub(now).Milliseconds()
	if diff <= 0 {
		return 0
	}
	return int(diff / msPerDay)
}

// IsTargetDay reports whether now falls on target's calendar date, compared
// by year, month and day in target's location.
func IsTargetDay(target, now time.Time) bool {
	n := now.In(target.Location())
	ty, tm, td := target.Date()
	ny, nm, nd := n.Date()
	return ty == ny && tm == nm && td == nd
}

var monthsGenitive = [...]string{
	"stycznia", "lutego", "marca", "kwietnia", "maja", "czerwca",
	"lipca", "sierpnia", "września", "października", "listopada", "grudnia",
}

// FormatDate renders t as "10 lutego 2026".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthsGenitive[t.Month()-1], t.Year())
}
