// Package schedule converts stored appointment date/time strings into
// relative countdown labels and duration strings for display.
//
// Parsing functions reject malformed input with an error instead of letting
// garbage propagate into display strings; the Format helpers render the
// canonical fallback "--" when parsing fails.
package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/raddesk/raddesk/internal/validation"
)

// Fallback is rendered whenever a time string cannot be parsed.
const Fallback = "--"

// RelativeLabel renders a signed minute offset as a human-readable
// relative-time string: "Now" for zero, "in 2h 5m" for the future,
// "30m ago" for the past. Zero components are omitted, so 120 minutes
// renders as "in 2h", not "in 2h 0m".
func RelativeLabel(minutes int) string {
	if minutes == 0 {
		return "Now"
	}

	abs := minutes
	if abs < 0 {
		abs = -abs
	}
	hours := abs / 60
	remaining := abs % 60

	var label string
	switch {
	case hours > 0 && remaining > 0:
		label = fmt.Sprintf("%dh %dm", hours, remaining)
	case hours > 0:
		label = fmt.Sprintf("%dh", hours)
	default:
		label = fmt.Sprintf("%dm", remaining)
	}

	if minutes < 0 {
		return label + " ago"
	}
	return "in " + label
}

// MinutesBetween parses two 24-hour "HH:MM" strings, anchors both to ref's
// calendar date, and returns timeA minus timeB in whole minutes. Both
// inputs are treated as today; callers must not pass cross-day comparisons.
func MinutesBetween(timeA, timeB string, ref time.Time) (int, error) {
	a, err := onDate(timeA, ref)
	if err != nil {
		return 0, err
	}
	b, err := onDate(timeB, ref)
	if err != nil {
		return 0, err
	}
	return roundMinutes(a.Sub(b)), nil
}

// MinutesUntilClock parses a 24-hour "HH:MM" string anchored to now's
// calendar date and returns the signed minutes from now.
func MinutesUntilClock(clock string, now time.Time) (int, error) {
	at, err := onDate(clock, now)
	if err != nil {
		return 0, err
	}
	return roundMinutes(at.Sub(now)), nil
}

// MinutesUntil combines a "YYYY-MM-DD" date and a 12-hour "H:MM AM/PM"
// time into a single local timestamp and returns the signed whole-minute
// difference from now.
func MinutesUntil(date, time12h string, now time.Time) (int, error) {
	day, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return 0, fmt.Errorf("malformed appointment date %q", date)
	}
	hour, minute, err := validation.ParseTime12h(time12h)
	if err != nil {
		return 0, err
	}
	at := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())
	return roundMinutes(at.Sub(now)), nil
}

// FormatRelativeAppointment renders the countdown to an appointment given
// its stored date and 12-hour time strings. Malformed input renders the
// fallback string.
func FormatRelativeAppointment(date, time12h string, now time.Time) string {
	minutes, err := MinutesUntil(date, time12h, now)
	if err != nil {
		return Fallback
	}
	return RelativeLabel(minutes)
}

// FormatClockCountdown renders the countdown to a same-day 24-hour "HH:MM"
// wall-clock time. Malformed input renders the fallback string.
func FormatClockCountdown(clock string, now time.Time) string {
	minutes, err := MinutesUntilClock(clock, now)
	if err != nil {
		return Fallback
	}
	return RelativeLabel(minutes)
}

// FormatDuration renders a minute count as "{h}h {m}m", or "{m}m" when
// under an hour. Unlike RelativeLabel it never shows directionality, and a
// non-numeric input renders the fallback string.
func FormatDuration(minutes float64) string {
	if math.IsNaN(minutes) {
		return Fallback
	}
	abs := int(math.Abs(math.Round(minutes)))
	hours := abs / 60
	remaining := abs % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, remaining)
	}
	return fmt.Sprintf("%dm", remaining)
}

// onDate anchors a 24-hour "HH:MM" string to ref's calendar date.
func onDate(clock string, ref time.Time) (time.Time, error) {
	hour, minute, err := validation.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location()), nil
}

func roundMinutes(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}
