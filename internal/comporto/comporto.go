// Package comporto implements the comporto accounting rules: remaining-day
// arithmetic against a CCNL budget and the status classifications applied to
// the result. Everything here is a pure function over already-fetched data.
package comporto

import (
	"time"

	"github.com/studiopaghe/comporto-backend-go/internal/domain/absence"
)

// Status is the four-band classification of a remaining-day figure.
type Status int

const (
	StatusExpired Status = iota
	StatusCritical
	StatusWarning
	StatusCompliant
)

func (s Status) String() string {
	switch s {
	case StatusExpired:
		return "expired"
	case StatusCritical:
		return "critical"
	case StatusWarning:
		return "warning"
	default:
		return "compliant"
	}
}

// Label returns the Italian UI label for the status.
func (s Status) Label() string {
	switch s {
	case StatusExpired:
		return "Scaduto"
	case StatusCritical:
		return "Critico"
	case StatusWarning:
		return "Attenzione"
	default:
		return "OK"
	}
}

// UsedDays sums the counted days over an absence history. Order is
// irrelevant and there is no rolling window: all historical absences count
// forever.
func UsedDays(absences []absence.Absence) int {
	sum := 0
	for _, a := range absences {
		sum += a.DaysCounted
	}
	return sum
}

// RemainingDays subtracts the absence history from the CCNL budget. The
// result is not clamped: a negative value signals the budget is already
// exceeded.
func RemainingDays(totalAllowedDays int, absences []absence.Absence) int {
	return totalAllowedDays - UsedDays(absences)
}

// Classify maps a remaining-day figure onto the four bands. Boundaries are
// exact: 10 is Critical, 11 and 30 are Warning, 31 is Compliant, 0 is
// Critical rather than Expired.
func Classify(remainingDays int) Status {
	switch {
	case remainingDays < 0:
		return StatusExpired
	case remainingDays <= 10:
		return StatusCritical
	case remainingDays <= 30:
		return StatusWarning
	default:
		return StatusCompliant
	}
}

// ExportLabel is the three-way text rendering used in tabular exports. It
// collapses the bands differently from Classify (11..30 is already
// "Conforme" here) and the two must stay separate.
func ExportLabel(remainingDays int) string {
	switch {
	case remainingDays < 0:
		return "Scaduto"
	case remainingDays <= 10:
		return "Attenzione"
	default:
		return "Conforme"
	}
}

// CalendarDaysBetween counts days in the inclusive range between two dates,
// weekends included. Argument order does not matter.
func CalendarDaysBetween(a, b time.Time) int {
	a = truncateToDay(a)
	b = truncateToDay(b)
	diff := b.Sub(a)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours()/24) + 1
}

// WorkingDaysBetween counts days in [start, end] inclusive, excluding
// Saturdays and Sundays. Returns 0 when end is before start.
func WorkingDaysBetween(start, end time.Time) int {
	start = truncateToDay(start)
	end = truncateToDay(end)
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
