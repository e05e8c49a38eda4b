package models

import (
	"math"
	"time"
)

// DateLayout is the calendar date format used for every stored date
const DateLayout = "2006-01-02"

// Date is a calendar date in YYYY-MM-DD form. The empty Date means "not set".
// Dates compare correctly as plain strings.
type Date string

// NewDate returns the calendar date of t in t's location
func NewDate(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// Today returns today's date in local time
func Today() Date {
	return NewDate(time.Now())
}

// IsZero reports whether the date is unset
func (d Date) IsZero() bool {
	return d == ""
}

// Time parses the date as midnight UTC. ok is false for empty or malformed dates.
func (d Date) Time() (t time.Time, ok bool) {
	if d.IsZero() {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DaysUntil returns the signed number of calendar days from today to d.
// ok is false when either date cannot be parsed.
func (d Date) DaysUntil(today Date) (days int, ok bool) {
	due, ok := d.Time()
	if !ok {
		return 0, false
	}
	from, ok := today.Time()
	if !ok {
		return 0, false
	}
	return int(math.Round(due.Sub(from).Hours() / 24)), true
}

// Before reports whether d is set and strictly earlier than other
func (d Date) Before(other Date) bool {
	return !d.IsZero() && d < other
}
