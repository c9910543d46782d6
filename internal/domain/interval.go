package domain

import (
	"time"

	"github.com/turfspot/TurfBookingService/pkg/types"
)

// Interval is a date-scoped half-open time range [start, end) with minute
// granularity. It is the unit the no-overlap invariant is stated over.
type Interval struct {
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
}

// StartMinutes returns the start as minutes since midnight
func (i Interval) StartMinutes() int {
	return i.StartTime.MinutesOfDay()
}

// EndMinutes returns the exclusive end as minutes since midnight
func (i Interval) EndMinutes() int {
	return i.StartTime.MinutesOfDay() + i.DurationMinutes
}

// EndTime returns the exclusive end of the interval
func (i Interval) EndTime() (types.TimeString, error) {
	return i.StartTime.AddMinutes(i.DurationMinutes)
}

// Overlaps reports whether two intervals occupy common time.
// Half-open semantics: an interval ending at 20:00 and one starting at
// 20:00 do not overlap. Intervals on different dates never overlap.
// Pure and storage-independent so both the availability path and the
// commit path share the exact same predicate.
func Overlaps(a, b Interval) bool {
	if !SameDay(a.BookingDate, b.BookingDate) {
		return false
	}
	return a.StartMinutes() < b.EndMinutes() && b.StartMinutes() < a.EndMinutes()
}

// SameDay reports whether two timestamps fall on the same calendar date
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateInPast reports whether date is on an earlier calendar day than now
func DateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
