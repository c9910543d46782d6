package domain

import (
	"time"

	"github.com/turfspot/TurfBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusRequested is transient: a booking holds it only between
	// validation and the commit of the conflict-checked insert. It is
	// never observable as a persisted row.
	StatusRequested BookingStatus = "requested"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusRejected  BookingStatus = "rejected"
)

// Booking represents an exclusive reservation of a turf for a time interval
type Booking struct {
	ID              int64
	TurfID          int64
	UserID          string // identity-provider subject, trusted as given
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Snapshotted at booking time; catalog rate changes never apply retroactively
	TurfName     string
	HourlyRate   float64
	TotalAmount  float64

	Notes       *string
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the occupied time interval of the booking
func (b *Booking) Interval() Interval {
	return Interval{
		BookingDate:     b.BookingDate,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
	}
}

// IsConfirmed returns true if the booking currently occupies its slot
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the lifecycle allows a cancellation.
// Only confirmed bookings can transition to cancelled; cancelled and
// rejected are terminal.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// HasStarted reports whether the booked interval has begun relative to now
func (b *Booking) HasStarted(now time.Time) bool {
	startOfDay := time.Date(b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(), 0, 0, 0, 0, now.Location())
	start := startOfDay.Add(time.Duration(b.StartTime.MinutesOfDay()) * time.Minute)
	return !start.After(now)
}

// DurationHours returns the duration in whole hours
func (b *Booking) DurationHours() int {
	return b.DurationMinutes / MinutesPerHour
}
