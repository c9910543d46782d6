package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/turfspot/TurfBookingService/pkg/types"
)

func interval(date time.Time, start string, minutes int) Interval {
	return Interval{
		BookingDate:     date,
		StartTime:       types.TimeString(start),
		DurationMinutes: minutes,
	}
}

func TestOverlaps(t *testing.T) {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	otherDay := day.AddDate(0, 0, 1)

	tests := []struct {
		name     string
		a, b     Interval
		expected bool
	}{
		{
			name:     "identical intervals overlap",
			a:        interval(day, "18:00", 60),
			b:        interval(day, "18:00", 60),
			expected: true,
		},
		{
			name:     "partial overlap",
			a:        interval(day, "18:00", 60),
			b:        interval(day, "17:00", 120),
			expected: true,
		},
		{
			name:     "containment overlaps",
			a:        interval(day, "17:00", 360),
			b:        interval(day, "19:00", 60),
			expected: true,
		},
		{
			name:     "adjacent intervals do not overlap",
			a:        interval(day, "18:00", 60),
			b:        interval(day, "19:00", 60),
			expected: false,
		},
		{
			name:     "adjacent the other way",
			a:        interval(day, "19:00", 60),
			b:        interval(day, "18:00", 60),
			expected: false,
		},
		{
			name:     "disjoint intervals",
			a:        interval(day, "06:00", 60),
			b:        interval(day, "20:00", 120),
			expected: false,
		},
		{
			name:     "same times on different dates never overlap",
			a:        interval(day, "18:00", 60),
			b:        interval(otherDay, "18:00", 60),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.a, tt.b))
			// the predicate is symmetric
			assert.Equal(t, tt.expected, Overlaps(tt.b, tt.a))
		})
	}
}

func TestDateInPast(t *testing.T) {
	now := time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)

	assert.True(t, DateInPast(now.AddDate(0, 0, -1), now))
	assert.False(t, DateInPast(now, now))
	assert.False(t, DateInPast(now.AddDate(0, 0, 1), now))
	// earlier hour on the same day is not a past date
	assert.False(t, DateInPast(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), now))
}

func TestBookingHasStarted(t *testing.T) {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	b := &Booking{
		BookingDate:     day,
		StartTime:       types.TimeString("18:00"),
		DurationMinutes: 60,
		Status:          StatusConfirmed,
	}

	assert.False(t, b.HasStarted(time.Date(2025, 10, 15, 17, 59, 0, 0, time.UTC)))
	assert.True(t, b.HasStarted(time.Date(2025, 10, 15, 18, 0, 0, 0, time.UTC)))
	assert.True(t, b.HasStarted(time.Date(2025, 10, 16, 9, 0, 0, 0, time.UTC)))
}

func TestBookingCanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusRejected}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusRequested}).CanBeCancelled())
}
