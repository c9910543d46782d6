package create_booking

import (
	"fmt"
	"time"

	"github.com/turfspot/TurfBookingService/internal/domain"
	"github.com/turfspot/TurfBookingService/internal/integrations/turfcatalog"
	"github.com/turfspot/TurfBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TurfID <= 0 {
		return fmt.Errorf("%w: turfID must be positive", ErrInvalidInput)
	}

	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDuration проверяет, что длительность - целое число часов в [1, 6]
func validateDuration(durationHours int) error {
	if durationHours < domain.MinDurationHours || durationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: duration must be between %d and %d hours, got %d",
			ErrInvalidDuration, domain.MinDurationHours, domain.MaxDurationHours, durationHours)
	}
	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if domain.DateInPast(bookingDate, now) {
		return fmt.Errorf("%w: date=%s", ErrDateInPast, bookingDate.Format(domain.DateFormat))
	}
	return nil
}

// validateOperatingHours проверяет, что весь запрошенный интервал лежит
// внутри рабочих часов площадки [open, close]
func validateOperatingHours(interval domain.Interval, turf *turfcatalog.Turf) error {
	openTime, err := types.NewTimeStringFromString(turf.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: turf id=%d has malformed open_time %q: %v", ErrInternal, turf.ID, turf.OpenTime, err)
	}

	closeTime, err := types.NewTimeStringFromString(turf.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: turf id=%d has malformed close_time %q: %v", ErrInternal, turf.ID, turf.CloseTime, err)
	}

	if interval.StartMinutes() < openTime.MinutesOfDay() || interval.EndMinutes() > closeTime.MinutesOfDay() {
		return fmt.Errorf("%w: requested %s+%dm, operating hours %s-%s",
			ErrOutsideOperatingHours, interval.StartTime, interval.DurationMinutes, turf.OpenTime, turf.CloseTime)
	}

	return nil
}

// findConflict возвращает первое подтверждённое бронирование, пересекающееся
// с запрошенным интервалом. Проверяется ПОЛНЫЙ запрошенный интервал, а не
// часовая ячейка сетки доступности: запрос 17:00 на 2 часа конфликтует
// с бронированием 18:00-19:00, хотя слот 17:00 в сетке свободен.
func findConflict(requested domain.Interval, bookings []*domain.Booking) *domain.Booking {
	for _, b := range bookings {
		if !b.IsConfirmed() {
			continue
		}
		if domain.Overlaps(requested, b.Interval()) {
			return b
		}
	}
	return nil
}
