package get_available_slots

import (
	"time"

	"github.com/turfspot/TurfBookingService/internal/domain"
	"github.com/turfspot/TurfBookingService/pkg/types"
)

// generateCandidates строит сетку кандидатов начала бронирования:
// от открытия площадки с шагом granularity, пока часовой интервал
// по умолчанию целиком помещается до закрытия
func generateCandidates(openTime, closeTime types.TimeString, granularityMinutes int) []types.TimeString {
	candidates := make([]types.TimeString, 0)

	closeMinutes := closeTime.MinutesOfDay()
	for m := openTime.MinutesOfDay(); m+domain.DefaultSlotDurationMinutes <= closeMinutes; m += granularityMinutes {
		ts, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}
		candidates = append(candidates, ts)
	}

	return candidates
}

// markAvailability отмечает каждый кандидат свободным, если его часовой
// интервал не пересекается ни с одним подтверждённым бронированием.
// Список бронирований получен одним запросом - по одному обращению к
// хранилищу на весь вызов, а не на каждый слот.
func markAvailability(
	candidates []types.TimeString,
	date time.Time,
	bookings []*domain.Booking,
) []Slot {
	slots := make([]Slot, len(candidates))

	for i, start := range candidates {
		candidate := domain.Interval{
			BookingDate:     date,
			StartTime:       start,
			DurationMinutes: domain.DefaultSlotDurationMinutes,
		}

		available := true
		for _, b := range bookings {
			if !b.IsConfirmed() {
				continue
			}
			if domain.Overlaps(candidate, b.Interval()) {
				available = false
				break
			}
		}

		slots[i] = Slot{
			StartTime:       start,
			DurationMinutes: domain.DefaultSlotDurationMinutes,
			IsAvailable:     available,
		}
	}

	return slots
}
