package get_available_slots

import (
	"time"

	"github.com/turfspot/TurfBookingService/internal/domain"
	getAvailableSlots "github.com/turfspot/TurfBookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель одного слота сетки доступности
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	IsAvailable     bool   `json:"isAvailable"`
}

// AvailableSlotsResponse HTTP модель ответа со слотами
type AvailableSlotsResponse struct {
	TurfID int64          `json:"turfId"`
	Date   string         `json:"date"`
	Slots  []SlotResponse `json:"slots"`
}

// ToUseCaseRequest собирает запрос use case из параметров URL
func ToUseCaseRequest(turfID int64, dateStr string, granularityMinutes int) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		TurfID:             turfID,
		Date:               date,
		GranularityMinutes: granularityMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
			IsAvailable:     s.IsAvailable,
		})
	}

	return &AvailableSlotsResponse{
		TurfID: resp.TurfID,
		Date:   resp.Date.Format(domain.DateFormat),
		Slots:  slots,
	}
}
