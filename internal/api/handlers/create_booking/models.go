package create_booking

import (
	"time"

	"github.com/turfspot/TurfBookingService/internal/domain"
	createBooking "github.com/turfspot/TurfBookingService/internal/usecase/create_booking"
	"github.com/turfspot/TurfBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TurfID        int64   `json:"turfId"`
	BookingDate   string  `json:"bookingDate"` // "2025-10-20"
	StartTime     string  `json:"startTime"`   // "18:00"
	DurationHours int     `json:"durationHours"`
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	TurfID          int64   `json:"turfId"`
	UserID          string  `json:"userId"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	TurfName        string  `json:"turfName"`
	HourlyRate      float64 `json:"hourlyRate"`
	TotalAmount     float64 `json:"totalAmount"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		TurfID:        r.TurfID,
		UserID:        userID,
		Date:          bookingDate,
		StartTime:     startTime,
		DurationHours: r.DurationHours,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		TurfID:          resp.TurfID,
		UserID:          resp.UserID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		TurfName:        resp.TurfName,
		HourlyRate:      resp.HourlyRate,
		TotalAmount:     resp.TotalAmount,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
