package models

import (
	"time"

	"github.com/turfspot/TurfBookingService/internal/domain"
)

// BookingResponse представление бронирования для внешних потребителей
type BookingResponse struct {
	ID              int64      `json:"id"`
	TurfID          int64      `json:"turf_id"`
	UserID          string     `json:"user_id"`
	BookingDate     string     `json:"booking_date"`
	StartTime       string     `json:"start_time"`
	EndTime         string     `json:"end_time"`
	DurationMinutes int        `json:"duration_minutes"`
	Status          string     `json:"status"`
	TurfName        string     `json:"turf_name"`
	HourlyRate      float64    `json:"hourly_rate"`
	TotalAmount     float64    `json:"total_amount"`
	Notes           *string    `json:"notes,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// GetUserBookingsRequest параметры выборки истории бронирований пользователя
type GetUserBookingsRequest struct {
	UserID string
	Status *string
}

// CancelBookingRequest параметры отмены бронирования
type CancelBookingRequest struct {
	BookingID int64
	UserID    string
}

// FromDomainBooking конвертирует доменную модель в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	// Интервал валидировался при создании, выход за пределы суток невозможен
	endTime, _ := b.Interval().EndTime()

	return &BookingResponse{
		ID:              b.ID,
		TurfID:          b.TurfID,
		UserID:          b.UserID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         endTime.String(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		TurfName:        b.TurfName,
		HourlyRate:      b.HourlyRate,
		TotalAmount:     b.TotalAmount,
		Notes:           b.Notes,
		CancelledAt:     b.CancelledAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookings конвертирует список доменных моделей
func FromDomainBookings(bs []*domain.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromDomainBooking(b))
	}
	return out
}
