package get_available_slots

import (
	"context"
	"time"

	"github.com/turfspot/TurfBookingService/internal/domain"
	"github.com/turfspot/TurfBookingService/internal/integrations/turfcatalog"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// FindConfirmedByTurfAndDate получает подтверждённые бронирования
	// площадки на дату одним запросом
	FindConfirmedByTurfAndDate(ctx context.Context, turfID int64, date time.Time) ([]*domain.Booking, error)
}

// TurfCatalogClient интерфейс клиента каталога площадок
type TurfCatalogClient interface {
	GetTurf(ctx context.Context, turfID int64) (*turfcatalog.Turf, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
