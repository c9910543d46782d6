package create_booking

import (
	"time"

	"github.com/turfspot/TurfBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	TurfID        int64            // ID площадки
	UserID        string           // Идентификатор пользователя из identity provider
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала (например, "18:00")
	DurationHours int              // Длительность в целых часах [1, 6]
	Notes         *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	TurfID          int64            // ID площадки
	UserID          string           // Идентификатор пользователя
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания (полуоткрытый интервал)
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования

	// Снимок данных площадки на момент бронирования
	TurfName    string  // Название площадки
	HourlyRate  float64 // Почасовая ставка
	TotalAmount float64 // Итоговая стоимость

	Notes *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
