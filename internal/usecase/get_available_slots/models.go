package get_available_slots

import (
	"time"

	"github.com/turfspot/TurfBookingService/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	TurfID             int64     // ID площадки
	Date               time.Time // Дата (без времени)
	GranularityMinutes int       // Шаг сетки кандидатов; 0 = 60 минут
}

// Response модель ответа со списком слотов
// Слоты упорядочены по возрастанию времени начала
type Response struct {
	TurfID int64     // ID площадки
	Date   time.Time // Дата, на которую запрашивались слоты
	Slots  []Slot    // Сетка кандидатов с отметкой занятости
}

// Slot кандидат начала бронирования на сетке доступности.
// Отметка занятости относится к часовому интервалу по умолчанию;
// многочасовые заявки перепроверяются целиком на этапе создания.
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "18:00")
	DurationMinutes int              // Длительность интервала по умолчанию
	IsAvailable     bool             // Свободен ли часовой интервал
}
