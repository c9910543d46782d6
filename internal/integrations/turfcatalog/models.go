package turfcatalog

// Turf модель площадки из каталога TurfService
type Turf struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	HourlyRate float64 `json:"hourly_rate"`
	OpenTime   string  `json:"open_time"`  // "06:00"
	CloseTime  string  `json:"close_time"` // "22:00"
	IsActive   bool    `json:"is_active"`
}

// ErrorResponse модель ошибки от TurfService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
