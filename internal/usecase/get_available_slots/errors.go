package get_available_slots

import "errors"

var (
	// ErrTurfNotFound возвращается, когда площадка не найдена или неактивна
	ErrTurfNotFound = errors.New("get_available_slots: turf not found")

	// ErrDateInPast возвращается, когда запрошенная дата уже прошла
	ErrDateInPast = errors.New("get_available_slots: date is in the past")

	// ErrUnavailable возвращается, когда хранилище или каталог не ответили
	// в срок. Безопасно повторить запрос с backoff.
	ErrUnavailable = errors.New("get_available_slots: dependency unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
