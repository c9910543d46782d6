package turfcatalog

import "errors"

var (
	// ErrTurfNotFound возвращается, когда площадка не найдена в каталоге
	ErrTurfNotFound = errors.New("turf not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("turfcatalog client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("turfcatalog client: invalid response")

	// ErrUnavailable возвращается, когда каталог недоступен или не ответил
	// в срок. Вызывающая сторона может повторить запрос с backoff.
	ErrUnavailable = errors.New("turfcatalog client: service unavailable")
)
