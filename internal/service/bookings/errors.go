package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не является владельцем бронирования
	ErrAccessDenied = errors.New("bookings.service: access denied")

	// ErrBookingAlreadyStarted возвращается при попытке отменить начавшееся бронирование
	ErrBookingAlreadyStarted = errors.New("bookings.service: booking already started")

	// ErrNotConfirmed возвращается при попытке отменить бронирование не в статусе confirmed
	ErrNotConfirmed = errors.New("bookings.service: booking is not confirmed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings.service: invalid input")

	// ErrUnavailable возвращается, когда хранилище недоступно
	ErrUnavailable = errors.New("bookings.service: storage unavailable")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
