package create_booking

import "errors"

var (
	// ErrTurfNotFound возвращается, когда площадка не найдена или неактивна
	ErrTurfNotFound = errors.New("create_booking: turf not found")

	// ErrDateInPast возвращается, когда дата бронирования уже прошла
	ErrDateInPast = errors.New("create_booking: booking date is in the past")

	// ErrInvalidDuration возвращается, когда длительность не является
	// целым числом часов в диапазоне [1, 6]
	ErrInvalidDuration = errors.New("create_booking: invalid booking duration")

	// ErrOutsideOperatingHours возвращается, когда запрошенный интервал
	// выходит за рабочие часы площадки
	ErrOutsideOperatingHours = errors.New("create_booking: interval is outside operating hours")

	// ErrSlotConflict возвращается, когда запрошенный интервал пересекается
	// с подтверждённым бронированием. Ядро никогда не ретраит тот же
	// интервал - выбор другого слота остаётся за вызывающей стороной.
	ErrSlotConflict = errors.New("create_booking: slot conflicts with an existing booking")

	// ErrUnavailable возвращается, когда хранилище или каталог не ответили
	// в срок. Безопасно повторить запрос с backoff.
	ErrUnavailable = errors.New("create_booking: dependency unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
