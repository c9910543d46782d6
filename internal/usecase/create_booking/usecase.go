package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/turfspot/TurfBookingService/internal/domain"
	bookingRepo "github.com/turfspot/TurfBookingService/internal/infra/storage/booking"
	"github.com/turfspot/TurfBookingService/internal/integrations/turfcatalog"
	"github.com/turfspot/TurfBookingService/pkg/pricing"
	"github.com/turfspot/TurfBookingService/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	turfClient   TurfCatalogClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	turfClient TurfCatalogClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		turfClient:   turfClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликтов и вставка выполняются в одной сериализуемой
// транзакции: из двух конкурентных запросов на пересекающийся интервал
// подтверждается ровно один, второй получает ErrSlotConflict.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, turf=%d, date=%s, time=%s, hours=%d",
		req.UserID, req.TurfID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Длительность - целые часы [1, 6]
	if err := validateDuration(req.DurationHours); err != nil {
		uc.logger.Warn("CreateBooking: duration validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Дата не в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 5. Получаем площадку из каталога
	turf, err := uc.turfClient.GetTurf(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, turfcatalog.ErrTurfNotFound) {
			uc.logger.Warn("CreateBooking: turf id=%d not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		if errors.Is(err, turfcatalog.ErrUnavailable) {
			uc.logger.Error("CreateBooking: turf catalog unavailable: %v", err)
			return nil, fmt.Errorf("%w: turf catalog: %v", ErrUnavailable, err)
		}
		uc.logger.Error("CreateBooking: failed to get turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	// Неактивная площадка неотличима от отсутствующей
	if !turf.IsActive {
		uc.logger.Warn("CreateBooking: turf id=%d is inactive", req.TurfID)
		return nil, ErrTurfNotFound
	}

	// 6. Строим ПОЛНЫЙ запрошенный интервал из времени начала и длительности
	requested := domain.Interval{
		BookingDate:     req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationHours * domain.MinutesPerHour,
	}

	// 7. Интервал целиком внутри рабочих часов площадки
	if err := validateOperatingHours(requested, turf); err != nil {
		uc.logger.Warn("CreateBooking: operating hours validation failed: %v", err)
		return nil, err
	}

	// 8. Считаем стоимость по текущей ставке каталога (ставка снимается
	// в бронирование и не пересчитывается при изменении каталога)
	totalAmount := pricing.Price(turf.HourlyRate, req.DurationHours)

	// Бронирование проходит жизненный цикл requested -> confirmed внутри
	// одной commit-попытки; строка со статусом requested никогда не пишется
	booking := &domain.Booking{
		TurfID:          req.TurfID,
		UserID:          req.UserID,
		BookingDate:     req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: requested.DurationMinutes,
		Status:          domain.StatusRequested,
		TurfName:        turf.Name,
		HourlyRate:      turf.HourlyRate,
		TotalAmount:     totalAmount,
		Notes:           req.Notes,
	}

	var result *domain.Booking

	// 9. Conflict-check + insert атомарно, в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Все подтверждённые бронирования площадки на эту дату,
		// одним запросом, с блокировкой строк (FOR UPDATE)
		existing, err := uc.bookingRepo.FindConfirmedByTurfAndDate(txCtx, req.TurfID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 9.2. Полный запрошенный интервал против каждого подтверждённого
		if conflict := findConflict(requested, existing); conflict != nil {
			uc.logger.Warn("CreateBooking: slot conflict with booking id=%d (%s+%dm)",
				conflict.ID, conflict.StartTime, conflict.DurationMinutes)
			return ErrSlotConflict
		}

		// 9.3. Конфликтов нет - бронирование подтверждено, сохраняем.
		// Отклонённые попытки не персистятся вовсе.
		booking.Status = domain.StatusConfirmed

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.mapCommitError(err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d (turf=%d, %s %s+%dh, amount=%.2f)",
		result.ID, result.TurfID, result.BookingDate.Format(domain.DateFormat),
		result.StartTime, req.DurationHours, result.TotalAmount)

	endTime, err := result.Interval().EndTime()
	if err != nil {
		// Интервал прошёл валидацию рабочих часов, сюда попасть нельзя
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	return &Response{
		ID:              result.ID,
		TurfID:          result.TurfID,
		UserID:          result.UserID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         endTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		TurfName:        result.TurfName,
		HourlyRate:      result.HourlyRate,
		TotalAmount:     result.TotalAmount,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// mapCommitError приводит ошибки commit-этапа к ошибкам usecase.
// Прерывание сериализуемой транзакции и нарушение exclusion constraint
// означают одно и то же: конкурент успел занять пересекающийся интервал.
func (uc *UseCase) mapCommitError(err error) error {
	switch {
	case errors.Is(err, ErrSlotConflict):
		return ErrSlotConflict

	case errors.Is(err, bookingRepo.ErrSlotTaken):
		uc.logger.Warn("CreateBooking: storage exclusion constraint rejected insert: %v", err)
		return ErrSlotConflict

	case errors.Is(err, txmanager.ErrSerialization):
		uc.logger.Warn("CreateBooking: serializable transaction aborted by concurrent write: %v", err)
		return ErrSlotConflict

	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		uc.logger.Error("CreateBooking: storage call exceeded deadline: %v", err)
		return fmt.Errorf("%w: storage: %v", ErrUnavailable, err)

	case errors.Is(err, ErrInternal):
		return err

	default:
		uc.logger.Error("CreateBooking: commit failed: %v", err)
		return fmt.Errorf("%w: commit failed: %v", ErrInternal, err)
	}
}
