package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/turfspot/TurfBookingService/internal/domain"
	"github.com/turfspot/TurfBookingService/internal/integrations/turfcatalog"
	"github.com/turfspot/TurfBookingService/pkg/types"
)

// UseCase use case для получения сетки доступных слотов
type UseCase struct {
	bookingRepo  BookingRepository
	turfClient   TurfCatalogClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	turfClient TurfCatalogClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		turfClient:   turfClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов.
// Сетка носит информационный характер: слот, показанный свободным, может
// быть занят к моменту создания - это разрешается атомарной commit-проверкой,
// а не сериализацией чтения с записями.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: turf=%d, date=%s, granularity=%d",
		req.TurfID, req.Date.Format(domain.DateFormat), req.GranularityMinutes)

	// 1. Валидация входных данных
	granularity, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	now := uc.timeProvider.Now()
	if domain.DateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: date=%s", ErrDateInPast, req.Date.Format(domain.DateFormat))
	}

	// 3. Получаем площадку из каталога
	turf, err := uc.turfClient.GetTurf(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, turfcatalog.ErrTurfNotFound) {
			uc.logger.Warn("GetAvailableSlots: turf id=%d not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		if errors.Is(err, turfcatalog.ErrUnavailable) {
			uc.logger.Error("GetAvailableSlots: turf catalog unavailable: %v", err)
			return nil, fmt.Errorf("%w: turf catalog: %v", ErrUnavailable, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to get turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	if !turf.IsActive {
		uc.logger.Warn("GetAvailableSlots: turf id=%d is inactive", req.TurfID)
		return nil, ErrTurfNotFound
	}

	// 4. Рабочие часы площадки
	openTime, err := types.NewTimeStringFromString(turf.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: turf id=%d has malformed open_time %q: %v", ErrInternal, turf.ID, turf.OpenTime, err)
	}
	closeTime, err := types.NewTimeStringFromString(turf.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: turf id=%d has malformed close_time %q: %v", ErrInternal, turf.ID, turf.CloseTime, err)
	}

	// 5. Генерируем сетку кандидатов
	candidates := generateCandidates(openTime, closeTime, granularity)

	// 6. Подтверждённые бронирования на дату - ровно один запрос на вызов
	bookings, err := uc.bookingRepo.FindConfirmedByTurfAndDate(ctx, req.TurfID, req.Date)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			uc.logger.Error("GetAvailableSlots: storage call exceeded deadline: %v", err)
			return nil, fmt.Errorf("%w: storage: %v", ErrUnavailable, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Отмечаем занятость каждого кандидата
	slots := markAvailability(candidates, req.Date, bookings)

	uc.logger.Info("GetAvailableSlots: generated %d slots for turf=%d, date=%s",
		len(slots), req.TurfID, req.Date.Format(domain.DateFormat))

	return &Response{
		TurfID: req.TurfID,
		Date:   req.Date,
		Slots:  slots,
	}, nil
}

// validateRequest валидирует запрос и возвращает шаг сетки
func validateRequest(req *Request) (int, error) {
	if req.TurfID <= 0 {
		return 0, fmt.Errorf("%w: turfID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return 0, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	granularity := req.GranularityMinutes
	if granularity == 0 {
		granularity = domain.DefaultSlotGranularityMinutes
	}
	if granularity < domain.MinSlotGranularityMinutes || granularity > domain.MaxSlotGranularityMinutes {
		return 0, fmt.Errorf("%w: granularity must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotGranularityMinutes, domain.MaxSlotGranularityMinutes)
	}

	return granularity, nil
}
