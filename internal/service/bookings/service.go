package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/turfspot/TurfBookingService/internal/domain"
	"github.com/turfspot/TurfBookingService/internal/infra/storage/booking"
	"github.com/turfspot/TurfBookingService/internal/service/bookings/models"
)

// Service сервис для работы с жизненным циклом бронирований:
// просмотр, история пользователя и отмена.
type Service struct {
	repo         BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// New создает новый сервис бронирований
func New(repo BookingRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID возвращает бронирование по ID. Доступно только владельцу.
func (s *Service) GetByID(ctx context.Context, bookingID int64, userID string) (*models.BookingResponse, error) {
	if bookingID <= 0 || userID == "" {
		return nil, ErrInvalidInput
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, s.mapRepoError(err, bookingID)
	}

	if b.UserID != userID {
		s.logger.Warn("[GetByID] User %s attempted to access booking %d owned by another user", userID, bookingID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(b), nil
}

// GetUserBookings возвращает историю бронирований пользователя,
// опционально отфильтрованную по статусу.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) ([]*models.BookingResponse, error) {
	if req == nil || req.UserID == "" {
		return nil, ErrInvalidInput
	}

	var status *domain.BookingStatus
	if req.Status != nil {
		st := domain.BookingStatus(*req.Status)
		switch st {
		case domain.StatusConfirmed, domain.StatusCancelled, domain.StatusRejected:
			status = &st
		default:
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
	}

	bs, err := s.repo.GetByUserID(ctx, req.UserID, status)
	if err != nil {
		return nil, s.mapRepoError(err, 0)
	}

	return models.FromDomainBookings(bs), nil
}

// Cancel отменяет бронирование от имени пользователя.
//
// Порядок проверок:
// 1. Бронирование существует
// 2. Пользователь является владельцем
// 3. Интервал еще не начался
// 4. Статус confirmed (cancelled и rejected — терминальные)
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	if req == nil || req.BookingID <= 0 || req.UserID == "" {
		return nil, ErrInvalidInput
	}

	b, err := s.repo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, s.mapRepoError(err, req.BookingID)
	}

	if b.UserID != req.UserID {
		s.logger.Warn("[Cancel] User %s attempted to cancel booking %d owned by another user", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	now := s.timeProvider.Now()
	if b.HasStarted(now) {
		return nil, ErrBookingAlreadyStarted
	}

	if !b.CanBeCancelled() {
		return nil, fmt.Errorf("%w: status is %s", ErrNotConfirmed, b.Status)
	}

	if err := s.repo.Cancel(ctx, req.BookingID); err != nil {
		return nil, s.mapRepoError(err, req.BookingID)
	}

	s.logger.Info("[Cancel] Booking %d cancelled by user %s", req.BookingID, req.UserID)

	updated, err := s.repo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, s.mapRepoError(err, req.BookingID)
	}

	return models.FromDomainBooking(updated), nil
}

func (s *Service) mapRepoError(err error, bookingID int64) error {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		return ErrBookingNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		s.logger.Error("[bookings] Storage timeout for booking %d: %v", bookingID, err)
		return ErrUnavailable
	default:
		s.logger.Error("[bookings] Storage error for booking %d: %v", bookingID, err)
		return ErrInternal
	}
}
