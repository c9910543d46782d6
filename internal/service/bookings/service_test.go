package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turfspot/TurfBookingService/internal/domain"
	"github.com/turfspot/TurfBookingService/internal/infra/storage/booking"
	"github.com/turfspot/TurfBookingService/internal/service/bookings/models"
	"github.com/turfspot/TurfBookingService/pkg/ptr"
	"github.com/turfspot/TurfBookingService/pkg/types"
)

type mockBookingRepo struct {
	getByIDFunc     func(ctx context.Context, id int64) (*domain.Booking, error)
	getByUserIDFunc func(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error)
	cancelFunc      func(ctx context.Context, id int64) error

	cancelCalls int
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockBookingRepo) GetByUserID(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return m.getByUserIDFunc(ctx, userID, status)
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id int64) error {
	m.cancelCalls++
	return m.cancelFunc(ctx, id)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:              42,
		TurfID:          7,
		UserID:          "user-1",
		BookingDate:     time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("18:00"),
		DurationMinutes: 120,
		Status:          domain.StatusConfirmed,
		TurfName:        "Green Field Arena",
		HourlyRate:      500,
		TotalAmount:     1000,
		CreatedAt:       testNow,
		UpdatedAt:       testNow,
	}
}

func newTestService(repo *mockBookingRepo) *Service {
	return New(repo, &fixedTimeProvider{now: testNow}, nopLogger{})
}

func TestService_Cancel_Success(t *testing.T) {
	b := confirmedBooking()
	cancelled := false

	repo := &mockBookingRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			if cancelled {
				c := *b
				c.Status = domain.StatusCancelled
				c.CancelledAt = ptr.Ptr(testNow)
				return &c, nil
			}
			return b, nil
		},
		cancelFunc: func(ctx context.Context, id int64) error {
			cancelled = true
			return nil
		},
	}

	svc := newTestService(repo)
	resp, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: 42, UserID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.cancelCalls)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, resp.CancelledAt)
	// Снимок цены сохраняется и после отмены
	assert.Equal(t, float64(1000), resp.TotalAmount)
}

func TestService_Cancel_NotOwner(t *testing.T) {
	repo := &mockBookingRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return confirmedBooking(), nil
		},
		cancelFunc: func(ctx context.Context, id int64) error { return nil },
	}

	svc := newTestService(repo)
	_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: 42, UserID: "intruder"})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, 0, repo.cancelCalls)
}

func TestService_Cancel_AlreadyStarted(t *testing.T) {
	b := confirmedBooking()
	b.BookingDate = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	b.StartTime = types.TimeString("12:00") // ровно сейчас — уже началось

	repo := &mockBookingRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) { return b, nil },
		cancelFunc:  func(ctx context.Context, id int64) error { return nil },
	}

	svc := newTestService(repo)
	_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: 42, UserID: "user-1"})

	assert.ErrorIs(t, err, ErrBookingAlreadyStarted)
	assert.Equal(t, 0, repo.cancelCalls)
}

func TestService_Cancel_FutureStartSameDay(t *testing.T) {
	b := confirmedBooking()
	b.BookingDate = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
	b.StartTime = types.TimeString("12:01")

	cancelled := false
	repo := &mockBookingRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			if cancelled {
				c := *b
				c.Status = domain.StatusCancelled
				return &c, nil
			}
			return b, nil
		},
		cancelFunc: func(ctx context.Context, id int64) error {
			cancelled = true
			return nil
		},
	}

	svc := newTestService(repo)
	_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: 42, UserID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.cancelCalls)
}

func TestService_Cancel_AlreadyCancelled(t *testing.T) {
	b := confirmedBooking()
	b.Status = domain.StatusCancelled
	b.CancelledAt = ptr.Ptr(testNow.Add(-time.Hour))

	repo := &mockBookingRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) { return b, nil },
		cancelFunc:  func(ctx context.Context, id int64) error { return nil },
	}

	svc := newTestService(repo)
	_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: 42, UserID: "user-1"})

	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Equal(t, 0, repo.cancelCalls)
}

func TestService_Cancel_NotFound(t *testing.T) {
	repo := &mockBookingRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return nil, booking.ErrBookingNotFound
		},
		cancelFunc: func(ctx context.Context, id int64) error { return nil },
	}

	svc := newTestService(repo)
	_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: 404, UserID: "user-1"})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Cancel_StorageTimeout(t *testing.T) {
	repo := &mockBookingRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return nil, context.DeadlineExceeded
		},
		cancelFunc: func(ctx context.Context, id int64) error { return nil },
	}

	svc := newTestService(repo)
	_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: 42, UserID: "user-1"})

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestService_Cancel_InvalidInput(t *testing.T) {
	svc := newTestService(&mockBookingRepo{})

	_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: 0, UserID: "user-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Cancel(context.Background(), &models.CancelBookingRequest{BookingID: 42, UserID: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetByID_Success(t *testing.T) {
	repo := &mockBookingRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return confirmedBooking(), nil
		},
	}

	svc := newTestService(repo)
	resp, err := svc.GetByID(context.Background(), 42, "user-1")

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "18:00", resp.StartTime)
	assert.Equal(t, "20:00", resp.EndTime)
	assert.Equal(t, "2025-10-20", resp.BookingDate)
}

func TestService_GetByID_NotOwner(t *testing.T) {
	repo := &mockBookingRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return confirmedBooking(), nil
		},
	}

	svc := newTestService(repo)
	_, err := svc.GetByID(context.Background(), 42, "someone-else")

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetUserBookings_StatusFilter(t *testing.T) {
	var gotStatus *domain.BookingStatus
	repo := &mockBookingRepo{
		getByUserIDFunc: func(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
			gotStatus = status
			return []*domain.Booking{confirmedBooking()}, nil
		},
	}

	svc := newTestService(repo)
	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: "user-1",
		Status: ptr.Ptr("confirmed"),
	})

	require.NoError(t, err)
	require.NotNil(t, gotStatus)
	assert.Equal(t, domain.StatusConfirmed, *gotStatus)
	assert.Len(t, resp, 1)
}

func TestService_GetUserBookings_UnknownStatus(t *testing.T) {
	svc := newTestService(&mockBookingRepo{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: "user-1",
		Status: ptr.Ptr("pending"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetUserBookings_Empty(t *testing.T) {
	repo := &mockBookingRepo{
		getByUserIDFunc: func(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
			return nil, nil
		},
	}

	svc := newTestService(repo)
	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: "user-1"})

	require.NoError(t, err)
	assert.Empty(t, resp)
	assert.NotNil(t, resp)
}
