package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turfspot/TurfBookingService/internal/domain"
	bookingRepo "github.com/turfspot/TurfBookingService/internal/infra/storage/booking"
	"github.com/turfspot/TurfBookingService/internal/integrations/turfcatalog"
	"github.com/turfspot/TurfBookingService/pkg/txmanager"
	"github.com/turfspot/TurfBookingService/pkg/types"
)

// Mock repository for testing
type mockBookingRepo struct {
	createFunc        func(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	findConfirmedFunc func(ctx context.Context, turfID int64, date time.Time) ([]*domain.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, b)
	}
	b.ID = 1
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	return b, nil
}

func (m *mockBookingRepo) FindConfirmedByTurfAndDate(ctx context.Context, turfID int64, date time.Time) ([]*domain.Booking, error) {
	if m.findConfirmedFunc != nil {
		return m.findConfirmedFunc(ctx, turfID, date)
	}
	return []*domain.Booking{}, nil
}

type mockTurfClient struct {
	getTurfFunc func(ctx context.Context, turfID int64) (*turfcatalog.Turf, error)
}

func (m *mockTurfClient) GetTurf(ctx context.Context, turfID int64) (*turfcatalog.Turf, error) {
	if m.getTurfFunc != nil {
		return m.getTurfFunc(ctx, turfID)
	}
	return activeTurf(), nil
}

// fakeTxManager runs the function inline; err, if set, replaces the result
type fakeTxManager struct {
	err error
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return m.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeTurf() *turfcatalog.Turf {
	return &turfcatalog.Turf{
		ID:         7,
		Name:       "Green Arena",
		Location:   "Dhanmondi",
		HourlyRate: 500,
		OpenTime:   "06:00",
		CloseTime:  "22:00",
		IsActive:   true,
	}
}

func confirmedBooking(date time.Time, start string, minutes int) *domain.Booking {
	return &domain.Booking{
		ID:              42,
		TurfID:          7,
		UserID:          "other-user",
		BookingDate:     date,
		StartTime:       types.TimeString(start),
		DurationMinutes: minutes,
		Status:          domain.StatusConfirmed,
	}
}

func newTestUseCase(repo *mockBookingRepo, client *mockTurfClient, tx *fakeTxManager, now time.Time) *UseCase {
	uc := NewUseCase(repo, client, tx, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

var testNow = time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		TurfID:        7,
		UserID:        "user-123",
		Date:          time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("18:00"),
		DurationHours: 1,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, &mockTurfClient{}, &fakeTxManager{}, testNow)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, types.TimeString("18:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("19:00"), resp.EndTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, 500.0, resp.TotalAmount)
	assert.Equal(t, "Green Arena", resp.TurfName)
}

func TestExecute_PriceSnapshot(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, &mockTurfClient{}, &fakeTxManager{}, testNow)

	req := validRequest()
	req.DurationHours = 2

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, resp.TotalAmount)
	assert.Equal(t, 500.0, resp.HourlyRate)
}

func TestExecute_RequestedStatusNeverPersisted(t *testing.T) {
	var persistedStatus domain.BookingStatus
	repo := &mockBookingRepo{
		createFunc: func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
			persistedStatus = b.Status
			b.ID = 1
			return b, nil
		},
	}
	uc := newTestUseCase(repo, &mockTurfClient{}, &fakeTxManager{}, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, persistedStatus)
}

func TestExecute_FullIntervalConflict(t *testing.T) {
	// A confirmed 18:00-19:00 booking must reject a 17:00 two-hour request
	// even though the 17:00 grid slot looks free in isolation.
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	var created bool
	repo := &mockBookingRepo{
		findConfirmedFunc: func(ctx context.Context, turfID int64, date time.Time) ([]*domain.Booking, error) {
			return []*domain.Booking{confirmedBooking(day, "18:00", 60)}, nil
		},
		createFunc: func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
			created = true
			return b, nil
		},
	}
	uc := newTestUseCase(repo, &mockTurfClient{}, &fakeTxManager{}, testNow)

	req := validRequest()
	req.StartTime = types.TimeString("17:00")
	req.DurationHours = 2

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.False(t, created, "nothing may be persisted on conflict")
}

func TestExecute_AdjacencyIsNotConflict(t *testing.T) {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	repo := &mockBookingRepo{
		findConfirmedFunc: func(ctx context.Context, turfID int64, date time.Time) ([]*domain.Booking, error) {
			return []*domain.Booking{confirmedBooking(day, "18:00", 60)}, nil
		},
	}
	uc := newTestUseCase(repo, &mockTurfClient{}, &fakeTxManager{}, testNow)

	req := validRequest()
	req.StartTime = types.TimeString("19:00")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockTurfClient{}, &fakeTxManager{}, testNow)

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_InvalidDuration(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockTurfClient{}, &fakeTxManager{}, testNow)

	for _, hours := range []int{0, -1, 7} {
		req := validRequest()
		req.DurationHours = hours

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDuration, "hours=%d", hours)
	}
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockTurfClient{}, &fakeTxManager{}, testNow)

	tests := []struct {
		name  string
		start string
		hours int
	}{
		{name: "before opening", start: "05:00", hours: 1},
		{name: "runs past closing", start: "21:00", hours: 2},
		{name: "starts at closing", start: "22:00", hours: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.StartTime = types.TimeString(tt.start)
			req.DurationHours = tt.hours

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrOutsideOperatingHours)
		})
	}
}

func TestExecute_EndsExactlyAtClosing(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockTurfClient{}, &fakeTxManager{}, testNow)

	req := validRequest()
	req.StartTime = types.TimeString("21:00")
	req.DurationHours = 1

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_TurfNotFound(t *testing.T) {
	client := &mockTurfClient{
		getTurfFunc: func(ctx context.Context, turfID int64) (*turfcatalog.Turf, error) {
			return nil, turfcatalog.ErrTurfNotFound
		},
	}
	uc := newTestUseCase(&mockBookingRepo{}, client, &fakeTxManager{}, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func TestExecute_InactiveTurf(t *testing.T) {
	client := &mockTurfClient{
		getTurfFunc: func(ctx context.Context, turfID int64) (*turfcatalog.Turf, error) {
			turf := activeTurf()
			turf.IsActive = false
			return turf, nil
		},
	}
	uc := newTestUseCase(&mockBookingRepo{}, client, &fakeTxManager{}, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTurfNotFound)
}

func TestExecute_CatalogUnavailable(t *testing.T) {
	client := &mockTurfClient{
		getTurfFunc: func(ctx context.Context, turfID int64) (*turfcatalog.Turf, error) {
			return nil, fmt.Errorf("%w: timeout", turfcatalog.ErrUnavailable)
		},
	}
	uc := newTestUseCase(&mockBookingRepo{}, client, &fakeTxManager{}, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestExecute_SerializationAbortMapsToConflict(t *testing.T) {
	// The losing side of two concurrent creates aborts with 40001; the
	// caller must see it as a conflict, never as an internal error.
	tx := &fakeTxManager{err: fmt.Errorf("%w: 40001", txmanager.ErrSerialization)}
	uc := newTestUseCase(&mockBookingRepo{}, &mockTurfClient{}, tx, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_ExclusionConstraintMapsToConflict(t *testing.T) {
	repo := &mockBookingRepo{
		createFunc: func(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
			return nil, fmt.Errorf("%w: turf_id=7", bookingRepo.ErrSlotTaken)
		},
	}
	uc := newTestUseCase(repo, &mockTurfClient{}, &fakeTxManager{}, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_StorageDeadlineMapsToUnavailable(t *testing.T) {
	tx := &fakeTxManager{err: context.DeadlineExceeded}
	uc := newTestUseCase(&mockBookingRepo{}, &mockTurfClient{}, tx, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockTurfClient{}, &fakeTxManager{}, testNow)

	req := validRequest()
	req.UserID = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.StartTime = types.TimeString("25:99")
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
