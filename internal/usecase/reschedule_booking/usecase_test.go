package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/pkg/types"
)

type stubBookingRepo struct {
	booking     *domain.Booking
	bookedTimes []types.TimeString
	records     []*domain.RescheduleRecord
}

func (s *stubBookingRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	b := *s.booking
	return &b, nil
}

func (s *stubBookingRepo) GetBookedTimes(context.Context, time.Time, *int64) ([]types.TimeString, error) {
	return s.bookedTimes, nil
}

func (s *stubBookingRepo) Reschedule(_ context.Context, _ int64, newDate time.Time, newTime types.TimeString) error {
	s.booking.BookingDate = newDate
	s.booking.BookingTime = newTime
	s.booking.RescheduleCount++
	return nil
}

func (s *stubBookingRepo) AddRescheduleRecord(_ context.Context, rec *domain.RescheduleRecord) error {
	s.records = append(s.records, rec)
	return nil
}

type stubCatalogRepo struct {
	staff *domain.Staff
}

func (s *stubCatalogRepo) GetStaffByID(context.Context, int64) (*domain.Staff, error) {
	return s.staff, nil
}

type stubSettingsRepo struct{}

func (stubSettingsRepo) Get(context.Context) (*domain.SalonSettings, error) {
	return &domain.SalonSettings{
		OpenTime:            types.TimeString("10:00"),
		CloseTime:           types.TimeString("22:00"),
		SlotDurationMinutes: 60,
		Timezone:            "UTC",
		MaxReschedules:      2,
		Currency:            "SAR",
	}, nil
}

type stubOverrideRepo struct {
	overrides   []*domain.SlotOverride
	incremented []int64
}

func (s *stubOverrideRepo) GetForServiceDate(context.Context, int64, time.Time) ([]*domain.SlotOverride, error) {
	return s.overrides, nil
}

func (s *stubOverrideRepo) IncrementBookings(_ context.Context, id int64) error {
	s.incremented = append(s.incremented, id)
	return nil
}

type stubEventSink struct {
	events []domain.BookingEvent
}

func (s *stubEventSink) Publish(_ context.Context, event domain.BookingEvent) {
	s.events = append(s.events, event)
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type useCaseEnv struct {
	uc        *UseCase
	bookings  *stubBookingRepo
	overrides *stubOverrideRepo
	events    *stubEventSink
}

func newTestUseCase(t *testing.T) *useCaseEnv {
	t.Helper()

	bookings := &stubBookingRepo{
		booking: &domain.Booking{
			ID:              42,
			Reference:       "BK20250615090000ABCDEF",
			CustomerID:      7,
			ServiceID:       1,
			BookingDate:     time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC),
			BookingTime:     types.TimeString("12:00"),
			Status:          domain.StatusConfirmed,
			CanReschedule:   true,
			RescheduleCount: 0,
			MaxReschedules:  2,
		},
	}
	overrides := &stubOverrideRepo{}
	events := &stubEventSink{}

	uc := NewUseCase(bookings, &stubCatalogRepo{}, stubSettingsRepo{}, overrides, events, stubTxManager{}, noopLogger{})
	// Фиксированное "сейчас": 15 июня 2025, 09:00 UTC
	uc.timeProvider = &fixedClock{now: time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)}

	return &useCaseEnv{uc: uc, bookings: bookings, overrides: overrides, events: events}
}

func rescheduleRequest(date time.Time, slot types.TimeString) *Request {
	customerID := int64(7)
	return &Request{
		BookingID:  42,
		CustomerID: &customerID,
		NewDate:    date,
		NewTime:    slot,
	}
}

func TestExecute_Reschedule(t *testing.T) {
	env := newTestUseCase(t)

	resp, err := env.uc.Execute(context.Background(),
		rescheduleRequest(time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), "14:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, types.TimeString("14:00"), resp.BookingTime)
	assert.Equal(t, 1, resp.RescheduleCount)
	assert.Equal(t, 1, resp.RemainingReschedules)

	require.Len(t, env.bookings.records, 1)
	rec := env.bookings.records[0]
	assert.Equal(t, types.TimeString("12:00"), rec.OldTime)
	assert.Equal(t, types.TimeString("14:00"), rec.NewTime)
	assert.Equal(t, domain.RescheduledByCustomer, rec.RescheduledBy)

	require.Len(t, env.events.events, 1)
	assert.Equal(t, domain.NotifyBookingRescheduled, env.events.events[0].Type)
}

func TestExecute_LimitAfterTwoReschedules(t *testing.T) {
	env := newTestUseCase(t)

	// Два переноса проходят, после них история содержит две записи
	_, err := env.uc.Execute(context.Background(),
		rescheduleRequest(time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), "14:00"))
	require.NoError(t, err)

	resp, err := env.uc.Execute(context.Background(),
		rescheduleRequest(time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC), "15:00"))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.RescheduleCount)
	assert.Equal(t, 0, resp.RemainingReschedules)

	// Третья попытка упирается в лимит
	_, err = env.uc.Execute(context.Background(),
		rescheduleRequest(time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC), "16:00"))
	assert.ErrorIs(t, err, ErrRescheduleLimitReached)

	assert.Len(t, env.bookings.records, 2)
	require.Len(t, env.events.events, 2)
}

func TestExecute_ForeignBooking(t *testing.T) {
	env := newTestUseCase(t)

	req := rescheduleRequest(time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), "14:00")
	otherCustomer := int64(99)
	req.CustomerID = &otherCustomer

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, env.bookings.records)
}

func TestExecute_CompletedBookingNotReschedulable(t *testing.T) {
	env := newTestUseCase(t)
	env.bookings.booking.Status = domain.StatusCompleted

	_, err := env.uc.Execute(context.Background(),
		rescheduleRequest(time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), "14:00"))
	assert.ErrorIs(t, err, ErrNotReschedulable)
}

func TestExecute_SameSlotRejected(t *testing.T) {
	env := newTestUseCase(t)

	_, err := env.uc.Execute(context.Background(),
		rescheduleRequest(time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC), "12:00"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_NewSlotBooked(t *testing.T) {
	env := newTestUseCase(t)
	env.bookings.bookedTimes = []types.TimeString{"14:00"}

	_, err := env.uc.Execute(context.Background(),
		rescheduleRequest(time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), "14:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, env.events.events)
}

func TestExecute_OverrideClaimsSlot(t *testing.T) {
	env := newTestUseCase(t)
	env.overrides.overrides = []*domain.SlotOverride{
		{ID: 5, Time: types.TimeString("14:00"), IsAvailable: true, MaxBookings: 3, CurrentBookings: 1},
	}

	_, err := env.uc.Execute(context.Background(),
		rescheduleRequest(time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), "14:00"))
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, env.overrides.incremented)
}

func TestExecute_AdminRescheduleRecordedAsAdmin(t *testing.T) {
	env := newTestUseCase(t)

	req := rescheduleRequest(time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), "14:00")
	req.CustomerID = nil

	_, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, env.bookings.records, 1)
	assert.Equal(t, domain.RescheduledByAdmin, env.bookings.records[0].RescheduledBy)
}
