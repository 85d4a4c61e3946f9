package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/pkg/types"
)

type stubBookingRepo struct {
	bookedTimes []types.TimeString
	created     *domain.Booking
}

func (s *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	b.ID = 42
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	s.created = b
	return b, nil
}

func (s *stubBookingRepo) GetBookedTimes(context.Context, time.Time, *int64) ([]types.TimeString, error) {
	return s.bookedTimes, nil
}

type stubCatalogRepo struct {
	service *domain.Service
	staff   *domain.Staff
}

func (s *stubCatalogRepo) GetServiceByID(context.Context, int64) (*domain.Service, error) {
	return s.service, nil
}

func (s *stubCatalogRepo) GetStaffByID(context.Context, int64) (*domain.Staff, error) {
	return s.staff, nil
}

type stubCustomerRepo struct{}

func (stubCustomerRepo) GetAddressByID(_ context.Context, id, customerID int64) (*domain.Address, error) {
	return &domain.Address{ID: id, CustomerID: customerID}, nil
}

type stubCouponRepo struct {
	coupon   *domain.Coupon
	redeemed []int64
}

func (s *stubCouponRepo) GetByCode(context.Context, string) (*domain.Coupon, error) {
	return s.coupon, nil
}

func (s *stubCouponRepo) Redeem(_ context.Context, id int64) error {
	s.redeemed = append(s.redeemed, id)
	return nil
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
	coupons   *stubCouponRepo
	overrides *stubOverrideRepo
	events    *stubEventSink
}

func newTestUseCase(t *testing.T) *useCaseEnv {
	t.Helper()

	bookings := &stubBookingRepo{}
	coupons := &stubCouponRepo{}
	overrides := &stubOverrideRepo{}
	events := &stubEventSink{}
	catalog := &stubCatalogRepo{
		service: &domain.Service{
			ID:       1,
			Name:     "Deep Cleansing Facial",
			Price:    decimal.NewFromInt(1000),
			IsActive: true,
		},
	}

	uc := NewUseCase(bookings, catalog, stubCustomerRepo{}, coupons, stubSettingsRepo{}, overrides, events, stubTxManager{}, noopLogger{})
	// Фиксированное "сейчас": 15 июня 2025, 09:00 UTC
	uc.timeProvider = &fixedClock{now: time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)}

	return &useCaseEnv{uc: uc, bookings: bookings, coupons: coupons, overrides: overrides, events: events}
}

func validRequest() *Request {
	return &Request{
		CustomerID:    7,
		ServiceID:     1,
		AddressID:     3,
		Date:          time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
		Time:          types.TimeString("14:00"),
		PaymentMethod: "cash",
	}
}

func TestExecute_CashBooking(t *testing.T) {
	env := newTestUseCase(t)

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "cash", resp.PaymentMethod)
	assert.Equal(t, "pending", resp.PaymentStatus)
	assert.Equal(t, "BK", resp.Reference[:2])
	assert.Len(t, resp.Reference, 22)
	assert.True(t, resp.FinalPrice.Equal(decimal.NewFromInt(1000)))

	require.Len(t, env.events.events, 1)
	assert.Equal(t, domain.NotifyBookingCreated, env.events.events[0].Type)
}

func TestExecute_OnlineBookingAwaitsPayment(t *testing.T) {
	env := newTestUseCase(t)

	req := validRequest()
	req.PaymentMethod = "online"

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "pending_payment", resp.Status)
}

func TestExecute_CouponAppliedWithCap(t *testing.T) {
	env := newTestUseCase(t)

	maxDiscount := decimal.NewFromInt(50)
	env.coupons.coupon = &domain.Coupon{
		ID:              9,
		Code:            "SUMMER10",
		DiscountType:    domain.DiscountPercentage,
		DiscountValue:   decimal.NewFromInt(10),
		MaximumDiscount: &maxDiscount,
		ValidFrom:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:      time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		IsActive:        true,
	}

	req := validRequest()
	code := "SUMMER10"
	req.CouponCode = &code

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.DiscountAmount.Equal(decimal.NewFromInt(50)))
	assert.True(t, resp.FinalPrice.Equal(decimal.NewFromInt(950)))
	require.NotNil(t, resp.CouponCode)
	assert.Equal(t, "SUMMER10", *resp.CouponCode)
	assert.Equal(t, []int64{9}, env.coupons.redeemed)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	env := newTestUseCase(t)
	env.bookings.bookedTimes = []types.TimeString{"14:00"}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, env.events.events)
}

func TestExecute_SlotClosedByOverride(t *testing.T) {
	env := newTestUseCase(t)
	env.overrides.overrides = []*domain.SlotOverride{
		{ID: 5, Time: types.TimeString("14:00"), IsAvailable: false, MaxBookings: 1},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, env.overrides.incremented)
}

func TestExecute_OverrideWithCapacityClaimsSlot(t *testing.T) {
	env := newTestUseCase(t)
	env.overrides.overrides = []*domain.SlotOverride{
		{ID: 5, Time: types.TimeString("14:00"), IsAvailable: true, MaxBookings: 3, CurrentBookings: 1},
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, env.overrides.incremented)
}

func TestExecute_DateInPast(t *testing.T) {
	env := newTestUseCase(t)

	req := validRequest()
	req.Date = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_MisalignedSlotTime(t *testing.T) {
	env := newTestUseCase(t)

	req := validRequest()
	req.Time = types.TimeString("14:30")

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	env := newTestUseCase(t)

	req := validRequest()
	req.Time = types.TimeString("09:00")

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_InvalidPaymentMethod(t *testing.T) {
	env := newTestUseCase(t)

	req := validRequest()
	req.PaymentMethod = "crypto"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
