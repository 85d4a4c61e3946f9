package reports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/internal/service/reports/models"
)

type stubBookingRepo struct {
	bookings []*domain.Booking
}

func (s *stubBookingRepo) GetWithFilter(context.Context, domain.BookingsFilter) ([]*domain.Booking, error) {
	return s.bookings, nil
}

type stubPaymentRepo struct {
	payments []*domain.Payment
}

func (s *stubPaymentRepo) GetWithFilter(context.Context, domain.BookingsFilter) ([]*domain.Payment, error) {
	return s.payments, nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestStats(t *testing.T) {
	bookings := &stubBookingRepo{bookings: []*domain.Booking{
		{
			ServiceName:    "Facial",
			BookingDate:    day(10),
			Status:         domain.StatusCompleted,
			FinalPrice:     decimal.NewFromInt(900),
			DiscountAmount: decimal.NewFromInt(100),
			PaymentStatus:  domain.BookingPaymentPaid,
			PaymentMethod:  domain.PaymentMethodOnline,
		},
		{ServiceName: "Facial", BookingDate: day(12), Status: domain.StatusCancelled},
		{ServiceName: "Manicure", BookingDate: day(15), Status: domain.StatusConfirmed},
		{ServiceName: "Manicure", BookingDate: day(15), Status: domain.StatusPending},
		{ServiceName: "Facial", BookingDate: day(20), Status: domain.StatusConfirmed},
	}}

	svc := NewService(bookings, &stubPaymentRepo{}, noopLogger{})
	// Фиксированное "сегодня": 15 июня 2025
	svc.timeProvider = &fixedClock{now: time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)}

	stats, err := svc.Stats(context.Background(), &models.ReportPeriodRequest{})
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalBookings)
	assert.Equal(t, 1, stats.CompletedBookings)
	assert.Equal(t, 1, stats.CancelledBookings)
	assert.Equal(t, 2, stats.TodayBookings)
	assert.Equal(t, 3, stats.UpcomingBookings, "today's and future pending/confirmed visits")
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(900)))
	assert.True(t, stats.TotalDiscount.Equal(decimal.NewFromInt(100)))
	assert.True(t, stats.OnlinePayments.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, map[string]int{"completed": 1, "cancelled": 1, "confirmed": 2, "pending": 1}, stats.ByStatus)
	assert.Equal(t, map[string]int{"Facial": 3, "Manicure": 2}, stats.ByService)
}

func TestStats_PastBookingsNotUpcoming(t *testing.T) {
	bookings := &stubBookingRepo{bookings: []*domain.Booking{
		{ServiceName: "Facial", BookingDate: day(10), Status: domain.StatusConfirmed},
		{ServiceName: "Facial", BookingDate: day(14), Status: domain.StatusPending},
	}}

	svc := NewService(bookings, &stubPaymentRepo{}, noopLogger{})
	svc.timeProvider = &fixedClock{now: time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)}

	stats, err := svc.Stats(context.Background(), &models.ReportPeriodRequest{})
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TodayBookings)
	assert.Equal(t, 0, stats.UpcomingBookings)
}
