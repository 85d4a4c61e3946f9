package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_CanBeCancelled(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusPendingPayment, true},
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusInProgress, false},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.CanBeCancelled())
		})
	}
}

func TestBooking_CanBeRescheduled(t *testing.T) {
	base := func() *Booking {
		return &Booking{
			Status:          StatusConfirmed,
			CanReschedule:   true,
			RescheduleCount: 0,
			MaxReschedules:  2,
		}
	}

	assert.True(t, base().CanBeRescheduled())

	atLimit := base()
	atLimit.RescheduleCount = 2
	assert.False(t, atLimit.CanBeRescheduled(), "reschedule limit reached")

	flagged := base()
	flagged.CanReschedule = false
	assert.False(t, flagged.CanBeRescheduled(), "reschedule disabled on the booking")

	cancelled := base()
	cancelled.Status = StatusCancelled
	assert.False(t, cancelled.CanBeRescheduled())

	awaitingPayment := base()
	awaitingPayment.Status = StatusPendingPayment
	assert.False(t, awaitingPayment.CanBeRescheduled(), "unpaid bookings cannot be moved")
}

func TestBooking_RemainingReschedules(t *testing.T) {
	b := &Booking{RescheduleCount: 1, MaxReschedules: 2}
	assert.Equal(t, 1, b.RemainingReschedules())

	b.RescheduleCount = 3
	assert.Equal(t, 0, b.RemainingReschedules())
}

func TestBooking_BlocksSlot(t *testing.T) {
	blocking := []BookingStatus{StatusPending, StatusConfirmed, StatusInProgress}
	for _, s := range blocking {
		b := &Booking{Status: s}
		assert.True(t, b.BlocksSlot(), "status %s must hold the slot", s)
	}

	for _, s := range []BookingStatus{StatusCompleted, StatusCancelled, StatusPendingPayment} {
		b := &Booking{Status: s}
		assert.False(t, b.BlocksSlot(), "status %s must not hold the slot", s)
	}
}

func TestGenerateReference(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	ref, err := GenerateReference(now)
	require.NoError(t, err)

	assert.Len(t, ref, 22)
	assert.Equal(t, "BK20250115103000", ref[:16])
	for _, c := range ref[16:] {
		assert.Contains(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", string(c))
	}

	other, err := GenerateReference(now)
	require.NoError(t, err)
	assert.NotEqual(t, ref, other, "random suffix must differ between calls")
}

func TestGenerateReference_NoCollisions(t *testing.T) {
	// Референсы в пределах одной секунды различаются только суффиксом
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		ref, err := GenerateReference(now)
		require.NoError(t, err)

		_, dup := seen[ref]
		require.False(t, dup, "duplicate reference %s after %d generations", ref, i)
		seen[ref] = struct{}{}
	}
}
