package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/glammyapp/salon-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPendingPayment BookingStatus = "pending_payment"
	StatusPending        BookingStatus = "pending"
	StatusConfirmed      BookingStatus = "confirmed"
	StatusInProgress     BookingStatus = "in_progress"
	StatusCompleted      BookingStatus = "completed"
	StatusCancelled      BookingStatus = "cancelled"
)

// BookingPaymentStatus represents the payment state of a booking
type BookingPaymentStatus string

const (
	BookingPaymentPending  BookingPaymentStatus = "pending"
	BookingPaymentPartial  BookingPaymentStatus = "partial"
	BookingPaymentPaid     BookingPaymentStatus = "paid"
	BookingPaymentFailed   BookingPaymentStatus = "failed"
	BookingPaymentRefunded BookingPaymentStatus = "refunded"
)

// PaymentMethod represents how a customer pays for a booking
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodOnline PaymentMethod = "online"
)

// Reschedule actors
const (
	RescheduledByCustomer = "customer"
	RescheduledByAdmin    = "admin"
)

// Booking represents a service booking in the system
type Booking struct {
	ID          int64
	Reference   string // Immutable public identifier, e.g. BK20250115103000A1B2C3
	CustomerID  int64
	ServiceID   int64
	StaffID     *int64
	AddressID   int64
	BookingDate time.Time
	BookingTime types.TimeString
	Status      BookingStatus

	PaymentMethod PaymentMethod
	PaymentStatus BookingPaymentStatus
	PaymentRef    *string
	PaidAt        *time.Time

	// Pricing snapshot taken at creation time
	Price          decimal.Decimal
	CouponID       *int64
	CouponCode     *string
	DiscountAmount decimal.Decimal
	FinalPrice     decimal.Decimal

	RescheduleCount int
	MaxReschedules  int
	CanReschedule   bool

	// Denormalized data for history
	ServiceName     string
	SpecialRequests *string

	CancellationReason *string
	CancelledAt        *time.Time

	RefundAmount *decimal.Decimal
	RefundedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// BlocksSlot returns true if the booking occupies its time slot
func (b *Booking) BlocksSlot() bool {
	for _, s := range SlotBlockingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPendingPayment || b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking allows another reschedule
func (b *Booking) CanBeRescheduled() bool {
	return b.CanReschedule &&
		b.RescheduleCount < b.MaxReschedules &&
		(b.Status == StatusPending || b.Status == StatusConfirmed)
}

// RemainingReschedules returns how many reschedules are left
func (b *Booking) RemainingReschedules() int {
	left := b.MaxReschedules - b.RescheduleCount
	if left < 0 {
		return 0
	}
	return left
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsCompleted returns true if the booking is completed
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// IsPaid returns true if the booking has been fully paid
func (b *Booking) IsPaid() bool {
	return b.PaymentStatus == BookingPaymentPaid
}

// RescheduleRecord is one entry of a booking's reschedule history
type RescheduleRecord struct {
	ID            int64
	BookingID     int64
	OldDate       time.Time
	OldTime       types.TimeString
	NewDate       time.Time
	NewTime       types.TimeString
	Reason        *string
	RescheduledBy string
	CreatedAt     time.Time
}

// BookingsFilter фильтр для получения бронирований
type BookingsFilter struct {
	CustomerID      *int64         // Фильтр по клиенту (опционально)
	ServiceID       *int64         // Фильтр по услуге (опционально)
	StaffID         *int64         // Фильтр по мастеру (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}
