package domain

import (
	"time"

	"github.com/glammyapp/salon-service/pkg/types"
)

// NotificationType classifies admin notifications
type NotificationType string

const (
	NotifyBookingCreated     NotificationType = "booking_created"
	NotifyBookingConfirmed   NotificationType = "booking_confirmed"
	NotifyBookingCancelled   NotificationType = "booking_cancelled"
	NotifyBookingRescheduled NotificationType = "booking_rescheduled"
	NotifyPaymentReceived    NotificationType = "payment_received"
	NotifyReminder           NotificationType = "reminder"
	NotifySystem             NotificationType = "system"
)

// NotificationPriority ranks notifications for the admin dashboard
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
)

// Notification is a persisted admin notification
type Notification struct {
	ID         int64
	Type       NotificationType
	Priority   NotificationPriority
	Title      string
	Message    string
	BookingID  *int64
	CustomerID *int64
	IsRead     bool
	IsSent     bool // Delivered to external channels (WhatsApp, email)
	SentAt     *time.Time
	CreatedAt  time.Time
}

// BookingEvent describes a booking lifecycle change that listeners
// (admin notifications, WhatsApp, email) react to
type BookingEvent struct {
	Type     NotificationType
	Booking  *Booking
	Customer *Customer

	// Set for reschedule events
	OldDate *time.Time
	OldTime *types.TimeString
}
