package domain

import (
	"time"

	"github.com/glammyapp/salon-service/pkg/types"
)

// SlotOverride is an admin-managed availability record for a specific
// service, date and time. It can close a slot entirely or raise its
// capacity above the default of one booking per slot.
type SlotOverride struct {
	ID              int64
	ServiceID       int64
	StaffID         *int64
	Date            time.Time
	Time            types.TimeString
	IsAvailable     bool
	MaxBookings     int
	CurrentBookings int
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasCapacity returns true if the slot still accepts bookings
func (s *SlotOverride) HasCapacity() bool {
	return s.IsAvailable && s.CurrentBookings < s.MaxBookings
}
