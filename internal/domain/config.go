package domain

import (
	"time"

	"github.com/glammyapp/salon-service/pkg/types"
)

// SalonSettings is the single editable configuration record of the salon.
// A row with these defaults is created on first access.
type SalonSettings struct {
	ID                  int64
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
	Timezone            string
	MaxReschedules      int
	Currency            string

	// Notification channels
	AdminPhone         *string // WhatsApp recipient for admin alerts
	AdminEmail         *string
	ReminderHoursAhead int // How long before the visit to send a reminder

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultSettings returns the built-in configuration used until an admin
// saves their own
func DefaultSettings() *SalonSettings {
	return &SalonSettings{
		OpenTime:            types.TimeString(DefaultOpenTime),
		CloseTime:           types.TimeString(DefaultCloseTime),
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		Timezone:            DefaultTimezone,
		MaxReschedules:      DefaultMaxReschedules,
		Currency:            DefaultCurrency,
		ReminderHoursAhead:  24,
	}
}

// Location resolves the configured timezone, falling back to UTC
func (s *SalonSettings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
