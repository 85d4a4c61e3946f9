package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/glammyapp/salon-service/pkg/types"
)

// Category represents a service category
type Category struct {
	ID           int64
	Name         string
	NameEN       *string
	Slug         string
	Description  *string
	Icon         *string
	PrimaryColor *string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Service represents a bookable salon service
type Service struct {
	ID              int64
	Name            string
	NameEN          *string
	Description     *string
	DurationMinutes int
	Price           decimal.Decimal
	CategoryIDs     []int64
	ImageURL        *string
	DisplayOrder    int
	IsActive        bool
	IsFeatured      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Staff represents a salon staff member
type Staff struct {
	ID                  int64
	Name                string
	Specialization      *string
	Bio                 *string
	PhotoURL            *string
	Rating              *decimal.Decimal
	ServiceIDs          []int64
	SlotDurationMinutes *int              // Overrides the global slot duration if set
	ShiftStart          *types.TimeString // Overrides the global opening time if set
	ShiftEnd            *types.TimeString // Overrides the global closing time if set
	WorksSaturday       bool
	WorksSunday         bool
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsWorkingDay returns true if the staff member works on the given weekday
func (s *Staff) IsWorkingDay(day time.Weekday) bool {
	switch day {
	case time.Saturday:
		return s.WorksSaturday
	case time.Sunday:
		return s.WorksSunday
	default:
		return true
	}
}

// ProvidesService returns true if the staff member provides the given service
func (s *Staff) ProvidesService(serviceID int64) bool {
	for _, id := range s.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
