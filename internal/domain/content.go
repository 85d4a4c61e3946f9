package domain

import "time"

// Offer is a promotional banner shown on the site
type Offer struct {
	ID           int64
	Title        string
	Description  *string
	DiscountText *string // Free-form label, e.g. "20% off"
	ImageURL     *string
	ValidFrom    time.Time
	ValidUntil   time.Time
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsCurrent returns true if the offer should be displayed at the given moment
func (o *Offer) IsCurrent(now time.Time) bool {
	return o.IsActive && !now.Before(o.ValidFrom) && !now.After(o.ValidUntil)
}

// ContactMessage is an inbound message from the contact form
type ContactMessage struct {
	ID        int64
	Name      string
	Phone     string
	Email     *string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
