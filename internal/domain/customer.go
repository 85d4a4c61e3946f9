package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents a salon customer identified by phone number
type Customer struct {
	ID              int64
	Phone           string // E.164, e.g. +966501234567
	Name            *string
	Email           *string
	IsPhoneVerified bool
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Address represents a saved customer address for home service visits
type Address struct {
	ID         int64
	CustomerID int64
	Title      string // e.g. "Home", "Office"
	Address    string
	Latitude   *decimal.Decimal
	Longitude  *decimal.Decimal
	IsDefault  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PhoneOTP represents a one-time code sent to a phone number
type PhoneOTP struct {
	ID        int64
	Phone     string
	Code      string
	Attempts  int
	IsUsed    bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired returns true if the code can no longer be used
func (o *PhoneOTP) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// CanAttempt returns true if the code accepts another verification attempt
func (o *PhoneOTP) CanAttempt(now time.Time) bool {
	return !o.IsUsed && !o.IsExpired(now) && o.Attempts < MaxOTPAttempts
}

// OTP configuration
const (
	OTPLength      = 6
	OTPTTLMinutes  = 5
	MaxOTPAttempts = 5
)
