package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType represents how a coupon discount is computed
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Coupon represents a discount coupon
type Coupon struct {
	ID              int64
	Code            string // Stored upper-cased, matched case-insensitively
	Name            string
	Description     *string
	DiscountType    DiscountType
	DiscountValue   decimal.Decimal
	MinimumAmount   decimal.Decimal
	MaximumDiscount *decimal.Decimal // Only applies to percentage coupons
	UsageLimit      *int             // nil = unlimited
	UsedCount       int
	ValidFrom       time.Time
	ValidUntil      time.Time
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsValid returns true if the coupon can be redeemed at the given moment:
// it is active, within its validity window and has usages left
func (c *Coupon) IsValid(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if now.Before(c.ValidFrom) || now.After(c.ValidUntil) {
		return false
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return false
	}
	return true
}

// MeetsMinimum returns true if the order amount satisfies the coupon's
// minimum amount requirement
func (c *Coupon) MeetsMinimum(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(c.MinimumAmount)
}

// RemainingUses returns how many redemptions are left, or nil for unlimited
func (c *Coupon) RemainingUses() *int {
	if c.UsageLimit == nil {
		return nil
	}
	left := *c.UsageLimit - c.UsedCount
	if left < 0 {
		left = 0
	}
	return &left
}
