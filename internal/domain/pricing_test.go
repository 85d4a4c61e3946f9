package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validCoupon(discountType DiscountType, value int64) *Coupon {
	return &Coupon{
		ID:            1,
		Code:          "WELCOME",
		DiscountType:  discountType,
		DiscountValue: decimal.NewFromInt(value),
		ValidFrom:     time.Now().Add(-time.Hour),
		ValidUntil:    time.Now().Add(time.Hour),
		IsActive:      true,
	}
}

func TestComputeDiscount_Percentage(t *testing.T) {
	now := time.Now()
	price := decimal.NewFromInt(1000)

	coupon := validCoupon(DiscountPercentage, 10)
	discount := ComputeDiscount(price, coupon, now)
	assert.True(t, discount.Equal(decimal.NewFromInt(100)), "10%% of 1000 is 100, got %s", discount)
}

func TestComputeDiscount_PercentageCappedAtMaximum(t *testing.T) {
	now := time.Now()
	price := decimal.NewFromInt(1000)

	maxDiscount := decimal.NewFromInt(50)
	coupon := validCoupon(DiscountPercentage, 10)
	coupon.MaximumDiscount = &maxDiscount

	discount := ComputeDiscount(price, coupon, now)
	assert.True(t, discount.Equal(maxDiscount), "discount must be capped at 50, got %s", discount)
}

func TestComputeDiscount_FixedClampedToPrice(t *testing.T) {
	now := time.Now()
	price := decimal.NewFromInt(80)

	coupon := validCoupon(DiscountFixed, 100)
	discount := ComputeDiscount(price, coupon, now)
	assert.True(t, discount.Equal(price), "fixed discount above price must clamp to price, got %s", discount)
}

func TestComputeDiscount_InvalidCoupon(t *testing.T) {
	now := time.Now()
	price := decimal.NewFromInt(500)

	assert.True(t, ComputeDiscount(price, nil, now).IsZero())

	expired := validCoupon(DiscountPercentage, 10)
	expired.ValidUntil = now.Add(-time.Minute)
	assert.True(t, ComputeDiscount(price, expired, now).IsZero())

	inactive := validCoupon(DiscountPercentage, 10)
	inactive.IsActive = false
	assert.True(t, ComputeDiscount(price, inactive, now).IsZero())

	limit := 5
	exhausted := validCoupon(DiscountPercentage, 10)
	exhausted.UsageLimit = &limit
	exhausted.UsedCount = 5
	assert.True(t, ComputeDiscount(price, exhausted, now).IsZero())
}

func TestApplyPricing(t *testing.T) {
	now := time.Now()
	booking := &Booking{}
	maxDiscount := decimal.NewFromInt(50)
	coupon := validCoupon(DiscountPercentage, 10)
	coupon.MaximumDiscount = &maxDiscount

	ApplyPricing(booking, decimal.NewFromInt(1000), coupon, now)

	assert.True(t, booking.Price.Equal(decimal.NewFromInt(1000)))
	assert.True(t, booking.DiscountAmount.Equal(decimal.NewFromInt(50)))
	assert.True(t, booking.FinalPrice.Equal(decimal.NewFromInt(950)))
	assert.NotNil(t, booking.CouponID)
	assert.NotNil(t, booking.CouponCode)
	assert.Equal(t, "WELCOME", *booking.CouponCode)
}

func TestApplyPricing_NoCoupon(t *testing.T) {
	booking := &Booking{}

	ApplyPricing(booking, decimal.NewFromInt(300), nil, time.Now())

	assert.True(t, booking.FinalPrice.Equal(decimal.NewFromInt(300)))
	assert.True(t, booking.DiscountAmount.IsZero())
	assert.Nil(t, booking.CouponID)
	assert.Nil(t, booking.CouponCode)
}

func TestCoupon_MeetsMinimum(t *testing.T) {
	coupon := validCoupon(DiscountFixed, 50)
	coupon.MinimumAmount = decimal.NewFromInt(200)

	assert.True(t, coupon.MeetsMinimum(decimal.NewFromInt(200)))
	assert.True(t, coupon.MeetsMinimum(decimal.NewFromInt(250)))
	assert.False(t, coupon.MeetsMinimum(decimal.NewFromInt(199)))
}

func TestCoupon_RemainingUses(t *testing.T) {
	unlimited := validCoupon(DiscountFixed, 50)
	assert.Nil(t, unlimited.RemainingUses())

	limit := 10
	limited := validCoupon(DiscountFixed, 50)
	limited.UsageLimit = &limit
	limited.UsedCount = 7
	remaining := limited.RemainingUses()
	assert.NotNil(t, remaining)
	assert.Equal(t, 3, *remaining)

	limited.UsedCount = 12
	remaining = limited.RemainingUses()
	assert.Equal(t, 0, *remaining)
}
