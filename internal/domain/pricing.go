package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeDiscount returns the discount a coupon gives on the given price.
// A nil or invalid coupon gives no discount. Percentage discounts are
// capped at the coupon's MaximumDiscount; any discount is clamped so the
// final price never goes below zero.
func ComputeDiscount(price decimal.Decimal, coupon *Coupon, now time.Time) decimal.Decimal {
	if coupon == nil || !coupon.IsValid(now) {
		return decimal.Zero
	}

	var discount decimal.Decimal
	switch coupon.DiscountType {
	case DiscountPercentage:
		discount = price.Mul(coupon.DiscountValue).Div(hundred)
		if coupon.MaximumDiscount != nil && discount.GreaterThan(*coupon.MaximumDiscount) {
			discount = *coupon.MaximumDiscount
		}
	case DiscountFixed:
		discount = coupon.DiscountValue
	default:
		return decimal.Zero
	}

	if discount.GreaterThan(price) {
		discount = price
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	return discount
}

// ApplyPricing fills the pricing snapshot of a booking from the service
// price and an optional coupon
func ApplyPricing(b *Booking, price decimal.Decimal, coupon *Coupon, now time.Time) {
	b.Price = price
	b.DiscountAmount = ComputeDiscount(price, coupon, now)
	b.FinalPrice = price.Sub(b.DiscountAmount)
	if coupon != nil && b.DiscountAmount.IsPositive() {
		b.CouponID = &coupon.ID
		code := coupon.Code
		b.CouponCode = &code
	}
}
