package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/glammyapp/salon-service/internal/domain"
)

var (
	// ErrInvalidDiscountType возвращается при некорректном типе скидки
	ErrInvalidDiscountType = errors.New("invalid discount type")
)

// Request модели

// ValidateCouponRequest запрос на проверку купона перед оформлением
type ValidateCouponRequest struct {
	Code   string          `json:"code"`
	Amount decimal.Decimal `json:"amount"`
}

// UpsertCouponRequest запрос на создание или обновление купона
type UpsertCouponRequest struct {
	Code            string           `json:"code"`
	Name            string           `json:"name"`
	Description     *string          `json:"description,omitempty"`
	DiscountType    string           `json:"discountType"`
	DiscountValue   decimal.Decimal  `json:"discountValue"`
	MinimumAmount   decimal.Decimal  `json:"minimumAmount"`
	MaximumDiscount *decimal.Decimal `json:"maximumDiscount,omitempty"`
	UsageLimit      *int             `json:"usageLimit,omitempty"`
	ValidFrom       time.Time        `json:"validFrom"`
	ValidUntil      time.Time        `json:"validUntil"`
	IsActive        bool             `json:"isActive"`
}

// ToDomain конвертирует request в domain модель
func (r *UpsertCouponRequest) ToDomain() (*domain.Coupon, error) {
	discountType := domain.DiscountType(r.DiscountType)
	if discountType != domain.DiscountPercentage && discountType != domain.DiscountFixed {
		return nil, ErrInvalidDiscountType
	}

	return &domain.Coupon{
		Code:            r.Code,
		Name:            r.Name,
		Description:     r.Description,
		DiscountType:    discountType,
		DiscountValue:   r.DiscountValue,
		MinimumAmount:   r.MinimumAmount,
		MaximumDiscount: r.MaximumDiscount,
		UsageLimit:      r.UsageLimit,
		ValidFrom:       r.ValidFrom,
		ValidUntil:      r.ValidUntil,
		IsActive:        r.IsActive,
	}, nil
}

// Response модели

// ValidateCouponResponse результат проверки купона
type ValidateCouponResponse struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	DiscountType   string          `json:"discountType"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	FinalAmount    decimal.Decimal `json:"finalAmount"`
}

// CouponResponse ответ с данными купона
type CouponResponse struct {
	ID              int64            `json:"id"`
	Code            string           `json:"code"`
	Name            string           `json:"name"`
	Description     *string          `json:"description,omitempty"`
	DiscountType    string           `json:"discountType"`
	DiscountValue   decimal.Decimal  `json:"discountValue"`
	MinimumAmount   decimal.Decimal  `json:"minimumAmount"`
	MaximumDiscount *decimal.Decimal `json:"maximumDiscount,omitempty"`
	UsageLimit      *int             `json:"usageLimit,omitempty"`
	UsedCount       int              `json:"usedCount"`
	ValidFrom       time.Time        `json:"validFrom"`
	ValidUntil      time.Time        `json:"validUntil"`
	IsActive        bool             `json:"isActive"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// CouponListResponse ответ со списком купонов
type CouponListResponse struct {
	Coupons []CouponResponse `json:"coupons"`
}

// Методы конвертации

// FromDomainCoupon конвертирует domain модель в DTO
func FromDomainCoupon(c *domain.Coupon) *CouponResponse {
	if c == nil {
		return nil
	}
	return &CouponResponse{
		ID:              c.ID,
		Code:            c.Code,
		Name:            c.Name,
		Description:     c.Description,
		DiscountType:    string(c.DiscountType),
		DiscountValue:   c.DiscountValue,
		MinimumAmount:   c.MinimumAmount,
		MaximumDiscount: c.MaximumDiscount,
		UsageLimit:      c.UsageLimit,
		UsedCount:       c.UsedCount,
		ValidFrom:       c.ValidFrom,
		ValidUntil:      c.ValidUntil,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
	}
}

// FromDomainCouponList конвертирует список domain моделей в DTO
func FromDomainCouponList(coupons []*domain.Coupon) *CouponListResponse {
	resp := &CouponListResponse{
		Coupons: make([]CouponResponse, 0, len(coupons)),
	}
	for _, c := range coupons {
		if dto := FromDomainCoupon(c); dto != nil {
			resp.Coupons = append(resp.Coupons, *dto)
		}
	}
	return resp
}
