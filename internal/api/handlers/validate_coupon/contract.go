package validate_coupon

import (
	"context"

	"github.com/glammyapp/salon-service/internal/service/coupons/models"
)

type CouponService interface {
	Validate(ctx context.Context, req *models.ValidateCouponRequest) (*models.ValidateCouponResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
