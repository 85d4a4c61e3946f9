package admin_coupons

import (
	"context"

	"github.com/glammyapp/salon-service/internal/service/coupons/models"
)

type CouponService interface {
	List(ctx context.Context) (*models.CouponListResponse, error)
	Create(ctx context.Context, req *models.UpsertCouponRequest) (*models.CouponResponse, error)
	Update(ctx context.Context, id int64, req *models.UpsertCouponRequest) (*models.CouponResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
