package admin_slot_overrides

import (
	"context"

	"github.com/glammyapp/salon-service/internal/service/slots/models"
)

type SlotOverrideService interface {
	Create(ctx context.Context, req *models.CreateOverrideRequest) (*models.OverrideResponse, error)
	GetForServiceDate(ctx context.Context, serviceID int64, date string) (*models.OverrideListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateOverrideRequest) error
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
