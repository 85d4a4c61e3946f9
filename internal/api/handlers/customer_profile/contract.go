package customer_profile

import (
	"context"

	"github.com/glammyapp/salon-service/internal/service/customers/models"
)

type CustomerService interface {
	GetProfile(ctx context.Context, customerID int64) (*models.CustomerResponse, error)
	UpdateProfile(ctx context.Context, customerID int64, req *models.UpdateProfileRequest) (*models.CustomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
