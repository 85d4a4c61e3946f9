package request_otp

import (
	"context"

	"github.com/glammyapp/salon-service/internal/service/customers/models"
)

type CustomerService interface {
	RequestOTP(ctx context.Context, req *models.RequestOTPRequest) (*models.RequestOTPResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
