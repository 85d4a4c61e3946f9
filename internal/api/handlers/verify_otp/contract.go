package verify_otp

import (
	"context"

	"github.com/glammyapp/salon-service/internal/service/customers/models"
)

type CustomerService interface {
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.VerifyOTPResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
