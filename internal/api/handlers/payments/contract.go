package payments

import (
	"context"

	"github.com/glammyapp/salon-service/internal/service/payments/models"
)

type PaymentService interface {
	InitiateHyperPayCheckout(ctx context.Context, req *models.InitiateCheckoutRequest) (*models.CheckoutResponse, error)
	ProcessHyperPayResult(ctx context.Context, resourcePath string) (*models.PaymentResultResponse, error)
	CreateStripeIntent(ctx context.Context, req *models.CreateIntentRequest) (*models.IntentResponse, error)
	HandleStripeWebhook(ctx context.Context, payload []byte, signatureHeader string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
