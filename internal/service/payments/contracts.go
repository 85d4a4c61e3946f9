package payments

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/internal/integrations/hyperpay"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	GetByCheckoutID(ctx context.Context, checkoutID string) (*domain.Payment, error)
	GetByReference(ctx context.Context, reference string) (*domain.Payment, error)
	UpdateResult(ctx context.Context, id int64, status domain.PaymentStatus, resultCode, resultMessage *string, rawResponse []byte) error
	AddLog(ctx context.Context, log *domain.PaymentLog) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	MarkPaid(ctx context.Context, id int64, paymentRef string, paidAt time.Time) error
	MarkPaymentFailed(ctx context.Context, id int64) error
}

// HyperPayGateway интерфейс клиента HyperPay
type HyperPayGateway interface {
	CreateCheckout(ctx context.Context, req hyperpay.CheckoutRequest) (*hyperpay.CheckoutResponse, error)
	GetPaymentStatus(ctx context.Context, resourcePath string) (*hyperpay.PaymentStatus, error)
	WidgetScriptURL(checkoutID string) string
}

// StripeGateway интерфейс клиента Stripe
type StripeGateway interface {
	CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency, bookingReference string) (*stripe.PaymentIntent, error)
	VerifyWebhook(payload []byte, signatureHeader string) (*stripe.Event, error)
}

// TxManager выполняет функцию в транзакции
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventSink принимает события жизненного цикла бронирований
type EventSink interface {
	Publish(ctx context.Context, event domain.BookingEvent)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
