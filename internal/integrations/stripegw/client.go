package stripegw

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

var minorUnits = decimal.NewFromInt(100)

// Client обертка над Stripe SDK для карточных платежей
type Client struct {
	api           *client.API
	webhookSecret string
	log           Logger
}

// NewClient создает новый экземпляр клиента Stripe
func NewClient(secretKey, webhookSecret string, log Logger) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &Client{
		api:           api,
		webhookSecret: webhookSecret,
		log:           log,
	}
}

// CreatePaymentIntent создает PaymentIntent на сумму в основной валюте
// Референс бронирования кладется в metadata для сопоставления в вебхуке
func (c *Client) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency, bookingReference string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:   stripe.Int64(amount.Mul(minorUnits).IntPart()),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("booking_reference", bookingReference)

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create payment intent: %v", ErrInternal, err)
	}

	c.log.Info("Stripe payment intent created: id=%s reference=%s", intent.ID, bookingReference)

	return intent, nil
}

// GetPaymentIntent получает PaymentIntent по идентификатору
func (c *Client) GetPaymentIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
	}

	intent, err := c.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get payment intent: %v", ErrInternal, err)
	}

	return intent, nil
}

// VerifyWebhook проверяет подпись вебхука и возвращает событие
func (c *Client) VerifyWebhook(payload []byte, signatureHeader string) (*stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, c.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return &event, nil
}
