package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/glammyapp/salon-service/internal/domain"
)

// Request модели

// InitiateCheckoutRequest запрос на создание чекаута HyperPay
type InitiateCheckoutRequest struct {
	BookingID  int64  `json:"bookingId"`
	CustomerID int64  `json:"customerId"`
	Email      string `json:"email,omitempty"`
	GivenName  string `json:"givenName,omitempty"`
	Surname    string `json:"surname,omitempty"`
}

// CreateIntentRequest запрос на создание Stripe PaymentIntent
type CreateIntentRequest struct {
	BookingID  int64 `json:"bookingId"`
	CustomerID int64 `json:"customerId"`
}

// Response модели

// CheckoutResponse ответ на создание чекаута HyperPay
type CheckoutResponse struct {
	CheckoutID      string          `json:"checkoutId"`
	WidgetScriptURL string          `json:"widgetScriptUrl"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
}

// IntentResponse ответ на создание Stripe PaymentIntent
type IntentResponse struct {
	IntentID     string          `json:"intentId"`
	ClientSecret string          `json:"clientSecret"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
}

// PaymentResultResponse результат обработки платежа
type PaymentResultResponse struct {
	Reference     string `json:"reference"`
	Status        string `json:"status"`
	ResultCode    string `json:"resultCode,omitempty"`
	ResultMessage string `json:"resultMessage,omitempty"`
}

// PaymentResponse данные платежа
type PaymentResponse struct {
	ID        int64           `json:"id"`
	Reference string          `json:"reference"`
	Gateway   string          `json:"gateway"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

// FromDomainPayment конвертирует domain модель в DTO
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
		ID:        p.ID,
		Reference: p.Reference,
		Gateway:   string(p.Gateway),
		Amount:    p.Amount,
		Currency:  p.Currency,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
	}
}
