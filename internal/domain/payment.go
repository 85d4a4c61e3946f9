package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the status of a payment transaction
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentPaid       PaymentStatus = "paid"
	PaymentFailed     PaymentStatus = "failed"
	PaymentCancelled  PaymentStatus = "cancelled"
)

// PaymentGateway identifies the payment provider
type PaymentGateway string

const (
	GatewayHyperPay PaymentGateway = "hyperpay"
	GatewayStripe   PaymentGateway = "stripe"
)

// Payment represents a payment transaction against a booking
type Payment struct {
	ID         int64
	BookingID  *int64
	CustomerID *int64
	Reference  string // Booking reference the payment was initiated for
	Gateway    PaymentGateway
	Amount     decimal.Decimal
	Currency   string
	Status     PaymentStatus

	// Gateway identifiers
	CheckoutID    *string // HyperPay checkout id / Stripe payment intent id
	TransactionID *string // Merchant transaction id sent to the gateway
	ResultCode    *string
	ResultMessage *string

	RawResponse json.RawMessage

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFinal returns true if the payment reached a terminal state
func (p *Payment) IsFinal() bool {
	return p.Status == PaymentPaid || p.Status == PaymentFailed || p.Status == PaymentCancelled
}

// PaymentLog is a raw gateway callback kept for auditing
type PaymentLog struct {
	ID         int64
	PaymentID  *int64
	Gateway    PaymentGateway
	Status     string
	RawData    json.RawMessage
	ReceivedAt time.Time
}
