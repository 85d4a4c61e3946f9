package hyperpay

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// CheckoutRequest параметры создания чекаута
type CheckoutRequest struct {
	Amount                decimal.Decimal
	Currency              string
	MerchantTransactionID string
	CustomerEmail         string
	GivenName             string
	Surname               string
	Street                string
	City                  string
	State                 string
	Country               string
	Postcode              string
}

// Result код и описание результата от шлюза
type Result struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// CheckoutResponse ответ на создание чекаута
type CheckoutResponse struct {
	ID     string `json:"id"`
	Result Result `json:"result"`
}

// PaymentStatus статус платежа по resourcePath
type PaymentStatus struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Result    Result          `json:"result"`
	Timestamp string          `json:"timestamp"`
}

// Коды результата HyperPay: успех и транзакции в обработке
var (
	successCodePattern = regexp.MustCompile(`^(000\.000\.|000\.100\.1|000\.[36])`)
	pendingCodePattern = regexp.MustCompile(`^(000\.200)`)
)

// IsSuccess возвращает true, если код означает успешный платеж
func (r Result) IsSuccess() bool {
	return successCodePattern.MatchString(r.Code)
}

// IsPending возвращает true, если платеж еще в обработке
func (r Result) IsPending() bool {
	return pendingCodePattern.MatchString(r.Code)
}
