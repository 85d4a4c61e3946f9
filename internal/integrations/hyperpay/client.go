package hyperpay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client клиент платежного шлюза HyperPay (Copy&Pay)
type Client struct {
	baseURL     string
	entityID    string
	accessToken string
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр клиента HyperPay
func NewClient(baseURL, entityID, accessToken string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		entityID:    entityID,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateCheckout создает чекаут и возвращает его идентификатор
// Идентификатор подставляется в платежный виджет на стороне фронтенда
func (c *Client) CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	form := url.Values{}
	form.Set("entityId", c.entityID)
	form.Set("amount", req.Amount.StringFixed(2))
	form.Set("currency", req.Currency)
	form.Set("paymentType", "DB")
	form.Set("merchantTransactionId", req.MerchantTransactionID)
	form.Set("customer.email", req.CustomerEmail)
	form.Set("customer.givenName", req.GivenName)
	form.Set("customer.surname", req.Surname)
	form.Set("billing.street1", req.Street)
	form.Set("billing.city", req.City)
	form.Set("billing.state", req.State)
	form.Set("billing.country", req.Country)
	form.Set("billing.postcode", req.Postcode)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/checkouts", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var checkout CheckoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&checkout); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if checkout.ID == "" {
		return nil, fmt.Errorf("%w: code=%s description=%s", ErrCheckoutFailed, checkout.Result.Code, checkout.Result.Description)
	}

	c.log.Info("HyperPay checkout created: id=%s merchant_tx=%s", checkout.ID, req.MerchantTransactionID)

	return &checkout, nil
}

// GetPaymentStatus запрашивает результат платежа по resourcePath,
// который шлюз передает в redirect после оплаты
func (c *Client) GetPaymentStatus(ctx context.Context, resourcePath string) (*PaymentStatus, error) {
	statusURL := fmt.Sprintf("%s%s?entityId=%s", c.baseURL, resourcePath, url.QueryEscape(c.entityID))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, statusURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var status PaymentStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("HyperPay payment status: id=%s code=%s", status.ID, status.Result.Code)

	return &status, nil
}

// WidgetScriptURL возвращает URL скрипта платежного виджета для чекаута
func (c *Client) WidgetScriptURL(checkoutID string) string {
	return fmt.Sprintf("%s/v1/paymentWidgets.js?checkoutId=%s", c.baseURL, url.QueryEscape(checkoutID))
}
