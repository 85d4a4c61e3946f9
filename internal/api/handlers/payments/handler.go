package payments

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glammyapp/salon-service/internal/api/handlers"
	"github.com/glammyapp/salon-service/internal/api/middleware"
	paymentsService "github.com/glammyapp/salon-service/internal/service/payments"
	"github.com/glammyapp/salon-service/internal/service/payments/models"
)

const (
	msgInvalidBookingID   = "invalid booking ID"
	msgInvalidRequestBody = "invalid request body"
	msgMissingCustomerID  = "missing customer ID"
	msgMissingResource    = "resourcePath is required"
	msgBookingNotFound    = "booking not found"
	msgPaymentNotFound    = "payment not found"
	msgForbidden          = "access denied"
	msgNotPayable         = "booking is not payable online"
	msgAlreadyPaid        = "booking is already paid"
	msgGatewayError       = "payment gateway error"
	msgInvalidWebhook     = "invalid webhook"

	// Stripe рекомендует читать тело вебхука целиком, но с лимитом
	maxWebhookBodyBytes = 65536
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleHyperPayCheckout POST /api/v1/bookings/{bookingId}/payments/hyperpay
func (h *Handler) HandleHyperPayCheckout(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/payments/hyperpay - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/payments/hyperpay - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req HyperPayCheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /bookings/{id}/payments/hyperpay - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.InitiateHyperPayCheckout(r.Context(), &models.InitiateCheckoutRequest{
		BookingID:  bookingID,
		CustomerID: customerID,
		Email:      req.Email,
		GivenName:  req.GivenName,
		Surname:    req.Surname,
	})
	if err != nil {
		h.respondPaymentError(w, "POST /bookings/{id}/payments/hyperpay", bookingID, err)
		return
	}

	h.logger.Info("POST /bookings/{id}/payments/hyperpay - Checkout created: booking_id=%d, checkout_id=%s",
		bookingID, result.CheckoutID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleHyperPayResult GET /api/v1/payments/hyperpay/result
// Query params: resourcePath (required, передается HyperPay в redirect)
func (h *Handler) HandleHyperPayResult(w http.ResponseWriter, r *http.Request) {
	resourcePath := r.URL.Query().Get("resourcePath")
	if resourcePath == "" {
		h.logger.Warn("GET /payments/hyperpay/result - Missing resourcePath")
		handlers.RespondBadRequest(w, msgMissingResource)
		return
	}

	result, err := h.service.ProcessHyperPayResult(r.Context(), resourcePath)
	if err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrPaymentNotFound):
			h.logger.Warn("GET /payments/hyperpay/result - Payment not found")
			handlers.RespondNotFound(w, msgPaymentNotFound)

		case errors.Is(err, paymentsService.ErrGateway):
			h.logger.Error("GET /payments/hyperpay/result - Gateway error: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgGatewayError)

		default:
			h.logger.Error("GET /payments/hyperpay/result - Failed to process result: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /payments/hyperpay/result - Payment processed: reference=%s, status=%s",
		result.Reference, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleStripeIntent POST /api/v1/bookings/{bookingId}/payments/stripe
func (h *Handler) HandleStripeIntent(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/payments/stripe - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/payments/stripe - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.CreateStripeIntent(r.Context(), &models.CreateIntentRequest{
		BookingID:  bookingID,
		CustomerID: customerID,
	})
	if err != nil {
		h.respondPaymentError(w, "POST /bookings/{id}/payments/stripe", bookingID, err)
		return
	}

	h.logger.Info("POST /bookings/{id}/payments/stripe - Intent created: booking_id=%d, intent_id=%s",
		bookingID, result.IntentID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleStripeWebhook POST /api/v1/webhooks/stripe
// Подпись проверяется по заголовку Stripe-Signature
func (h *Handler) HandleStripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
	if err != nil {
		h.logger.Warn("POST /webhooks/stripe - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWebhook)
		return
	}
	defer r.Body.Close()

	if err := h.service.HandleStripeWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrInvalidWebhook):
			h.logger.Warn("POST /webhooks/stripe - Invalid webhook: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWebhook)

		default:
			h.logger.Error("POST /webhooks/stripe - Failed to handle webhook: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /webhooks/stripe - Webhook processed")
	handlers.RespondJSON(w, http.StatusOK, nil)
}

func (h *Handler) respondPaymentError(w http.ResponseWriter, route string, bookingID int64, err error) {
	switch {
	case errors.Is(err, paymentsService.ErrBookingNotFound):
		h.logger.Warn("%s - Booking not found: booking_id=%d", route, bookingID)
		handlers.RespondNotFound(w, msgBookingNotFound)

	case errors.Is(err, paymentsService.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: booking_id=%d", route, bookingID)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, paymentsService.ErrAlreadyPaid):
		h.logger.Warn("%s - Already paid: booking_id=%d", route, bookingID)
		handlers.RespondError(w, http.StatusConflict, msgAlreadyPaid)

	case errors.Is(err, paymentsService.ErrNotPayable):
		h.logger.Warn("%s - Not payable: booking_id=%d", route, bookingID)
		handlers.RespondBadRequest(w, msgNotPayable)

	case errors.Is(err, paymentsService.ErrGateway):
		h.logger.Error("%s - Gateway error: booking_id=%d, error=%v", route, bookingID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgGatewayError)

	default:
		h.logger.Error("%s - Payment operation failed: booking_id=%d, error=%v", route, bookingID, err)
		handlers.RespondInternalError(w)
	}
}
