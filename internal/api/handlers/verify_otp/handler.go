package verify_otp

import (
	"errors"
	"net/http"

	"github.com/glammyapp/salon-service/internal/api/handlers"
	"github.com/glammyapp/salon-service/internal/service/customers"
	"github.com/glammyapp/salon-service/internal/service/customers/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidPhone       = "invalid phone number, expected E.164 format"
	msgOTPNotFound        = "verification code not found, request a new one"
	msgOTPExpired         = "verification code expired, request a new one"
	msgOTPMismatch        = "incorrect verification code"
	msgTooManyAttempts    = "too many attempts, request a new code"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/otp/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/otp/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.VerifyOTP(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrInvalidPhone):
			h.logger.Warn("POST /auth/otp/verify - Invalid phone")
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, customers.ErrOTPNotFound):
			h.logger.Warn("POST /auth/otp/verify - OTP not found")
			handlers.RespondNotFound(w, msgOTPNotFound)

		case errors.Is(err, customers.ErrOTPExpired):
			h.logger.Warn("POST /auth/otp/verify - OTP expired")
			handlers.RespondError(w, http.StatusGone, msgOTPExpired)

		case errors.Is(err, customers.ErrOTPMismatch):
			h.logger.Warn("POST /auth/otp/verify - OTP mismatch")
			handlers.RespondBadRequest(w, msgOTPMismatch)

		case errors.Is(err, customers.ErrTooManyAttempts):
			h.logger.Warn("POST /auth/otp/verify - Too many attempts")
			handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyAttempts)

		default:
			h.logger.Error("POST /auth/otp/verify - Failed to verify OTP: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/otp/verify - Customer verified: customer_id=%d, is_new=%t",
		result.Customer.ID, result.IsNew)
	handlers.RespondJSON(w, http.StatusOK, result)
}
