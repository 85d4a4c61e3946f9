package request_otp

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

// Handle POST /api/v1/auth/otp/request
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RequestOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/otp/request - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.RequestOTP(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrInvalidPhone):
			h.logger.Warn("POST /auth/otp/request - Invalid phone")
			handlers.RespondBadRequest(w, msgInvalidPhone)

		default:
			h.logger.Error("POST /auth/otp/request - Failed to request OTP: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/otp/request - OTP sent: phone=%s", result.Phone)
	handlers.RespondJSON(w, http.StatusOK, result)
}
