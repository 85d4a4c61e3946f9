package customer_profile

import (
	"errors"
	"net/http"

	"github.com/glammyapp/salon-service/internal/api/handlers"
	"github.com/glammyapp/salon-service/internal/api/middleware"
	"github.com/glammyapp/salon-service/internal/service/customers"
	"github.com/glammyapp/salon-service/internal/service/customers/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingCustomerID  = "missing customer ID"
	msgCustomerNotFound   = "customer not found"
	msgInvalidInput       = "invalid profile data"
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

// HandleGet GET /api/v1/customers/me
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("GET /customers/me - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("GET /customers/me - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		default:
			h.logger.Error("GET /customers/me - Failed to get profile: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/me - Profile retrieved: customer_id=%d", customerID)
	handlers.RespondJSON(w, http.StatusOK, profile)
}

// HandleUpdate PATCH /api/v1/customers/me
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /customers/me - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	var req models.UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /customers/me - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), customerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("PATCH /customers/me - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("PATCH /customers/me - Invalid input: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /customers/me - Failed to update profile: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /customers/me - Profile updated: customer_id=%d", customerID)
	handlers.RespondJSON(w, http.StatusOK, profile)
}
