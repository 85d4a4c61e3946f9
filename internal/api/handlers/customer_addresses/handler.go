package customer_addresses

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glammyapp/salon-service/internal/api/handlers"
	"github.com/glammyapp/salon-service/internal/api/middleware"
	"github.com/glammyapp/salon-service/internal/service/customers"
	"github.com/glammyapp/salon-service/internal/service/customers/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingCustomerID  = "missing customer ID"
	msgInvalidAddressID   = "invalid address ID"
	msgAddressNotFound    = "address not found"
	msgInvalidInput       = "invalid address data"
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

// HandleList GET /api/v1/customers/me/addresses
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("GET /customers/me/addresses - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	addresses, err := h.service.GetAddresses(r.Context(), customerID)
	if err != nil {
		h.logger.Error("GET /customers/me/addresses - Failed to get addresses: customer_id=%d, error=%v",
			customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers/me/addresses - Addresses retrieved: customer_id=%d, count=%d",
		customerID, len(addresses.Addresses))
	handlers.RespondJSON(w, http.StatusOK, addresses)
}

// HandleCreate POST /api/v1/customers/me/addresses
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("POST /customers/me/addresses - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	var req models.CreateAddressRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers/me/addresses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	address, err := h.service.CreateAddress(r.Context(), customerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("POST /customers/me/addresses - Invalid input: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /customers/me/addresses - Failed to create address: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customers/me/addresses - Address created: customer_id=%d, address_id=%d",
		customerID, address.ID)
	handlers.RespondJSON(w, http.StatusCreated, address)
}

// HandleDelete DELETE /api/v1/customers/me/addresses/{addressId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /customers/me/addresses/{id} - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	vars := mux.Vars(r)
	addressID, err := strconv.ParseInt(vars["addressId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /customers/me/addresses/{id} - Invalid address ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAddressID)
		return
	}

	if err := h.service.DeleteAddress(r.Context(), customerID, addressID); err != nil {
		switch {
		case errors.Is(err, customers.ErrAddressNotFound):
			h.logger.Warn("DELETE /customers/me/addresses/{id} - Address not found: customer_id=%d, address_id=%d",
				customerID, addressID)
			handlers.RespondNotFound(w, msgAddressNotFound)

		default:
			h.logger.Error("DELETE /customers/me/addresses/{id} - Failed to delete address: customer_id=%d, address_id=%d, error=%v",
				customerID, addressID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /customers/me/addresses/{id} - Address deleted: customer_id=%d, address_id=%d",
		customerID, addressID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
