package admin_slot_overrides

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glammyapp/salon-service/internal/api/handlers"
	slotsService "github.com/glammyapp/salon-service/internal/service/slots"
	"github.com/glammyapp/salon-service/internal/service/slots/models"
)

const (
	msgInvalidOverrideID  = "invalid override ID"
	msgInvalidServiceID   = "invalid service ID"
	msgInvalidRequestBody = "invalid request body"
	msgMissingDate        = "date is required"
	msgOverrideNotFound   = "slot override not found"
	msgOverrideExists     = "slot override already exists"
	msgServiceNotFound    = "service not found"
	msgInvalidInput       = "invalid slot override data"
)

type Handler struct {
	service SlotOverrideService
	logger  Logger
}

func NewHandler(service SlotOverrideService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/admin/slot-overrides
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slot-overrides - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrOverrideExists):
			h.logger.Warn("POST /admin/slot-overrides - Override exists: service_id=%d, date=%s, time=%s",
				req.ServiceID, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgOverrideExists)

		case errors.Is(err, slotsService.ErrServiceNotFound):
			h.logger.Warn("POST /admin/slot-overrides - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("POST /admin/slot-overrides - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/slot-overrides - Failed to create override: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/slot-overrides - Override created: override_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/v1/admin/slot-overrides
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	serviceIDStr := r.URL.Query().Get("serviceId")
	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /admin/slot-overrides - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /admin/slot-overrides - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.service.GetForServiceDate(r.Context(), serviceID, date)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/slot-overrides - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /admin/slot-overrides - Failed to list overrides: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/slot-overrides - Overrides retrieved: service_id=%d, count=%d",
		serviceID, len(result.Overrides))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/admin/slot-overrides/{overrideId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	overrideID, err := strconv.ParseInt(mux.Vars(r)["overrideId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/slot-overrides/{id} - Invalid override ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOverrideID)
		return
	}

	var req models.UpdateOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/slot-overrides/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), overrideID, &req); err != nil {
		switch {
		case errors.Is(err, slotsService.ErrOverrideNotFound):
			h.logger.Warn("PUT /admin/slot-overrides/{id} - Override not found: override_id=%d", overrideID)
			handlers.RespondNotFound(w, msgOverrideNotFound)

		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/slot-overrides/{id} - Invalid input: override_id=%d, error=%v", overrideID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/slot-overrides/{id} - Failed to update override: override_id=%d, error=%v",
				overrideID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/slot-overrides/{id} - Override updated: override_id=%d", overrideID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

// HandleDelete DELETE /api/v1/admin/slot-overrides/{overrideId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	overrideID, err := strconv.ParseInt(mux.Vars(r)["overrideId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/slot-overrides/{id} - Invalid override ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOverrideID)
		return
	}

	if err := h.service.Delete(r.Context(), overrideID); err != nil {
		switch {
		case errors.Is(err, slotsService.ErrOverrideNotFound):
			h.logger.Warn("DELETE /admin/slot-overrides/{id} - Override not found: override_id=%d", overrideID)
			handlers.RespondNotFound(w, msgOverrideNotFound)

		default:
			h.logger.Error("DELETE /admin/slot-overrides/{id} - Failed to delete override: override_id=%d, error=%v",
				overrideID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/slot-overrides/{id} - Override deleted: override_id=%d", overrideID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
