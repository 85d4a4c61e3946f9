package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glammyapp/salon-service/internal/api/handlers"
	catalogService "github.com/glammyapp/salon-service/internal/service/catalog"
)

const (
	msgInvalidCategoryID = "invalid category ID"
	msgInvalidServiceID  = "invalid service ID"
	msgInvalidStaffID    = "invalid staff ID"
	msgCategoryNotFound  = "category not found"
	msgServiceNotFound   = "service not found"
	msgStaffNotFound     = "staff member not found"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleListCategories GET /api/v1/catalog/categories
func (h *Handler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog/categories - Failed to list categories: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /catalog/categories - Categories retrieved: count=%d", len(result.Categories))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGetCategory GET /api/v1/catalog/categories/{slug}
func (h *Handler) HandleGetCategory(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	result, err := h.service.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrCategoryNotFound):
			h.logger.Warn("GET /catalog/categories/{slug} - Category not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		default:
			h.logger.Error("GET /catalog/categories/{slug} - Failed to get category: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /catalog/categories/{slug} - Category retrieved: slug=%s", slug)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleListServices GET /api/v1/catalog/services
// Query params: categoryId (опционально)
func (h *Handler) HandleListServices(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if categoryIDStr := r.URL.Query().Get("categoryId"); categoryIDStr != "" {
		id, err := strconv.ParseInt(categoryIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /catalog/services - Invalid category ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategoryID)
			return
		}
		categoryID = &id
	}

	result, err := h.service.ListServices(r.Context(), categoryID)
	if err != nil {
		h.logger.Error("GET /catalog/services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /catalog/services - Services retrieved: count=%d", len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGetService GET /api/v1/catalog/services/{serviceId}
func (h *Handler) HandleGetService(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /catalog/services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.service.GetServiceByID(r.Context(), serviceID)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrServiceNotFound):
			h.logger.Warn("GET /catalog/services/{id} - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /catalog/services/{id} - Failed to get service: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /catalog/services/{id} - Service retrieved: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleListStaff GET /api/v1/catalog/staff
// Query params: serviceId (опционально)
func (h *Handler) HandleListStaff(w http.ResponseWriter, r *http.Request) {
	var serviceID *int64
	if serviceIDStr := r.URL.Query().Get("serviceId"); serviceIDStr != "" {
		id, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /catalog/staff - Invalid service ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		serviceID = &id
	}

	result, err := h.service.ListStaff(r.Context(), serviceID)
	if err != nil {
		h.logger.Error("GET /catalog/staff - Failed to list staff: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /catalog/staff - Staff retrieved: count=%d", len(result.Staff))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGetStaff GET /api/v1/catalog/staff/{staffId}
func (h *Handler) HandleGetStaff(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(mux.Vars(r)["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /catalog/staff/{id} - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	result, err := h.service.GetStaffByID(r.Context(), staffID)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrStaffNotFound):
			h.logger.Warn("GET /catalog/staff/{id} - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		default:
			h.logger.Error("GET /catalog/staff/{id} - Failed to get staff: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /catalog/staff/{id} - Staff retrieved: staff_id=%d", staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
