package admin_catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glammyapp/salon-service/internal/api/handlers"
	"github.com/glammyapp/salon-service/internal/service/catalog"
	"github.com/glammyapp/salon-service/internal/service/catalog/models"
)

const (
	msgInvalidID          = "invalid ID"
	msgInvalidRequestBody = "invalid request body"
	msgCategoryNotFound   = "category not found"
	msgServiceNotFound    = "service not found"
	msgStaffNotFound      = "staff member not found"
	msgSlugTaken          = "category slug already exists"
	msgServiceInUse       = "service has bookings and cannot be deleted"
	msgStaffInUse         = "staff member has bookings and cannot be deleted"
	msgInvalidInput       = "invalid catalog data"
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

// HandleCreateCategory POST /api/v1/admin/catalog/categories
func (h *Handler) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/catalog/categories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCategorySlugTaken):
			h.logger.Warn("POST /admin/catalog/categories - Slug taken: slug=%s", req.Slug)
			handlers.RespondError(w, http.StatusConflict, msgSlugTaken)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/catalog/categories - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/catalog/categories - Failed to create category: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/catalog/categories - Category created: category_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdateCategory PUT /api/v1/admin/catalog/categories/{categoryId}
func (h *Handler) HandleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(mux.Vars(r)["categoryId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/catalog/categories/{id} - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpsertCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/catalog/categories/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateCategory(r.Context(), categoryID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCategoryNotFound):
			h.logger.Warn("PUT /admin/catalog/categories/{id} - Category not found: category_id=%d", categoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		case errors.Is(err, catalog.ErrCategorySlugTaken):
			h.logger.Warn("PUT /admin/catalog/categories/{id} - Slug taken: slug=%s", req.Slug)
			handlers.RespondError(w, http.StatusConflict, msgSlugTaken)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/catalog/categories/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/catalog/categories/{id} - Failed to update category: category_id=%d, error=%v",
				categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/catalog/categories/{id} - Category updated: category_id=%d", categoryID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDeleteCategory DELETE /api/v1/admin/catalog/categories/{categoryId}
func (h *Handler) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(mux.Vars(r)["categoryId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/catalog/categories/{id} - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), categoryID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrCategoryNotFound):
			h.logger.Warn("DELETE /admin/catalog/categories/{id} - Category not found: category_id=%d", categoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		default:
			h.logger.Error("DELETE /admin/catalog/categories/{id} - Failed to delete category: category_id=%d, error=%v",
				categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/catalog/categories/{id} - Category deleted: category_id=%d", categoryID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleCreateService POST /api/v1/admin/catalog/services
func (h *Handler) HandleCreateService(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/catalog/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateService(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCategoryNotFound):
			h.logger.Warn("POST /admin/catalog/services - Unknown category: %v", req.CategoryIDs)
			handlers.RespondBadRequest(w, msgCategoryNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/catalog/services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/catalog/services - Failed to create service: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/catalog/services - Service created: service_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdateService PUT /api/v1/admin/catalog/services/{serviceId}
func (h *Handler) HandleUpdateService(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/catalog/services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpsertServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/catalog/services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateService(r.Context(), serviceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /admin/catalog/services/{id} - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrCategoryNotFound):
			h.logger.Warn("PUT /admin/catalog/services/{id} - Unknown category: %v", req.CategoryIDs)
			handlers.RespondBadRequest(w, msgCategoryNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/catalog/services/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/catalog/services/{id} - Failed to update service: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/catalog/services/{id} - Service updated: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDeleteService DELETE /api/v1/admin/catalog/services/{serviceId}
func (h *Handler) HandleDeleteService(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/catalog/services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteService(r.Context(), serviceID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("DELETE /admin/catalog/services/{id} - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrServiceInUse):
			h.logger.Warn("DELETE /admin/catalog/services/{id} - Service in use: service_id=%d", serviceID)
			handlers.RespondError(w, http.StatusConflict, msgServiceInUse)

		default:
			h.logger.Error("DELETE /admin/catalog/services/{id} - Failed to delete service: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/catalog/services/{id} - Service deleted: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleCreateStaff POST /api/v1/admin/catalog/staff
func (h *Handler) HandleCreateStaff(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/catalog/staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateStaff(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("POST /admin/catalog/staff - Unknown service: %v", req.ServiceIDs)
			handlers.RespondBadRequest(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/catalog/staff - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/catalog/staff - Failed to create staff: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/catalog/staff - Staff created: staff_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdateStaff PUT /api/v1/admin/catalog/staff/{staffId}
func (h *Handler) HandleUpdateStaff(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(mux.Vars(r)["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/catalog/staff/{id} - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpsertStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/catalog/staff/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStaff(r.Context(), staffID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrStaffNotFound):
			h.logger.Warn("PUT /admin/catalog/staff/{id} - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /admin/catalog/staff/{id} - Unknown service: %v", req.ServiceIDs)
			handlers.RespondBadRequest(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/catalog/staff/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/catalog/staff/{id} - Failed to update staff: staff_id=%d, error=%v",
				staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/catalog/staff/{id} - Staff updated: staff_id=%d", staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDeleteStaff DELETE /api/v1/admin/catalog/staff/{staffId}
func (h *Handler) HandleDeleteStaff(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(mux.Vars(r)["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/catalog/staff/{id} - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteStaff(r.Context(), staffID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrStaffNotFound):
			h.logger.Warn("DELETE /admin/catalog/staff/{id} - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, catalog.ErrStaffInUse):
			h.logger.Warn("DELETE /admin/catalog/staff/{id} - Staff in use: staff_id=%d", staffID)
			handlers.RespondError(w, http.StatusConflict, msgStaffInUse)

		default:
			h.logger.Error("DELETE /admin/catalog/staff/{id} - Failed to delete staff: staff_id=%d, error=%v",
				staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/catalog/staff/{id} - Staff deleted: staff_id=%d", staffID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
