package admin_coupons

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glammyapp/salon-service/internal/api/handlers"
	"github.com/glammyapp/salon-service/internal/service/coupons"
	"github.com/glammyapp/salon-service/internal/service/coupons/models"
)

const (
	msgInvalidCouponID    = "invalid coupon ID"
	msgInvalidRequestBody = "invalid request body"
	msgCouponNotFound     = "coupon not found"
	msgCodeTaken          = "coupon code already exists"
	msgInvalidInput       = "invalid coupon data"
)

type Handler struct {
	service CouponService
	logger  Logger
}

func NewHandler(service CouponService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/coupons
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/coupons - Failed to list coupons: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/coupons - Coupons retrieved: count=%d", len(result.Coupons))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/admin/coupons
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/coupons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, coupons.ErrCouponCodeTaken):
			h.logger.Warn("POST /admin/coupons - Code taken: code=%s", req.Code)
			handlers.RespondError(w, http.StatusConflict, msgCodeTaken)

		case errors.Is(err, coupons.ErrInvalidInput):
			h.logger.Warn("POST /admin/coupons - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/coupons - Failed to create coupon: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/coupons - Coupon created: coupon_id=%d, code=%s", result.ID, result.Code)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/admin/coupons/{couponId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	couponID, err := strconv.ParseInt(mux.Vars(r)["couponId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/coupons/{id} - Invalid coupon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCouponID)
		return
	}

	var req models.UpsertCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/coupons/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), couponID, &req)
	if err != nil {
		switch {
		case errors.Is(err, coupons.ErrCouponNotFound):
			h.logger.Warn("PUT /admin/coupons/{id} - Coupon not found: coupon_id=%d", couponID)
			handlers.RespondNotFound(w, msgCouponNotFound)

		case errors.Is(err, coupons.ErrCouponCodeTaken):
			h.logger.Warn("PUT /admin/coupons/{id} - Code taken: coupon_id=%d, code=%s", couponID, req.Code)
			handlers.RespondError(w, http.StatusConflict, msgCodeTaken)

		case errors.Is(err, coupons.ErrInvalidInput):
			h.logger.Warn("PUT /admin/coupons/{id} - Invalid input: coupon_id=%d, error=%v", couponID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/coupons/{id} - Failed to update coupon: coupon_id=%d, error=%v", couponID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/coupons/{id} - Coupon updated: coupon_id=%d", couponID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/coupons/{couponId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	couponID, err := strconv.ParseInt(mux.Vars(r)["couponId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/coupons/{id} - Invalid coupon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCouponID)
		return
	}

	if err := h.service.Delete(r.Context(), couponID); err != nil {
		switch {
		case errors.Is(err, coupons.ErrCouponNotFound):
			h.logger.Warn("DELETE /admin/coupons/{id} - Coupon not found: coupon_id=%d", couponID)
			handlers.RespondNotFound(w, msgCouponNotFound)

		default:
			h.logger.Error("DELETE /admin/coupons/{id} - Failed to delete coupon: coupon_id=%d, error=%v",
				couponID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/coupons/{id} - Coupon deleted: coupon_id=%d", couponID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
