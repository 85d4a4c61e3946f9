package validate_coupon

import (
	"errors"
	"net/http"

	"github.com/glammyapp/salon-service/internal/api/handlers"
	"github.com/glammyapp/salon-service/internal/service/coupons"
	"github.com/glammyapp/salon-service/internal/service/coupons/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgCouponNotFound     = "coupon not found"
	msgCouponInvalid      = "coupon is not valid"
	msgMinimumNotMet      = "order amount below coupon minimum"
	msgInvalidInput       = "invalid coupon request"
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

// Handle POST /api/v1/coupons/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ValidateCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coupons/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Validate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, coupons.ErrCouponNotFound):
			h.logger.Warn("POST /coupons/validate - Coupon not found: code=%s", req.Code)
			handlers.RespondNotFound(w, msgCouponNotFound)

		case errors.Is(err, coupons.ErrCouponInvalid):
			h.logger.Warn("POST /coupons/validate - Coupon invalid: code=%s", req.Code)
			handlers.RespondBadRequest(w, msgCouponInvalid)

		case errors.Is(err, coupons.ErrMinimumNotMet):
			h.logger.Warn("POST /coupons/validate - Minimum not met: code=%s", req.Code)
			handlers.RespondBadRequest(w, msgMinimumNotMet)

		case errors.Is(err, coupons.ErrInvalidInput):
			h.logger.Warn("POST /coupons/validate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /coupons/validate - Failed to validate coupon: code=%s, error=%v", req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coupons/validate - Coupon validated: code=%s", req.Code)
	handlers.RespondJSON(w, http.StatusOK, result)
}
