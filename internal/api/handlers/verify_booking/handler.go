package verify_booking

import (
	"errors"
	"net/http"

	"github.com/glammyapp/salon-service/internal/api/handlers"
	"github.com/glammyapp/salon-service/internal/service/bookings"
)

const (
	msgMissingReference = "reference is required"
	msgMissingPhone     = "phone is required"
	msgNotFound         = "booking not found"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/verify
// Query params: reference (required), phone (required)
// Референс и телефон должны совпасть, иначе бронирование считается не найденным
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := r.URL.Query().Get("reference")
	if reference == "" {
		h.logger.Warn("GET /bookings/verify - Missing reference")
		handlers.RespondBadRequest(w, msgMissingReference)
		return
	}

	phone := r.URL.Query().Get("phone")
	if phone == "" {
		h.logger.Warn("GET /bookings/verify - Missing phone")
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	booking, err := h.service.VerifyByReference(r.Context(), reference, phone)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/verify - Booking not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/verify - Failed to verify booking: reference=%s, error=%v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/verify - Booking verified successfully: reference=%s", reference)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
