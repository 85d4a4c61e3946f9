package content

import (
	"errors"
	"net/http"

	"github.com/glammyapp/salon-service/internal/api/handlers"
	contentService "github.com/glammyapp/salon-service/internal/service/content"
	"github.com/glammyapp/salon-service/internal/service/content/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidContact     = "name, phone and message are required"
)

type Handler struct {
	service ContentService
	logger  Logger
}

func NewHandler(service ContentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleListOffers GET /api/v1/offers
// Возвращает только активные на текущий момент предложения
func (h *Handler) HandleListOffers(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListOffers(r.Context())
	if err != nil {
		h.logger.Error("GET /offers - Failed to list offers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /offers - Offers retrieved: count=%d", len(result.Offers))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSubmitContact POST /api/v1/contact
func (h *Handler) HandleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SubmitContact(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, contentService.ErrInvalidInput):
			h.logger.Warn("POST /contact - Invalid contact message: %v", err)
			handlers.RespondBadRequest(w, msgInvalidContact)

		default:
			h.logger.Error("POST /contact - Failed to submit contact message: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contact - Contact message submitted")
	handlers.RespondJSON(w, http.StatusCreated, nil)
}
