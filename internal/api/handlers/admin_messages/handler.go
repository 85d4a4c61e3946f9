package admin_messages

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glammyapp/salon-service/internal/api/handlers"
	"github.com/glammyapp/salon-service/internal/service/content"
)

const (
	msgInvalidMessageID = "invalid message ID"
	msgMessageNotFound  = "contact message not found"
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

// HandleList GET /api/v1/admin/contact-messages
// Query params: unreadOnly (bool)
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unreadOnly") == "true"

	result, err := h.service.ListMessages(r.Context(), unreadOnly)
	if err != nil {
		h.logger.Error("GET /admin/contact-messages - Failed to list messages: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/contact-messages - Messages retrieved: count=%d", len(result.Messages))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleMarkRead PATCH /api/v1/admin/contact-messages/{messageId}/read
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	messageID, err := strconv.ParseInt(mux.Vars(r)["messageId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/contact-messages/{id}/read - Invalid message ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMessageID)
		return
	}

	if err := h.service.MarkMessageRead(r.Context(), messageID); err != nil {
		switch {
		case errors.Is(err, content.ErrMessageNotFound):
			h.logger.Warn("PATCH /admin/contact-messages/{id}/read - Message not found: message_id=%d", messageID)
			handlers.RespondNotFound(w, msgMessageNotFound)

		default:
			h.logger.Error("PATCH /admin/contact-messages/{id}/read - Failed to mark read: message_id=%d, error=%v",
				messageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/contact-messages/{id}/read - Message marked read: message_id=%d", messageID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
