package admin_notifications

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glammyapp/salon-service/internal/api/handlers"
	"github.com/glammyapp/salon-service/internal/service/notifier"
)

const (
	msgInvalidNotificationID = "invalid notification ID"
	msgNotificationNotFound  = "notification not found"

	defaultListLimit = 50
	maxListLimit     = 200
)

type Handler struct {
	service NotifierService
	logger  Logger
}

func NewHandler(service NotifierService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/notifications
// Query params: unreadOnly (bool), limit (int, default 50, max 200)
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	unreadOnly := r.URL.Query().Get("unreadOnly") == "true"

	limit := uint64(defaultListLimit)
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.ParseUint(limitStr, 10, 64)
		if err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	result, err := h.service.List(r.Context(), unreadOnly, limit)
	if err != nil {
		h.logger.Error("GET /admin/notifications - Failed to list notifications: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/notifications - Notifications retrieved: count=%d, unread=%d",
		len(result.Notifications), result.UnreadCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleMarkRead PATCH /api/v1/admin/notifications/{notificationId}/read
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID, err := strconv.ParseInt(mux.Vars(r)["notificationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/notifications/{id}/read - Invalid notification ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	if err := h.service.MarkRead(r.Context(), notificationID); err != nil {
		switch {
		case errors.Is(err, notifier.ErrNotificationNotFound):
			h.logger.Warn("PATCH /admin/notifications/{id}/read - Notification not found: notification_id=%d",
				notificationID)
			handlers.RespondNotFound(w, msgNotificationNotFound)

		default:
			h.logger.Error("PATCH /admin/notifications/{id}/read - Failed to mark read: notification_id=%d, error=%v",
				notificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/notifications/{id}/read - Notification marked read: notification_id=%d",
		notificationID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

// HandleMarkAllRead POST /api/v1/admin/notifications/read-all
func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkAllRead(r.Context()); err != nil {
		h.logger.Error("POST /admin/notifications/read-all - Failed to mark all read: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/notifications/read-all - All notifications marked read")
	handlers.RespondJSON(w, http.StatusOK, nil)
}
