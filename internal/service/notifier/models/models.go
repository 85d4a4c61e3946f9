package models

import (
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
)

// NotificationResponse уведомление админки
type NotificationResponse struct {
	ID         int64     `json:"id"`
	Type       string    `json:"type"`
	Priority   string    `json:"priority"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	BookingID  *int64    `json:"bookingId,omitempty"`
	CustomerID *int64    `json:"customerId,omitempty"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NotificationListResponse список уведомлений со счетчиком непрочитанных
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// FromDomainNotification конвертирует domain модель в DTO
func FromDomainNotification(n *domain.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}
	return &NotificationResponse{
		ID:         n.ID,
		Type:       string(n.Type),
		Priority:   string(n.Priority),
		Title:      n.Title,
		Message:    n.Message,
		BookingID:  n.BookingID,
		CustomerID: n.CustomerID,
		IsRead:     n.IsRead,
		CreatedAt:  n.CreatedAt,
	}
}

// FromDomainNotificationList конвертирует список уведомлений в DTO
func FromDomainNotificationList(notifications []*domain.Notification, unreadCount int) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(notifications)),
		UnreadCount:   unreadCount,
	}
	for _, n := range notifications {
		if dto := FromDomainNotification(n); dto != nil {
			resp.Notifications = append(resp.Notifications, *dto)
		}
	}
	return resp
}
