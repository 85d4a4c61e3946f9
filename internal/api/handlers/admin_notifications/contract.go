package admin_notifications

import (
	"context"

	"github.com/glammyapp/salon-service/internal/service/notifier/models"
)

type NotifierService interface {
	List(ctx context.Context, unreadOnly bool, limit uint64) (*models.NotificationListResponse, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
