package admin_messages

import (
	"context"

	"github.com/glammyapp/salon-service/internal/service/content/models"
)

type ContentService interface {
	ListMessages(ctx context.Context, unreadOnly bool) (*models.ContactMessageListResponse, error)
	MarkMessageRead(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
