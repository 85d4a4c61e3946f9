package notifier

import (
	"context"

	"github.com/glammyapp/salon-service/internal/domain"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	List(ctx context.Context, unreadOnly bool, limit uint64) ([]*domain.Notification, error)
	CountUnread(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) error
	MarkSent(ctx context.Context, id int64) error
}

// SettingsRepository отдает настройки салона с каналами доставки
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SalonSettings, error)
}

// WhatsAppSender отправляет WhatsApp сообщение
type WhatsAppSender interface {
	Send(to, body string) error
}

// EmailSender отправляет HTML письмо
type EmailSender interface {
	Send(to, subject, htmlBody string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
