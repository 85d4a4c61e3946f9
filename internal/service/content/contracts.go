package content

import (
	"context"
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
)

// ContentRepository интерфейс репозитория акций и обращений
type ContentRepository interface {
	ListCurrentOffers(ctx context.Context, now time.Time) ([]*domain.Offer, error)
	CreateContactMessage(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	ListContactMessages(ctx context.Context, unreadOnly bool) ([]*domain.ContactMessage, error)
	MarkMessageRead(ctx context.Context, id int64) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
