package reminders

import (
	"context"
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// SettingsRepository отдает настройки салона
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SalonSettings, error)
}

// WhatsAppSender отправляет WhatsApp сообщение
type WhatsAppSender interface {
	Send(to, body string) error
}

// EventSink принимает события бронирований для ленты админки
type EventSink interface {
	Publish(ctx context.Context, event domain.BookingEvent)
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
