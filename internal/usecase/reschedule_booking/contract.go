package reschedule_booking

import (
	"context"
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetBookedTimes(ctx context.Context, date time.Time, staffID *int64) ([]types.TimeString, error)
	Reschedule(ctx context.Context, id int64, newDate time.Time, newTime types.TimeString) error
	AddRescheduleRecord(ctx context.Context, rec *domain.RescheduleRecord) error
}

// CatalogRepository интерфейс каталога мастеров
type CatalogRepository interface {
	GetStaffByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// SettingsRepository отдает настройки салона
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SalonSettings, error)
}

// SlotOverrideRepository интерфейс ручных настроек слотов
type SlotOverrideRepository interface {
	GetForServiceDate(ctx context.Context, serviceID int64, date time.Time) ([]*domain.SlotOverride, error)
	IncrementBookings(ctx context.Context, id int64) error
}

// EventSink принимает события бронирований
type EventSink interface {
	Publish(ctx context.Context, event domain.BookingEvent)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
