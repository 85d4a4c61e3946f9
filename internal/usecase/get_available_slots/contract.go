package get_available_slots

import (
	"context"
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetBookedTimes(ctx context.Context, date time.Time, staffID *int64) ([]types.TimeString, error)
}

// CatalogRepository интерфейс каталога услуг и мастеров
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	GetStaffByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// SettingsRepository отдает настройки салона
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SalonSettings, error)
}

// SlotOverrideRepository интерфейс ручных настроек слотов
type SlotOverrideRepository interface {
	GetForServiceDate(ctx context.Context, serviceID int64, date time.Time) ([]*domain.SlotOverride, error)
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
