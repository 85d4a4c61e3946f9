package slots

import (
	"context"
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
)

// SlotOverrideRepository интерфейс репозитория ручных настроек слотов
type SlotOverrideRepository interface {
	Create(ctx context.Context, o *domain.SlotOverride) (*domain.SlotOverride, error)
	GetForServiceDate(ctx context.Context, serviceID int64, date time.Time) ([]*domain.SlotOverride, error)
	Update(ctx context.Context, o *domain.SlotOverride) error
	Delete(ctx context.Context, id int64) error
}

// ServiceRepository проверяет существование услуги
type ServiceRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
