package catalog

import (
	"context"

	"github.com/glammyapp/salon-service/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListCategories(ctx context.Context, activeOnly bool) ([]*domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, id int64) error
	ListServices(ctx context.Context, categoryID *int64, activeOnly bool) ([]*domain.Service, error)
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	CreateService(ctx context.Context, s *domain.Service) (*domain.Service, error)
	UpdateService(ctx context.Context, s *domain.Service) error
	DeleteService(ctx context.Context, id int64) error
	ListStaff(ctx context.Context, serviceID *int64, activeOnly bool) ([]*domain.Staff, error)
	GetStaffByID(ctx context.Context, id int64) (*domain.Staff, error)
	CreateStaff(ctx context.Context, s *domain.Staff) (*domain.Staff, error)
	UpdateStaff(ctx context.Context, s *domain.Staff) error
	DeleteStaff(ctx context.Context, id int64) error
}

// TxManager выполняет функцию в транзакции
// Нужен для атомарной записи услуги или мастера вместе со связями
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
