package catalog

import (
	"context"

	"github.com/glammyapp/salon-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListCategories(ctx context.Context) (*models.CategoryListResponse, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.CategoryResponse, error)
	ListServices(ctx context.Context, categoryID *int64) (*models.ServiceListResponse, error)
	GetServiceByID(ctx context.Context, id int64) (*models.ServiceResponse, error)
	ListStaff(ctx context.Context, serviceID *int64) (*models.StaffListResponse, error)
	GetStaffByID(ctx context.Context, id int64) (*models.StaffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
