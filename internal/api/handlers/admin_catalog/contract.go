package admin_catalog

import (
	"context"

	"github.com/glammyapp/salon-service/internal/service/catalog/models"
)

type CatalogService interface {
	CreateCategory(ctx context.Context, req *models.UpsertCategoryRequest) (*models.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id int64, req *models.UpsertCategoryRequest) (*models.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id int64) error
	CreateService(ctx context.Context, req *models.UpsertServiceRequest) (*models.ServiceResponse, error)
	UpdateService(ctx context.Context, id int64, req *models.UpsertServiceRequest) (*models.ServiceResponse, error)
	DeleteService(ctx context.Context, id int64) error
	CreateStaff(ctx context.Context, req *models.UpsertStaffRequest) (*models.StaffResponse, error)
	UpdateStaff(ctx context.Context, id int64, req *models.UpsertStaffRequest) (*models.StaffResponse, error)
	DeleteStaff(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
