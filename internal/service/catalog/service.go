package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/glammyapp/salon-service/internal/infra/storage/catalog"
	"github.com/glammyapp/salon-service/internal/service/catalog/models"
)

// Service сервис каталога: категории, услуги и мастера
type Service struct {
	repo      CatalogRepository
	txManager TxManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo CatalogRepository, txManager TxManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// ListCategories возвращает активные категории для витрины
func (s *Service) ListCategories(ctx context.Context) (*models.CategoryListResponse, error) {
	categories, err := s.repo.ListCategories(ctx, true)
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCategoryList(categories), nil
}

// GetCategoryBySlug возвращает категорию по slug
func (s *Service) GetCategoryBySlug(ctx context.Context, slug string) (*models.CategoryResponse, error) {
	category, err := s.repo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCategoryNotFound) {
			s.logger.Warn("GetCategoryBySlug: category slug=%s not found", slug)
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("GetCategoryBySlug: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetCategoryBySlug - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCategory(category), nil
}

// ListServices возвращает активные услуги, опционально по категории
func (s *Service) ListServices(ctx context.Context, categoryID *int64) (*models.ServiceListResponse, error) {
	services, err := s.repo.ListServices(ctx, categoryID, true)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// GetServiceByID возвращает услугу по ID
func (s *Service) GetServiceByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	service, err := s.repo.GetServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetServiceByID: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetServiceByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetServiceByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// ListStaff возвращает активных мастеров, опционально по услуге
func (s *Service) ListStaff(ctx context.Context, serviceID *int64) (*models.StaffListResponse, error) {
	staff, err := s.repo.ListStaff(ctx, serviceID, true)
	if err != nil {
		s.logger.Error("ListStaff: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStaff - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaffList(staff), nil
}

// GetStaffByID возвращает мастера по ID
func (s *Service) GetStaffByID(ctx context.Context, id int64) (*models.StaffResponse, error) {
	staff, err := s.repo.GetStaffByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			s.logger.Warn("GetStaffByID: staff id=%d not found", id)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetStaffByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetStaffByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaff(staff), nil
}
