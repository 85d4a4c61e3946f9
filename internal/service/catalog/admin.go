package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glammyapp/salon-service/internal/domain"
	catalogRepo "github.com/glammyapp/salon-service/internal/infra/storage/catalog"
	"github.com/glammyapp/salon-service/internal/service/catalog/models"
)

// Админские операции каталога: создание, обновление и удаление
// категорий, услуг и мастеров

// CreateCategory создает категорию
func (s *Service) CreateCategory(ctx context.Context, req *models.UpsertCategoryRequest) (*models.CategoryResponse, error) {
	if err := validateCategory(req); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateCategory(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCategorySlugTaken) {
			s.logger.Warn("CreateCategory: slug=%s already exists", req.Slug)
			return nil, ErrCategorySlugTaken
		}
		s.logger.Error("CreateCategory: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateCategory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCategory: category created id=%d slug=%s", created.ID, created.Slug)
	return models.FromDomainCategory(created), nil
}

// UpdateCategory обновляет категорию
func (s *Service) UpdateCategory(ctx context.Context, id int64, req *models.UpsertCategoryRequest) (*models.CategoryResponse, error) {
	if err := validateCategory(req); err != nil {
		return nil, err
	}

	category := req.ToDomain()
	category.ID = id

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrCategoryNotFound):
			return nil, ErrCategoryNotFound
		case errors.Is(err, catalogRepo.ErrCategorySlugTaken):
			s.logger.Warn("UpdateCategory: slug=%s already exists", req.Slug)
			return nil, ErrCategorySlugTaken
		default:
			s.logger.Error("UpdateCategory: repository error for id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateCategory - repository error: %v", ErrInternal, err)
		}
	}

	updated, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateCategory: failed to reload category id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateCategory - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCategory: category updated id=%d", id)
	return models.FromDomainCategory(updated), nil
}

// DeleteCategory удаляет категорию
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		s.logger.Error("DeleteCategory: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteCategory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteCategory: category deleted id=%d", id)
	return nil
}

// CreateService создает услугу вместе со связями с категориями
func (s *Service) CreateService(ctx context.Context, req *models.UpsertServiceRequest) (*models.ServiceResponse, error) {
	if err := validateService(req); err != nil {
		return nil, err
	}

	service := req.ToDomain()

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.repo.CreateService(ctx, service)
		return err
	})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCategoryNotFound) {
			s.logger.Warn("CreateService: unknown category in %v", req.CategoryIDs)
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: service created id=%d name=%s", service.ID, service.Name)
	return models.FromDomainService(service), nil
}

// UpdateService обновляет услугу и заменяет связи с категориями
func (s *Service) UpdateService(ctx context.Context, id int64, req *models.UpsertServiceRequest) (*models.ServiceResponse, error) {
	if err := validateService(req); err != nil {
		return nil, err
	}

	service := req.ToDomain()
	service.ID = id

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.UpdateService(ctx, service)
	})
	if err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrServiceNotFound):
			return nil, ErrServiceNotFound
		case errors.Is(err, catalogRepo.ErrCategoryNotFound):
			s.logger.Warn("UpdateService: unknown category in %v", req.CategoryIDs)
			return nil, ErrCategoryNotFound
		default:
			s.logger.Error("UpdateService: repository error for id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
		}
	}

	updated, err := s.repo.GetServiceByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateService: failed to reload service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: service updated id=%d", id)
	return models.FromDomainService(updated), nil
}

// DeleteService удаляет услугу
func (s *Service) DeleteService(ctx context.Context, id int64) error {
	if err := s.repo.DeleteService(ctx, id); err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrServiceNotFound):
			return ErrServiceNotFound
		case errors.Is(err, catalogRepo.ErrServiceInUse):
			s.logger.Warn("DeleteService: service id=%d is referenced by bookings", id)
			return ErrServiceInUse
		default:
			s.logger.Error("DeleteService: repository error for id=%d: %v", id, err)
			return fmt.Errorf("%w: DeleteService - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("DeleteService: service deleted id=%d", id)
	return nil
}

// CreateStaff создает мастера вместе со связями с услугами
func (s *Service) CreateStaff(ctx context.Context, req *models.UpsertStaffRequest) (*models.StaffResponse, error) {
	staff, err := buildStaff(req)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.repo.CreateStaff(ctx, staff)
		return err
	})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("CreateStaff: unknown service in %v", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("CreateStaff: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateStaff: staff created id=%d name=%s", staff.ID, staff.Name)
	return models.FromDomainStaff(staff), nil
}

// UpdateStaff обновляет мастера и заменяет связи с услугами
func (s *Service) UpdateStaff(ctx context.Context, id int64, req *models.UpsertStaffRequest) (*models.StaffResponse, error) {
	staff, err := buildStaff(req)
	if err != nil {
		return nil, err
	}
	staff.ID = id

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.UpdateStaff(ctx, staff)
	})
	if err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrStaffNotFound):
			return nil, ErrStaffNotFound
		case errors.Is(err, catalogRepo.ErrServiceNotFound):
			s.logger.Warn("UpdateStaff: unknown service in %v", req.ServiceIDs)
			return nil, ErrServiceNotFound
		default:
			s.logger.Error("UpdateStaff: repository error for id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStaff - repository error: %v", ErrInternal, err)
		}
	}

	updated, err := s.repo.GetStaffByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStaff: failed to reload staff id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStaff - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStaff: staff updated id=%d", id)
	return models.FromDomainStaff(updated), nil
}

// DeleteStaff удаляет мастера
func (s *Service) DeleteStaff(ctx context.Context, id int64) error {
	if err := s.repo.DeleteStaff(ctx, id); err != nil {
		switch {
		case errors.Is(err, catalogRepo.ErrStaffNotFound):
			return ErrStaffNotFound
		case errors.Is(err, catalogRepo.ErrStaffInUse):
			s.logger.Warn("DeleteStaff: staff id=%d is referenced by bookings", id)
			return ErrStaffInUse
		default:
			s.logger.Error("DeleteStaff: repository error for id=%d: %v", id, err)
			return fmt.Errorf("%w: DeleteStaff - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("DeleteStaff: staff deleted id=%d", id)
	return nil
}

func validateCategory(req *models.UpsertCategoryRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Slug) == "" {
		return fmt.Errorf("%w: category slug is required", ErrInvalidInput)
	}
	return nil
}

func validateService(req *models.UpsertServiceRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if req.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}

func buildStaff(req *models.UpsertStaffRequest) (*domain.Staff, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: staff name is required", ErrInvalidInput)
	}
	if req.SlotDurationMinutes != nil && *req.SlotDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot duration must be positive", ErrInvalidInput)
	}

	staff, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if staff.ShiftStart != nil && staff.ShiftEnd != nil && !staff.ShiftEnd.IsAfter(*staff.ShiftStart) {
		return nil, fmt.Errorf("%w: shiftEnd must be after shiftStart", ErrInvalidInput)
	}

	return staff, nil
}
