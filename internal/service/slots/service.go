package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
	catalogRepo "github.com/glammyapp/salon-service/internal/infra/storage/catalog"
	overrideRepo "github.com/glammyapp/salon-service/internal/infra/storage/slotoverride"
	"github.com/glammyapp/salon-service/internal/service/slots/models"
)

// Service сервис ручного управления слотами
// Администратор закрывает отдельные слоты или поднимает их вместимость
type Service struct {
	overrides SlotOverrideRepository
	catalog   ServiceRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(overrides SlotOverrideRepository, catalog ServiceRepository, logger Logger) *Service {
	return &Service{
		overrides: overrides,
		catalog:   catalog,
		logger:    logger,
	}
}

// Create создает запись о слоте
func (s *Service) Create(ctx context.Context, req *models.CreateOverrideRequest) (*models.OverrideResponse, error) {
	override, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if override.MaxBookings < 1 {
		return nil, fmt.Errorf("%w: max bookings must be at least 1", ErrInvalidInput)
	}

	if _, err := s.catalog.GetServiceByID(ctx, override.ServiceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Create: failed to check service id=%d: %v", override.ServiceID, err)
		return nil, fmt.Errorf("%w: Create - service lookup: %v", ErrInternal, err)
	}

	created, err := s.overrides.Create(ctx, override)
	if err != nil {
		if errors.Is(err, overrideRepo.ErrOverrideExists) {
			return nil, ErrOverrideExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: slot override id=%d created for service=%d on %s %s",
		created.ID, created.ServiceID, req.Date, req.Time)
	return models.FromDomainOverride(created), nil
}

// GetForServiceDate возвращает записи о слотах услуги на дату
func (s *Service) GetForServiceDate(ctx context.Context, serviceID int64, date string) (*models.OverrideListResponse, error) {
	day, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, date)
	}

	overrides, err := s.overrides.GetForServiceDate(ctx, serviceID, day)
	if err != nil {
		s.logger.Error("GetForServiceDate: repository error for service=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: GetForServiceDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOverrideList(overrides), nil
}

// Update обновляет запись о слоте
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateOverrideRequest) error {
	if req.MaxBookings < 1 {
		return fmt.Errorf("%w: max bookings must be at least 1", ErrInvalidInput)
	}

	override := &domain.SlotOverride{
		ID:          id,
		StaffID:     req.StaffID,
		IsAvailable: req.IsAvailable,
		MaxBookings: req.MaxBookings,
		Notes:       req.Notes,
	}

	if err := s.overrides.Update(ctx, override); err != nil {
		if errors.Is(err, overrideRepo.ErrOverrideNotFound) {
			return ErrOverrideNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: slot override id=%d updated", id)
	return nil
}

// Delete удаляет запись о слоте
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.overrides.Delete(ctx, id); err != nil {
		if errors.Is(err, overrideRepo.ErrOverrideNotFound) {
			return ErrOverrideNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: slot override id=%d deleted", id)
	return nil
}
