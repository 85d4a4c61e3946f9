package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/internal/service/settings/models"
)

// Service сервис настроек салона
type Service struct {
	repo   SettingsRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo SettingsRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Get возвращает текущие настройки салона
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSettings(settings), nil
}

// Update применяет изменения к настройкам салона
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Error("Update: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: Update - load settings: %v", ErrInternal, err)
	}

	req.ApplyTo(settings)

	if err := validate(settings); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.repo.Update(ctx, settings)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: salon settings updated")
	return models.FromDomainSettings(updated), nil
}

func validate(s *domain.SalonSettings) error {
	if err := s.OpenTime.Validate(); err != nil {
		return fmt.Errorf("open time: %v", err)
	}
	if err := s.CloseTime.Validate(); err != nil {
		return fmt.Errorf("close time: %v", err)
	}
	if !s.OpenTime.IsBefore(s.CloseTime) {
		return fmt.Errorf("open time %s must be before close time %s", s.OpenTime, s.CloseTime)
	}
	if s.SlotDurationMinutes < 15 || s.SlotDurationMinutes > 240 {
		return fmt.Errorf("slot duration must be between 15 and 240 minutes")
	}
	if s.MaxReschedules < 0 {
		return fmt.Errorf("max reschedules must not be negative")
	}
	if s.ReminderHoursAhead < 1 || s.ReminderHoursAhead > 72 {
		return fmt.Errorf("reminder hours ahead must be between 1 and 72")
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("unknown timezone %q", s.Timezone)
	}
	return nil
}
