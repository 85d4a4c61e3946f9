package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/glammyapp/salon-service/internal/domain"
	catalogRepo "github.com/glammyapp/salon-service/internal/infra/storage/catalog"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	settingsRepo SettingsRepository
	overrideRepo SlotOverrideRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	settingsRepo SettingsRepository,
	overrideRepo SlotOverrideRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		settingsRepo: settingsRepo,
		overrideRepo: overrideRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s", req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем настройки салона
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// Текущее время в часовом поясе салона
	now := uc.timeProvider.Now().In(settings.Location())

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем услугу
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// Рабочие часы и длительность слота с учетом смены мастера
	open, close := settings.OpenTime, settings.CloseTime
	slotDuration := settings.SlotDurationMinutes

	// 5. Проверяем мастера, если он выбран
	if req.StaffID != nil {
		staff, err := uc.catalogRepo.GetStaffByID(ctx, *req.StaffID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrStaffNotFound) {
				uc.logger.Warn("GetAvailableSlots: staff id=%d not found", *req.StaffID)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get staff id=%d: %v", *req.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		if err := validateStaff(staff, req.ServiceID); err != nil {
			uc.logger.Warn("GetAvailableSlots: staff validation failed: %v", err)
			return nil, err
		}

		// Выходной день мастера - пустая сетка
		if !staff.IsWorkingDay(req.Date.Weekday()) {
			uc.logger.Info("GetAvailableSlots: staff id=%d does not work on %s", *req.StaffID, req.Date.Weekday())
			return &Response{
				Date:      req.Date,
				ServiceID: req.ServiceID,
				StaffID:   req.StaffID,
				Slots:     []Slot{},
			}, nil
		}

		if staff.ShiftStart != nil {
			open = *staff.ShiftStart
		}
		if staff.ShiftEnd != nil {
			close = *staff.ShiftEnd
		}
		if staff.SlotDurationMinutes != nil {
			slotDuration = *staff.SlotDurationMinutes
		}
	}

	// 6. Генерируем сетку слотов
	timeSlots, err := generateTimeSlots(open, close, slotDuration)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 7. Получаем занятые времена на эту дату
	bookedTimes, err := uc.bookingRepo.GetBookedTimes(ctx, req.Date, req.StaffID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	// 8. Получаем ручные настройки слотов
	overrides, err := uc.overrideRepo.GetForServiceDate(ctx, req.ServiceID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get slot overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to get slot overrides: %v", ErrInternal, err)
	}

	// 9. Отбираем свободные слоты
	slots := buildAvailableSlots(timeSlots, slotDuration, bookedTimes, overrides, req.Date, now)

	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%d, date=%s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		Slots:     slots,
	}, nil
}
