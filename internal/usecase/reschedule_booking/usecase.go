package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/glammyapp/salon-service/internal/domain"
	bookingRepo "github.com/glammyapp/salon-service/internal/infra/storage/booking"
	catalogRepo "github.com/glammyapp/salon-service/internal/infra/storage/catalog"
)

// UseCase use case для переноса бронирования на другой слот
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	settingsRepo SettingsRepository
	overrideRepo SlotOverrideRepository
	events       EventSink
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	settingsRepo SettingsRepository,
	overrideRepo SlotOverrideRepository,
	events EventSink,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		settingsRepo: settingsRepo,
		overrideRepo: overrideRepo,
		events:       events,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переноса бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, newDate=%s, newTime=%s",
		req.BookingID, req.NewDate.Format(domain.DateFormat), req.NewTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// Переменные для хранения результата и события
	var result *domain.Booking
	var oldDate = req.NewDate
	var oldTime = req.NewTime

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Проверяем принадлежность клиенту
		if req.CustomerID != nil && booking.CustomerID != *req.CustomerID {
			uc.logger.Warn("RescheduleBooking: booking id=%d does not belong to customer=%d",
				req.BookingID, *req.CustomerID)
			return ErrAccessDenied
		}

		// 2.3. Проверяем, что перенос допустим
		if !booking.CanBeRescheduled() {
			if booking.RescheduleCount >= booking.MaxReschedules {
				uc.logger.Warn("RescheduleBooking: booking id=%d reached reschedule limit %d",
					req.BookingID, booking.MaxReschedules)
				return ErrRescheduleLimitReached
			}
			uc.logger.Warn("RescheduleBooking: booking id=%d in status %s cannot be rescheduled",
				req.BookingID, booking.Status)
			return ErrNotReschedulable
		}

		// Перенос на тот же слот не имеет смысла
		if isSameDay(booking.BookingDate, req.NewDate) && booking.BookingTime == req.NewTime {
			return fmt.Errorf("%w: new slot must differ from the current one", ErrInvalidInput)
		}

		// 2.4. Получаем настройки салона
		settings, err := uc.settingsRepo.Get(txCtx)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		// Текущее время в часовом поясе салона
		now := uc.timeProvider.Now().In(settings.Location())

		// 2.5. Валидация новой даты
		if err := validateDate(req.NewDate, now); err != nil {
			uc.logger.Warn("RescheduleBooking: date validation failed: %v", err)
			return err
		}

		// Рабочие часы и длительность слота с учетом смены мастера
		open, close := settings.OpenTime, settings.CloseTime
		slotDuration := settings.SlotDurationMinutes

		if booking.StaffID != nil {
			staff, err := uc.catalogRepo.GetStaffByID(txCtx, *booking.StaffID)
			if err != nil && !errors.Is(err, catalogRepo.ErrStaffNotFound) {
				uc.logger.Error("RescheduleBooking: failed to get staff id=%d: %v", *booking.StaffID, err)
				return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
			}
			if staff != nil {
				if !staff.IsWorkingDay(req.NewDate.Weekday()) {
					uc.logger.Warn("RescheduleBooking: staff id=%d does not work on %s",
						*booking.StaffID, req.NewDate.Weekday())
					return ErrSlotNotAvailable
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
		}

		// 2.6. Валидация нового времени слота
		if err := validateSlotTime(req.NewTime, req.NewDate, now, open, close, slotDuration); err != nil {
			uc.logger.Warn("RescheduleBooking: slot time validation failed: %v", err)
			return err
		}

		// 2.7. Проверяем доступность нового слота
		if err := uc.claimSlot(txCtx, booking, req); err != nil {
			return err
		}

		oldDate = booking.BookingDate
		oldTime = booking.BookingTime

		// 2.8. Переносим бронирование, условие в WHERE не даст превысить лимит
		if err := uc.bookingRepo.Reschedule(txCtx, booking.ID, req.NewDate, req.NewTime); err != nil {
			if errors.Is(err, bookingRepo.ErrRescheduleLimit) {
				uc.logger.Warn("RescheduleBooking: booking id=%d reached reschedule limit", booking.ID)
				return ErrRescheduleLimitReached
			}
			uc.logger.Error("RescheduleBooking: failed to reschedule booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to reschedule booking: %v", ErrInternal, err)
		}

		// 2.9. Записываем историю переноса
		rescheduledBy := domain.RescheduledByAdmin
		if req.CustomerID != nil {
			rescheduledBy = domain.RescheduledByCustomer
		}
		record := &domain.RescheduleRecord{
			BookingID:     booking.ID,
			OldDate:       oldDate,
			OldTime:       oldTime,
			NewDate:       req.NewDate,
			NewTime:       req.NewTime,
			Reason:        req.Reason,
			RescheduledBy: rescheduledBy,
		}
		if err := uc.bookingRepo.AddRescheduleRecord(txCtx, record); err != nil {
			uc.logger.Error("RescheduleBooking: failed to add reschedule record: %v", err)
			return fmt.Errorf("%w: failed to add reschedule record: %v", ErrInternal, err)
		}

		// 2.10. Перечитываем бронирование с обновленными полями
		updated, err := uc.bookingRepo.GetByID(txCtx, booking.ID)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to reload booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: successfully rescheduled booking id=%d to %s %s",
		result.ID, result.BookingDate.Format(domain.DateFormat), result.BookingTime)

	// 3. Публикуем событие для уведомлений
	if uc.events != nil {
		uc.events.Publish(ctx, domain.BookingEvent{
			Type:    domain.NotifyBookingRescheduled,
			Booking: result,
			OldDate: &oldDate,
			OldTime: &oldTime,
		})
	}

	return &Response{
		ID:                   result.ID,
		Reference:            result.Reference,
		BookingDate:          result.BookingDate,
		BookingTime:          result.BookingTime,
		Status:               string(result.Status),
		RescheduleCount:      result.RescheduleCount,
		RemainingReschedules: result.RemainingReschedules(),
	}, nil
}

// claimSlot проверяет доступность нового слота и занимает его.
// Запись о слоте может закрыть его или поднять вместимость,
// без записи действует вместимость один визит на слот
func (uc *UseCase) claimSlot(ctx context.Context, booking *domain.Booking, req *Request) error {
	overrides, err := uc.overrideRepo.GetForServiceDate(ctx, booking.ServiceID, req.NewDate)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to get slot overrides: %v", err)
		return fmt.Errorf("%w: failed to get slot overrides: %v", ErrInternal, err)
	}

	if override := findOverride(overrides, req.NewTime); override != nil {
		if !override.IsAvailable {
			uc.logger.Warn("RescheduleBooking: slot %s is closed by override id=%d", req.NewTime, override.ID)
			return ErrSlotNotAvailable
		}
		// Условие в WHERE не даст превысить вместимость
		if err := uc.overrideRepo.IncrementBookings(ctx, override.ID); err != nil {
			uc.logger.Warn("RescheduleBooking: slot %s is full, override id=%d: %v", req.NewTime, override.ID, err)
			return ErrSlotNotAvailable
		}
		return nil
	}

	// Занятые времена читаются с блокировкой (FOR UPDATE)
	bookedTimes, err := uc.bookingRepo.GetBookedTimes(ctx, req.NewDate, booking.StaffID)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to get booked times: %v", err)
		return fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	if isTimeBooked(bookedTimes, req.NewTime) {
		uc.logger.Warn("RescheduleBooking: slot %s on %s is already booked",
			req.NewTime, req.NewDate.Format(domain.DateFormat))
		return ErrSlotNotAvailable
	}

	return nil
}
