package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
	catalogRepo "github.com/glammyapp/salon-service/internal/infra/storage/catalog"
	couponRepo "github.com/glammyapp/salon-service/internal/infra/storage/coupon"
	customerRepo "github.com/glammyapp/salon-service/internal/infra/storage/customer"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	customerRepo CustomerRepository
	couponRepo   CouponRepository
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
	customerRepo CustomerRepository,
	couponRepo CouponRepository,
	settingsRepo SettingsRepository,
	overrideRepo SlotOverrideRepository,
	events EventSink,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		customerRepo: customerRepo,
		couponRepo:   couponRepo,
		settingsRepo: settingsRepo,
		overrideRepo: overrideRepo,
		events:       events,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, service=%d, date=%s, time=%s",
		req.CustomerID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем настройки салона
		settings, err := uc.settingsRepo.Get(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		// Текущее время в часовом поясе салона
		now := uc.timeProvider.Now().In(settings.Location())

		// 2.2. Валидация даты
		if err := validateDate(req.Date, now); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 2.3. Получаем услугу
		service, err := uc.catalogRepo.GetServiceByID(txCtx, req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
				return ErrServiceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if !service.IsActive {
			uc.logger.Warn("CreateBooking: service id=%d is inactive", req.ServiceID)
			return ErrServiceNotFound
		}

		// 2.4. Проверяем адрес клиента
		if _, err := uc.customerRepo.GetAddressByID(txCtx, req.AddressID, req.CustomerID); err != nil {
			if errors.Is(err, customerRepo.ErrAddressNotFound) {
				uc.logger.Warn("CreateBooking: address id=%d not found for customer=%d", req.AddressID, req.CustomerID)
				return ErrAddressNotFound
			}
			uc.logger.Error("CreateBooking: failed to get address id=%d: %v", req.AddressID, err)
			return fmt.Errorf("%w: failed to get address: %v", ErrInternal, err)
		}

		// Рабочие часы и длительность слота с учетом смены мастера
		open, close := settings.OpenTime, settings.CloseTime
		slotDuration := settings.SlotDurationMinutes

		// 2.5. Проверяем мастера, если он выбран
		if req.StaffID != nil {
			staff, err := uc.catalogRepo.GetStaffByID(txCtx, *req.StaffID)
			if err != nil {
				if errors.Is(err, catalogRepo.ErrStaffNotFound) {
					uc.logger.Warn("CreateBooking: staff id=%d not found", *req.StaffID)
					return ErrStaffNotFound
				}
				uc.logger.Error("CreateBooking: failed to get staff id=%d: %v", *req.StaffID, err)
				return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
			}
			if err := validateStaff(staff, req.ServiceID, req.Date); err != nil {
				uc.logger.Warn("CreateBooking: staff validation failed: %v", err)
				return err
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

		// 2.6. Валидация времени слота
		if err := validateSlotTime(req.Time, req.Date, now, open, close, slotDuration); err != nil {
			uc.logger.Warn("CreateBooking: slot time validation failed: %v", err)
			return err
		}

		// 2.7. Проверяем доступность слота
		if err := uc.claimSlot(txCtx, req); err != nil {
			return err
		}

		// 2.8. Применяем купон, если указан
		var coupon *domain.Coupon
		if req.CouponCode != nil && strings.TrimSpace(*req.CouponCode) != "" {
			coupon, err = uc.redeemCoupon(txCtx, *req.CouponCode, service, now)
			if err != nil {
				return err
			}
		}

		// 2.9. Генерируем референс
		reference, err := domain.GenerateReference(now)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to generate reference: %v", err)
			return fmt.Errorf("%w: failed to generate reference: %v", ErrInternal, err)
		}

		// Онлайн-оплата начинается с ожидания платежа,
		// такое бронирование слот не занимает
		status := domain.StatusPending
		if domain.PaymentMethod(req.PaymentMethod) == domain.PaymentMethodOnline {
			status = domain.StatusPendingPayment
		}

		// 2.10. Собираем бронирование со снимком цены
		booking := &domain.Booking{
			Reference:       reference,
			CustomerID:      req.CustomerID,
			ServiceID:       req.ServiceID,
			StaffID:         req.StaffID,
			AddressID:       req.AddressID,
			BookingDate:     req.Date,
			BookingTime:     req.Time,
			Status:          status,
			PaymentMethod:   domain.PaymentMethod(req.PaymentMethod),
			PaymentStatus:   domain.BookingPaymentPending,
			MaxReschedules:  settings.MaxReschedules,
			CanReschedule:   true,
			ServiceName:     service.Name,
			SpecialRequests: req.SpecialRequests,
		}
		domain.ApplyPricing(booking, service.Price, coupon, now)

		// 2.11. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d reference=%s", result.ID, result.Reference)

	// 3. Публикуем событие для уведомлений
	if uc.events != nil {
		uc.events.Publish(ctx, domain.BookingEvent{
			Type:    domain.NotifyBookingCreated,
			Booking: result,
		})
	}

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		Reference:       result.Reference,
		CustomerID:      result.CustomerID,
		ServiceID:       result.ServiceID,
		StaffID:         result.StaffID,
		AddressID:       result.AddressID,
		BookingDate:     result.BookingDate,
		BookingTime:     result.BookingTime,
		Status:          string(result.Status),
		PaymentMethod:   string(result.PaymentMethod),
		PaymentStatus:   string(result.PaymentStatus),
		Price:           result.Price,
		CouponCode:      result.CouponCode,
		DiscountAmount:  result.DiscountAmount,
		FinalPrice:      result.FinalPrice,
		ServiceName:     result.ServiceName,
		SpecialRequests: result.SpecialRequests,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// claimSlot проверяет доступность слота и занимает его.
// Запись о слоте может закрыть его или поднять вместимость,
// без записи действует вместимость один визит на слот
func (uc *UseCase) claimSlot(ctx context.Context, req *Request) error {
	overrides, err := uc.overrideRepo.GetForServiceDate(ctx, req.ServiceID, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get slot overrides: %v", err)
		return fmt.Errorf("%w: failed to get slot overrides: %v", ErrInternal, err)
	}

	if override := findOverride(overrides, req.Time); override != nil {
		if !override.IsAvailable {
			uc.logger.Warn("CreateBooking: slot %s is closed by override id=%d", req.Time, override.ID)
			return ErrSlotNotAvailable
		}
		// Условие в WHERE не даст превысить вместимость
		if err := uc.overrideRepo.IncrementBookings(ctx, override.ID); err != nil {
			uc.logger.Warn("CreateBooking: slot %s is full, override id=%d: %v", req.Time, override.ID, err)
			return ErrSlotNotAvailable
		}
		return nil
	}

	// Занятые времена читаются с блокировкой (FOR UPDATE)
	bookedTimes, err := uc.bookingRepo.GetBookedTimes(ctx, req.Date, req.StaffID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get booked times: %v", err)
		return fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	if isTimeBooked(bookedTimes, req.Time) {
		uc.logger.Warn("CreateBooking: slot %s on %s is already booked", req.Time, req.Date.Format(domain.DateFormat))
		return ErrSlotNotAvailable
	}

	return nil
}

// redeemCoupon проверяет купон и атомарно списывает использование
func (uc *UseCase) redeemCoupon(ctx context.Context, code string, service *domain.Service, now time.Time) (*domain.Coupon, error) {
	coupon, err := uc.couponRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			uc.logger.Warn("CreateBooking: coupon code=%s not found", code)
			return nil, ErrCouponNotFound
		}
		uc.logger.Error("CreateBooking: failed to get coupon code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: failed to get coupon: %v", ErrInternal, err)
	}

	if !coupon.IsValid(now) || !coupon.MeetsMinimum(service.Price) {
		uc.logger.Warn("CreateBooking: coupon code=%s cannot be applied", coupon.Code)
		return nil, ErrCouponInvalid
	}

	// Условие в WHERE не даст превысить лимит использований
	if err := uc.couponRepo.Redeem(ctx, coupon.ID); err != nil {
		if errors.Is(err, couponRepo.ErrCouponExhausted) {
			uc.logger.Warn("CreateBooking: coupon code=%s is exhausted", coupon.Code)
			return nil, ErrCouponInvalid
		}
		uc.logger.Error("CreateBooking: failed to redeem coupon id=%d: %v", coupon.ID, err)
		return nil, fmt.Errorf("%w: failed to redeem coupon: %v", ErrInternal, err)
	}

	return coupon, nil
}
