package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/glammyapp/salon-service/internal/domain"
	bookingRepo "github.com/glammyapp/salon-service/internal/infra/storage/booking"
	"github.com/glammyapp/salon-service/internal/service/bookings/models"
)

// allowedTransitions допустимые переходы статусов бронирования
// Отмена обрабатывается отдельно через Cancel
var allowedTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.StatusPendingPayment: {domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled},
	domain.StatusPending:        {domain.StatusConfirmed, domain.StatusCancelled},
	domain.StatusConfirmed:      {domain.StatusInProgress, domain.StatusCompleted, domain.StatusCancelled},
	domain.StatusInProgress:     {domain.StatusCompleted},
}

// Service сервис жизненного цикла бронирований
type Service struct {
	bookingRepo  BookingRepository
	customerRepo CustomerRepository
	events       EventSink
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	events EventSink,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		events:       events,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Клиент может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id int64, customerID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for customer=%d", id, customerID)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.CustomerID != customerID {
		s.logger.Warn("GetByID: access denied for customer=%d to booking id=%d", customerID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetByIDAdmin получает бронирование по ID без проверки владельца
func (s *Service) GetByIDAdmin(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// VerifyByReference находит бронирование по референсу и телефону клиента
// Используется для проверки бронирования без авторизации
func (s *Service) VerifyByReference(ctx context.Context, reference, phone string) (*models.BookingResponse, error) {
	s.logger.Info("VerifyByReference: reference=%s", reference)

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("VerifyByReference: reference=%s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("VerifyByReference: repository error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: VerifyByReference - repository error: %v", ErrInternal, err)
	}

	customer, err := s.customerRepo.GetByID(ctx, booking.CustomerID)
	if err != nil {
		s.logger.Error("VerifyByReference: failed to load customer id=%d: %v", booking.CustomerID, err)
		return nil, fmt.Errorf("%w: VerifyByReference - customer lookup: %v", ErrInternal, err)
	}

	// Референс без совпадающего телефона не раскрываем
	if customer.Phone != phone {
		s.logger.Warn("VerifyByReference: phone mismatch for reference=%s", reference)
		return nil, ErrBookingNotFound
	}

	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d, status=%v", req.CustomerID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// AdminList получает бронирования с гибкой фильтрацией для админки
func (s *Service) AdminList(ctx context.Context, req *models.AdminBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("AdminList: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("AdminList: repository error: %v", err)
		return nil, fmt.Errorf("%w: AdminList - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AdminList: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Клиент может отменить только своё бронирование, администратор - любое
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if req.CustomerID != nil && booking.CustomerID != *req.CustomerID {
		s.logger.Warn("Cancel: access denied for customer=%d to booking id=%d", *req.CustomerID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)

	booking.Status = domain.StatusCancelled
	s.publishEvent(ctx, domain.NotifyBookingCancelled, booking)

	return nil
}

// UpdateStatus обновляет статус бронирования с проверкой допустимости перехода
// Доступно только администратору
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	if !transitionAllowed(booking.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d is now %s", bookingID, newStatus)

	if newStatus == domain.StatusConfirmed {
		booking.Status = newStatus
		s.publishEvent(ctx, domain.NotifyBookingConfirmed, booking)
	}

	return nil
}

// GetRescheduleHistory возвращает историю переносов бронирования
func (s *Service) GetRescheduleHistory(ctx context.Context, bookingID int64, customerID *int64) (*models.RescheduleHistoryResponse, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if customerID != nil && booking.CustomerID != *customerID {
		s.logger.Warn("GetRescheduleHistory: access denied for customer=%d to booking id=%d", *customerID, bookingID)
		return nil, ErrAccessDenied
	}

	records, err := s.bookingRepo.GetRescheduleHistory(ctx, bookingID)
	if err != nil {
		s.logger.Error("GetRescheduleHistory: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetRescheduleHistory - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRescheduleHistory(bookingID, records), nil
}

func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("getBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("getBooking: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: getBooking - repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

func (s *Service) publishEvent(ctx context.Context, eventType domain.NotificationType, booking *domain.Booking) {
	if s.events == nil {
		return
	}

	customer, err := s.customerRepo.GetByID(ctx, booking.CustomerID)
	if err != nil {
		s.logger.Warn("publishEvent: failed to load customer id=%d: %v", booking.CustomerID, err)
	}

	s.events.Publish(ctx, domain.BookingEvent{
		Type:     eventType,
		Booking:  booking,
		Customer: customer,
	})
}

func transitionAllowed(from, to domain.BookingStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if to == allowed {
			return true
		}
	}
	return false
}
