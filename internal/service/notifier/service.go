package notifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/glammyapp/salon-service/internal/domain"
	notificationRepo "github.com/glammyapp/salon-service/internal/infra/storage/notification"
	"github.com/glammyapp/salon-service/internal/service/notifier/models"
)

// Service сервис уведомлений: принимает события бронирований,
// складывает их в ленту админки и рассылает по внешним каналам
type Service struct {
	repo     NotificationRepository
	settings SettingsRepository
	whatsApp WhatsAppSender
	email    EmailSender
	logger   Logger
}

// NewService создает новый экземпляр сервиса уведомлений
// whatsApp и email могут быть nil, тогда канал отключен
func NewService(
	repo NotificationRepository,
	settings SettingsRepository,
	whatsApp WhatsAppSender,
	email EmailSender,
	logger Logger,
) *Service {
	return &Service{
		repo:     repo,
		settings: settings,
		whatsApp: whatsApp,
		email:    email,
		logger:   logger,
	}
}

// Publish принимает событие бронирования
// Ошибки доставки логируются и не прерывают вызывающий поток
func (s *Service) Publish(ctx context.Context, event domain.BookingEvent) {
	notification := s.buildNotification(event)
	if notification == nil {
		s.logger.Warn("Publish: unsupported event type=%s", event.Type)
		return
	}

	created, err := s.repo.Create(ctx, notification)
	if err != nil {
		s.logger.Error("Publish: failed to store notification type=%s: %v", event.Type, err)
		return
	}

	if s.deliver(ctx, created) {
		if err := s.repo.MarkSent(ctx, created.ID); err != nil {
			s.logger.Warn("Publish: failed to mark notification id=%d sent: %v", created.ID, err)
		}
	}
}

// List возвращает ленту уведомлений со счетчиком непрочитанных
func (s *Service) List(ctx context.Context, unreadOnly bool, limit uint64) (*models.NotificationListResponse, error) {
	notifications, err := s.repo.List(ctx, unreadOnly, limit)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	unreadCount, err := s.repo.CountUnread(ctx)
	if err != nil {
		s.logger.Error("List: failed to count unread: %v", err)
		return nil, fmt.Errorf("%w: List - count unread: %v", ErrInternal, err)
	}

	return models.FromDomainNotificationList(notifications, unreadCount), nil
}

// MarkRead помечает уведомление прочитанным
func (s *Service) MarkRead(ctx context.Context, id int64) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkRead: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}
	return nil
}

// MarkAllRead помечает все уведомления прочитанными
func (s *Service) MarkAllRead(ctx context.Context) error {
	if err := s.repo.MarkAllRead(ctx); err != nil {
		s.logger.Error("MarkAllRead: repository error: %v", err)
		return fmt.Errorf("%w: MarkAllRead - repository error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) buildNotification(event domain.BookingEvent) *domain.Notification {
	booking := event.Booking
	if booking == nil {
		return nil
	}

	customerName := "customer"
	if event.Customer != nil {
		if event.Customer.Name != nil && *event.Customer.Name != "" {
			customerName = *event.Customer.Name
		} else {
			customerName = event.Customer.Phone
		}
	}

	when := fmt.Sprintf("%s at %s", booking.BookingDate.Format(domain.DateFormat), booking.BookingTime)

	n := &domain.Notification{
		Type:      event.Type,
		BookingID: &booking.ID,
	}
	if booking.CustomerID != 0 {
		customerID := booking.CustomerID
		n.CustomerID = &customerID
	}

	switch event.Type {
	case domain.NotifyBookingCreated:
		n.Priority = domain.PriorityHigh
		n.Title = "New booking " + booking.Reference
		n.Message = fmt.Sprintf("%s booked %s on %s", customerName, booking.ServiceName, when)
	case domain.NotifyBookingConfirmed:
		n.Priority = domain.PriorityMedium
		n.Title = "Booking confirmed " + booking.Reference
		n.Message = fmt.Sprintf("%s on %s is confirmed", booking.ServiceName, when)
	case domain.NotifyBookingCancelled:
		n.Priority = domain.PriorityHigh
		n.Title = "Booking cancelled " + booking.Reference
		n.Message = fmt.Sprintf("%s cancelled %s on %s", customerName, booking.ServiceName, when)
	case domain.NotifyBookingRescheduled:
		n.Priority = domain.PriorityMedium
		n.Title = "Booking rescheduled " + booking.Reference
		old := ""
		if event.OldDate != nil && event.OldTime != nil {
			old = fmt.Sprintf(" from %s at %s", event.OldDate.Format(domain.DateFormat), *event.OldTime)
		}
		n.Message = fmt.Sprintf("%s moved %s%s to %s", customerName, booking.ServiceName, old, when)
	case domain.NotifyPaymentReceived:
		n.Priority = domain.PriorityMedium
		n.Title = "Payment received " + booking.Reference
		n.Message = fmt.Sprintf("%s paid %s for %s", customerName, booking.FinalPrice.StringFixed(2), booking.ServiceName)
	case domain.NotifyReminder:
		n.Priority = domain.PriorityLow
		n.Title = "Upcoming booking " + booking.Reference
		n.Message = fmt.Sprintf("%s for %s on %s", booking.ServiceName, customerName, when)
	default:
		return nil
	}

	return n
}

// deliver рассылает уведомление по настроенным каналам
// Возвращает true, если хотя бы один канал принял сообщение
func (s *Service) deliver(ctx context.Context, n *domain.Notification) bool {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		s.logger.Warn("deliver: failed to load settings: %v", err)
		return false
	}

	delivered := false

	if s.whatsApp != nil && settings.AdminPhone != nil && *settings.AdminPhone != "" {
		if err := s.whatsApp.Send(*settings.AdminPhone, n.Title+"\n"+n.Message); err != nil {
			s.logger.Warn("deliver: whatsapp send failed for notification id=%d: %v", n.ID, err)
		} else {
			delivered = true
		}
	}

	if s.email != nil && settings.AdminEmail != nil && *settings.AdminEmail != "" {
		body := fmt.Sprintf("<h3>%s</h3><p>%s</p>", n.Title, n.Message)
		if err := s.email.Send(*settings.AdminEmail, n.Title, body); err != nil {
			s.logger.Warn("deliver: email send failed for notification id=%d: %v", n.ID, err)
		} else {
			delivered = true
		}
	}

	return delivered
}
