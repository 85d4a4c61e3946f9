package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/glammyapp/salon-service/internal/domain"
)

// tickInterval период запуска рассылки
// Окно напоминаний привязано к нему, чтобы не слать дубли
const tickInterval = time.Hour

// Service рассылает клиентам напоминания о предстоящих визитах
type Service struct {
	bookings  BookingRepository
	customers CustomerRepository
	settings  SettingsRepository
	whatsApp  WhatsAppSender
	events    EventSink
	time      TimeProvider
	logger    Logger

	cron *cron.Cron
}

// NewService создает новый экземпляр сервиса напоминаний
func NewService(
	bookings BookingRepository,
	customers CustomerRepository,
	settings SettingsRepository,
	whatsApp WhatsAppSender,
	events EventSink,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookings:  bookings,
		customers: customers,
		settings:  settings,
		whatsApp:  whatsApp,
		events:    events,
		time:      timeProvider,
		logger:    logger,
	}
}

// Start запускает ежечасную рассылку напоминаний
func (s *Service) Start() error {
	s.cron = cron.New()

	if _, err := s.cron.AddFunc("0 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := s.Run(ctx); err != nil {
			s.logger.Error("reminders: run failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("reminders: failed to schedule job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("reminders: scheduler started")
	return nil
}

// Stop останавливает планировщик и дожидается завершения задач
func (s *Service) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.logger.Info("reminders: scheduler stopped")
}

// Run отправляет напоминания по бронированиям, начинающимся через
// ReminderHoursAhead часов. Окно в один тик защищает от повторов
func (s *Service) Run(ctx context.Context) error {
	salonSettings, err := s.settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	loc := salonSettings.Location()
	now := s.time.Now().In(loc)
	windowStart := now.Add(time.Duration(salonSettings.ReminderHoursAhead) * time.Hour)
	windowEnd := windowStart.Add(tickInterval)

	startDate := truncateToDay(windowStart)
	endDate := truncateToDay(windowEnd)
	status := domain.StatusConfirmed

	upcoming, err := s.bookings.GetWithFilter(ctx, domain.BookingsFilter{
		Status:    &status,
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		return fmt.Errorf("load bookings: %w", err)
	}

	sent := 0
	for _, booking := range upcoming {
		startsAt, err := bookingStart(booking, loc)
		if err != nil {
			s.logger.Warn("reminders: bad start time for booking id=%d: %v", booking.ID, err)
			continue
		}
		if startsAt.Before(windowStart) || !startsAt.Before(windowEnd) {
			continue
		}

		if s.remind(ctx, booking, startsAt) {
			sent++
		}
	}

	if sent > 0 {
		s.logger.Info("reminders: sent %d reminders", sent)
	}
	return nil
}

func (s *Service) remind(ctx context.Context, booking *domain.Booking, startsAt time.Time) bool {
	customer, err := s.customers.GetByID(ctx, booking.CustomerID)
	if err != nil {
		s.logger.Warn("reminders: failed to load customer id=%d: %v", booking.CustomerID, err)
		return false
	}

	body := fmt.Sprintf(
		"Reminder: your %s appointment %s is scheduled for %s at %s. Booking reference: %s.",
		booking.ServiceName,
		greetName(customer),
		startsAt.Format(domain.DateFormat),
		booking.BookingTime,
		booking.Reference,
	)

	if err := s.whatsApp.Send(customer.Phone, body); err != nil {
		s.logger.Warn("reminders: send failed for booking id=%d: %v", booking.ID, err)
		return false
	}

	if s.events != nil {
		s.events.Publish(ctx, domain.BookingEvent{
			Type:     domain.NotifyReminder,
			Booking:  booking,
			Customer: customer,
		})
	}

	return true
}

func bookingStart(b *domain.Booking, loc *time.Location) (time.Time, error) {
	minutes, err := b.BookingTime.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	day := b.BookingDate
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc).
		Add(time.Duration(minutes) * time.Minute), nil
}

func greetName(c *domain.Customer) string {
	if c.Name != nil && *c.Name != "" {
		return *c.Name
	}
	return ""
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
