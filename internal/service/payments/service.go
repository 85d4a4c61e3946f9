package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/glammyapp/salon-service/internal/domain"
	bookingRepo "github.com/glammyapp/salon-service/internal/infra/storage/booking"
	paymentRepo "github.com/glammyapp/salon-service/internal/infra/storage/payment"
	"github.com/glammyapp/salon-service/internal/integrations/hyperpay"
	"github.com/glammyapp/salon-service/internal/service/payments/models"
	"github.com/glammyapp/salon-service/pkg/ptr"
)

// Service сервис онлайн-оплаты бронирований
type Service struct {
	payments  PaymentRepository
	bookings  BookingRepository
	hyperPay  HyperPayGateway
	stripe    StripeGateway
	txManager TxManager
	events    EventSink
	time      TimeProvider
	currency  string
	logger    Logger
}

// NewService создает новый экземпляр платежного сервиса
func NewService(
	payments PaymentRepository,
	bookings BookingRepository,
	hyperPay HyperPayGateway,
	stripe StripeGateway,
	txManager TxManager,
	events EventSink,
	timeProvider TimeProvider,
	currency string,
	logger Logger,
) *Service {
	return &Service{
		payments:  payments,
		bookings:  bookings,
		hyperPay:  hyperPay,
		stripe:    stripe,
		txManager: txManager,
		events:    events,
		time:      timeProvider,
		currency:  currency,
		logger:    logger,
	}
}

// InitiateHyperPayCheckout создает чекаут HyperPay для бронирования
// Возвращает идентификатор чекаута и URL платежного виджета
func (s *Service) InitiateHyperPayCheckout(ctx context.Context, req *models.InitiateCheckoutRequest) (*models.CheckoutResponse, error) {
	booking, err := s.getPayableBooking(ctx, req.BookingID, req.CustomerID)
	if err != nil {
		return nil, err
	}

	checkout, err := s.hyperPay.CreateCheckout(ctx, hyperpay.CheckoutRequest{
		Amount:                booking.FinalPrice,
		Currency:              s.currency,
		MerchantTransactionID: booking.Reference,
		CustomerEmail:         req.Email,
		GivenName:             req.GivenName,
		Surname:               req.Surname,
		Country:               "SA",
	})
	if err != nil {
		s.logger.Error("InitiateHyperPayCheckout: gateway error for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	payment := &domain.Payment{
		BookingID:     &booking.ID,
		CustomerID:    &booking.CustomerID,
		Reference:     booking.Reference,
		Gateway:       domain.GatewayHyperPay,
		Amount:        booking.FinalPrice,
		Currency:      s.currency,
		Status:        domain.PaymentPending,
		CheckoutID:    &checkout.ID,
		TransactionID: ptr.Ptr(booking.Reference),
	}
	if _, err := s.payments.Create(ctx, payment); err != nil {
		s.logger.Error("InitiateHyperPayCheckout: failed to store payment for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: InitiateHyperPayCheckout - store payment: %v", ErrInternal, err)
	}

	s.logger.Info("InitiateHyperPayCheckout: checkout id=%s created for booking id=%d", checkout.ID, booking.ID)

	return &models.CheckoutResponse{
		CheckoutID:      checkout.ID,
		WidgetScriptURL: s.hyperPay.WidgetScriptURL(checkout.ID),
		Amount:          booking.FinalPrice,
		Currency:        s.currency,
	}, nil
}

// ProcessHyperPayResult запрашивает результат платежа у шлюза
// и применяет его к платежу и бронированию
func (s *Service) ProcessHyperPayResult(ctx context.Context, resourcePath string) (*models.PaymentResultResponse, error) {
	status, err := s.hyperPay.GetPaymentStatus(ctx, resourcePath)
	if err != nil {
		s.logger.Error("ProcessHyperPayResult: gateway error for resourcePath=%s: %v", resourcePath, err)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	payment, err := s.payments.GetByCheckoutID(ctx, status.ID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("ProcessHyperPayResult: no payment for checkout id=%s", status.ID)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("ProcessHyperPayResult: repository error for checkout id=%s: %v", status.ID, err)
		return nil, fmt.Errorf("%w: ProcessHyperPayResult - repository error: %v", ErrInternal, err)
	}

	rawStatus, err := json.Marshal(status)
	if err != nil {
		rawStatus = nil
	}
	s.addLog(ctx, payment.ID, domain.GatewayHyperPay, status.Result.Code, rawStatus)

	var newStatus domain.PaymentStatus
	switch {
	case status.Result.IsSuccess():
		newStatus = domain.PaymentPaid
	case status.Result.IsPending():
		newStatus = domain.PaymentProcessing
	default:
		newStatus = domain.PaymentFailed
	}

	if err := s.applyResult(ctx, payment, newStatus, status.Result.Code, status.Result.Description, rawStatus); err != nil {
		return nil, err
	}

	return &models.PaymentResultResponse{
		Reference:     payment.Reference,
		Status:        string(newStatus),
		ResultCode:    status.Result.Code,
		ResultMessage: status.Result.Description,
	}, nil
}

// CreateStripeIntent создает Stripe PaymentIntent для бронирования
func (s *Service) CreateStripeIntent(ctx context.Context, req *models.CreateIntentRequest) (*models.IntentResponse, error) {
	booking, err := s.getPayableBooking(ctx, req.BookingID, req.CustomerID)
	if err != nil {
		return nil, err
	}

	intent, err := s.stripe.CreatePaymentIntent(ctx, booking.FinalPrice, s.currency, booking.Reference)
	if err != nil {
		s.logger.Error("CreateStripeIntent: gateway error for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	payment := &domain.Payment{
		BookingID:     &booking.ID,
		CustomerID:    &booking.CustomerID,
		Reference:     booking.Reference,
		Gateway:       domain.GatewayStripe,
		Amount:        booking.FinalPrice,
		Currency:      s.currency,
		Status:        domain.PaymentPending,
		CheckoutID:    &intent.ID,
		TransactionID: ptr.Ptr(booking.Reference),
	}
	if _, err := s.payments.Create(ctx, payment); err != nil {
		s.logger.Error("CreateStripeIntent: failed to store payment for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: CreateStripeIntent - store payment: %v", ErrInternal, err)
	}

	s.logger.Info("CreateStripeIntent: intent id=%s created for booking id=%d", intent.ID, booking.ID)

	return &models.IntentResponse{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       booking.FinalPrice,
		Currency:     s.currency,
	}, nil
}

// HandleStripeWebhook проверяет подпись вебхука Stripe и применяет событие
func (s *Service) HandleStripeWebhook(ctx context.Context, payload []byte, signatureHeader string) error {
	event, err := s.stripe.VerifyWebhook(payload, signatureHeader)
	if err != nil {
		s.logger.Warn("HandleStripeWebhook: signature verification failed: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidWebhook, err)
	}

	var intent struct {
		ID               string `json:"id"`
		LastPaymentError *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"last_payment_error"`
	}
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		s.logger.Warn("HandleStripeWebhook: failed to decode event data: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidWebhook, err)
	}

	payment, err := s.payments.GetByCheckoutID(ctx, intent.ID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			// Вебхук может относиться к чужому аккаунту или тестовым данным
			s.logger.Warn("HandleStripeWebhook: no payment for intent id=%s, event=%s", intent.ID, event.Type)
			return nil
		}
		s.logger.Error("HandleStripeWebhook: repository error for intent id=%s: %v", intent.ID, err)
		return fmt.Errorf("%w: HandleStripeWebhook - repository error: %v", ErrInternal, err)
	}

	s.addLog(ctx, payment.ID, domain.GatewayStripe, string(event.Type), event.Data.Raw)

	switch event.Type {
	case "payment_intent.succeeded":
		return s.applyResult(ctx, payment, domain.PaymentPaid, string(event.Type), "", event.Data.Raw)
	case "payment_intent.payment_failed":
		message := ""
		if intent.LastPaymentError != nil {
			message = intent.LastPaymentError.Message
		}
		return s.applyResult(ctx, payment, domain.PaymentFailed, string(event.Type), message, event.Data.Raw)
	case "payment_intent.canceled":
		return s.applyResult(ctx, payment, domain.PaymentCancelled, string(event.Type), "", event.Data.Raw)
	default:
		s.logger.Info("HandleStripeWebhook: ignoring event=%s for payment id=%d", event.Type, payment.ID)
		return nil
	}
}

// GetByReference возвращает последний платеж по референсу бронирования
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.PaymentResponse, error) {
	payment, err := s.payments.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("GetByReference: repository error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPayment(payment), nil
}

// applyResult применяет результат платежа к платежу и бронированию в одной транзакции
func (s *Service) applyResult(ctx context.Context, payment *domain.Payment, status domain.PaymentStatus, code, message string, raw []byte) error {
	if payment.IsFinal() {
		s.logger.Info("applyResult: payment id=%d already final (%s), skipping", payment.ID, payment.Status)
		return nil
	}

	var resultCode, resultMessage *string
	if code != "" {
		resultCode = &code
	}
	if message != "" {
		resultMessage = &message
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.payments.UpdateResult(ctx, payment.ID, status, resultCode, resultMessage, raw); err != nil {
			return fmt.Errorf("update payment result: %w", err)
		}

		if payment.BookingID == nil {
			return nil
		}

		switch status {
		case domain.PaymentPaid:
			if err := s.bookings.MarkPaid(ctx, *payment.BookingID, payment.Reference, s.time.Now()); err != nil {
				return fmt.Errorf("mark booking paid: %w", err)
			}
		case domain.PaymentFailed:
			if err := s.bookings.MarkPaymentFailed(ctx, *payment.BookingID); err != nil {
				return fmt.Errorf("mark booking payment failed: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Error("applyResult: transaction failed for payment id=%d: %v", payment.ID, err)
		return fmt.Errorf("%w: applyResult - transaction: %v", ErrInternal, err)
	}

	s.logger.Info("applyResult: payment id=%d is now %s", payment.ID, status)

	if status == domain.PaymentPaid && payment.BookingID != nil {
		s.publishConfirmed(ctx, *payment.BookingID)
	}

	return nil
}

func (s *Service) publishConfirmed(ctx context.Context, bookingID int64) {
	if s.events == nil {
		return
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.Warn("publishConfirmed: failed to load booking id=%d: %v", bookingID, err)
		return
	}

	s.events.Publish(ctx, domain.BookingEvent{
		Type:    domain.NotifyBookingConfirmed,
		Booking: booking,
	})
}

func (s *Service) getPayableBooking(ctx context.Context, bookingID, customerID int64) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("getPayableBooking: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: getPayableBooking - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerID != customerID {
		s.logger.Warn("getPayableBooking: access denied for customer=%d to booking id=%d", customerID, bookingID)
		return nil, ErrAccessDenied
	}
	if booking.PaymentStatus == domain.BookingPaymentPaid {
		return nil, ErrAlreadyPaid
	}
	if booking.PaymentMethod != domain.PaymentMethodOnline {
		return nil, ErrNotPayable
	}
	if booking.Status == domain.StatusCancelled || booking.Status == domain.StatusCompleted {
		return nil, ErrNotPayable
	}

	return booking, nil
}

func (s *Service) addLog(ctx context.Context, paymentID int64, gateway domain.PaymentGateway, status string, raw []byte) {
	err := s.payments.AddLog(ctx, &domain.PaymentLog{
		PaymentID: &paymentID,
		Gateway:   gateway,
		Status:    status,
		RawData:   raw,
	})
	if err != nil {
		s.logger.Warn("addLog: failed to store gateway log for payment id=%d: %v", paymentID, err)
	}
}
