package customers

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
	customerRepo "github.com/glammyapp/salon-service/internal/infra/storage/customer"
	"github.com/glammyapp/salon-service/internal/service/customers/models"
)

// phoneRe валидация номера в формате E.164
var phoneRe = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// Service сервис аутентификации и профилей клиентов
type Service struct {
	repo      CustomerRepository
	otpSender OTPSender
	time      TimeProvider
	logger    Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(repo CustomerRepository, otpSender OTPSender, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		repo:      repo,
		otpSender: otpSender,
		time:      timeProvider,
		logger:    logger,
	}
}

// RequestOTP генерирует код подтверждения и отправляет его на телефон
func (s *Service) RequestOTP(ctx context.Context, req *models.RequestOTPRequest) (*models.RequestOTPResponse, error) {
	phone := strings.TrimSpace(req.Phone)
	if !phoneRe.MatchString(phone) {
		s.logger.Warn("RequestOTP: invalid phone format")
		return nil, ErrInvalidPhone
	}

	code, err := generateOTPCode()
	if err != nil {
		s.logger.Error("RequestOTP: failed to generate code: %v", err)
		return nil, fmt.Errorf("%w: RequestOTP - generate code: %v", ErrInternal, err)
	}

	now := s.time.Now()
	otp := &domain.PhoneOTP{
		Phone:     phone,
		Code:      code,
		ExpiresAt: now.Add(domain.OTPTTLMinutes * time.Minute),
	}

	if _, err := s.repo.CreateOTP(ctx, otp); err != nil {
		s.logger.Error("RequestOTP: failed to store code for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: RequestOTP - store code: %v", ErrInternal, err)
	}

	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, domain.OTPTTLMinutes)
	if err := s.otpSender.Send(phone, body); err != nil {
		s.logger.Error("RequestOTP: failed to send code to phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: RequestOTP - send code: %v", ErrInternal, err)
	}

	s.logger.Info("RequestOTP: code sent to phone=%s, expires at %s", phone, otp.ExpiresAt.Format(time.RFC3339))

	return &models.RequestOTPResponse{
		Phone:     phone,
		ExpiresAt: otp.ExpiresAt,
	}, nil
}

// VerifyOTP проверяет код подтверждения
// При успехе создает клиента, если его еще нет, и помечает телефон подтвержденным
func (s *Service) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.VerifyOTPResponse, error) {
	phone := strings.TrimSpace(req.Phone)
	if !phoneRe.MatchString(phone) {
		return nil, ErrInvalidPhone
	}

	otp, err := s.repo.GetLatestOTP(ctx, phone)
	if err != nil {
		if errors.Is(err, customerRepo.ErrOTPNotFound) {
			s.logger.Warn("VerifyOTP: no active code for phone=%s", phone)
			return nil, ErrOTPNotFound
		}
		s.logger.Error("VerifyOTP: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: VerifyOTP - repository error: %v", ErrInternal, err)
	}

	now := s.time.Now()
	if otp.IsExpired(now) {
		s.logger.Warn("VerifyOTP: code expired for phone=%s", phone)
		return nil, ErrOTPExpired
	}
	if !otp.CanAttempt(now) {
		s.logger.Warn("VerifyOTP: attempts exhausted for phone=%s", phone)
		return nil, ErrTooManyAttempts
	}

	if otp.Code != req.Code {
		if err := s.repo.IncrementOTPAttempts(ctx, otp.ID); err != nil {
			s.logger.Error("VerifyOTP: failed to increment attempts for otp id=%d: %v", otp.ID, err)
		}
		s.logger.Warn("VerifyOTP: code mismatch for phone=%s, attempt %d", phone, otp.Attempts+1)
		return nil, ErrOTPMismatch
	}

	if err := s.repo.MarkOTPUsed(ctx, otp.ID); err != nil {
		s.logger.Error("VerifyOTP: failed to mark otp id=%d used: %v", otp.ID, err)
		return nil, fmt.Errorf("%w: VerifyOTP - mark code used: %v", ErrInternal, err)
	}

	customer, isNew, err := s.getOrCreateCustomer(ctx, phone)
	if err != nil {
		return nil, err
	}

	s.logger.Info("VerifyOTP: phone=%s verified, customer id=%d, new=%t", phone, customer.ID, isNew)

	return &models.VerifyOTPResponse{
		Customer: models.FromDomainCustomer(customer),
		IsNew:    isNew,
	}, nil
}

// GetProfile возвращает профиль клиента
func (s *Service) GetProfile(ctx context.Context, customerID int64) (*models.CustomerResponse, error) {
	customer, err := s.getCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainCustomer(customer), nil
}

// UpdateProfile обновляет имя и email клиента
func (s *Service) UpdateProfile(ctx context.Context, customerID int64, req *models.UpdateProfileRequest) (*models.CustomerResponse, error) {
	customer, err := s.getCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = req.Name
	}
	if req.Email != nil {
		customer.Email = req.Email
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("UpdateProfile: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfile: customer id=%d updated", customerID)
	return models.FromDomainCustomer(customer), nil
}

// CreateAddress добавляет адрес клиента
func (s *Service) CreateAddress(ctx context.Context, customerID int64, req *models.CreateAddressRequest) (*models.AddressResponse, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Address) == "" {
		return nil, fmt.Errorf("%w: title and address are required", ErrInvalidInput)
	}

	address := &domain.Address{
		CustomerID: customerID,
		Title:      req.Title,
		Address:    req.Address,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		IsDefault:  req.IsDefault,
	}

	created, err := s.repo.CreateAddress(ctx, address)
	if err != nil {
		s.logger.Error("CreateAddress: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: CreateAddress - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateAddress: address id=%d created for customer=%d", created.ID, customerID)
	return models.FromDomainAddress(created), nil
}

// GetAddresses возвращает адреса клиента
func (s *Service) GetAddresses(ctx context.Context, customerID int64) (*models.AddressListResponse, error) {
	addresses, err := s.repo.GetAddresses(ctx, customerID)
	if err != nil {
		s.logger.Error("GetAddresses: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetAddresses - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainAddressList(addresses), nil
}

// DeleteAddress удаляет адрес клиента
func (s *Service) DeleteAddress(ctx context.Context, customerID, addressID int64) error {
	if err := s.repo.DeleteAddress(ctx, addressID, customerID); err != nil {
		if errors.Is(err, customerRepo.ErrAddressNotFound) {
			return ErrAddressNotFound
		}
		s.logger.Error("DeleteAddress: repository error for address=%d: %v", addressID, err)
		return fmt.Errorf("%w: DeleteAddress - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteAddress: address id=%d deleted for customer=%d", addressID, customerID)
	return nil
}

func (s *Service) getCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("getCustomer: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: getCustomer - repository error: %v", ErrInternal, err)
	}
	return customer, nil
}

func (s *Service) getOrCreateCustomer(ctx context.Context, phone string) (*domain.Customer, bool, error) {
	customer, err := s.repo.GetByPhone(ctx, phone)
	if err == nil {
		if !customer.IsPhoneVerified {
			if err := s.repo.MarkPhoneVerified(ctx, customer.ID); err != nil {
				s.logger.Error("getOrCreateCustomer: failed to mark phone verified for id=%d: %v", customer.ID, err)
			} else {
				customer.IsPhoneVerified = true
			}
		}
		return customer, false, nil
	}
	if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		s.logger.Error("getOrCreateCustomer: repository error for phone=%s: %v", phone, err)
		return nil, false, fmt.Errorf("%w: getOrCreateCustomer - repository error: %v", ErrInternal, err)
	}

	created, err := s.repo.Create(ctx, &domain.Customer{
		Phone:           phone,
		IsPhoneVerified: true,
		IsActive:        true,
	})
	if err != nil {
		// Параллельная верификация могла создать клиента первой
		if errors.Is(err, customerRepo.ErrPhoneTaken) {
			existing, getErr := s.repo.GetByPhone(ctx, phone)
			if getErr == nil {
				return existing, false, nil
			}
		}
		s.logger.Error("getOrCreateCustomer: failed to create customer for phone=%s: %v", phone, err)
		return nil, false, fmt.Errorf("%w: getOrCreateCustomer - create customer: %v", ErrInternal, err)
	}

	return created, true, nil
}

func generateOTPCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < domain.OTPLength; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", domain.OTPLength, n), nil
}
