package customers

import (
	"context"
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	MarkPhoneVerified(ctx context.Context, id int64) error

	CreateAddress(ctx context.Context, a *domain.Address) (*domain.Address, error)
	GetAddresses(ctx context.Context, customerID int64) ([]*domain.Address, error)
	GetAddressByID(ctx context.Context, id, customerID int64) (*domain.Address, error)
	DeleteAddress(ctx context.Context, id, customerID int64) error

	CreateOTP(ctx context.Context, otp *domain.PhoneOTP) (*domain.PhoneOTP, error)
	GetLatestOTP(ctx context.Context, phone string) (*domain.PhoneOTP, error)
	IncrementOTPAttempts(ctx context.Context, id int64) error
	MarkOTPUsed(ctx context.Context, id int64) error
}

// OTPSender отправляет код подтверждения на телефон клиента
type OTPSender interface {
	Send(to, body string) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
