package customer_addresses

import (
	"context"

	"github.com/glammyapp/salon-service/internal/service/customers/models"
)

type CustomerService interface {
	CreateAddress(ctx context.Context, customerID int64, req *models.CreateAddressRequest) (*models.AddressResponse, error)
	GetAddresses(ctx context.Context, customerID int64) (*models.AddressListResponse, error)
	DeleteAddress(ctx context.Context, customerID, addressID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
