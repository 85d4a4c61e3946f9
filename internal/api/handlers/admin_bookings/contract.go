package admin_bookings

import (
	"context"

	"github.com/glammyapp/salon-service/internal/service/bookings/models"
)

type BookingService interface {
	AdminList(ctx context.Context, req *models.AdminBookingsRequest) (*models.BookingListResponse, error)
	GetByIDAdmin(ctx context.Context, id int64) (*models.BookingResponse, error)
	UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
