package get_reschedule_history

import (
	"context"

	"github.com/glammyapp/salon-service/internal/service/bookings/models"
)

type BookingService interface {
	GetRescheduleHistory(ctx context.Context, bookingID int64, customerID *int64) (*models.RescheduleHistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
