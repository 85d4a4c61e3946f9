package cancel_booking

import (
	"github.com/glammyapp/salon-service/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса.
// customerID nil означает отмену администратором
func (r *CancelBookingRequest) ToServiceRequest(customerID *int64) *models.CancelBookingRequest {
	reason := ""
	if r.CancellationReason != nil {
		reason = *r.CancellationReason
	}

	return &models.CancelBookingRequest{
		CustomerID:         customerID,
		CancellationReason: reason,
	}
}
