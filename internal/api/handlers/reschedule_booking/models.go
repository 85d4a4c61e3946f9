package reschedule_booking

import (
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
	rescheduleBooking "github.com/glammyapp/salon-service/internal/usecase/reschedule_booking"
	"github.com/glammyapp/salon-service/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	NewDate string  `json:"newDate"` // "2025-10-15"
	NewTime string  `json:"newTime"` // "10:00"
	Reason  *string `json:"reason,omitempty"`
}

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	ID                   int64  `json:"id"`
	Reference            string `json:"reference"`
	BookingDate          string `json:"bookingDate"`
	BookingTime          string `json:"bookingTime"`
	Status               string `json:"status"`
	RescheduleCount      int    `json:"rescheduleCount"`
	RemainingReschedules int    `json:"remainingReschedules"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// customerID nil означает перенос администратором
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID int64, customerID *int64) (*rescheduleBooking.Request, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	newTime, err := types.NewTimeStringFromString(r.NewTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		BookingID:  bookingID,
		CustomerID: customerID,
		NewDate:    newDate,
		NewTime:    newTime,
		Reason:     r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		ID:                   resp.ID,
		Reference:            resp.Reference,
		BookingDate:          resp.BookingDate.Format(domain.DateFormat),
		BookingTime:          resp.BookingTime.String(),
		Status:               resp.Status,
		RescheduleCount:      resp.RescheduleCount,
		RemainingReschedules: resp.RemainingReschedules,
	}
}
