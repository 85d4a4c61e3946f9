package create_booking

import (
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
	createBooking "github.com/glammyapp/salon-service/internal/usecase/create_booking"
	"github.com/glammyapp/salon-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID       int64   `json:"serviceId"`
	StaffID         *int64  `json:"staffId,omitempty"`
	AddressID       int64   `json:"addressId"`
	BookingDate     string  `json:"bookingDate"` // "2025-10-15"
	BookingTime     string  `json:"bookingTime"` // "10:00"
	PaymentMethod   string  `json:"paymentMethod"` // "cash" или "online"
	CouponCode      *string `json:"couponCode,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	Reference       string  `json:"reference"`
	ServiceID       int64   `json:"serviceId"`
	StaffID         *int64  `json:"staffId,omitempty"`
	AddressID       int64   `json:"addressId"`
	BookingDate     string  `json:"bookingDate"`
	BookingTime     string  `json:"bookingTime"`
	Status          string  `json:"status"`
	PaymentMethod   string  `json:"paymentMethod"`
	PaymentStatus   string  `json:"paymentStatus"`
	Price           string  `json:"price"`
	CouponCode      *string `json:"couponCode,omitempty"`
	DiscountAmount  string  `json:"discountAmount"`
	FinalPrice      string  `json:"finalPrice"`
	ServiceName     string  `json:"serviceName"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	bookingTime, err := types.NewTimeStringFromString(r.BookingTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:      customerID,
		ServiceID:       r.ServiceID,
		StaffID:         r.StaffID,
		AddressID:       r.AddressID,
		Date:            bookingDate,
		Time:            bookingTime,
		PaymentMethod:   r.PaymentMethod,
		CouponCode:      r.CouponCode,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		ServiceID:       resp.ServiceID,
		StaffID:         resp.StaffID,
		AddressID:       resp.AddressID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		BookingTime:     resp.BookingTime.String(),
		Status:          resp.Status,
		PaymentMethod:   resp.PaymentMethod,
		PaymentStatus:   resp.PaymentStatus,
		Price:           resp.Price.StringFixed(2),
		CouponCode:      resp.CouponCode,
		DiscountAmount:  resp.DiscountAmount.StringFixed(2),
		FinalPrice:      resp.FinalPrice.StringFixed(2),
		ServiceName:     resp.ServiceName,
		SpecialRequests: resp.SpecialRequests,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
