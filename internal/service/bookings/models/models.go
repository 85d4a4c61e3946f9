package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/glammyapp/salon-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CustomerID         *int64 `json:"customerId,omitempty"` // nil = отмена администратором
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetCustomerBookingsRequest запрос на получение бронирований клиента
type GetCustomerBookingsRequest struct {
	CustomerID int64   `json:"customerId"`
	Status     *string `json:"status,omitempty"`
}

// AdminBookingsRequest запрос админки на получение бронирований с фильтрацией
type AdminBookingsRequest struct {
	CustomerID      *int64     `json:"customerId,omitempty"`
	ServiceID       *int64     `json:"serviceId,omitempty"`
	StaffID         *int64     `json:"staffId,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *AdminBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		CustomerID:      r.CustomerID,
		ServiceID:       r.ServiceID,
		StaffID:         r.StaffID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	Reference   string `json:"reference"`
	CustomerID  int64  `json:"customerId"`
	ServiceID   int64  `json:"serviceId"`
	StaffID     *int64 `json:"staffId,omitempty"`
	AddressID   int64  `json:"addressId"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	BookingTime string `json:"bookingTime"` // "10:00"
	Status      string `json:"status"`

	PaymentMethod string  `json:"paymentMethod"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentRef    *string `json:"paymentRef,omitempty"`
	PaidAt        *string `json:"paidAt,omitempty"` // ISO 8601 format

	Price          decimal.Decimal `json:"price"`
	CouponCode     *string         `json:"couponCode,omitempty"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	FinalPrice     decimal.Decimal `json:"finalPrice"`

	RescheduleCount      int  `json:"rescheduleCount"`
	MaxReschedules       int  `json:"maxReschedules"`
	RemainingReschedules int  `json:"remainingReschedules"`
	CanReschedule        bool `json:"canReschedule"`

	ServiceName     string  `json:"serviceName"`
	SpecialRequests *string `json:"specialRequests,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// RescheduleRecordResponse одна запись истории переносов
type RescheduleRecordResponse struct {
	OldDate       string    `json:"oldDate"`
	OldTime       string    `json:"oldTime"`
	NewDate       string    `json:"newDate"`
	NewTime       string    `json:"newTime"`
	Reason        *string   `json:"reason,omitempty"`
	RescheduledBy string    `json:"rescheduledBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

// RescheduleHistoryResponse история переносов бронирования
type RescheduleHistoryResponse struct {
	BookingID int64                      `json:"bookingId"`
	History   []RescheduleRecordResponse `json:"history"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                   b.ID,
		Reference:            b.Reference,
		CustomerID:           b.CustomerID,
		ServiceID:            b.ServiceID,
		StaffID:              b.StaffID,
		AddressID:            b.AddressID,
		BookingDate:          b.BookingDate.Format(domain.DateFormat),
		BookingTime:          b.BookingTime.String(),
		Status:               string(b.Status),
		PaymentMethod:        string(b.PaymentMethod),
		PaymentStatus:        string(b.PaymentStatus),
		PaymentRef:           b.PaymentRef,
		Price:                b.Price,
		CouponCode:           b.CouponCode,
		DiscountAmount:       b.DiscountAmount,
		FinalPrice:           b.FinalPrice,
		RescheduleCount:      b.RescheduleCount,
		MaxReschedules:       b.MaxReschedules,
		RemainingReschedules: b.RemainingReschedules(),
		CanReschedule:        b.CanBeRescheduled(),
		ServiceName:          b.ServiceName,
		SpecialRequests:      b.SpecialRequests,
		CancellationReason:   b.CancellationReason,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}

	if b.PaidAt != nil {
		paidStr := b.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidStr
	}
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, booking := range bookings {
		if dto := FromDomainBooking(booking); dto != nil {
			resp.Bookings = append(resp.Bookings, *dto)
		}
	}
	return resp
}

// FromDomainRescheduleHistory конвертирует историю переносов в DTO
func FromDomainRescheduleHistory(bookingID int64, records []*domain.RescheduleRecord) *RescheduleHistoryResponse {
	resp := &RescheduleHistoryResponse{
		BookingID: bookingID,
		History:   make([]RescheduleRecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.History = append(resp.History, RescheduleRecordResponse{
			OldDate:       rec.OldDate.Format(domain.DateFormat),
			OldTime:       rec.OldTime.String(),
			NewDate:       rec.NewDate.Format(domain.DateFormat),
			NewTime:       rec.NewTime.String(),
			Reason:        rec.Reason,
			RescheduledBy: rec.RescheduledBy,
			CreatedAt:     rec.CreatedAt,
		})
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPendingPayment,
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusInProgress,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
