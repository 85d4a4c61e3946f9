package models

import (
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/pkg/types"
)

// CreateOverrideRequest запрос на создание записи о слоте
type CreateOverrideRequest struct {
	ServiceID   int64   `json:"serviceId"`
	StaffID     *int64  `json:"staffId,omitempty"`
	Date        string  `json:"date"` // "2025-10-15"
	Time        string  `json:"time"` // "14:00"
	IsAvailable bool    `json:"isAvailable"`
	MaxBookings int     `json:"maxBookings"`
	Notes       *string `json:"notes,omitempty"`
}

// UpdateOverrideRequest запрос на обновление записи о слоте
type UpdateOverrideRequest struct {
	StaffID     *int64  `json:"staffId,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
	MaxBookings int     `json:"maxBookings"`
	Notes       *string `json:"notes,omitempty"`
}

// OverrideResponse запись о слоте
type OverrideResponse struct {
	ID              int64   `json:"id"`
	ServiceID       int64   `json:"serviceId"`
	StaffID         *int64  `json:"staffId,omitempty"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	IsAvailable     bool    `json:"isAvailable"`
	MaxBookings     int     `json:"maxBookings"`
	CurrentBookings int     `json:"currentBookings"`
	Notes           *string `json:"notes,omitempty"`
}

// OverrideListResponse список записей о слотах
type OverrideListResponse struct {
	Overrides []OverrideResponse `json:"overrides"`
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateOverrideRequest) ToDomain() (*domain.SlotOverride, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slotTime := types.TimeString(r.Time)
	if err := slotTime.Validate(); err != nil {
		return nil, err
	}

	return &domain.SlotOverride{
		ServiceID:   r.ServiceID,
		StaffID:     r.StaffID,
		Date:        date,
		Time:        slotTime,
		IsAvailable: r.IsAvailable,
		MaxBookings: r.MaxBookings,
		Notes:       r.Notes,
	}, nil
}

// FromDomainOverride конвертирует domain модель в DTO
func FromDomainOverride(o *domain.SlotOverride) *OverrideResponse {
	if o == nil {
		return nil
	}
	return &OverrideResponse{
		ID:              o.ID,
		ServiceID:       o.ServiceID,
		StaffID:         o.StaffID,
		Date:            o.Date.Format(domain.DateFormat),
		Time:            o.Time.String(),
		IsAvailable:     o.IsAvailable,
		MaxBookings:     o.MaxBookings,
		CurrentBookings: o.CurrentBookings,
		Notes:           o.Notes,
	}
}

// FromDomainOverrideList конвертирует список записей в DTO
func FromDomainOverrideList(overrides []*domain.SlotOverride) *OverrideListResponse {
	resp := &OverrideListResponse{
		Overrides: make([]OverrideResponse, 0, len(overrides)),
	}
	for _, o := range overrides {
		if dto := FromDomainOverride(o); dto != nil {
			resp.Overrides = append(resp.Overrides, *dto)
		}
	}
	return resp
}
