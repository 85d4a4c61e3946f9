package models

import (
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/pkg/types"
)

// UpdateSettingsRequest запрос на обновление настроек салона
// Не указанные поля остаются без изменений
type UpdateSettingsRequest struct {
	OpenTime            *string `json:"openTime,omitempty"`  // "10:00"
	CloseTime           *string `json:"closeTime,omitempty"` // "22:00"
	SlotDurationMinutes *int    `json:"slotDurationMinutes,omitempty"`
	Timezone            *string `json:"timezone,omitempty"`
	MaxReschedules      *int    `json:"maxReschedules,omitempty"`
	Currency            *string `json:"currency,omitempty"`
	AdminPhone          *string `json:"adminPhone,omitempty"`
	AdminEmail          *string `json:"adminEmail,omitempty"`
	ReminderHoursAhead  *int    `json:"reminderHoursAhead,omitempty"`
}

// SettingsResponse ответ с настройками салона
type SettingsResponse struct {
	OpenTime            string    `json:"openTime"`
	CloseTime           string    `json:"closeTime"`
	SlotDurationMinutes int       `json:"slotDurationMinutes"`
	Timezone            string    `json:"timezone"`
	MaxReschedules      int       `json:"maxReschedules"`
	Currency            string    `json:"currency"`
	AdminPhone          *string   `json:"adminPhone,omitempty"`
	AdminEmail          *string   `json:"adminEmail,omitempty"`
	ReminderHoursAhead  int       `json:"reminderHoursAhead"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// ApplyTo накладывает запрос на существующие настройки
func (r *UpdateSettingsRequest) ApplyTo(s *domain.SalonSettings) {
	if r.OpenTime != nil {
		s.OpenTime = types.TimeString(*r.OpenTime)
	}
	if r.CloseTime != nil {
		s.CloseTime = types.TimeString(*r.CloseTime)
	}
	if r.SlotDurationMinutes != nil {
		s.SlotDurationMinutes = *r.SlotDurationMinutes
	}
	if r.Timezone != nil {
		s.Timezone = *r.Timezone
	}
	if r.MaxReschedules != nil {
		s.MaxReschedules = *r.MaxReschedules
	}
	if r.Currency != nil {
		s.Currency = *r.Currency
	}
	if r.AdminPhone != nil {
		s.AdminPhone = r.AdminPhone
	}
	if r.AdminEmail != nil {
		s.AdminEmail = r.AdminEmail
	}
	if r.ReminderHoursAhead != nil {
		s.ReminderHoursAhead = *r.ReminderHoursAhead
	}
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.SalonSettings) *SettingsResponse {
	if s == nil {
		return nil
	}
	return &SettingsResponse{
		OpenTime:            s.OpenTime.String(),
		CloseTime:           s.CloseTime.String(),
		SlotDurationMinutes: s.SlotDurationMinutes,
		Timezone:            s.Timezone,
		MaxReschedules:      s.MaxReschedules,
		Currency:            s.Currency,
		AdminPhone:          s.AdminPhone,
		AdminEmail:          s.AdminEmail,
		ReminderHoursAhead:  s.ReminderHoursAhead,
		UpdatedAt:           s.UpdatedAt,
	}
}
