package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/glammyapp/salon-service/internal/domain"
)

// Request модели

// RequestOTPRequest запрос на отправку кода подтверждения
type RequestOTPRequest struct {
	Phone string `json:"phone"` // E.164, e.g. +966501234567
}

// VerifyOTPRequest запрос на проверку кода подтверждения
type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// UpdateProfileRequest запрос на обновление профиля клиента
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// CreateAddressRequest запрос на добавление адреса
type CreateAddressRequest struct {
	Title     string           `json:"title"`
	Address   string           `json:"address"`
	Latitude  *decimal.Decimal `json:"latitude,omitempty"`
	Longitude *decimal.Decimal `json:"longitude,omitempty"`
	IsDefault bool             `json:"isDefault"`
}

// Response модели

// RequestOTPResponse ответ на запрос кода подтверждения
type RequestOTPResponse struct {
	Phone     string    `json:"phone"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// VerifyOTPResponse ответ на успешную проверку кода
type VerifyOTPResponse struct {
	Customer *CustomerResponse `json:"customer"`
	IsNew    bool              `json:"isNew"`
}

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID              int64     `json:"id"`
	Phone           string    `json:"phone"`
	Name            *string   `json:"name,omitempty"`
	Email           *string   `json:"email,omitempty"`
	IsPhoneVerified bool      `json:"isPhoneVerified"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AddressResponse ответ с данными адреса
type AddressResponse struct {
	ID        int64            `json:"id"`
	Title     string           `json:"title"`
	Address   string           `json:"address"`
	Latitude  *decimal.Decimal `json:"latitude,omitempty"`
	Longitude *decimal.Decimal `json:"longitude,omitempty"`
	IsDefault bool             `json:"isDefault"`
	CreatedAt time.Time        `json:"createdAt"`
}

// AddressListResponse ответ со списком адресов
type AddressListResponse struct {
	Addresses []AddressResponse `json:"addresses"`
}

// Методы конвертации

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:              c.ID,
		Phone:           c.Phone,
		Name:            c.Name,
		Email:           c.Email,
		IsPhoneVerified: c.IsPhoneVerified,
		CreatedAt:       c.CreatedAt,
	}
}

// FromDomainAddress конвертирует domain модель в DTO
func FromDomainAddress(a *domain.Address) *AddressResponse {
	if a == nil {
		return nil
	}
	return &AddressResponse{
		ID:        a.ID,
		Title:     a.Title,
		Address:   a.Address,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
		IsDefault: a.IsDefault,
		CreatedAt: a.CreatedAt,
	}
}

// FromDomainAddressList конвертирует список адресов в DTO
func FromDomainAddressList(addresses []*domain.Address) *AddressListResponse {
	resp := &AddressListResponse{
		Addresses: make([]AddressResponse, 0, len(addresses)),
	}
	for _, a := range addresses {
		if dto := FromDomainAddress(a); dto != nil {
			resp.Addresses = append(resp.Addresses, *dto)
		}
	}
	return resp
}
