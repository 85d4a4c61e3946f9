package models

import (
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
)

// ContactRequest обращение с формы обратной связи
type ContactRequest struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Email   *string `json:"email,omitempty"`
	Message string  `json:"message"`
}

// OfferResponse действующая акция
type OfferResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	DiscountText *string `json:"discountText,omitempty"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	ValidUntil   string  `json:"validUntil"`
}

// OfferListResponse список действующих акций
type OfferListResponse struct {
	Offers []OfferResponse `json:"offers"`
}

// ContactMessageResponse обращение для админки
type ContactMessageResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessageListResponse список обращений
type ContactMessageListResponse struct {
	Messages []ContactMessageResponse `json:"messages"`
}

// FromDomainOfferList конвертирует список акций в DTO
func FromDomainOfferList(offers []*domain.Offer) *OfferListResponse {
	resp := &OfferListResponse{
		Offers: make([]OfferResponse, 0, len(offers)),
	}
	for _, o := range offers {
		resp.Offers = append(resp.Offers, OfferResponse{
			ID:           o.ID,
			Title:        o.Title,
			Description:  o.Description,
			DiscountText: o.DiscountText,
			ImageURL:     o.ImageURL,
			ValidUntil:   o.ValidUntil.Format(domain.DateFormat),
		})
	}
	return resp
}

// FromDomainMessageList конвертирует список обращений в DTO
func FromDomainMessageList(messages []*domain.ContactMessage) *ContactMessageListResponse {
	resp := &ContactMessageListResponse{
		Messages: make([]ContactMessageResponse, 0, len(messages)),
	}
	for _, m := range messages {
		resp.Messages = append(resp.Messages, ContactMessageResponse{
			ID:        m.ID,
			Name:      m.Name,
			Phone:     m.Phone,
			Email:     m.Email,
			Message:   m.Message,
			IsRead:    m.IsRead,
			CreatedAt: m.CreatedAt,
		})
	}
	return resp
}
