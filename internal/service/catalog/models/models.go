package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/glammyapp/salon-service/internal/domain"
)

// Response модели

// CategoryResponse ответ с данными категории
type CategoryResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	NameEN       *string `json:"nameEn,omitempty"`
	Slug         string  `json:"slug"`
	Description  *string `json:"description,omitempty"`
	Icon         *string `json:"icon,omitempty"`
	PrimaryColor *string `json:"primaryColor,omitempty"`
	DisplayOrder int     `json:"displayOrder"`
	IsActive     bool    `json:"isActive"`
}

// CategoryListResponse ответ со списком категорий
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	NameEN          *string         `json:"nameEn,omitempty"`
	Description     *string         `json:"description,omitempty"`
	DurationMinutes int             `json:"durationMinutes"`
	Price           decimal.Decimal `json:"price"`
	CategoryIDs     []int64         `json:"categoryIds"`
	ImageURL        *string         `json:"imageUrl,omitempty"`
	IsFeatured      bool            `json:"isFeatured"`
	IsActive        bool            `json:"isActive"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// StaffResponse ответ с данными мастера
type StaffResponse struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	Specialization *string          `json:"specialization,omitempty"`
	Bio            *string          `json:"bio,omitempty"`
	PhotoURL       *string          `json:"photoUrl,omitempty"`
	Rating         *decimal.Decimal `json:"rating,omitempty"`
	ServiceIDs     []int64          `json:"serviceIds"`
	WorksSaturday  bool             `json:"worksSaturday"`
	WorksSunday    bool             `json:"worksSunday"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// StaffListResponse ответ со списком мастеров
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// Методы конвертации

// FromDomainCategory конвертирует domain модель в DTO
func FromDomainCategory(c *domain.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		NameEN:       c.NameEN,
		Slug:         c.Slug,
		Description:  c.Description,
		Icon:         c.Icon,
		PrimaryColor: c.PrimaryColor,
		DisplayOrder: c.DisplayOrder,
		IsActive:     c.IsActive,
	}
}

// FromDomainCategoryList конвертирует список domain моделей в DTO
func FromDomainCategoryList(categories []*domain.Category) *CategoryListResponse {
	resp := &CategoryListResponse{
		Categories: make([]CategoryResponse, 0, len(categories)),
	}
	for _, c := range categories {
		if dto := FromDomainCategory(c); dto != nil {
			resp.Categories = append(resp.Categories, *dto)
		}
	}
	return resp
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	categoryIDs := s.CategoryIDs
	if categoryIDs == nil {
		categoryIDs = []int64{}
	}
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		NameEN:          s.NameEN,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		CategoryIDs:     categoryIDs,
		ImageURL:        s.ImageURL,
		IsFeatured:      s.IsFeatured,
		IsActive:        s.IsActive,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}
	for _, s := range services {
		if dto := FromDomainService(s); dto != nil {
			resp.Services = append(resp.Services, *dto)
		}
	}
	return resp
}

// FromDomainStaff конвертирует domain модель в DTO
func FromDomainStaff(s *domain.Staff) *StaffResponse {
	if s == nil {
		return nil
	}
	serviceIDs := s.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []int64{}
	}
	return &StaffResponse{
		ID:             s.ID,
		Name:           s.Name,
		Specialization: s.Specialization,
		Bio:            s.Bio,
		PhotoURL:       s.PhotoURL,
		Rating:         s.Rating,
		ServiceIDs:     serviceIDs,
		WorksSaturday:  s.WorksSaturday,
		WorksSunday:    s.WorksSunday,
		CreatedAt:      s.CreatedAt,
	}
}

// FromDomainStaffList конвертирует список domain моделей в DTO
func FromDomainStaffList(staff []*domain.Staff) *StaffListResponse {
	resp := &StaffListResponse{
		Staff: make([]StaffResponse, 0, len(staff)),
	}
	for _, s := range staff {
		if dto := FromDomainStaff(s); dto != nil {
			resp.Staff = append(resp.Staff, *dto)
		}
	}
	return resp
}
