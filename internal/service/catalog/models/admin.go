package models

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/pkg/types"
)

// Request модели админских операций каталога

// UpsertCategoryRequest запрос на создание или обновление категории
type UpsertCategoryRequest struct {
	Name         string  `json:"name"`
	NameEN       *string `json:"nameEn,omitempty"`
	Slug         string  `json:"slug"`
	Description  *string `json:"description,omitempty"`
	Icon         *string `json:"icon,omitempty"`
	PrimaryColor *string `json:"primaryColor,omitempty"`
	DisplayOrder int     `json:"displayOrder"`
	IsActive     bool    `json:"isActive"`
}

// ToDomain конвертирует запрос в domain модель
func (r *UpsertCategoryRequest) ToDomain() *domain.Category {
	return &domain.Category{
		Name:         r.Name,
		NameEN:       r.NameEN,
		Slug:         r.Slug,
		Description:  r.Description,
		Icon:         r.Icon,
		PrimaryColor: r.PrimaryColor,
		DisplayOrder: r.DisplayOrder,
		IsActive:     r.IsActive,
	}
}

// UpsertServiceRequest запрос на создание или обновление услуги
type UpsertServiceRequest struct {
	Name            string          `json:"name"`
	NameEN          *string         `json:"nameEn,omitempty"`
	Description     *string         `json:"description,omitempty"`
	DurationMinutes int             `json:"durationMinutes"`
	Price           decimal.Decimal `json:"price"`
	CategoryIDs     []int64         `json:"categoryIds"`
	ImageURL        *string         `json:"imageUrl,omitempty"`
	DisplayOrder    int             `json:"displayOrder"`
	IsActive        bool            `json:"isActive"`
	IsFeatured      bool            `json:"isFeatured"`
}

// ToDomain конвертирует запрос в domain модель
func (r *UpsertServiceRequest) ToDomain() *domain.Service {
	return &domain.Service{
		Name:            r.Name,
		NameEN:          r.NameEN,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		CategoryIDs:     r.CategoryIDs,
		ImageURL:        r.ImageURL,
		DisplayOrder:    r.DisplayOrder,
		IsActive:        r.IsActive,
		IsFeatured:      r.IsFeatured,
	}
}

// UpsertStaffRequest запрос на создание или обновление мастера
// Смена и длительность слота опциональны и переопределяют общие настройки
type UpsertStaffRequest struct {
	Name                string  `json:"name"`
	Specialization      *string `json:"specialization,omitempty"`
	Bio                 *string `json:"bio,omitempty"`
	PhotoURL            *string `json:"photoUrl,omitempty"`
	ServiceIDs          []int64 `json:"serviceIds"`
	SlotDurationMinutes *int    `json:"slotDurationMinutes,omitempty"`
	ShiftStart          *string `json:"shiftStart,omitempty"`
	ShiftEnd            *string `json:"shiftEnd,omitempty"`
	WorksSaturday       bool    `json:"worksSaturday"`
	WorksSunday         bool    `json:"worksSunday"`
	IsActive            bool    `json:"isActive"`
}

// ToDomain конвертирует запрос в domain модель
// Время смены валидируется как HH:MM
func (r *UpsertStaffRequest) ToDomain() (*domain.Staff, error) {
	staff := &domain.Staff{
		Name:                r.Name,
		Specialization:      r.Specialization,
		Bio:                 r.Bio,
		PhotoURL:            r.PhotoURL,
		ServiceIDs:          r.ServiceIDs,
		SlotDurationMinutes: r.SlotDurationMinutes,
		WorksSaturday:       r.WorksSaturday,
		WorksSunday:         r.WorksSunday,
		IsActive:            r.IsActive,
	}

	if r.ShiftStart != nil {
		shiftStart, err := types.NewTimeStringFromString(*r.ShiftStart)
		if err != nil {
			return nil, fmt.Errorf("invalid shiftStart: %v", err)
		}
		staff.ShiftStart = &shiftStart
	}
	if r.ShiftEnd != nil {
		shiftEnd, err := types.NewTimeStringFromString(*r.ShiftEnd)
		if err != nil {
			return nil, fmt.Errorf("invalid shiftEnd: %v", err)
		}
		staff.ShiftEnd = &shiftEnd
	}

	return staff, nil
}
