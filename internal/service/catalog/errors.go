package catalog

import "errors"

var (
	// ErrCategoryNotFound возвращается, когда категория не найдена
	ErrCategoryNotFound = errors.New("category not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrCategorySlugTaken возвращается при создании категории с занятым slug
	ErrCategorySlugTaken = errors.New("category slug already exists")

	// ErrServiceInUse возвращается при удалении услуги с бронированиями
	ErrServiceInUse = errors.New("service has bookings and cannot be deleted")

	// ErrStaffInUse возвращается при удалении мастера с бронированиями
	ErrStaffInUse = errors.New("staff member has bookings and cannot be deleted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
