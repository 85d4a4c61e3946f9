package catalog

import "errors"

var (
	// ErrCategoryNotFound возвращается, когда категория не найдена
	ErrCategoryNotFound = errors.New("catalog.repository: category not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("catalog.repository: staff member not found")

	// ErrCategorySlugTaken возвращается при создании категории с занятым slug
	ErrCategorySlugTaken = errors.New("catalog.repository: category slug already exists")

	// ErrServiceInUse возвращается при удалении услуги, на которую
	// ссылаются бронирования
	ErrServiceInUse = errors.New("catalog.repository: service is referenced by bookings")

	// ErrStaffInUse возвращается при удалении мастера, на которого
	// ссылаются бронирования
	ErrStaffInUse = errors.New("catalog.repository: staff member is referenced by bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
