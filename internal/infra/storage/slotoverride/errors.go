package slotoverride

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда запись о слоте не найдена
	ErrOverrideNotFound = errors.New("slotoverride.repository: slot override not found")

	// ErrOverrideExists возвращается при создании дубликата (услуга, дата, время)
	ErrOverrideExists = errors.New("slotoverride.repository: slot override already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slotoverride.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slotoverride.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slotoverride.repository: failed to scan row")
)
