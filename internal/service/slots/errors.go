package slots

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда запись о слоте не найдена
	ErrOverrideNotFound = errors.New("slot override not found")

	// ErrOverrideExists возвращается при дубликате (услуга, дата, время)
	ErrOverrideExists = errors.New("slot override already exists")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
