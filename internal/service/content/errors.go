package content

import "errors"

var (
	// ErrMessageNotFound возвращается, когда обращение не найдено
	ErrMessageNotFound = errors.New("contact message not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
