package content

import "errors"

var (
	// ErrOfferNotFound возвращается, когда акция не найдена
	ErrOfferNotFound = errors.New("content.repository: offer not found")

	// ErrMessageNotFound возвращается, когда сообщение не найдено
	ErrMessageNotFound = errors.New("content.repository: contact message not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("content.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("content.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("content.repository: failed to scan row")
)
