package customer

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customer.repository: customer not found")

	// ErrAddressNotFound возвращается, когда адрес не найден
	ErrAddressNotFound = errors.New("customer.repository: address not found")

	// ErrOTPNotFound возвращается, когда активный код подтверждения не найден
	ErrOTPNotFound = errors.New("customer.repository: otp not found")

	// ErrPhoneTaken возвращается при создании клиента с занятым номером
	ErrPhoneTaken = errors.New("customer.repository: phone already registered")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("customer.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("customer.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("customer.repository: failed to scan row")
)
