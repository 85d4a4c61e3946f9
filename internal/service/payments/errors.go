package payments

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrPaymentNotFound возвращается, когда платеж не найден
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrAccessDenied возвращается, когда у клиента нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrNotPayable возвращается, когда бронирование не подлежит онлайн-оплате
	ErrNotPayable = errors.New("booking is not payable online")

	// ErrAlreadyPaid возвращается, когда бронирование уже оплачено
	ErrAlreadyPaid = errors.New("booking is already paid")

	// ErrGateway возвращается при ошибке платежного шлюза
	ErrGateway = errors.New("payment gateway error")

	// ErrInvalidWebhook возвращается при некорректном вебхуке
	ErrInvalidWebhook = errors.New("invalid webhook payload")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
