package customers

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrAddressNotFound возвращается, когда адрес не найден
	ErrAddressNotFound = errors.New("address not found")

	// ErrInvalidPhone возвращается при некорректном номере телефона
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrOTPNotFound возвращается, когда для номера нет активного кода
	ErrOTPNotFound = errors.New("verification code not found")

	// ErrOTPExpired возвращается, когда срок действия кода истек
	ErrOTPExpired = errors.New("verification code expired")

	// ErrOTPMismatch возвращается при неверном коде
	ErrOTPMismatch = errors.New("verification code does not match")

	// ErrTooManyAttempts возвращается при превышении лимита попыток
	ErrTooManyAttempts = errors.New("too many verification attempts")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
