package hyperpay

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("hyperpay client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("hyperpay client: invalid response")

	// ErrCheckoutFailed возвращается, когда шлюз отклонил создание чекаута
	ErrCheckoutFailed = errors.New("hyperpay client: checkout creation failed")
)
