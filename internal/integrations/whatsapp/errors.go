package whatsapp

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrSendFailed возвращается, когда Twilio отклонил отправку сообщения
	ErrSendFailed = errors.New("whatsapp client: failed to send message")
)
