package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому клиенту
	ErrAccessDenied = errors.New("reschedule_booking: access denied")

	// ErrNotReschedulable возвращается, когда статус бронирования не допускает перенос
	ErrNotReschedulable = errors.New("reschedule_booking: booking cannot be rescheduled")

	// ErrRescheduleLimitReached возвращается, когда лимит переносов исчерпан
	ErrRescheduleLimitReached = errors.New("reschedule_booking: reschedule limit reached")

	// ErrInvalidDate возвращается при дате переноса в прошлом
	ErrInvalidDate = errors.New("reschedule_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда время не попадает в сетку слотов
	ErrInvalidTimeSlot = errors.New("reschedule_booking: invalid time slot")

	// ErrTooLateToBook возвращается, когда время слота сегодня уже прошло
	ErrTooLateToBook = errors.New("reschedule_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда новый слот занят или закрыт
	ErrSlotNotAvailable = errors.New("reschedule_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
