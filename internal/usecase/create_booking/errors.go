package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или отключена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrStaffNotFound возвращается, когда мастер не найден или отключен
	ErrStaffNotFound = errors.New("create_booking: staff member not found")

	// ErrStaffNotAvailable возвращается, когда мастер не оказывает услугу
	// или не работает в выбранный день
	ErrStaffNotAvailable = errors.New("create_booking: staff member is not available")

	// ErrAddressNotFound возвращается, когда адрес не принадлежит клиенту
	ErrAddressNotFound = errors.New("create_booking: address not found")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда время не попадает в сетку слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается, когда время слота сегодня уже прошло
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда слот занят или закрыт
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrCouponNotFound возвращается, когда купон не найден
	ErrCouponNotFound = errors.New("create_booking: coupon not found")

	// ErrCouponInvalid возвращается, когда купон не может быть применен
	ErrCouponInvalid = errors.New("create_booking: coupon cannot be applied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
