package coupons

import "errors"

var (
	// ErrCouponNotFound возвращается, когда купон не найден
	ErrCouponNotFound = errors.New("coupon not found")

	// ErrCouponInvalid возвращается для неактивного, просроченного
	// или исчерпанного купона
	ErrCouponInvalid = errors.New("coupon is not valid")

	// ErrMinimumNotMet возвращается, когда сумма заказа меньше минимальной
	ErrMinimumNotMet = errors.New("order amount below coupon minimum")

	// ErrCouponCodeTaken возвращается при создании купона с занятым кодом
	ErrCouponCodeTaken = errors.New("coupon code already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
