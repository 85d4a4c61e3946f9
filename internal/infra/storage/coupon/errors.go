package coupon

import "errors"

var (
	// ErrCouponNotFound возвращается, когда купон не найден
	ErrCouponNotFound = errors.New("coupon.repository: coupon not found")

	// ErrCouponExhausted возвращается, когда лимит использований исчерпан
	ErrCouponExhausted = errors.New("coupon.repository: coupon usage limit reached")

	// ErrCouponCodeTaken возвращается при создании купона с занятым кодом
	ErrCouponCodeTaken = errors.New("coupon.repository: coupon code already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("coupon.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("coupon.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("coupon.repository: failed to scan row")
)
