package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default booking configuration values
const (
	DefaultTimezone            = "Asia/Riyadh"
	DefaultOpenTime            = "10:00"
	DefaultCloseTime           = "22:00"
	DefaultSlotDurationMinutes = 60
	DefaultMaxReschedules      = 2
	DefaultCurrency            = "SAR"
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 5
	MaxSlotDurationMinutes      = 480 // 8 hours
	MaxSpecialRequestsLength    = 500
	MaxRescheduleReasonLength   = 500
	MaxCancellationReasonLength = 500
)

// SlotBlockingStatuses список статусов, занимающих слот
// Бронирование в ожидании оплаты слот не занимает
var SlotBlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
}

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации активных бронирований
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
