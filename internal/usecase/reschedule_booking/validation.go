package reschedule_booking

import (
	"fmt"
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.CustomerID != nil && *req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: new date is required", ErrInvalidInput)
	}

	if req.NewTime.IsZero() {
		return fmt.Errorf("%w: new time is required", ErrInvalidInput)
	}

	if err := req.NewTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(bookingDate, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateSlotTime проверяет, что время попадает в сетку слотов:
// внутри рабочих часов и выровнено по длительности слота.
// Для сегодняшней даты прошедшие слоты недоступны
func validateSlotTime(
	slotTime types.TimeString,
	date time.Time,
	now time.Time,
	open, close types.TimeString,
	slotDuration int,
) error {
	if slotTime.IsBefore(open) || !slotTime.IsBefore(close) {
		return fmt.Errorf("%w: time %s is outside working hours %s-%s", ErrInvalidTimeSlot, slotTime, open, close)
	}

	slotMinutes, err := slotTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	openMinutes, err := open.Minutes()
	if err != nil {
		return fmt.Errorf("%w: failed to parse opening time: %v", ErrInternal, err)
	}
	if (slotMinutes-openMinutes)%slotDuration != 0 {
		return fmt.Errorf("%w: time %s is not aligned to %d-minute slots", ErrInvalidTimeSlot, slotTime, slotDuration)
	}

	if isSameDay(date, now) && !slotTime.IsAfter(types.NewTimeString(now)) {
		return ErrTooLateToBook
	}

	return nil
}

// findOverride ищет запись о слоте на указанное время
func findOverride(overrides []*domain.SlotOverride, slotTime types.TimeString) *domain.SlotOverride {
	for _, o := range overrides {
		if o.Time == slotTime {
			return o
		}
	}
	return nil
}

// isTimeBooked проверяет, что время уже занято
func isTimeBooked(bookedTimes []types.TimeString, slotTime types.TimeString) bool {
	for _, t := range bookedTimes {
		if t == slotTime {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
