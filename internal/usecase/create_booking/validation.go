package create_booking

import (
	"fmt"
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.AddressID <= 0 {
		return fmt.Errorf("%w: addressID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	switch domain.PaymentMethod(req.PaymentMethod) {
	case domain.PaymentMethodCash, domain.PaymentMethodOnline:
	default:
		return fmt.Errorf("%w: payment method must be cash or online", ErrInvalidInput)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests must not exceed %d characters",
			ErrInvalidInput, domain.MaxSpecialRequestsLength)
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

// validateStaff проверяет, что мастер активен, оказывает услугу
// и работает в выбранный день
func validateStaff(staff *domain.Staff, serviceID int64, date time.Time) error {
	if !staff.IsActive {
		return ErrStaffNotFound
	}
	if !staff.ProvidesService(serviceID) {
		return fmt.Errorf("%w: staff does not provide this service", ErrStaffNotAvailable)
	}
	if !staff.IsWorkingDay(date.Weekday()) {
		return fmt.Errorf("%w: staff does not work on %s", ErrStaffNotAvailable, date.Weekday())
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
