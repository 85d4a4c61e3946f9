package get_available_slots

import (
	"time"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/pkg/types"
)

// generateTimeSlots генерирует сетку всех слотов на день.
// Слоты идут от открытия до закрытия с фиксированным шагом,
// слот не попадает в сетку, если его конец выходит за закрытие
func generateTimeSlots(open, close types.TimeString, slotDuration int) ([]types.TimeString, error) {
	allSlots := make([]types.TimeString, 0)
	currentSlot := open

	for currentSlot.IsBefore(close) {
		slotEnd, err := currentSlot.AddMinutes(slotDuration)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(close) {
			break
		}

		allSlots = append(allSlots, currentSlot)
		currentSlot = slotEnd
	}

	return allSlots, nil
}

// buildAvailableSlots отбирает из сетки только свободные слоты.
// Занятые времена выпадают из ответа, запись о слоте может
// закрыть его или поднять вместимость выше одного визита.
// Для сегодняшней даты прошедшие слоты выпадают тоже
func buildAvailableSlots(
	times []types.TimeString,
	slotDuration int,
	bookedTimes []types.TimeString,
	overrides []*domain.SlotOverride,
	requestDate time.Time,
	now time.Time,
) []Slot {
	today := isSameDay(requestDate, now)
	currentTime := types.NewTimeString(now)

	result := make([]Slot, 0, len(times))
	for _, slotTime := range times {
		available := !isTimeBooked(bookedTimes, slotTime)

		if override := findOverride(overrides, slotTime); override != nil {
			available = override.HasCapacity()
		}

		if today && !slotTime.IsAfter(currentTime) {
			available = false
		}

		if !available {
			continue
		}

		result = append(result, Slot{
			Time:            slotTime,
			DurationMinutes: slotDuration,
		})
	}

	return result
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
