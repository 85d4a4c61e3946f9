package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/pkg/types"
)

func slotTimes(slots []Slot) []types.TimeString {
	result := make([]types.TimeString, len(slots))
	for i, s := range slots {
		result[i] = s.Time
	}
	return result
}

func TestGenerateTimeSlots_DefaultWorkingDay(t *testing.T) {
	slots, err := generateTimeSlots(types.TimeString("10:00"), types.TimeString("22:00"), 60)
	require.NoError(t, err)

	require.Len(t, slots, 12)
	assert.Equal(t, types.TimeString("10:00"), slots[0])
	assert.Equal(t, types.TimeString("21:00"), slots[len(slots)-1])
}

func TestGenerateTimeSlots_SlotMustFitBeforeClose(t *testing.T) {
	// Закрытие в 12:30, слот 60 минут: 11:30 входит, 12:00 уже нет
	slots, err := generateTimeSlots(types.TimeString("10:00"), types.TimeString("12:30"), 60)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"10:00", "11:00"}, slots)
}

func TestGenerateTimeSlots_CustomDuration(t *testing.T) {
	slots, err := generateTimeSlots(types.TimeString("10:00"), types.TimeString("12:00"), 30)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:00", "11:30"}, slots)
}

func TestBuildAvailableSlots_BookedTimeDropped(t *testing.T) {
	// Рабочий день 10:00-22:00, одно подтвержденное бронирование на 14:00:
	// из двенадцати слотов остаются одиннадцать, 14:00 выпадает
	times, err := generateTimeSlots(types.TimeString("10:00"), types.TimeString("22:00"), 60)
	require.NoError(t, err)
	require.Len(t, times, 12)

	booked := []types.TimeString{"14:00"}
	requestDate := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	slots := buildAvailableSlots(times, 60, booked, nil, requestDate, now)

	require.Len(t, slots, 11)
	assert.NotContains(t, slotTimes(slots), types.TimeString("14:00"))
	assert.Equal(t, types.TimeString("10:00"), slots[0].Time)
	assert.Equal(t, types.TimeString("21:00"), slots[len(slots)-1].Time)
}

func TestBuildAvailableSlots_Ascending(t *testing.T) {
	times := []types.TimeString{"10:00", "11:00", "12:00"}
	booked := []types.TimeString{"11:00"}
	requestDate := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	slots := buildAvailableSlots(times, 60, booked, nil, requestDate, now)

	assert.Equal(t, []types.TimeString{"10:00", "12:00"}, slotTimes(slots))
}

func TestBuildAvailableSlots_OverrideClosesSlot(t *testing.T) {
	times := []types.TimeString{"10:00", "11:00"}
	overrides := []*domain.SlotOverride{
		{Time: types.TimeString("10:00"), IsAvailable: false, MaxBookings: 1},
	}
	requestDate := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	slots := buildAvailableSlots(times, 60, nil, overrides, requestDate, now)

	assert.Equal(t, []types.TimeString{"11:00"}, slotTimes(slots))
}

func TestBuildAvailableSlots_OverrideRaisesCapacityOverBooking(t *testing.T) {
	// Время занято, но запись о слоте разрешает два визита и один еще свободен
	times := []types.TimeString{"10:00"}
	booked := []types.TimeString{"10:00"}
	overrides := []*domain.SlotOverride{
		{Time: types.TimeString("10:00"), IsAvailable: true, MaxBookings: 2, CurrentBookings: 1},
	}
	requestDate := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	slots := buildAvailableSlots(times, 60, booked, overrides, requestDate, now)

	assert.Equal(t, []types.TimeString{"10:00"}, slotTimes(slots))
}

func TestBuildAvailableSlots_OverrideAtFullCapacity(t *testing.T) {
	times := []types.TimeString{"10:00"}
	overrides := []*domain.SlotOverride{
		{Time: types.TimeString("10:00"), IsAvailable: true, MaxBookings: 2, CurrentBookings: 2},
	}
	requestDate := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	slots := buildAvailableSlots(times, 60, nil, overrides, requestDate, now)

	assert.Empty(t, slots)
}

func TestBuildAvailableSlots_PastSlotsToday(t *testing.T) {
	times := []types.TimeString{"10:00", "14:00", "18:00"}
	// Сейчас 14:00 того же дня: прошедшие и текущий слоты выпадают
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	requestDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	slots := buildAvailableSlots(times, 60, nil, nil, requestDate, now)

	assert.Equal(t, []types.TimeString{"18:00"}, slotTimes(slots))
}
