package get_available_slots

import (
	"time"

	"github.com/glammyapp/salon-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги
	StaffID   *int64    // ID мастера (опционально)
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со свободными слотами на день
// Занятые и прошедшие слоты в список не попадают
type Response struct {
	Date      time.Time // Дата, на которую запрашивались слоты
	ServiceID int64     // ID услуги
	StaffID   *int64    // ID мастера, если был указан
	Slots     []Slot    // Свободные слоты по возрастанию времени
}

// Slot модель свободного временного слота
type Slot struct {
	Time            types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах
}
