package reschedule_booking

import (
	"time"

	"github.com/glammyapp/salon-service/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID  int64            // ID бронирования
	CustomerID *int64           // ID клиента, nil для администратора
	NewDate    time.Time        // Новая дата (без времени)
	NewTime    types.TimeString // Новое время слота
	Reason     *string          // Причина переноса (опционально)
}

// Response модель ответа с перенесенным бронированием
type Response struct {
	ID          int64            // ID бронирования
	Reference   string           // Публичный референс
	BookingDate time.Time        // Новая дата
	BookingTime types.TimeString // Новое время
	Status      string           // Статус бронирования

	RescheduleCount      int // Сколько переносов уже сделано
	RemainingReschedules int // Сколько переносов осталось
}
