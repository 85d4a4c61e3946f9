package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/glammyapp/salon-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID      int64            // ID клиента
	ServiceID       int64            // ID услуги
	StaffID         *int64           // ID мастера (опционально)
	AddressID       int64            // ID адреса клиента для выезда
	Date            time.Time        // Дата бронирования (без времени)
	Time            types.TimeString // Время слота (например, "10:00")
	PaymentMethod   string           // "cash" или "online"
	CouponCode      *string          // Код купона (опционально)
	SpecialRequests *string          // Пожелания клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	Reference   string           // Публичный референс, например BK20250115103000A1B2C3
	CustomerID  int64            // ID клиента
	ServiceID   int64            // ID услуги
	StaffID     *int64           // ID мастера
	AddressID   int64            // ID адреса
	BookingDate time.Time        // Дата бронирования
	BookingTime types.TimeString // Время слота
	Status      string           // Статус бронирования

	PaymentMethod string // Способ оплаты
	PaymentStatus string // Статус оплаты

	// Снимок цены на момент создания
	Price          decimal.Decimal
	CouponCode     *string
	DiscountAmount decimal.Decimal
	FinalPrice     decimal.Decimal

	ServiceName     string  // Название услуги
	SpecialRequests *string // Пожелания клиента

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
