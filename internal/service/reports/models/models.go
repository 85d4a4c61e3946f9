package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/glammyapp/salon-service/internal/domain"
)

// ReportPeriodRequest период отчета
type ReportPeriodRequest struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// ToDomainFilter конвертирует период в domain фильтр
// Отчеты включают отмененные бронирования
func (r *ReportPeriodRequest) ToDomainFilter() domain.BookingsFilter {
	return domain.BookingsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: true,
	}
}

// StatsResponse сводная статистика за период
type StatsResponse struct {
	TotalBookings     int             `json:"totalBookings"`
	CompletedBookings int             `json:"completedBookings"`
	CancelledBookings int             `json:"cancelledBookings"`
	TodayBookings     int             `json:"todayBookings"`
	UpcomingBookings  int             `json:"upcomingBookings"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalDiscount     decimal.Decimal `json:"totalDiscount"`
	OnlinePayments    decimal.Decimal `json:"onlinePayments"`
	ByStatus          map[string]int  `json:"byStatus"`
	ByService         map[string]int  `json:"byService"`
}
