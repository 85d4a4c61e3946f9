package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/glammyapp/salon-service/internal/domain"
	"github.com/glammyapp/salon-service/internal/service/reports/models"
)

// Service сервис отчетов для админки
type Service struct {
	bookings     BookingRepository
	payments     PaymentRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(bookings BookingRepository, payments PaymentRepository, logger Logger) *Service {
	return &Service{
		bookings:     bookings,
		payments:     payments,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Stats считает сводную статистику по бронированиям за период
func (s *Service) Stats(ctx context.Context, req *models.ReportPeriodRequest) (*models.StatsResponse, error) {
	bookings, err := s.bookings.GetWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("Stats: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: Stats - load bookings: %v", ErrInternal, err)
	}

	stats := &models.StatsResponse{
		TotalRevenue:   decimal.Zero,
		TotalDiscount:  decimal.Zero,
		OnlinePayments: decimal.Zero,
		ByStatus:       make(map[string]int),
		ByService:      make(map[string]int),
	}

	now := s.timeProvider.Now()

	for _, b := range bookings {
		stats.TotalBookings++
		stats.ByStatus[string(b.Status)]++
		stats.ByService[b.ServiceName]++

		switch b.Status {
		case domain.StatusCompleted:
			stats.CompletedBookings++
			stats.TotalRevenue = stats.TotalRevenue.Add(b.FinalPrice)
			stats.TotalDiscount = stats.TotalDiscount.Add(b.DiscountAmount)
		case domain.StatusCancelled:
			stats.CancelledBookings++
		}

		if isSameDay(b.BookingDate, now) {
			stats.TodayBookings++
		}
		// Предстоящие визиты: не ранее сегодняшнего дня и еще не завершенные
		if !isBeforeDay(b.BookingDate, now) &&
			(b.Status == domain.StatusPending || b.Status == domain.StatusConfirmed) {
			stats.UpcomingBookings++
		}
	}

	s.logger.Info("Stats: computed over %d bookings", stats.TotalBookings)
	return stats, nil
}

// ExportBookingsXLSX выгружает бронирования за период в xlsx
func (s *Service) ExportBookingsXLSX(ctx context.Context, req *models.ReportPeriodRequest) ([]byte, error) {
	bookings, err := s.bookings.GetWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("ExportBookingsXLSX: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: ExportBookingsXLSX - load bookings: %v", ErrInternal, err)
	}

	f := excelize.NewFile()
	sheet := "Bookings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: ExportBookingsXLSX - create sheet: %v", ErrInternal, err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	header := []string{"Reference", "Date", "Time", "Service", "Status", "Payment", "Price", "Discount", "Final Price", "Coupon"}
	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, v)
	}

	for r, b := range bookings {
		row := r + 2
		values := []any{
			b.Reference,
			b.BookingDate.Format(domain.DateFormat),
			b.BookingTime.String(),
			b.ServiceName,
			string(b.Status),
			string(b.PaymentStatus),
			b.Price.StringFixed(2),
			b.DiscountAmount.StringFixed(2),
			b.FinalPrice.StringFixed(2),
			derefString(b.CouponCode),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 22)
	_ = f.SetColWidth(sheet, "B", "C", 12)
	_ = f.SetColWidth(sheet, "D", "D", 28)
	_ = f.SetColWidth(sheet, "E", "F", 14)
	_ = f.SetColWidth(sheet, "G", "I", 14)
	_ = f.SetColWidth(sheet, "J", "J", 16)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	_ = f.SetCellStyle(sheet, "A1", "J1", style)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: ExportBookingsXLSX - write buffer: %v", ErrInternal, err)
	}

	s.logger.Info("ExportBookingsXLSX: exported %d bookings", len(bookings))
	return buf.Bytes(), nil
}

// ExportRevenueXLSX выгружает платежи за период в xlsx
func (s *Service) ExportRevenueXLSX(ctx context.Context, req *models.ReportPeriodRequest) ([]byte, error) {
	payments, err := s.payments.GetWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("ExportRevenueXLSX: failed to load payments: %v", err)
		return nil, fmt.Errorf("%w: ExportRevenueXLSX - load payments: %v", ErrInternal, err)
	}

	f := excelize.NewFile()
	sheet := "Revenue"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: ExportRevenueXLSX - create sheet: %v", ErrInternal, err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	header := []string{"Date", "Booking Reference", "Gateway", "Amount", "Currency", "Status", "Result Code"}
	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, v)
	}

	total := decimal.Zero
	for r, p := range payments {
		row := r + 2
		values := []any{
			p.CreatedAt.Format(domain.DateFormat),
			p.Reference,
			string(p.Gateway),
			p.Amount.StringFixed(2),
			p.Currency,
			string(p.Status),
			derefString(p.ResultCode),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		if p.Status == domain.PaymentPaid {
			total = total.Add(p.Amount)
		}
	}

	totalRow := len(payments) + 2
	cell, _ := excelize.CoordinatesToCellName(3, totalRow)
	_ = f.SetCellValue(sheet, cell, "Total paid")
	cell, _ = excelize.CoordinatesToCellName(4, totalRow)
	_ = f.SetCellValue(sheet, cell, total.StringFixed(2))

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 22)
	_ = f.SetColWidth(sheet, "C", "C", 12)
	_ = f.SetColWidth(sheet, "D", "G", 14)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	_ = f.SetCellStyle(sheet, "A1", "G1", style)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: ExportRevenueXLSX - write buffer: %v", ErrInternal, err)
	}

	s.logger.Info("ExportRevenueXLSX: exported %d payments, total paid %s", len(payments), total.StringFixed(2))
	return buf.Bytes(), nil
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isBeforeDay проверяет, что дата раньше дня, к которому относится now
func isBeforeDay(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
