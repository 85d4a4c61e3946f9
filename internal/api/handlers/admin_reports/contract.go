package admin_reports

import (
	"context"

	"github.com/glammyapp/salon-service/internal/service/reports/models"
)

type ReportsService interface {
	Stats(ctx context.Context, req *models.ReportPeriodRequest) (*models.StatsResponse, error)
	ExportBookingsXLSX(ctx context.Context, req *models.ReportPeriodRequest) ([]byte, error)
	ExportRevenueXLSX(ctx context.Context, req *models.ReportPeriodRequest) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
