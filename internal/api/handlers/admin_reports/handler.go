package admin_reports

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/glammyapp/salon-service/internal/api/handlers"
	"github.com/glammyapp/salon-service/internal/service/reports/models"
)

const (
	msgInvalidStartDate = "invalid startDate, expected YYYY-MM-DD"
	msgInvalidEndDate   = "invalid endDate, expected YYYY-MM-DD"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleStats GET /api/v1/admin/reports/stats
// Query params: startDate, endDate (YYYY-MM-DD, both optional)
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parsePeriod(w, r.URL.Query(), "GET /admin/reports/stats")
	if !ok {
		return
	}

	result, err := h.service.Stats(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /admin/reports/stats - Failed to build stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/reports/stats - Stats built: total_bookings=%d", result.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleExportBookings GET /api/v1/admin/reports/bookings/export
func (h *Handler) HandleExportBookings(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parsePeriod(w, r.URL.Query(), "GET /admin/reports/bookings/export")
	if !ok {
		return
	}

	data, err := h.service.ExportBookingsXLSX(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /admin/reports/bookings/export - Failed to export bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/reports/bookings/export - Bookings exported: size=%d", len(data))
	respondXLSX(w, "bookings", data)
}

// HandleExportRevenue GET /api/v1/admin/reports/revenue/export
func (h *Handler) HandleExportRevenue(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parsePeriod(w, r.URL.Query(), "GET /admin/reports/revenue/export")
	if !ok {
		return
	}

	data, err := h.service.ExportRevenueXLSX(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /admin/reports/revenue/export - Failed to export revenue: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/reports/revenue/export - Revenue exported: size=%d", len(data))
	respondXLSX(w, "revenue", data)
}

func (h *Handler) parsePeriod(w http.ResponseWriter, query url.Values, route string) (*models.ReportPeriodRequest, bool) {
	req := &models.ReportPeriodRequest{}

	if startStr := query.Get("startDate"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			h.logger.Warn("%s - Invalid start date: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidStartDate)
			return nil, false
		}
		req.StartDate = &start
	}

	if endStr := query.Get("endDate"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			h.logger.Warn("%s - Invalid end date: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidEndDate)
			return nil, false
		}
		req.EndDate = &end
	}

	return req, true
}

func respondXLSX(w http.ResponseWriter, name string, data []byte) {
	filename := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
