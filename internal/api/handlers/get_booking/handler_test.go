package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glammyapp/salon-service/internal/api/middleware"
	"github.com/glammyapp/salon-service/internal/service/bookings"
	"github.com/glammyapp/salon-service/internal/service/bookings/models"
)

type stubBookingService struct {
	booking *models.BookingResponse
	err     error

	gotID         int64
	gotCustomerID int64
}

func (s *stubBookingService) GetByID(_ context.Context, id, customerID int64) (*models.BookingResponse, error) {
	s.gotID = id
	s.gotCustomerID = customerID
	if s.err != nil {
		return nil, s.err
	}
	return s.booking, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newRouter(service BookingService) *mux.Router {
	h := NewHandler(service, noopLogger{})
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/bookings/{bookingId}", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_Success(t *testing.T) {
	service := &stubBookingService{
		booking: &models.BookingResponse{
			ID:         15,
			Reference:  "BK20250115103000A1B2C3",
			CustomerID: 7,
			Status:     "confirmed",
		},
	}
	router := newRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/15", nil)
	req.Header.Set(middleware.CustomerIDHeader, "7")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(15), service.gotID)
	assert.Equal(t, int64(7), service.gotCustomerID)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "BK20250115103000A1B2C3", resp.Reference)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandle_MissingCustomerHeader(t *testing.T) {
	router := newRouter(&stubBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/15", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidBookingID(t *testing.T) {
	router := newRouter(&stubBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/abc", nil)
	req.Header.Set(middleware.CustomerIDHeader, "7")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_NotFound(t *testing.T) {
	router := newRouter(&stubBookingService{err: bookings.ErrBookingNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/15", nil)
	req.Header.Set(middleware.CustomerIDHeader, "7")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_AccessDenied(t *testing.T) {
	router := newRouter(&stubBookingService{err: bookings.ErrAccessDenied})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/15", nil)
	req.Header.Set(middleware.CustomerIDHeader, "7")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
