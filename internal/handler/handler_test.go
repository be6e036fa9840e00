package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmelnikv/DriveBooker/internal/domain"
	"github.com/vmelnikv/DriveBooker/internal/handler/dto"
	"github.com/vmelnikv/DriveBooker/internal/memstore"
	"github.com/vmelnikv/DriveBooker/internal/middleware"
	"github.com/vmelnikv/DriveBooker/internal/service"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type noopNotifier struct{}

func (noopNotifier) NotifyBookingCreated(context.Context, *domain.Booking)   {}
func (noopNotifier) NotifyBookingCancelled(context.Context, *domain.Booking) {}

func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	bookings := memstore.NewBookingStore(memstore.SeedBookings())
	vehicles := memstore.NewVehicleStore(memstore.SeedVehicles())

	bookingSvc := service.NewBookingService(bookings, vehicles, noopNotifier{}, newTestLogger(t))
	catalogSvc := service.NewCatalogService(vehicles, bookings)

	h := NewHandler(bookingSvc, catalogSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		booked := api.Group("/bookings", middleware.Auth())
		booked.GET("", h.ListBookings)
		booked.GET("/:id", h.GetBooking)
		booked.POST("", h.CreateBooking)
		booked.POST("/:id/cancel", h.CancelBooking)

		api.GET("/cars/available", h.ListAvailableCars)
	}

	return r
}

func authedRequest(method, target string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Authorization", "Bearer demo-token")
	return req
}

// --- Auth gate ---

func TestHandler_MissingAuthHeader(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Unauthorized access", resp.Error)
}

func TestHandler_MalformedAuthHeader(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Token abc")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_InvalidToken(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid token", resp.Error)
}

// --- Bookings ---

func TestHandler_ListBookings(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/bookings", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	for _, b := range resp {
		assert.Equal(t, "C001", b.CustomerID)
	}
}

func TestHandler_GetBooking(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/bookings/B12345", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ford Explorer", resp.CarName)
	assert.Equal(t, 340.0, resp.TotalPrice)
}

func TestHandler_GetBooking_NotOwned(t *testing.T) {
	r := setupRouter(t)

	// B12347 belongs to C002; the demo identity is C001
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/bookings/B12347", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/api/bookings/B99999", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateBooking(t *testing.T) {
	r := setupRouter(t)

	body := []byte(`{
		"carId": 1,
		"pickupLocation": "Downtown Seattle",
		"pickupDate": "2025-04-01T10:00:00",
		"returnDate": "2025-04-03T10:00:00"
	}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/bookings", body))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 90.0, resp.TotalPrice)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "Toyota Corolla", resp.CarName)
	assert.Regexp(t, `^B\d{5}$`, resp.ID)
}

func TestHandler_CreateBooking_MissingFields(t *testing.T) {
	r := setupRouter(t)

	body := []byte(`{"carId": 1, "pickupDate": "2025-04-01T10:00:00"}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/bookings", body))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "missing required booking information", resp.Error)
}

func TestHandler_CreateBooking_UnknownCar(t *testing.T) {
	r := setupRouter(t)

	body := []byte(`{
		"carId": 42,
		"pickupLocation": "Downtown Seattle",
		"pickupDate": "2025-04-01T10:00:00",
		"returnDate": "2025-04-03T10:00:00"
	}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/bookings", body))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateBooking_BadDate(t *testing.T) {
	r := setupRouter(t)

	body := []byte(`{
		"carId": 1,
		"pickupLocation": "Downtown Seattle",
		"pickupDate": "not-a-date",
		"returnDate": "2025-04-03T10:00:00"
	}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/bookings", body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking(t *testing.T) {
	r := setupRouter(t)

	// B12346 is completed; cancel still overwrites the status
	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/bookings/B12346/cancel", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

func TestHandler_CancelBooking_NotOwned(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodPost, "/api/bookings/B12347/cancel", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Catalog ---

func TestHandler_ListAvailableCars(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/cars/available?pickupDate=2025-07-01T10:00:00&returnDate=2025-07-03T10:00:00", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.VehicleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 6)
}

func TestHandler_ListAvailableCars_FiltersBooked(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/cars/available?pickupDate=2025-03-02T10:00:00&returnDate=2025-03-04T10:00:00", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.VehicleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 4)
	for _, v := range resp {
		assert.NotContains(t, []int{3, 4}, v.ID)
	}
}

func TestHandler_ListAvailableCars_MissingDates(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cars/available?pickupDate=2025-07-01T10:00:00", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Pickup and return dates are required", resp.Error)
}
