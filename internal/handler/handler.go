package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/vmelnikv/DriveBooker/internal/domain"
	"github.com/vmelnikv/DriveBooker/internal/handler/dto"
	"github.com/vmelnikv/DriveBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	GetByID(ctx context.Context, bookingID, customerID string) (*domain.Booking, error)
	Create(ctx context.Context, customer domain.Customer, input domain.CreateBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, customerID string) (*domain.Booking, error)
}

type CatalogSvc interface {
	ListAvailable(ctx context.Context, pickup, returnAt time.Time) ([]*domain.Vehicle, error)
}

type Handler struct {
	bookingService BookingSvc
	catalogService CatalogSvc
}

func NewHandler(bookingService BookingSvc, catalogService CatalogSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
		catalogService: catalogService,
	}
}

// Bookings

func (h *Handler) ListBookings(c *ginext.Context) {
	customer, ok := middleware.CustomerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized access"})
		return
	}

	bookings, err := h.bookingService.ListByCustomer(c.Request.Context(), customer.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	customer, ok := middleware.CustomerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized access"})
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), c.Param("id"), customer.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	customer, ok := middleware.CustomerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized access"})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateBookingInput{
		VehicleID:      req.CarID,
		PickupLocation: req.PickupLocation,
		Email:          req.Email,
		Phone:          req.Phone,
	}

	// Empty date strings stay zero and fail presence validation in the
	// service; malformed non-empty ones fail here.
	if req.PickupDate != "" {
		pickup, err := parseDate(req.PickupDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid pickupDate format, expected RFC3339",
			})
			return
		}
		input.PickupDate = pickup
	}
	if req.ReturnDate != "" {
		returnAt, err := parseDate(req.ReturnDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid returnDate format, expected RFC3339",
			})
			return
		}
		input.ReturnDate = returnAt
	}

	booking, err := h.bookingService.Create(c.Request.Context(), customer, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	customer, ok := middleware.CustomerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized access"})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), c.Param("id"), customer.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Catalog

func (h *Handler) ListAvailableCars(c *ginext.Context) {
	pickupParam := c.Query("pickupDate")
	returnParam := c.Query("returnDate")
	if pickupParam == "" || returnParam == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Pickup and return dates are required",
		})
		return
	}

	pickup, err := parseDate(pickupParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid pickupDate format, expected RFC3339",
		})
		return
	}
	returnAt, err := parseDate(returnParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid returnDate format, expected RFC3339",
		})
		return
	}

	vehicles, err := h.catalogService.ListAvailable(c.Request.Context(), pickup, returnAt)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		resp = append(resp, dto.ToVehicleResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

// parseDate accepts RFC3339 and the offset-less layout the booking clients
// send ("2025-03-01T10:00:00"), which is read as UTC.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrVehicleNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrMissingBookingInfo),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
