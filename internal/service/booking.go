package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/vmelnikv/DriveBooker/internal/domain"
	"github.com/vmelnikv/DriveBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// maxIDAttempts bounds regeneration when a random booking id collides with
// an existing one.
const maxIDAttempts = 5

type BookingService struct {
	bookingRepo ports.BookingRepo
	vehicleRepo ports.VehicleRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	vehicleRepo ports.VehicleRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *BookingService) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByCustomer(ctx, customerID)
}

func (s *BookingService) GetByID(ctx context.Context, bookingID, customerID string) (*domain.Booking, error) {
	return s.bookingRepo.GetByIDAndCustomer(ctx, bookingID, customerID)
}

func (s *BookingService) Create(ctx context.Context, customer domain.Customer, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.VehicleID == 0 || input.PickupLocation == "" ||
		input.PickupDate.IsZero() || input.ReturnDate.IsZero() {
		return nil, domain.ErrMissingBookingInfo
	}
	if !input.ReturnDate.After(input.PickupDate) {
		return nil, fmt.Errorf("%w: return date must be after pickup date", domain.ErrValidation)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, input.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("resolve vehicle: %w", err)
	}

	email := input.Email
	if email == "" {
		email = customer.Email
	}
	phone := input.Phone
	if phone == "" {
		phone = customer.Phone
	}

	booking := &domain.Booking{
		CustomerID:     customer.ID,
		CustomerName:   customer.Name,
		CustomerEmail:  email,
		CustomerPhone:  phone,
		VehicleID:      vehicle.ID,
		VehicleName:    vehicle.Name,
		PickupLocation: input.PickupLocation,
		PickupDate:     input.PickupDate,
		ReturnDate:     input.ReturnDate,
		TotalPrice:     domain.TotalPrice(vehicle.DailyPrice, input.PickupDate, input.ReturnDate),
		Status:         domain.BookingStatusConfirmed,
		CreatedAt:      time.Now().UTC(),
	}

	// The B##### format has only 90000 possible ids, so insertion is
	// collision-checked and the id regenerated on a duplicate.
	for attempt := 0; ; attempt++ {
		booking.ID = newBookingID()
		err = s.bookingRepo.Insert(ctx, booking)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrBookingIDTaken) && attempt < maxIDAttempts {
			continue
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("customer_id", booking.CustomerID),
		logger.Int("car_id", booking.VehicleID),
		logger.Any("total_price", booking.TotalPrice),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// Cancel moves the booking to cancelled whatever its prior status was; even a
// completed booking is overwritten. See the ledger docs before changing this.
func (s *BookingService) Cancel(ctx context.Context, bookingID, customerID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Cancel(ctx, bookingID, customerID)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("customer_id", booking.CustomerID),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// CompleteDue is called by the background sweep; it finalizes confirmed
// bookings whose return date has passed.
func (s *BookingService) CompleteDue(ctx context.Context) ([]*domain.Booking, error) {
	completed, err := s.bookingRepo.CompleteDue(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("complete due: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("bookings completed",
			logger.Int("count", len(completed)),
		)
	}

	return completed, nil
}

func newBookingID() string {
	return fmt.Sprintf("B%d", 10000+rand.IntN(90000))
}
