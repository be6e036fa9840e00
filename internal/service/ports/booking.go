package ports

import (
	"context"
	"time"

	"github.com/vmelnikv/DriveBooker/internal/domain"
)

type BookingRepo interface {
	// Insert appends a booking to the ledger. Returns
	// domain.ErrBookingIDTaken when the id is already in use.
	Insert(ctx context.Context, b *domain.Booking) error
	// GetByIDAndCustomer returns the booking only when both id and owner
	// match; a booking owned by someone else is indistinguishable from a
	// missing one.
	GetByIDAndCustomer(ctx context.Context, bookingID, customerID string) (*domain.Booking, error)
	// ListByCustomer returns the customer's bookings in ledger insertion order.
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	// Cancel sets the booking's status to cancelled regardless of its prior
	// status and returns the updated record.
	Cancel(ctx context.Context, bookingID, customerID string) (*domain.Booking, error)
	// BookedVehicleIDs returns the ids of vehicles with at least one active
	// booking overlapping the given window.
	BookedVehicleIDs(ctx context.Context, from, to time.Time) ([]int, error)
	// CompleteDue marks confirmed bookings whose return date has passed as
	// completed and returns them.
	CompleteDue(ctx context.Context, now time.Time) ([]*domain.Booking, error)
}
