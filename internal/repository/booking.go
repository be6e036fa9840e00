package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/vmelnikv/DriveBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, customer_id, customer_name, customer_email, customer_phone,
		car_id, car_name, pickup_location, pickup_date, return_date,
		total_price, status, created_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Insert(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.CustomerID, b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.VehicleID, b.VehicleName, b.PickupLocation, b.PickupDate, b.ReturnDate,
		b.TotalPrice, b.Status, b.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrBookingIDTaken
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByIDAndCustomer(ctx context.Context, bookingID, customerID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id=$1 AND customer_id=$2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID, customerID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE customer_id=$1
			  ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by customer: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// Cancel overwrites the status unconditionally; the ownership predicate is
// the only guard, matching GetByIDAndCustomer.
func (r *BookingRepository) Cancel(ctx context.Context, bookingID, customerID string) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status=$3
			  WHERE id=$1 AND customer_id=$2
			  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID, customerID, domain.BookingStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) BookedVehicleIDs(ctx context.Context, from, to time.Time) ([]int, error) {
	query := `SELECT DISTINCT car_id
			  FROM bookings
			  WHERE status = ANY($3) AND pickup_date < $2 AND return_date > $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("booked vehicle ids: %w", err)
	}
	defer rows.Close()

	var res []int
	for rows.Next() {
		var id int
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan vehicle id: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}

func (r *BookingRepository) CompleteDue(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status=$3
			  WHERE status=$2 AND return_date < $1
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		now, domain.BookingStatusConfirmed, domain.BookingStatusCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("complete due: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var b domain.Booking
	err := scan(
		&b.ID, &b.CustomerID, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
		&b.VehicleID, &b.VehicleName, &b.PickupLocation, &b.PickupDate, &b.ReturnDate,
		&b.TotalPrice, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
