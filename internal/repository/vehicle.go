package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vmelnikv/DriveBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type VehicleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVehicleRepo(db *dbpg.DB) *VehicleRepository {
	return &VehicleRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	query := `SELECT id, name, type, seats, luggage, transmission, daily_price, available
			  FROM vehicles
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get vehicle: %w", err)
	}

	var v domain.Vehicle
	if err = row.Scan(
		&v.ID, &v.Name, &v.Type, &v.Seats,
		&v.Luggage, &v.Transmission, &v.DailyPrice, &v.Available,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("scan vehicle: %w", err)
	}

	return &v, nil
}

func (r *VehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	query := `SELECT id, name, type, seats, luggage, transmission, daily_price, available
			  FROM vehicles
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var res []*domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err = rows.Scan(
			&v.ID, &v.Name, &v.Type, &v.Seats,
			&v.Luggage, &v.Transmission, &v.DailyPrice, &v.Available,
		); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}
