package ports

import (
	"context"

	"github.com/vmelnikv/DriveBooker/internal/domain"
)

type VehicleRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
}
