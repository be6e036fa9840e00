package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/vmelnikv/DriveBooker/internal/domain"
	"github.com/vmelnikv/DriveBooker/internal/service/ports"
)

type CatalogService struct {
	vehicleRepo ports.VehicleRepo
	bookingRepo ports.BookingRepo
}

func NewCatalogService(vehicleRepo ports.VehicleRepo, bookingRepo ports.BookingRepo) *CatalogService {
	return &CatalogService{
		vehicleRepo: vehicleRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *CatalogService) GetByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

// ListAvailable returns vehicles that are marked available and have no active
// booking overlapping the requested window.
func (s *CatalogService) ListAvailable(ctx context.Context, pickup, returnAt time.Time) ([]*domain.Vehicle, error) {
	if !returnAt.After(pickup) {
		return nil, fmt.Errorf("%w: return date must be after pickup date", domain.ErrValidation)
	}

	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}

	booked, err := s.bookingRepo.BookedVehicleIDs(ctx, pickup, returnAt)
	if err != nil {
		return nil, fmt.Errorf("booked vehicles: %w", err)
	}

	available := make([]*domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Available && !slices.Contains(booked, v.ID) {
			available = append(available, v)
		}
	}

	return available, nil
}
