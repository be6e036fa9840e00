package memstore

import (
	"context"
	"sync"

	"github.com/vmelnikv/DriveBooker/internal/domain"
)

// VehicleStore holds the static vehicle catalog. The catalog is read-only
// reference data; the lock only guards against racy reads of the shared
// slice.
type VehicleStore struct {
	mu       sync.RWMutex
	vehicles []*domain.Vehicle
	byID     map[int]*domain.Vehicle
}

func NewVehicleStore(vehicles []*domain.Vehicle) *VehicleStore {
	s := &VehicleStore{
		vehicles: vehicles,
		byID:     make(map[int]*domain.Vehicle, len(vehicles)),
	}
	for _, v := range vehicles {
		s.byID[v.ID] = v
	}
	return s
}

func (s *VehicleStore) GetByID(_ context.Context, id int) (*domain.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrVehicleNotFound
	}

	out := *v
	return &out, nil
}

func (s *VehicleStore) List(_ context.Context) ([]*domain.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		out := *v
		res = append(res, &out)
	}

	return res, nil
}
