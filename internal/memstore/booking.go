package memstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/vmelnikv/DriveBooker/internal/domain"
)

// BookingStore is the in-process booking ledger. gin serves requests on
// parallel goroutines, so every read, append, and status change goes through
// the mutex.
type BookingStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*domain.Booking
}

func NewBookingStore(seed []*domain.Booking) *BookingStore {
	s := &BookingStore{
		byID: make(map[string]*domain.Booking, len(seed)),
	}
	for _, b := range seed {
		cp := *b
		s.order = append(s.order, cp.ID)
		s.byID[cp.ID] = &cp
	}
	return s
}

func (s *BookingStore) Insert(_ context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[b.ID]; ok {
		return domain.ErrBookingIDTaken
	}

	cp := *b
	s.order = append(s.order, cp.ID)
	s.byID[cp.ID] = &cp

	return nil
}

func (s *BookingStore) GetByIDAndCustomer(_ context.Context, bookingID, customerID string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byID[bookingID]
	if !ok || b.CustomerID != customerID {
		return nil, domain.ErrBookingNotFound
	}

	cp := *b
	return &cp, nil
}

func (s *BookingStore) ListByCustomer(_ context.Context, customerID string) ([]*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.Booking, 0)
	for _, id := range s.order {
		b := s.byID[id]
		if b.CustomerID == customerID {
			cp := *b
			res = append(res, &cp)
		}
	}

	return res, nil
}

func (s *BookingStore) Cancel(_ context.Context, bookingID, customerID string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.byID[bookingID]
	if !ok || b.CustomerID != customerID {
		return nil, domain.ErrBookingNotFound
	}

	b.Status = domain.BookingStatusCancelled

	cp := *b
	return &cp, nil
}

func (s *BookingStore) BookedVehicleIDs(_ context.Context, from, to time.Time) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []int
	for _, id := range s.order {
		b := s.byID[id]
		if !slices.Contains(domain.ActiveStatuses, b.Status) {
			continue
		}
		if domain.Overlaps(b.PickupDate, b.ReturnDate, from, to) && !slices.Contains(res, b.VehicleID) {
			res = append(res, b.VehicleID)
		}
	}

	return res, nil
}

func (s *BookingStore) CompleteDue(_ context.Context, now time.Time) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res []*domain.Booking
	for _, id := range s.order {
		b := s.byID[id]
		if b.Status == domain.BookingStatusConfirmed && b.ReturnDate.Before(now) {
			b.Status = domain.BookingStatusCompleted
			cp := *b
			res = append(res, &cp)
		}
	}

	return res, nil
}
