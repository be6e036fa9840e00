package scheduler

import (
	"context"
	"time"

	"github.com/vmelnikv/DriveBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingCompleter interface {
	CompleteDue(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically finalizes confirmed bookings whose return date has
// passed. The request path never produces the completed status itself.
type Scheduler struct {
	bookingService bookingCompleter
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("completion sweep started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("completion sweep stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.bookingService.CompleteDue(ctx)
	if err != nil {
		s.logger.Error("failed to complete due bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range completed {
		s.logger.Info("booking completed",
			logger.String("booking_id", b.ID),
			logger.String("customer_id", b.CustomerID),
			logger.Int("car_id", b.VehicleID),
		)
	}
}
