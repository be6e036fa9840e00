package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vmelnikv/DriveBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type stubCompleter struct {
	calls    atomic.Int64
	bookings []*domain.Booking
	err      error
}

func (s *stubCompleter) CompleteDue(context.Context) ([]*domain.Booking, error) {
	s.calls.Add(1)
	return s.bookings, s.err
}

func TestScheduler_Tick_CompletesDue(t *testing.T) {
	completer := &stubCompleter{
		bookings: []*domain.Booking{
			{ID: "B12345", CustomerID: "C001", VehicleID: 3, Status: domain.BookingStatusCompleted},
		},
	}

	s := New(completer, 50*time.Millisecond, newTestLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, completer.calls.Load(), int64(1))
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	completer := &stubCompleter{err: errors.New("db error")}

	s := New(completer, 50*time.Millisecond, newTestLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, completer.calls.Load(), int64(1))
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	completer := &stubCompleter{}

	s := New(completer, time.Second, newTestLogger(t)) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	completer := &stubCompleter{}

	s := New(completer, 30*time.Millisecond, newTestLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, completer.calls.Load(), int64(3))
}
