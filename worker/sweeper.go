package worker

import (
	"context"
	"time"

	"github.com/muhammadheryan/stock-ledger/application/reservation"
	"github.com/muhammadheryan/stock-ledger/application/stocklock"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	"go.uber.org/zap"
)

// Sweeper periodically transitions expired reservations and locks. It keeps
// no state of its own: every tick is a full idempotent pass, so overlapping
// runs (or an external scheduler hitting the sweep endpoint at the same
// time) are safe.
type Sweeper struct {
	interval       time.Duration
	reservationApp reservation.ReservationApp
	lockApp        stocklock.StockLockApp
}

func NewSweeper(interval time.Duration, reservationApp reservation.ReservationApp, lockApp stocklock.StockLockApp) *Sweeper {
	return &Sweeper{
		interval:       interval,
		reservationApp: reservationApp,
		lockApp:        lockApp,
	}
}

// Start runs the sweep loop until ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				reservations, locks := s.SweepOnce(ctx)
				if reservations > 0 || locks > 0 {
					logger.Info("sweep pass",
						zap.Int("reservations_expired", reservations),
						zap.Int("locks_expired", locks),
					)
				}
			}
		}
	}()
}

// SweepOnce runs a single pass and returns how many reservations and locks
// were transitioned. Errors are logged inside the engines; a failed side
// reports zero and the next tick retries.
func (s *Sweeper) SweepOnce(ctx context.Context) (int, int) {
	reservations, err := s.reservationApp.SweepExpired(ctx)
	if err != nil {
		logger.Error("[SweepOnce] sweep reservations", zap.String("error", err.Error()))
	}
	locks, err := s.lockApp.SweepExpired(ctx)
	if err != nil {
		logger.Error("[SweepOnce] sweep locks", zap.String("error", err.Error()))
	}
	return reservations, locks
}
