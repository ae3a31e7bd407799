package proposals

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunSweeper clears expired proposals every interval until ctx is cancelled.
// Run it in its own goroutine alongside whatever serves the store.
func RunSweeper(ctx context.Context, store Store, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := store.SweepExpired(ctx); removed > 0 {
				logger.Info("cleared expired proposals", zap.Int("count", removed))
			}
		}
	}
}
