package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/pathfinder-backend/internal/clock"
	"github.com/goodnatureofminers/pathfinder-backend/internal/model"
)

// defaultWatchInterval is used when no poll interval is configured.
const defaultWatchInterval = 30 * time.Second

// SpendWatcher polls a single outpoint until it is spent. Unspent results are
// never cached by the decorator, so every poll observes the backend's current
// view.
type SpendWatcher struct {
	source   SpendResolver
	interval time.Duration
	logger   *zap.Logger
}

// NewSpendWatcher constructs a watcher polling at the given interval.
func NewSpendWatcher(source SpendResolver, interval time.Duration, logger *zap.Logger) *SpendWatcher {
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	return &SpendWatcher{
		source:   source,
		interval: interval,
		logger:   logger,
	}
}

// Wait blocks until the outpoint is spent, the context ends, or the source
// fails, returning the spending transaction on success.
func (w *SpendWatcher) Wait(ctx context.Context, outpoint model.OutPoint) (*model.Transaction, error) {
	for {
		tx, err := w.source.GetSpendingTransaction(ctx, outpoint)
		if err != nil {
			return nil, err
		}
		if tx != nil {
			return tx, nil
		}

		w.logger.Debug("output still unspent",
			zap.String("outpoint", outpoint.String()),
			zap.Duration("retry_in", w.interval))
		if err := clock.SleepWithContext(ctx, w.interval); err != nil {
			return nil, err
		}
	}
}
