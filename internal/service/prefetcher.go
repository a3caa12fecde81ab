package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/pathfinder-backend/internal/chain"
	"github.com/goodnatureofminers/pathfinder-backend/pkg/batcher"
)

// Prefetcher buffers transaction ids and resolves them in rate-limited
// batches through a data source. Pointed at a cache-wrapped source, it warms
// the cache ahead of a trace so converging paths hit memory instead of the
// network.
type Prefetcher struct {
	source TransactionFetcher
	logger *zap.Logger
	batch  *batcher.Batcher[chainhash.Hash]
}

// NewPrefetcher constructs a prefetcher flushing at flushSize items or every
// flushInterval, with flushes rate limited to rps per second.
func NewPrefetcher(logger *zap.Logger, source TransactionFetcher, flushSize int, flushInterval time.Duration, rps int) *Prefetcher {
	p := &Prefetcher{
		source: source,
		logger: logger,
	}
	p.batch = batcher.New(logger, p.warm, flushSize, flushInterval, rps)
	return p
}

// Start begins background flushing.
func (p *Prefetcher) Start(ctx context.Context) {
	p.batch.Start(ctx)
}

// Stop flushes buffered ids and stops the background loop.
func (p *Prefetcher) Stop() {
	p.batch.Stop()
}

// Enqueue queues a txid for prefetching.
func (p *Prefetcher) Enqueue(ctx context.Context, txid chainhash.Hash) error {
	return p.batch.Add(ctx, txid)
}

// Flush requests an immediate flush of buffered ids.
func (p *Prefetcher) Flush() {
	p.batch.Flush()
}

// warm resolves one flushed batch. Unknown transactions are skipped; any
// other failure aborts the batch and is reported through the batcher's log.
func (p *Prefetcher) warm(ctx context.Context, txids []chainhash.Hash) error {
	for _, txid := range txids {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := p.source.GetTransaction(ctx, txid); err != nil {
			if chain.IsNotFound(err) {
				p.logger.Debug("prefetch skipped unknown transaction", zap.String("txid", txid.String()))
				continue
			}
			return err
		}
	}
	return nil
}
