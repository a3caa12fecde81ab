package chain

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/pathfinder-backend/internal/model"
	"github.com/goodnatureofminers/pathfinder-backend/pkg/workerpool"
)

// DefaultBatchWorkers bounds the concurrency used when a backend without
// native batch support resolves a batch through single-item calls.
const DefaultBatchWorkers = 4

// resolveBatch fans single-item lookups over a worker pool while preserving
// input order. A NotFound from fetch becomes a nil element instead of failing
// the batch; any other failure aborts the whole call.
func resolveBatch[K any](
	ctx context.Context,
	workers int,
	items []K,
	fetch func(context.Context, K) (*model.Transaction, error),
) ([]*model.Transaction, error) {
	return workerpool.Map(ctx, workers, items, func(ctx context.Context, item K) (*model.Transaction, error) {
		tx, err := fetch(ctx, item)
		if err != nil {
			if IsNotFound(err) {
				return nil, nil
			}
			return nil, err
		}
		return tx, nil
	})
}

// ResolveTransactionsBatch implements GetTransactionsBatch semantics on top of
// a single-transaction fetch.
func ResolveTransactionsBatch(
	ctx context.Context,
	workers int,
	txids []chainhash.Hash,
	fetch func(context.Context, chainhash.Hash) (*model.Transaction, error),
) ([]*model.Transaction, error) {
	return resolveBatch(ctx, workers, txids, fetch)
}

// ResolveSpendsBatch implements GetSpendingTransactionsBatch semantics on top
// of a single-outpoint fetch.
func ResolveSpendsBatch(
	ctx context.Context,
	workers int,
	outpoints []model.OutPoint,
	fetch func(context.Context, model.OutPoint) (*model.Transaction, error),
) ([]*model.Transaction, error) {
	return resolveBatch(ctx, workers, outpoints, fetch)
}
