// Package observed wraps any chain.DataSource with metrics instrumentation.
package observed

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/pathfinder-backend/internal/chain"
	"github.com/goodnatureofminers/pathfinder-backend/internal/model"
)

type (
	// Metrics records outcomes and durations of data source operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Source decorates a chain.DataSource with per-operation metrics, forwarding
// every call and error untouched.
type Source struct {
	inner   chain.DataSource
	metrics Metrics
}

// NewSource constructs an instrumented data source.
func NewSource(inner chain.DataSource, metrics Metrics) *Source {
	return &Source{
		inner:   inner,
		metrics: metrics,
	}
}

func (s *Source) GetTransaction(ctx context.Context, txid chainhash.Hash) (tx *model.Transaction, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("get_transaction", err, started)
	}()
	return s.inner.GetTransaction(ctx, txid)
}

func (s *Source) GetSpendingTransaction(ctx context.Context, outpoint model.OutPoint) (tx *model.Transaction, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("get_spending_transaction", err, started)
	}()
	return s.inner.GetSpendingTransaction(ctx, outpoint)
}

func (s *Source) GetAddressTransactions(ctx context.Context, address string) (txs []*model.Transaction, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("get_address_transactions", err, started)
	}()
	return s.inner.GetAddressTransactions(ctx, address)
}

func (s *Source) GetTransactionsBatch(ctx context.Context, txids []chainhash.Hash) (txs []*model.Transaction, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("get_transactions_batch", err, started)
	}()
	return s.inner.GetTransactionsBatch(ctx, txids)
}

func (s *Source) GetSpendingTransactionsBatch(ctx context.Context, outpoints []model.OutPoint) (txs []*model.Transaction, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("get_spending_transactions_batch", err, started)
	}()
	return s.inner.GetSpendingTransactionsBatch(ctx, outpoints)
}
