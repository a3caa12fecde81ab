// Package cache provides a TTL-based memoizing decorator for any
// chain.DataSource. Critical for performance when trace paths converge on the
// same transactions.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/pathfinder-backend/internal/chain"
	"github.com/goodnatureofminers/pathfinder-backend/internal/model"
)

type keyKind uint8

const (
	keyKindTransaction keyKind = iota + 1
	keyKindSpending
)

// key identifies one cached query. The kind tag is part of the identity, so a
// transaction lookup and a spending lookup over the same txid bytes never
// collide.
type key struct {
	kind keyKind
	txid chainhash.Hash
	vout uint32
}

func transactionKey(txid chainhash.Hash) key {
	return key{kind: keyKindTransaction, txid: txid}
}

func spendingKey(outpoint model.OutPoint) key {
	return key{kind: keyKindSpending, txid: outpoint.TxID, vout: outpoint.Index}
}

// entry holds a cloned transaction plus its insertion time. Entries are only
// created for found, spent results; staleness is judged lazily at read time
// and a stale entry is simply overwritten by the next fetch.
type entry struct {
	tx         *model.Transaction
	insertedAt time.Time
}

// Metrics records cache lookup outcomes.
type Metrics interface {
	ObserveLookup(operation string, hit bool)
}

type nopMetrics struct{}

func (nopMetrics) ObserveLookup(string, bool) {}

// Source wraps any chain.DataSource with TTL-based caching. A single RWMutex
// guards the map: lookups take the read lock, inserts the write lock, and no
// network call ever happens under either. Concurrent misses on the same key
// may each hit the wrapped source; the map converges to the most recently
// completed fetch.
type Source struct {
	inner   chain.DataSource
	ttl     time.Duration
	metrics Metrics
	now     func() time.Time

	mu      sync.RWMutex
	entries map[key]entry
}

// NewSource wraps inner with a uniform TTL. A nil metrics is allowed.
func NewSource(inner chain.DataSource, ttl time.Duration, metrics Metrics) *Source {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Source{
		inner:   inner,
		ttl:     ttl,
		metrics: metrics,
		now:     time.Now,
		entries: make(map[key]entry),
	}
}

// GetTransaction returns a cached copy when a fresh entry exists, otherwise
// fetches from the wrapped source and stores the result.
func (s *Source) GetTransaction(ctx context.Context, txid chainhash.Hash) (*model.Transaction, error) {
	k := transactionKey(txid)
	if tx, ok := s.lookup(k); ok {
		s.metrics.ObserveLookup("get_transaction", true)
		return tx, nil
	}
	s.metrics.ObserveLookup("get_transaction", false)

	tx, err := s.inner.GetTransaction(ctx, txid)
	if err != nil {
		return nil, err
	}
	s.store(k, tx)
	return tx, nil
}

// GetSpendingTransaction caches only resolved spends. An unspent result is
// re-queried on every call: unspent can flip to spent at any later block, and
// a memoized negative would be silently wrong forever.
func (s *Source) GetSpendingTransaction(ctx context.Context, outpoint model.OutPoint) (*model.Transaction, error) {
	k := spendingKey(outpoint)
	if tx, ok := s.lookup(k); ok {
		s.metrics.ObserveLookup("get_spending_transaction", true)
		return tx, nil
	}
	s.metrics.ObserveLookup("get_spending_transaction", false)

	tx, err := s.inner.GetSpendingTransaction(ctx, outpoint)
	if err != nil {
		return nil, err
	}
	if tx != nil {
		s.store(k, tx)
	}
	return tx, nil
}

// GetAddressTransactions is a pass-through; address histories are not cached.
func (s *Source) GetAddressTransactions(ctx context.Context, address string) ([]*model.Transaction, error) {
	return s.inner.GetAddressTransactions(ctx, address)
}

// GetTransactionsBatch is a pass-through.
func (s *Source) GetTransactionsBatch(ctx context.Context, txids []chainhash.Hash) ([]*model.Transaction, error) {
	return s.inner.GetTransactionsBatch(ctx, txids)
}

// GetSpendingTransactionsBatch is a pass-through.
func (s *Source) GetSpendingTransactionsBatch(ctx context.Context, outpoints []model.OutPoint) ([]*model.Transaction, error) {
	return s.inner.GetSpendingTransactionsBatch(ctx, outpoints)
}

func (s *Source) lookup(k key) (*model.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[k]
	if !ok || s.now().Sub(e.insertedAt) >= s.ttl {
		return nil, false
	}
	return e.tx.Clone(), true
}

func (s *Source) store(k key, tx *model.Transaction) {
	e := entry{tx: tx.Clone(), insertedAt: s.now()}

	s.mu.Lock()
	s.entries[k] = e
	s.mu.Unlock()
}
