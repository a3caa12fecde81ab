// Package chain defines the capability contract and error taxonomy shared by
// every blockchain backend and decorator.
package chain

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/pathfinder-backend/internal/model"
)

// DataSource resolves transactions and UTXO spends from some backend. Backends
// (full node RPC, esplora REST) and decorators (cache, metrics) all implement
// it, so decorators stack over any other implementer.
type DataSource interface {
	// GetTransaction fetches a transaction by id. Fails with NotFound when the
	// backend's view of the chain has no such transaction.
	GetTransaction(ctx context.Context, txid chainhash.Hash) (*model.Transaction, error)

	// GetSpendingTransaction resolves the transaction whose input consumes the
	// given outpoint. Returns nil (and no error) while the output is unspent.
	// Fails with NotFound when the outpoint's originating transaction does not
	// exist.
	GetSpendingTransaction(ctx context.Context, outpoint model.OutPoint) (*model.Transaction, error)

	// GetAddressTransactions lists all transactions touching an address.
	// Ordering is left to the backend.
	GetAddressTransactions(ctx context.Context, address string) ([]*model.Transaction, error)

	// GetTransactionsBatch resolves many txids. The result has the same length
	// and order as the input; a nil element marks a txid the backend could not
	// find. Only failures affecting the whole batch return an error.
	GetTransactionsBatch(ctx context.Context, txids []chainhash.Hash) ([]*model.Transaction, error)

	// GetSpendingTransactionsBatch is the batched form of
	// GetSpendingTransaction with the same partial-failure policy; a nil
	// element marks an unspent or unresolvable outpoint.
	GetSpendingTransactionsBatch(ctx context.Context, outpoints []model.OutPoint) ([]*model.Transaction, error)
}
