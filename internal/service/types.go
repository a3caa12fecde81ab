// Package service contains trace-support services built on the data source
// contract: cache warming ahead of a trace and spend polling.
package service

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/pathfinder-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// TransactionFetcher is the slice of the data source contract the
	// prefetcher needs.
	TransactionFetcher interface {
		GetTransaction(ctx context.Context, txid chainhash.Hash) (*model.Transaction, error)
	}

	// SpendResolver is the slice of the data source contract the spend
	// watcher needs.
	SpendResolver interface {
		GetSpendingTransaction(ctx context.Context, outpoint model.OutPoint) (*model.Transaction, error)
	}
)
