// Package bitcoinrpc implements the chain.DataSource contract against a
// Bitcoin full node's authenticated JSON-RPC interface.
package bitcoinrpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/pathfinder-backend/internal/chain"
	"github.com/goodnatureofminers/pathfinder-backend/internal/chain/bitcoin"
	"github.com/goodnatureofminers/pathfinder-backend/internal/model"
)

// addressPageSize caps the number of entries requested from
// searchrawtransactions per address lookup.
const addressPageSize = 100

// Client resolves chain data through a full node. It never retries; the first
// failure surfaces immediately with its taxonomy kind, leaving retry policy
// to the caller.
type Client struct {
	rpc          RawRequester
	converter    *bitcoin.Converter
	batchWorkers int
}

// NewClient constructs a full-node backed data source for the given network.
func NewClient(rpc RawRequester, network model.Network) (*Client, error) {
	converter, err := bitcoin.NewConverter(network)
	if err != nil {
		return nil, err
	}
	return &Client{
		rpc:          rpc,
		converter:    converter,
		batchWorkers: chain.DefaultBatchWorkers,
	}, nil
}

// GetTransaction fetches the raw transaction via getrawtransaction and decodes
// its hex payload into the domain model.
func (c *Client) GetTransaction(ctx context.Context, txid chainhash.Hash) (*model.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := c.call("getrawtransaction", txid.String(), 1)
	if err != nil {
		return nil, err
	}

	var result struct {
		Hex string `json:"hex"`
	}
	if err := json.Unmarshal(res, &result); err != nil {
		return nil, chain.NewError(chain.KindDataInconsistency,
			fmt.Sprintf("decode getrawtransaction result for %s", txid), err)
	}
	if result.Hex == "" {
		return nil, chain.NewErrorf(chain.KindDataInconsistency,
			"getrawtransaction result for %s is missing hex", txid)
	}

	tx, err := c.converter.FromHex(result.Hex)
	if err != nil {
		return nil, chain.NewError(chain.KindDataInconsistency,
			fmt.Sprintf("transaction %s", txid), err)
	}
	return tx, nil
}

// GetSpendingTransaction resolves the spender of an outpoint. The
// gettxspendingprevout RPC scans only the mempool, so a missing spendingtxid
// does not mean unspent: the UTXO set (gettxout) decides that. An output that
// is gone from the UTXO set without a mempool spender was consumed by a
// confirmed transaction, which a plain full node cannot walk back to; that
// case fails rather than reading as unspent.
func (c *Client) GetSpendingTransaction(ctx context.Context, outpoint model.OutPoint) (*model.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type prevout struct {
		Txid string `json:"txid"`
		Vout uint32 `json:"vout"`
	}
	res, err := c.call("gettxspendingprevout", []prevout{{
		Txid: outpoint.TxID.String(),
		Vout: outpoint.Index,
	}})
	if err != nil {
		return nil, err
	}

	var results []struct {
		SpendingTxid string `json:"spendingtxid"`
	}
	if err := json.Unmarshal(res, &results); err != nil {
		return nil, chain.NewError(chain.KindDataInconsistency,
			fmt.Sprintf("decode gettxspendingprevout result for %s", outpoint), err)
	}
	if len(results) != 1 {
		return nil, chain.NewErrorf(chain.KindDataInconsistency,
			"gettxspendingprevout returned %d entries for %s, want 1", len(results), outpoint)
	}
	if results[0].SpendingTxid != "" {
		spender, err := chainhash.NewHashFromStr(results[0].SpendingTxid)
		if err != nil {
			return nil, chain.NewError(chain.KindDataInconsistency,
				fmt.Sprintf("spending txid for %s", outpoint), err)
		}
		return c.GetTransaction(ctx, *spender)
	}

	// No mempool spender. gettxout returns null both for spent outputs and
	// for outpoints that never existed, so a null still needs the originating
	// transaction checked before it can be classified.
	utxo, err := c.callNullable("gettxout", outpoint.TxID.String(), outpoint.Index, true)
	if err != nil {
		return nil, err
	}
	if len(utxo) != 0 && string(utxo) != "null" {
		return nil, nil
	}

	origin, err := c.GetTransaction(ctx, outpoint.TxID)
	if err != nil {
		return nil, err
	}
	if uint64(outpoint.Index) >= uint64(len(origin.Outputs)) {
		return nil, chain.NewErrorf(chain.KindNotFound,
			"transaction %s has no output %d", outpoint.TxID, outpoint.Index)
	}
	return nil, chain.NewErrorf(chain.KindOther,
		"output %s was spent in a confirmed transaction; resolving the spender needs a spend-indexing backend", outpoint)
}

// GetAddressTransactions lists transactions touching an address via
// searchrawtransactions. Requires a node with the address index enabled.
func (c *Client) GetAddressTransactions(ctx context.Context, address string) ([]*model.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := c.call("searchrawtransactions", address, 0, 0, addressPageSize)
	if err != nil {
		return nil, err
	}

	var rawTxs []string
	if err := json.Unmarshal(res, &rawTxs); err != nil {
		return nil, chain.NewError(chain.KindDataInconsistency,
			fmt.Sprintf("decode searchrawtransactions result for %s", address), err)
	}

	txs := make([]*model.Transaction, 0, len(rawTxs))
	for i, rawHex := range rawTxs {
		tx, err := c.converter.FromHex(rawHex)
		if err != nil {
			return nil, chain.NewError(chain.KindDataInconsistency,
				fmt.Sprintf("transaction %d for address %s", i, address), err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// GetTransactionsBatch resolves txids through sequential single-item calls
// spread over a bounded worker pool, preserving input order.
func (c *Client) GetTransactionsBatch(ctx context.Context, txids []chainhash.Hash) ([]*model.Transaction, error) {
	return chain.ResolveTransactionsBatch(ctx, c.batchWorkers, txids, c.GetTransaction)
}

// GetSpendingTransactionsBatch is the batched form of GetSpendingTransaction.
func (c *Client) GetSpendingTransactionsBatch(ctx context.Context, outpoints []model.OutPoint) ([]*model.Transaction, error) {
	return chain.ResolveSpendsBatch(ctx, c.batchWorkers, outpoints, c.GetSpendingTransaction)
}

// call marshals positional params and issues one RPC. A null result with no
// error object is a backend contract violation.
func (c *Client) call(method string, params ...any) (json.RawMessage, error) {
	res, err := c.callNullable(method, params...)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 || string(res) == "null" {
		return nil, chain.NewErrorf(chain.KindDataInconsistency,
			"%s returned neither result nor error", method)
	}
	return res, nil
}

// callNullable is call for methods where a null result is a valid answer
// (gettxout reports a spent or unknown output as null).
func (c *Client) callNullable(method string, params ...any) (json.RawMessage, error) {
	rawParams := make([]json.RawMessage, 0, len(params))
	for _, param := range params {
		encoded, err := json.Marshal(param)
		if err != nil {
			return nil, chain.NewError(chain.KindInvalidInput,
				fmt.Sprintf("marshal %s params", method), err)
		}
		rawParams = append(rawParams, encoded)
	}

	res, err := c.rpc.RawRequest(method, rawParams)
	if err != nil {
		return nil, mapRPCError(method, err)
	}
	return res, nil
}
