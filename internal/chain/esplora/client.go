// Package esplora implements the chain.DataSource contract against an
// Esplora-compatible REST explorer (mempool.space, blockstream.info).
package esplora

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/pathfinder-backend/internal/chain"
	"github.com/goodnatureofminers/pathfinder-backend/internal/chain/bitcoin"
	"github.com/goodnatureofminers/pathfinder-backend/internal/model"
)

const (
	// defaultRequestsPerSecond paces outbound requests at one per 100ms.
	// Public esplora instances throttle aggressively; the delay is applied
	// before every request, not in response to observed throttling.
	defaultRequestsPerSecond = 10
	defaultHTTPTimeout       = 30 * time.Second
	maxErrorBodyBytes        = 4 << 10
)

// Client resolves chain data through an Esplora REST surface. It never
// retries; failures surface immediately with their taxonomy kind.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	limiter      ratelimit.Limiter
	converter    *bitcoin.Converter
	batchWorkers int
}

// NewClient constructs an esplora-backed data source. Trailing slashes on the
// base URL are trimmed. A nil httpClient gets a default with a timeout; an rps
// of zero or less falls back to the default pacing.
func NewClient(baseURL string, httpClient *http.Client, network model.Network, rps int) (*Client, error) {
	converter, err := bitcoin.NewConverter(network)
	if err != nil {
		return nil, err
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   httpClient,
		limiter:      ratelimit.New(rps),
		converter:    converter,
		batchWorkers: chain.DefaultBatchWorkers,
	}, nil
}

// GetTransaction fetches the raw transaction encoding from /tx/{txid}/hex.
func (c *Client) GetTransaction(ctx context.Context, txid chainhash.Hash) (*model.Transaction, error) {
	url := fmt.Sprintf("%s/tx/%s/hex", c.baseURL, txid)
	body, err := c.get(ctx, url, fmt.Sprintf("transaction %s", txid))
	if err != nil {
		return nil, err
	}

	tx, err := c.converter.FromHex(string(body))
	if err != nil {
		return nil, chain.NewError(chain.KindDataInconsistency,
			fmt.Sprintf("transaction %s", txid), err)
	}
	return tx, nil
}

// GetSpendingTransaction resolves a spend in two steps: a lightweight
// outspend probe, then a full fetch of the reported spending transaction.
func (c *Client) GetSpendingTransaction(ctx context.Context, outpoint model.OutPoint) (*model.Transaction, error) {
	url := fmt.Sprintf("%s/tx/%s/outspend/%d", c.baseURL, outpoint.TxID, outpoint.Index)
	body, err := c.get(ctx, url, fmt.Sprintf("transaction %s", outpoint.TxID))
	if err != nil {
		return nil, err
	}

	var outspend outspendResponse
	if err := json.Unmarshal(body, &outspend); err != nil {
		return nil, chain.NewError(chain.KindDataInconsistency,
			fmt.Sprintf("decode outspend for %s", outpoint), err)
	}
	if !outspend.Spent {
		return nil, nil
	}
	if outspend.TxID == "" {
		return nil, chain.NewErrorf(chain.KindDataInconsistency,
			"outspend for %s marked spent but no spending txid returned", outpoint)
	}

	spender, err := chainhash.NewHashFromStr(outspend.TxID)
	if err != nil {
		return nil, chain.NewError(chain.KindDataInconsistency,
			fmt.Sprintf("spending txid for %s", outpoint), err)
	}
	return c.GetTransaction(ctx, *spender)
}

// GetAddressTransactions lists transactions touching an address, in the order
// the backend serves them (most-recent-first on esplora), then fetches each
// one in full.
func (c *Client) GetAddressTransactions(ctx context.Context, address string) ([]*model.Transaction, error) {
	url := fmt.Sprintf("%s/address/%s/txs", c.baseURL, address)
	body, err := c.get(ctx, url, fmt.Sprintf("address %s", address))
	if err != nil {
		return nil, err
	}

	var entries []addressTxEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, chain.NewError(chain.KindDataInconsistency,
			fmt.Sprintf("decode address history for %s", address), err)
	}

	txs := make([]*model.Transaction, 0, len(entries))
	for _, entry := range entries {
		txid, err := chainhash.NewHashFromStr(entry.TxID)
		if err != nil {
			return nil, chain.NewError(chain.KindDataInconsistency,
				fmt.Sprintf("txid in address history for %s", address), err)
		}
		tx, err := c.GetTransaction(ctx, *txid)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// GetTransactionsBatch resolves txids through sequential single-item calls
// spread over a bounded worker pool; pacing still applies per request.
func (c *Client) GetTransactionsBatch(ctx context.Context, txids []chainhash.Hash) ([]*model.Transaction, error) {
	return chain.ResolveTransactionsBatch(ctx, c.batchWorkers, txids, c.GetTransaction)
}

// GetSpendingTransactionsBatch is the batched form of GetSpendingTransaction.
func (c *Client) GetSpendingTransactionsBatch(ctx context.Context, outpoints []model.OutPoint) ([]*model.Transaction, error) {
	return chain.ResolveSpendsBatch(ctx, c.batchWorkers, outpoints, c.GetSpendingTransaction)
}

// get paces, issues, and classifies one request, returning the response body.
// The subject names the entity a 404 refers to.
func (c *Client) get(ctx context.Context, url, subject string) ([]byte, error) {
	c.limiter.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, chain.NewError(chain.KindInvalidInput, "build request for "+url, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, chain.NewError(chain.KindNetworkFailure, url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := c.statusError(resp, url, subject); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, chain.NewError(chain.KindNetworkFailure, "read body for "+url, err)
	}
	return body, nil
}

// statusError maps non-success statuses into the taxonomy: 404 means the
// subject does not exist, 400 a malformed query, 429 throttling; everything
// else is a transport-level failure carrying status and body.
func (c *Client) statusError(resp *http.Response, url, subject string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	switch resp.StatusCode {
	case http.StatusNotFound:
		return chain.NewErrorf(chain.KindNotFound, "%s not found", subject)
	case http.StatusBadRequest:
		return chain.NewErrorf(chain.KindInvalidInput, "%s rejected: %s", url, body)
	case http.StatusTooManyRequests:
		return chain.NewErrorf(chain.KindRateLimited, "HTTP 429 for %s", url)
	default:
		return chain.NewErrorf(chain.KindNetworkFailure, "HTTP %d for %s: %s", resp.StatusCode, url, body)
	}
}
