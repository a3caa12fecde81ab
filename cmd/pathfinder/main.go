// Package main is the pathfinder CLI: it wires a blockchain backend behind
// the caching decorator and resolves one query from the flags.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/pathfinder-backend/internal/chain"
	"github.com/goodnatureofminers/pathfinder-backend/internal/chain/bitcoinrpc"
	"github.com/goodnatureofminers/pathfinder-backend/internal/chain/cache"
	"github.com/goodnatureofminers/pathfinder-backend/internal/chain/esplora"
	"github.com/goodnatureofminers/pathfinder-backend/internal/chain/observed"
	"github.com/goodnatureofminers/pathfinder-backend/internal/metrics"
	"github.com/goodnatureofminers/pathfinder-backend/internal/model"
	"github.com/goodnatureofminers/pathfinder-backend/internal/service"
)

type config struct {
	Backend     string        `long:"backend" env:"PATHFINDER_BACKEND" description:"data source backend (esplora or rpc)" default:"esplora"`
	Network     model.Network `long:"network" env:"PATHFINDER_NETWORK" description:"bitcoin network" default:"mainnet"`
	EsploraURL  string        `long:"esplora-url" env:"PATHFINDER_ESPLORA_URL" description:"esplora base URL" default:"https://mempool.space/api"`
	EsploraRPS  int           `long:"esplora-rps" env:"PATHFINDER_ESPLORA_RPS" description:"outbound esplora requests per second" default:"10"`
	RPCURL      string        `long:"rpc-url" env:"PATHFINDER_RPC_URL" description:"bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser     string        `long:"rpc-user" env:"PATHFINDER_RPC_USER" description:"bitcoin RPC username"`
	RPCPassword string        `long:"rpc-password" env:"PATHFINDER_RPC_PASSWORD" description:"bitcoin RPC password"`
	HTTPTimeout time.Duration `long:"http-timeout" env:"PATHFINDER_HTTP_TIMEOUT" description:"HTTP timeout for backend requests" default:"30s"`
	CacheTTL    time.Duration `long:"cache-ttl" env:"PATHFINDER_CACHE_TTL" description:"TTL for cached lookups" default:"5m"`
	MetricsAddr string        `long:"metrics-addr" env:"PATHFINDER_METRICS_ADDR" description:"address for metrics server" default:":2112"`

	TxID          string        `long:"txid" description:"resolve a transaction by id"`
	OutPoint      string        `long:"outpoint" description:"resolve the spender of txid:vout"`
	Address       string        `long:"address" description:"list transactions touching an address"`
	Watch         bool          `long:"watch" description:"with --outpoint, poll until the output is spent"`
	WatchInterval time.Duration `long:"watch-interval" description:"poll interval for --watch" default:"30s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("pathfinder failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	backend, cleanup, err := newBackend(cfg)
	if err != nil {
		return fmt.Errorf("init %s backend: %w", cfg.Backend, err)
	}
	defer cleanup()

	src := cache.NewSource(
		observed.NewSource(backend, metrics.NewDataSource(cfg.Backend, cfg.Network)),
		cfg.CacheTTL,
		metrics.NewCache(),
	)

	switch {
	case cfg.TxID != "":
		return resolveTransaction(ctx, src, cfg.TxID, logger)
	case cfg.OutPoint != "":
		return resolveSpend(ctx, src, cfg, logger)
	case cfg.Address != "":
		return resolveAddress(ctx, src, cfg.Address, logger)
	default:
		return errors.New("one of --txid, --outpoint or --address is required")
	}
}

func resolveTransaction(ctx context.Context, src chain.DataSource, rawTxID string, logger *zap.Logger) error {
	txid, err := chainhash.NewHashFromStr(rawTxID)
	if err != nil {
		return fmt.Errorf("parse txid: %w", err)
	}

	tx, err := src.GetTransaction(ctx, *txid)
	if err != nil {
		return err
	}
	logger.Info("resolved transaction",
		zap.String("txid", tx.TxID.String()),
		zap.Int("inputs", len(tx.Inputs)),
		zap.Int("outputs", len(tx.Outputs)),
		zap.Uint64("total_output_sats", tx.TotalOutputValue()))
	return nil
}

func resolveSpend(ctx context.Context, src chain.DataSource, cfg config, logger *zap.Logger) error {
	outpoint, err := parseOutPoint(cfg.OutPoint)
	if err != nil {
		return err
	}

	var tx *model.Transaction
	if cfg.Watch {
		watcher := service.NewSpendWatcher(src, cfg.WatchInterval, logger)
		tx, err = watcher.Wait(ctx, outpoint)
	} else {
		tx, err = src.GetSpendingTransaction(ctx, outpoint)
	}
	if err != nil {
		return err
	}

	if tx == nil {
		logger.Info("output is unspent", zap.String("outpoint", outpoint.String()))
		return nil
	}
	logger.Info("output spent",
		zap.String("outpoint", outpoint.String()),
		zap.String("spending_txid", tx.TxID.String()))
	return nil
}

func resolveAddress(ctx context.Context, src chain.DataSource, address string, logger *zap.Logger) error {
	txs, err := src.GetAddressTransactions(ctx, address)
	if err != nil {
		return err
	}

	logger.Info("resolved address history",
		zap.String("address", address),
		zap.Int("transactions", len(txs)))
	for _, tx := range txs {
		logger.Info("address transaction",
			zap.String("txid", tx.TxID.String()),
			zap.Uint64("total_output_sats", tx.TotalOutputValue()))
	}
	return nil
}

func newBackend(cfg config) (chain.DataSource, func(), error) {
	switch cfg.Backend {
	case "esplora":
		httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
		client, err := esplora.NewClient(cfg.EsploraURL, httpClient, cfg.Network, cfg.EsploraRPS)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil

	case "rpc":
		rpc, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
		if err != nil {
			return nil, nil, err
		}
		client, err := bitcoinrpc.NewClient(rpc, cfg.Network)
		if err != nil {
			rpc.Shutdown()
			return nil, nil, err
		}
		cleanup := func() {
			rpc.Shutdown()
			rpc.WaitForShutdown()
		}
		return client, cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q, use esplora or rpc", cfg.Backend)
	}
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	connCfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	return rpcclient.New(connCfg, nil)
}

func parseOutPoint(raw string) (model.OutPoint, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return model.OutPoint{}, fmt.Errorf("outpoint %q not in txid:vout form", raw)
	}
	txid, err := chainhash.NewHashFromStr(parts[0])
	if err != nil {
		return model.OutPoint{}, fmt.Errorf("parse outpoint txid: %w", err)
	}
	vout, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return model.OutPoint{}, fmt.Errorf("parse outpoint index: %w", err)
	}
	return model.NewOutPoint(*txid, uint32(vout)), nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
