// Command ltm-indexer follows a lock-to-mint lineage and stores its redemptions in ClickHouse.
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/lockmint/internal/ltm/bitcoin"
	"github.com/goodnatureofminers/lockmint/internal/ltm/bsv20"
	"github.com/goodnatureofminers/lockmint/internal/ltm/covenant"
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
	"github.com/goodnatureofminers/lockmint/internal/ltm/repository/clickhouse"
	"github.com/goodnatureofminers/lockmint/internal/ltm/service/indexer"
	"github.com/goodnatureofminers/lockmint/internal/metrics"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"LTM_INDEXER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Network        model.Network `long:"network" env:"LTM_INDEXER_NETWORK" description:"network name" required:"true"`
	GenesisTxID    string        `long:"genesis-txid" env:"LTM_INDEXER_GENESIS_TXID" description:"deployment transaction id" required:"true"`
	GenesisVout    uint32        `long:"genesis-vout" env:"LTM_INDEXER_GENESIS_VOUT" description:"index of the genesis covenant output"`
	StartHeight    uint64        `long:"start-height" env:"LTM_INDEXER_START_HEIGHT" description:"height of the block holding the deployment transaction" required:"true"`
	Depth          uint64        `long:"depth" env:"LTM_INDEXER_DEPTH" description:"blocks to stay behind the tip" default:"1"`
	WorkerCount    int           `long:"worker-count" env:"LTM_INDEXER_WORKER_COUNT" description:"parallel block fetches" default:"8"`
	BlocksPerRound uint64        `long:"blocks-per-round" env:"LTM_INDEXER_BLOCKS_PER_ROUND" description:"blocks scanned per round" default:"100"`
	Variant        string        `long:"variant" env:"LTM_INDEXER_VARIANT" description:"covenant variant" choice:"narrow" choice:"wide" default:"narrow"`
	WidePrefix     string        `long:"wide-prefix" env:"LTM_INDEXER_WIDE_PREFIX" description:"hex lock script bytes before the recipient hash (wide variant)"`
	WideSuffix     string        `long:"wide-suffix" env:"LTM_INDEXER_WIDE_SUFFIX" description:"hex lock script bytes after the unlock height (wide variant)"`
	CovenantCode   string        `long:"covenant-code" env:"LTM_INDEXER_COVENANT_CODE" description:"hex compiled covenant code carried by state outputs" required:"true"`
	RPCURL         string        `long:"rpc-url" env:"LTM_INDEXER_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser        string        `long:"rpc-user" env:"LTM_INDEXER_RPC_USER" description:"node RPC username"`
	RPCPassword    string        `long:"rpc-password" env:"LTM_INDEXER_RPC_PASSWORD" description:"node RPC password"`
	MetricsAddr    string        `long:"metrics-addr" env:"LTM_INDEXER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
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

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("lineage indexer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	assembler, codec, err := newAssembler(cfg)
	if err != nil {
		return err
	}
	hash, err := chainhash.NewHashFromStr(cfg.GenesisTxID)
	if err != nil {
		return fmt.Errorf("genesis txid: %w", err)
	}
	genesis := wire.OutPoint{Hash: *hash, Index: cfg.GenesisVout}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()

	client, err := bitcoin.Dial(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		client.Shutdown()
		client.WaitForShutdown()
	}()
	rpc := bitcoin.NewRPCClient(client, metrics.NewRPCClient(model.BSV, cfg.Network))

	svc, err := indexer.NewService(
		indexer.Config{
			Coin:           model.BSV,
			Network:        cfg.Network,
			Genesis:        genesis,
			StartHeight:    cfg.StartHeight,
			Depth:          cfg.Depth,
			WorkerCount:    cfg.WorkerCount,
			BlocksPerRound: cfg.BlocksPerRound,
		},
		bitcoin.NewBlockSource(rpc),
		bitcoin.NewUTXOReader(rpc, codec),
		repo,
		assembler,
		metrics.NewIndexer(covenant.TokenID(genesis)),
		logger,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func newAssembler(cfg config) (*covenant.Assembler, *bsv20.Codec, error) {
	code, err := hex.DecodeString(cfg.CovenantCode)
	if err != nil {
		return nil, nil, fmt.Errorf("covenant code: %w", err)
	}
	var wide *covenant.Template
	if cfg.Variant == "wide" {
		prefix, err := hex.DecodeString(cfg.WidePrefix)
		if err != nil {
			return nil, nil, fmt.Errorf("wide prefix: %w", err)
		}
		suffix, err := hex.DecodeString(cfg.WideSuffix)
		if err != nil {
			return nil, nil, fmt.Errorf("wide suffix: %w", err)
		}
		if len(prefix) == 0 || len(suffix) == 0 {
			return nil, nil, errors.New("wide variant needs --wide-prefix and --wide-suffix")
		}
		wide = &covenant.Template{Version: "custom", Prefix: prefix, Suffix: suffix}
	}
	variant, err := covenant.VariantByName(cfg.Variant, wide)
	if err != nil {
		return nil, nil, err
	}
	codec := bsv20.NewCodec(code)
	return covenant.NewAssembler(variant, codec, codec), codec, nil
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
