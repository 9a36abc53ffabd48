package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/node"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/pow"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/service/follower"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/service/validator"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/signals"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/spork"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/txcheck"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/txindex"
)

type config struct {
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"VALIDATOR_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Network       model.Network `long:"network" env:"VALIDATOR_NETWORK" description:"network name (main, test, devnet, regtest)" required:"true"`
	RPCURL        string        `long:"rpc-url" env:"VALIDATOR_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:9998"`
	RPCUser       string        `long:"rpc-user" env:"VALIDATOR_RPC_USER" description:"node RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"VALIDATOR_RPC_PASSWORD" description:"node RPC password"`
	ZMQAddr       string        `long:"zmq-addr" env:"VALIDATOR_ZMQ_ADDR" description:"node zmq hashblock endpoint"`
	TxIndexPath   string        `long:"txindex-path" env:"VALIDATOR_TXINDEX_PATH" description:"transaction index file" default:"txindex.db"`
	StartHeight   uint64        `long:"start-height" env:"VALIDATOR_START_HEIGHT" description:"first height to validate when nothing is stored"`
	Sporks        []string      `long:"spork" env:"VALIDATOR_SPORKS" env-delim:"," description:"spork override NAME=VALUE, repeatable"`
	FlushSize     int           `long:"flush-size" env:"VALIDATOR_FLUSH_SIZE" description:"rows per ClickHouse insert" default:"1000"`
	FlushInterval time.Duration `long:"flush-interval" env:"VALIDATOR_FLUSH_INTERVAL" description:"max delay before buffered rows are inserted" default:"1s"`
	FlushRPS      int           `long:"flush-rps" env:"VALIDATOR_FLUSH_RPS" description:"max inserts per second" default:"10"`
	MetricsAddr   string        `long:"metrics-addr" env:"VALIDATOR_METRICS_ADDR" description:"address for metrics server" default:":2112"`
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

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("validator failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	params, err := chaincfg.ParamsForNetwork(cfg.Network)
	if err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}
	logger = logger.With(zap.String("network", string(params.Name)))

	sporks := spork.NewManager()
	if err := sporks.ApplyOverrides(cfg.Sporks); err != nil {
		return fmt.Errorf("apply spork overrides: %w", err)
	}

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

	writer, err := clickhouse.NewBatchWriter(repo, clickhouse.WriterConfig{
		FlushSize:     cfg.FlushSize,
		FlushInterval: cfg.FlushInterval,
		RPS:           cfg.FlushRPS,
	}, logger.Named("writer"))
	if err != nil {
		return err
	}
	writer.Start(context.WithoutCancel(ctx))
	defer writer.Stop()

	index, err := txindex.Open(cfg.TxIndexPath, logger)
	if err != nil {
		return fmt.Errorf("open txindex: %w", err)
	}
	defer func() {
		if err := index.Close(); err != nil {
			logger.Warn("close txindex", zap.Error(err))
		}
	}()

	dispatcher := signals.NewDispatcher(logger)
	dispatcher.Start()
	defer dispatcher.FlushQueue()
	if err := index.Subscribe(dispatcher); err != nil {
		return fmt.Errorf("subscribe txindex: %w", err)
	}

	validatorSvc, err := validator.NewService(
		params,
		chain.NewIndex(),
		pow.NewEngine(params, logger),
		txcheck.NewChecker(params, sporks, logger),
		dispatcher,
		writer,
		metrics.NewValidator(params.Name),
		logger.Named("validator"),
	)
	if err != nil {
		return err
	}

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init node rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	source := node.NewBlockSource(node.NewObservedClient(rpcClient, metrics.NewRPCClient(params.Name)))

	blockSignal, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		return fmt.Errorf("start block signal: %w", err)
	}

	svc, err := follower.NewService(
		source,
		validatorSvc,
		repo,
		metrics.NewFollower(params.Name),
		params,
		cfg.StartHeight,
		logger.Named("follower"),
		blockSignal,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
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

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
