package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/spork"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/txcheck"
)

var config struct {
	Addr          string        `long:"addr" env:"API_GATEWAY_ADDR" description:"addr" default:":8000"`
	RestAddr      string        `long:"rest-addr" env:"API_GATEWAY_REST_ADDR" description:"rest addr" default:":8001"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"API_GATEWAY_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Network       model.Network `long:"network" env:"API_GATEWAY_NETWORK" description:"network name (main, test, devnet, regtest)" required:"true"`
	Sporks        []string      `long:"spork" env:"API_GATEWAY_SPORKS" env-delim:"," description:"spork override NAME=VALUE, repeatable"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	params, err := chaincfg.ParamsForNetwork(config.Network)
	if err != nil {
		logger.Fatal("Unknown network", zap.Error(err))
	}
	sporks := spork.NewManager()
	if err := sporks.ApplyOverrides(config.Sporks); err != nil {
		logger.Fatal("Apply spork overrides", zap.Error(err))
	}

	repo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		logger.Fatal("Init repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("Close repository", zap.Error(err))
		}
	}()

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", config.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	conn, err := grpc.NewClient(config.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		logger.Fatal("Dial gRPC server", zap.Error(err))
	}
	defer func() {
		_ = conn.Close()
	}()

	handler, err := transport.NewHandler(
		params,
		repo,
		sporks,
		txcheck.NewChecker(params, sporks, logger.Named("txcheck")),
		healthpb.NewHealthClient(conn),
		logger.Named("transport"),
	)
	if err != nil {
		logger.Fatal("Init handler", zap.Error(err))
	}

	if err := serveHTTP(ctx, handler, logger); err != nil {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}

func serveHTTP(ctx context.Context, handler *transport.Handler, logger *zap.Logger) error {
	gw := gwruntime.NewServeMux()
	if err := handler.Register(gw); err != nil {
		return fmt.Errorf("register routes: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
