package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/evmscope/evmscope-backend/internal/metrics"
	"github.com/evmscope/evmscope-backend/internal/model"
	"github.com/evmscope/evmscope-backend/internal/repository/clickhouse"
	"github.com/evmscope/evmscope-backend/internal/transport"
	"github.com/evmscope/evmscope-backend/internal/verify"
)

type config struct {
	Addr          string        `long:"addr" env:"API_GATEWAY_ADDR" description:"listen address" default:":8000"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"API_GATEWAY_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Network       model.Network `long:"network" env:"API_GATEWAY_NETWORK" description:"network name" required:"true"`
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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("api gateway failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}

	verifier, err := verify.NewService(repo, logger.Named("verify"))
	if err != nil {
		return fmt.Errorf("init verify service: %w", err)
	}

	handler := transport.NewExplorerHandler(
		cfg.Network,
		repo,
		storeStatus{store: repo, network: cfg.Network},
		verifier,
		logger.Named("explorer"),
	)

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// storeStatus reports ingestion progress as visible through the store. The
// gateway runs apart from the ingester, so the stored watermark is the best
// signal it has.
type storeStatus struct {
	store   *clickhouse.Repository
	network model.Network
}

func (s storeStatus) LastProcessedBlock() int64 {
	number, err := s.store.MaxContiguousBlockNumber(context.Background(), s.network)
	if err != nil {
		return -1
	}
	return number
}

func (s storeStatus) IsRunning() bool {
	_, err := s.store.LatestBlock(context.Background(), s.network)
	return err == nil
}
