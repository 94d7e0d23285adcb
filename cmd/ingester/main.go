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

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/evmscope/evmscope-backend/internal/chain"
	"github.com/evmscope/evmscope-backend/internal/metrics"
	"github.com/evmscope/evmscope-backend/internal/model"
	"github.com/evmscope/evmscope-backend/internal/repository/clickhouse"
	"github.com/evmscope/evmscope-backend/internal/service/pipeline"
)

type config struct {
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"INGESTER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Network         model.Network `long:"network" env:"INGESTER_NETWORK" description:"network name" required:"true"`
	RPCURL          string        `long:"rpc-url" env:"INGESTER_RPC_URL" description:"EVM node RPC URL" default:"ws://127.0.0.1:8546"`
	RPS             int           `long:"rps" env:"INGESTER_RPS" description:"node RPC rate limit" default:"50"`
	LivenessTimeout time.Duration `long:"liveness-timeout" env:"INGESTER_LIVENESS_TIMEOUT" description:"timeout of the node liveness probe" default:"10s"`
	RetryInterval   time.Duration `long:"retry-interval" env:"INGESTER_RETRY_INTERVAL" description:"backoff between attempts on a failed block" default:"5s"`
	ReceiptWorkers  int           `long:"receipt-workers" env:"INGESTER_RECEIPT_WORKERS" description:"concurrent receipt fetches per block" default:"8"`
	MetricsAddr     string        `long:"metrics-addr" env:"INGESTER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
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
		logger.Fatal("ingester failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}

	node, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("dial node: %w", err)
	}
	defer node.Close()

	backend := chain.NewRateLimitedBackend(
		chain.NewObservedBackend(node, metrics.NewRPCClient(cfg.Network)),
		cfg.RPS,
	)
	client, err := chain.NewClient(backend, cfg.LivenessTimeout)
	if err != nil {
		return fmt.Errorf("init chain client: %w", err)
	}

	svc, err := pipeline.NewService(
		chainAdapter{client},
		repo,
		metrics.NewPipeline(cfg.Network),
		cfg.Network,
		logger,
		pipeline.WithRetryInterval(cfg.RetryInterval),
		pipeline.WithReceiptWorkers(cfg.ReceiptWorkers),
	)
	if err != nil {
		return err
	}

	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("start pipeline: %w", err)
	}

	<-ctx.Done()
	svc.Stop()
	return nil
}

// chainAdapter narrows the concrete subscription type to the pipeline's
// interface.
type chainAdapter struct {
	*chain.Client
}

func (a chainAdapter) SubscribeNewBlocks(ctx context.Context, handler func(number uint64)) (pipeline.HeadSubscription, error) {
	return a.Client.SubscribeNewBlocks(ctx, handler)
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
