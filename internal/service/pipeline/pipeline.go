// Package pipeline drives block ingestion from the chain node into the store.
//
// A single run goroutine owns the watermark. Live head announcements are only
// enqueued into a channel that the same goroutine drains, so exactly one
// serial consumer decides the next block to ingest; the "one active ingestion
// stream" invariant is structural, not a convention.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/evmscope/evmscope-backend/internal/clock"
	"github.com/evmscope/evmscope-backend/internal/model"
	"github.com/evmscope/evmscope-backend/pkg/safe"
)

// Service is the ingestion pipeline state machine:
// Stopped -> Starting -> Backfilling -> Live -> Stopped.
type Service struct {
	logger         *zap.Logger
	network        model.Network
	chain          ChainClient
	repo           Repository
	metrics        Metrics
	tagWriter      TagWriter
	sleep          func(context.Context, time.Duration) error
	retryInterval  time.Duration
	receiptWorkers int

	mu        sync.Mutex
	state     State
	watermark int64
	sub       HeadSubscription
	cancel    context.CancelFunc
	done      chan struct{}
}

// Option overrides a pipeline default.
type Option func(*Service)

// WithRetryInterval sets the backoff between attempts on the same block.
func WithRetryInterval(interval time.Duration) Option {
	return func(s *Service) {
		if interval > 0 {
			s.retryInterval = interval
		}
	}
}

// WithReceiptWorkers sets the concurrency of per-block receipt fetching.
func WithReceiptWorkers(workers int) Option {
	return func(s *Service) {
		if workers > 0 {
			s.receiptWorkers = workers
		}
	}
}

// NewService builds the pipeline with its dependencies.
func NewService(
	chainClient ChainClient,
	repo Repository,
	metrics Metrics,
	network model.Network,
	logger *zap.Logger,
	opts ...Option,
) (*Service, error) {
	if chainClient == nil {
		return nil, errors.New("chain client is required")
	}
	if repo == nil {
		return nil, errors.New("repository is required")
	}
	if metrics == nil {
		return nil, errors.New("pipeline metrics is required")
	}
	logger = logger.With(zap.String("network", string(network)))

	s := &Service{
		logger:         logger,
		network:        network,
		chain:          chainClient,
		repo:           repo,
		metrics:        metrics,
		tagWriter:      newTagWriter(repo, logger.Named("tagWriter")),
		sleep:          clock.SleepWithContext,
		retryInterval:  defaultRetryInterval,
		receiptWorkers: defaultReceiptWorkers,
		state:          StateStopped,
		watermark:      -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Start verifies node liveness, resumes the watermark from the store,
// registers the live-head subscription and launches the ingestion loop. The
// subscription is registered before backfill begins so no head announced
// during catch-up is missed.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateStopped {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.state = StateStarting
	s.mu.Unlock()

	if !s.chain.CheckLiveness(ctx) {
		s.setState(StateStopped)
		return ErrChainUnreachable
	}

	watermark, err := s.repo.MaxContiguousBlockNumber(ctx, s.network)
	if err != nil {
		s.setState(StateStopped)
		return fmt.Errorf("read watermark: %w", err)
	}
	s.setWatermark(watermark)

	notify := make(chan uint64, notifyBuffer)
	sub, err := s.chain.SubscribeNewBlocks(ctx, s.headHandler(notify))
	if err != nil {
		s.setState(StateStopped)
		return fmt.Errorf("subscribe new blocks: %w", err)
	}

	runCtx, cancel := context.WithCancel(context.Background())
	s.tagWriter.Start(runCtx)

	s.mu.Lock()
	s.sub = sub
	s.cancel = cancel
	s.done = make(chan struct{})
	s.state = StateBackfilling
	done := s.done
	s.mu.Unlock()

	s.logger.Info("pipeline starting",
		zap.Int64("watermark", watermark),
		zap.String("state", StateBackfilling.String()),
	)

	go func() {
		defer close(done)
		s.run(runCtx, notify, sub)
	}()
	return nil
}

// headHandler enqueues announced head numbers for the run goroutine.
func (s *Service) headHandler(notify chan<- uint64) func(number uint64) {
	return func(number uint64) {
		select {
		case notify <- number:
		default:
			// Dropped announcements are recovered by gap closing.
		}
	}
}

// Stop unregisters the live subscription and shuts the ingestion loop down.
// No-op when already stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	if s.state == StateStopped {
		s.mu.Unlock()
		return
	}
	sub, cancel, done := s.sub, s.cancel, s.done
	s.sub = nil
	s.cancel = nil
	s.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
	s.tagWriter.Stop()

	s.setState(StateStopped)
	s.logger.Info("pipeline stopped", zap.Int64("watermark", s.LastProcessedBlock()))
}

// LastProcessedBlock returns the current watermark, -1 when nothing has been
// ingested yet.
func (s *Service) LastProcessedBlock() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watermark
}

// IsRunning reports whether the pipeline has been started and not stopped.
func (s *Service) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != StateStopped
}

// State returns the current lifecycle state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Service) run(ctx context.Context, notify chan uint64, sub HeadSubscription) {
	if err := s.backfill(ctx); err != nil {
		return
	}
	s.setState(StateLive)
	s.logger.Info("backfill complete, switching to live ingestion",
		zap.Int64("watermark", s.LastProcessedBlock()),
	)

	for {
		select {
		case <-ctx.Done():
			return
		case number := <-notify:
			s.handleLive(ctx, number)
		case err := <-sub.Err():
			next, ok := s.resubscribe(ctx, notify, err)
			if !ok {
				return
			}
			sub = next
		}
	}
}

// resubscribe re-establishes the live-head subscription after the node-side
// stream fails. It retries with backoff until the pipeline is stopped, then
// backfills whatever the chain produced while the stream was down so the
// recovery does not have to wait for the next announcement.
func (s *Service) resubscribe(ctx context.Context, notify chan uint64, cause error) (HeadSubscription, bool) {
	s.logger.Warn("head subscription lost, resubscribing", zap.Error(cause))

	for {
		if ctx.Err() != nil {
			return nil, false
		}

		sub, err := s.chain.SubscribeNewBlocks(ctx, s.headHandler(notify))
		if err != nil {
			s.logger.Warn("resubscribe failed, backing off",
				zap.Error(err), zap.Duration("sleep", s.retryInterval))
			if sleepErr := s.sleep(ctx, s.retryInterval); sleepErr != nil {
				return nil, false
			}
			continue
		}

		s.mu.Lock()
		if s.cancel == nil {
			// Stop ran while we were reconnecting.
			s.mu.Unlock()
			sub.Unsubscribe()
			return nil, false
		}
		s.sub = sub
		s.mu.Unlock()

		s.metrics.ObserveSubscriptionRestart()
		s.logger.Info("head subscription re-established",
			zap.Int64("watermark", s.LastProcessedBlock()))

		if err := s.backfill(ctx); err != nil {
			return nil, false
		}
		return sub, true
	}
}

// backfill ingests watermark+1..head sequentially. It returns nil once caught
// up, or the context error when the pipeline is stopped mid-backfill.
// Per-block failures are never fatal: the same number is retried after a
// fixed backoff because the watermark only moves on success.
func (s *Service) backfill(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		next := uint64(s.LastProcessedBlock() + 1)

		head, err := s.chain.HeadNumber(ctx)
		if err != nil {
			s.logger.Warn("head check failed, backing off",
				zap.Error(err), zap.Duration("sleep", s.retryInterval))
			if sleepErr := s.sleep(ctx, s.retryInterval); sleepErr != nil {
				return sleepErr
			}
			continue
		}

		if next > head {
			return nil
		}

		if err := s.processBlock(ctx, next); err != nil {
			s.logger.Warn("block ingestion failed, backing off",
				zap.Uint64("number", next), zap.Error(err),
				zap.Duration("sleep", s.retryInterval))
			if sleepErr := s.sleep(ctx, s.retryInterval); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

// handleLive merges one live head announcement. Numbers at or below the
// watermark are stale re-deliveries and ignored; numbers further ahead than
// watermark+1 indicate a delivery gap, which is closed by ingesting the
// intermediate range sequentially before the announced block counts as
// processed.
func (s *Service) handleLive(ctx context.Context, number uint64) {
	announced, err := safe.Int64(number)
	if err != nil {
		s.logger.Error("live notification number overflow", zap.Uint64("number", number))
		return
	}

	watermark := s.LastProcessedBlock()
	if announced <= watermark {
		s.metrics.ObserveLiveNotification("stale", 0)
		s.logger.Debug("stale live notification ignored",
			zap.Int64("number", announced), zap.Int64("watermark", watermark))
		return
	}

	if gap := int(announced - watermark - 1); gap > 0 {
		s.metrics.ObserveLiveNotification("gap", gap)
		s.logger.Info("closing live delivery gap",
			zap.Int64("from", watermark+1), zap.Int64("to", announced))
	} else {
		s.metrics.ObserveLiveNotification("accepted", 0)
	}

	for next := watermark + 1; next <= announced; next++ {
		for {
			if ctx.Err() != nil {
				return
			}
			if err := s.processBlock(ctx, uint64(next)); err == nil {
				break
			} else {
				s.logger.Warn("live block ingestion failed, backing off",
					zap.Int64("number", next), zap.Error(err),
					zap.Duration("sleep", s.retryInterval))
				if sleepErr := s.sleep(ctx, s.retryInterval); sleepErr != nil {
					return
				}
			}
		}
	}
}

func (s *Service) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Service) setWatermark(number int64) {
	s.mu.Lock()
	s.watermark = number
	s.mu.Unlock()
	s.metrics.SetWatermark(number)
}
