package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/evmscope/evmscope-backend/internal/model"
	"github.com/evmscope/evmscope-backend/pkg/batcher"
)

type tagWriter struct {
	repo       Repository
	logger     *zap.Logger
	tagBatcher *batcher.Batcher[model.InterfaceTag]
}

func newTagWriter(repo Repository, logger *zap.Logger) *tagWriter {
	w := &tagWriter{
		repo:   repo,
		logger: logger,
	}

	w.tagBatcher = batcher.New[model.InterfaceTag](
		logger.Named("tagBatcher"),
		w.flush,
		tagBatcherCapacity,
		tagBatcherFlushInterval,
		tagBatcherRPS,
	)
	return w
}

func (w *tagWriter) Start(ctx context.Context) {
	w.tagBatcher.Start(ctx)
}

func (w *tagWriter) Stop() {
	w.tagBatcher.Stop()
}

func (w *tagWriter) Write(ctx context.Context, tag model.InterfaceTag) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return w.tagBatcher.Add(ctx, tag)
}

func (w *tagWriter) flush(ctx context.Context, tags []model.InterfaceTag) error {
	return w.repo.UpsertInterfaceTags(ctx, tags)
}
