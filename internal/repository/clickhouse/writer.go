package clickhouse

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-consensus/pkg/batcher"
)

// WriterConfig sizes the buffered writers.
type WriterConfig struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

type (
	verdictInserter interface {
		InsertVerdicts(ctx context.Context, verdicts []model.BlockVerdict) error
		InsertRejections(ctx context.Context, rejections []model.TxRejection) error
	}
	itemBatcher[T any] interface {
		Start(ctx context.Context)
		Stop()
		Add(ctx context.Context, item T) error
	}
)

// BatchWriter buffers verdicts and rejections and inserts them in batches.
type BatchWriter struct {
	verdicts   itemBatcher[model.BlockVerdict]
	rejections itemBatcher[model.TxRejection]
}

// NewBatchWriter builds a BatchWriter on top of repo.
func NewBatchWriter(repo verdictInserter, cfg WriterConfig, logger *zap.Logger) (*BatchWriter, error) {
	if repo == nil {
		return nil, errors.New("batch writer repository is required")
	}
	if cfg.FlushSize <= 0 || cfg.FlushInterval <= 0 || cfg.RPS <= 0 {
		return nil, errors.New("batch writer flush size, interval and rps must be positive")
	}

	return &BatchWriter{
		verdicts: batcher.New(logger.Named("verdicts"), repo.InsertVerdicts,
			cfg.FlushSize, cfg.FlushInterval, cfg.RPS),
		rejections: batcher.New(logger.Named("rejections"), repo.InsertRejections,
			cfg.FlushSize, cfg.FlushInterval, cfg.RPS),
	}, nil
}

// Start begins background flushing. Pending rows are flushed when ctx ends or Stop is called.
func (w *BatchWriter) Start(ctx context.Context) {
	w.verdicts.Start(ctx)
	w.rejections.Start(ctx)
}

// Stop flushes buffered rows, rejections first, and stops the writers.
func (w *BatchWriter) Stop() {
	w.rejections.Stop()
	w.verdicts.Stop()
}

// WriteVerdict queues a verdict.
func (w *BatchWriter) WriteVerdict(ctx context.Context, verdict model.BlockVerdict) error {
	return w.verdicts.Add(ctx, verdict)
}

// WriteRejections queues rejections.
func (w *BatchWriter) WriteRejections(ctx context.Context, rejections []model.TxRejection) error {
	for _, rej := range rejections {
		if err := w.rejections.Add(ctx, rej); err != nil {
			return err
		}
	}
	return nil
}
