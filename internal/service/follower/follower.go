// Package follower feeds blocks from a node to the validator in height order.
package follower

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-consensus/pkg/safe"
)

// Service follows the node tip and validates every new block.
type Service struct {
	logger            *zap.Logger
	network           model.Network
	source            BlockSource
	validator         BlockValidator
	checkpoint        Checkpoint
	metrics           FollowerMetrics
	sleep             func(context.Context, time.Duration) error
	sleepDuration     time.Duration
	longSleepDuration time.Duration
	batchSize         uint64
	lookback          uint64
	startHeight       uint64
	blockSignal       <-chan struct{}

	resumed bool
	next    uint64
}

// NewService builds a follower Service. Validation resumes after the highest stored verdict, or at
// startHeight when nothing has been validated yet.
func NewService(
	source BlockSource,
	validator BlockValidator,
	checkpoint Checkpoint,
	metrics FollowerMetrics,
	params *chaincfg.Params,
	startHeight uint64,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*Service, error) {
	if params == nil {
		return nil, errors.New("follower params is required")
	}
	if source == nil || validator == nil {
		return nil, errors.New("follower source and validator are required")
	}
	if checkpoint == nil {
		return nil, errors.New("follower checkpoint is required")
	}
	if metrics == nil {
		return nil, errors.New("follower metrics is required")
	}

	return &Service{
		logger:            logger.With(zap.String("network", string(params.Name))),
		network:           params.Name,
		source:            source,
		validator:         validator,
		checkpoint:        checkpoint,
		metrics:           metrics,
		sleep:             clock.SleepWithContext,
		sleepDuration:     sleepDuration,
		longSleepDuration: longSleepDuration,
		batchSize:         defaultBatchSize,
		lookback:          uint64(params.RetargetLookback()),
		startHeight:       startHeight,
		blockSignal:       blockSignal,
	}, nil
}

// Run follows the node until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.sleepDuration))
			if sleepErr := s.wait(ctx, s.sleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *Service) run(ctx context.Context) error {
	if !s.resumed {
		if err := s.resume(ctx); err != nil {
			return fmt.Errorf("resume: %w", err)
		}
	}

	started := time.Now()
	tip, err := s.source.LatestHeight(ctx)
	s.metrics.ObserveFetchTip(err, started)
	if err != nil {
		s.logger.Error("fetch node tip failed", zap.Error(err))
		return err
	}

	if s.next > tip {
		s.logger.Debug("no new blocks; sleeping", zap.Uint64("tip", tip), zap.Duration("sleep", s.longSleepDuration))
		return s.wait(ctx, s.longSleepDuration)
	}

	last := min(tip, s.next+s.batchSize-1)
	s.logger.Info("validating blocks", zap.Uint64("from", s.next), zap.Uint64("to", last))
	started = time.Now()
	processed, err := s.process(ctx, s.next, last)
	s.metrics.ObserveProcessBatch(err, processed, started)
	if err != nil {
		return err
	}

	if s.next <= tip {
		return nil
	}
	return s.wait(ctx, s.sleepDuration)
}

// resume indexes the blocks below the first height to validate so retargeting has its history.
func (s *Service) resume(ctx context.Context) error {
	next := s.startHeight
	height, ok, err := s.checkpoint.MaxValidatedHeight(ctx, s.network)
	if err != nil {
		return fmt.Errorf("max validated height: %w", err)
	}
	if ok && height+1 > next {
		next = height + 1
	}

	var from uint64
	if next > s.lookback {
		from = next - s.lookback
	}
	for h := from; h < next; h++ {
		block, err := s.source.FetchBlock(ctx, h)
		if err != nil {
			return err
		}
		if s.validator.HasBlock(block.Hash()) {
			continue
		}
		indexHeight, err := safe.Int32(h)
		if err != nil {
			return err
		}
		if _, err := s.validator.IndexBlock(block, indexHeight); err != nil {
			return fmt.Errorf("index block at height %d: %w", h, err)
		}
	}

	s.logger.Info("resuming validation", zap.Uint64("height", next), zap.Uint64("warmup", next-from))
	s.next = next
	s.resumed = true
	return nil
}

// process validates heights from..to and returns how many blocks were checked. A block whose parent
// is unknown means the node switched branches; the follower steps back one height and retries.
func (s *Service) process(ctx context.Context, from, to uint64) (int, error) {
	processed := 0
	for h := from; h <= to; h++ {
		block, err := s.source.FetchBlock(ctx, h)
		if err != nil {
			return processed, err
		}
		if s.validator.HasBlock(block.Hash()) {
			s.next = h + 1
			continue
		}

		_, err = s.validator.ProcessBlock(ctx, block)
		if errors.Is(err, chain.ErrUnknownParent) && h > 0 {
			s.logger.Warn("parent unknown, stepping back",
				zap.Uint64("height", h),
				zap.Stringer("hash", block.Hash()))
			s.next = h - 1
			return processed, nil
		}
		if err != nil {
			return processed, fmt.Errorf("process block at height %d: %w", h, err)
		}
		s.next = h + 1
		processed++
	}
	return processed, nil
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	if s.blockSignal == nil {
		return s.sleep(ctx, d)
	}
	return clock.SleepUntilSignal(ctx, d, s.blockSignal)
}
