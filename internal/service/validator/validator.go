// Package validator checks blocks against the consensus rules and records the verdicts.
package validator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/blocksign"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/pow"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/validation"
	"github.com/goodnatureofminers/blockinsight7000-consensus/pkg/workerpool"
)

// Service validates blocks in chain order. Blocks are indexed whether or not they pass so the service
// keeps following the node's chain; the verdict records the outcome.
type Service struct {
	params        *chaincfg.Params
	index         *chain.Index
	engine        RetargetEngine
	checker       TxChecker
	notifier      Notifier
	writer        VerdictWriter
	metrics       ValidatorMetrics
	logger        *zap.Logger
	now           func() time.Time
	workerCount   int
	flushInterval int32
	reorgDepth    int32

	mu     sync.Mutex
	active *chain.Node
	recent map[chainhash.Hash]*model.Block
}

// NewService builds a validation Service.
func NewService(
	params *chaincfg.Params,
	index *chain.Index,
	engine RetargetEngine,
	checker TxChecker,
	notifier Notifier,
	writer VerdictWriter,
	metrics ValidatorMetrics,
	logger *zap.Logger,
) (*Service, error) {
	if params == nil {
		return nil, errors.New("validator params is required")
	}
	if index == nil {
		return nil, errors.New("validator chain index is required")
	}
	if engine == nil || checker == nil {
		return nil, errors.New("validator engine and checker are required")
	}
	if writer == nil {
		return nil, errors.New("validator verdict writer is required")
	}
	if metrics == nil {
		return nil, errors.New("validator metrics is required")
	}

	return &Service{
		params:        params,
		index:         index,
		engine:        engine,
		checker:       checker,
		notifier:      notifier,
		writer:        writer,
		metrics:       metrics,
		logger:        logger.With(zap.String("network", string(params.Name))),
		now:           time.Now,
		workerCount:   defaultWorkerCount,
		flushInterval: defaultFlushInterval,
		reorgDepth:    defaultReorgDepth,
		recent:        make(map[chainhash.Hash]*model.Block),
	}, nil
}

// Tip returns the end of the active chain, which is the last block indexed or connected.
func (s *Service) Tip() *chain.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil {
		return s.active
	}
	return s.index.Tip()
}

// HasBlock reports whether hash is already indexed.
func (s *Service) HasBlock(hash chainhash.Hash) bool {
	_, ok := s.index.LookupNode(hash)
	return ok
}

// IndexBlock adds a block to the chain index without checking it. It seeds retarget history when
// validation starts above genesis. The first block becomes the root at height.
func (s *Service) IndexBlock(block *model.Block, height int32) (*chain.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		node *chain.Node
		err  error
	)
	if s.index.Len() == 0 {
		node, err = s.index.AddRoot(&block.Header, block.Track(), height)
	} else {
		node, err = s.index.AddNode(&block.Header, block.Track())
	}
	if err != nil {
		return nil, err
	}
	s.remember(block, node)
	s.active = node
	return node, nil
}

// ProcessBlock checks block on top of its parent, indexes it, notifies subscribers and writes the
// verdict. The returned error reports infrastructure failures only; rule violations are in the verdict.
func (s *Service) ProcessBlock(ctx context.Context, block *model.Block) (model.BlockVerdict, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()
	header := &block.Header
	hash := block.Hash()
	track := block.Track()

	prev, found := s.index.LookupNode(header.PrevBlock)
	if !found && s.index.Len() > 0 {
		verdict := s.verdict(block, nil, 0)
		verdict.Valid = false
		verdict.Reason = validation.ReasonUnknownParent
		s.metrics.ObserveBlock(track, verdict.Reason, started)
		if err := s.writer.WriteVerdict(ctx, verdict); err != nil {
			return verdict, fmt.Errorf("write verdict %s: %w", hash, err)
		}
		return verdict, fmt.Errorf("block %s: %w", hash, chain.ErrUnknownParent)
	}

	expected := s.engine.NextRequiredTarget(prev, track)
	verdict := s.verdict(block, prev, expected)

	rejections, err := s.checkTransactions(ctx, block, prev, verdict.Height)
	if err != nil {
		return verdict, err
	}
	ruleErr := s.checkHeader(block, expected)
	if ruleErr == nil && len(rejections) > 0 {
		ruleErr = &validation.RuleError{
			Reason:      rejections[0].Reason,
			Kind:        validation.KindConsensus,
			Description: fmt.Sprintf("tx %s", rejections[0].TxID),
		}
		if !rejections[0].Penalizable {
			ruleErr.Kind = validation.KindContextual
		}
	}
	if ruleErr != nil {
		verdict.Valid = false
		verdict.Reason = ruleErr.Reason
	}

	if s.notifier != nil {
		s.notifier.BlockChecked(block, errOrNil(ruleErr))
	}

	if _, err := s.connect(block, prev); err != nil {
		return verdict, fmt.Errorf("index block %s: %w", hash, err)
	}

	s.metrics.ObserveBlock(track, verdict.Reason, started)
	if len(rejections) > 0 {
		if err := s.writer.WriteRejections(ctx, rejections); err != nil {
			return verdict, fmt.Errorf("write rejections %s: %w", hash, err)
		}
	}
	if err := s.writer.WriteVerdict(ctx, verdict); err != nil {
		return verdict, fmt.Errorf("write verdict %s: %w", hash, err)
	}

	if verdict.Valid {
		s.logger.Debug("block valid",
			zap.Uint64("height", verdict.Height),
			zap.Stringer("hash", hash),
			zap.Stringer("track", track))
	} else {
		s.logger.Info("block rejected",
			zap.Uint64("height", verdict.Height),
			zap.Stringer("hash", hash),
			zap.Stringer("track", track),
			zap.String("reason", verdict.Reason))
	}
	return verdict, nil
}

func errOrNil(err *validation.RuleError) error {
	if err == nil {
		return nil
	}
	return err
}

func (s *Service) verdict(block *model.Block, prev *chain.Node, expected uint32) model.BlockVerdict {
	var height uint64
	if prev != nil {
		height = uint64(prev.Height()) + 1
	}
	verdict := model.BlockVerdict{
		Network:      model.Network(s.params.Name),
		Height:       height,
		Hash:         block.Hash().String(),
		PrevHash:     block.Header.PrevBlock.String(),
		Track:        block.Track(),
		Timestamp:    block.Header.Timestamp.UTC(),
		Bits:         block.Header.Bits,
		ExpectedBits: expected,
		TxCount:      uint32(len(block.Transactions)),
		Valid:        true,
		ValidatedAt:  s.now().UTC(),
	}
	if id, err := blocksign.ExtractSigningIdentity(block); err == nil {
		verdict.Signer = id.String()
	}
	return verdict
}

// checkHeader applies the retarget, work and signature rules.
func (s *Service) checkHeader(block *model.Block, expected uint32) *validation.RuleError {
	header := &block.Header
	track := block.Track()

	if header.Bits != expected {
		return validation.Consensus(validation.ReasonBadDiffBits,
			"bits %08x, expected %08x", header.Bits, expected)
	}
	if track == model.TrackWork && !pow.CheckWork(block.Hash(), header.Bits, s.params, track) {
		return validation.Consensus(validation.ReasonHighHash, "hash above target %08x", header.Bits)
	}
	if !blocksign.VerifyBlockSignature(block) {
		return validation.Consensus(validation.ReasonBadSignature, "signature does not match %s identity", track)
	}
	return nil
}

// checkTransactions runs the transaction rules in parallel. Duplicate inputs are checked across the
// whole block once rather than per transaction.
func (s *Service) checkTransactions(
	ctx context.Context,
	block *model.Block,
	prev *chain.Node,
	height uint64,
) ([]model.TxRejection, error) {
	verdicts, err := workerpool.Map(ctx, s.workerCount, block.Transactions,
		func(_ context.Context, _ int, tx *model.Transaction) (rejection error, err error) {
			if rejection = s.checker.CheckStructure(tx, false); rejection != nil {
				return rejection, nil
			}
			return s.checker.CheckContextual(tx, prev), nil
		})
	if err != nil {
		return nil, fmt.Errorf("check transactions: %w", err)
	}
	if i, err := duplicateInputs(block); err != nil && verdicts[i] == nil {
		verdicts[i] = err
	}

	var rejections []model.TxRejection
	for i, verdict := range verdicts {
		if verdict == nil {
			continue
		}
		reason := validation.ReasonOf(verdict)
		penalizable := validation.IsPenalizable(verdict)
		s.metrics.ObserveTxRejection(reason, penalizable)

		rejections = append(rejections, model.TxRejection{
			Network:     model.Network(s.params.Name),
			BlockHeight: height,
			BlockHash:   block.Hash().String(),
			TxID:        block.Transactions[i].Hash().String(),
			Reason:      reason,
			Penalizable: penalizable,
			RejectedAt:  s.now().UTC(),
		})
	}
	return rejections, nil
}

// duplicateInputs returns the position of the first transaction spending an outpoint already spent
// earlier in the block.
func duplicateInputs(block *model.Block) (int, error) {
	seen := make(map[wire.OutPoint]struct{})
	for i, tx := range block.Transactions {
		if tx.IsCoinBase() {
			continue
		}
		for _, in := range tx.TxIn {
			if _, ok := seen[in.PreviousOutPoint]; ok {
				return i, validation.Consensus(validation.ReasonInputsDuplicate,
					"outpoint %s spent twice in block", in.PreviousOutPoint)
			}
			seen[in.PreviousOutPoint] = struct{}{}
		}
	}
	return 0, nil
}

func (s *Service) connect(block *model.Block, prev *chain.Node) (*chain.Node, error) {
	var (
		node *chain.Node
		err  error
	)
	if prev == nil {
		node, err = s.index.AddRoot(&block.Header, block.Track(), 0)
	} else {
		node, err = s.index.AddNode(&block.Header, block.Track())
	}
	if err != nil {
		return nil, err
	}

	fork := s.switchBranch(prev)
	s.remember(block, node)
	s.active = node

	if s.notifier == nil {
		return node, nil
	}
	s.notifier.AcceptedBlockHeader(node)
	s.notifier.BlockConnected(block, node)
	s.notifier.UpdatedBlockTip(node, fork, false)

	if node.Height()%s.flushInterval == 0 {
		if err := s.notifier.ChainStateFlushed(chain.Locator(node)); err != nil {
			s.logger.Warn("queue chain state flush", zap.Int32("height", node.Height()), zap.Error(err))
		}
	}
	return node, nil
}

// switchBranch makes prev the end of the active chain. Blocks of the abandoned branch are disconnected
// newest first, then blocks between the fork and prev that were not active are connected again.
// It returns the fork point.
func (s *Service) switchBranch(prev *chain.Node) *chain.Node {
	if s.active == nil || prev == nil || s.active == prev {
		return prev
	}
	fork := chain.FindFork(s.active, prev)

	var detached int
	for node := s.active; node != nil && node != fork; node = node.Parent() {
		block, ok := s.recent[node.Hash()]
		switch {
		case !ok:
			s.logger.Warn("abandoned block no longer cached, subscribers keep it",
				zap.Int32("height", node.Height()),
				zap.Stringer("hash", node.Hash()))
		case s.notifier != nil:
			s.notifier.BlockDisconnected(block, node)
		}
		detached++
	}

	var attach []*chain.Node
	for node := prev; node != nil && node != fork; node = node.Parent() {
		attach = append(attach, node)
	}
	for i := len(attach) - 1; i >= 0; i-- {
		node := attach[i]
		if block, ok := s.recent[node.Hash()]; ok && s.notifier != nil {
			s.notifier.BlockConnected(block, node)
		}
	}

	s.metrics.ObserveReorg(detached)
	s.logger.Info("switched branch",
		zap.Stringer("old_tip", s.active.Hash()),
		zap.Stringer("new_parent", prev.Hash()),
		zap.Int("disconnected", detached),
		zap.Int("reconnected", len(attach)))
	return fork
}

// remember keeps block for reorgDepth heights so a later branch switch can disconnect it.
func (s *Service) remember(block *model.Block, node *chain.Node) {
	s.recent[node.Hash()] = block

	floor := node.Height() - s.reorgDepth
	for hash := range s.recent {
		if cached, ok := s.index.LookupNode(hash); ok && cached.Height() < floor {
			delete(s.recent, hash)
		}
	}
}
