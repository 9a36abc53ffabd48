package pow

import (
	"fmt"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

// Engine computes required targets for one network. It holds no mutable state and is safe for
// concurrent use as long as the walked nodes are not mutated.
type Engine struct {
	params *chaincfg.Params
	logger *zap.Logger
}

// NewEngine creates a retarget engine for params.
func NewEngine(params *chaincfg.Params, logger *zap.Logger) *Engine {
	return &Engine{
		params: params,
		logger: logger.With(zap.String("component", "retarget")),
	}
}

// NextRequiredTarget returns the packed target the block after tip must meet on track. The rule is
// chosen from the network's activation table by the tip height. A nil tip yields the track limit.
func (e *Engine) NextRequiredTarget(tip *chain.Node, track model.Track) uint32 {
	if tip == nil {
		return EncodeCompact(e.params.Limit(track))
	}

	algorithm := e.params.AlgorithmAt(tip.Height())
	var next *uint256.Int
	switch algorithm {
	case chaincfg.AlgorithmKGW:
		next = e.kimotoGravityWell(tip, track)
	case chaincfg.AlgorithmLWMA:
		next = e.lwma(tip, track)
	default:
		next = e.dualGravityWell(tip, track)
	}

	bits := EncodeCompact(next)
	if ce := e.logger.Check(zap.DebugLevel, "retarget"); ce != nil {
		ce.Write(
			zap.Stringer("algorithm", algorithm),
			zap.Stringer("track", track),
			zap.Int32("height", tip.Height()+1),
			zap.String("before", fmt.Sprintf("%08x", tip.Bits())),
			zap.String("after", fmt.Sprintf("%08x", bits)),
		)
	}
	return bits
}

// NextRequiredTarget is a convenience wrapper for callers without a long-lived engine.
func NextRequiredTarget(tip *chain.Node, params *chaincfg.Params, track model.Track) uint32 {
	return NewEngine(params, zap.NewNop()).NextRequiredTarget(tip, track)
}
