package pow

import (
	"github.com/holiman/uint256"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

const (
	dualCalibration = 72
	dualResolution  = 5
	daySeconds      = 86400
)

// dualGravityWell blends a same-track gravity well with the last same-track block's target scaled by
// its own solve time. Each track sees every other block, so the effective spacing doubles. Both
// horizons are measured between blocks of the requested track only.
func (e *Engine) dualGravityWell(tip *chain.Node, track model.Track) *uint256.Int {
	limit := e.params.Limit(track)
	blockTime := 2 * e.params.Spacing(track)

	last := tip.LastOfTrack(track)
	lastSolved := last.PrevOfTrack(track)
	well := gravityWell{
		reference:   lastSolved,
		spacing:     blockTime,
		minBlocks:   uint64(daySeconds * 0.025 / float64(blockTime)),
		maxBlocks:   uint64(daySeconds*7) / uint64(blockTime),
		calibration: dualCalibration,
		prev: func(n *chain.Node) *chain.Node {
			return n.PrevOfTrack(track)
		},
	}

	if lastSolved == nil || lastSolved.Height() == 0 || uint64(lastSolved.Height()) < well.minBlocks {
		return limit
	}

	longHorizon := well.walk(last).scaled(limit)

	solveTime := last.Timestamp() - lastSolved.Timestamp()
	if solveTime < 0 {
		solveTime = blockTime
	}
	fast := e.params.FastBlock.Divisor > 0 && solveTime < blockTime/e.params.FastBlock.Divisor
	solveTime = min(max(solveTime, blockTime/dualResolution), blockTime*dualResolution)

	lastTarget, _, _ := DecodeCompact(last.Bits())
	shortHorizon := mulDiv(lastTarget, uint64(solveTime), uint64(blockTime), limit)

	next, overflow := new(uint256.Int).AddOverflow(longHorizon, shortHorizon)
	if overflow {
		next.Set(limit)
	} else {
		next.Rsh(next, 1)
	}

	if fast {
		next = mulDiv(next, e.params.FastBlock.Numerator, e.params.FastBlock.Denominator, limit)
	}
	return clamp(next, limit)
}
