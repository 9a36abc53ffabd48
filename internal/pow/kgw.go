package pow

import (
	"github.com/holiman/uint256"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

const kgwCalibration = 28.2

// kimotoGravityWell walks every ancestor of last regardless of track.
func (e *Engine) kimotoGravityWell(last *chain.Node, track model.Track) *uint256.Int {
	limit := e.params.Limit(track)
	spacing := e.params.Spacing(track)
	timespan := e.params.TimespanSeconds()

	pastSecondsMin := uint64(float64(timespan) * 0.025)
	pastSecondsMax := uint64(timespan * 7)
	well := gravityWell{
		reference:   last,
		spacing:     spacing,
		minBlocks:   pastSecondsMin / uint64(spacing),
		maxBlocks:   pastSecondsMax / uint64(spacing),
		calibration: kgwCalibration,
		prev:        (*chain.Node).Parent,
	}

	if last.Height() == 0 || uint64(last.Height()) < well.minBlocks {
		return limit
	}

	return clamp(well.walk(last).scaled(limit), limit)
}
