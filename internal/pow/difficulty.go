package pow

import (
	"math/big"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

// TargetToDifficulty expresses bits as a multiple of the track ceiling. Malformed or zero targets
// report zero.
func TargetToDifficulty(bits uint32, params *chaincfg.Params, track model.Track) float64 {
	target, negative, overflow := DecodeCompact(bits)
	if negative || overflow || target.IsZero() {
		return 0
	}
	ratio := new(big.Float).Quo(
		new(big.Float).SetInt(params.Limit(track).ToBig()),
		new(big.Float).SetInt(target.ToBig()),
	)
	difficulty, _ := ratio.Float64()
	return difficulty
}
