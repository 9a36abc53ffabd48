package pow

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

// CheckWork reports whether hash satisfies the target packed in bits. Negative, zero, overflowed and
// above-limit targets never pass.
func CheckWork(hash chainhash.Hash, bits uint32, params *chaincfg.Params, track model.Track) bool {
	target, negative, overflow := DecodeCompact(bits)
	if negative || overflow || target.IsZero() || target.Gt(params.Limit(track)) {
		return false
	}
	return !HashToInt(hash).Gt(target)
}
