package pow

import (
	"github.com/holiman/uint256"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

// maxSolveTimeFactor bounds a single solve time to six target spacings.
const maxSolveTimeFactor = 6

// lwma weights the solve times of the last N blocks linearly by recency and scales the mean target of
// the window by the weighted solve time over its expected value k.
func (e *Engine) lwma(tip *chain.Node, track model.Track) *uint256.Int {
	limit := e.params.Limit(track)
	spacing := e.params.Spacing(track)
	n := int64(e.params.LWMAWindow)

	if n <= 0 || int64(tip.Height()) < n {
		return limit
	}

	// window[0] is the parent of the oldest weighted block.
	window := make([]*chain.Node, n+1)
	node := tip
	for i := n; i >= 0; i-- {
		window[i] = node
		if parent := node.Parent(); parent != nil {
			node = parent
		}
	}

	k := n * (n + 1) / 2 * spacing
	var (
		weighted  int64
		quotients = new(uint256.Int)
		remainder = new(uint256.Int)
		divisor   = uint256.NewInt(uint64(n))
	)
	for j := int64(1); j <= n; j++ {
		solveTime := window[j].Timestamp() - window[j-1].Timestamp()
		solveTime = min(max(solveTime, 0), maxSolveTimeFactor*spacing)
		weighted += solveTime * j

		target, _, _ := DecodeCompact(window[j].Bits())
		q, r := new(uint256.Int), new(uint256.Int)
		q.DivMod(target, divisor, r)
		quotients.Add(quotients, q)
		remainder.Add(remainder, r)
	}
	// Exact floor of the summed targets over N without overflowing 256 bits.
	average := quotients.Add(quotients, remainder.Div(remainder, divisor))

	// Floor at a tenth of k so a window of equal timestamps cuts the target tenfold instead of to zero.
	if weighted < k/10 {
		weighted = k / 10
	}
	return clamp(mulDiv(average, uint64(weighted), uint64(k), limit), limit)
}
