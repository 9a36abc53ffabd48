package pow

import (
	"math"

	"github.com/holiman/uint256"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chain"
)

// gravityWell is the backward walk shared by the single and dual gravity well rules.
type gravityWell struct {
	// reference is the block the elapsed time is measured from.
	reference   *chain.Node
	spacing     int64
	minBlocks   uint64
	maxBlocks   uint64
	calibration float64
	prev        func(*chain.Node) *chain.Node
}

type wellResult struct {
	average *uint256.Int
	actual  int64
	target  int64
}

// walk averages the targets of start and its ancestors until the observed solve rate leaves the
// event horizon, the block budget is spent or the root is reached.
func (w gravityWell) walk(start *chain.Node) wellResult {
	var (
		average = new(uint256.Int)
		mass    int64
		actual  int64
		target  int64
	)

	reading := start
	for i := uint64(1); reading != nil && reading.Height() > 0; i++ {
		if w.maxBlocks > 0 && i > w.maxBlocks {
			break
		}
		mass++

		sample, _, _ := DecodeCompact(reading.Bits())
		if i > 1 {
			average = foldAverage(average, sample, i)
		} else {
			average = sample
		}

		actual = w.reference.Timestamp() - reading.Timestamp()
		target = w.spacing * mass
		if actual < 0 {
			actual = 0
		}
		ratio := 1.0
		if actual != 0 && target != 0 {
			ratio = float64(target) / float64(actual)
		}

		deviation := 1 + 0.7084*math.Pow(float64(mass)/w.calibration, -1.228)
		if uint64(mass) >= w.minBlocks && (ratio <= 1/deviation || ratio >= deviation) {
			break
		}

		next := w.prev(reading)
		if next == nil {
			break
		}
		reading = next
	}

	return wellResult{average: average, actual: actual, target: target}
}

// scaled multiplies the average by actual/target elapsed time.
func (r wellResult) scaled(limit *uint256.Int) *uint256.Int {
	if r.actual == 0 || r.target == 0 {
		return r.average
	}
	return mulDiv(r.average, uint64(r.actual), uint64(r.target), limit)
}
