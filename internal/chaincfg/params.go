// Package chaincfg holds the read-only consensus parameters of every supported network.
package chaincfg

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/holiman/uint256"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/spork"
)

// Algorithm names a difficulty retarget rule.
type Algorithm uint8

const (
	AlgorithmDualKGW Algorithm = iota
	AlgorithmKGW
	AlgorithmLWMA
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmDualKGW:
		return "dual-kgw"
	case AlgorithmKGW:
		return "kgw"
	case AlgorithmLWMA:
		return "lwma"
	default:
		return "unknown"
	}
}

// RetargetActivation switches the retarget rule once the chain tip reaches Height.
type RetargetActivation struct {
	Height    int32
	Algorithm Algorithm
}

// FastBlockCorrection lowers the dual gravity-well target when the last same-track block arrived
// faster than the effective spacing divided by Divisor. A zero Divisor disables it.
type FastBlockCorrection struct {
	Divisor     int64
	Numerator   uint64
	Denominator uint64
}

// Params are fixed at genesis and never mutated after load.
type Params struct {
	Name model.Network

	PowLimit      *uint256.Int
	PosLimit      *uint256.Int
	PowSpacing    time.Duration
	PosSpacing    time.Duration
	PowTimespan   time.Duration
	LWMAWindow    int32
	Retarget      []RetargetActivation
	FastBlock     FastBlockCorrection
	DIP0001Height int32
	DIP0003Height int32

	MaxMoney int64
	// TypeGateSpork makes unknown special transaction types fatal while active.
	TypeGateSpork spork.ID
}

// Limit returns the easiest allowed target of a track.
func (p *Params) Limit(track model.Track) *uint256.Int {
	if track == model.TrackStake {
		return p.PosLimit
	}
	return p.PowLimit
}

// Spacing returns the target block spacing of a track in seconds.
func (p *Params) Spacing(track model.Track) int64 {
	if track == model.TrackStake {
		return int64(p.PosSpacing / time.Second)
	}
	return int64(p.PowSpacing / time.Second)
}

// TimespanSeconds returns the retarget timespan in seconds.
func (p *Params) TimespanSeconds() int64 {
	return int64(p.PowTimespan / time.Second)
}

// RetargetLookback is the number of ancestors a retarget walk may visit. Same-track walks can skip
// blocks of the other track, so the gravity-well depth is doubled.
func (p *Params) RetargetLookback() int32 {
	spacing := p.Spacing(model.TrackWork)
	if s := p.Spacing(model.TrackStake); s < spacing {
		spacing = s
	}
	return int32(2*p.TimespanSeconds()*7/spacing) + p.LWMAWindow + 1
}

// AlgorithmAt resolves the retarget rule active for a tip at height.
func (p *Params) AlgorithmAt(height int32) Algorithm {
	i := sort.Search(len(p.Retarget), func(i int) bool {
		return p.Retarget[i].Height > height
	})
	if i == 0 {
		return p.Retarget[0].Algorithm
	}
	return p.Retarget[i-1].Algorithm
}

// Validate checks the invariants the retarget engine relies on.
func (p *Params) Validate() error {
	if p.PowLimit == nil || p.PosLimit == nil {
		return fmt.Errorf("%s: missing target limit", p.Name)
	}
	if p.PowSpacing < time.Second || p.PosSpacing < time.Second {
		return fmt.Errorf("%s: spacing below one second", p.Name)
	}
	if len(p.Retarget) == 0 {
		return fmt.Errorf("%s: empty retarget schedule", p.Name)
	}
	for i := 1; i < len(p.Retarget); i++ {
		if p.Retarget[i].Height <= p.Retarget[i-1].Height {
			return fmt.Errorf("%s: retarget schedule not strictly ascending at %d", p.Name, i)
		}
	}
	if p.MaxMoney <= 0 || p.MaxMoney > btcutil.MaxSatoshi {
		return fmt.Errorf("%s: max money %d out of range", p.Name, p.MaxMoney)
	}
	return nil
}

// ParamsForNetwork returns the parameters registered for a network name.
func ParamsForNetwork(network model.Network) (*Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet":
		return &MainNetParams, nil
	case "test", "testnet":
		return &TestNetParams, nil
	case "devnet":
		return &DevNetParams, nil
	case "regtest":
		return &RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
