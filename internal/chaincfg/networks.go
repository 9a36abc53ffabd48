package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/holiman/uint256"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/spork"
)

var (
	// mainPowLimit is ~uint256(0) >> 20.
	mainPowLimit = new(uint256.Int).Rsh(new(uint256.Int).SetAllOne(), 20)
	// regPowLimit is ~uint256(0) >> 1.
	regPowLimit = new(uint256.Int).Rsh(new(uint256.Int).SetAllOne(), 1)

	// historicalRetarget switches from the dual gravity well to the single one at 2877.
	historicalRetarget = []RetargetActivation{
		{Height: 0, Algorithm: AlgorithmDualKGW},
		{Height: 2877, Algorithm: AlgorithmKGW},
	}
)

// MainNetParams are the production network parameters.
var MainNetParams = Params{
	Name:          model.Mainnet,
	PowLimit:      mainPowLimit,
	PosLimit:      mainPowLimit,
	PowSpacing:    150 * time.Second,
	PosSpacing:    150 * time.Second,
	PowTimespan:   24 * time.Hour,
	LWMAWindow:    25,
	Retarget:      historicalRetarget,
	DIP0001Height: 0,
	DIP0003Height: 2,
	MaxMoney:      btcutil.MaxSatoshi,
	TypeGateSpork: spork.DeterministicMNsEnabled,
}

// TestNetParams share the main network retarget history.
var TestNetParams = Params{
	Name:          model.Testnet,
	PowLimit:      mainPowLimit,
	PosLimit:      mainPowLimit,
	PowSpacing:    150 * time.Second,
	PosSpacing:    150 * time.Second,
	PowTimespan:   24 * time.Hour,
	LWMAWindow:    25,
	Retarget:      historicalRetarget,
	DIP0001Height: 0,
	DIP0003Height: 2,
	MaxMoney:      btcutil.MaxSatoshi,
	TypeGateSpork: spork.DeterministicMNsEnabled,
}

// DevNetParams run the dual gravity well for their whole life with the fast block correction enabled.
var DevNetParams = Params{
	Name:        model.Devnet,
	PowLimit:    regPowLimit,
	PosLimit:    regPowLimit,
	PowSpacing:  150 * time.Second,
	PosSpacing:  150 * time.Second,
	PowTimespan: 24 * time.Hour,
	LWMAWindow:  25,
	Retarget: []RetargetActivation{
		{Height: 0, Algorithm: AlgorithmDualKGW},
	},
	FastBlock:     FastBlockCorrection{Divisor: 6, Numerator: 85, Denominator: 100},
	DIP0001Height: 2,
	DIP0003Height: 2,
	MaxMoney:      btcutil.MaxSatoshi,
	TypeGateSpork: spork.DeterministicMNsEnabled,
}

// RegressionNetParams use the windowed average from genesis.
var RegressionNetParams = Params{
	Name:        model.Regtest,
	PowLimit:    regPowLimit,
	PosLimit:    regPowLimit,
	PowSpacing:  150 * time.Second,
	PosSpacing:  150 * time.Second,
	PowTimespan: 24 * time.Hour,
	LWMAWindow:  25,
	Retarget: []RetargetActivation{
		{Height: 0, Algorithm: AlgorithmLWMA},
	},
	DIP0001Height: 2000,
	DIP0003Height: 432,
	MaxMoney:      btcutil.MaxSatoshi,
	TypeGateSpork: spork.DeterministicMNsEnabled,
}
