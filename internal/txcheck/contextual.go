package txcheck

import (
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/spork"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/validation"
)

// Checker applies the rules that depend on network parameters, height and governance flags.
// It is safe for concurrent use.
type Checker struct {
	params *chaincfg.Params
	flags  spork.Flags
	logger *zap.Logger
}

// NewChecker builds a Checker. A nil logger disables logging.
func NewChecker(params *chaincfg.Params, flags spork.Flags, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{
		params: params,
		flags:  flags,
		logger: logger.With(zap.String("component", "txcheck"), zap.String("network", string(params.Name))),
	}
}

// CheckStructure applies the context free rules with the network's money supply cap.
func (c *Checker) CheckStructure(tx *model.Transaction, checkDuplicateInputs bool) error {
	return checkStructure(tx, checkDuplicateInputs, c.params.MaxMoney)
}

func knownSpecialType(t model.TxType) bool {
	switch t {
	case model.TxNormal,
		model.TxProviderRegister,
		model.TxProviderUpdateService,
		model.TxProviderUpdateRegistrar,
		model.TxProviderUpdateRevoke,
		model.TxCoinbase,
		model.TxQuorumCommitment,
		model.TxStake:
		return true
	default:
		return false
	}
}

// CheckContextual applies the height dependent rules for a transaction included on top of prev.
// A nil prev checks at height zero.
func (c *Checker) CheckContextual(tx *model.Transaction, prev *chain.Node) error {
	var height int32
	if prev != nil {
		height = prev.Height() + 1
	}

	if height >= c.params.DIP0003Height {
		if err := c.checkType(tx, height); err != nil {
			return err
		}
	}

	if height >= c.params.DIP0001Height {
		if size := tx.SerializeSize(); size > MaxStandardTxWeight {
			return validation.Contextual(validation.ReasonOversize, "size %d exceeds %d", size, MaxStandardTxWeight)
		}
	}
	return nil
}

func (c *Checker) checkType(tx *model.Transaction, height int32) error {
	if tx.Version < model.SpecialTxVersion {
		if tx.Type != model.TxNormal {
			return validation.Contextual(validation.ReasonType, "type %d on version %d", tx.Type, tx.Version)
		}
		return nil
	}

	if !knownSpecialType(tx.Type) {
		if c.flags.IsActive(c.params.TypeGateSpork) {
			return validation.Contextual(validation.ReasonType, "unknown type %d", tx.Type)
		}
		c.logger.Info("accepting unknown transaction type while type gate is off",
			zap.Stringer("txid", tx.Hash()),
			zap.Uint16("type", uint16(tx.Type)),
			zap.Int32("height", height),
		)
	}
	if tx.IsCoinBase() && tx.Type != model.TxCoinbase {
		return validation.Contextual(validation.ReasonCoinbaseType, "coinbase carries type %s", tx.Type)
	}
	if tx.IsCoinStake() && tx.Type != model.TxStake {
		return validation.Contextual(validation.ReasonCoinStakeType, "coinstake carries type %s", tx.Type)
	}
	return nil
}
