// Package txcheck implements the structural and contextual transaction rules.
package txcheck

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/validation"
)

const (
	// MaxBlockWeight bounds the scaled stripped size of a single transaction.
	MaxBlockWeight = 4_000_000
	// WitnessScaleFactor scales stripped bytes into weight units.
	WitnessScaleFactor = 4
	// MaxTxExtraPayload is the largest extra payload a special transaction may carry.
	MaxTxExtraPayload = 10_000
	// MaxStandardTxWeight is the size ceiling enforced once the size rule is active.
	MaxStandardTxWeight = 400_000

	minCoinbaseScriptLen = 1
	maxCoinbaseScriptLen = 100
)

// allowsEmpty lists the types that may have no inputs or no outputs.
func allowsEmpty(t model.TxType) bool {
	switch t {
	case model.TxCoinbase, model.TxQuorumCommitment, model.TxStake:
		return true
	default:
		return false
	}
}

// CheckStructure applies the context free rules with the network wide money supply cap.
// Duplicate input detection can be skipped when the caller already deduplicated the block.
func CheckStructure(tx *model.Transaction, checkDuplicateInputs bool) error {
	return checkStructure(tx, checkDuplicateInputs, btcutil.MaxSatoshi)
}

func checkStructure(tx *model.Transaction, checkDuplicateInputs bool, maxMoney int64) error {
	if !allowsEmpty(tx.Type) {
		if len(tx.TxIn) == 0 {
			return validation.Consensus(validation.ReasonVinEmpty, "transaction has no inputs")
		}
		if len(tx.TxOut) == 0 {
			return validation.Consensus(validation.ReasonVoutEmpty, "transaction has no outputs")
		}
	}

	if weight := tx.SerializeSizeStripped() * WitnessScaleFactor; weight > MaxBlockWeight {
		return validation.Consensus(validation.ReasonOversize, "weight %d exceeds %d", weight, MaxBlockWeight)
	}
	if n := len(tx.ExtraPayload); n > MaxTxExtraPayload {
		return validation.Consensus(validation.ReasonPayloadOversize, "payload of %d bytes exceeds %d", n, MaxTxExtraPayload)
	}

	// Each value is at most maxMoney and the running total is checked after every
	// addition, so the sum cannot overflow.
	var total int64
	for i, out := range tx.TxOut {
		if out.Value < 0 {
			return validation.Consensus(validation.ReasonVoutNegative, "output %d value %d", i, out.Value)
		}
		if out.Value > maxMoney {
			return validation.Consensus(validation.ReasonVoutTooLarge, "output %d value %d exceeds %d", i, out.Value, maxMoney)
		}
		total += out.Value
		if total > maxMoney {
			return validation.Consensus(validation.ReasonTxOutTotalTooLarge, "output total %d exceeds %d", total, maxMoney)
		}
	}

	if checkDuplicateInputs {
		seen := make(map[wire.OutPoint]struct{}, len(tx.TxIn))
		for _, in := range tx.TxIn {
			if _, ok := seen[in.PreviousOutPoint]; ok {
				return validation.Consensus(validation.ReasonInputsDuplicate, "outpoint %s spent twice", in.PreviousOutPoint)
			}
			seen[in.PreviousOutPoint] = struct{}{}
		}
	}

	if tx.IsCoinBase() {
		n := len(tx.TxIn[0].SignatureScript)
		if n < minCoinbaseScriptLen || n > maxCoinbaseScriptLen {
			return validation.Consensus(validation.ReasonCoinbaseLength, "coinbase script of %d bytes", n)
		}
		return nil
	}
	for i, in := range tx.TxIn {
		if model.IsNullOutPoint(in.PreviousOutPoint) {
			return validation.Consensus(validation.ReasonPrevOutNull, "input %d references the null outpoint", i)
		}
	}
	return nil
}
