// Package script recognises the output script patterns that carry a signing identity.
package script

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

// Pattern is a recognised locking script form.
type Pattern uint8

const (
	PatternNone Pattern = iota
	PatternPubKey
	PatternPubKeyHash
	PatternWitnessPubKeyHash
	PatternWitnessScriptHash
)

func (p Pattern) String() string {
	switch p {
	case PatternPubKey:
		return "pubkey"
	case PatternPubKeyHash:
		return "pubkeyhash"
	case PatternWitnessPubKeyHash:
		return "witness_v0_keyhash"
	case PatternWitnessScriptHash:
		return "witness_v0_scripthash"
	default:
		return "nonstandard"
	}
}

// addressParams only affects address encoding, never the extracted script data.
var addressParams = &chaincfg.MainNetParams

// Solve classifies pkScript and returns the embedded key or hash. Unrecognised or malformed scripts,
// including pay-to-key scripts whose key is not on the curve, yield PatternNone.
func Solve(pkScript []byte) (Pattern, [][]byte) {
	class, addrs, _, err := txscript.ExtractPkScriptAddrs(pkScript, addressParams)
	if err != nil || len(addrs) != 1 {
		return PatternNone, nil
	}

	var pattern Pattern
	switch class {
	case txscript.PubKeyTy:
		pattern = PatternPubKey
	case txscript.PubKeyHashTy:
		pattern = PatternPubKeyHash
	case txscript.WitnessV0PubKeyHashTy:
		pattern = PatternWitnessPubKeyHash
	case txscript.WitnessV0ScriptHashTy:
		pattern = PatternWitnessScriptHash
	default:
		return PatternNone, nil
	}
	return pattern, [][]byte{addrs[0].ScriptAddress()}
}

// KeyID resolves the identity of an output script. Pay-to-key hashes the key; the hash patterns carry
// it directly; a witness script hash is reduced to the hash160 of its 32-byte program.
func KeyID(pkScript []byte) (model.KeyID, Pattern, bool) {
	pattern, solutions := Solve(pkScript)
	switch pattern {
	case PatternPubKey:
		return model.KeyIDFromPubKey(solutions[0]), pattern, true
	case PatternWitnessScriptHash:
		var id model.KeyID
		copy(id[:], btcutil.Hash160(solutions[0]))
		return id, pattern, true
	case PatternPubKeyHash, PatternWitnessPubKeyHash:
		id, ok := model.KeyIDFromBytes(solutions[0])
		return id, pattern, ok
	default:
		return model.KeyID{}, PatternNone, false
	}
}
