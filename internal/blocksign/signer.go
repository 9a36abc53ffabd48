// Package blocksign derives the identity that must sign a block, signs blocks and verifies signatures.
package blocksign

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/script"
)

// ErrIdentityNotFound is returned when no output of the designated transaction carries an identity.
var ErrIdentityNotFound = errors.New("signing identity not found")

// stakeOutput returns the designated output of a stake block: the second output of the second
// transaction.
func stakeOutput(block *model.Block) (*wire.TxOut, bool) {
	if len(block.Transactions) < 2 || len(block.Transactions[1].TxOut) < 2 {
		return nil, false
	}
	return block.Transactions[1].TxOut[1], true
}

// ExtractSigningIdentity returns the key identity that must sign block. Work blocks take the first
// coinbase output with a recognised pattern; stake blocks take the stake output only.
func ExtractSigningIdentity(block *model.Block) (model.KeyID, error) {
	if block.IsProofOfStake() {
		out, ok := stakeOutput(block)
		if !ok {
			return model.KeyID{}, ErrIdentityNotFound
		}
		id, _, ok := script.KeyID(out.PkScript)
		if !ok {
			return model.KeyID{}, fmt.Errorf("stake output: %w", ErrIdentityNotFound)
		}
		return id, nil
	}

	if len(block.Transactions) == 0 {
		return model.KeyID{}, ErrIdentityNotFound
	}
	for _, out := range block.Transactions[0].TxOut {
		if id, _, ok := script.KeyID(out.PkScript); ok {
			return id, nil
		}
	}
	return model.KeyID{}, fmt.Errorf("coinbase outputs: %w", ErrIdentityNotFound)
}

// SignBlock signs the block hash with the key of its signing identity and stores the signature.
// The signature field is the only field modified.
func SignBlock(block *model.Block, keys KeyStore) error {
	id, err := ExtractSigningIdentity(block)
	if err != nil {
		return err
	}
	key, err := keys.Lookup(id)
	if err != nil {
		return err
	}

	compressed := id == model.KeyIDFromPubKey(key.PubKey().SerializeCompressed())
	hash := block.Hash()
	block.Signature = ecdsa.SignCompact(key, hash[:], compressed)
	return nil
}

// VerifyBlockSignature reports whether the block carries a valid signature. Work blocks must not be
// signed. Stake blocks must be signed by the key behind the stake output.
func VerifyBlockSignature(block *model.Block) bool {
	if !block.IsProofOfStake() {
		return len(block.Signature) == 0
	}
	if len(block.Signature) == 0 {
		return false
	}

	out, ok := stakeOutput(block)
	if !ok {
		return false
	}
	pattern, solutions := script.Solve(out.PkScript)

	hash := block.Hash()
	recovered, compressed, err := ecdsa.RecoverCompact(block.Signature, hash[:])
	if err != nil {
		return false
	}

	switch pattern {
	case script.PatternPubKey:
		expected, err := btcec.ParsePubKey(solutions[0])
		if err != nil {
			return false
		}
		return expected.IsEqual(recovered)
	case script.PatternPubKeyHash, script.PatternWitnessPubKeyHash:
		return bytes.Equal(solutions[0], hash160(recovered, compressed))
	default:
		return false
	}
}

func hash160(pub *btcec.PublicKey, compressed bool) []byte {
	var id model.KeyID
	if compressed {
		id = model.KeyIDFromPubKey(pub.SerializeCompressed())
	} else {
		id = model.KeyIDFromPubKey(pub.SerializeUncompressed())
	}
	return id[:]
}
