package model

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil"
)

// KeyID is the hash160 of a serialized public key.
type KeyID [20]byte

// KeyIDFromPubKey hashes a serialized public key into its identity.
func KeyIDFromPubKey(serialized []byte) KeyID {
	var id KeyID
	copy(id[:], btcutil.Hash160(serialized))
	return id
}

// KeyIDFromBytes copies a 20-byte hash into a KeyID. ok is false when b has another length.
func KeyIDFromBytes(b []byte) (id KeyID, ok bool) {
	if len(b) != len(id) {
		return id, false
	}
	copy(id[:], b)
	return id, true
}

// IsZero reports whether the identity is unset.
func (id KeyID) IsZero() bool {
	return id == KeyID{}
}

func (id KeyID) String() string {
	return hex.EncodeToString(id[:])
}
