// Package pow implements the difficulty retarget rules and the proof-of-work check.
package pow

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/holiman/uint256"
)

// DecodeCompact unpacks a compact target. negative and overflow report malformed encodings; the
// returned value is still the plain decoding so callers can reproduce historical behaviour.
func DecodeCompact(compact uint32) (target *uint256.Int, negative, overflow bool) {
	size := compact >> 24
	word := compact & 0x007fffff

	target = new(uint256.Int)
	if size <= 3 {
		word >>= 8 * (3 - size)
		target.SetUint64(uint64(word))
	} else {
		target.SetUint64(uint64(word))
		target.Lsh(target, uint(8*(size-3)))
	}

	negative = word != 0 && compact&0x00800000 != 0
	overflow = word != 0 && (size > 34 ||
		(word > 0xff && size > 33) ||
		(word > 0xffff && size > 32))
	return target, negative, overflow
}

// EncodeCompact packs target into its compact form, rounding the mantissa down.
func EncodeCompact(target *uint256.Int) uint32 {
	size := uint32(target.BitLen()+7) / 8

	var compact uint32
	if size <= 3 {
		compact = uint32(target.Uint64() << (8 * (3 - size)))
	} else {
		shifted := new(uint256.Int).Rsh(target, uint(8*(size-3)))
		compact = uint32(shifted.Uint64())
	}

	// The sign bit is part of the mantissa, so a set top bit moves one byte into the exponent.
	if compact&0x00800000 != 0 {
		compact >>= 8
		size++
	}
	return compact | size<<24
}

// HashToInt interprets a block hash as a 256-bit unsigned integer.
func HashToInt(hash chainhash.Hash) *uint256.Int {
	var be [chainhash.HashSize]byte
	for i, b := range hash {
		be[chainhash.HashSize-1-i] = b
	}
	return new(uint256.Int).SetBytes32(be[:])
}
