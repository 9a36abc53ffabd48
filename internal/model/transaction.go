package model

import (
	"bytes"
	"math"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// TxType is the special transaction type carried in the upper half of the version field.
type TxType uint16

const (
	TxNormal                  TxType = 0
	TxProviderRegister        TxType = 1
	TxProviderUpdateService   TxType = 2
	TxProviderUpdateRegistrar TxType = 3
	TxProviderUpdateRevoke    TxType = 4
	TxCoinbase                TxType = 5
	TxQuorumCommitment        TxType = 6
	TxStake                   TxType = 7
)

// SpecialTxVersion is the first version that carries a type tag and extra payload.
const SpecialTxVersion = 3

func (t TxType) String() string {
	switch t {
	case TxNormal:
		return "normal"
	case TxProviderRegister:
		return "provider-register"
	case TxProviderUpdateService:
		return "provider-update-service"
	case TxProviderUpdateRegistrar:
		return "provider-update-registrar"
	case TxProviderUpdateRevoke:
		return "provider-update-revoke"
	case TxCoinbase:
		return "coinbase"
	case TxQuorumCommitment:
		return "quorum-commitment"
	case TxStake:
		return "stake"
	default:
		return "unknown"
	}
}

// Transaction is a typed transaction. Validators only read it.
type Transaction struct {
	Version      uint16
	Type         TxType
	TxIn         []*wire.TxIn
	TxOut        []*wire.TxOut
	LockTime     uint32
	ExtraPayload []byte
}

// HasPayload reports whether the extra payload is part of the serialization.
func (tx *Transaction) HasPayload() bool {
	return tx.Version >= SpecialTxVersion && tx.Type != TxNormal
}

// MsgTx returns the btcd view of the transaction with the packed version field.
func (tx *Transaction) MsgTx() *wire.MsgTx {
	return &wire.MsgTx{
		Version:  packVersion(tx.Version, tx.Type),
		TxIn:     tx.TxIn,
		TxOut:    tx.TxOut,
		LockTime: tx.LockTime,
	}
}

// Hash returns the double-SHA256 of the serialization without witness data.
func (tx *Transaction) Hash() chainhash.Hash {
	var buf bytes.Buffer
	buf.Grow(tx.SerializeSizeStripped())
	// bytes.Buffer writes never fail.
	_ = tx.MsgTx().SerializeNoWitness(&buf)
	_ = tx.writePayload(&buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// SerializeSize is the full serialized size including witness data.
func (tx *Transaction) SerializeSize() int {
	return tx.MsgTx().SerializeSize() + tx.payloadSize()
}

// SerializeSizeStripped is the serialized size excluding witness data.
func (tx *Transaction) SerializeSizeStripped() int {
	return tx.MsgTx().SerializeSizeStripped() + tx.payloadSize()
}

// IsCoinBase reports whether the transaction has the coinbase shape: one input spending the null outpoint.
func (tx *Transaction) IsCoinBase() bool {
	return blockchain.IsCoinBaseTx(tx.MsgTx())
}

// IsCoinStake reports whether the transaction has the coinstake shape: a real first input and an empty
// first output followed by at least one more output.
func (tx *Transaction) IsCoinStake() bool {
	if len(tx.TxIn) == 0 || IsNullOutPoint(tx.TxIn[0].PreviousOutPoint) {
		return false
	}
	if len(tx.TxOut) < 2 {
		return false
	}
	first := tx.TxOut[0]
	return first.Value == 0 && len(first.PkScript) == 0
}

// IsNullOutPoint reports whether op references no previous output.
func IsNullOutPoint(op wire.OutPoint) bool {
	return op.Index == math.MaxUint32 && op.Hash == (chainhash.Hash{})
}

func (tx *Transaction) payloadSize() int {
	if !tx.HasPayload() {
		return 0
	}
	return wire.VarIntSerializeSize(uint64(len(tx.ExtraPayload))) + len(tx.ExtraPayload)
}

func packVersion(version uint16, txType TxType) int32 {
	return int32(uint32(version) | uint32(txType)<<16)
}

func unpackVersion(packed int32) (uint16, TxType) {
	u := uint32(packed)
	return uint16(u & 0xffff), TxType(u >> 16)
}
