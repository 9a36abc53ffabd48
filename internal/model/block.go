package model

import (
	"bytes"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Block is a full block with its authentication signature.
type Block struct {
	Header       wire.BlockHeader
	Transactions []*Transaction
	Signature    []byte
}

// Hash returns the block identity hash that signatures commit to.
func (b *Block) Hash() chainhash.Hash {
	return b.Header.BlockHash()
}

// IsProofOfStake reports whether the second transaction is a coinstake.
func (b *Block) IsProofOfStake() bool {
	return len(b.Transactions) > 1 && b.Transactions[1].IsCoinStake()
}

// Track returns the sub-chain the block belongs to.
func (b *Block) Track() Track {
	if b.IsProofOfStake() {
		return TrackStake
	}
	return TrackWork
}

// Serialize writes the header, the transactions and the signature.
func (b *Block) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.Header.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("serialize header: %w", err)
	}
	if err := wire.WriteVarInt(&buf, 0, uint64(len(b.Transactions))); err != nil {
		return nil, fmt.Errorf("serialize tx count: %w", err)
	}
	for i, tx := range b.Transactions {
		if err := tx.Serialize(&buf); err != nil {
			return nil, fmt.Errorf("serialize tx %d: %w", i, err)
		}
	}
	if err := wire.WriteVarBytes(&buf, 0, b.Signature); err != nil {
		return nil, fmt.Errorf("serialize signature: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeBlock parses a serialized block.
func DecodeBlock(data []byte) (*Block, error) {
	r := bytes.NewReader(data)

	var block Block
	if err := block.Header.Deserialize(r); err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}
	count, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return nil, fmt.Errorf("decode tx count: %w", err)
	}
	if count > uint64(r.Len()) {
		return nil, fmt.Errorf("decode tx count: %d exceeds remaining %d bytes", count, r.Len())
	}

	block.Transactions = make([]*Transaction, 0, count)
	for i := uint64(0); i < count; i++ {
		tx, err := readTransaction(r)
		if err != nil {
			return nil, fmt.Errorf("decode tx %d: %w", i, err)
		}
		block.Transactions = append(block.Transactions, tx)
	}

	if r.Len() > 0 {
		sig, err := wire.ReadVarBytes(r, 0, wire.MaxMessagePayload, "block signature")
		if err != nil {
			return nil, fmt.Errorf("decode signature: %w", err)
		}
		block.Signature = sig
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("decode block: %d trailing bytes", r.Len())
	}
	return &block, nil
}

// BlockVerdict is the persisted outcome of validating one block.
type BlockVerdict struct {
	Network      Network
	Height       uint64
	Hash         string
	PrevHash     string
	Track        Track
	Timestamp    time.Time
	Bits         uint32
	ExpectedBits uint32
	Signer       string
	TxCount      uint32
	Valid        bool
	Reason       string
	ValidatedAt  time.Time
}

// TxRejection records a transaction that failed a structural or contextual check.
type TxRejection struct {
	Network     Network
	BlockHeight uint64
	BlockHash   string
	TxID        string
	Reason      string
	Penalizable bool
	RejectedAt  time.Time
}
