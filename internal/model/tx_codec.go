package model

import (
	"bytes"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/wire"
)

// Serialize writes the transaction in its wire format.
func (tx *Transaction) Serialize(w io.Writer) error {
	if err := tx.MsgTx().Serialize(w); err != nil {
		return fmt.Errorf("serialize tx body: %w", err)
	}
	return tx.writePayload(w)
}

// Bytes returns the wire format of the transaction.
func (tx *Transaction) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(tx.SerializeSize())
	if err := tx.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeTransaction parses a single serialized transaction.
func DecodeTransaction(data []byte) (*Transaction, error) {
	r := bytes.NewReader(data)
	tx, err := readTransaction(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("decode tx: %d trailing bytes", r.Len())
	}
	return tx, nil
}

func (tx *Transaction) writePayload(w io.Writer) error {
	if !tx.HasPayload() {
		return nil
	}
	if err := wire.WriteVarBytes(w, 0, tx.ExtraPayload); err != nil {
		return fmt.Errorf("serialize extra payload: %w", err)
	}
	return nil
}

func readTransaction(r *bytes.Reader) (*Transaction, error) {
	enc, err := detectEncoding(r)
	if err != nil {
		return nil, err
	}

	var msg wire.MsgTx
	if err := msg.BtcDecode(r, 0, enc); err != nil {
		return nil, fmt.Errorf("decode tx body: %w", err)
	}

	version, txType := unpackVersion(msg.Version)
	tx := &Transaction{
		Version:  version,
		Type:     txType,
		TxIn:     msg.TxIn,
		TxOut:    msg.TxOut,
		LockTime: msg.LockTime,
	}
	if tx.HasPayload() {
		payload, err := wire.ReadVarBytes(r, 0, wire.MaxMessagePayload, "extra payload")
		if err != nil {
			return nil, fmt.Errorf("decode extra payload: %w", err)
		}
		tx.ExtraPayload = payload
	}
	return tx, nil
}

// detectEncoding peeks past the version field. A zero input count followed by the witness flag selects
// the witness encoding, any other zero count is a transaction without inputs.
func detectEncoding(r *bytes.Reader) (wire.MessageEncoding, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	var head [6]byte
	n, _ := io.ReadFull(r, head[:])
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return 0, err
	}
	if n < 4 {
		return 0, fmt.Errorf("decode tx: %w", io.ErrUnexpectedEOF)
	}
	if n >= 6 && head[4] == wire.TxFlagMarker && head[5] != byte(wire.WitnessFlag) {
		return wire.BaseEncoding, nil
	}
	return wire.WitnessEncoding, nil
}
