package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

const insertVerdictsQuery = `
INSERT INTO block_verdicts (
	network,
	height,
	hash,
	prev_hash,
	track,
	timestamp,
	bits,
	expected_bits,
	signer,
	tx_count,
	valid,
	reason,
	validated_at
) VALUES`

// InsertVerdicts stores block verdict rows. Rows for a hash already stored replace the older verdict.
func (r *Repository) InsertVerdicts(ctx context.Context, verdicts []model.BlockVerdict) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_verdicts", firstNetwork(verdicts), err, start)
	}()

	if len(verdicts) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertVerdictsQuery)
	if err != nil {
		return fmt.Errorf("prepare verdicts batch: %w", err)
	}

	for _, v := range verdicts {
		if err = batch.Append(
			string(v.Network),
			v.Height,
			v.Hash,
			v.PrevHash,
			v.Track.String(),
			v.Timestamp,
			v.Bits,
			v.ExpectedBits,
			v.Signer,
			v.TxCount,
			v.Valid,
			v.Reason,
			v.ValidatedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append verdict: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert verdicts: %w", err)
	}
	return nil
}

const insertRejectionsQuery = `
INSERT INTO tx_rejections (
	network,
	block_height,
	block_hash,
	txid,
	reason,
	penalizable,
	rejected_at
) VALUES`

// InsertRejections stores transaction rejection rows.
func (r *Repository) InsertRejections(ctx context.Context, rejections []model.TxRejection) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_rejections", firstNetwork(rejections), err, start)
	}()

	if len(rejections) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertRejectionsQuery)
	if err != nil {
		return fmt.Errorf("prepare rejections batch: %w", err)
	}

	for _, rej := range rejections {
		if err = batch.Append(
			string(rej.Network),
			rej.BlockHeight,
			rej.BlockHash,
			rej.TxID,
			rej.Reason,
			rej.Penalizable,
			rej.RejectedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append rejection: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert rejections: %w", err)
	}
	return nil
}

func firstNetwork[T any](items []T) model.Network {
	if len(items) == 0 {
		return ""
	}

	switch v := any(items[0]).(type) {
	case model.BlockVerdict:
		return v.Network
	case model.TxRejection:
		return v.Network
	default:
		return ""
	}
}
