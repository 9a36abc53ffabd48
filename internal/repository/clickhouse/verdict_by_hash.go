package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

const verdictByHashQuery = `
SELECT
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
FROM block_verdicts FINAL
WHERE network = ? AND hash = ?
LIMIT 1`

// VerdictByHash returns the latest verdict stored for a block hash.
func (r *Repository) VerdictByHash(ctx context.Context, network model.Network, hash string) (verdict model.BlockVerdict, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("verdict_by_hash", network, err, start)
	}()

	rows, err := r.conn.Query(ctx, verdictByHashQuery, string(network), hash)
	if err != nil {
		return model.BlockVerdict{}, fmt.Errorf("query verdict %s: %w", hash, err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.BlockVerdict{}, fmt.Errorf("iterate verdict %s: %w", hash, err)
		}
		return model.BlockVerdict{}, fmt.Errorf("verdict %s: %w", hash, ErrNotFound)
	}

	var track string
	verdict.Network = network
	if err = rows.Scan(
		&verdict.Height,
		&verdict.Hash,
		&verdict.PrevHash,
		&track,
		&verdict.Timestamp,
		&verdict.Bits,
		&verdict.ExpectedBits,
		&verdict.Signer,
		&verdict.TxCount,
		&verdict.Valid,
		&verdict.Reason,
		&verdict.ValidatedAt,
	); err != nil {
		return model.BlockVerdict{}, fmt.Errorf("scan verdict %s: %w", hash, err)
	}
	if verdict.Track, err = model.ParseTrack(track); err != nil {
		return model.BlockVerdict{}, fmt.Errorf("verdict %s: %w", hash, err)
	}
	if err = rows.Err(); err != nil {
		return model.BlockVerdict{}, fmt.Errorf("iterate verdict %s: %w", hash, err)
	}

	return verdict, nil
}
