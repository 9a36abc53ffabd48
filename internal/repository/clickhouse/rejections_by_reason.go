package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

const rejectionsByReasonQuery = `
SELECT
	block_height,
	block_hash,
	txid,
	penalizable,
	rejected_at
FROM tx_rejections FINAL
WHERE network = ? AND reason = ?
ORDER BY block_height DESC, txid
LIMIT ?`

// RejectionsByReason returns the most recent rejections with reason, newest block first.
func (r *Repository) RejectionsByReason(
	ctx context.Context,
	network model.Network,
	reason string,
	limit int,
) (rejections []model.TxRejection, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("rejections_by_reason", network, err, start)
	}()

	if limit <= 0 {
		return nil, nil
	}

	rows, err := r.conn.Query(ctx, rejectionsByReasonQuery, string(network), reason, limit)
	if err != nil {
		return nil, fmt.Errorf("query rejections by reason: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		rej := model.TxRejection{Network: network, Reason: reason}
		if err = rows.Scan(&rej.BlockHeight, &rej.BlockHash, &rej.TxID, &rej.Penalizable, &rej.RejectedAt); err != nil {
			return nil, fmt.Errorf("scan rejection: %w", err)
		}
		rejections = append(rejections, rej)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rejections: %w", err)
	}

	return rejections, nil
}
