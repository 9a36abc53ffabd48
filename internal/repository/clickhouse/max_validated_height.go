package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

const maxValidatedHeightQuery = `
SELECT count() AS verdicts, coalesce(max(height), toUInt64(0)) AS max_height
FROM block_verdicts
WHERE network = ?`

// MaxValidatedHeight returns the highest height with a stored verdict. ok is false when the network has
// no verdicts yet.
func (r *Repository) MaxValidatedHeight(ctx context.Context, network model.Network) (height uint64, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_validated_height", network, err, start)
	}()

	rows, err := r.conn.Query(ctx, maxValidatedHeightQuery, string(network))
	if err != nil {
		return 0, false, fmt.Errorf("query max validated height: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		return 0, false, errors.New("max validated height not returned")
	}

	var count uint64
	if err = rows.Scan(&count, &height); err != nil {
		return 0, false, fmt.Errorf("scan max validated height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate max validated height: %w", err)
	}

	return height, count > 0, nil
}
