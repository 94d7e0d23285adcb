package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/evmscope/evmscope-backend/internal/model"
	"github.com/evmscope/evmscope-backend/pkg/safe"
)

// MaxContiguousBlockNumber returns the highest block number up to which the
// stored chain has no gaps, or -1 when no blocks are stored. The ingestion
// watermark resumes from this value; a block row sitting above a gap must
// not count as progress.
func (r *Repository) MaxContiguousBlockNumber(ctx context.Context, network model.Network) (int64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_contiguous_block_number", network, err, start)
	}()

	const query = `
WITH numbered AS (
    SELECT
        number,
        row_number() OVER (ORDER BY number) - 1 AS rn
    FROM blocks
    WHERE network = ?
    GROUP BY number
)
SELECT max(toNullable(number))
FROM numbered
WHERE rn = number`

	rows, err := r.conn.Query(ctx, query, network)
	if err != nil {
		return 0, fmt.Errorf("query max contiguous block number: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var number *uint64
	if !rows.Next() {
		return -1, nil
	}
	if err = rows.Scan(&number); err != nil {
		return 0, fmt.Errorf("scan max contiguous block number: %w", err)
	}
	if number == nil {
		return -1, nil
	}

	watermark, err := safe.Int64(*number)
	if err != nil {
		return 0, fmt.Errorf("block number overflow: %w", err)
	}
	return watermark, nil
}
