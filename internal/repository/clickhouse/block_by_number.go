package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/evmscope/evmscope-backend/internal/model"
)

// BlockByNumber returns the stored block at number, or nil when absent.
func (r *Repository) BlockByNumber(ctx context.Context, network model.Network, number uint64) (*model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_by_number", network, err, start)
	}()

	const query = `
SELECT network, number, hash, parent_hash, timestamp, tx_count, gas_used, gas_limit, base_fee, ingested_at
FROM blocks FINAL
WHERE network = ? AND number = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, network, number)
	if err != nil {
		return nil, fmt.Errorf("query block %d: %w", number, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return nil, nil
	}

	block, err := scanBlock(rows)
	if err != nil {
		return nil, fmt.Errorf("scan block %d: %w", number, err)
	}
	return block, nil
}
