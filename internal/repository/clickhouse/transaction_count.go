package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/evmscope/evmscope-backend/internal/model"
)

// TransactionCount returns the number of distinct stored transactions.
func (r *Repository) TransactionCount(ctx context.Context, network model.Network) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_count", network, err, start)
	}()

	const query = `
SELECT count() AS tx_count
FROM transactions FINAL
WHERE network = ?`

	rows, err := r.conn.Query(ctx, query, network)
	if err != nil {
		return 0, fmt.Errorf("query transaction count: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var count uint64
	if !rows.Next() {
		return 0, fmt.Errorf("transaction count not found")
	}
	if err = rows.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan transaction count: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate transaction count: %w", err)
	}
	return count, nil
}
