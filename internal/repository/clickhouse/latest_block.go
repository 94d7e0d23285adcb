package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/evmscope/evmscope-backend/internal/model"
)

// LatestBlock returns the highest-numbered stored block, or nil when the
// store is empty. The ingestion watermark is derived from this value.
func (r *Repository) LatestBlock(ctx context.Context, network model.Network) (*model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("latest_block", network, err, start)
	}()

	const query = `
SELECT network, number, hash, parent_hash, timestamp, tx_count, gas_used, gas_limit, base_fee, ingested_at
FROM blocks FINAL
WHERE network = ?
ORDER BY number DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, network)
	if err != nil {
		return nil, fmt.Errorf("query latest block: %w", err)
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
		return nil, fmt.Errorf("scan latest block: %w", err)
	}
	return block, nil
}

type blockScanner interface {
	Scan(dest ...any) error
}

func scanBlock(rows blockScanner) (*model.Block, error) {
	var (
		block   model.Block
		network string
	)
	if err := rows.Scan(
		&network,
		&block.Number,
		&block.Hash,
		&block.ParentHash,
		&block.Timestamp,
		&block.TXCount,
		&block.GasUsed,
		&block.GasLimit,
		&block.BaseFee,
		&block.IngestedAt,
	); err != nil {
		return nil, err
	}
	block.Network = model.Network(network)
	return &block, nil
}
