package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/evmscope/evmscope-backend/internal/model"
)

// UpsertBlock stores a block row keyed by number. Re-writing the same number
// replaces the previous row; duplicates never fail the caller.
func (r *Repository) UpsertBlock(ctx context.Context, block model.Block) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_block", block.Network, err, start)
	}()

	const query = `
INSERT INTO blocks (
	network,
	number,
	hash,
	parent_hash,
	timestamp,
	tx_count,
	gas_used,
	gas_limit,
	base_fee,
	ingested_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare block batch: %w", err)
	}

	ingestedAt := block.IngestedAt
	if ingestedAt.IsZero() {
		ingestedAt = time.Now()
	}

	if err = batch.Append(
		string(block.Network),
		block.Number,
		block.Hash,
		block.ParentHash,
		block.Timestamp,
		block.TXCount,
		block.GasUsed,
		block.GasLimit,
		block.BaseFee,
		ingestedAt,
	); err != nil {
		return fmt.Errorf("append block: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("upsert block %d: %w", block.Number, err)
	}
	return nil
}
