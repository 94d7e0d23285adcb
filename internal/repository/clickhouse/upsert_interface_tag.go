package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/evmscope/evmscope-backend/internal/model"
)

// UpsertInterfaceTags stores (address, interface) tags. Re-writing an
// existing pair only refreshes its detection timestamp.
func (r *Repository) UpsertInterfaceTags(ctx context.Context, tags []model.InterfaceTag) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_interface_tags", firstNetwork(tags), err, start)
	}()

	if len(tags) == 0 {
		return nil
	}

	const query = `
INSERT INTO interface_tags (
	network,
	address,
	interface,
	detected_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare interface tags batch: %w", err)
	}

	for _, tag := range tags {
		detectedAt := tag.DetectedAt
		if detectedAt.IsZero() {
			detectedAt = time.Now()
		}
		if err = batch.Append(
			string(tag.Network),
			tag.Address,
			tag.Interface,
			detectedAt,
		); err != nil {
			return fmt.Errorf("append interface tag: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("upsert interface tags: %w", err)
	}
	return nil
}
