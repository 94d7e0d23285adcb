package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/evmscope/evmscope-backend/internal/model"
)

// UpsertVerification stores a contract verification record keyed by address.
// Status transitions replace the previous row.
func (r *Repository) UpsertVerification(ctx context.Context, v model.ContractVerification) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_verification", v.Network, err, start)
	}()

	const query = `
INSERT INTO contract_verifications (
	network,
	address,
	contract_name,
	compiler_version,
	optimization,
	source_code,
	status,
	error,
	abi,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare verification batch: %w", err)
	}

	updatedAt := v.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	if err = batch.Append(
		string(v.Network),
		v.Address,
		v.ContractName,
		v.CompilerVersion,
		v.Optimization,
		v.SourceCode,
		string(v.Status),
		v.Error,
		v.ABI,
		updatedAt,
	); err != nil {
		return fmt.Errorf("append verification: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("upsert verification for %s: %w", v.Address, err)
	}
	return nil
}
