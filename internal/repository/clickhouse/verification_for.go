package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/evmscope/evmscope-backend/internal/model"
)

// VerificationFor returns the verification record for a contract address,
// or nil when none exists.
func (r *Repository) VerificationFor(ctx context.Context, network model.Network, address string) (*model.ContractVerification, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("verification_for", network, err, start)
	}()

	const query = `
SELECT network, address, contract_name, compiler_version, optimization, source_code, status, error, abi, updated_at
FROM contract_verifications FINAL
WHERE network = ? AND address = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, network, address)
	if err != nil {
		return nil, fmt.Errorf("query verification for %s: %w", address, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return nil, nil
	}

	var (
		v          model.ContractVerification
		networkCol string
		status     string
	)
	if err = rows.Scan(
		&networkCol,
		&v.Address,
		&v.ContractName,
		&v.CompilerVersion,
		&v.Optimization,
		&v.SourceCode,
		&status,
		&v.Error,
		&v.ABI,
		&v.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan verification for %s: %w", address, err)
	}
	v.Network = model.Network(networkCol)
	v.Status = model.VerificationStatus(status)
	return &v, nil
}
