package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/evmscope/evmscope-backend/internal/model"
)

// InterfaceTagsFor returns the interface names detected for a contract address.
func (r *Repository) InterfaceTagsFor(ctx context.Context, network model.Network, address string) ([]string, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("interface_tags_for", network, err, start)
	}()

	const query = `
SELECT interface
FROM interface_tags FINAL
WHERE network = ? AND address = ?
ORDER BY interface ASC`

	rows, err := r.conn.Query(ctx, query, network, address)
	if err != nil {
		return nil, fmt.Errorf("query interface tags for %s: %w", address, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan interface tag: %w", err)
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interface tags for %s: %w", address, err)
	}
	return names, nil
}
