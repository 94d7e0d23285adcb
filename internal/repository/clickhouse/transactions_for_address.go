package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/evmscope/evmscope-backend/internal/model"
)

// TransactionsForAddress returns transactions sent from or to address, most
// recent first (block number, then position index, both descending).
func (r *Repository) TransactionsForAddress(ctx context.Context, network model.Network, address string, limit, offset uint64) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transactions_for_address", network, err, start)
	}()

	const query = `
SELECT network, hash, block_number, from_address, to_address, value, gas_price, gas_used,
       input, success, tx_index, nonce, contract_address, timestamp
FROM transactions FINAL
WHERE network = ? AND (from_address = ? OR to_address = ?)
ORDER BY block_number DESC, tx_index DESC
LIMIT ? OFFSET ?`

	rows, err := r.conn.Query(ctx, query, network, address, address, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query transactions for address %s: %w", address, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var txs []model.Transaction
	for rows.Next() {
		tx, scanErr := scanTransaction(rows)
		if scanErr != nil {
			err = fmt.Errorf("scan transaction: %w", scanErr)
			return nil, err
		}
		txs = append(txs, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions for address %s: %w", address, err)
	}
	return txs, nil
}
