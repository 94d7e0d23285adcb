package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/evmscope/evmscope-backend/internal/model"
)

// TransactionsForBlock returns the stored transactions of a block ordered by
// their position index ascending.
func (r *Repository) TransactionsForBlock(ctx context.Context, network model.Network, number uint64) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transactions_for_block", network, err, start)
	}()

	const query = `
SELECT network, hash, block_number, from_address, to_address, value, gas_price, gas_used,
       input, success, tx_index, nonce, contract_address, timestamp
FROM transactions FINAL
WHERE network = ? AND block_number = ?
ORDER BY tx_index ASC`

	rows, err := r.conn.Query(ctx, query, network, number)
	if err != nil {
		return nil, fmt.Errorf("query transactions for block %d: %w", number, err)
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
		return nil, fmt.Errorf("iterate transactions for block %d: %w", number, err)
	}
	return txs, nil
}

func scanTransaction(rows blockScanner) (model.Transaction, error) {
	var (
		tx       model.Transaction
		network  string
		value    big.Int
		gasPrice big.Int
		input    string
	)
	if err := rows.Scan(
		&network,
		&tx.Hash,
		&tx.BlockNumber,
		&tx.From,
		&tx.To,
		&value,
		&gasPrice,
		&tx.GasUsed,
		&input,
		&tx.Success,
		&tx.Index,
		&tx.Nonce,
		&tx.ContractAddress,
		&tx.Timestamp,
	); err != nil {
		return model.Transaction{}, err
	}
	tx.Network = model.Network(network)
	tx.Value = &value
	tx.GasPrice = &gasPrice
	tx.Input = []byte(input)
	return tx, nil
}
