package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/evmscope/evmscope-backend/internal/model"
)

// UpsertTransactions stores transaction rows keyed by hash. Replays of the
// same hashes replace the previous rows.
func (r *Repository) UpsertTransactions(ctx context.Context, txs []model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_transactions", firstNetwork(txs), err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO transactions (
	network,
	hash,
	block_number,
	from_address,
	to_address,
	value,
	gas_price,
	gas_used,
	input,
	success,
	tx_index,
	nonce,
	contract_address,
	timestamp,
	ingested_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	now := time.Now()
	for _, tx := range txs {
		if err = batch.Append(
			string(tx.Network),
			tx.Hash,
			tx.BlockNumber,
			tx.From,
			tx.To,
			bigOrZero(tx.Value),
			bigOrZero(tx.GasPrice),
			tx.GasUsed,
			string(tx.Input),
			tx.Success,
			tx.Index,
			tx.Nonce,
			tx.ContractAddress,
			tx.Timestamp,
			now,
		); err != nil {
			return fmt.Errorf("append transaction %s: %w", tx.Hash, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("upsert transactions: %w", err)
	}
	return nil
}

func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

func firstNetwork[T any](items []T) model.Network {
	if len(items) == 0 {
		return ""
	}

	switch v := any(items[0]).(type) {
	case model.Block:
		return v.Network
	case model.Transaction:
		return v.Network
	case model.InterfaceTag:
		return v.Network
	case model.ContractVerification:
		return v.Network
	default:
		return ""
	}
}
