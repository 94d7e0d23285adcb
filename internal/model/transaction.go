package model

import (
	"math/big"
	"time"
)

// Transaction represents an EVM transaction with its receipt-derived fields.
// Hash is the primary identity; the store replaces on re-insert.
type Transaction struct {
	Network     Network
	Hash        string
	BlockNumber uint64
	From        string
	// To is nil for contract-creation transactions.
	To       *string
	Value    *big.Int
	GasPrice *big.Int
	GasUsed  uint64
	Input    []byte
	Success  bool
	Index    uint32
	Nonce    uint64
	// ContractAddress is set when the transaction deployed a contract.
	ContractAddress *string
	Timestamp       time.Time
}

// IsContractCreation reports whether the transaction created a contract.
func (t Transaction) IsContractCreation() bool {
	return t.To == nil
}

// InsertBlock groups a block with its transactions for a single commit pass.
type InsertBlock struct {
	Block Block
	Txs   []Transaction
}
