// Package chain implements EVM node access for the ingestion pipeline.
package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Backend is the subset of the ethclient surface the client depends on.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error)
}

// Block is a fetched block with sender-resolved transactions, decoupled from
// go-ethereum types so the pipeline and store stay on domain records.
type Block struct {
	Number     uint64
	Hash       string
	ParentHash string
	Time       uint64
	GasUsed    uint64
	GasLimit   uint64
	BaseFee    *big.Int
	Txs        []Tx
}

// Tx is a single transaction within a fetched block.
type Tx struct {
	Hash  common.Hash
	From  common.Address
	To    *common.Address
	Value *big.Int
	// GasPrice is the effective price for legacy txs and the fee cap for
	// dynamic-fee txs; the receipt carries the settled price when needed.
	GasPrice *big.Int
	Input    []byte
	Nonce    uint64
	Index    uint32
}
