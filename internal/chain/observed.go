package chain

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedBackend records per-operation metrics around node calls.
type ObservedBackend struct {
	backend    Backend
	rpcMetrics RPCMetrics
}

func NewObservedBackend(backend Backend, rpcMetrics RPCMetrics) *ObservedBackend {
	return &ObservedBackend{
		backend:    backend,
		rpcMetrics: rpcMetrics,
	}
}

func (b *ObservedBackend) ChainID(ctx context.Context) (id *big.Int, err error) {
	started := time.Now()
	defer func() {
		b.rpcMetrics.Observe("chain_id", err, started)
	}()
	return b.backend.ChainID(ctx)
}

func (b *ObservedBackend) BlockNumber(ctx context.Context) (head uint64, err error) {
	started := time.Now()
	defer func() {
		b.rpcMetrics.Observe("block_number", err, started)
	}()
	return b.backend.BlockNumber(ctx)
}

func (b *ObservedBackend) BlockByNumber(ctx context.Context, number *big.Int) (block *types.Block, err error) {
	started := time.Now()
	defer func() {
		b.rpcMetrics.Observe("block_by_number", err, started)
	}()
	return b.backend.BlockByNumber(ctx, number)
}

func (b *ObservedBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (receipt *types.Receipt, err error) {
	started := time.Now()
	defer func() {
		b.rpcMetrics.Observe("transaction_receipt", err, started)
	}()
	return b.backend.TransactionReceipt(ctx, txHash)
}

func (b *ObservedBackend) SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (sub ethereum.Subscription, err error) {
	started := time.Now()
	defer func() {
		b.rpcMetrics.Observe("subscribe_new_head", err, started)
	}()
	return b.backend.SubscribeNewHead(ctx, ch)
}
