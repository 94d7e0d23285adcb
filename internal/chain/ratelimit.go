package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/ratelimit"
)

// RateLimitedBackend throttles every node call to a fixed requests-per-second
// budget so a fast backfill cannot exhaust the provider quota.
type RateLimitedBackend struct {
	backend Backend
	rl      ratelimit.Limiter
}

// NewRateLimitedBackend wraps backend with an rps request budget.
// rps <= 0 disables throttling.
func NewRateLimitedBackend(backend Backend, rps int) Backend {
	if rps <= 0 {
		return backend
	}
	return &RateLimitedBackend{backend: backend, rl: ratelimit.New(rps)}
}

func (b *RateLimitedBackend) ChainID(ctx context.Context) (*big.Int, error) {
	b.rl.Take()
	return b.backend.ChainID(ctx)
}

func (b *RateLimitedBackend) BlockNumber(ctx context.Context) (uint64, error) {
	b.rl.Take()
	return b.backend.BlockNumber(ctx)
}

func (b *RateLimitedBackend) BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error) {
	b.rl.Take()
	return b.backend.BlockByNumber(ctx, number)
}

func (b *RateLimitedBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	b.rl.Take()
	return b.backend.TransactionReceipt(ctx, txHash)
}

func (b *RateLimitedBackend) SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error) {
	b.rl.Take()
	return b.backend.SubscribeNewHead(ctx, ch)
}
