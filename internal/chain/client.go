package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/evmscope/evmscope-backend/pkg/safe"
)

const defaultLivenessTimeout = 5 * time.Second

// Client fetches blocks, receipts and liveness from an EVM node.
type Client struct {
	backend         Backend
	livenessTimeout time.Duration

	mu     sync.Mutex
	signer types.Signer
}

// NewClient wraps a node backend. The liveness timeout bounds the
// network-identity query used by CheckLiveness.
func NewClient(backend Backend, livenessTimeout time.Duration) (*Client, error) {
	if backend == nil {
		return nil, errors.New("chain backend is required")
	}
	if livenessTimeout <= 0 {
		livenessTimeout = defaultLivenessTimeout
	}
	return &Client{backend: backend, livenessTimeout: livenessTimeout}, nil
}

// CheckLiveness reports whether the node answers a chain-identity query
// within the configured timeout. Failures collapse to false.
func (c *Client) CheckLiveness(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.livenessTimeout)
	defer cancel()

	id, err := c.backend.ChainID(ctx)
	if err != nil {
		return false
	}
	c.setSigner(id)
	return true
}

// HeadNumber returns the highest block number the node currently reports.
func (c *Client) HeadNumber(ctx context.Context) (uint64, error) {
	head, err := c.backend.BlockNumber(ctx)
	if err != nil {
		return 0, upstream("head number", err)
	}
	return head, nil
}

// FetchBlock retrieves the block at number with all transactions and
// recovered sender addresses.
func (c *Client) FetchBlock(ctx context.Context, number uint64) (*Block, error) {
	src, err := c.backend.BlockByNumber(ctx, new(big.Int).SetUint64(number))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("block %d: %w", number, ErrBlockNotFound)
		}
		return nil, upstream(fmt.Sprintf("block %d", number), err)
	}

	signer, err := c.blockSigner(ctx)
	if err != nil {
		return nil, err
	}

	block := &Block{
		Number:     src.NumberU64(),
		Hash:       src.Hash().Hex(),
		ParentHash: src.ParentHash().Hex(),
		Time:       src.Time(),
		GasUsed:    src.GasUsed(),
		GasLimit:   src.GasLimit(),
		BaseFee:    src.BaseFee(),
		Txs:        make([]Tx, 0, len(src.Transactions())),
	}

	for i, tx := range src.Transactions() {
		from, err := types.Sender(signer, tx)
		if err != nil {
			return nil, fmt.Errorf("recover sender for tx %s: %w", tx.Hash(), err)
		}
		index, err := safe.Uint32(i)
		if err != nil {
			return nil, fmt.Errorf("tx index overflow in block %d: %w", number, err)
		}
		block.Txs = append(block.Txs, Tx{
			Hash:     tx.Hash(),
			From:     from,
			To:       tx.To(),
			Value:    tx.Value(),
			GasPrice: tx.GasPrice(),
			Input:    tx.Data(),
			Nonce:    tx.Nonce(),
			Index:    index,
		})
	}
	return block, nil
}

// FetchReceipt returns the receipt for txHash, or nil when the node has not
// indexed it yet. Absence is a legal outcome, distinct from transport failure.
func (c *Client) FetchReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	receipt, err := c.backend.TransactionReceipt(ctx, txHash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, nil
		}
		return nil, upstream(fmt.Sprintf("receipt %s", txHash), err)
	}
	return receipt, nil
}

func (c *Client) blockSigner(ctx context.Context) (types.Signer, error) {
	c.mu.Lock()
	signer := c.signer
	c.mu.Unlock()
	if signer != nil {
		return signer, nil
	}

	id, err := c.backend.ChainID(ctx)
	if err != nil {
		return nil, upstream("chain id", err)
	}
	return c.setSigner(id), nil
}

func (c *Client) setSigner(chainID *big.Int) types.Signer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.signer == nil {
		c.signer = types.LatestSignerForChainID(chainID)
	}
	return c.signer
}

func upstream(op string, err error) error {
	return fmt.Errorf("%s: %w: %s", op, ErrUpstreamUnavailable, err)
}
