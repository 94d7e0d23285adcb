package pipeline

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/evmscope/evmscope-backend/internal/chain"
	"github.com/evmscope/evmscope-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ChainClient is the node access surface the pipeline drives.
	ChainClient interface {
		CheckLiveness(ctx context.Context) bool
		HeadNumber(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, number uint64) (*chain.Block, error)
		FetchReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
		SubscribeNewBlocks(ctx context.Context, handler func(number uint64)) (HeadSubscription, error)
	}

	HeadSubscription interface {
		Err() <-chan error
		Unsubscribe()
	}

	// Repository is the store surface the pipeline writes through. All write
	// operations are idempotent upserts, safe under re-delivery.
	Repository interface {
		MaxContiguousBlockNumber(ctx context.Context, network model.Network) (int64, error)
		UpsertBlock(ctx context.Context, block model.Block) error
		UpsertTransactions(ctx context.Context, txs []model.Transaction) error
		UpsertInterfaceTags(ctx context.Context, tags []model.InterfaceTag) error
		VerificationFor(ctx context.Context, network model.Network, address string) (*model.ContractVerification, error)
	}

	Metrics interface {
		ObserveProcessBlock(err error, number uint64, started time.Time)
		ObserveLiveNotification(outcome string, gap int)
		ObserveSubscriptionRestart()
		SetWatermark(number int64)
	}

	// TagWriter buffers interface-tag writes off the watermark path.
	TagWriter interface {
		Start(ctx context.Context)
		Stop()
		Write(ctx context.Context, tag model.InterfaceTag) error
	}
)
