package model

import (
	"math/big"
	"time"
)

// Block represents an EVM block persisted to ClickHouse. Number is the
// primary identity; re-ingesting the same number replaces the stored row.
type Block struct {
	Network    Network
	Number     uint64
	Hash       string
	ParentHash string
	Timestamp  time.Time
	TXCount    uint32
	GasUsed    uint64
	GasLimit   uint64
	// BaseFee is nil for blocks produced before the fee-market fork.
	BaseFee    *big.Int
	IngestedAt time.Time
}
