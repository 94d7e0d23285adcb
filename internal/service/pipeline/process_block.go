package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/evmscope/evmscope-backend/internal/chain"
	"github.com/evmscope/evmscope-backend/internal/classifier"
	"github.com/evmscope/evmscope-backend/internal/model"
	"github.com/evmscope/evmscope-backend/internal/verify"
	"github.com/evmscope/evmscope-backend/pkg/safe"
	"github.com/evmscope/evmscope-backend/pkg/workerpool"
)

var zeroAddress common.Address

func safeWatermark(number uint64) (int64, error) {
	watermark, err := safe.Int64(number)
	if err != nil {
		return 0, fmt.Errorf("watermark overflow: %w", err)
	}
	return watermark, nil
}

// processBlock ingests a single block: fetch, receipts, persist, advance.
// The watermark only moves after the block row and every transaction row
// committed; any earlier failure leaves it untouched so the whole block is
// retried.
func (s *Service) processBlock(ctx context.Context, number uint64) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveProcessBlock(err, number, started)
	}()

	block, err := s.chain.FetchBlock(ctx, number)
	if err != nil {
		return fmt.Errorf("fetch block %d: %w", number, err)
	}

	receipts, err := s.fetchReceipts(ctx, block)
	if err != nil {
		return err
	}

	insert := s.normalize(block, receipts)

	// Transaction rows land before the block row. Restart resumes from the
	// stored block numbers, so a block row must never exist without its
	// transactions.
	if err = s.repo.UpsertTransactions(ctx, insert.Txs); err != nil {
		return fmt.Errorf("persist transactions of block %d: %w", number, err)
	}
	if err = s.repo.UpsertBlock(ctx, insert.Block); err != nil {
		return fmt.Errorf("persist block %d: %w", number, err)
	}

	watermark, err := safeWatermark(number)
	if err != nil {
		return err
	}
	s.setWatermark(watermark)
	s.logger.Info("block ingested",
		zap.Uint64("number", number),
		zap.Int("txs", len(insert.Txs)),
	)

	s.tagContracts(ctx, insert.Txs)
	return nil
}

// fetchReceipts loads every transaction receipt of the block concurrently.
// A receipt the node has not indexed yet defers the whole block pass.
func (s *Service) fetchReceipts(ctx context.Context, block *chain.Block) ([]*types.Receipt, error) {
	receipts := make([]*types.Receipt, len(block.Txs))

	indexes := make([]int, len(block.Txs))
	for i := range indexes {
		indexes[i] = i
	}

	err := workerpool.ForEach(ctx, s.receiptWorkers, indexes, func(ctx context.Context, i int) error {
		receipt, err := s.chain.FetchReceipt(ctx, block.Txs[i].Hash)
		if err != nil {
			return fmt.Errorf("fetch receipt %s: %w", block.Txs[i].Hash, err)
		}
		if receipt == nil {
			return fmt.Errorf("tx %s of block %d: %w", block.Txs[i].Hash, block.Number, ErrReceiptPending)
		}
		receipts[i] = receipt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipts, nil
}

// normalize converts a fetched block and its receipts into store records.
func (s *Service) normalize(block *chain.Block, receipts []*types.Receipt) model.InsertBlock {
	blockTime := time.Unix(int64(block.Time), 0).UTC()

	insert := model.InsertBlock{
		Block: model.Block{
			Network:    s.network,
			Number:     block.Number,
			Hash:       block.Hash,
			ParentHash: block.ParentHash,
			Timestamp:  blockTime,
			TXCount:    uint32(len(block.Txs)),
			GasUsed:    block.GasUsed,
			GasLimit:   block.GasLimit,
			BaseFee:    block.BaseFee,
		},
		Txs: make([]model.Transaction, 0, len(block.Txs)),
	}

	for i, tx := range block.Txs {
		receipt := receipts[i]

		var to *string
		if tx.To != nil {
			hex := tx.To.Hex()
			to = &hex
		}
		var contractAddress *string
		if receipt.ContractAddress != zeroAddress {
			hex := receipt.ContractAddress.Hex()
			contractAddress = &hex
		}

		insert.Txs = append(insert.Txs, model.Transaction{
			Network:         s.network,
			Hash:            tx.Hash.Hex(),
			BlockNumber:     block.Number,
			From:            tx.From.Hex(),
			To:              to,
			Value:           tx.Value,
			GasPrice:        tx.GasPrice,
			GasUsed:         receipt.GasUsed,
			Input:           tx.Input,
			Success:         receipt.Status == types.ReceiptStatusSuccessful,
			Index:           tx.Index,
			Nonce:           tx.Nonce,
			ContractAddress: contractAddress,
			Timestamp:       blockTime,
		})
	}
	return insert
}

// tagContracts derives interface tags for contracts deployed in the block.
// Only contracts with a successful verification carry a parsable function
// surface; everything here is best-effort and off the watermark path.
func (s *Service) tagContracts(ctx context.Context, txs []model.Transaction) {
	for _, tx := range txs {
		if !tx.IsContractCreation() || tx.ContractAddress == nil {
			continue
		}
		address := *tx.ContractAddress

		record, err := s.repo.VerificationFor(ctx, s.network, address)
		if err != nil {
			s.logger.Warn("verification lookup failed", zap.String("address", address), zap.Error(err))
			continue
		}
		if record == nil || record.Status != model.VerificationSuccess || record.ABI == "" {
			continue
		}

		names, err := verify.FunctionNames(record.ABI)
		if err != nil {
			s.logger.Warn("abi parse failed", zap.String("address", address), zap.Error(err))
			continue
		}

		for _, standard := range classifier.Classify(names) {
			tag := model.InterfaceTag{
				Network:    s.network,
				Address:    address,
				Interface:  string(standard),
				DetectedAt: time.Now().UTC(),
			}
			if err := s.tagWriter.Write(ctx, tag); err != nil {
				s.logger.Warn("queue interface tag failed", zap.String("address", address), zap.Error(err))
			}
		}
	}
}
