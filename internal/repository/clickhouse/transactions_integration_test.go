package clickhouse

import (
	"time"

	"github.com/evmscope/evmscope-backend/internal/model"
)

func (s *RepositorySuite) TestUpsertTransactions_idempotent() {
	ts := time.Unix(1700000000, 0).UTC()
	txs := []model.Transaction{
		newTransaction("1", 5, 0, ts),
		newTransaction("2", 5, 1, ts),
	}

	s.Require().NoError(s.repo.UpsertTransactions(s.testCtx, txs))
	s.Require().NoError(s.repo.UpsertTransactions(s.testCtx, txs))

	s.Require().NoError(s.repo.conn.Exec(s.testCtx, "OPTIMIZE TABLE transactions FINAL"))
	s.Equal(uint64(2), s.countRows("transactions"))

	count, err := s.repo.TransactionCount(s.testCtx, model.Mainnet)
	s.Require().NoError(err)
	s.Equal(uint64(2), count)
}

func (s *RepositorySuite) TestTransactionsForBlock_orderedByIndex() {
	ts := time.Unix(1700000000, 0).UTC()
	txs := []model.Transaction{
		newTransaction("3", 7, 2, ts),
		newTransaction("1", 7, 0, ts),
		newTransaction("2", 7, 1, ts),
		newTransaction("4", 8, 0, ts),
	}
	s.Require().NoError(s.repo.UpsertTransactions(s.testCtx, txs))

	got, err := s.repo.TransactionsForBlock(s.testCtx, model.Mainnet, 7)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	for i, tx := range got {
		s.Equal(uint32(i), tx.Index)
		s.Equal(uint64(7), tx.BlockNumber)
	}
}

func (s *RepositorySuite) TestTransactionsForAddress_mostRecentFirst() {
	ts := time.Unix(1700000000, 0).UTC()

	older := newTransaction("1", 10, 0, ts)
	newerLow := newTransaction("2", 11, 0, ts)
	newerHigh := newTransaction("3", 11, 1, ts)
	s.Require().NoError(s.repo.UpsertTransactions(s.testCtx, []model.Transaction{older, newerLow, newerHigh}))

	got, err := s.repo.TransactionsForAddress(s.testCtx, model.Mainnet, older.From, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Equal(newerHigh.Hash, got[0].Hash)
	s.Equal(newerLow.Hash, got[1].Hash)
	s.Equal(older.Hash, got[2].Hash)

	// Pagination.
	page, err := s.repo.TransactionsForAddress(s.testCtx, model.Mainnet, older.From, 1, 1)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(newerLow.Hash, page[0].Hash)
}

func (s *RepositorySuite) TestUpsertTransactions_contractCreation() {
	ts := time.Unix(1700000000, 0).UTC()
	tx := newTransaction("9", 12, 0, ts)
	tx.To = nil
	contract := "0x" + "d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0"
	tx.ContractAddress = &contract

	s.Require().NoError(s.repo.UpsertTransactions(s.testCtx, []model.Transaction{tx}))

	got, err := s.repo.TransactionsForBlock(s.testCtx, model.Mainnet, 12)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Nil(got[0].To)
	s.True(got[0].IsContractCreation())
	s.Require().NotNil(got[0].ContractAddress)
	s.Equal(contract, *got[0].ContractAddress)
}

func (s *RepositorySuite) TestUpsertTransactions_empty() {
	s.Require().NoError(s.repo.UpsertTransactions(s.testCtx, nil))
}
