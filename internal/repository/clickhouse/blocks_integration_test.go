package clickhouse

import (
	"math/big"
	"time"
)

func (s *RepositorySuite) TestUpsertBlock_idempotent() {
	ts := time.Unix(1700000000, 0).UTC()
	block := newBlock(5, "1", ts)

	s.Require().NoError(s.repo.UpsertBlock(s.testCtx, block))
	s.Require().NoError(s.repo.UpsertBlock(s.testCtx, block))

	s.Require().NoError(s.repo.conn.Exec(s.testCtx, "OPTIMIZE TABLE blocks FINAL"))
	s.Equal(uint64(1), s.countRows("blocks"))

	got, err := s.repo.BlockByNumber(s.testCtx, block.Network, 5)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(block.Hash, got.Hash)
	s.Equal(block.GasLimit, got.GasLimit)
	s.Require().NotNil(got.BaseFee)
	s.Equal(uint64(7), got.BaseFee.Uint64())
}

func (s *RepositorySuite) TestUpsertBlock_replacesByNumber() {
	ts := time.Unix(1700000000, 0).UTC()
	first := newBlock(3, "1", ts)
	first.IngestedAt = ts

	replacement := newBlock(3, "2", ts)
	replacement.GasUsed = 42000
	replacement.IngestedAt = ts.Add(time.Minute)

	s.Require().NoError(s.repo.UpsertBlock(s.testCtx, first))
	s.Require().NoError(s.repo.UpsertBlock(s.testCtx, replacement))

	got, err := s.repo.BlockByNumber(s.testCtx, first.Network, 3)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(replacement.Hash, got.Hash)
	s.Equal(uint64(42000), got.GasUsed)
}

func (s *RepositorySuite) TestLatestBlock() {
	ts := time.Unix(1700000000, 0).UTC()

	got, err := s.repo.LatestBlock(s.testCtx, "mainnet")
	s.Require().NoError(err)
	s.Nil(got)

	for _, number := range []uint64{0, 1, 2} {
		s.Require().NoError(s.repo.UpsertBlock(s.testCtx, newBlock(number, "a", ts)))
	}

	got, err = s.repo.LatestBlock(s.testCtx, "mainnet")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(uint64(2), got.Number)
}

func (s *RepositorySuite) TestBlockByNumber_absent() {
	got, err := s.repo.BlockByNumber(s.testCtx, "mainnet", 404)
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *RepositorySuite) TestUpsertBlock_nilBaseFee() {
	ts := time.Unix(1500000000, 0).UTC()
	block := newBlock(1, "e", ts)
	block.BaseFee = nil

	s.Require().NoError(s.repo.UpsertBlock(s.testCtx, block))

	got, err := s.repo.BlockByNumber(s.testCtx, block.Network, 1)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Nil(got.BaseFee)
	s.Equal((*big.Int)(nil), got.BaseFee)
}

func (s *RepositorySuite) TestUpsertBlock_baseFeeAboveUint64() {
	ts := time.Unix(1700000000, 0).UTC()
	block := newBlock(9, "d", ts)
	block.BaseFee = new(big.Int).Lsh(big.NewInt(1), 80)

	s.Require().NoError(s.repo.UpsertBlock(s.testCtx, block))

	got, err := s.repo.BlockByNumber(s.testCtx, block.Network, 9)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Require().NotNil(got.BaseFee)
	s.Equal(0, got.BaseFee.Cmp(block.BaseFee))
}

func (s *RepositorySuite) TestMaxContiguousBlockNumber() {
	ts := time.Unix(1700000000, 0).UTC()

	got, err := s.repo.MaxContiguousBlockNumber(s.testCtx, "mainnet")
	s.Require().NoError(err)
	s.Equal(int64(-1), got)

	for _, number := range []uint64{0, 1, 3} {
		s.Require().NoError(s.repo.UpsertBlock(s.testCtx, newBlock(number, "a", ts)))
	}

	got, err = s.repo.MaxContiguousBlockNumber(s.testCtx, "mainnet")
	s.Require().NoError(err)
	s.Equal(int64(1), got)

	s.Require().NoError(s.repo.UpsertBlock(s.testCtx, newBlock(2, "a", ts)))

	got, err = s.repo.MaxContiguousBlockNumber(s.testCtx, "mainnet")
	s.Require().NoError(err)
	s.Equal(int64(3), got)
}
