// Package model defines domain records for EVM ingestion.
package model

// Network names the chain a record was ingested from.
type Network string

var (
	Mainnet Network = "mainnet"
	Sepolia Network = "sepolia"
	Holesky Network = "holesky"
)
