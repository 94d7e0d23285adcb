package verify

import (
	"context"

	"github.com/evmscope/evmscope-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Store is the persistence surface for verification records and the
// interface tags derived from a verified ABI.
type Store interface {
	UpsertVerification(ctx context.Context, v model.ContractVerification) error
	VerificationFor(ctx context.Context, network model.Network, address string) (*model.ContractVerification, error)
	UpsertInterfaceTags(ctx context.Context, tags []model.InterfaceTag) error
}

// Request is an incoming source verification submission.
type Request struct {
	Network         model.Network
	Address         string
	ContractName    string
	CompilerVersion string
	Optimization    bool
	SourceCode      string
}

// Outcome is the collaborator's terminal result for a pending request.
type Outcome struct {
	Success bool
	ABI     string
	Error   string
}
