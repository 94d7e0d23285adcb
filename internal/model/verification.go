package model

import "time"

// VerificationStatus describes the lifecycle of a contract verification request.
type VerificationStatus string

var (
	VerificationPending VerificationStatus = "pending"
	VerificationSuccess VerificationStatus = "success"
	VerificationFailure VerificationStatus = "failure"
)

// ContractVerification records a source verification request for a deployed
// contract. The compilation step is performed by an external collaborator;
// this system only stores the request and its terminal outcome.
type ContractVerification struct {
	Network         Network
	Address         string
	ContractName    string
	CompilerVersion string
	Optimization    bool
	SourceCode      string
	Status          VerificationStatus
	Error           string
	// ABI holds the contract ABI JSON when verification succeeded.
	ABI       string
	UpdatedAt time.Time
}
