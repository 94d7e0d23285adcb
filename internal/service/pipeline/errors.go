package pipeline

import "errors"

var (
	// ErrAlreadyRunning is returned by Start when the pipeline is not stopped.
	ErrAlreadyRunning = errors.New("pipeline already running")
	// ErrNotRunning is returned for operations that require a started pipeline.
	ErrNotRunning = errors.New("pipeline not running")
	// ErrChainUnreachable is returned by Start when the node fails the
	// liveness probe.
	ErrChainUnreachable = errors.New("chain node unreachable")
	// ErrReceiptPending defers a block whose transaction receipts are not all
	// indexed yet; the block is retried because the watermark did not move.
	ErrReceiptPending = errors.New("transaction receipt pending")
)
