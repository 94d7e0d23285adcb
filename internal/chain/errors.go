package chain

import "errors"

var (
	// ErrUpstreamUnavailable marks transport failures talking to the node.
	// Callers treat it as transient and retry with backoff.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrBlockNotFound means the node has no block at the requested number,
	// usually because the request ran past its current head.
	ErrBlockNotFound = errors.New("block not found")
)
