package pipeline

import "time"

const (
	defaultRetryInterval  = 5 * time.Second
	defaultReceiptWorkers = 8

	// notifyBuffer bounds queued live announcements. Overflow is safe to
	// drop: gap closing re-derives missed numbers from the watermark.
	notifyBuffer = 256

	tagBatcherCapacity      = 128
	tagBatcherFlushInterval = 5 * time.Second
	tagBatcherRPS           = 10
)
