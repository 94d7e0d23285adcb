// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/evmscope/evmscope-backend/internal/model"
)

var (
	pipelineProcessBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "evmscope",
		Subsystem: "pipeline",
		Name:      "process_block_total",
		Help:      "Count of single-block ingestion passes.",
	}, []string{"network", "status"})

	pipelineProcessBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "evmscope",
		Subsystem: "pipeline",
		Name:      "process_block_duration_seconds",
		Help:      "Duration of a single-block ingestion pass.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	pipelineWatermark = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "evmscope",
		Subsystem: "pipeline",
		Name:      "watermark",
		Help:      "Highest fully ingested block number, -1 when empty.",
	}, []string{"network"})

	pipelineLiveNotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "evmscope",
		Subsystem: "pipeline",
		Name:      "live_notifications_total",
		Help:      "Count of live head announcements by outcome.",
	}, []string{"network", "outcome"})

	pipelineSubscriptionRestartsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "evmscope",
		Subsystem: "pipeline",
		Name:      "subscription_restarts_total",
		Help:      "Count of live-head subscriptions re-established after a stream failure.",
	}, []string{"network"})

	pipelineLiveGapBlocks = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "evmscope",
		Subsystem: "pipeline",
		Name:      "live_gap_blocks",
		Help:      "Number of blocks between the watermark and an announced head.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	}, []string{"network"})
)

// Pipeline tracks metrics for the block ingestion pipeline.
type Pipeline struct {
	network model.Network
}

// NewPipeline constructs a metrics collector for one network's pipeline.
func NewPipeline(network model.Network) *Pipeline {
	if network == "" {
		network = "unknown"
	}
	return &Pipeline{network: network}
}

// ObserveProcessBlock records the outcome and duration of one block pass.
func (m Pipeline) ObserveProcessBlock(err error, _ uint64, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	pipelineProcessBlockTotal.WithLabelValues(string(m.network), status).Inc()
	pipelineProcessBlockDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveLiveNotification records a head announcement and, for gapped
// deliveries, the gap width.
func (m Pipeline) ObserveLiveNotification(outcome string, gap int) {
	pipelineLiveNotificationsTotal.WithLabelValues(string(m.network), outcome).Inc()
	if gap > 0 {
		pipelineLiveGapBlocks.WithLabelValues(string(m.network)).Observe(float64(gap))
	}
}

// ObserveSubscriptionRestart records a re-established live-head subscription.
func (m Pipeline) ObserveSubscriptionRestart() {
	pipelineSubscriptionRestartsTotal.WithLabelValues(string(m.network)).Inc()
}

// SetWatermark publishes the current watermark.
func (m Pipeline) SetWatermark(number int64) {
	pipelineWatermark.WithLabelValues(string(m.network)).Set(float64(number))
}
