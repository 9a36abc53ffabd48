package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

var (
	followerFetchTipTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "follower",
		Name:      "fetch_tip_total",
		Help:      "Count of attempts to read the node tip height.",
	}, []string{"network", "status"})

	followerFetchTipDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "follower",
		Name:      "fetch_tip_duration_seconds",
		Help:      "Duration of reading the node tip height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	followerProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "follower",
		Name:      "process_batch_total",
		Help:      "Count of height batches validated.",
	}, []string{"network", "status"})

	followerProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "follower",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of validating a height batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	followerProcessBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "follower",
		Name:      "process_batch_size",
		Help:      "Number of heights validated per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"network"})
)

// Follower tracks metrics for the chain follower loop.
type Follower struct {
	network string
}

// NewFollower constructs a Follower collector.
func NewFollower(network model.Network) *Follower {
	return &Follower{network: networkLabel(network)}
}

// ObserveFetchTip records a tip read outcome and duration.
func (m Follower) ObserveFetchTip(err error, started time.Time) {
	followerFetchTipTotal.WithLabelValues(m.network, status(err)).Inc()
	followerFetchTipDuration.WithLabelValues(m.network, status(err)).Observe(time.Since(started).Seconds())
}

// ObserveProcessBatch records validation of a batch of heights.
func (m Follower) ObserveProcessBatch(err error, heights int, started time.Time) {
	followerProcessBatchTotal.WithLabelValues(m.network, status(err)).Inc()
	followerProcessBatchDuration.WithLabelValues(m.network, status(err)).Observe(time.Since(started).Seconds())
	followerProcessBatchSize.WithLabelValues(m.network).Observe(float64(heights))
}
