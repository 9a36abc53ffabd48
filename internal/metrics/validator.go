package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-consensus/internal/model"
)

var (
	validatorBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "validator",
		Name:      "blocks_total",
		Help:      "Count of validated blocks by track and verdict.",
	}, []string{"network", "track", "verdict"})

	validatorBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "validator",
		Name:      "block_duration_seconds",
		Help:      "Duration of validating a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "track"})

	validatorTxRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "validator",
		Name:      "tx_rejections_total",
		Help:      "Count of rejected transactions by reason code.",
	}, []string{"network", "reason", "penalizable"})

	validatorReorgDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "validator",
		Name:      "reorg_depth_blocks",
		Help:      "Number of blocks disconnected by a branch switch.",
		Buckets:   []float64{1, 2, 3, 5, 10, 25, 50, 100, 288},
	}, []string{"network"})
)

// Validator tracks block and transaction verdicts.
type Validator struct {
	network string
}

// NewValidator constructs a Validator collector.
func NewValidator(network model.Network) *Validator {
	return &Validator{network: networkLabel(network)}
}

// ObserveBlock records a block verdict. An empty reason counts as valid.
func (m Validator) ObserveBlock(track model.Track, reason string, started time.Time) {
	verdict := reason
	if verdict == "" {
		verdict = "valid"
	}
	validatorBlocksTotal.WithLabelValues(m.network, track.String(), verdict).Inc()
	validatorBlockDuration.WithLabelValues(m.network, track.String()).Observe(time.Since(started).Seconds())
}

// ObserveTxRejection records a rejected transaction.
func (m Validator) ObserveTxRejection(reason string, penalizable bool) {
	p := "false"
	if penalizable {
		p = "true"
	}
	validatorTxRejectionsTotal.WithLabelValues(m.network, reason, p).Inc()
}

// ObserveReorg records a branch switch that disconnected depth blocks.
func (m Validator) ObserveReorg(depth int) {
	validatorReorgDepth.WithLabelValues(m.network).Observe(float64(depth))
}
