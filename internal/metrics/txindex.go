package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var txIndexOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "txindex",
	Name:      "operation_duration_seconds",
	Help:      "Duration of transaction index operations.",
	Buckets:   prometheus.DefBuckets,
}, []string{"operation", "status"})

// TxIndex tracks the local transaction index.
type TxIndex struct{}

// NewTxIndex constructs a TxIndex collector.
func NewTxIndex() *TxIndex {
	return &TxIndex{}
}

// Observe records duration and status of an index operation.
func (TxIndex) Observe(operation string, err error, started time.Time) {
	txIndexOperationDuration.WithLabelValues(operation, status(err)).Observe(time.Since(started).Seconds())
}
