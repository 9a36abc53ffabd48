package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dispatcherPending = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "signals",
		Name:      "callbacks_pending",
		Help:      "Number of callbacks waiting on the ordered background queue.",
	})

	dispatcherDeliveredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "signals",
		Name:      "notifications_total",
		Help:      "Count of notifications delivered to subscribers by channel.",
	}, []string{"channel"})
)

// Dispatcher tracks the validation event dispatcher.
type Dispatcher struct{}

// NewDispatcher constructs a Dispatcher collector.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// SetPending records the current queue depth.
func (Dispatcher) SetPending(n int64) {
	dispatcherPending.Set(float64(n))
}

// ObserveDelivered counts one notification handed to one subscriber.
func (Dispatcher) ObserveDelivered(channel string) {
	dispatcherDeliveredTotal.WithLabelValues(channel).Inc()
}
