package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/factoryplan-go/internal/domain/graph"
)

// PropagationMetrics observes every propagation pass of a production graph
type PropagationMetrics struct {
	passesTotal    prometheus.Counter
	pathsTotal     prometheus.Counter
	truncatedTotal prometheus.Counter
	conflictsTotal prometheus.Counter
	transfers      prometheus.Histogram
	reached        prometheus.Histogram
}

// NewPropagationMetrics creates a new propagation metrics collector
func NewPropagationMetrics() *PropagationMetrics {
	return &PropagationMetrics{
		passesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "propagation_passes_total",
			Help:      "Total number of propagation passes",
		}),
		pathsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "propagation_paths_total",
			Help:      "Total number of paths walked by propagation passes",
		}),
		truncatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "propagation_truncated_paths_total",
			Help:      "Paths cut short because a node reached its visit limit",
		}),
		conflictsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "propagation_conflicts_total",
			Help:      "Input ports that received mixed resources",
		}),
		transfers: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "propagation_transfers",
			Help:      "Edge transfers applied per propagation pass",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		reached: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "propagation_reached_nodes",
			Help:      "Distinct nodes reached per propagation pass",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
}

// Register registers all propagation metrics with the Prometheus registry
func (m *PropagationMetrics) Register() error {
	return register(m.passesTotal, m.pathsTotal, m.truncatedTotal, m.conflictsTotal, m.transfers, m.reached)
}

// ObservePropagation implements graph.Observer
func (m *PropagationMetrics) ObservePropagation(result graph.PropagationResult) {
	m.passesTotal.Inc()
	m.pathsTotal.Add(float64(result.Paths))
	m.truncatedTotal.Add(float64(result.Truncated))
	m.conflictsTotal.Add(float64(result.Conflicts))
	m.transfers.Observe(float64(result.Transfers))
	m.reached.Observe(float64(len(result.Reached)))
}
