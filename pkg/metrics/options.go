package metrics

import (
	"slices"

	"github.com/prometheus/client_golang/prometheus"
)

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace overrides the "podium" metric namespace.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithSubsystem overrides the "medals" metric subsystem.
func WithSubsystem(subsystem string) Option {
	return func(m *Manager) {
		if subsystem != "" {
			m.subsystem = subsystem
		}
	}
}

// WithLatencyBuckets sets the buckets, in milliseconds, of the query, HTTP
// and error latency histograms. Buckets are sorted and deduplicated;
// non-positive bounds are dropped.
func WithLatencyBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if b := normalizeBuckets(buckets); len(b) > 0 {
			m.latencyBuckets = b
		}
	}
}

// WithLoadBuckets sets the buckets, in milliseconds, of the dataset load
// duration histogram.
func WithLoadBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if b := normalizeBuckets(buckets); len(b) > 0 {
			m.loadBuckets = b
		}
	}
}

// WithCustomLabels adds constant labels, such as the deployment, to all metrics.
func WithCustomLabels(labels map[string]string) Option {
	return func(m *Manager) {
		for k, v := range labels {
			m.customLabels[k] = v
		}
	}
}

// WithPrometheusRegistry registers the metrics on registry instead of the
// default registerer.
func WithPrometheusRegistry(registry prometheus.Registerer) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

func normalizeBuckets(buckets []float64) []float64 {
	out := make([]float64, 0, len(buckets))
	for _, b := range buckets {
		if b > 0 {
			out = append(out, b)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
