// Package metrics provides Prometheus metrics for a scoring run.
package metrics

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithConstLabels adds constant labels to all metrics.
func WithConstLabels(labels map[string]string) Option {
	return func(m *Manager) {
		if labels != nil {
			m.constLabels = labels
		}
	}
}
