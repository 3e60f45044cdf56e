package profiler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithUpdateInterval sets how often stats are sampled and logged.
//
// Parameters:
//   - interval: sampling period
//
// Returns:
//   - ProfilerOption: option function to apply
func WithUpdateInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.updateInterval = interval
	}
}

// WithRegisterer sets where the Prometheus collectors are registered. Nil skips registration.
//
// Parameters:
//   - r: the registerer
//
// Returns:
//   - ProfilerOption: option function to apply
func WithRegisterer(r prometheus.Registerer) ProfilerOption {
	return func(p *Profiler) {
		p.registerer = r
	}
}

// WithLogging toggles the periodic log line. Metrics are recorded either way.
//
// Parameters:
//   - enabled: true to log
//
// Returns:
//   - ProfilerOption: option function to apply
func WithLogging(enabled bool) ProfilerOption {
	return func(p *Profiler) {
		p.logging = enabled
	}
}
