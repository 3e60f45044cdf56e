package panel

import (
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// ServerOption is a functional option for configuring a Server.
type ServerOption func(*Server)

// WithAddr sets the listen address.
//
// Parameters:
//   - addr: host:port to listen on
//
// Returns:
//   - ServerOption: the option
func WithAddr(addr string) ServerOption {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithRateLimit sets the per-connection inbound message rate.
//
// Parameters:
//   - limit: sustained messages per second
//   - burst: messages allowed at once
//
// Returns:
//   - ServerOption: the option
func WithRateLimit(limit rate.Limit, burst int) ServerOption {
	return func(s *Server) {
		s.limit = limit
		s.burst = burst
	}
}

// WithRegistry registers the panel metrics on reg and serves reg on /metrics.
//
// Parameters:
//   - reg: the registry
//
// Returns:
//   - ServerOption: the option
func WithRegistry(reg *prometheus.Registry) ServerOption {
	return func(s *Server) {
		s.registerer = reg
		s.gatherer = reg
	}
}
