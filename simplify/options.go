package simplify

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/kmap/minimize"
	"github.com/katalvlaran/kmap/verify"
)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMinimizer replaces the default Quine-McCluskey minimizer.
func WithMinimizer(m minimize.Minimizer) Option {
	return func(s *Service) {
		if m != nil {
			s.minimizer = m
		}
	}
}

// WithChecker sets the equivalence checker. Nil disables verification.
func WithChecker(c verify.Checker) Option {
	return func(s *Service) { s.checker = c }
}

// WithRegisterer registers the Service metrics on r instead of a private
// registry.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(s *Service) {
		if r != nil {
			s.registerer = r
		}
	}
}

// WithVarNames sets the variable names, most significant first. A request
// for n variables uses the first n names; if there are fewer than n,
// A, B, C, … are used instead.
func WithVarNames(names []string) Option {
	return func(s *Service) {
		s.names = append([]string(nil), names...)
	}
}
