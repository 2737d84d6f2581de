package hamweave

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/hamweave/weave"
)

// Option configures Solve and Run.
type Option func(*config)

type config struct {
	logger    *zap.Logger
	maxStalls int
	strict    bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:    zap.NewNop(),
		maxStalls: weave.DefaultMaxStalls,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger passes logger to every stage. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxStalls sets the number of unproductive weaving rounds tolerated.
func WithMaxStalls(n int) Option {
	return func(c *config) { c.maxStalls = n }
}

// WithStrict makes Solve fail with certify.ErrNotHamiltonian when the woven
// tour is not a Hamiltonian cycle. By default the classification is only reported.
func WithStrict(strict bool) Option {
	return func(c *config) { c.strict = strict }
}
