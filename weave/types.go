package weave

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/hamweave/lattice"
)

// Sentinel errors for weaving.
var (
	// ErrEmptyLoom indicates a loom without loops.
	ErrEmptyLoom = errors.New("weave: empty loom")
	// ErrNoStitch indicates that no remaining weft can be spliced into the warp.
	ErrNoStitch = errors.New("weave: no legal stitching found")
)

// DefaultMaxStalls is the number of consecutive unproductive rounds tolerated
// before weaving fails.
const DefaultMaxStalls = 1

// Result is the outcome of a successful Weave.
type Result struct {
	// Tour is the warp's node sequence: a closed tour, the last node adjacent to the first.
	Tour []lattice.Node
	// Rounds counts passes over the work queue.
	Rounds int
	// Joins counts wefts spliced into the warp.
	Joins int
	// Closed reports whether the terminal join flag was set on the warp.
	Closed bool
}

// Option configures Weave.
type Option func(*config)

type config struct {
	logger    *zap.Logger
	maxStalls int
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:    zap.NewNop(),
		maxStalls: DefaultMaxStalls,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes weaving progress to logger at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxStalls sets how many consecutive rounds without a join are tolerated.
// Values below one are raised to one.
func WithMaxStalls(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.maxStalls = n
	}
}
