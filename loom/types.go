package loom

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/hamweave/cycle"
	"github.com/katalvlaran/hamweave/lattice"
)

// Sentinel errors for loom assembly.
var (
	// ErrNoLevels indicates a Source without levels.
	ErrNoLevels = errors.New("loom: source has no levels")
	// ErrEmptyChain indicates an empty chain from the Source.
	ErrEmptyChain = errors.New("loom: empty chain")
	// ErrOpenThread indicates a thread whose mirror image does not close it.
	ErrOpenThread = errors.New("loom: thread does not close")
	// ErrOverlap indicates a node covered twice, within one loop or across two.
	ErrOverlap = errors.New("loom: loops overlap")
)

// Source supplies the levels, chains and cross-level alignment of a lattice.
// spindle.Generator is the production implementation.
type Source interface {
	// Levels lists the lower-half levels, outermost first.
	Levels() []lattice.Level
	// Chains returns the level's chains given the level's pinch points.
	Chains(level lattice.Level, pinches lattice.NodeSet) [][]lattice.Node
	// Wind maps thread ends to their aligned node on the next level.
	Wind(threads [][]lattice.Node) map[lattice.Node]lattice.Node
	// Mirror reflects a node across the midplane.
	Mirror(n lattice.Node) (lattice.Node, error)
}

// Loom is a set of node-disjoint cycles covering the lattice.
type Loom []*cycle.Cycle

// Option configures Assemble.
type Option func(*config)

type config struct {
	logger *zap.Logger
	adj    lattice.Adjacency
}

func newConfig(opts ...Option) config {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes assembly progress to logger at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithAdjacency makes Assemble validate every closed loop against adj and
// report ErrOpenThread for loops with a non-adjacent pair.
func WithAdjacency(adj lattice.Adjacency) Option {
	return func(c *config) { c.adj = adj }
}
