package hamweave

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/hamweave/certify"
	"github.com/katalvlaran/hamweave/lattice"
	"github.com/katalvlaran/hamweave/loom"
	"github.com/katalvlaran/hamweave/spindle"
	"github.com/katalvlaran/hamweave/weave"
)

var (
	// ErrNilLattice indicates a missing lattice.
	ErrNilLattice = errors.New("hamweave: nil lattice")
	// ErrBadRepeats indicates a repeat count below one.
	ErrBadRepeats = errors.New("hamweave: repeats must be at least 1")
	// ErrNondeterministic indicates two repetitions that produced different tours.
	ErrNondeterministic = errors.New("hamweave: repetitions disagree")
)

// Solution is the outcome of one Solve.
type Solution struct {
	Tour   []lattice.Node
	Kind   certify.Kind
	Loops  int // loops in the loom before weaving
	Rounds int
	Joins  int
}

// Solve peels l into a loom, weaves the loom into one tour and classifies it.
func Solve(l *lattice.Lattice, opts ...Option) (*Solution, error) {
	if l == nil {
		return nil, ErrNilLattice
	}
	cfg := newConfig(opts...)
	return solve(l, cfg)
}

func solve(l *lattice.Lattice, cfg config) (*Solution, error) {
	adj := l.Adjacency()
	lm, err := loom.Assemble(spindle.NewGenerator(l),
		loom.WithLogger(cfg.logger),
		loom.WithAdjacency(adj))
	if err != nil {
		return nil, fmt.Errorf("hamweave: assemble: %w", err)
	}
	res, err := weave.Weave(lm, adj, l.EdgeAdjacency(),
		weave.WithLogger(cfg.logger),
		weave.WithMaxStalls(cfg.maxStalls))
	if err != nil {
		return nil, fmt.Errorf("hamweave: weave: %w", err)
	}

	sol := &Solution{
		Tour:   res.Tour,
		Kind:   certify.Classify(res.Tour, adj),
		Loops:  len(lm),
		Rounds: res.Rounds,
		Joins:  res.Joins,
	}
	if cfg.strict {
		if err := certify.Validate(sol.Tour, adj); err != nil {
			return nil, fmt.Errorf("hamweave: %w", err)
		}
	}
	return sol, nil
}

// Run solves l repeats times in sequence and records the elapsed time of each
// repetition. Every repetition must produce the same tour; otherwise Run fails
// with ErrNondeterministic.
func Run(l *lattice.Lattice, repeats int, opts ...Option) (*Report, error) {
	if l == nil {
		return nil, ErrNilLattice
	}
	if repeats < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadRepeats, repeats)
	}
	cfg := newConfig(opts...)

	var (
		first   *Solution
		elapsed = make([]time.Duration, 0, repeats)
	)
	for i := 0; i < repeats; i++ {
		start := time.Now()
		sol, err := solve(l, cfg)
		if err != nil {
			return nil, fmt.Errorf("hamweave: repetition %d: %w", i+1, err)
		}
		d := time.Since(start)
		elapsed = append(elapsed, d)
		cfg.logger.Debug("repetition finished",
			zap.Int("repetition", i+1),
			zap.Duration("elapsed", d),
			zap.Stringer("kind", sol.Kind))

		if first == nil {
			first = sol
			continue
		}
		if !slices.Equal(first.Tour, sol.Tour) {
			return nil, fmt.Errorf("%w: repetition %d", ErrNondeterministic, i+1)
		}
	}

	x, y, z := l.Extents()
	return &Report{
		Order:    l.Order(),
		Extents:  [3]int{x, y, z},
		Solution: *first,
		Elapsed:  elapsed,
	}, nil
}
