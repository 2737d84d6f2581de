package loom

import (
	"fmt"
	"slices"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/hamweave/cycle"
	"github.com/katalvlaran/hamweave/lattice"
)

// thread is an open path under assembly. hit records that the thread already
// took a chain during the current scan.
type thread struct {
	nodes []lattice.Node
	hit   bool
}

func (t *thread) front() lattice.Node { return t.nodes[0] }
func (t *thread) back() lattice.Node  { return t.nodes[len(t.nodes)-1] }

// prepend puts seq in front of the thread, keeping seq's order.
func (t *thread) prepend(seq []lattice.Node) {
	if len(seq) == 0 {
		return
	}
	t.nodes = append(slices.Clone(seq), t.nodes...)
}

// drop extends both ends along align and records the new ends as pinches.
// A one-node thread is extended once.
func (t *thread) drop(align map[lattice.Node]lattice.Node, pinches lattice.NodeSet) {
	f, b := t.front(), t.back()
	if in, ok := align[f]; ok {
		t.prepend([]lattice.Node{in})
		pinches.Add(in)
	}
	if b == f {
		return
	}
	if in, ok := align[b]; ok {
		t.nodes = append(t.nodes, in)
		pinches.Add(in)
	}
}

// attach tries to hang chain on one end of t. A thread takes at most one chain
// per scan, and never a chain that would lead back to its other end.
func (t *thread) attach(chain []lattice.Node) bool {
	if t.hit {
		return false
	}
	first, last := chain[0], chain[len(chain)-1]
	if len(chain) > 1 && len(t.nodes) > 1 &&
		((first == t.front() && last == t.back()) || (first == t.back() && last == t.front())) {
		return false
	}
	switch {
	case t.front() == first:
		rev := slices.Clone(chain[1:])
		slices.Reverse(rev)
		t.prepend(rev)
	case t.front() == last:
		t.prepend(chain[:len(chain)-1])
	case t.back() == first:
		t.nodes = append(t.nodes, chain[1:]...)
	case t.back() == last:
		for i := len(chain) - 2; i >= 0; i-- {
			t.nodes = append(t.nodes, chain[i])
		}
	default:
		return false
	}
	t.hit = true
	return true
}

// Threads runs the level-by-level stitching of src and returns the open
// threads before mirroring. It is exposed for inspection and tests; Assemble
// is the usual entry point.
func Threads(src Source, opts ...Option) ([][]lattice.Node, error) {
	cfg := newConfig(opts...)
	threads, err := spool(src, cfg)
	if err != nil {
		return nil, err
	}
	out := make([][]lattice.Node, len(threads))
	for i, t := range threads {
		out[i] = slices.Clone(t.nodes)
	}
	return out, nil
}

func spool(src Source, cfg config) ([]*thread, error) {
	levels := src.Levels()
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}

	var threads []*thread
	for _, lvl := range levels {
		pinches := make(lattice.NodeSet)
		if len(threads) > 0 {
			align := src.Wind(snapshot(threads))
			for _, t := range threads {
				t.drop(align, pinches)
			}
		}

		chains := src.Chains(lvl, pinches)
		for _, t := range threads {
			t.hit = false
		}
		attached, started := 0, 0
		for i, chain := range chains {
			if len(chain) == 0 {
				return nil, fmt.Errorf("%w: level z=%d chain %d", ErrEmptyChain, lvl.Z, i)
			}
			if attachAny(threads, chain) {
				attached++
				continue
			}
			threads = append(threads, &thread{nodes: slices.Clone(chain)})
			started++
		}
		cfg.logger.Debug("level spooled",
			zap.Int("z", lvl.Z),
			zap.Int("pinches", len(pinches)),
			zap.Int("chains", len(chains)),
			zap.Int("attached", attached),
			zap.Int("started", started),
			zap.Int("threads", len(threads)))
	}
	return threads, nil
}

func attachAny(threads []*thread, chain []lattice.Node) bool {
	for _, t := range threads {
		if t.attach(chain) {
			return true
		}
	}
	return false
}

func snapshot(threads []*thread) [][]lattice.Node {
	out := make([][]lattice.Node, len(threads))
	for i, t := range threads {
		out[i] = t.nodes
	}
	return out
}

// Assemble stitches the chains of src into threads, closes every thread by
// mirroring and returns the loops ordered by ascending length. Loops of equal
// length keep the order in which their threads were started.
//
// Complexity: O(L·C·T + N) for L levels, C chains per level, T threads and N nodes.
func Assemble(src Source, opts ...Option) (Loom, error) {
	cfg := newConfig(opts...)
	threads, err := spool(src, cfg)
	if err != nil {
		return nil, err
	}

	lm := make(Loom, 0, len(threads))
	owner := make(map[lattice.Node]int)
	for i, t := range threads {
		c, err := cycle.Mirror(t.nodes, src.Mirror)
		if err != nil {
			return nil, fmt.Errorf("%w: thread %d: %w", ErrOpenThread, i, err)
		}
		if cfg.adj != nil {
			if err := c.Validate(cfg.adj); err != nil {
				return nil, fmt.Errorf("%w: thread %d: %w", ErrOpenThread, i, err)
			}
		}
		for _, n := range c.Nodes() {
			if j, ok := owner[n]; ok {
				return nil, fmt.Errorf("%w: node %d in threads %d and %d", ErrOverlap, n, j, i)
			}
			owner[n] = i
		}
		lm = append(lm, c)
	}
	sort.SliceStable(lm, func(i, j int) bool { return lm[i].Len() < lm[j].Len() })

	cfg.logger.Debug("loom assembled", zap.Int("loops", len(lm)))
	return lm, nil
}
