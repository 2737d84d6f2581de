// Package cycle: closed node sequences and the splice primitive.
//
// Design:
//   - The adjacency and edge-adjacency tables are owned by the caller and passed
//     into the operations that need them; a Cycle stores only its nodes.
//   - Rotations are done in place with three reversals, no extra allocation.
//   - No logging, no panics on caller input, only sentinel errors from errors.go.
package cycle

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/hamweave/lattice"
)

// Cycle is a closed walk that visits each of its nodes once.
// The zero value is not usable; build cycles with New or Mirror.
type Cycle struct {
	nodes  []lattice.Node
	closed bool
}

// New copies nodes into a fresh Cycle. A cycle needs at least three nodes.
// Adjacency of consecutive nodes is not checked here; see Validate.
func New(nodes []lattice.Node) (*Cycle, error) {
	if len(nodes) < 3 {
		return nil, fmt.Errorf("%w: %d nodes", ErrTooShort, len(nodes))
	}
	return &Cycle{nodes: slices.Clone(nodes)}, nil
}

// Mirror closes an open thread living below the midplane: the mirror images of
// its nodes are appended in reverse order, so [a … b] becomes
// [a … b, m(b) … m(a)]. The result has even length; it is a valid cycle when
// both thread ends lie on the level next to the midplane.
func Mirror(open []lattice.Node, mirror func(lattice.Node) (lattice.Node, error)) (*Cycle, error) {
	if len(open) < 2 {
		return nil, fmt.Errorf("%w: open thread of %d nodes", ErrTooShort, len(open))
	}
	nodes := make([]lattice.Node, len(open), 2*len(open))
	copy(nodes, open)
	for i := len(open) - 1; i >= 0; i-- {
		m, err := mirror(open[i])
		if err != nil {
			return nil, fmt.Errorf("cycle: mirror %d: %w", open[i], err)
		}
		nodes = append(nodes, m)
	}
	return &Cycle{nodes: nodes}, nil
}

// Len returns the number of nodes.
func (c *Cycle) Len() int { return len(c.nodes) }

// Nodes returns a copy of the node sequence in presentation order.
func (c *Cycle) Nodes() []lattice.Node { return slices.Clone(c.nodes) }

// Clone returns an independent copy.
func (c *Cycle) Clone() *Cycle {
	return &Cycle{nodes: slices.Clone(c.nodes), closed: c.closed}
}

// SetClosed marks the cycle as finished by its terminal join.
// Join never sets this itself; the weaver decides which join is the last one.
func (c *Cycle) SetClosed() { c.closed = true }

// Closed reports whether SetClosed was called.
func (c *Cycle) Closed() bool { return c.closed }

// Edges returns the canonical edges of every consecutive pair, wrap-around included.
// Complexity: O(n).
func (c *Cycle) Edges() lattice.EdgeSet {
	n := len(c.nodes)
	out := make(lattice.EdgeSet, n)
	for i, u := range c.nodes {
		out.Add(lattice.NewEdge(u, c.nodes[(i+1)%n]))
	}
	return out
}

// EdgeAdjs returns the union of the splice partners of every edge of c.
// A cycle edge without an entry in eadj means the tables do not describe the
// lattice the cycle lives on; that is reported as ErrMissingEdge.
// Complexity: O(n).
func (c *Cycle) EdgeAdjs(eadj lattice.EdgeAdjacency) (lattice.EdgeSet, error) {
	out := make(lattice.EdgeSet, 2*len(c.nodes))
	for e := range c.Edges() {
		partners, ok := eadj[e]
		if !ok {
			return nil, fmt.Errorf("%w: %d-%d", ErrMissingEdge, e.U, e.V)
		}
		for _, p := range partners {
			out.Add(p)
		}
	}
	return out, nil
}

// Validate checks that every consecutive pair, wrap-around included, is adjacent.
func (c *Cycle) Validate(adj lattice.Adjacency) error {
	n := len(c.nodes)
	for i, u := range c.nodes {
		if v := c.nodes[(i+1)%n]; !adj.Has(u, v) {
			return fmt.Errorf("%w: %d-%d at position %d", ErrBroken, u, v, i)
		}
	}
	return nil
}

// RotateToEdge reorders the cycle so that u comes first and v last, putting the
// edge (u, v) on the seam. When the edge already sits on the seam the other way
// round the whole sequence is reversed; otherwise the sequence is rotated to u
// and, if v follows u, the part behind u is reversed.
//
// Contract:
//   - u and v are both on the cycle (ErrEndpointNotFound otherwise).
//   - u and v are consecutive in the cycle (ErrNotAdjacent otherwise).
//   - The edge set is unchanged.
//
// Complexity: O(n) time, O(1) extra space.
func (c *Cycle) RotateToEdge(u, v lattice.Node) error {
	n := len(c.nodes)
	i := slices.Index(c.nodes, u)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrEndpointNotFound, u)
	}
	j := slices.Index(c.nodes, v)
	if j < 0 {
		return fmt.Errorf("%w: %d", ErrEndpointNotFound, v)
	}

	switch {
	case c.nodes[n-1] == u && c.nodes[0] == v:
		slices.Reverse(c.nodes)
	case j == (i+n-1)%n:
		c.rotateLeft(i)
	case j == (i+1)%n:
		c.rotateLeft(i)
		slices.Reverse(c.nodes[1:])
	default:
		return fmt.Errorf("%w: %d and %d", ErrNotAdjacent, u, v)
	}
	return nil
}

// rotateLeft shifts the sequence so that position k becomes position 0.
func (c *Cycle) rotateLeft(k int) {
	if k == 0 {
		return
	}
	slices.Reverse(c.nodes[:k])
	slices.Reverse(c.nodes[k:])
	slices.Reverse(c.nodes)
}

// Join splices other into c through the unit square formed by e (an edge of c)
// and f (an edge of other). f is oriented so that its first endpoint is adjacent
// to the second endpoint of e; then c is rotated to e, other to the oriented f,
// and other's sequence is appended behind c's:
//
//	c = [e.U … e.V], other = [a … b]  →  [e.U … e.V, a … b]
//
// The wrap-around pair (b, e.U) is the other new edge of the square.
//
// Contract:
//   - c and other are node-disjoint; other is rotated in place and must not be
//     used as a separate cycle afterwards.
//   - len(c) after the call is the sum of both lengths.
//
// Complexity: O(len(c) + len(other)).
func (c *Cycle) Join(e, f lattice.Edge, other *Cycle, adj lattice.Adjacency) error {
	a, b := f.U, f.V
	if !adj.Has(e.V, a) {
		a, b = b, a
	}
	if !adj.Has(e.V, a) || !adj.Has(b, e.U) {
		return fmt.Errorf("%w: %d-%d with %d-%d", ErrIllegalSplice, e.U, e.V, f.U, f.V)
	}
	if err := c.RotateToEdge(e.U, e.V); err != nil {
		return fmt.Errorf("cycle: join: %w", err)
	}
	if err := other.RotateToEdge(a, b); err != nil {
		return fmt.Errorf("cycle: join: %w", err)
	}
	c.nodes = append(c.nodes, other.nodes...)

	return nil
}
