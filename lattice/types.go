package lattice

import (
	"cmp"
	"fmt"
	"slices"
)

// Node is the dense integer id of one lattice point.
type Node int

// Vertex is an integer (x, y, z) coordinate of a lattice point.
type Vertex struct {
	X, Y, Z int
}

// Add returns the component-wise sum v + d.
func (v Vertex) Add(d Vertex) Vertex {
	return Vertex{X: v.X + d.X, Y: v.Y + d.Y, Z: v.Z + d.Z}
}

// Sub returns the component-wise difference v - d.
func (v Vertex) Sub(d Vertex) Vertex {
	return Vertex{X: v.X - d.X, Y: v.Y - d.Y, Z: v.Z - d.Z}
}

// String renders the vertex as "(x,y,z)".
func (v Vertex) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// Edge is an unordered pair of adjacent nodes, stored with U < V.
// Always build edges with NewEdge so that equal pairs compare equal.
type Edge struct {
	U, V Node
}

// NewEdge returns the canonical edge joining a and b.
func NewEdge(a, b Node) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{U: a, V: b}
}

// Less reports whether e sorts before o (by U, then V).
func (e Edge) Less(o Edge) bool {
	return CompareEdges(e, o) < 0
}

// CompareEdges orders edges by U, then V. It is the single tie-break rule used
// wherever "some edge" of a set has to be picked.
func CompareEdges(a, b Edge) int {
	if c := cmp.Compare(a.U, b.U); c != 0 {
		return c
	}
	return cmp.Compare(a.V, b.V)
}

// NodeSet is a set of nodes.
type NodeSet map[Node]struct{}

// Add inserts n.
func (s NodeSet) Add(n Node) { s[n] = struct{}{} }

// Has reports membership of n.
func (s NodeSet) Has(n Node) bool {
	_, ok := s[n]
	return ok
}

// Sorted returns the members in ascending order.
func (s NodeSet) Sorted() []Node {
	out := make([]Node, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// EdgeSet is a set of canonical edges.
type EdgeSet map[Edge]struct{}

// Add inserts e.
func (s EdgeSet) Add(e Edge) { s[e] = struct{}{} }

// Has reports membership of e.
func (s EdgeSet) Has(e Edge) bool {
	_, ok := s[e]
	return ok
}

// Intersect returns the edges present in both s and o.
func (s EdgeSet) Intersect(o EdgeSet) EdgeSet {
	small, large := s, o
	if len(small) > len(large) {
		small, large = large, small
	}
	out := make(EdgeSet)
	for e := range small {
		if large.Has(e) {
			out.Add(e)
		}
	}
	return out
}

// Sorted returns the members ordered by CompareEdges.
func (s EdgeSet) Sorted() []Edge {
	out := make([]Edge, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	slices.SortFunc(out, CompareEdges)
	return out
}

// Adjacency maps every node to the set of its neighbors.
// It is symmetric and carries no self-loops.
type Adjacency map[Node]NodeSet

// Has reports whether u and v are neighbors.
func (a Adjacency) Has(u, v Node) bool {
	return a[u].Has(v)
}

// Neighbors returns the neighbors of u in ascending order.
func (a Adjacency) Neighbors(u Node) []Node {
	return a[u].Sorted()
}

// EdgeAdjacency maps every edge to its splice-legal partners, sorted by CompareEdges.
type EdgeAdjacency map[Edge][]Edge

// Level is one lower-half depth slice of the lattice.
type Level struct {
	// Z is the shared z coordinate of the slice.
	Z int
	// Nodes lists the slice's nodes in ascending id order; its length is the
	// target length a generator has to cover on this level.
	Nodes []Node
	// Adjacency is the lattice adjacency restricted to Nodes.
	Adjacency Adjacency
}
