// Package lattice builds the point set, adjacency and edge adjacency of an
// odd-coordinate box lattice. A Lattice is immutable once built and may be
// shared read-only by any number of pipeline runs.
package lattice

import (
	"fmt"
	"slices"
)

// steps are the six unit moves of the lattice: ±2 along each axis.
var steps = [6]Vertex{
	{X: -2}, {X: 2},
	{Y: -2}, {Y: 2},
	{Z: -2}, {Z: 2},
}

// Lattice is an odd-coordinate box lattice together with its derived tables.
type Lattice struct {
	ext   Vertex // extents along x, y, z
	verts []Vertex
	index map[Vertex]Node
	adj   Adjacency
	edges []Edge
	eadj  EdgeAdjacency
}

// Vertices enumerates every odd (x, y, z) with |x| ≤ extX, |y| ≤ extY, |z| ≤ extZ,
// ordered by z, then y, then x ascending. The position of a vertex in the result
// is its Node id.
// Returns ErrBadExtent if any extent is not a positive odd integer.
// Complexity: O(N).
func Vertices(extX, extY, extZ int) ([]Vertex, error) {
	for _, e := range [3]int{extX, extY, extZ} {
		if e < 1 || e%2 == 0 {
			return nil, fmt.Errorf("%w: %d", ErrBadExtent, e)
		}
	}
	verts := make([]Vertex, 0, (extX+1)*(extY+1)*(extZ+1))
	for z := -extZ; z <= extZ; z += 2 {
		for y := -extY; y <= extY; y += 2 {
			for x := -extX; x <= extX; x += 2 {
				verts = append(verts, Vertex{X: x, Y: y, Z: z})
			}
		}
	}
	return verts, nil
}

// New builds the lattice with the given odd extents, computing the vertex-index
// map, the adjacency, the sorted edge list and the edge adjacency once.
// Complexity: O(N) time and memory.
func New(extX, extY, extZ int) (*Lattice, error) {
	verts, err := Vertices(extX, extY, extZ)
	if err != nil {
		return nil, err
	}
	l := &Lattice{
		ext:   Vertex{X: extX, Y: extY, Z: extZ},
		verts: verts,
		index: viMap(verts),
	}
	l.adj = l.adjacencyMap()
	l.edges = edgesFromAdjacency(l.adj)
	l.eadj = l.edgeAdjacencyMap()

	return l, nil
}

// Cube builds the lattice with the same extent on every axis.
func Cube(maxExtent int) (*Lattice, error) {
	return New(maxExtent, maxExtent, maxExtent)
}

// ExtentForOrder returns the cube extent whose lattice has exactly order nodes:
// (extent+1)³ == order. Returns ErrBadOrder otherwise.
func ExtentForOrder(order int) (int, error) {
	for side := 2; side*side*side <= order; side += 2 {
		if side*side*side == order {
			return side - 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrBadOrder, order)
}

// viMap inverts the vertex list.
func viMap(verts []Vertex) map[Vertex]Node {
	index := make(map[Vertex]Node, len(verts))
	for i, v := range verts {
		index[v] = Node(i)
	}
	return index
}

// adjacencyMap links every vertex to the existing vertices one step away.
func (l *Lattice) adjacencyMap() Adjacency {
	adj := make(Adjacency, len(l.verts))
	for i, v := range l.verts {
		neighbors := make(NodeSet, len(steps))
		for _, d := range steps {
			if n, ok := l.index[v.Add(d)]; ok {
				neighbors.Add(n)
			}
		}
		adj[Node(i)] = neighbors
	}
	return adj
}

// edgesFromAdjacency lists every adjacent pair once, sorted by CompareEdges.
func edgesFromAdjacency(adj Adjacency) []Edge {
	var edges []Edge
	for u, neighbors := range adj {
		for v := range neighbors {
			if u < v {
				edges = append(edges, Edge{U: u, V: v})
			}
		}
	}
	slices.SortFunc(edges, CompareEdges)
	return edges
}

// edgeAdjacencyMap pairs every edge with its translates by each step
// perpendicular to it, keeping only translates whose endpoints both exist.
// Such a translate is the opposite side of a unit square through the edge.
func (l *Lattice) edgeAdjacencyMap() EdgeAdjacency {
	eadj := make(EdgeAdjacency, len(l.edges))
	for _, e := range l.edges {
		u, v := l.verts[e.U], l.verts[e.V]
		dir := v.Sub(u)
		partners := make([]Edge, 0, 4)
		for _, d := range steps {
			if d == dir || d == (Vertex{}).Sub(dir) {
				continue
			}
			a, okA := l.index[u.Add(d)]
			b, okB := l.index[v.Add(d)]
			if okA && okB {
				partners = append(partners, NewEdge(a, b))
			}
		}
		slices.SortFunc(partners, CompareEdges)
		eadj[e] = partners
	}
	return eadj
}

// Extents returns the x, y and z extents.
func (l *Lattice) Extents() (x, y, z int) {
	return l.ext.X, l.ext.Y, l.ext.Z
}

// Order returns the number of nodes.
func (l *Lattice) Order() int {
	return len(l.verts)
}

// Vertices returns a copy of the vertex list, indexed by Node.
func (l *Lattice) Vertices() []Vertex {
	return slices.Clone(l.verts)
}

// Adjacency returns the shared adjacency table. Callers must not modify it.
func (l *Lattice) Adjacency() Adjacency {
	return l.adj
}

// Edges returns a copy of the sorted edge list.
func (l *Lattice) Edges() []Edge {
	return slices.Clone(l.edges)
}

// EdgeAdjacency returns the shared edge-adjacency table. Callers must not modify it.
func (l *Lattice) EdgeAdjacency() EdgeAdjacency {
	return l.eadj
}

// Node returns the id of v, if v is a lattice point.
func (l *Lattice) Node(v Vertex) (Node, bool) {
	n, ok := l.index[v]
	return n, ok
}

// Vertex returns the coordinate of n, if n is a lattice node.
func (l *Lattice) Vertex(n Node) (Vertex, bool) {
	if n < 0 || int(n) >= len(l.verts) {
		return Vertex{}, false
	}
	return l.verts[n], true
}

// Mirror returns the node reflected across the midplane z = 0.
// Every lattice node has a mirror image because the z extent is symmetric.
func (l *Lattice) Mirror(n Node) (Node, error) {
	v, ok := l.Vertex(n)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNode, n)
	}
	return l.index[Vertex{X: v.X, Y: v.Y, Z: -v.Z}], nil
}

// Inward returns the node one step closer to the midplane from the lower half,
// i.e. (x, y, z+2), provided that node still lies below the midplane.
func (l *Lattice) Inward(n Node) (Node, bool) {
	v, ok := l.Vertex(n)
	if !ok || v.Z+2 >= 0 {
		return 0, false
	}
	return l.index[Vertex{X: v.X, Y: v.Y, Z: v.Z + 2}], true
}
