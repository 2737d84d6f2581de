package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamweave/lattice"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestVertices_Errors verifies that even, zero and negative extents are rejected.
func TestVertices_Errors(t *testing.T) {
	cases := []struct {
		name    string
		x, y, z int
	}{
		{"ZeroX", 0, 1, 1},
		{"EvenY", 1, 2, 1},
		{"NegativeZ", 1, 1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lattice.Vertices(tc.x, tc.y, tc.z)
			assert.ErrorIs(t, err, lattice.ErrBadExtent)
			_, err = lattice.New(tc.x, tc.y, tc.z)
			assert.ErrorIs(t, err, lattice.ErrBadExtent)
		})
	}
}

// TestVertices_Order checks the (z, y, x) enumeration of the unit cube.
func TestVertices_Order(t *testing.T) {
	verts, err := lattice.Vertices(1, 1, 1)
	require.NoError(t, err)
	want := []lattice.Vertex{
		{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1},
		{X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1},
	}
	assert.Equal(t, want, verts)
}

// TestNew_Sizes checks node and edge counts of several boxes.
// A box with a×b×c points has (a-1)bc + a(b-1)c + ab(c-1) edges.
func TestNew_Sizes(t *testing.T) {
	cases := []struct {
		x, y, z     int
		order, size int
	}{
		{1, 1, 1, 8, 12},
		{3, 3, 3, 64, 144},
		{3, 1, 1, 16, 3*2*2 + 4*1*2 + 4*2*1},
		{1, 3, 5, 48, 1*4*6 + 2*3*6 + 2*4*5},
	}
	for _, tc := range cases {
		l, err := lattice.New(tc.x, tc.y, tc.z)
		require.NoError(t, err)
		assert.Equal(t, tc.order, l.Order())
		assert.Len(t, l.Edges(), tc.size)
		assert.Len(t, l.EdgeAdjacency(), tc.size)
	}
}

// TestExtentForOrder maps cube node counts back to extents.
func TestExtentForOrder(t *testing.T) {
	for order, ext := range map[int]int{8: 1, 64: 3, 216: 5, 512: 7} {
		got, err := lattice.ExtentForOrder(order)
		require.NoError(t, err)
		assert.Equal(t, ext, got, "order %d", order)
	}
	for _, order := range []int{0, 1, 27, 63, 280} {
		_, err := lattice.ExtentForOrder(order)
		assert.ErrorIs(t, err, lattice.ErrBadOrder, "order %d", order)
	}
}

//----------------------------------------------------------------------------//
// Adjacency and edge adjacency
//----------------------------------------------------------------------------//

// TestAdjacency_Symmetric verifies symmetry, absence of loops and unit-step geometry.
func TestAdjacency_Symmetric(t *testing.T) {
	l, err := lattice.Cube(3)
	require.NoError(t, err)
	adj := l.Adjacency()
	for u, neighbors := range adj {
		assert.False(t, neighbors.Has(u), "self-loop at %d", u)
		vu, _ := l.Vertex(u)
		for v := range neighbors {
			assert.True(t, adj.Has(v, u), "asymmetric %d-%d", u, v)
			vv, _ := l.Vertex(v)
			d := vv.Sub(vu)
			moved := 0
			for _, c := range [3]int{d.X, d.Y, d.Z} {
				if c != 0 {
					moved++
					assert.Contains(t, []int{-2, 2}, c)
				}
			}
			assert.Equal(t, 1, moved)
		}
	}
	// Corner has 3 neighbors, centre-ish point (-1,-1,-1) has 6.
	corner, _ := l.Node(lattice.Vertex{X: -3, Y: -3, Z: -3})
	inner, _ := l.Node(lattice.Vertex{X: -1, Y: -1, Z: -1})
	assert.Len(t, adj.Neighbors(corner), 3)
	assert.Len(t, adj.Neighbors(inner), 6)
}

// TestEdgeAdjacency_UnitCube checks partners on the 2×2×2 cube, whose
// nodes are numbered 0..7 in (z, y, x) order.
func TestEdgeAdjacency_UnitCube(t *testing.T) {
	l, err := lattice.Cube(1)
	require.NoError(t, err)
	eadj := l.EdgeAdjacency()

	// Edge 0-1 runs along x at y=-1, z=-1; its squares lie toward +y and +z.
	assert.Equal(t, []lattice.Edge{{U: 2, V: 3}, {U: 4, V: 5}}, eadj[lattice.NewEdge(1, 0)])
	// Edge 3-7 runs along z at x=1, y=1.
	assert.Equal(t, []lattice.Edge{{U: 1, V: 5}, {U: 2, V: 6}}, eadj[lattice.NewEdge(3, 7)])

	// Partnership is symmetric and every partner pair closes a square.
	adj := l.Adjacency()
	for e, partners := range eadj {
		for _, p := range partners {
			assert.Contains(t, eadj[p], e)
			square := (adj.Has(e.U, p.U) && adj.Has(e.V, p.V)) || (adj.Has(e.U, p.V) && adj.Has(e.V, p.U))
			assert.True(t, square, "%v and %v do not close a square", e, p)
		}
	}
}

// TestNewEdge_Canonical verifies ordering and comparison.
func TestNewEdge_Canonical(t *testing.T) {
	assert.Equal(t, lattice.Edge{U: 2, V: 5}, lattice.NewEdge(5, 2))
	assert.True(t, lattice.NewEdge(1, 9).Less(lattice.NewEdge(2, 3)))
	assert.True(t, lattice.NewEdge(1, 3).Less(lattice.NewEdge(1, 4)))
	assert.Zero(t, lattice.CompareEdges(lattice.NewEdge(4, 1), lattice.NewEdge(1, 4)))
}

// TestEdgeSet_Intersect checks set algebra and sorted output.
func TestEdgeSet_Intersect(t *testing.T) {
	a := lattice.EdgeSet{}
	b := lattice.EdgeSet{}
	for _, e := range []lattice.Edge{{U: 3, V: 4}, {U: 0, V: 1}, {U: 1, V: 2}} {
		a.Add(e)
	}
	for _, e := range []lattice.Edge{{U: 1, V: 2}, {U: 3, V: 4}, {U: 5, V: 6}} {
		b.Add(e)
	}
	assert.Equal(t, []lattice.Edge{{U: 1, V: 2}, {U: 3, V: 4}}, a.Intersect(b).Sorted())
}

//----------------------------------------------------------------------------//
// Mirror, Inward, Levels
//----------------------------------------------------------------------------//

// TestMirror reflects across z = 0 and rejects unknown nodes.
func TestMirror(t *testing.T) {
	l, err := lattice.Cube(3)
	require.NoError(t, err)
	for n := lattice.Node(0); int(n) < l.Order(); n++ {
		m, err := l.Mirror(n)
		require.NoError(t, err)
		v, _ := l.Vertex(n)
		w, _ := l.Vertex(m)
		assert.Equal(t, lattice.Vertex{X: v.X, Y: v.Y, Z: -v.Z}, w)
	}
	_, err = l.Mirror(lattice.Node(l.Order()))
	assert.ErrorIs(t, err, lattice.ErrUnknownNode)
}

// TestInward steps toward the midplane and stops at z = -1.
func TestInward(t *testing.T) {
	l, err := lattice.Cube(3)
	require.NoError(t, err)
	deep, _ := l.Node(lattice.Vertex{X: 1, Y: -3, Z: -3})
	shallow, _ := l.Node(lattice.Vertex{X: 1, Y: -3, Z: -1})
	upper, _ := l.Node(lattice.Vertex{X: 1, Y: -3, Z: 1})

	got, ok := l.Inward(deep)
	require.True(t, ok)
	assert.Equal(t, shallow, got)
	_, ok = l.Inward(shallow)
	assert.False(t, ok)
	_, ok = l.Inward(upper)
	assert.False(t, ok)
}

// TestLevels checks order, size and restricted adjacency of the lower half.
func TestLevels(t *testing.T) {
	l, err := lattice.New(3, 3, 5)
	require.NoError(t, err)
	levels := l.Levels()
	require.Len(t, levels, 3)
	for i, z := range []int{-5, -3, -1} {
		lvl := levels[i]
		assert.Equal(t, z, lvl.Z)
		assert.Len(t, lvl.Nodes, 16)
		for _, n := range lvl.Nodes {
			v, _ := l.Vertex(n)
			assert.Equal(t, z, v.Z)
			for m := range lvl.Adjacency[n] {
				w, _ := l.Vertex(m)
				assert.Equal(t, z, w.Z, "level adjacency leaves the level")
			}
		}
	}
	// An interior level node keeps only its four in-plane neighbors.
	n, _ := l.Node(lattice.Vertex{X: -1, Y: -1, Z: -3})
	assert.Len(t, levels[1].Adjacency[n], 4)
}
