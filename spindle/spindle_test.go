package spindle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamweave/lattice"
	"github.com/katalvlaran/hamweave/spindle"
)

func pinchSet(nodes ...lattice.Node) lattice.NodeSet {
	s := make(lattice.NodeSet, len(nodes))
	for _, n := range nodes {
		s.Add(n)
	}
	return s
}

func TestSpin_RowsOfCube(t *testing.T) {
	l, err := lattice.Cube(3)
	require.NoError(t, err)
	levels := l.Levels()
	require.Len(t, levels, 2)

	rows := spindle.Spin(levels[0])
	require.Len(t, rows, 4)
	for i, row := range rows {
		require.Len(t, row, 4)
		for j, n := range row {
			v, _ := l.Vertex(n)
			assert.Equal(t, -3+2*j, v.X)
			assert.Equal(t, -3+2*i, v.Y)
			assert.Equal(t, -3, v.Z)
		}
	}
}

func TestCut(t *testing.T) {
	row := []lattice.Node{10, 11, 12, 13, 14, 15}
	cases := []struct {
		name    string
		pinches lattice.NodeSet
		want    [][]lattice.Node
	}{
		{"NoPinches", pinchSet(), [][]lattice.Node{{10, 11, 12, 13, 14, 15}}},
		{"OuterPinches", pinchSet(10, 15), [][]lattice.Node{{10}, {11, 12, 13, 14}, {15}}},
		{"InnerPinches", pinchSet(11, 14), [][]lattice.Node{{11, 10}, {12, 13}, {14, 15}}},
		{"AllPinched", pinchSet(10, 11, 12, 13, 14, 15), [][]lattice.Node{{10}, {11}, {12}, {13}, {14}, {15}}},
		{"CentrePinches", pinchSet(12, 13), [][]lattice.Node{{12, 11, 10}, {13, 14, 15}}},
		{"OneSided", pinchSet(14), [][]lattice.Node{{10, 11, 12, 13}, {14, 15}}},
		{"ForeignPinches", pinchSet(1, 2, 3), [][]lattice.Node{{10, 11, 12, 13, 14, 15}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := spindle.Cut(row, tc.pinches)
			assert.Equal(t, tc.want, got)

			covered := 0
			for _, c := range got {
				covered += len(c)
			}
			assert.Equal(t, len(row), covered, "chains must partition the row")
		})
	}
}

func TestWind(t *testing.T) {
	l, err := lattice.Cube(3)
	require.NoError(t, err)
	deepL, _ := l.Node(lattice.Vertex{X: -3, Y: 1, Z: -3})
	deepR, _ := l.Node(lattice.Vertex{X: 3, Y: 1, Z: -3})
	midL, _ := l.Node(lattice.Vertex{X: -1, Y: 1, Z: -3})
	shallow, _ := l.Node(lattice.Vertex{X: 1, Y: 1, Z: -1})
	inL, _ := l.Node(lattice.Vertex{X: -3, Y: 1, Z: -1})
	inR, _ := l.Node(lattice.Vertex{X: 3, Y: 1, Z: -1})

	align := spindle.Wind(l, [][]lattice.Node{
		{deepL, midL, deepR},
		{shallow},
		{},
	})
	assert.Equal(t, map[lattice.Node]lattice.Node{deepL: inL, deepR: inR}, align)
}

// TestGenerator_Chains follows one slice of the 4×4×4 cube through both levels.
func TestGenerator_Chains(t *testing.T) {
	l, err := lattice.Cube(3)
	require.NoError(t, err)
	g := spindle.NewGenerator(l)
	levels := g.Levels()

	// Outermost level: four whole rows, one per y.
	outer := g.Chains(levels[0], pinchSet())
	require.Len(t, outer, 4)
	for _, c := range outer {
		assert.Len(t, c, 4)
	}

	// Next level: the row ends are pinched, leaving the middle pair free.
	align := g.Wind(outer)
	pinches := make(lattice.NodeSet)
	for _, in := range align {
		pinches.Add(in)
	}
	assert.Len(t, pinches, 8)
	inner := g.Chains(levels[1], pinches)
	// Every pinch run is the pinch alone, so only the middle pair of each row is left.
	require.Len(t, inner, 4)
	for i, c := range inner {
		assert.Len(t, c, 2, "middle run of row %d", i)
		for _, n := range c {
			assert.False(t, pinches.Has(n))
		}
	}
}
