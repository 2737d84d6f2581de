package spindle

import (
	"slices"

	"github.com/katalvlaran/hamweave/lattice"
)

// Spin orders a level's nodes by id, which is y-major with x ascending, and
// breaks the ordering into rows wherever two consecutive nodes are not adjacent
// on the level.
// Complexity: O(n log n) for n level nodes.
func Spin(level lattice.Level) [][]lattice.Node {
	nodes := slices.Clone(level.Nodes)
	slices.Sort(nodes)

	var (
		rows [][]lattice.Node
		row  []lattice.Node
	)
	for _, n := range nodes {
		if len(row) > 0 && !level.Adjacency.Has(row[len(row)-1], n) {
			rows = append(rows, row)
			row = nil
		}
		row = append(row, n)
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

// Cut splits a row at its pinch points. The row is read from its middle
// outward: a pinch in the left half claims itself and the nodes to its left up
// to the next pinch; a pinch in the right half does the same to its right. Each
// claimed run starts at its pinch. Whatever is left between the innermost
// pinches, or the whole row when it has none, becomes one chain on its own.
//
// Chains are returned left to right: left pinch runs outermost first, then the
// middle run, then right pinch runs innermost first.
// Complexity: O(len(row)).
func Cut(row []lattice.Node, pinches lattice.NodeSet) [][]lattice.Node {
	half := len(row) / 2
	var left, right []int
	for i, n := range row {
		if !pinches.Has(n) {
			continue
		}
		if i < half {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	var chains [][]lattice.Node
	lo := 0
	for _, p := range left {
		chain := make([]lattice.Node, 0, p-lo+1)
		for i := p; i >= lo; i-- {
			chain = append(chain, row[i])
		}
		chains = append(chains, chain)
		lo = p + 1
	}

	hi := len(row)
	if len(right) > 0 {
		hi = right[0]
	}
	if lo < hi {
		chains = append(chains, slices.Clone(row[lo:hi]))
	}

	for k, p := range right {
		end := len(row)
		if k+1 < len(right) {
			end = right[k+1]
		}
		chains = append(chains, slices.Clone(row[p:end]))
	}
	return chains
}

// Wind maps every thread end to the node one level inward of it. Ends that
// already sit next to the midplane have no entry.
func Wind(l *lattice.Lattice, threads [][]lattice.Node) map[lattice.Node]lattice.Node {
	align := make(map[lattice.Node]lattice.Node, 2*len(threads))
	for _, t := range threads {
		if len(t) == 0 {
			continue
		}
		for _, end := range [2]lattice.Node{t[0], t[len(t)-1]} {
			if in, ok := l.Inward(end); ok {
				align[end] = in
			}
		}
	}
	return align
}

// Generator produces the chains and alignment of one lattice.
type Generator struct {
	lat *lattice.Lattice
}

// NewGenerator returns a Generator over l.
func NewGenerator(l *lattice.Lattice) *Generator {
	return &Generator{lat: l}
}

// Levels returns the lattice's lower-half levels, outermost first.
func (g *Generator) Levels() []lattice.Level {
	return g.lat.Levels()
}

// Chains spins the level into rows and cuts every row at the given pinches.
// A run made of its pinch alone is left out: the thread that was carried onto
// the pinch already holds it.
func (g *Generator) Chains(level lattice.Level, pinches lattice.NodeSet) [][]lattice.Node {
	var chains [][]lattice.Node
	for _, row := range Spin(level) {
		for _, c := range Cut(row, pinches) {
			if len(c) == 1 && pinches.Has(c[0]) {
				continue
			}
			chains = append(chains, c)
		}
	}
	return chains
}

// Wind returns the alignment of the threads' ends one level inward.
func (g *Generator) Wind(threads [][]lattice.Node) map[lattice.Node]lattice.Node {
	return Wind(g.lat, threads)
}

// Mirror reflects n across the midplane.
func (g *Generator) Mirror(n lattice.Node) (lattice.Node, error) {
	return g.lat.Mirror(n)
}
