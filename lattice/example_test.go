package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/hamweave/lattice"
)

// ExampleCube builds the 4×4×4 lattice and inspects one corner.
func ExampleCube() {
	l, err := lattice.Cube(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	corner, _ := l.Node(lattice.Vertex{X: -3, Y: -3, Z: -3})
	mirror, _ := l.Mirror(corner)
	v, _ := l.Vertex(mirror)

	fmt.Println("nodes:", l.Order())
	fmt.Println("edges:", len(l.Edges()))
	fmt.Println("levels:", len(l.Levels()))
	fmt.Println("corner degree:", len(l.Adjacency().Neighbors(corner)))
	fmt.Println("corner mirror:", v)
	// Output:
	// nodes: 64
	// edges: 144
	// levels: 2
	// corner degree: 3
	// corner mirror: (-3,-3,3)
}
