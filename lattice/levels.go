package lattice

// Levels shrinks the lattice to its lower half and splits it by depth: one Level
// per z < 0, ordered outermost (most negative z) first. Each level carries its
// nodes in ascending id order, i.e. row by row in y with x ascending inside a row,
// and the adjacency restricted to those nodes.
// Complexity: O(N).
func (l *Lattice) Levels() []Level {
	byZ := make(map[int]*Level)
	var order []int
	for i, v := range l.verts {
		if v.Z >= 0 {
			continue
		}
		lvl, ok := byZ[v.Z]
		if !ok {
			lvl = &Level{Z: v.Z, Adjacency: make(Adjacency)}
			byZ[v.Z] = lvl
			order = append(order, v.Z)
		}
		lvl.Nodes = append(lvl.Nodes, Node(i))
	}

	levels := make([]Level, 0, len(order))
	for _, z := range order {
		lvl := byZ[z]
		members := make(NodeSet, len(lvl.Nodes))
		for _, n := range lvl.Nodes {
			members.Add(n)
		}
		for _, n := range lvl.Nodes {
			neighbors := make(NodeSet, 4)
			for m := range l.adj[n] {
				if members.Has(m) {
					neighbors.Add(m)
				}
			}
			lvl.Adjacency[n] = neighbors
		}
		levels = append(levels, *lvl)
	}
	return levels
}
