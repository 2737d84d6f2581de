// Package spindle generates the per-level chains that loom assembly stitches
// into threads, and the cross-level alignment that carries threads from one
// level to the next.
//
// The generated threads peel every y-slice of the lower half like an onion:
// peel k runs down column x_k, across the row at depth L−k and back up column
// x_{W−1−k}. Mirroring turns every peel into a ring of its slice, and rings of
// neighboring slices are translates of each other, which gives the weaver a
// legal splice between any two of them.
//
//   - Spin orders a level into rows.
//   - Cut splits a row at its pinch points.
//   - Wind maps every thread end one level inward.
//   - Generator bundles the three for a lattice and satisfies loom.Source.
package spindle
