// Package lattice models a three-dimensional box of odd integer points as a graph,
// providing everything the stitching stages need to reason about it.
//
// What:
//
//   - Lattice enumerates every odd (x, y, z) with |x| ≤ extX, |y| ≤ extY, |z| ≤ extZ.
//   - Each point gets a dense Node id in (z, y, x) ascending order.
//   - Two points are adjacent when they differ by exactly 2 in exactly one coordinate.
//   - EdgeAdjacency links every edge to the opposite sides of the unit squares it
//     belongs to; those are the only edges a splice may trade it for.
//   - Levels splits the lower half (z < 0) into per-depth slices, outermost first.
//
// Why:
//
//   - Every extent is odd, so every axis carries an even number of points and the
//     midplane z = 0 separates the lattice into two mirror-image halves.
//   - A thread built in the lower half closes into a loop by walking back through
//     its mirror image.
//
// Complexity:
//
//   - New: O(N) time and memory, N = number of points (degree ≤ 6, ≤ 4 partners per edge).
//   - Mirror, Inward, Node, Vertex: O(1).
//   - Levels: O(N).
//
// Errors:
//
//   - ErrBadExtent: an extent is not a positive odd integer.
//   - ErrBadOrder: a node count is not the order of any cube.
//   - ErrUnknownNode: a node id is outside the lattice.
package lattice
