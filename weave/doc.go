// Package weave merges the loops of a loom into one Hamiltonian cycle.
//
// The first loop becomes the warp; every other loop is a weft with a stable
// index. Wefts wait in a work queue. For a dequeued weft the weaver looks for a
// bridge: a warp edge that is a splice partner of some weft edge. The smallest
// bridge edge e is paired with the smallest weft edge f among e's partners, and
// the weft is spliced into the warp through the unit square (e, f). A weft
// without bridge or partner goes back to the end of the queue.
//
// A round is one pass over the wefts queued at its start. A round that merges
// nothing means the warp did not change, so no later round can do better; after
// a configurable number of such rounds (one by default) weaving stops with
// ErrNoStitch instead of polling forever.
//
// All choices are made in CompareEdges order, so equal inputs always produce
// the same tour.
//
// Errors:
//
//   - ErrEmptyLoom: nothing to weave.
//   - ErrNoStitch: no legal stitching found for the remaining wefts.
//   - Errors from package cycle (missing edge-adjacency entries, illegal splices)
//     are returned wrapped; they mean the tables and the loom disagree.
package weave
