// Package cycle holds the closed node sequence shared by loom assembly and
// cycle weaving.
//
// What:
//
//   - Cycle is an ordered node sequence whose consecutive pairs, including the
//     wrap-around pair, are lattice edges.
//   - Edges and EdgeAdjs expose the edge set and the splice-legal partner set.
//   - RotateToEdge moves an edge to the seam between last and first element.
//   - Join splices another cycle in through a unit square.
//   - Mirror closes an open lower-half thread through its midplane image.
//
// Rotation and reversal change only the presentation of a cycle: the node set
// and the edge set stay the same.
//
// Errors:
//
//   - ErrTooShort: fewer nodes than a cycle (or an open thread) needs.
//   - ErrMissingEdge: an edge has no entry in the edge adjacency.
//   - ErrEndpointNotFound: a rotation endpoint is not in the cycle.
//   - ErrNotAdjacent: the two rotation endpoints are not consecutive in the cycle.
//   - ErrIllegalSplice: the two join edges do not close a unit square.
//   - ErrBroken: a consecutive pair is not adjacent.
package cycle
