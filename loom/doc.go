// Package loom assembles per-level chains into threads and closes every
// thread into a loop, producing the loom that the weaver merges.
//
// Algorithm (Assemble):
//
//  1. Walk the levels of a Source from the outermost inward.
//  2. Before scanning a level, carry every thread end one level inward along the
//     Source's alignment; the aligned nodes are the level's pinch points.
//  3. Scan the level's chains in order. A chain whose endpoint equals a thread
//     endpoint is attached there, in the matching orientation, with the shared
//     node kept once. A chain is used once and a thread takes at most one
//     chain per scan, even when its other end matches another chain. A chain
//     that would join both ends of one thread is not attached. Chains that
//     match nothing start new threads, which later chains of the same scan may
//     extend.
//  4. Close every thread by mirroring it across the midplane and order the
//     loops by ascending length (stable).
//
// Errors:
//
//   - ErrNoLevels: the Source has no levels.
//   - ErrEmptyChain: the Source produced an empty chain.
//   - ErrOpenThread: a mirrored thread does not close into a valid cycle.
//   - ErrOverlap: a node lies on two loops, or twice on one.
package loom
