// Package certify classifies node sequences over a lattice adjacency.
//
// What:
//
//   - Classify names the strongest property a sequence has: a HamCycle visits
//     every node once and closes; a HamPath visits every node once without
//     closing; Cycle and Path do the same over a subset of the nodes.
//   - Sequences that fail earlier checks are reported as Empty, Repeats or Broken.
//   - Validate turns anything short of a HamCycle into ErrNotHamiltonian.
//
// Checks run in a fixed order (empty, repeats, broken, closure, coverage), so a
// sequence with a repeated node is Repeats even if it is also broken.
//
// Complexity: O(n) time and space for a sequence of n nodes.
package certify
