// Package hamweave finds a Hamiltonian cycle on an odd-coordinate box lattice
// by weaving.
//
// The pipeline stages live in their own packages:
//
//	lattice/  points, adjacency and edge adjacency of the box
//	spindle/  per-level chains and cross-level alignment (the peel)
//	loom/     chains stitched into threads, threads mirrored into loops
//	weave/    loops spliced one by one into a single cycle
//	certify/  classification of the final sequence
//
// Solve runs the stages once on a lattice. Run repeats Solve, times every
// repetition and checks that all of them produce the same tour; its Report can
// be written as text or YAML.
//
// Quick example, the unit cube:
//
//	l, _ := lattice.Cube(1)
//	sol, _ := hamweave.Solve(l)
//	fmt.Println(sol.Kind, sol.Tour) // HamCycle [...8 nodes...]
//
// Everything is single-threaded and deterministic. A Lattice is read-only after
// construction, so one lattice may serve any number of Solve calls.
package hamweave
