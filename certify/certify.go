package certify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hamweave/lattice"
)

// ErrNotHamiltonian indicates a sequence that is not a Hamiltonian cycle.
var ErrNotHamiltonian = errors.New("certify: not a Hamiltonian cycle")

// Kind is the classification of a node sequence.
type Kind int

// Kinds, from the weakest failure to the strongest success.
const (
	Empty    Kind = iota // no nodes
	Repeats              // some node occurs twice
	Broken               // some consecutive pair is not adjacent
	Path                 // open walk over part of the nodes
	Cycle                // closed walk over part of the nodes
	HamPath              // open walk over every node
	HamCycle             // closed walk over every node
)

// String returns the kind name used in reports.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Repeats:
		return "Repeats"
	case Broken:
		return "Broken"
	case Path:
		return "Path"
	case Cycle:
		return "Cycle"
	case HamPath:
		return "HamPath"
	case HamCycle:
		return "HamCycle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalYAML encodes a Kind by name.
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Classify reports the kind of seq under adj. The node count used for the
// Hamiltonian checks is len(adj).
//
// A sequence of one or two nodes is never a Cycle: closing it would reuse an edge.
func Classify(seq []lattice.Node, adj lattice.Adjacency) Kind {
	if len(seq) == 0 {
		return Empty
	}

	seen := make(lattice.NodeSet, len(seq))
	for _, n := range seq {
		if seen.Has(n) {
			return Repeats
		}
		seen.Add(n)
	}
	for i := 1; i < len(seq); i++ {
		if !adj.Has(seq[i-1], seq[i]) {
			return Broken
		}
	}
	if len(seq) == 1 {
		if _, ok := adj[seq[0]]; !ok {
			return Broken
		}
	}

	closed := len(seq) >= 3 && adj.Has(seq[len(seq)-1], seq[0])
	full := len(seq) == len(adj)
	switch {
	case closed && full:
		return HamCycle
	case full:
		return HamPath
	case closed:
		return Cycle
	default:
		return Path
	}
}

// Validate returns nil if seq is a Hamiltonian cycle of adj and
// ErrNotHamiltonian wrapped with the actual kind otherwise.
func Validate(seq []lattice.Node, adj lattice.Adjacency) error {
	if k := Classify(seq, adj); k != HamCycle {
		return fmt.Errorf("%w: %s", ErrNotHamiltonian, k)
	}
	return nil
}
