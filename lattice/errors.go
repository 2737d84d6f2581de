package lattice

import "errors"

var (
	// ErrBadExtent indicates an extent that is not a positive odd integer.
	ErrBadExtent = errors.New("lattice: extent must be a positive odd integer")
	// ErrBadOrder indicates a node count that no cube lattice has.
	ErrBadOrder = errors.New("lattice: order is not the node count of a cube lattice")
	// ErrUnknownNode indicates a node id outside the lattice.
	ErrUnknownNode = errors.New("lattice: unknown node")
)
