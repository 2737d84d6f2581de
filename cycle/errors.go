package cycle

import "errors"

var (
	// ErrTooShort indicates a sequence too short to form a cycle or a thread.
	ErrTooShort = errors.New("cycle: sequence too short")
	// ErrMissingEdge indicates an edge absent from the edge adjacency table.
	ErrMissingEdge = errors.New("cycle: edge missing from edge adjacency")
	// ErrEndpointNotFound indicates a rotation endpoint that is not in the cycle.
	ErrEndpointNotFound = errors.New("cycle: endpoint not found")
	// ErrNotAdjacent indicates rotation endpoints that are not consecutive in the cycle.
	ErrNotAdjacent = errors.New("cycle: endpoints are not consecutive")
	// ErrIllegalSplice indicates join edges that do not close a unit square.
	ErrIllegalSplice = errors.New("cycle: edges do not form a legal splice")
	// ErrBroken indicates a consecutive pair that is not a lattice edge.
	ErrBroken = errors.New("cycle: consecutive nodes are not adjacent")
)
