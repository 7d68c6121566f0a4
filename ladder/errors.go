package ladder

import "errors"

// Sentinel errors for the InvalidInput error kind. Callers should use
// errors.Is to test for these.
var (
	// ErrNonEmptyGraph is returned by Allocate when called on a graph
	// that already has rungs.
	ErrNonEmptyGraph = errors.New("ladder: allocate called on non-empty graph")

	// ErrJointDataNotMultipleOfDOF is returned by AssignRung when the
	// supplied joint data length is not a multiple of the graph's DOF.
	ErrJointDataNotMultipleOfDOF = errors.New("ladder: joint data length is not a multiple of dof")

	// ErrEdgeListLengthMismatch is returned by AssignEdges when the
	// number of edge lists does not equal the source rung's vertex count.
	ErrEdgeListLengthMismatch = errors.New("ladder: edge list length does not match rung vertex count")

	// ErrIndexOutOfRange is returned by accessors and mutators given a
	// rung or vertex index outside the current bounds.
	ErrIndexOutOfRange = errors.New("ladder: index out of range")
)
