// Package oracle defines the collaborator contracts the ladder-graph
// planner depends on but does not implement: the kinematics oracle that
// enumerates joint solutions and judges move feasibility, and the
// waypoint that owns dispatching IK against that oracle.
package oracle

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JointConfiguration is a fixed-length tuple of joint values. Its length
// is the owning graph's DOF.
type JointConfiguration []float64

// TimingConstraint bounds the time allowed to move into a waypoint. When
// Specified is false, move validity is not checked; only cost governs.
type TimingConstraint struct {
	Specified bool
	Upper     time.Duration
}

// NilID is the reserved "no such neighbor" waypoint identity used by
// incremental planner operations to mean "no previous/next waypoint".
var NilID = uuid.Nil

// Oracle is the read-only kinematics collaborator. Implementations must
// not be mutated by callers and must be safe to share across concurrently
// running planner instances (each instance still serializes its own
// calls; the oracle itself must tolerate concurrent read access).
type Oracle interface {
	// DOF returns the number of degrees of freedom of a joint configuration.
	DOF() int

	// IsValidMove reports whether a transition from one joint configuration
	// to another is kinematically achievable within dtUpper. Only called
	// when the destination waypoint's timing constraint is Specified.
	IsValidMove(from, to JointConfiguration, dtUpper time.Duration) bool
}

// Waypoint is a single Cartesian-space target in the input sequence. It
// owns the dispatch of inverse kinematics against an Oracle; the planner
// never calls IK directly.
type Waypoint interface {
	// ID returns this waypoint's identity. NilID is reserved and must
	// never be returned by a real waypoint.
	ID() uuid.UUID

	// Timing returns the timing constraint for the move into this
	// waypoint from its predecessor.
	Timing() TimingConstraint

	// JointPoses enumerates the admissible joint configurations for this
	// waypoint using the given oracle. A nil error with zero returned
	// configurations means IK failed for this waypoint. Enumeration order
	// is deterministic and becomes the vertex order of the waypoint's rung.
	JointPoses(ctx context.Context, o Oracle) ([]JointConfiguration, error)
}

// CostFunc computes the transition cost between two joint configurations
// in adjacent rungs. It must be pure and non-negative; if stateful, it
// must be confined to the planner it was installed in.
type CostFunc func(from, to JointConfiguration) float64

// L1Cost is the default cost metric: the sum of absolute per-joint
// differences. It is proportional to total joint travel and is the
// natural default under uniform timing.
func L1Cost(from, to JointConfiguration) float64 {
	var sum float64
	for k := range from {
		d := from[k] - to[k]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}
