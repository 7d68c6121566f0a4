// Package demooracle provides a small, deterministic, in-memory
// implementation of oracle.Oracle and oracle.Waypoint for tests and the
// CLI demo. It is grounded on the hand-built, fixed fixtures
// (simple2DMap/simpleUR5eMotion-style helpers) used across
// go.viam.com/rdk/motionplan's own test suite: no IK solver, no
// collision checking, just the joint data the caller hands it.
package demooracle

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/viam-labs/ladderplan/oracle"
)

// Oracle is a fixed-DOF, no-IK kinematics oracle whose move-validity
// judgment is fully caller-supplied.
type Oracle struct {
	dof       int
	validMove func(from, to oracle.JointConfiguration, dtUpper time.Duration) bool
}

// New returns an Oracle with the given DOF whose IsValidMove always
// returns true.
func New(dof int) *Oracle {
	return &Oracle{dof: dof}
}

// WithValidMove returns a copy of the Oracle using the given predicate
// for IsValidMove.
func (o *Oracle) WithValidMove(fn func(from, to oracle.JointConfiguration, dtUpper time.Duration) bool) *Oracle {
	return &Oracle{dof: o.dof, validMove: fn}
}

// DOF implements oracle.Oracle.
func (o *Oracle) DOF() int { return o.dof }

// IsValidMove implements oracle.Oracle.
func (o *Oracle) IsValidMove(from, to oracle.JointConfiguration, dtUpper time.Duration) bool {
	if o.validMove == nil {
		return true
	}
	return o.validMove(from, to, dtUpper)
}

// Waypoint is a fixed set of pre-enumerated joint configurations for one
// waypoint identity; JointPoses ignores the oracle passed to it and
// simply returns what it was constructed with, exactly like a waypoint
// whose IK has already been solved offline.
type Waypoint struct {
	id     uuid.UUID
	timing oracle.TimingConstraint
	poses  []oracle.JointConfiguration
}

// NewWaypoint builds a Waypoint from a flat list of configurations, one
// per admissible solution.
func NewWaypoint(id uuid.UUID, timing oracle.TimingConstraint, poses ...oracle.JointConfiguration) *Waypoint {
	return &Waypoint{id: id, timing: timing, poses: poses}
}

// ID implements oracle.Waypoint.
func (w *Waypoint) ID() uuid.UUID { return w.id }

// Timing implements oracle.Waypoint.
func (w *Waypoint) Timing() oracle.TimingConstraint { return w.timing }

// JointPoses implements oracle.Waypoint. An empty poses list models an
// IK failure.
func (w *Waypoint) JointPoses(_ context.Context, _ oracle.Oracle) ([]oracle.JointConfiguration, error) {
	return w.poses, nil
}
