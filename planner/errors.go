package planner

import "errors"

// Sentinel errors. Use errors.Is to test for these; IKFailure and
// NotFound cases are additionally wrapped with the offending waypoint's
// id via github.com/pkg/errors.
var (
	// ErrTooFewWaypoints is returned by InsertGraph given fewer than 2
	// waypoints.
	ErrTooFewWaypoints = errors.New("planner: insert graph requires at least 2 waypoints")

	// ErrIKFailed is returned when a waypoint's JointPoses enumerates no
	// configurations. AddTrajectory and ModifyTrajectory return it before
	// mutating the graph; InsertGraph clears any prior graph before
	// solving IK, so it leaves the graph empty.
	ErrIKFailed = errors.New("planner: inverse kinematics failed for waypoint")

	// ErrWaypointNotFound is returned by ModifyTrajectory and
	// RemoveTrajectory for an id the graph does not contain. The graph is
	// left untouched.
	ErrWaypointNotFound = errors.New("planner: waypoint not found")
)
