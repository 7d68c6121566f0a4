package oracle

import "gonum.org/v1/gonum/floats"

// L2Cost is an injectable alternative to L1Cost: Euclidean distance in
// joint space. Supplied for callers who want a metric other than the
// default L1 travel distance; it is never used unless a CostFunc is
// explicitly registered with the planner.
func L2Cost(from, to JointConfiguration) float64 {
	return floats.Distance(from, to, 2)
}
