package ladder

import "github.com/viam-labs/ladderplan/oracle"

// EdgeBuilder computes the edge block between two adjacent rungs. It
// holds a read-only reference to an Oracle and an optional CostFunc;
// both are shared, never mutated.
type EdgeBuilder struct {
	Oracle oracle.Oracle
	Cost   oracle.CostFunc
}

// NewEdgeBuilder returns an EdgeBuilder using the default L1 cost metric
// unless cost is non-nil.
func NewEdgeBuilder(o oracle.Oracle, cost oracle.CostFunc) *EdgeBuilder {
	if cost == nil {
		cost = oracle.L1Cost
	}
	return &EdgeBuilder{Oracle: o, Cost: cost}
}

// Build computes, for every vertex in the source rung's joint data, the
// edge list to vertices in the destination rung's joint data, under the
// destination's timing constraint. Destination indices within a given
// source vertex's edge list are emitted in ascending order.
func (b *EdgeBuilder) Build(from, to []float64, dof int, tm oracle.TimingConstraint) []EdgeList {
	if dof == 0 {
		return nil
	}
	nFrom := len(from) / dof
	nTo := len(to) / dof

	edges := make([]EdgeList, nFrom)
	scratch := make(EdgeList, nTo)

	for i := 0; i < nFrom; i++ {
		fromVertex := from[i*dof : (i+1)*dof]
		count := 0
		for j := 0; j < nTo; j++ {
			toVertex := to[j*dof : (j+1)*dof]
			if tm.Specified && !b.Oracle.IsValidMove(fromVertex, toVertex, tm.Upper) {
				continue
			}
			cost := b.Cost(fromVertex, toVertex)
			scratch[count] = Edge{Cost: cost, ToIndex: j}
			count++
		}
		edges[i] = append(EdgeList(nil), scratch[:count]...)
	}
	return edges
}
