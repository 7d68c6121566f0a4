// Package ladder implements the ladder-graph planning core: a layered
// DAG ("rungs" of joint-configuration vertices connected by forward
// edges), its incremental mutation API, and the shortest-path search
// over it. The graph holds no internal synchronization; callers must
// serialize access to a single Graph the same way the original
// descartes_planner::LadderGraph required external serialization.
package ladder

import (
	"github.com/google/uuid"

	"github.com/viam-labs/ladderplan/oracle"
)

// Edge is a forward transition from a vertex in one rung to a vertex in
// the next. ToIndex addresses the destination by position, never by
// pointer, so edges remain valid across any mutation that does not
// touch either endpoint rung.
type Edge struct {
	Cost    float64
	ToIndex int
}

// EdgeList is the set of outgoing edges for a single source vertex, kept
// in ascending order of ToIndex.
type EdgeList []Edge

// Rung is one layer of the ladder: all admissible joint configurations
// for a single waypoint, concatenated in the oracle's enumeration order.
type Rung struct {
	ID        uuid.UUID
	Timing    oracle.TimingConstraint
	JointData []float64
}

// VertexCount returns the number of joint-configuration vertices this
// rung holds, given the graph's DOF.
func (r Rung) VertexCount(dof int) int {
	if dof == 0 {
		return 0
	}
	return len(r.JointData) / dof
}

// Vertex returns the j-th joint configuration in this rung.
func (r Rung) Vertex(dof, j int) []float64 {
	return r.JointData[j*dof : (j+1)*dof]
}

// Graph is the layered DAG. It owns its rungs and edges exclusively;
// accessors return slices aliasing internal storage, valid only until
// the next mutating call on the same Graph.
type Graph struct {
	dof   int
	rungs []Rung
	// edges[i] is the edge block from rung i to rung i+1, with exactly
	// len(rungs[i] vertices) entries. len(edges) == len(rungs)-1 whenever
	// len(rungs) > 0.
	edges [][]EdgeList
	index map[uuid.UUID]int
}

// NewGraph returns an empty graph with the given, immutable, DOF.
func NewGraph(dof int) *Graph {
	return &Graph{
		dof:   dof,
		index: make(map[uuid.UUID]int),
	}
}

// DOF returns the graph's fixed degrees of freedom.
func (g *Graph) DOF() int { return g.dof }

// Size returns the current number of rungs.
func (g *Graph) Size() int { return len(g.rungs) }

// IsFirst reports whether i addresses the first rung.
func (g *Graph) IsFirst(i int) bool { return i == 0 }

// IsLast reports whether i addresses the last rung.
func (g *Graph) IsLast(i int) bool { return i == len(g.rungs)-1 }

// Allocate resizes an empty graph to n empty rungs. It fails if the
// graph already has rungs — callers must reset first.
func (g *Graph) Allocate(n int) error {
	if len(g.rungs) > 0 {
		return ErrNonEmptyGraph
	}
	g.rungs = make([]Rung, n)
	if n > 0 {
		g.edges = make([][]EdgeList, n-1)
	}
	return nil
}

// Reset empties the graph, discarding all rungs, edges, and the ID
// index.
func (g *Graph) Reset() {
	g.rungs = nil
	g.edges = nil
	g.index = make(map[uuid.UUID]int)
}

// AssignRung overwrites rung i's identity, timing, and joint data. Edges
// are not touched. joints must have a length that is a multiple of DOF.
func (g *Graph) AssignRung(i int, id uuid.UUID, timing oracle.TimingConstraint, joints []float64) error {
	if i < 0 || i >= len(g.rungs) {
		return ErrIndexOutOfRange
	}
	if g.dof > 0 && len(joints)%g.dof != 0 {
		return ErrJointDataNotMultipleOfDOF
	}
	if old := g.rungs[i].ID; old != oracle.NilID {
		delete(g.index, old)
	}
	g.rungs[i] = Rung{ID: id, Timing: timing, JointData: joints}
	if id != oracle.NilID {
		g.index[id] = i
	}
	return nil
}

// InsertRung inserts an empty rung at position i, shifting rungs at and
// after i to the right. The edge blocks adjacent to the new rung (i-1
// and i, post-shift) are cleared; the caller is responsible for
// recomputing them.
func (g *Graph) InsertRung(i int) error {
	if i < 0 || i > len(g.rungs) {
		return ErrIndexOutOfRange
	}

	n := len(g.rungs)
	g.rungs = append(g.rungs, Rung{})
	copy(g.rungs[i+1:], g.rungs[i:])
	g.rungs[i] = Rung{}

	if n > 0 {
		old := g.edges
		next := make([][]EdgeList, len(old)+1)
		switch {
		case i == 0:
			copy(next[1:], old)
		case i == n:
			copy(next, old)
		default:
			copy(next[:i-1], old[:i-1])
			copy(next[i+1:], old[i:])
		}
		g.edges = next
	}

	for id, pos := range g.index {
		if pos >= i {
			g.index[id] = pos + 1
		}
	}
	return nil
}

// RemoveRung deletes rung i, shifting subsequent rungs left. If i was
// interior, the edge block running from the new rung i-1 is invalidated
// and must be recomputed by the caller.
func (g *Graph) RemoveRung(i int) error {
	if i < 0 || i >= len(g.rungs) {
		return ErrIndexOutOfRange
	}

	if id := g.rungs[i].ID; id != oracle.NilID {
		delete(g.index, id)
	}

	g.rungs = append(g.rungs[:i], g.rungs[i+1:]...)
	if len(g.edges) > 0 {
		removeEdgeIdx := i
		if removeEdgeIdx >= len(g.edges) {
			removeEdgeIdx = len(g.edges) - 1
		}
		g.edges = append(g.edges[:removeEdgeIdx], g.edges[removeEdgeIdx+1:]...)
		if i > 0 && i-1 < len(g.edges) {
			g.edges[i-1] = nil
		}
	}

	for id, pos := range g.index {
		if pos > i {
			g.index[id] = pos - 1
		}
	}
	return nil
}

// ClearVertices resets rung i's joint data and identity in place,
// leaving its position but emptying its content. Edges are untouched;
// callers that clear vertices generally also clear and recompute edges.
func (g *Graph) ClearVertices(i int) error {
	if i < 0 || i >= len(g.rungs) {
		return ErrIndexOutOfRange
	}
	if id := g.rungs[i].ID; id != oracle.NilID {
		delete(g.index, id)
	}
	g.rungs[i] = Rung{}
	return nil
}

// ClearEdges resets the edge block out of rung i, in place.
func (g *Graph) ClearEdges(i int) error {
	if i < 0 || i >= len(g.edges) {
		return ErrIndexOutOfRange
	}
	g.edges[i] = nil
	return nil
}

// AssignEdges installs the per-vertex edge lists running from rung i to
// rung i+1. len(edges) must equal rung i's vertex count.
func (g *Graph) AssignEdges(i int, edges []EdgeList) error {
	if i < 0 || i >= len(g.edges) {
		return ErrIndexOutOfRange
	}
	if len(edges) != g.rungs[i].VertexCount(g.dof) {
		return ErrEdgeListLengthMismatch
	}
	g.edges[i] = edges
	return nil
}

// Rung returns rung i.
func (g *Graph) Rung(i int) (Rung, error) {
	if i < 0 || i >= len(g.rungs) {
		return Rung{}, ErrIndexOutOfRange
	}
	return g.rungs[i], nil
}

// Vertex returns the joint configuration at (rungI, vertexJ).
func (g *Graph) Vertex(rungI, vertexJ int) ([]float64, error) {
	if rungI < 0 || rungI >= len(g.rungs) {
		return nil, ErrIndexOutOfRange
	}
	r := g.rungs[rungI]
	if g.dof == 0 || vertexJ < 0 || vertexJ >= r.VertexCount(g.dof) {
		return nil, ErrIndexOutOfRange
	}
	return r.Vertex(g.dof, vertexJ), nil
}

// EdgesOutOf returns the edge list for vertex vertexJ in rung rungI. A
// cleared (invalidated) edge block yields a nil list for any
// non-negative vertexJ.
func (g *Graph) EdgesOutOf(rungI, vertexJ int) (EdgeList, error) {
	if rungI < 0 || rungI >= len(g.edges) {
		return nil, ErrIndexOutOfRange
	}
	block := g.edges[rungI]
	if vertexJ >= 0 && len(block) == 0 {
		return nil, nil
	}
	if vertexJ < 0 || vertexJ >= len(block) {
		return nil, ErrIndexOutOfRange
	}
	return block[vertexJ], nil
}

// IndexOf returns the current rung position of id, and whether it is
// present.
func (g *Graph) IndexOf(id uuid.UUID) (int, bool) {
	pos, ok := g.index[id]
	return pos, ok
}
