// Package planner implements the Planner Facade: it builds and
// incrementally edits a ladder.Graph from a sequence of waypoints,
// dispatching inverse kinematics through an oracle.Oracle and delegating
// shortest-path extraction to package ladder. Control flow here mirrors
// descartes_planner::PlanningGraph (insertGraph / addTrajectory /
// modifyTrajectory / removeTrajectory / getShortestPath) from the
// original C++ implementation, adapted to Go error returns.
package planner

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/viam-labs/ladderplan/ladder"
	"github.com/viam-labs/ladderplan/oracle"
)

// PathPoint is one entry of a ShortestPath result: the chosen joint
// configuration for a rung, carrying that rung's timing.
type PathPoint struct {
	Joints oracle.JointConfiguration
	Timing oracle.TimingConstraint
}

// Result is the outcome of ShortestPath. A Cost of +Inf means the graph
// is infeasible and Path is empty.
type Result struct {
	Cost float64
	Path []PathPoint
}

// Planner owns a ladder.Graph and drives it from a sequence of
// waypoints. It is not safe for concurrent use by multiple goroutines;
// distinct Planners are fully independent.
type Planner struct {
	graph  *ladder.Graph
	oracle oracle.Oracle
	edges  *ladder.EdgeBuilder
	logger *zap.Logger
}

// NewPlanner returns a Planner bound to the given, read-only-shared,
// oracle. The oracle's DOF fixes the graph's DOF for the planner's
// lifetime.
func NewPlanner(o oracle.Oracle, opts ...Option) *Planner {
	var cfg options
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	return &Planner{
		graph:  ladder.NewGraph(o.DOF()),
		oracle: o,
		edges:  ladder.NewEdgeBuilder(o, cfg.cost),
		logger: cfg.logger,
	}
}

// Graph exposes the underlying ladder.Graph for read-only inspection.
// Accessors on it are borrowed views per ladder.Graph's own contract.
func (p *Planner) Graph() *ladder.Graph { return p.graph }

// InsertGraph rebuilds the planner's graph from scratch for the given
// ordered waypoints. It fails if fewer than 2 waypoints are given, before
// touching any prior graph; it fails if IK fails for any waypoint after
// clearing the prior graph, matching descartes_planner::insertGraph's
// clear-then-solve order, so an IK failure on re-insertion leaves the
// graph empty rather than reverting to its previous contents.
func (p *Planner) InsertGraph(ctx context.Context, points []oracle.Waypoint) error {
	if len(points) < 2 {
		return ErrTooFewWaypoints
	}

	if p.graph.Size() > 0 {
		p.graph.Reset()
	}

	allJoints := make([][]float64, len(points))
	for i, pt := range points {
		poses, err := pt.JointPoses(ctx, p.oracle)
		if err != nil {
			return err
		}
		if len(poses) == 0 {
			return errors.Wrapf(ErrIKFailed, "waypoint %s", pt.ID())
		}
		allJoints[i] = flatten(poses)
	}

	if err := p.graph.Allocate(len(points)); err != nil {
		return err
	}
	for i, pt := range points {
		if err := p.graph.AssignRung(i, pt.ID(), pt.Timing(), allJoints[i]); err != nil {
			return err
		}
	}
	for i := 0; i < p.graph.Size()-1; i++ {
		if err := p.computeAndAssignEdges(i, i+1); err != nil {
			return err
		}
	}

	p.logger.Info("inserted graph", zap.Int("rungs", p.graph.Size()))
	return nil
}

// AddTrajectory inserts a single new waypoint into the graph.
//
// The insertion position is derived from nextID: if nextID is present,
// the point is inserted immediately before it; if nextID is
// oracle.NilID (no next waypoint, i.e. this is the new tail), the point
// is appended after the current last rung. This resolves the ambiguity
// flagged in the original source (see SPEC_FULL.md §4.4): append means
// append, not insert-before-the-old-last-rung.
//
// previousID, if not oracle.NilID, identifies the rung that should gain
// outgoing edges into the new point; nextID, if not oracle.NilID,
// identifies the rung that should gain incoming edges from it.
func (p *Planner) AddTrajectory(ctx context.Context, point oracle.Waypoint, previousID, nextID uuid.UUID) error {
	insertIdx := p.graph.Size()
	if nextID != oracle.NilID {
		if idx, ok := p.graph.IndexOf(nextID); ok {
			insertIdx = idx
		}
	}

	poses, err := point.JointPoses(ctx, p.oracle)
	if err != nil {
		return err
	}
	if len(poses) == 0 {
		return errors.Wrapf(ErrIKFailed, "waypoint %s", point.ID())
	}

	if err := p.graph.InsertRung(insertIdx); err != nil {
		return err
	}
	if err := p.graph.AssignRung(insertIdx, point.ID(), point.Timing(), flatten(poses)); err != nil {
		return err
	}

	if previousID != oracle.NilID {
		if prevIdx, ok := p.graph.IndexOf(previousID); ok {
			if err := p.computeAndAssignEdges(prevIdx, insertIdx); err != nil {
				return err
			}
		}
	}
	if nextID != oracle.NilID {
		if nextIdx, ok := p.graph.IndexOf(nextID); ok {
			if err := p.computeAndAssignEdges(insertIdx, nextIdx); err != nil {
				return err
			}
		}
	}

	p.logger.Info("added trajectory point", zap.Stringer("id", point.ID()), zap.Int("index", insertIdx))
	return nil
}

// ModifyTrajectory replaces an existing waypoint's vertices and timing
// in place, clearing and recomputing the edges on both sides. It fails
// with ErrWaypointNotFound, leaving the graph untouched, if point's id
// is not present.
func (p *Planner) ModifyTrajectory(ctx context.Context, point oracle.Waypoint) error {
	idx, ok := p.graph.IndexOf(point.ID())
	if !ok {
		return errors.Wrapf(ErrWaypointNotFound, "waypoint %s", point.ID())
	}

	poses, err := point.JointPoses(ctx, p.oracle)
	if err != nil {
		return err
	}
	if len(poses) == 0 {
		return errors.Wrapf(ErrIKFailed, "waypoint %s", point.ID())
	}

	if err := p.graph.ClearVertices(idx); err != nil {
		return err
	}
	if !p.graph.IsFirst(idx) {
		if err := p.graph.ClearEdges(idx - 1); err != nil {
			return err
		}
	}
	if !p.graph.IsLast(idx) {
		if err := p.graph.ClearEdges(idx); err != nil {
			return err
		}
	}
	if err := p.graph.AssignRung(idx, point.ID(), point.Timing(), flatten(poses)); err != nil {
		return err
	}

	if !p.graph.IsFirst(idx) {
		if err := p.computeAndAssignEdges(idx-1, idx); err != nil {
			return err
		}
	}
	if !p.graph.IsLast(idx) {
		if err := p.computeAndAssignEdges(idx, idx+1); err != nil {
			return err
		}
	}

	p.logger.Info("modified trajectory point", zap.Stringer("id", point.ID()), zap.Int("index", idx))
	return nil
}

// RemoveTrajectory deletes an existing waypoint's rung, recomputing the
// edge block between its former neighbors if it was interior. It fails
// with ErrWaypointNotFound, leaving the graph untouched, if id is not
// present.
func (p *Planner) RemoveTrajectory(id uuid.UUID) error {
	idx, ok := p.graph.IndexOf(id)
	if !ok {
		return errors.Wrapf(ErrWaypointNotFound, "waypoint %s", id)
	}

	inMiddle := !p.graph.IsFirst(idx) && !p.graph.IsLast(idx)

	if err := p.graph.RemoveRung(idx); err != nil {
		return err
	}

	if inMiddle {
		prevIdx := idx - 1
		nextIdx := idx // indices collapsed left by the removal
		if err := p.computeAndAssignEdges(prevIdx, nextIdx); err != nil {
			return err
		}
	}

	p.logger.Info("removed trajectory point", zap.Stringer("id", id), zap.Int("index", idx))
	return nil
}

// ShortestPath extracts the minimum-cost path through the current
// graph. A Cost of +Inf signals infeasibility; Path is empty in that
// case.
func (p *Planner) ShortestPath() Result {
	cost, idxs := ladder.ShortestPath(p.graph)
	if math.IsInf(cost, 1) {
		return Result{Cost: cost}
	}

	path := make([]PathPoint, len(idxs))
	for i, vertexIdx := range idxs {
		rung, err := p.graph.Rung(i)
		if err != nil {
			// idxs was produced against this same graph snapshot; an error
			// here indicates the caller mutated the graph concurrently,
			// which violates the single-threaded contract.
			return Result{Cost: math.Inf(1)}
		}
		vertex, err := p.graph.Vertex(i, vertexIdx)
		if err != nil {
			return Result{Cost: math.Inf(1)}
		}
		path[i] = PathPoint{
			Joints: append(oracle.JointConfiguration(nil), vertex...),
			Timing: rung.Timing,
		}
	}

	p.logger.Info("computed shortest path", zap.Int("length", len(path)), zap.Float64("cost", cost))
	return Result{Cost: cost, Path: path}
}

func (p *Planner) computeAndAssignEdges(fromIdx, toIdx int) error {
	fromRung, err := p.graph.Rung(fromIdx)
	if err != nil {
		return err
	}
	toRung, err := p.graph.Rung(toIdx)
	if err != nil {
		return err
	}
	edges := p.edges.Build(fromRung.JointData, toRung.JointData, p.graph.DOF(), toRung.Timing)
	return p.graph.AssignEdges(fromIdx, edges)
}

func flatten(poses []oracle.JointConfiguration) []float64 {
	flat := make([]float64, 0, len(poses)*len(poses[0]))
	for _, pose := range poses {
		flat = append(flat, pose...)
	}
	return flat
}
