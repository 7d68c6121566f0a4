package ladder

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.viam.com/test"

	"github.com/viam-labs/ladderplan/internal/demooracle"
	"github.com/viam-labs/ladderplan/oracle"
)

func buildGraph(t *testing.T, dof int, o oracle.Oracle, cost oracle.CostFunc, rungJoints [][]float64, timings []oracle.TimingConstraint) *Graph {
	t.Helper()
	g := NewGraph(dof)
	test.That(t, g.Allocate(len(rungJoints)), test.ShouldBeNil)
	for i, joints := range rungJoints {
		test.That(t, g.AssignRung(i, uuid.New(), timings[i], joints), test.ShouldBeNil)
	}
	builder := NewEdgeBuilder(o, cost)
	for i := 0; i < len(rungJoints)-1; i++ {
		fromRung, err := g.Rung(i)
		test.That(t, err, test.ShouldBeNil)
		toRung, err := g.Rung(i + 1)
		test.That(t, err, test.ShouldBeNil)
		edges := builder.Build(fromRung.JointData, toRung.JointData, dof, toRung.Timing)
		test.That(t, g.AssignEdges(i, edges), test.ShouldBeNil)
	}
	return g
}

// Scenario 1: DOF=1, two waypoints [0.0] and [1.0], default cost.
func TestScenario1SimpleTwoWaypoint(t *testing.T) {
	o := demooracle.New(1)
	timings := []oracle.TimingConstraint{{}, {}}
	g := buildGraph(t, 1, o, nil, [][]float64{{0.0}, {1.0}}, timings)

	cost, path := ShortestPath(g)
	test.That(t, cost, test.ShouldEqual, 1.0)
	test.That(t, path, test.ShouldResemble, []int{0, 0})
}

// Scenario 2: DOF=1, three waypoints, tie-break picks lowest vertex index.
func TestScenario2TieBreakLowestIndex(t *testing.T) {
	o := demooracle.New(1)
	timings := []oracle.TimingConstraint{{}, {}, {}}
	g := buildGraph(t, 1, o, nil, [][]float64{{0.0, 10.0}, {5.0}, {0.0, 10.0}}, timings)

	cost, path := ShortestPath(g)
	test.That(t, cost, test.ShouldEqual, 10.0)
	test.That(t, path, test.ShouldResemble, []int{0, 0, 0})
}

// Scenario 3: DOF=2, always-valid moves, identical vertex sets.
func TestScenario3AlwaysValidZeroCost(t *testing.T) {
	o := demooracle.New(2)
	timings := []oracle.TimingConstraint{{Specified: true, Upper: time.Second}, {Specified: true, Upper: time.Second}}
	g := buildGraph(t, 2, o, nil, [][]float64{{0, 0, 1, 1}, {0, 0, 1, 1}}, timings)

	cost, path := ShortestPath(g)
	test.That(t, cost, test.ShouldEqual, 0.0)
	test.That(t, path, test.ShouldResemble, []int{0, 0})
}

// Scenario 4: timing rejects large jumps, leaving only matched pairs.
func TestScenario4TimingRejectsLargeJumps(t *testing.T) {
	o := demooracle.New(1).WithValidMove(func(from, to oracle.JointConfiguration, _ time.Duration) bool {
		d := from[0] - to[0]
		if d < 0 {
			d = -d
		}
		return d <= 1.0
	})
	timings := []oracle.TimingConstraint{{}, {Specified: true, Upper: time.Second}}
	g := buildGraph(t, 1, o, nil, [][]float64{{0.0, 100.0}, {0.0, 100.0}}, timings)

	cost, path := ShortestPath(g)
	test.That(t, cost, test.ShouldEqual, 0.0)
	test.That(t, path, test.ShouldResemble, []int{0, 0})
}

// Scenario 5: all moves rejected -> infeasible.
func TestScenario5Infeasible(t *testing.T) {
	o := demooracle.New(1).WithValidMove(func(from, to oracle.JointConfiguration, _ time.Duration) bool {
		return false
	})
	timings := []oracle.TimingConstraint{{}, {Specified: true, Upper: time.Second}}
	g := buildGraph(t, 1, o, nil, [][]float64{{0.0}, {10.0}}, timings)

	cost, path := ShortestPath(g)
	test.That(t, math.IsInf(cost, 1), test.ShouldBeTrue)
	test.That(t, path, test.ShouldBeEmpty)
}

func TestShortestPathCostMatchesSumOfEdgeCosts(t *testing.T) {
	o := demooracle.New(1)
	timings := []oracle.TimingConstraint{{}, {}, {}, {}}
	g := buildGraph(t, 1, o, nil, [][]float64{{0, 4}, {1, 9}, {2}, {3, 30}}, timings)

	cost, path := ShortestPath(g)
	test.That(t, math.IsInf(cost, 1), test.ShouldBeFalse)

	var sum float64
	for i := 0; i < len(path)-1; i++ {
		edges, err := g.EdgesOutOf(i, path[i])
		test.That(t, err, test.ShouldBeNil)
		found := false
		for _, e := range edges {
			if e.ToIndex == path[i+1] {
				sum += e.Cost
				found = true
				break
			}
		}
		test.That(t, found, test.ShouldBeTrue)
	}
	test.That(t, sum, test.ShouldAlmostEqual, cost)
}

func TestShortestPathEmptyGraph(t *testing.T) {
	g := NewGraph(1)
	cost, path := ShortestPath(g)
	test.That(t, math.IsInf(cost, 1), test.ShouldBeTrue)
	test.That(t, path, test.ShouldBeEmpty)
}
