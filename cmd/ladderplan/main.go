// Command ladderplan is a demo CLI: it generates a lemniscate curve of
// Cartesian waypoints, hands each one a synthetic two-branch inverse
// kinematics solution (a stand-in for a real IK oracle, which is an
// out-of-scope external collaborator per spec.md §1), and prints the
// shortest-cost joint trajectory the planner finds. Flag handling and
// structured logging follow go.viam.com/rdk/motionplan/armplanning's
// cmd-plan.go.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/golang/geo/r3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/viam-labs/ladderplan/internal/lemniscate"
	"github.com/viam-labs/ladderplan/oracle"
	"github.com/viam-labs/ladderplan/planner"
)

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func realMain() error {
	numPoints := flag.Int("points", 20, "points per lemniscate loop")
	numLoops := flag.Int("loops", 1, "number of lemniscate loops")
	radius := flag.Float64("radius", 5, "sphere radius")
	foci := flag.Float64("foci", 1, "foci distance")
	maxSpeed := flag.Float64("max-speed", 10, "max joint-space speed, units/sec, for the timing check")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	cfg := zap.NewProductionConfig()
	if *verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	defer logger.Sync()

	curve := lemniscate.Curve{
		FociDistance:   *foci,
		SphereRadius:   *radius,
		NumPoints:      *numPoints,
		NumLemniscates: *numLoops,
	}
	points, err := curve.Points()
	if err != nil {
		return err
	}

	o := &demoOracle{maxSpeed: *maxSpeed}
	p := planner.NewPlanner(o, planner.WithLogger(logger))

	waypoints := make([]oracle.Waypoint, len(points))
	for i, pt := range points {
		timing := oracle.TimingConstraint{}
		if i > 0 {
			timing = oracle.TimingConstraint{Specified: true, Upper: time.Second}
		}
		waypoints[i] = newDemoWaypoint(uuid.New(), timing, pt)
	}

	if err := p.InsertGraph(context.Background(), waypoints); err != nil {
		return err
	}

	result := p.ShortestPath()
	if math.IsInf(result.Cost, 1) {
		logger.Warn("no feasible trajectory found")
		return nil
	}

	logger.Info("found trajectory", zap.Float64("cost", result.Cost), zap.Int("points", len(result.Path)))
	for i, pt := range result.Path {
		fmt.Printf("%3d: %v\n", i, pt.Joints)
	}
	return nil
}

// demoOracle is a synthetic, non-IK kinematics oracle: DOF 3, one "joint"
// per Cartesian axis, with move validity gated by a simple max-speed
// check. It stands in for a real robot model for demo purposes only.
type demoOracle struct {
	maxSpeed float64
}

func (o *demoOracle) DOF() int { return 3 }

func (o *demoOracle) IsValidMove(from, to oracle.JointConfiguration, dtUpper time.Duration) bool {
	var sumSq float64
	for k := range from {
		d := from[k] - to[k]
		sumSq += d * d
	}
	dist := math.Sqrt(sumSq)
	return dist <= o.maxSpeed*dtUpper.Seconds()
}

// demoWaypoint hands back two synthetic joint solutions per Cartesian
// point: the point itself, and its reflection through the origin — a
// stand-in for an elbow-up/elbow-down IK branch pair.
type demoWaypoint struct {
	id     uuid.UUID
	timing oracle.TimingConstraint
	pose   r3.Vector
}

func newDemoWaypoint(id uuid.UUID, timing oracle.TimingConstraint, pose r3.Vector) *demoWaypoint {
	return &demoWaypoint{id: id, timing: timing, pose: pose}
}

func (w *demoWaypoint) ID() uuid.UUID                   { return w.id }
func (w *demoWaypoint) Timing() oracle.TimingConstraint { return w.timing }

func (w *demoWaypoint) JointPoses(_ context.Context, _ oracle.Oracle) ([]oracle.JointConfiguration, error) {
	return []oracle.JointConfiguration{
		{w.pose.X, w.pose.Y, w.pose.Z},
		{-w.pose.X, -w.pose.Y, -w.pose.Z},
	}, nil
}
