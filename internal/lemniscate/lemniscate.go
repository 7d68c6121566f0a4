// Package lemniscate generates a spherical figure-eight (lemniscate)
// curve of Cartesian points, used only as a demo/test waypoint source
// for the CLI in cmd/ladderplan. It is a position-only port of
// descartes_benchmarks::createLemniscateCurve; orientation is
// deliberately dropped since waypoint/trajectory-point primitives are
// an out-of-scope external collaborator for this module (spec.md §1).
package lemniscate

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

const epsilon = 0.0001

// Curve parameterizes a set of spherical lemniscate loops.
type Curve struct {
	FociDistance   float64
	SphereRadius   float64
	NumPoints      int
	NumLemniscates int
	Center         r3.Vector
}

// Points returns NumLemniscates*NumPoints positions tracing the curve,
// loop by loop.
func (c Curve) Points() ([]r3.Vector, error) {
	if c.FociDistance <= 0 || c.SphereRadius <= 0 || c.NumPoints < 10 || c.NumLemniscates < 1 {
		return nil, fmt.Errorf("lemniscate: invalid curve parameters %+v", c)
	}

	theta := make([]float64, c.NumPoints)
	half := c.NumPoints / 2
	dTheta := math.Pi / float64(c.NumPoints-1)
	for i := 0; i < half; i++ {
		theta[i] = -math.Pi/4 + float64(i)*dTheta
	}
	theta[0] += epsilon
	theta[half-1] -= epsilon
	for i := 0; i < half; i++ {
		theta[half+i] = 3*math.Pi/4 + float64(i)*dTheta
	}
	theta[half] += epsilon
	theta[c.NumPoints-1] -= epsilon

	omega := make([]float64, c.NumLemniscates)
	dOmega := math.Pi / float64(c.NumLemniscates)
	for i := range omega {
		omega[i] = float64(i) * dOmega
	}

	points := make([]r3.Vector, 0, c.NumLemniscates*c.NumPoints)
	a, ro := c.FociDistance, c.SphereRadius
	for j := 0; j < c.NumLemniscates; j++ {
		for i := 0; i < c.NumPoints; i++ {
			r := math.Sqrt(a * a * math.Cos(2*theta[i]))
			var phi float64
			if r < ro {
				phi = math.Asin(r / ro)
			} else {
				phi = math.Pi - math.Asin((2*ro-r)/ro)
			}

			x := ro * math.Cos(theta[i]+omega[j]) * math.Sin(phi)
			y := ro * math.Sin(theta[i]+omega[j]) * math.Sin(phi)
			z := ro * math.Cos(phi)

			points = append(points, r3.Vector{
				X: c.Center.X + x,
				Y: c.Center.Y + y,
				Z: c.Center.Z + z,
			})
		}
	}
	return points, nil
}
