package tess

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triArea sums the unsigned area of the triangle list.
func triArea(points []BetterPoint[DocPos], indices []uint32) float64 {
	var total float64
	for i := 0; i+2 < len(indices); i += 3 {
		a := points[indices[i]]
		b := points[indices[i+1]]
		c := points[indices[i+2]]
		total += math.Abs(b.Sub(a).Cross(c.Sub(a))) / 2
	}

	return total
}

func fillArea(t *testing.T, d string, rule FillRule, tol float64) float64 {
	t.Helper()

	cmds, err := ParsePathData(d)
	require.NoError(t, err)
	path, err := Normalize(cmds, ToleranceConfig{Tolerance: tol})
	require.NoError(t, err)

	points, indices, err := TessellateFill(path, rule, ToleranceConfig{Tolerance: tol})
	require.NoError(t, err)

	return triArea(points, indices)
}

func TestFillSquare(t *testing.T) {
	area := fillArea(t, "M 0 0 H 10 V 10 H 0 Z", FillNonZero, DefaultTolerance)
	assert.InDelta(t, 100, area, 1e-9)
}

func TestFillOpenSubpathIsClosed(t *testing.T) {
	area := fillArea(t, "M 0 0 L 10 0 L 10 10 L 0 10", FillNonZero, DefaultTolerance)
	assert.InDelta(t, 100, area, 1e-9)
}

func TestFillCircleArea(t *testing.T) {
	// a full circle of radius 50 out of two arc halves
	d := "M -50 0 A 50 50 0 1 0 50 0 A 50 50 0 1 0 -50 0 Z"
	area := fillArea(t, d, FillNonZero, 0.01)
	assert.InEpsilon(t, math.Pi*50*50, area, 0.005)
}

func TestFillRulesDivergeOnStar(t *testing.T) {
	// classic 5-point star drawn edge-crossing: nonzero fills the pentagon
	// core, evenodd leaves it empty
	d := "M 0 -100"
	for i := 1; i < 5; i++ {
		a := -math.Pi/2 + float64(i*2)*2*math.Pi/5
		d += fmt.Sprintf(" L %f %f", 100*math.Cos(a), 100*math.Sin(a))
	}
	d += " Z"

	nonzero := fillArea(t, d, FillNonZero, DefaultTolerance)
	evenodd := fillArea(t, d, FillEvenOdd, DefaultTolerance)

	assert.Greater(t, nonzero, evenodd)
	assert.Greater(t, evenodd, 0.0)
}

func TestFillDonut(t *testing.T) {
	// both rings wound the same way: evenodd makes a hole, nonzero does not
	d := "M 0 0 H 10 V 10 H 0 Z M 2 2 H 8 V 8 H 2 Z"

	assert.InDelta(t, 64, fillArea(t, d, FillEvenOdd, DefaultTolerance), 1e-9)
	assert.InDelta(t, 100, fillArea(t, d, FillNonZero, DefaultTolerance), 1e-9)
}

func TestFillDonutOppositeWinding(t *testing.T) {
	// inner ring reversed: now both rules agree on the hole
	d := "M 0 0 H 10 V 10 H 0 Z M 2 2 V 8 H 8 V 2 Z"

	assert.InDelta(t, 64, fillArea(t, d, FillEvenOdd, DefaultTolerance), 1e-9)
	assert.InDelta(t, 64, fillArea(t, d, FillNonZero, DefaultTolerance), 1e-9)
}

func TestFillDegenerate(t *testing.T) {
	// fewer than 3 points and collinear contours produce nothing
	for _, d := range []string{
		"M 0 0 L 10 10",
		"M 0 0 L 10 0 L 20 0 Z",
		"M 5 5 Z",
	} {
		points, indices := mustFill(t, d, FillNonZero)
		assert.Empty(t, indices, "d=%q", d)
		assert.Empty(t, points, "d=%q", d)
	}
}

func TestFillIndicesValid(t *testing.T) {
	points, indices := mustFill(t, "M 0 0 H 10 V 10 H 0 Z M 2 2 H 8 V 8 H 2 Z", FillEvenOdd)
	assert.Zero(t, len(indices)%3)
	for _, idx := range indices {
		assert.Less(t, int(idx), len(points))
	}
}

func mustFill(t *testing.T, d string, rule FillRule) ([]BetterPoint[DocPos], []uint32) {
	t.Helper()

	cmds, err := ParsePathData(d)
	require.NoError(t, err)
	path, err := Normalize(cmds, DefaultToleranceConfig())
	require.NoError(t, err)
	points, indices, err := TessellateFill(path, rule, DefaultToleranceConfig())
	require.NoError(t, err)

	return points, indices
}
