package tess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenLines(t *testing.T) {
	contours, err := Flatten(mustNormalize(t, "M 0 0 L 10 0 L 10 10 Z M 20 0 L 30 0"), DefaultToleranceConfig())
	require.NoError(t, err)
	require.Len(t, contours, 2)

	assert.True(t, contours[0].Closed)
	assert.Equal(t, []BetterPoint[DocPos]{{0, 0}, {10, 0}, {10, 10}}, contours[0].Points)

	assert.False(t, contours[1].Closed)
	assert.Equal(t, []BetterPoint[DocPos]{{20, 0}, {30, 0}}, contours[1].Points)
}

// distToSegment is the distance from p to the segment a-b.
func distToSegment(p, a, b BetterPoint[DocPos]) float64 {
	d := b.Sub(a)
	if d.X == 0 && d.Y == 0 {
		return p.Sub(a).Len()
	}

	t := DocPos(p.Sub(a).Dot(d) / d.Dot(d))
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return p.Sub(a.Add(d.Mul(t))).Len()
}

func TestFlattenCubicWithinTolerance(t *testing.T) {
	const tol = 0.05

	path := mustNormalize(t, "M 0 0 C 0 10 10 10 10 0")

	contours, err := Flatten(path, ToleranceConfig{Tolerance: tol})
	require.NoError(t, err)
	require.Len(t, contours, 1)

	pts := contours[0].Points
	require.Greater(t, len(pts), 2)

	assert.Equal(t, BetterPt[DocPos](0, 0), pts[0])
	assert.Equal(t, BetterPt[DocPos](10, 0), pts[len(pts)-1])

	// sample the exact curve and check the polyline never drifts past the
	// tolerance
	ctrl := []BetterPoint[DocPos]{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	for k := 0; k <= 200; k++ {
		sample := bezierAt(float64(k)/200, ctrl)

		best := math.Inf(1)
		for i := 0; i+1 < len(pts); i++ {
			if d := distToSegment(sample, pts[i], pts[i+1]); d < best {
				best = d
			}
		}

		assert.LessOrEqual(t, best, tol+1e-9, "sample %d", k)
	}
}

func TestFlattenRefinement(t *testing.T) {
	path := mustNormalize(t, "M 0 0 C 0 100 100 100 100 0")

	coarse, err := Flatten(path, ToleranceConfig{Tolerance: 5})
	require.NoError(t, err)
	fine, err := Flatten(path, ToleranceConfig{Tolerance: 0.01})
	require.NoError(t, err)

	assert.Greater(t, len(fine[0].Points), len(coarse[0].Points))
}

func TestFlattenDeterministic(t *testing.T) {
	path := mustNormalize(t, "M 0 0 C 0 10 10 10 10 0 S 20 -10 20 0 Z")

	a, err := Flatten(path, DefaultToleranceConfig())
	require.NoError(t, err)
	b, err := Flatten(path, DefaultToleranceConfig())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestFlattenZeroToleranceTerminates(t *testing.T) {
	path := mustNormalize(t, "M 0 0 C 0 10 10 10 10 0")

	// the depth cap bounds subdivision even with an impossible tolerance
	contours, err := Flatten(path, ToleranceConfig{Tolerance: 0})
	require.NoError(t, err)
	require.Len(t, contours, 1)
	assert.LessOrEqual(t, len(contours[0].Points), maxFlattenedPoints)
}

func TestFlattenQuadSegment(t *testing.T) {
	path := Path{
		{Kind: SegMoveTo, P: [3]BetterPoint[DocPos]{{0, 0}}},
		{Kind: SegQuadTo, P: [3]BetterPoint[DocPos]{{5, 10}, {10, 0}}},
	}

	contours, err := Flatten(path, DefaultToleranceConfig())
	require.NoError(t, err)
	require.Len(t, contours, 1)

	pts := contours[0].Points
	assert.Equal(t, BetterPt[DocPos](10, 0), pts[len(pts)-1])
}

func TestFlattenWithoutMoveTo(t *testing.T) {
	path := Path{{Kind: SegLineTo, P: [3]BetterPoint[DocPos]{{1, 1}}}}
	_, err := Flatten(path, DefaultToleranceConfig())
	assert.ErrorIs(t, err, ErrMalformedPath)
}
