package tess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNormalize(t *testing.T, d string) Path {
	t.Helper()

	cmds, err := ParsePathData(d)
	require.NoError(t, err)

	path, err := Normalize(cmds, DefaultToleranceConfig())
	require.NoError(t, err)

	return path
}

func TestNormalizeAlphabet(t *testing.T) {
	// every command family collapses onto {MoveTo, LineTo, CubicTo, Close}
	path := mustNormalize(t, "M 0 0 h 10 V 10 C 5 15 0 15 0 10 S -5 0 0 0 Q 5 -5 10 0 T 20 0 A 5 5 0 0 1 30 0 Z")
	require.NotEmpty(t, path)

	assert.Equal(t, SegMoveTo, path[0].Kind)
	for _, s := range path {
		assert.Contains(t, []SegmentKind{SegMoveTo, SegLineTo, SegCubicTo, SegClose}, s.Kind)
	}
}

func TestNormalizeHV(t *testing.T) {
	path := mustNormalize(t, "M 1 2 H 10 v 3")
	require.Len(t, path, 3)

	assert.Equal(t, SegLineTo, path[1].Kind)
	assert.Equal(t, BetterPt[DocPos](10, 2), path[1].P[0])
	assert.Equal(t, SegLineTo, path[2].Kind)
	assert.Equal(t, BetterPt[DocPos](10, 5), path[2].P[0])
}

func TestNormalizeRelative(t *testing.T) {
	path := mustNormalize(t, "m 10 10 l 5 -5 m 1 1 l 1 1")
	require.Len(t, path, 4)

	assert.Equal(t, BetterPt[DocPos](15, 5), path[1].P[0])
	// a relative MoveTo starts from the previous current point
	assert.Equal(t, BetterPt[DocPos](16, 6), path[2].P[0])
	assert.Equal(t, BetterPt[DocPos](17, 7), path[3].P[0])
}

func TestNormalizeSmoothCubicReflection(t *testing.T) {
	path := mustNormalize(t, "M 0 0 C 0 10 10 10 10 0 S 20 -10 20 0")
	require.Len(t, path, 3)

	// first control point of S mirrors the previous second control point
	// (10,10) about the current point (10,0)
	assert.Equal(t, BetterPt[DocPos](10, -10), path[2].P[0])
}

func TestNormalizeSmoothAfterNonCurve(t *testing.T) {
	// no preceding cubic: the reflected control point is the current point
	path := mustNormalize(t, "M 3 4 S 10 10 20 0")
	require.Len(t, path, 2)
	assert.Equal(t, BetterPt[DocPos](3, 4), path[1].P[0])
}

func TestNormalizeQuadElevation(t *testing.T) {
	path := mustNormalize(t, "M 0 0 Q 5 10 10 0")
	require.Len(t, path, 2)
	require.Equal(t, SegCubicTo, path[1].Kind)

	assert.InDelta(t, 10.0/3, float64(path[1].P[0].X), 1e-12)
	assert.InDelta(t, 20.0/3, float64(path[1].P[0].Y), 1e-12)
	assert.InDelta(t, 20.0/3, float64(path[1].P[1].X), 1e-12)
	assert.InDelta(t, 20.0/3, float64(path[1].P[1].Y), 1e-12)
	assert.Equal(t, BetterPt[DocPos](10, 0), path[1].P[2])
}

func TestNormalizeSmoothQuadReflection(t *testing.T) {
	path := mustNormalize(t, "M 0 0 Q 5 10 10 0 T 20 0")
	require.Len(t, path, 3)

	// the implied control point of T is (5,10) mirrored about (10,0), i.e.
	// (15,-10); after elevation c1 = cur + 2/3*(q-cur)
	assert.InDelta(t, 10+2.0/3*5, float64(path[2].P[0].X), 1e-12)
	assert.InDelta(t, 2.0/3*-10, float64(path[2].P[0].Y), 1e-12)
}

func TestNormalizeArcEndpoints(t *testing.T) {
	path := mustNormalize(t, "M 0 0 A 10 10 0 0 1 20 0")
	require.Greater(t, len(path), 1)

	// the final cubic ends exactly on the arc endpoint
	last := path[len(path)-1]
	require.Equal(t, SegCubicTo, last.Kind)
	assert.Equal(t, BetterPt[DocPos](20, 0), last.P[2])
}

func TestNormalizeArcStaysOnCircle(t *testing.T) {
	// endpoints 20 apart with r=10: the center is the midpoint (10,0)
	cmds, err := ParsePathData("M 0 0 A 10 10 0 0 1 20 0")
	require.NoError(t, err)

	cfg := ToleranceConfig{Tolerance: 0.01}
	path, err := Normalize(cmds, cfg)
	require.NoError(t, err)

	contours, err := Flatten(path, cfg)
	require.NoError(t, err)
	require.Len(t, contours, 1)

	center := BetterPt[DocPos](10, 0)
	for _, p := range contours[0].Points {
		assert.InDelta(t, 10, p.Sub(center).Len(), 0.05)
	}
}

func TestNormalizeArcDegenerateRadius(t *testing.T) {
	path := mustNormalize(t, "M 0 0 A 0 5 0 0 1 10 10")
	require.Len(t, path, 2)

	assert.Equal(t, SegLineTo, path[1].Kind)
	assert.Equal(t, BetterPt[DocPos](10, 10), path[1].P[0])
}

func TestNormalizeNoMoveTo(t *testing.T) {
	for _, d := range []string{"L 10 10", "Z", "C 1 2 3 4 5 6"} {
		cmds, err := ParsePathData(d)
		require.NoError(t, err)

		_, err = Normalize(cmds, DefaultToleranceConfig())
		assert.ErrorIs(t, err, ErrMalformedPath, "d=%q", d)
	}
}

func TestNormalizeNonFinite(t *testing.T) {
	cmds := []RawCommand{{Kind: RawMoveTo, Args: []float64{math.NaN(), 0}}}
	_, err := Normalize(cmds, DefaultToleranceConfig())
	assert.ErrorIs(t, err, ErrMalformedPath)
}

func TestNormalizeCloseResetsToStart(t *testing.T) {
	// the l after Z is relative to the subpath start
	path := mustNormalize(t, "M 5 5 L 10 5 Z m 0 0 l 1 0")
	require.Len(t, path, 5)
	assert.Equal(t, BetterPt[DocPos](5, 5), path[3].P[0])
	assert.Equal(t, BetterPt[DocPos](6, 5), path[4].P[0])
}
