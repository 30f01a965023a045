package meshy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/meshy/pkg/tess"
)

func applyAttr(t *testing.T, attr string, x, y float64) tess.BetterPoint[tess.DocPos] {
	t.Helper()

	tr, err := parseTransformAttr(attr)
	require.NoError(t, err)

	return tr.Apply(pt(x, y))
}

func TestParseTransformAttr(t *testing.T) {
	p := applyAttr(t, "translate(10)", 1, 2)
	assert.Equal(t, pt(11, 2), p)

	p = applyAttr(t, "translate(10, 20)", 1, 2)
	assert.Equal(t, pt(11, 22), p)

	p = applyAttr(t, "scale(2)", 3, 4)
	assert.Equal(t, pt(6, 8), p)

	p = applyAttr(t, "scale(2 3)", 3, 4)
	assert.Equal(t, pt(6, 12), p)

	p = applyAttr(t, "matrix(1 0 0 1 5 6)", 1, 1)
	assert.Equal(t, pt(6, 7), p)
}

func TestParseTransformRotate(t *testing.T) {
	p := applyAttr(t, "rotate(90)", 1, 0)
	assert.InDelta(t, 0, float64(p.X), 1e-12)
	assert.InDelta(t, 1, float64(p.Y), 1e-12)

	// three-argument form rotates about the given point
	p = applyAttr(t, "rotate(90 5 5)", 6, 5)
	assert.InDelta(t, 5, float64(p.X), 1e-12)
	assert.InDelta(t, 6, float64(p.Y), 1e-12)
}

func TestParseTransformSkew(t *testing.T) {
	p := applyAttr(t, "skewX(45)", 0, 1)
	assert.InDelta(t, 1, float64(p.X), 1e-12)
	assert.InDelta(t, 1, float64(p.Y), 1e-12)

	p = applyAttr(t, "skewY(45)", 1, 0)
	assert.InDelta(t, 1, float64(p.X), 1e-12)
	assert.InDelta(t, 1, float64(p.Y), 1e-12)
}

func TestParseTransformComposesLeftToRight(t *testing.T) {
	// the point is scaled first, then translated
	p := applyAttr(t, "translate(10 0) scale(2)", 1, 0)
	assert.Equal(t, pt(12, 0), p)

	// reversed order translates first
	p = applyAttr(t, "scale(2) translate(10 0)", 1, 0)
	assert.Equal(t, pt(22, 0), p)
}

func TestParseTransformErrors(t *testing.T) {
	_, err := parseTransformAttr("translate(1 2 3)")
	assert.ErrorIs(t, err, ErrInvalidXML)

	_, err = parseTransformAttr("translate(x)")
	assert.ErrorIs(t, err, ErrInvalidXML)

	_, err = parseTransformAttr("translate 1 2")
	assert.ErrorIs(t, err, ErrInvalidXML)

	_, err = parseTransformAttr("frobnicate(1)")
	assert.ErrorIs(t, err, ErrUnsupportedFeature)
}

func TestParseNumberList(t *testing.T) {
	nums, err := parseNumberList(" 1, 2.5\t-3 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3}, nums)

	_, err = parseNumberList("1 x")
	assert.Error(t, err)
}
