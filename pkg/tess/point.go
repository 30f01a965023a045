package tess

import "math"

type (
	// DocPos is a coordinate in SVG document space (user units, y-down).
	DocPos float64
	// WorldPos is a coordinate after the origin/scale policy was applied.
	// This is what ends up in the vertex buffer.
	WorldPos float64
)

// BetterPoint is image.Point but better
type BetterPoint[PointType ~float64] struct {
	X, Y PointType
}

func BetterPt[T ~float64](x, y T) BetterPoint[T] {
	return BetterPoint[T]{x, y}
}

func (b BetterPoint[T]) Add(other BetterPoint[T]) BetterPoint[T] {
	return BetterPoint[T]{b.X + other.X, b.Y + other.Y}
}

func (b BetterPoint[T]) Sub(other BetterPoint[T]) BetterPoint[T] {
	return BetterPoint[T]{b.X - other.X, b.Y - other.Y}
}

func (b BetterPoint[T]) Mul(scalar T) BetterPoint[T] {
	return BetterPoint[T]{b.X * scalar, b.Y * scalar}
}

func (b BetterPoint[T]) Len() float64 {
	return math.Hypot(float64(b.X), float64(b.Y))
}

// Cross returns the z component of the cross product of b and other.
func (b BetterPoint[T]) Cross(other BetterPoint[T]) float64 {
	return float64(b.X*other.Y - b.Y*other.X)
}

func (b BetterPoint[T]) Dot(other BetterPoint[T]) float64 {
	return float64(b.X*other.X + b.Y*other.Y)
}

// Norm returns b scaled to unit length, or the zero point if b is degenerate.
func (b BetterPoint[T]) Norm() BetterPoint[T] {
	l := b.Len()
	if l == 0 {
		return BetterPoint[T]{}
	}

	return BetterPoint[T]{T(float64(b.X) / l), T(float64(b.Y) / l)}
}

func (b BetterPoint[T]) IsFinite() bool {
	return !math.IsNaN(float64(b.X)) && !math.IsInf(float64(b.X), 0) &&
		!math.IsNaN(float64(b.Y)) && !math.IsInf(float64(b.Y), 0)
}

func Redefine[T2, T1 ~float64](a BetterPoint[T1]) BetterPoint[T2] {
	return BetterPoint[T2]{T2(a.X), T2(a.Y)}
}

func lerp[T ~float64](a, b BetterPoint[T], t T) BetterPoint[T] {
	return BetterPoint[T]{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}
