package tess

import "math"

// Transform is a 2D affine transform: [ A C E ; B D F ].
type Transform struct {
	A, B, C, D, E, F float64
}

func Identity() Transform {
	return Transform{A: 1, D: 1}
}

func Translation(tx, ty float64) Transform {
	return Transform{A: 1, D: 1, E: tx, F: ty}
}

func Scaling(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// Rotation rotates counterclockwise by a radians (clockwise on screen,
// since document space is y-down).
func Rotation(a float64) Transform {
	sin, cos := math.Sin(a), math.Cos(a)

	return Transform{A: cos, B: sin, C: -sin, D: cos}
}

// Mul returns t∘u: apply u first, then t.
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		A: t.A*u.A + t.C*u.B,
		B: t.B*u.A + t.D*u.B,
		C: t.A*u.C + t.C*u.D,
		D: t.B*u.C + t.D*u.D,
		E: t.A*u.E + t.C*u.F + t.E,
		F: t.B*u.E + t.D*u.F + t.F,
	}
}

func (t Transform) Apply(p BetterPoint[DocPos]) BetterPoint[DocPos] {
	return BetterPoint[DocPos]{
		X: DocPos(t.A*float64(p.X) + t.C*float64(p.Y) + t.E),
		Y: DocPos(t.B*float64(p.X) + t.D*float64(p.Y) + t.F),
	}
}

// ApplyTo transforms every point of the path in place and returns it.
func (t Transform) ApplyTo(path Path) Path {
	if t == Identity() {
		return path
	}

	for i := range path {
		for j := range path[i].P {
			path[i].P[j] = t.Apply(path[i].P[j])
		}
	}

	return path
}
