package tess

import (
	"fmt"
	"math"
)

// Contour is a flattened subpath: straight hops between consecutive points.
type Contour struct {
	Points []BetterPoint[DocPos]
	// Closed is true when the subpath ended with a Close command.
	Closed bool
}

func factorial(n int) int {
	if n == 0 {
		return 1
	}

	return n * factorial(n-1)
}

// bezierAt evaluates a bezier of any degree at t.
// refer: http://zobaczycmatematyke.krk.pl/025-Zolkos-Krakow/bezier.html
func bezierAt(t float64, points []BetterPoint[DocPos]) BetterPoint[DocPos] {
	var result BetterPoint[DocPos]

	for i := 0; i < len(points); i++ {
		d := float64(factorial(len(points)-1)) /
			float64(factorial(i)*factorial(len(points)-1-i)) *
			math.Pow(t, float64(i)) * math.Pow(1-t, float64(len(points)-1-i))
		result.X += points[i].X * DocPos(d)
		result.Y += points[i].Y * DocPos(d)
	}

	return result
}

// distToLine is the distance from p to the (infinite) line through a and b.
func distToLine(p, a, b BetterPoint[DocPos]) float64 {
	d := b.Sub(a)
	if d.X == 0 && d.Y == 0 {
		return p.Sub(a).Len()
	}

	t := DocPos(p.Sub(a).Dot(d) / d.Dot(d))

	return p.Sub(a.Add(d.Mul(t))).Len()
}

// flattenCubic appends the flattened polyline of the cubic (p0,c1,c2,p1) to
// out, excluding p0. Subdivision stops when both control points are within
// tol of the chord or the depth cap is hit.
func flattenCubic(p0, c1, c2, p1 BetterPoint[DocPos], tol float64, depth int, out *[]BetterPoint[DocPos]) {
	if depth >= maxSubdivisionDepth ||
		(distToLine(c1, p0, p1) <= tol && distToLine(c2, p0, p1) <= tol) {
		*out = append(*out, p1)
		return
	}

	// de Casteljau split at t=0.5
	m01 := lerp(p0, c1, 0.5)
	m12 := lerp(c1, c2, 0.5)
	m23 := lerp(c2, p1, 0.5)
	m012 := lerp(m01, m12, 0.5)
	m123 := lerp(m12, m23, 0.5)
	m0123 := lerp(m012, m123, 0.5)

	flattenCubic(p0, m01, m012, m0123, tol, depth+1, out)
	flattenCubic(m0123, m123, m23, p1, tol, depth+1, out)
}

// Flatten turns a canonical path into straight-line contours, one per
// subpath. Curves are subdivided until they deviate from their chords by at
// most the tolerance. Exceeding the point budget is ErrTessellation.
func Flatten(path Path, cfg ToleranceConfig) ([]Contour, error) {
	tol := cfg.effective()

	var (
		contours []Contour
		cur      *Contour
		pos      BetterPoint[DocPos]
		total    int
	)

	flush := func() {
		if cur != nil && len(cur.Points) > 0 {
			total += len(cur.Points)
			contours = append(contours, *cur)
		}
		cur = nil
	}

	for _, s := range path {
		if cur == nil && s.Kind != SegMoveTo {
			return nil, fmt.Errorf("%w: %v segment with no open subpath", ErrMalformedPath, s.Kind)
		}

		switch s.Kind {
		case SegMoveTo:
			flush()
			cur = &Contour{Points: []BetterPoint[DocPos]{s.P[0]}}
			pos = s.P[0]
		case SegLineTo:
			cur.Points = append(cur.Points, s.P[0])
			pos = s.P[0]
		case SegCubicTo:
			flattenCubic(pos, s.P[0], s.P[1], s.P[2], tol, 0, &cur.Points)
			pos = s.P[2]
		case SegQuadTo:
			// elevate on the fly
			c1 := pos.Add(s.P[0].Sub(pos).Mul(2.0 / 3.0))
			c2 := s.P[1].Add(s.P[0].Sub(s.P[1]).Mul(2.0 / 3.0))
			flattenCubic(pos, c1, c2, s.P[1], tol, 0, &cur.Points)
			pos = s.P[1]
		case SegClose:
			cur.Closed = true
			pos = cur.Points[0]
			flush()
		}

		if cur != nil && total+len(cur.Points) > maxFlattenedPoints {
			return nil, fmt.Errorf("%w: subdivision budget exceeded", ErrTessellation)
		}
	}

	flush()

	return contours, nil
}
