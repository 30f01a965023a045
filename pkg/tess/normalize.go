package tess

import (
	"fmt"
	"math"
)

const (
	// DefaultTolerance is the default max deviation (in document units)
	// between a curve and its flattened approximation.
	DefaultTolerance = 0.1
	// maxSubdivisionDepth bounds curve subdivision so a zero tolerance
	// still terminates.
	maxSubdivisionDepth = 24
	// maxFlattenedPoints is the per-path point budget.
	maxFlattenedPoints = 1 << 20
)

// ToleranceConfig controls curve flattening precision.
type ToleranceConfig struct {
	// Tolerance is the max chord deviation in document units.
	Tolerance float64
}

// DefaultToleranceConfig returns the tolerance used when the caller does not care.
func DefaultToleranceConfig() ToleranceConfig {
	return ToleranceConfig{Tolerance: DefaultTolerance}
}

func (c ToleranceConfig) effective() float64 {
	if c.Tolerance <= 0 {
		// depth cap keeps this safe, but avoid degenerate zero as well
		return 1e-9
	}

	return c.Tolerance
}

// Normalize resolves raw path commands into a canonical Path containing only
// {MoveTo, LineTo, CubicTo, Close}: relative coordinates become absolute,
// H/V become lines, quadratics are elevated to cubics, smooth commands get
// their control point via the reflection rule and arcs become cubic runs
// whose error is bounded by the tolerance.
func Normalize(cmds []RawCommand, cfg ToleranceConfig) (Path, error) {
	var (
		result    Path
		cur       BetterPoint[DocPos]
		start     BetterPoint[DocPos]
		prevCubic *BetterPoint[DocPos] // 2nd control point of the previous C/S
		prevQuad  *BetterPoint[DocPos] // control point of the previous Q/T
		open      bool
	)

	// abs resolves a coordinate pair against the current point for
	// relative commands.
	abs := func(c RawCommand, x, y float64) BetterPoint[DocPos] {
		p := BetterPt(DocPos(x), DocPos(y))
		if c.Rel {
			p = p.Add(cur)
		}

		return p
	}

	for _, c := range cmds {
		for _, a := range c.Args {
			if math.IsNaN(a) || math.IsInf(a, 0) {
				return nil, fmt.Errorf("%w: non-finite coordinate in %v command", ErrMalformedPath, c.Kind)
			}
		}

		if !open && c.Kind != RawMoveTo {
			return nil, fmt.Errorf("%w: %v command with no prior MoveTo", ErrMalformedPath, c.Kind)
		}

		switch c.Kind {
		case RawMoveTo:
			cur = abs(c, c.Args[0], c.Args[1])
			start = cur
			open = true
			result = append(result, Segment{Kind: SegMoveTo, P: [3]BetterPoint[DocPos]{cur}})
		case RawLineTo:
			cur = abs(c, c.Args[0], c.Args[1])
			result = append(result, Segment{Kind: SegLineTo, P: [3]BetterPoint[DocPos]{cur}})
		case RawHLineTo:
			p := BetterPt(DocPos(c.Args[0]), cur.Y)
			if c.Rel {
				p.X += cur.X
			}
			cur = p
			result = append(result, Segment{Kind: SegLineTo, P: [3]BetterPoint[DocPos]{cur}})
		case RawVLineTo:
			p := BetterPt(cur.X, DocPos(c.Args[0]))
			if c.Rel {
				p.Y += cur.Y
			}
			cur = p
			result = append(result, Segment{Kind: SegLineTo, P: [3]BetterPoint[DocPos]{cur}})
		case RawCubicTo, RawSmoothCubicTo:
			var c1, c2, to BetterPoint[DocPos]
			if c.Kind == RawCubicTo {
				c1 = abs(c, c.Args[0], c.Args[1])
				c2 = abs(c, c.Args[2], c.Args[3])
				to = abs(c, c.Args[4], c.Args[5])
			} else {
				c1 = reflect(cur, prevCubic)
				c2 = abs(c, c.Args[0], c.Args[1])
				to = abs(c, c.Args[2], c.Args[3])
			}

			cur = to
			result = append(result, Segment{Kind: SegCubicTo, P: [3]BetterPoint[DocPos]{c1, c2, to}})
			prevCubic, prevQuad = &c2, nil

			continue
		case RawQuadTo, RawSmoothQuadTo:
			var q, to BetterPoint[DocPos]
			if c.Kind == RawQuadTo {
				q = abs(c, c.Args[0], c.Args[1])
				to = abs(c, c.Args[2], c.Args[3])
			} else {
				q = reflect(cur, prevQuad)
				to = abs(c, c.Args[0], c.Args[1])
			}

			// 1.0: elevate to cubic: c1 = p0 + 2/3*(q-p0), c2 = p3 + 2/3*(q-p3)
			c1 := cur.Add(q.Sub(cur).Mul(2.0 / 3.0))
			c2 := to.Add(q.Sub(to).Mul(2.0 / 3.0))

			cur = to
			result = append(result, Segment{Kind: SegCubicTo, P: [3]BetterPoint[DocPos]{c1, c2, to}})
			prevCubic, prevQuad = nil, &q

			continue
		case RawArcTo:
			to := abs(c, c.Args[5], c.Args[6])
			segs := arcToCubics(cur, to,
				c.Args[0], c.Args[1], c.Args[2],
				c.Args[3] != 0, c.Args[4] != 0, cfg.effective())
			result = append(result, segs...)
			cur = to
		case RawClose:
			cur = start
			result = append(result, Segment{Kind: SegClose})
		}

		prevCubic, prevQuad = nil, nil
	}

	for _, s := range result {
		for _, p := range s.P {
			if !p.IsFinite() {
				return nil, fmt.Errorf("%w: non-finite point after normalization", ErrMalformedPath)
			}
		}
	}

	return result, nil
}

// reflect mirrors prev about cur (the SVG smooth-command rule). When the
// previous command was not a matching curve, the control point is cur itself.
func reflect(cur BetterPoint[DocPos], prev *BetterPoint[DocPos]) BetterPoint[DocPos] {
	if prev == nil {
		return cur
	}

	return cur.Mul(2).Sub(*prev)
}

// arcToCubics converts an SVG elliptical arc to cubic segments following the
// center parameterization from the SVG spec appendix, then splitting into
// sweeps of at most 90 degrees, each rendered as one cubic.
func arcToCubics(from, to BetterPoint[DocPos], rx, ry, xRotDeg float64, largeArc, sweep bool, tol float64) []Segment {
	// 1.0: degenerate radii draw a straight line
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || (from.X == to.X && from.Y == to.Y) {
		return []Segment{{Kind: SegLineTo, P: [3]BetterPoint[DocPos]{to}}}
	}

	phi := xRotDeg * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	// 1.1: to the ellipse-aligned frame
	dx := (float64(from.X) - float64(to.X)) / 2
	dy := (float64(from.Y) - float64(to.Y)) / 2
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	// 1.2: scale radii up if the endpoints cannot be connected
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// 1.3: center
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	radicand := num / den
	if radicand < 0 {
		radicand = 0
	}
	coef := math.Sqrt(radicand)
	if largeArc == sweep {
		coef = -coef
	}

	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx
	cx := cosPhi*cxp - sinPhi*cyp + (float64(from.X)+float64(to.X))/2
	cy := sinPhi*cxp + cosPhi*cyp + (float64(from.Y)+float64(to.Y))/2

	// 1.4: start angle and sweep extent
	theta1 := vectorAngle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	delta := vectorAngle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	// 1.5: split into sweeps of at most 90 degrees, one cubic each.
	// The radial error of a 90-degree cubic arc is about 2.7e-4*r and falls
	// off with the 6th power of the sweep, so keep halving until it fits tol.
	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	rmax := math.Max(rx, ry)
	for n < 64 {
		step := math.Abs(delta) / float64(n)
		if 2.7e-4*rmax*math.Pow(step/(math.Pi/2), 6) <= tol {
			break
		}
		n *= 2
	}
	step := delta / float64(n)

	pointAt := func(theta float64) (BetterPoint[DocPos], BetterPoint[DocPos]) {
		cosT, sinT := math.Cos(theta), math.Sin(theta)
		p := BetterPt(
			DocPos(cosPhi*rx*cosT-sinPhi*ry*sinT+cx),
			DocPos(sinPhi*rx*cosT+cosPhi*ry*sinT+cy),
		)
		// derivative, for the cubic control handles
		d := BetterPt(
			DocPos(-cosPhi*rx*sinT-sinPhi*ry*cosT),
			DocPos(-sinPhi*rx*sinT+cosPhi*ry*cosT),
		)

		return p, d
	}

	segs := make([]Segment, 0, n)
	// handle length for a cubic approximating a step-sized sweep
	alpha := 4.0 / 3.0 * math.Tan(step/4)
	for i := 0; i < n; i++ {
		t0 := theta1 + float64(i)*step
		t1 := t0 + step
		s0, sd0 := pointAt(t0)
		s1, sd1 := pointAt(t1)
		if i == 0 {
			s0 = from
		}
		if i == n-1 {
			s1 = to
		}

		c1 := s0.Add(sd0.Mul(DocPos(alpha)))
		c2 := s1.Sub(sd1.Mul(DocPos(alpha)))
		segs = append(segs, Segment{Kind: SegCubicTo, P: [3]BetterPoint[DocPos]{c1, c2, s1}})
	}

	return segs
}

func vectorAngle(ux, uy, vx, vy float64) float64 {
	sign := 1.0
	if ux*vy-uy*vx < 0 {
		sign = -1
	}

	dot := ux*vx + uy*vy
	norm := math.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
	if norm == 0 {
		return 0
	}

	cos := dot / norm
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return sign * math.Acos(cos)
}
