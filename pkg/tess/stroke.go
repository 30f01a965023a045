package tess

import (
	"math"
)

// StrokeStyle describes how a path centerline expands into an outline.
type StrokeStyle struct {
	// Width is the full stroke width in document units.
	Width float64
	Join  LineJoin
	Cap   LineCap
	// MiterLimit is the max ratio of miter length to half-width before a
	// miter join falls back to bevel. Zero means the SVG default of 4.
	MiterLimit float64
}

func (s StrokeStyle) miterLimit() float64 {
	if s.MiterLimit <= 0 {
		return 4
	}

	return s.MiterLimit
}

// strokeBuilder accumulates the outline triangles.
type strokeBuilder struct {
	points  []BetterPoint[DocPos]
	indices []uint32
}

func (b *strokeBuilder) tri(a, c, d BetterPoint[DocPos]) {
	base := uint32(len(b.points))
	b.points = append(b.points, a, c, d)
	b.indices = append(b.indices, base, base+1, base+2)
}

func (b *strokeBuilder) quad(a, c, d, e BetterPoint[DocPos]) {
	base := uint32(len(b.points))
	b.points = append(b.points, a, c, d, e)
	b.indices = append(b.indices, base, base+1, base+2, base, base+2, base+3)
}

// fan approximates the arc around center from angle a0 to a1 (radians,
// shortest direction given by their order) with radius r.
func (b *strokeBuilder) fan(center BetterPoint[DocPos], r, a0, a1, tol float64) {
	delta := a1 - a0
	steps := int(math.Ceil(math.Abs(delta) / maxFanStep(r, tol)))
	if steps < 1 {
		steps = 1
	}

	prev := center.Add(polar(r, a0))
	for i := 1; i <= steps; i++ {
		next := center.Add(polar(r, a0+delta*float64(i)/float64(steps)))
		b.tri(center, prev, next)
		prev = next
	}
}

// maxFanStep is the largest angular step keeping chord deviation under tol.
func maxFanStep(r, tol float64) float64 {
	if tol >= r {
		return math.Pi / 2
	}

	step := 2 * math.Acos(1-tol/r)
	if step < 1e-3 {
		step = 1e-3
	}

	return step
}

func polar(r, a float64) BetterPoint[DocPos] {
	return BetterPt(DocPos(r*math.Cos(a)), DocPos(r*math.Sin(a)))
}

// StrokeContours expands flattened contours into a filled outline of the
// given width. Segment bodies are quads; direction changes get miter, bevel
// or round joins and open ends get butt, square or round caps. Overlapping
// offset geometry of self-crossing paths is not deduplicated.
func StrokeContours(contours []Contour, style StrokeStyle, cfg ToleranceConfig) ([]BetterPoint[DocPos], []uint32) {
	h := style.Width / 2
	if h <= 0 {
		return nil, nil
	}

	tol := cfg.effective()
	b := &strokeBuilder{}

	for _, c := range contours {
		pts := dedupe(c.Points)
		if c.Closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		if len(pts) < 2 {
			continue
		}

		n := len(pts)
		segCount := n - 1
		if c.Closed {
			segCount = n
		}

		// 1.0: segment bodies
		for i := 0; i < segCount; i++ {
			a := pts[i]
			d := pts[(i+1)%n]
			normal := perp(d.Sub(a).Norm()).Mul(DocPos(h))
			b.quad(a.Add(normal), d.Add(normal), d.Sub(normal), a.Sub(normal))
		}

		// 1.1: joins at interior vertices (every vertex when closed)
		for i := 1; i < segCount+1; i++ {
			if !c.Closed && i >= n-1 {
				break
			}

			p := pts[i%n]
			prev := pts[(i-1+n)%n]
			next := pts[(i+1)%n]
			b.join(prev, p, next, h, style, tol)
		}

		// 1.2: caps on open contours
		if !c.Closed {
			b.endCap(pts[1], pts[0], h, style.Cap, tol)
			b.endCap(pts[n-2], pts[n-1], h, style.Cap, tol)
		}
	}

	return b.points, b.indices
}

// join fills the outer wedge at p between segments prev->p and p->next.
func (b *strokeBuilder) join(prev, p, next BetterPoint[DocPos], h float64, style StrokeStyle, tol float64) {
	d1 := p.Sub(prev).Norm()
	d2 := next.Sub(p).Norm()

	cross := d1.Cross(d2)
	if cross == 0 {
		return // collinear, the quads already meet
	}

	// outer side: left of travel when turning right and vice versa
	sign := DocPos(1)
	if cross > 0 {
		sign = -1
	}

	n1 := perp(d1).Mul(sign * DocPos(h))
	n2 := perp(d2).Mul(sign * DocPos(h))
	a1 := p.Add(n1)
	a2 := p.Add(n2)

	switch style.Join {
	case JoinRound:
		b.fan(p, h, math.Atan2(float64(n1.Y), float64(n1.X)), atan2Near(n2, n1), tol)
	case JoinMiter:
		// miter length h/cos(theta/2); fall back to bevel past the limit
		dot := n1.Norm().Dot(n2.Norm())
		cosHalf := math.Sqrt((1 + dot) / 2)
		if cosHalf > 0 && 1/cosHalf <= style.miterLimit() {
			m := p.Add(n1.Add(n2).Norm().Mul(DocPos(h / cosHalf)))
			b.quad(a1, m, a2, p)
			return
		}

		fallthrough
	default: // JoinBevel
		b.tri(p, a1, a2)
	}
}

// endCap draws an end cap at p for a stroke arriving from from.
func (b *strokeBuilder) endCap(from, p BetterPoint[DocPos], h float64, kind LineCap, tol float64) {
	d := p.Sub(from).Norm()
	normal := perp(d).Mul(DocPos(h))

	switch kind {
	case CapSquare:
		ext := d.Mul(DocPos(h))
		b.quad(p.Add(normal), p.Add(normal).Add(ext), p.Sub(normal).Add(ext), p.Sub(normal))
	case CapRound:
		a0 := math.Atan2(float64(normal.Y), float64(normal.X))
		b.fan(p, h, a0, a0+math.Pi, tol)
	case CapButt:
		// nothing to draw
	}
}

// atan2Near returns the angle of v chosen within pi of the angle of ref, so
// a fan between them never sweeps the long way around.
func atan2Near(v, ref BetterPoint[DocPos]) float64 {
	a := math.Atan2(float64(v.Y), float64(v.X))
	r := math.Atan2(float64(ref.Y), float64(ref.X))
	for a-r > math.Pi {
		a -= 2 * math.Pi
	}
	for r-a > math.Pi {
		a += 2 * math.Pi
	}

	return a
}

// perp rotates v by 90 degrees counterclockwise in the y-down document frame.
func perp[T ~float64](v BetterPoint[T]) BetterPoint[T] {
	return BetterPoint[T]{-v.Y, v.X}
}

func dedupe(pts []BetterPoint[DocPos]) []BetterPoint[DocPos] {
	if len(pts) == 0 {
		return nil
	}

	out := pts[:1]
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}

	return out
}

// TessellateStroke flattens the path and expands it into a stroke outline.
func TessellateStroke(path Path, style StrokeStyle, cfg ToleranceConfig) ([]BetterPoint[DocPos], []uint32, error) {
	contours, err := Flatten(path, cfg)
	if err != nil {
		return nil, nil, err
	}

	points, indices := StrokeContours(contours, style, cfg)

	return points, indices, nil
}
