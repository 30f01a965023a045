package tess

import (
	"sort"
)

// fillEdge is a non-horizontal contour edge, stored top-down (y0 < y1).
// dir keeps the original winding for the nonzero rule.
type fillEdge struct {
	x0, y0, x1, y1 float64
	dir            int
}

// xAt returns the edge's x at height y by linear interpolation.
func (e *fillEdge) xAt(y float64) float64 {
	t := (y - e.y0) / (e.y1 - e.y0)

	return e.x0 + (e.x1-e.x0)*t
}

// FillContours triangulates the filled area of the contours under the given
// fill rule using a scanline sweep: between consecutive distinct y values
// every interior span forms a trapezoid, emitted as two triangles. Handles
// self-intersecting paths and nested holes; degenerate input (fewer than 3
// points, zero area) yields an empty triangle list.
//
// Slab boundaries come from edge endpoints only. Two edges crossing in the
// middle of a slab are not split at the intersection, so the triangles right
// around a self-intersection point twist through it and the local area is
// approximate. Insideness per span is still decided by xMid, so the rules
// stay correct away from the crossing.
func FillContours(contours []Contour, rule FillRule) ([]BetterPoint[DocPos], []uint32) {
	// 1.0: collect edges. Open subpaths are filled as if closed.
	var edges []fillEdge
	var ys []float64

	for _, c := range contours {
		n := len(c.Points)
		if n < 3 {
			continue
		}

		for i := 0; i < n; i++ {
			a := c.Points[i]
			b := c.Points[(i+1)%n]
			if a.Y == b.Y {
				continue // horizontal edges never cross a scanline midpoint
			}

			e := fillEdge{x0: float64(a.X), y0: float64(a.Y), x1: float64(b.X), y1: float64(b.Y), dir: 1}
			if e.y0 > e.y1 {
				e.x0, e.x1 = e.x1, e.x0
				e.y0, e.y1 = e.y1, e.y0
				e.dir = -1
			}

			edges = append(edges, e)
			ys = append(ys, e.y0, e.y1)
		}
	}

	if len(edges) == 0 {
		return nil, nil
	}

	// 1.1: unique sorted slab boundaries
	sort.Float64s(ys)
	uniq := ys[:1]
	for _, y := range ys[1:] {
		if y != uniq[len(uniq)-1] {
			uniq = append(uniq, y)
		}
	}

	var (
		points  []BetterPoint[DocPos]
		indices []uint32
	)

	quad := func(xTopL, xTopR, yTop, xBotL, xBotR, yBot float64) {
		if xTopL == xTopR && xBotL == xBotR {
			return
		}

		base := uint32(len(points))
		points = append(points,
			BetterPt(DocPos(xTopL), DocPos(yTop)),
			BetterPt(DocPos(xTopR), DocPos(yTop)),
			BetterPt(DocPos(xBotR), DocPos(yBot)),
			BetterPt(DocPos(xBotL), DocPos(yBot)),
		)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	// 1.2: sweep slab by slab
	type xing struct {
		xMid, xTop, xBot float64
		dir              int
	}
	var active []xing

	for s := 0; s+1 < len(uniq); s++ {
		yTop, yBot := uniq[s], uniq[s+1]
		yMid := (yTop + yBot) / 2

		active = active[:0]
		for i := range edges {
			e := &edges[i]
			if e.y0 <= yTop && e.y1 >= yBot {
				active = append(active, xing{
					xMid: e.xAt(yMid),
					xTop: e.xAt(yTop),
					xBot: e.xAt(yBot),
					dir:  e.dir,
				})
			}
		}

		if len(active) < 2 {
			continue
		}

		sort.Slice(active, func(i, j int) bool {
			if active[i].xMid != active[j].xMid {
				return active[i].xMid < active[j].xMid
			}
			// ties: order by bottom x so crossing edges stay deterministic
			return active[i].xBot < active[j].xBot
		})

		// 1.3: walk crossings, tracking insideness per fill rule
		winding := 0
		for i := 0; i+1 < len(active); i++ {
			winding += active[i].dir

			inside := winding != 0
			if rule == FillEvenOdd {
				inside = (i+1)%2 == 1
			}

			if inside {
				quad(active[i].xTop, active[i+1].xTop, yTop,
					active[i].xBot, active[i+1].xBot, yBot)
			}
		}
	}

	return points, indices
}

// TessellateFill flattens the path and triangulates its filled area.
func TessellateFill(path Path, rule FillRule, cfg ToleranceConfig) ([]BetterPoint[DocPos], []uint32, error) {
	contours, err := Flatten(path, cfg)
	if err != nil {
		return nil, nil, err
	}

	points, indices := FillContours(contours, rule)

	return points, indices, nil
}
