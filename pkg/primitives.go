package meshy

import (
	"fmt"
	"math"

	"github.com/gucio321/meshy/pkg/tess"
)

// kappa scales a radius to the cubic control handle length that best
// approximates a quarter circle: 4/3*(sqrt(2)-1).
const kappa = 4.0 / 3.0 * (math.Sqrt2 - 1)

func moveTo(p tess.BetterPoint[tess.DocPos]) tess.Segment {
	return tess.Segment{Kind: tess.SegMoveTo, P: [3]tess.BetterPoint[tess.DocPos]{p}}
}

func lineTo(p tess.BetterPoint[tess.DocPos]) tess.Segment {
	return tess.Segment{Kind: tess.SegLineTo, P: [3]tess.BetterPoint[tess.DocPos]{p}}
}

func cubicTo(c1, c2, to tess.BetterPoint[tess.DocPos]) tess.Segment {
	return tess.Segment{Kind: tess.SegCubicTo, P: [3]tess.BetterPoint[tess.DocPos]{c1, c2, to}}
}

func closePath() tess.Segment {
	return tess.Segment{Kind: tess.SegClose}
}

func pt(x, y float64) tess.BetterPoint[tess.DocPos] {
	return tess.BetterPt(tess.DocPos(x), tess.DocPos(y))
}

// rectPath builds a rectangle path, with optional rounded corners.
func rectPath(x, y, w, h, rx, ry float64) (tess.Path, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: rect with negative size %gx%g", ErrInvalidXML, w, h)
	}
	if w == 0 || h == 0 {
		return nil, nil
	}

	// auto radii per SVG: one given, both used; clamped to half size
	if rx == 0 && ry > 0 {
		rx = ry
	}
	if ry == 0 && rx > 0 {
		ry = rx
	}
	rx = math.Min(rx, w/2)
	ry = math.Min(ry, h/2)

	if rx == 0 && ry == 0 {
		return tess.Path{
			moveTo(pt(x, y)),
			lineTo(pt(x+w, y)),
			lineTo(pt(x+w, y+h)),
			lineTo(pt(x, y+h)),
			closePath(),
		}, nil
	}

	kx, ky := rx*kappa, ry*kappa

	return tess.Path{
		moveTo(pt(x+rx, y)),
		lineTo(pt(x+w-rx, y)),
		cubicTo(pt(x+w-rx+kx, y), pt(x+w, y+ry-ky), pt(x+w, y+ry)),
		lineTo(pt(x+w, y+h-ry)),
		cubicTo(pt(x+w, y+h-ry+ky), pt(x+w-rx+kx, y+h), pt(x+w-rx, y+h)),
		lineTo(pt(x+rx, y+h)),
		cubicTo(pt(x+rx-kx, y+h), pt(x, y+h-ry+ky), pt(x, y+h-ry)),
		lineTo(pt(x, y+ry)),
		cubicTo(pt(x, y+ry-ky), pt(x+rx-kx, y), pt(x+rx, y)),
		closePath(),
	}, nil
}

// ellipsePath builds an ellipse out of 4 cubics.
func ellipsePath(cx, cy, rx, ry float64) (tess.Path, error) {
	if rx < 0 || ry < 0 {
		return nil, fmt.Errorf("%w: negative radius %g/%g", ErrInvalidXML, rx, ry)
	}
	if rx == 0 || ry == 0 {
		return nil, nil
	}

	kx, ky := rx*kappa, ry*kappa

	return tess.Path{
		moveTo(pt(cx+rx, cy)),
		cubicTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)),
		cubicTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)),
		cubicTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)),
		cubicTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)),
		closePath(),
	}, nil
}

// polyPath builds a polyline/polygon path from a points attribute.
func polyPath(points string, closed bool) (tess.Path, error) {
	nums, err := parseNumberList(points)
	if err != nil || len(nums)%2 != 0 {
		return nil, fmt.Errorf("%w: bad points list %q", ErrInvalidXML, points)
	}
	if len(nums) < 4 {
		return nil, nil
	}

	path := tess.Path{moveTo(pt(nums[0], nums[1]))}
	for i := 2; i+1 < len(nums); i += 2 {
		path = append(path, lineTo(pt(nums[i], nums[i+1])))
	}

	if closed {
		path = append(path, closePath())
	}

	return path, nil
}

// linePath builds a two-point path for the line element.
func linePath(x1, y1, x2, y2 float64) tess.Path {
	return tess.Path{moveTo(pt(x1, y1)), lineTo(pt(x2, y2))}
}
