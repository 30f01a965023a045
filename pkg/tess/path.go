// Package tess converts SVG path geometry into triangle meshes.
// It is the drawing core of meshy: pkg parses the document, tess turns
// each shape into vertices/indices a renderer can consume directly.
package tess

//go:generate stringer -type=SegmentKind,RawKind,FillRule,LineJoin,LineCap -linecomment

// SegmentKind is a canonical (normalized) path segment kind.
type SegmentKind int

const (
	// SegMoveTo starts a new subpath at P[0].
	SegMoveTo SegmentKind = iota // MoveTo
	// SegLineTo draws a straight line to P[0].
	SegLineTo // LineTo
	// SegCubicTo draws a cubic bezier with controls P[0], P[1] ending at P[2].
	SegCubicTo // CubicTo
	// SegQuadTo draws a quadratic bezier with control P[0] ending at P[1].
	// Normalize never emits it; it exists for hand-built paths.
	SegQuadTo // QuadraticTo
	// SegClose closes the subpath back to the most recent MoveTo.
	SegClose // Close
)

// Segment is one canonical path segment. Which entries of P are meaningful
// depends on Kind (see SegmentKind docs).
type Segment struct {
	Kind SegmentKind
	P    [3]BetterPoint[DocPos]
}

// Path is an ordered segment sequence in document space.
// A valid non-empty path starts with SegMoveTo.
type Path []Segment

// RawKind is a raw SVG path-data command.
type RawKind int

const (
	// M/m - move to
	RawMoveTo RawKind = iota // M
	// L/l - line to
	RawLineTo // L
	// H/h - horizontal line to
	RawHLineTo // H
	// V/v - vertical line to
	RawVLineTo // V
	// C/c - cubic bezier
	RawCubicTo // C
	// S/s - smooth cubic bezier (first control point is reflected)
	RawSmoothCubicTo // S
	// Q/q - quadratic bezier
	RawQuadTo // Q
	// T/t - smooth quadratic bezier (control point is reflected)
	RawSmoothQuadTo // T
	// A/a - elliptical arc
	RawArcTo // A
	// Z/z - close path
	RawClose // Z
)

// rawKindEnum maps the command letter to its kind. Case carries the
// relative flag and is handled by the tokenizer, not here.
var rawKindEnum = map[byte]RawKind{
	'M': RawMoveTo,
	'L': RawLineTo,
	'H': RawHLineTo,
	'V': RawVLineTo,
	'C': RawCubicTo,
	'S': RawSmoothCubicTo,
	'Q': RawQuadTo,
	'T': RawSmoothQuadTo,
	'A': RawArcTo,
	'Z': RawClose,
}

// argCount is how many numbers one application of the command consumes.
var argCount = map[RawKind]int{
	RawMoveTo:        2,
	RawLineTo:        2,
	RawHLineTo:       1,
	RawVLineTo:       1,
	RawCubicTo:       6,
	RawSmoothCubicTo: 4,
	RawQuadTo:        4,
	RawSmoothQuadTo:  2,
	RawArcTo:         7,
	RawClose:         0,
}

// RawCommand is one parsed path-data command before normalization.
// Args is exactly argCount[Kind] long.
type RawCommand struct {
	Kind RawKind
	// Rel is true for lowercase commands (coordinates relative to current point).
	Rel  bool
	Args []float64
}

// FillRule decides which regions of a self-intersecting path are inside.
type FillRule int

const (
	// FillNonZero is the SVG default: winding number != 0 is inside.
	FillNonZero FillRule = iota // nonzero
	// FillEvenOdd: odd crossing count is inside.
	FillEvenOdd // evenodd
)

var FillRuleEnum = func() map[string]FillRule {
	m := make(map[string]FillRule)
	for i := FillNonZero; i <= FillEvenOdd; i++ {
		m[i.String()] = i
	}
	return m
}()

// LineJoin is the stroke join policy.
type LineJoin int

const (
	JoinMiter LineJoin = iota // miter
	JoinBevel                 // bevel
	JoinRound                 // round
)

var LineJoinEnum = func() map[string]LineJoin {
	m := make(map[string]LineJoin)
	for i := JoinMiter; i <= JoinRound; i++ {
		m[i.String()] = i
	}
	return m
}()

// LineCap is the stroke end-cap policy.
type LineCap int

const (
	CapButt   LineCap = iota // butt
	CapRound                 // round
	CapSquare                // square
)

var LineCapEnum = func() map[string]LineCap {
	m := make(map[string]LineCap)
	for i := CapButt; i <= CapSquare; i++ {
		m[i.String()] = i
	}
	return m
}()
