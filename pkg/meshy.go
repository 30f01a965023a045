package meshy

import (
	"image/color"

	"github.com/rustyoz/svg"

	"github.com/gucio321/meshy/pkg/assets"
	"github.com/gucio321/meshy/pkg/tess"
)

// Origin is where the mesh coordinate system's (0,0) sits on the image.
type Origin int

const (
	// OriginTopLeft is the SVG default.
	OriginTopLeft Origin = iota
	// OriginCenter puts (0,0) in the middle of the view box.
	OriginCenter
)

// Meshy turns a parsed SVG into triangle meshes. Configure it with the
// chained setters, then call Mesh (or RegisterTo).
type Meshy struct {
	raw       []byte
	svg       *svg.Svg
	doc       *Document
	scale     float64
	tolerance tess.ToleranceConfig
	origin    Origin
	fillRule  *tess.FillRule
}

func NewMeshy() *Meshy {
	return &Meshy{
		scale:     1.0,
		tolerance: tess.DefaultToleranceConfig(),
	}
}

// Scale sets a uniform scale applied to the output mesh.
func (m *Meshy) Scale(scale float64) *Meshy {
	m.scale = scale
	return m
}

// Tolerance sets the max deviation between curves and their triangulation,
// in document units.
func (m *Meshy) Tolerance(tol float64) *Meshy {
	m.tolerance = tess.ToleranceConfig{Tolerance: tol}
	m.doc = nil
	return m
}

// Origin sets the origin/anchor policy of the output mesh.
func (m *Meshy) Origin(origin Origin) *Meshy {
	m.origin = origin
	return m
}

// FillRule overrides the fill rule of every shape in the document.
func (m *Meshy) FillRule(rule tess.FillRule) *Meshy {
	m.fillRule = &rule
	return m
}

// Document builds (once) and returns the immutable document model.
func (m *Meshy) Document() (*Document, error) {
	if m.doc != nil {
		return m.doc, nil
	}

	doc, err := scanDocument(m.raw, m.tolerance)
	if err != nil {
		return nil, err
	}

	// the root metadata rustyoz parsed wins over our scan when present
	if m.svg != nil && m.svg.ViewBox != "" {
		if nums, err := parseNumberList(m.svg.ViewBox); err == nil && len(nums) == 4 {
			doc.ViewBox = ViewBox{MinX: nums[0], MinY: nums[1], W: nums[2], H: nums[3]}
		}
	}

	m.doc = doc

	return doc, nil
}

// Mesh tessellates the whole document: every shape's fill first, then its
// stroke, in document order, concatenated into one mesh with per-material
// regions. Failures leave no partial result behind.
func (m *Meshy) Mesh() (*tess.Mesh, error) {
	doc, err := m.Document()
	if err != nil {
		return nil, err
	}

	return m.assemble(doc)
}

// RegisterTo tessellates and hands the mesh to the host's asset sink under
// id. All-or-nothing: on failure nothing is registered, so whatever the
// sink held for id stays untouched.
func (m *Meshy) RegisterTo(sink assets.Sink, id string) (*tess.Mesh, error) {
	mesh, err := m.Mesh()
	if err != nil {
		return nil, err
	}

	if err := sink.Register(id, mesh); err != nil {
		return nil, err
	}

	return mesh, nil
}

func (m *Meshy) assemble(doc *Document) (*tess.Mesh, error) {
	builder := tess.NewMeshBuilder()

	// 1.0: anchor in document space per the origin policy
	anchor := tess.BetterPt(tess.DocPos(doc.ViewBox.MinX), tess.DocPos(doc.ViewBox.MinY))
	if m.origin == OriginCenter {
		anchor = anchor.Add(tess.BetterPt(tess.DocPos(doc.ViewBox.W/2), tess.DocPos(doc.ViewBox.H/2)))
	}

	toWorld := func(points []tess.BetterPoint[tess.DocPos]) []tess.BetterPoint[tess.WorldPos] {
		result := make([]tess.BetterPoint[tess.WorldPos], len(points))
		for i, p := range points {
			result[i] = tess.Redefine[tess.WorldPos](p.Sub(anchor).Mul(tess.DocPos(m.scale)))
		}

		return result
	}

	// 2.0: tessellate back-to-front; draw order is document order
	for _, shape := range doc.Shapes {
		rule := shape.FillRule
		if m.fillRule != nil {
			rule = *m.fillRule
		}

		if shape.Fill != nil {
			points, indices, err := tess.TessellateFill(shape.Path, rule, m.tolerance)
			if err != nil {
				return nil, err
			}

			builder.PushBatch(toWorld(points), indices, shapeColor(*shape.Fill, shape.Opacity))
		}

		if shape.Stroke != nil {
			style := tess.StrokeStyle{
				Width: shape.StrokeWidth,
				Join:  shape.LineJoin,
				Cap:   shape.LineCap,
			}

			points, indices, err := tess.TessellateStroke(shape.Path, style, m.tolerance)
			if err != nil {
				return nil, err
			}

			builder.PushBatch(toWorld(points), indices, shapeColor(*shape.Stroke, shape.Opacity))
		}
	}

	mesh := builder.Mesh()
	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	return mesh, nil
}

func shapeColor(c color.RGBA, opacity float64) color.RGBA {
	return applyOpacity(c, opacity)
}
