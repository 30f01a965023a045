package meshy

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/kpango/glg"

	"github.com/gucio321/meshy/pkg/tess"
)

// ViewBox is the svg element's viewBox rectangle.
type ViewBox struct {
	MinX, MinY, W, H float64
}

// Shape is one drawable path with its resolved paint attributes.
// Shapes are owned by their Document and never mutated after load.
type Shape struct {
	// Path is canonical ({MoveTo, LineTo, CubicTo, Close}) and already
	// carries the composed group transform.
	Path        tess.Path
	Fill        *color.RGBA
	FillRule    tess.FillRule
	Stroke      *color.RGBA
	StrokeWidth float64
	LineJoin    tess.LineJoin
	LineCap     tess.LineCap
	// Opacity is the cumulative group opacity, folded into vertex alpha at
	// tessellation time.
	Opacity float64
	// Index is the draw order: shapes with higher Index draw on top.
	Index int
}

// Document is a loaded SVG: an ordered shape list plus the view box.
// Read-only after load; tessellate it as many times as you like.
type Document struct {
	ViewBox       ViewBox
	Width, Height float64
	Shapes        []Shape
}

// drawState is the paint state inherited down the group tree.
type drawState struct {
	transform     tess.Transform
	fill          *color.RGBA
	fillRule      tess.FillRule
	stroke        *color.RGBA
	strokeWidth   float64
	lineJoin      tess.LineJoin
	lineCap       tess.LineCap
	fillOpacity   float64
	strokeOpacity float64
	opacity       float64
	// inDefs marks subtrees under <defs>: scanned for errors, never rendered.
	inDefs bool
}

func initialDrawState() drawState {
	black := color.RGBA{A: 255}

	return drawState{
		transform:     tess.Identity(),
		fill:          &black,
		strokeWidth:   1,
		fillOpacity:   1,
		strokeOpacity: 1,
		opacity:       1,
	}
}

// unsupportedElements are SVG features meshy refuses rather than misrenders.
var unsupportedElements = map[string]bool{
	"text": true, "tspan": true, "textPath": true,
	"filter": true, "mask": true, "clipPath": true,
	"linearGradient": true, "radialGradient": true, "pattern": true,
	"style": true, "use": true, "image": true, "symbol": true,
	"marker": true, "switch": true, "foreignObject": true,
}

// skippedElements carry no geometry and are silently ignored.
var skippedElements = map[string]bool{
	"title": true, "desc": true, "metadata": true,
}

// scanDocument walks the SVG DOM and builds the immutable shape list.
// Arcs inside path data are converted with the given tolerance.
func scanDocument(data []byte, cfg tess.ToleranceConfig) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	doc := &Document{ViewBox: ViewBox{W: 1, H: 1}}
	stack := []drawState{initialDrawState()}
	depth := 0

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, fmt.Errorf("%w: %v", ErrInvalidXML, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local

			if unsupportedElements[name] {
				return nil, fmt.Errorf("%w: <%s> element", ErrUnsupportedFeature, name)
			}

			if skippedElements[name] {
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrInvalidXML, err)
				}

				continue
			}

			state, err := applyPaintAttrs(stack[len(stack)-1], t.Attr)
			if err != nil {
				return nil, err
			}

			switch name {
			case "svg":
				if depth == 0 {
					if err := applyRootAttrs(doc, t.Attr); err != nil {
						return nil, err
					}
				}
			case "g":
				// nothing beyond inherited state
			case "defs":
				state.inDefs = true
			case "path", "rect", "circle", "ellipse", "line", "polyline", "polygon":
				path, err := shapePath(name, t.Attr, cfg)
				if err != nil {
					return nil, err
				}

				if len(path) > 0 && !state.inDefs {
					doc.appendShape(path, state)
				}

				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrInvalidXML, err)
				}

				continue
			default:
				glg.Warnf("skipping unknown element <%s>", name)

				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrInvalidXML, err)
				}

				continue
			}

			stack = append(stack, state)
			depth++
		case xml.EndElement:
			if depth > 0 {
				stack = stack[:len(stack)-1]
				depth--
			}
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced document", ErrInvalidXML)
	}

	return doc, nil
}

func (d *Document) appendShape(path tess.Path, state drawState) {
	shape := Shape{
		Path:        state.transform.ApplyTo(path),
		FillRule:    state.fillRule,
		StrokeWidth: state.strokeWidth,
		LineJoin:    state.lineJoin,
		LineCap:     state.lineCap,
		Opacity:     state.opacity,
		Index:       len(d.Shapes),
	}

	if state.fill != nil {
		c := applyOpacity(*state.fill, state.fillOpacity)
		shape.Fill = &c
	}

	if state.stroke != nil && state.strokeWidth > 0 {
		c := applyOpacity(*state.stroke, state.strokeOpacity)
		shape.Stroke = &c
	}

	d.Shapes = append(d.Shapes, shape)
}

// shapePath builds the canonical path of a geometry element.
func shapePath(name string, attrs []xml.Attr, cfg tess.ToleranceConfig) (tess.Path, error) {
	get := func(key string) string {
		for _, a := range attrs {
			if a.Name.Local == key {
				return a.Value
			}
		}

		return ""
	}

	num := func(key string) (float64, error) {
		s := get(key)
		if s == "" {
			return 0, nil
		}

		return parseLength(s)
	}

	var errs [8]error
	mustNum := func(key string, slot int) float64 {
		v, err := num(key)
		errs[slot] = err

		return v
	}

	var (
		path tess.Path
		err  error
	)

	switch name {
	case "path":
		cmds, perr := tess.ParsePathData(get("d"))
		if perr != nil {
			return nil, perr
		}

		path, err = tess.Normalize(cmds, cfg)
	case "rect":
		path, err = rectPath(
			mustNum("x", 0), mustNum("y", 1),
			mustNum("width", 2), mustNum("height", 3),
			mustNum("rx", 4), mustNum("ry", 5))
	case "circle":
		r := mustNum("r", 2)
		path, err = ellipsePath(mustNum("cx", 0), mustNum("cy", 1), r, r)
	case "ellipse":
		path, err = ellipsePath(
			mustNum("cx", 0), mustNum("cy", 1),
			mustNum("rx", 2), mustNum("ry", 3))
	case "line":
		path = linePath(
			mustNum("x1", 0), mustNum("y1", 1),
			mustNum("x2", 2), mustNum("y2", 3))
	case "polyline":
		path, err = polyPath(get("points"), false)
	case "polygon":
		path, err = polyPath(get("points"), true)
	}

	if err != nil {
		return nil, err
	}

	for _, e := range errs {
		if e != nil {
			return nil, fmt.Errorf("%w: bad <%s> attribute: %v", ErrInvalidXML, name, e)
		}
	}

	return path, nil
}

// applyPaintAttrs overlays an element's paint attributes (presentation
// attributes first, then style="" declarations, which win) onto the
// inherited state.
func applyPaintAttrs(parent drawState, attrs []xml.Attr) (drawState, error) {
	state := parent

	props := make(map[string]string)
	for _, a := range attrs {
		switch a.Name.Local {
		case "fill", "fill-rule", "fill-opacity",
			"stroke", "stroke-width", "stroke-opacity",
			"stroke-linejoin", "stroke-linecap",
			"opacity", "transform":
			props[a.Name.Local] = a.Value
		case "style":
			for k, v := range parseStyleAttr(a.Value) {
				props[k] = v
			}
		}
	}

	for key, value := range props {
		if err := applyPaintProp(&state, key, value); err != nil {
			return state, err
		}
	}

	// transform composes parent-first regardless of map order
	if raw, ok := props["transform"]; ok {
		t, err := parseTransformAttr(raw)
		if err != nil {
			return state, err
		}

		state.transform = parent.transform.Mul(t)
	}

	return state, nil
}

func applyPaintProp(state *drawState, key, value string) error {
	switch key {
	case "fill":
		c, err := parseColor(value)
		if err != nil {
			return err
		}
		state.fill = c
	case "stroke":
		c, err := parseColor(value)
		if err != nil {
			return err
		}
		state.stroke = c
	case "fill-rule":
		rule, ok := tess.FillRuleEnum[value]
		if !ok {
			return fmt.Errorf("%w: fill-rule %q", ErrInvalidXML, value)
		}
		state.fillRule = rule
	case "stroke-linejoin":
		join, ok := tess.LineJoinEnum[value]
		if !ok {
			return fmt.Errorf("%w: stroke-linejoin %q", ErrInvalidXML, value)
		}
		state.lineJoin = join
	case "stroke-linecap":
		lineCap, ok := tess.LineCapEnum[value]
		if !ok {
			return fmt.Errorf("%w: stroke-linecap %q", ErrInvalidXML, value)
		}
		state.lineCap = lineCap
	case "stroke-width":
		w, err := parseLength(value)
		if err != nil {
			return fmt.Errorf("%w: stroke-width %q", ErrInvalidXML, value)
		}
		state.strokeWidth = w
	case "fill-opacity", "stroke-opacity", "opacity":
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || v < 0 || v > 1 {
			return fmt.Errorf("%w: %s %q", ErrInvalidXML, key, value)
		}

		switch key {
		case "fill-opacity":
			state.fillOpacity = v
		case "stroke-opacity":
			state.strokeOpacity = v
		default:
			state.opacity *= v
		}
	}

	return nil
}

// applyRootAttrs reads viewBox/width/height off the root element.
func applyRootAttrs(doc *Document, attrs []xml.Attr) error {
	var widthAttr, heightAttr string
	hasViewBox := false

	for _, a := range attrs {
		switch a.Name.Local {
		case "viewBox":
			hasViewBox = true
			nums, err := parseNumberList(a.Value)
			if err != nil || len(nums) != 4 {
				return fmt.Errorf("%w: viewBox %q", ErrInvalidXML, a.Value)
			}
			doc.ViewBox = ViewBox{MinX: nums[0], MinY: nums[1], W: nums[2], H: nums[3]}
		case "width":
			widthAttr = a.Value
		case "height":
			heightAttr = a.Value
		}
	}

	// absent or percentage sizes fall back to the view box
	doc.Width, doc.Height = doc.ViewBox.W, doc.ViewBox.H
	if w, err := parseLength(widthAttr); err == nil && w > 0 {
		doc.Width = w
	}
	if h, err := parseLength(heightAttr); err == nil && h > 0 {
		doc.Height = h
	}

	if !hasViewBox {
		doc.ViewBox = ViewBox{W: doc.Width, H: doc.Height}
	}

	return nil
}

// parseLength parses a length attribute, accepting a bare number or px/pt/mm
// suffixes (returned in their native unit, no dpi conversion).
func parseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	for _, suffix := range []string{"px", "pt", "mm", "cm", "in"} {
		s = strings.TrimSuffix(s, suffix)
	}

	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
