package meshy

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// parseColor resolves an SVG paint value to a color, or nil for "none".
// Supports #rgb, #rrggbb, rgb(r,g,b), named colors (via x/image/colornames)
// and "none"/"transparent". Paint servers (url(#...)) are unsupported.
func parseColor(s string) (*color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	switch {
	case s == "" || s == "none" || s == "transparent":
		return nil, nil
	case strings.HasPrefix(s, "url("):
		return nil, fmt.Errorf("%w: paint server %q (gradients/patterns)", ErrUnsupportedFeature, s)
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[len("rgb(") : len(s)-1])
	}

	if c, ok := colornames.Map[s]; ok {
		return &c, nil
	}

	return nil, fmt.Errorf("%w: unknown color %q", ErrInvalidXML, s)
}

func parseHexColor(s string) (*color.RGBA, error) {
	hex := s[1:]

	var r, g, b uint8
	switch len(hex) {
	case 3:
		rv, err := strconv.ParseUint(hex[0:1]+hex[0:1], 16, 8)
		gv, err2 := strconv.ParseUint(hex[1:2]+hex[1:2], 16, 8)
		bv, err3 := strconv.ParseUint(hex[2:3]+hex[2:3], 16, 8)
		if err != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("%w: bad hex color %q", ErrInvalidXML, s)
		}
		r, g, b = uint8(rv), uint8(gv), uint8(bv)
	case 6:
		rv, err := strconv.ParseUint(hex[0:2], 16, 8)
		gv, err2 := strconv.ParseUint(hex[2:4], 16, 8)
		bv, err3 := strconv.ParseUint(hex[4:6], 16, 8)
		if err != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("%w: bad hex color %q", ErrInvalidXML, s)
		}
		r, g, b = uint8(rv), uint8(gv), uint8(bv)
	default:
		return nil, fmt.Errorf("%w: bad hex color %q", ErrInvalidXML, s)
	}

	return &color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func parseRGBFunc(args string) (*color.RGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: bad rgb() color", ErrInvalidXML)
	}

	var vals [3]uint8
	for i, p := range parts {
		p = strings.TrimSpace(p)

		// percentage form
		if strings.HasSuffix(p, "%") {
			f, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
			if err != nil || f < 0 || f > 100 {
				return nil, fmt.Errorf("%w: bad rgb() component %q", ErrInvalidXML, p)
			}
			vals[i] = uint8(f * 255 / 100)

			continue
		}

		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: bad rgb() component %q", ErrInvalidXML, p)
		}
		vals[i] = uint8(v)
	}

	return &color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: 255}, nil
}

// applyOpacity scales the alpha of c by opacity in [0,1].
func applyOpacity(c color.RGBA, opacity float64) color.RGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}

	c.A = uint8(float64(c.A)*opacity + 0.5)

	return c
}

// parseStyleAttr splits an inline style="" attribute into declarations.
// Inkscape-flavored SVGs carry most paint attributes this way.
func parseStyleAttr(s string) map[string]string {
	result := make(map[string]string)

	for _, decl := range strings.Split(s, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}

		key, value, found := strings.Cut(decl, ":")
		if !found {
			continue
		}

		result[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return result
}
