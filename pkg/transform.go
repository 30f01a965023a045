package meshy

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gucio321/meshy/pkg/tess"
)

// parseTransformAttr parses an SVG transform list (translate, scale, rotate,
// matrix, skewX, skewY) into a single affine transform, composed left to
// right as SVG mandates.
func parseTransformAttr(s string) (tess.Transform, error) {
	result := tess.Identity()
	s = strings.TrimSpace(s)

	for s != "" {
		open := strings.IndexByte(s, '(')
		closing := strings.IndexByte(s, ')')
		if open < 0 || closing < open {
			return result, fmt.Errorf("%w: bad transform %q", ErrInvalidXML, s)
		}

		name := strings.TrimSpace(strings.Trim(s[:open], ","))
		args, err := parseNumberList(s[open+1 : closing])
		if err != nil {
			return result, fmt.Errorf("%w: bad transform arguments in %q", ErrInvalidXML, name)
		}

		t, err := transformOp(name, args)
		if err != nil {
			return result, err
		}

		result = result.Mul(t)
		s = strings.TrimSpace(s[closing+1:])
	}

	return result, nil
}

func transformOp(name string, args []float64) (tess.Transform, error) {
	switch name {
	case "translate":
		switch len(args) {
		case 1:
			return tess.Translation(args[0], 0), nil
		case 2:
			return tess.Translation(args[0], args[1]), nil
		}
	case "scale":
		switch len(args) {
		case 1:
			return tess.Scaling(args[0], args[0]), nil
		case 2:
			return tess.Scaling(args[0], args[1]), nil
		}
	case "rotate":
		switch len(args) {
		case 1:
			return tess.Rotation(args[0] * math.Pi / 180), nil
		case 3:
			// rotate about a point: translate there, rotate, translate back
			return tess.Translation(args[1], args[2]).
				Mul(tess.Rotation(args[0] * math.Pi / 180)).
				Mul(tess.Translation(-args[1], -args[2])), nil
		}
	case "matrix":
		if len(args) == 6 {
			return tess.Transform{A: args[0], B: args[1], C: args[2], D: args[3], E: args[4], F: args[5]}, nil
		}
	case "skewX":
		if len(args) == 1 {
			return tess.Transform{A: 1, C: math.Tan(args[0] * math.Pi / 180), D: 1}, nil
		}
	case "skewY":
		if len(args) == 1 {
			return tess.Transform{A: 1, B: math.Tan(args[0] * math.Pi / 180), D: 1}, nil
		}
	default:
		return tess.Identity(), fmt.Errorf("%w: transform %q", ErrUnsupportedFeature, name)
	}

	return tess.Identity(), fmt.Errorf("%w: transform %s with %d arguments", ErrInvalidXML, name, len(args))
}

// parseNumberList parses comma/space separated numbers.
func parseNumberList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	result := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}

		result = append(result, v)
	}

	return result, nil
}
