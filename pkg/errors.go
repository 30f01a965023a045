package meshy

import "errors"

var (
	// ErrInvalidXML is returned when the input is not a well-formed SVG document.
	ErrInvalidXML = errors.New("invalid svg document")
	// ErrUnsupportedFeature is returned when the document uses an SVG feature
	// meshy does not implement (text, filters, masks, gradients, stylesheets).
	ErrUnsupportedFeature = errors.New("unsupported svg feature")
)
