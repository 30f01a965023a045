package tess

import "errors"

var (
	// ErrMalformedPath is returned when path data breaks the SVG path grammar
	// or a command has nothing to refer to (e.g. Close with no prior MoveTo).
	ErrMalformedPath = errors.New("malformed path data")
	// ErrTessellation is returned for non-finite input coordinates or when a
	// path exhausts its subdivision budget.
	ErrTessellation = errors.New("tessellation failed")
)
