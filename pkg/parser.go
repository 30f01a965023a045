package meshy

import (
	"fmt"

	"github.com/rustyoz/svg"
)

func Parse(data []byte) (result *Meshy, err error) {
	// 0.0: initialize
	result = NewMeshy()

	// 1.0: unmarshal xml. rustyoz/svg is the well-formedness gate and the
	// source of the root metadata; it does not surface paint attributes,
	// those come from the DOM scan at tessellation time.
	// (2nd arg is a display name, 3rd a pre-scale we keep at 1)
	if result.svg, err = svg.ParseSvg(string(data), "", 1); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidXML, err)
	}

	result.raw = data

	// N.N: return
	return result, nil
}
