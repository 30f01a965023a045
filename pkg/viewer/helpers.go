package viewer

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	"github.com/gucio321/meshy/pkg/tess"
)

// meshVertices converts a mesh into ebiten vertices plus one index slice per
// material region. With debug set, each region gets its own hue instead of
// the shape colors.
func meshVertices(m *tess.Mesh, debug bool) ([]ebiten.Vertex, [][]uint16) {
	if len(m.Vertices) > math.MaxUint16+1 {
		glg.Warnf("mesh has %d vertices, ebiten indices are 16-bit; dropping the rest", len(m.Vertices))
	}

	vertices := make([]ebiten.Vertex, 0, len(m.Vertices))
	for _, v := range m.Vertices {
		vertices = append(vertices, ebiten.Vertex{
			DstX: v.X, DstY: v.Y,
			SrcX: 0, SrcY: 0,
			ColorR: v.R, ColorG: v.G, ColorB: v.B, ColorA: v.A,
		})
	}

	indices := make([][]uint16, 0, len(m.Regions))
	for i, r := range m.Regions {
		region := make([]uint16, 0, r.Count)
		src := m.Indices[r.Start : r.Start+r.Count]
		for j := 0; j+2 < len(src); j += 3 {
			if src[j] > math.MaxUint16 || src[j+1] > math.MaxUint16 || src[j+2] > math.MaxUint16 {
				continue // whole triangle or nothing
			}

			region = append(region, uint16(src[j]), uint16(src[j+1]), uint16(src[j+2]))
		}

		if debug {
			hue := float64(i) / float64(len(m.Regions)) * 360
			c := HSVtoRGB(hue, 1, 1)
			for _, idx := range region {
				vertices[idx].ColorR = float32(c.R) / 255
				vertices[idx].ColorG = float32(c.G) / 255
				vertices[idx].ColorB = float32(c.B) / 255
				vertices[idx].ColorA = 1
			}
		}

		indices = append(indices, region)
	}

	return vertices, indices
}

// HSVtoRGB maps h ∈ [0, 360), s, v ∈ [0,1] to an RGBA color
func HSVtoRGB(h, s, v float64) color.RGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	case h < 360:
		r, g, b = c, 0, x
	default:
		r, g, b = 0, 0, 0
	}

	return color.RGBA{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: 255,
	}
}
