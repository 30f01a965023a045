package viewer

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/gucio321/meshy/pkg/tess"
)

var _ ebiten.Game = &Viewer{}

var backgroundColor = colornames.Black

// whiteSubImage is the 1x1 texture DrawTriangles samples so vertex colors
// pass through untouched.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Viewer statically displays a tessellated mesh in ebiten, one draw call per
// material region, with mouse-wheel zoom.
type Viewer struct {
	mesh  *tess.Mesh
	scale float64

	vertices []ebiten.Vertex
	indices  [][]uint16
}

func NewViewer(m *tess.Mesh) *Viewer {
	result := &Viewer{
		mesh:  m,
		scale: 1,
	}

	result.vertices, result.indices = meshVertices(m, false)

	return result
}

// DebugRegions recolors each material region so draw-call grouping is
// visible at a glance.
func (v *Viewer) DebugRegions() *Viewer {
	v.vertices, v.indices = meshVertices(v.mesh, true)
	return v
}

func (v *Viewer) Update() error {
	_, wheelY := ebiten.Wheel()
	v.scale += wheelY * 0.1
	if v.scale < 0.1 {
		v.scale = 0.1
	}

	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	bounds := screen.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	// 1.0: fit the mesh into the window, then apply the wheel zoom
	min, max, ok := v.mesh.Bounds()
	if !ok {
		return
	}

	size := max.Sub(min)
	fit := 1.0
	if size.X > 0 && size.Y > 0 {
		fit = minf(w/float64(size.X), h/float64(size.Y)) * 0.9
	}

	scale := fit * v.scale
	cx := (float64(min.X) + float64(max.X)) / 2
	cy := (float64(min.Y) + float64(max.Y)) / 2

	// 2.0: project vertices to screen space
	projected := make([]ebiten.Vertex, len(v.vertices))
	for i, vert := range v.vertices {
		vert.DstX = float32((float64(vert.DstX)-cx)*scale + w/2)
		vert.DstY = float32((float64(vert.DstY)-cy)*scale + h/2)
		projected[i] = vert
	}

	// 3.0: one draw call per material region
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	for _, indices := range v.indices {
		screen.DrawTriangles(projected, indices, whiteSubImage, op)
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}
