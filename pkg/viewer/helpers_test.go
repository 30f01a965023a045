package viewer

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/meshy/pkg/tess"
)

func TestMeshVertices(t *testing.T) {
	mesh := &tess.Mesh{
		Vertices: []tess.Vertex{
			{X: 0, Y: 0, R: 1, A: 1},
			{X: 1, Y: 0, R: 1, A: 1},
			{X: 0, Y: 1, R: 1, A: 1},
			{X: 5, Y: 5, B: 1, A: 1},
			{X: 6, Y: 5, B: 1, A: 1},
			{X: 5, Y: 6, B: 1, A: 1},
		},
		Indices: []uint32{0, 1, 2, 3, 4, 5},
		Regions: []tess.Region{
			{Start: 0, Count: 3, Color: color.RGBA{R: 255, A: 255}},
			{Start: 3, Count: 3, Color: color.RGBA{B: 255, A: 255}},
		},
	}

	vertices, indices := meshVertices(mesh, false)
	require.Len(t, vertices, 6)
	require.Len(t, indices, 2)

	assert.Equal(t, []uint16{0, 1, 2}, indices[0])
	assert.Equal(t, []uint16{3, 4, 5}, indices[1])
	assert.Equal(t, float32(1), vertices[0].ColorR)
	assert.Equal(t, float32(1), vertices[3].ColorB)
}

func TestMeshVerticesDebugRecolors(t *testing.T) {
	mesh := &tess.Mesh{
		Vertices: []tess.Vertex{{A: 1}, {X: 1, A: 1}, {Y: 1, A: 1}},
		Indices:  []uint32{0, 1, 2},
		Regions:  []tess.Region{{Start: 0, Count: 3, Color: color.RGBA{A: 255}}},
	}

	vertices, _ := meshVertices(mesh, true)
	// debug mode replaces the flat black with a region hue
	assert.NotZero(t, vertices[0].ColorR+vertices[0].ColorG+vertices[0].ColorB)
	assert.Equal(t, float32(1), vertices[0].ColorA)
}

func TestHSVtoRGB(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, A: 255}, HSVtoRGB(0, 1, 1))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, HSVtoRGB(120, 1, 1))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, HSVtoRGB(240, 1, 1))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, HSVtoRGB(0, 0, 1))
}
