package tess

import (
	"fmt"
	"image/color"
)

// Vertex is one mesh vertex: a world-space position and a flat RGBA color,
// components in [0,1] with alpha already multiplied by the shape opacity.
type Vertex struct {
	X, Y       float32
	R, G, B, A float32
}

// Region is a run of indices sharing one material (color), so a renderer can
// emit one draw call per region.
type Region struct {
	// Start is the first index of the region, Count the number of indices.
	Start, Count int
	Color        color.RGBA
}

// Mesh is the draw-ready result: a triangle list over a shared vertex buffer,
// split into material regions in document draw order.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Regions  []Region
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned bounding box of the vertices.
// ok is false for an empty mesh.
func (m *Mesh) Bounds() (min, max BetterPoint[WorldPos], ok bool) {
	for i, v := range m.Vertices {
		p := BetterPt(WorldPos(v.X), WorldPos(v.Y))
		if i == 0 {
			min, max = p, p
			continue
		}

		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}

	return min, max, len(m.Vertices) > 0
}

// Validate checks the structural invariants: index count divisible by 3,
// every index inside the vertex buffer, regions covering the index buffer
// in order without overlap.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d not divisible by 3", ErrTessellation, len(m.Indices))
	}

	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("%w: index %d at %d out of range (%d vertices)", ErrTessellation, idx, i, len(m.Vertices))
		}
	}

	next := 0
	for i, r := range m.Regions {
		if r.Start != next || r.Count < 0 {
			return fmt.Errorf("%w: region %d starts at %d, want %d", ErrTessellation, i, r.Start, next)
		}
		next += r.Count
	}

	if next != len(m.Indices) {
		return fmt.Errorf("%w: regions cover %d indices, mesh has %d", ErrTessellation, next, len(m.Indices))
	}

	return nil
}

// MeshBuilder accumulates per-shape triangle batches back-to-front in
// document order into a single vertex/index buffer pair. Batches never get
// reordered: draw order is push order, which determines visual stacking.
type MeshBuilder struct {
	vertices []Vertex
	indices  []uint32
	regions  []Region
}

func NewMeshBuilder() *MeshBuilder {
	return &MeshBuilder{}
}

// PushBatch appends one shape's triangles. Indices are local to points and
// get offset by the running vertex count. A batch with the same color as the
// previous one is merged into its region.
func (b *MeshBuilder) PushBatch(points []BetterPoint[WorldPos], indices []uint32, col color.RGBA) *MeshBuilder {
	if len(indices) == 0 {
		return b
	}

	base := uint32(len(b.vertices))
	r := float32(col.R) / 255
	g := float32(col.G) / 255
	bb := float32(col.B) / 255
	a := float32(col.A) / 255

	for _, p := range points {
		b.vertices = append(b.vertices, Vertex{
			X: float32(p.X), Y: float32(p.Y),
			R: r, G: g, B: bb, A: a,
		})
	}

	start := len(b.indices)
	for _, idx := range indices {
		b.indices = append(b.indices, base+idx)
	}

	// 1.0: merge with the previous region when the material matches
	if n := len(b.regions); n > 0 && b.regions[n-1].Color == col {
		b.regions[n-1].Count += len(indices)
		return b
	}

	b.regions = append(b.regions, Region{Start: start, Count: len(indices), Color: col})

	return b
}

// VertexCount returns the number of vertices pushed so far.
func (b *MeshBuilder) VertexCount() int {
	return len(b.vertices)
}

// Mesh finalizes the builder. The builder stays usable; the returned mesh
// owns copies of the buffers.
func (b *MeshBuilder) Mesh() *Mesh {
	m := &Mesh{
		Vertices: make([]Vertex, len(b.vertices)),
		Indices:  make([]uint32, len(b.indices)),
		Regions:  make([]Region, len(b.regions)),
	}
	copy(m.Vertices, b.vertices)
	copy(m.Indices, b.indices)
	copy(m.Regions, b.regions)

	return m
}
