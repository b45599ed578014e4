package terrain

// Mesh is a triangulated heightfield surface for one cell, in absolute world
// coordinates. Positions and normals are packed xyz triples; indices form
// counter-clockwise triangles.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Indices   []uint32

	// Heights is the raw (res+1)×(res+1) sample grid, row-major by z.
	// Clients that rebuild geometry locally only need this.
	Heights []float32
}

// BuildSurface samples the height field over a size×size cell whose corner is
// at world (originX, originZ), subdivided res times per edge. Resolution is
// constant for every cell regardless of viewer distance.
func BuildSurface(originX, originZ, size float64, res int) *Mesh {
	verts := res + 1
	m := &Mesh{
		Positions: make([]float32, 0, verts*verts*3),
		Normals:   make([]float32, 0, verts*verts*3),
		Indices:   make([]uint32, 0, res*res*6),
		Heights:   make([]float32, 0, verts*verts),
	}
	step := size / float64(res)

	for zi := 0; zi < verts; zi++ {
		wz := originZ + float64(zi)*step
		for xi := 0; xi < verts; xi++ {
			wx := originX + float64(xi)*step
			h := HeightAt(wx, wz)
			m.Positions = append(m.Positions, float32(wx), float32(h), float32(wz))
			nx, ny, nz := NormalAt(wx, wz)
			m.Normals = append(m.Normals, float32(nx), float32(ny), float32(nz))
			m.Heights = append(m.Heights, float32(h))
		}
	}

	for zi := 0; zi < res; zi++ {
		for xi := 0; xi < res; xi++ {
			a := uint32(zi*verts + xi)
			b := a + 1
			c := a + uint32(verts)
			d := c + 1
			m.Indices = append(m.Indices, a, c, b, b, c, d)
		}
	}
	return m
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int { return len(m.Positions) / 3 }

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }
