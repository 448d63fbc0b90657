package meshing

import "math"

// FloatsPerVertex is the stride of TorusMesh.Vertices: position xyz then normal xyz
const FloatsPerVertex = 6

// TorusMesh is an indexed triangle mesh of a solid torus
type TorusMesh struct {
	Vertices []float32
	Indices  []uint32
	Sides    int
	Rings    int
}

// VertexCount returns the number of vertices in the mesh
func (m *TorusMesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// Torus builds the same surface as glutSolidTorus. innerRadius is the radius
// of the tube, outerRadius the distance from the origin to the tube center.
// sides subdivides the tube cross-section and rings subdivides the sweep
// around the Z axis. Counts below 1 are raised to 1.
func Torus(innerRadius, outerRadius float32, sides, rings int) *TorusMesh {
	if sides < 1 {
		sides = 1
	}
	if rings < 1 {
		rings = 1
	}

	// One extra column and row duplicate the seam so normals stay continuous
	cols := sides + 1
	rows := rings + 1

	r := float64(innerRadius)
	R := float64(outerRadius)
	dpsi := 2 * math.Pi / float64(rings)
	dphi := -2 * math.Pi / float64(sides)

	verts := make([]float32, 0, cols*rows*FloatsPerVertex)
	for j := 0; j < rows; j++ {
		psi := dpsi * float64(j)
		cpsi, spsi := math.Cos(psi), math.Sin(psi)
		for i := 0; i < cols; i++ {
			phi := dphi * float64(i)
			cphi, sphi := math.Cos(phi), math.Sin(phi)
			verts = append(verts,
				float32(cpsi*(R+cphi*r)),
				float32(spsi*(R+cphi*r)),
				float32(sphi*r),
				float32(cpsi*cphi),
				float32(spsi*cphi),
				float32(sphi),
			)
		}
	}

	idx := make([]uint32, 0, sides*rings*6)
	for j := 0; j < rings; j++ {
		for i := 0; i < sides; i++ {
			a := uint32(j*cols + i)
			b := uint32((j+1)*cols + i)
			c := uint32((j+1)*cols + i + 1)
			d := uint32(j*cols + i + 1)
			// Counter-clockwise seen from outside the tube
			idx = append(idx, a, d, c, a, c, b)
		}
	}

	return &TorusMesh{
		Vertices: verts,
		Indices:  idx,
		Sides:    sides,
		Rings:    rings,
	}
}
