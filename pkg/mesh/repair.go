package mesh

import "github.com/Faultbox/obj2pov/pkg/geom"

// FixNormals replaces degenerate triangle normals after parsing. A corner
// whose normal reference is absent, or whose referenced normal has zero
// magnitude, gets the triangle's flat normal computed from the cross
// product of its edge vectors; corners with valid authored normals are left
// alone so per-corner shading survives. Fully collinear triangles fall back
// to (0, 0, 1) so the renderer never receives a zero-length normal.
// Idempotent.
func FixNormals(m *Model) {
	for i := range m.Triangles {
		t := &m.Triangles[i]
		flat := -1
		for k, ni := range t.N {
			if ni != NoIndex && m.Normals[ni].Length() != 0 {
				continue
			}
			if flat < 0 {
				flat = len(m.Normals)
				m.Normals = append(m.Normals, faceNormal(
					m.Vertices[t.V[0]],
					m.Vertices[t.V[1]],
					m.Vertices[t.V[2]],
				))
			}
			t.N[k] = flat
		}
	}
}

// faceNormal computes the unit geometric normal of a triangle, falling back
// to (0, 0, 1) when the vertices are collinear.
func faceNormal(a, b, c geom.Vec3) geom.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Length() == 0 {
		return geom.Vec3{Z: 1}
	}
	return n.Normalize()
}

// FlipX negates the X component of every vertex and normal. Triangle
// winding order is left unchanged, so shading that relies on consistent
// winding may invert after a flip; callers wanting consistent backfaces
// must reverse winding themselves. Applying FlipX twice is the identity.
func FlipX(m *Model) {
	for i := range m.Vertices {
		m.Vertices[i].X = -m.Vertices[i].X
	}
	for i := range m.Normals {
		m.Normals[i].X = -m.Normals[i].X
	}
}
