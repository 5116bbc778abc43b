package mesh

import (
	"github.com/fogleman/simplify"

	"github.com/Faultbox/obj2pov/pkg/geom"
)

// Simplify decimates the mesh to roughly factor times its current triangle
// count using quadric edge collapse. Named objects, normals, and UVs do not
// survive decimation: the result is a single unnamed object with positions
// only, so callers should run FixNormals on it afterwards.
func Simplify(m *Model, factor float64) *Model {
	tris := make([]*simplify.Triangle, 0, len(m.Triangles))
	for _, t := range m.Triangles {
		tris = append(tris, simplify.NewTriangle(
			simplifyVector(m.Vertices[t.V[0]]),
			simplifyVector(m.Vertices[t.V[1]]),
			simplifyVector(m.Vertices[t.V[2]]),
		))
	}

	out := simplify.NewMesh(tris).Simplify(factor)

	// Rebuild an indexed model from the triangle soup, deduplicating
	// positions by exact equality like the STL parser does.
	res := &Model{}
	seen := make(map[geom.Vec3]int)
	for _, t := range out.Triangles {
		var vi [3]int
		for k, v := range [3]simplify.Vector{t.V1, t.V2, t.V3} {
			p := geom.Vec3{X: v.X, Y: v.Y, Z: v.Z}
			idx, ok := seen[p]
			if !ok {
				idx = len(res.Vertices)
				res.Vertices = append(res.Vertices, p)
				seen[p] = idx
			}
			vi[k] = idx
		}
		res.Triangles = append(res.Triangles, NewTriangle(vi[0], vi[1], vi[2]))
	}
	return res
}

func simplifyVector(v geom.Vec3) simplify.Vector {
	return simplify.Vector{X: v.X, Y: v.Y, Z: v.Z}
}
