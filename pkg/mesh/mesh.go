// Package mesh defines the unified in-memory triangle mesh produced by the
// OBJ and STL parsers and consumed by the scene emitter.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/obj2pov/pkg/geom"
)

// Mesh validation errors.
var (
	ErrEmptyMesh       = errors.New("mesh has no vertices")
	ErrIndexOutOfRange = errors.New("triangle index out of range")
)

// NoIndex marks an absent normal or UV reference on a triangle.
const NoIndex = -1

// UV is a texture coordinate pair.
type UV struct {
	U, V float64
}

// Triangle references vertices by 0-based index into the owning model, with
// parallel normal and UV indices (NoIndex when absent). Winding order is
// preserved from the source file and is significant for shading.
type Triangle struct {
	V  [3]int
	N  [3]int
	UV [3]int
}

// NewTriangle returns a triangle with the given vertex indices and no
// normal or UV references.
func NewTriangle(a, b, c int) Triangle {
	return Triangle{
		V:  [3]int{a, b, c},
		N:  [3]int{NoIndex, NoIndex, NoIndex},
		UV: [3]int{NoIndex, NoIndex, NoIndex},
	}
}

// Object names a contiguous run of triangles. OBJ files may declare
// several; STL files always produce exactly one.
type Object struct {
	Name  string
	Start int
	Count int
}

// Model is the unified mesh representation. Sequences are append-only
// during parsing; after the repair pass the model is read-only.
type Model struct {
	Vertices  []geom.Vec3
	Normals   []geom.Vec3
	UVs       []UV
	Triangles []Triangle
	Objects   []Object

	// Materials records usemtl names in order of appearance. They are not
	// resolved; MTL import is out of scope.
	Materials []string
}

// HasNormals reports whether any normals were parsed or computed.
func (m *Model) HasNormals() bool { return len(m.Normals) > 0 }

// HasUVs reports whether any texture coordinates were parsed.
func (m *Model) HasUVs() bool { return len(m.UVs) > 0 }

// ObjectsOrDefault returns the declared named objects, or a single unnamed
// object covering every triangle when the source declared none.
func (m *Model) ObjectsOrDefault() []Object {
	if len(m.Objects) > 0 {
		return m.Objects
	}
	return []Object{{Start: 0, Count: len(m.Triangles)}}
}

// Validate checks that every triangle index is in range of its sequence or
// is NoIndex.
func (m *Model) Validate() error {
	for i, t := range m.Triangles {
		for k := 0; k < 3; k++ {
			if t.V[k] < 0 || t.V[k] >= len(m.Vertices) {
				return fmt.Errorf("%w: triangle %d vertex %d", ErrIndexOutOfRange, i, t.V[k])
			}
			if t.N[k] != NoIndex && (t.N[k] < 0 || t.N[k] >= len(m.Normals)) {
				return fmt.Errorf("%w: triangle %d normal %d", ErrIndexOutOfRange, i, t.N[k])
			}
			if t.UV[k] != NoIndex && (t.UV[k] < 0 || t.UV[k] >= len(m.UVs)) {
				return fmt.Errorf("%w: triangle %d uv %d", ErrIndexOutOfRange, i, t.UV[k])
			}
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of all vertices. An empty
// mesh is an error: camera framing is undefined without at least one point.
func (m *Model) Bounds() (geom.Box, error) {
	box, ok := geom.BoxOf(m.Vertices)
	if !ok {
		return geom.Box{}, ErrEmptyMesh
	}
	return box, nil
}
