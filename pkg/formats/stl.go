// STL (STereoLithography) parser, ASCII and binary forms.
package formats

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/Faultbox/obj2pov/internal/progress"
	"github.com/Faultbox/obj2pov/pkg/geom"
	"github.com/Faultbox/obj2pov/pkg/mesh"
)

// binary STL layout: 80-byte header, uint32 triangle count, then 50 bytes
// per triangle (12 normal + 36 vertices + 2 attribute).
const (
	stlHeaderSize   = 84
	stlTriangleSize = 50
)

// ParseSTL parses STL data, detecting the ASCII form by its "solid" header
// before falling back to binary decoding. Vertex positions repeated across
// triangles are deduplicated to a single index by exact equality; each
// triangle keeps its own normal. tracker may be nil.
func ParseSTL(data []byte, tracker *progress.Tracker) (*mesh.Model, error) {
	if isASCIISTL(data) {
		return parseASCIISTL(data, tracker)
	}
	return parseBinarySTL(data, tracker)
}

// ParseSTLFile parses an STL file from disk.
func ParseSTLFile(path string, tracker *progress.Tracker) (*mesh.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading STL file: %w", err)
	}
	return ParseSTL(data, tracker)
}

// isASCIISTL reports whether data looks like ASCII STL. Some binary
// exporters write "solid" into the 80-byte header, so the check also wants
// a "facet" keyword near the start.
func isASCIISTL(data []byte) bool {
	head := bytes.TrimLeft(data, " \t\r\n")
	if !bytes.HasPrefix(head, []byte("solid")) {
		return false
	}
	probe := head
	if len(probe) > 512 {
		probe = probe[:512]
	}
	return bytes.Contains(probe, []byte("facet"))
}

// vertexKey is the bit-pattern representation of a position, used for
// exact-equality deduplication without floating-point comparison pitfalls.
// Near-duplicate vertices from numerical noise remain distinct.
type vertexKey [3]uint64

// dedup assigns each distinct vertex position a single index in the model.
type dedup struct {
	m     *mesh.Model
	index map[vertexKey]int
}

func newDedup(m *mesh.Model) *dedup {
	return &dedup{m: m, index: make(map[vertexKey]int)}
}

func (d *dedup) add(v geom.Vec3) int {
	k := vertexKey{
		math.Float64bits(v.X),
		math.Float64bits(v.Y),
		math.Float64bits(v.Z),
	}
	if i, ok := d.index[k]; ok {
		return i
	}
	i := len(d.m.Vertices)
	d.m.Vertices = append(d.m.Vertices, v)
	d.index[k] = i
	return i
}

// parseASCIISTL decodes the solid/facet/vertex grammar.
func parseASCIISTL(data []byte, tracker *progress.Tracker) (*mesh.Model, error) {
	m := &mesh.Model{}
	d := newDedup(m)
	name := ""

	var (
		verts     []geom.Vec3
		normal    geom.Vec3
		hasNormal bool
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxOBJLine)
	line := 0
	for scanner.Scan() {
		line++
		tracker.AddLines(1)

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				name = fields[1]
			}
		case "facet":
			if len(fields) < 5 || fields[1] != "normal" {
				return nil, &ParseError{Line: line, Msg: "facet", Err: ErrBadRecord}
			}
			n, err := parseVec3(fields[2:])
			if err != nil {
				return nil, &ParseError{Line: line, Msg: "facet normal", Err: err}
			}
			normal, hasNormal = n, true
			verts = verts[:0]
		case "vertex":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: line, Msg: "vertex", Err: err}
			}
			verts = append(verts, v)
		case "endfacet":
			if len(verts) != 3 || !hasNormal {
				return nil, &ParseError{Line: line, Msg: "facet does not have exactly 3 vertices", Err: ErrBadRecord}
			}
			appendSTLTriangle(m, d, normal, verts[0], verts[1], verts[2])
			tracker.AddTriangles(1)
			hasNormal = false
		case "outer", "endloop", "endsolid":
			// structural keywords with no payload
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading STL input: %w", err)
	}

	m.Objects = []mesh.Object{{Name: name, Start: 0, Count: len(m.Triangles)}}
	return m, nil
}

// parseBinarySTL decodes the fixed-layout binary form. A mismatch between
// the declared triangle count and the remaining byte length is fatal; no
// partial mesh is returned.
func parseBinarySTL(data []byte, tracker *progress.Tracker) (*mesh.Model, error) {
	if len(data) < stlHeaderSize {
		return nil, &ParseError{Offset: int64(len(data)), Msg: "binary STL header", Err: ErrTruncatedSTL}
	}
	count := binary.LittleEndian.Uint32(data[80:stlHeaderSize])
	body := data[stlHeaderSize:]
	if int64(len(body)) != int64(count)*stlTriangleSize {
		return nil, &ParseError{
			Offset: stlHeaderSize,
			Msg:    fmt.Sprintf("%d triangles declared, %d bytes of data", count, len(body)),
			Err:    ErrTriangleCountMismatch,
		}
	}

	m := &mesh.Model{}
	d := newDedup(m)
	for i := uint32(0); i < count; i++ {
		rec := body[int64(i)*stlTriangleSize:]
		n := readVec3f32(rec, 0)
		v0 := readVec3f32(rec, 12)
		v1 := readVec3f32(rec, 24)
		v2 := readVec3f32(rec, 36)
		// 2 attribute bytes at offset 48 are ignored.
		appendSTLTriangle(m, d, n, v0, v1, v2)
		tracker.AddTriangles(1)
	}

	m.Objects = []mesh.Object{{Start: 0, Count: len(m.Triangles)}}
	return m, nil
}

// appendSTLTriangle adds one triangle with its own normal, reusing indices
// for vertex positions seen before.
func appendSTLTriangle(m *mesh.Model, d *dedup, n, v0, v1, v2 geom.Vec3) {
	ni := len(m.Normals)
	m.Normals = append(m.Normals, n)
	m.Triangles = append(m.Triangles, mesh.Triangle{
		V:  [3]int{d.add(v0), d.add(v1), d.add(v2)},
		N:  [3]int{ni, ni, ni},
		UV: [3]int{mesh.NoIndex, mesh.NoIndex, mesh.NoIndex},
	})
}

func readVec3f32(b []byte, off int) geom.Vec3 {
	return geom.Vec3{
		X: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))),
		Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[off+4:]))),
		Z: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[off+8:]))),
	}
}
