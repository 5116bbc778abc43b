// Wavefront OBJ parser.
package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/obj2pov/internal/progress"
	"github.com/Faultbox/obj2pov/pkg/geom"
	"github.com/Faultbox/obj2pov/pkg/mesh"
)

// maxOBJLine bounds a single OBJ record; faces with thousands of vertices
// fit comfortably.
const maxOBJLine = 1024 * 1024

// DecodeOBJ parses Wavefront OBJ text from r into a mesh model. Recognized
// records are v, vn, vt, f, o, and usemtl; comments, blank lines, and
// unknown record types are skipped. Faces with more than three vertices are
// fan-triangulated from the first vertex, which is not geometrically exact
// for non-convex or non-planar polygons. tracker may be nil.
func DecodeOBJ(r io.Reader, tracker *progress.Tracker) (*mesh.Model, error) {
	m := &mesh.Model{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxOBJLine)

	line := 0
	for scanner.Scan() {
		line++
		tracker.AddLines(1)

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: line, Msg: "vertex", Err: err}
			}
			m.Vertices = append(m.Vertices, v)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: line, Msg: "normal", Err: err}
			}
			m.Normals = append(m.Normals, n)
		case "vt":
			uv, err := parseUV(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: line, Msg: "texture coordinate", Err: err}
			}
			m.UVs = append(m.UVs, uv)
		case "f":
			if err := parseFace(m, fields[1:], line, tracker); err != nil {
				return nil, err
			}
		case "o":
			if len(fields) < 2 {
				return nil, &ParseError{Line: line, Msg: "object", Err: ErrBadRecord}
			}
			// Faces may precede the first o record; they belong to an
			// implicit unnamed object so no triangle is lost at emission.
			if len(m.Objects) == 0 && len(m.Triangles) > 0 {
				m.Objects = append(m.Objects, mesh.Object{Start: 0})
			}
			closeObject(m)
			m.Objects = append(m.Objects, mesh.Object{Name: fields[1], Start: len(m.Triangles)})
		case "usemtl":
			if len(fields) >= 2 {
				m.Materials = append(m.Materials, fields[1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ input: %w", err)
	}
	closeObject(m)
	return m, nil
}

// ParseOBJ parses OBJ text from a byte slice.
func ParseOBJ(data []byte) (*mesh.Model, error) {
	return DecodeOBJ(bytes.NewReader(data), nil)
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string, tracker *progress.Tracker) (*mesh.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	defer f.Close()
	return DecodeOBJ(f, tracker)
}

// closeObject fixes up the triangle count of the most recent named object.
func closeObject(m *mesh.Model) {
	if len(m.Objects) == 0 {
		return
	}
	last := &m.Objects[len(m.Objects)-1]
	last.Count = len(m.Triangles) - last.Start
}

// parseVec3 parses exactly three floats; extra fields are ignored.
func parseVec3(fields []string) (geom.Vec3, error) {
	if len(fields) < 3 {
		return geom.Vec3{}, ErrBadRecord
	}
	var out [3]float64
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return geom.Vec3{}, fmt.Errorf("%w: %q", ErrNonNumeric, fields[i])
		}
		out[i] = f
	}
	return geom.Vec3{X: out[0], Y: out[1], Z: out[2]}, nil
}

// parseUV parses the first two of up to three floats.
func parseUV(fields []string) (mesh.UV, error) {
	if len(fields) < 2 {
		return mesh.UV{}, ErrBadRecord
	}
	u, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return mesh.UV{}, fmt.Errorf("%w: %q", ErrNonNumeric, fields[0])
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return mesh.UV{}, fmt.Errorf("%w: %q", ErrNonNumeric, fields[1])
	}
	return mesh.UV{U: u, V: v}, nil
}

// parseFace resolves a face record's vertex references and appends the
// fan-triangulated result to the model.
func parseFace(m *mesh.Model, refs []string, line int, tracker *progress.Tracker) error {
	if len(refs) < 3 {
		return &ParseError{Line: line, Msg: "face needs at least 3 vertices", Err: ErrBadRecord}
	}
	vi := make([]int, len(refs))
	ti := make([]int, len(refs))
	ni := make([]int, len(refs))
	for i, ref := range refs {
		v, t, n, err := parseFaceRef(ref, len(m.Vertices), len(m.UVs), len(m.Normals))
		if err != nil {
			return &ParseError{Line: line, Msg: fmt.Sprintf("face reference %q", ref), Err: err}
		}
		vi[i], ti[i], ni[i] = v, t, n
	}

	for i := 1; i < len(refs)-1; i++ {
		m.Triangles = append(m.Triangles, mesh.Triangle{
			V:  [3]int{vi[0], vi[i], vi[i+1]},
			N:  [3]int{ni[0], ni[i], ni[i+1]},
			UV: [3]int{ti[0], ti[i], ti[i+1]},
		})
		tracker.AddTriangles(1)
	}
	return nil
}

// parseFaceRef parses one vertex reference of the form v, v/vt, v/vt/vn, or
// v//vn, resolving all indices to 0-based.
func parseFaceRef(ref string, nv, nt, nn int) (v, t, n int, err error) {
	parts := strings.Split(ref, "/")
	if len(parts) > 3 {
		return 0, 0, 0, ErrBadRecord
	}
	t, n = mesh.NoIndex, mesh.NoIndex
	if v, err = resolveIndex(parts[0], nv); err != nil {
		return
	}
	if len(parts) > 1 && parts[1] != "" {
		if t, err = resolveIndex(parts[1], nt); err != nil {
			return
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		n, err = resolveIndex(parts[2], nn)
	}
	return
}

// resolveIndex converts a 1-based OBJ index to 0-based. Negative indices
// count back from the end of the current sequence.
func resolveIndex(s string, length int) (int, error) {
	raw, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNonNumeric, s)
	}
	idx := raw - 1
	if raw < 0 {
		idx = length + raw
	}
	if raw == 0 || idx < 0 || idx >= length {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, raw)
	}
	return idx, nil
}
