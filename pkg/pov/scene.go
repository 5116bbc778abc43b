// POV-Ray scene serialization.
package pov

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/obj2pov/internal/progress"
	"github.com/Faultbox/obj2pov/pkg/geom"
	"github.com/Faultbox/obj2pov/pkg/mesh"
)

// SceneConfig controls serialization of the scene file.
type SceneConfig struct {
	// Width and Height only feed the embedded render hint and the aspect
	// ratio of the camera; nothing is rasterized here.
	Width  int
	Height int

	// SkipMaterials suppresses the material declarations, leaving a
	// minimal default finish.
	SkipMaterials bool
}

// DefaultSceneConfig returns the standard 800x600 output settings.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{Width: 800, Height: 600}
}

// WriteScene serializes the model, camera, and lighting plan as a POV-Ray
// scene: header and global settings, camera, lights, materials, then one
// mesh2 object per named object. Every mesh2 block shares the model's
// global vertex, normal, and UV lists, so index lists reference the same
// indices the model uses. The output is deterministic and byte-for-byte
// independent of whether tracker (which may be nil) is observed.
func WriteScene(w io.Writer, m *mesh.Model, cam *Camera, plan *Plan, cfg SceneConfig, tracker *progress.Tracker) error {
	bw := bufio.NewWriter(w)

	writeHeader(bw, cfg, plan)
	writeCamera(bw, cam)
	writeLights(bw, plan)
	if cfg.SkipMaterials {
		writeMinimalDefault(bw, plan.Ambient)
	} else {
		writeMaterials(bw, plan.Ambient)
	}
	for _, obj := range m.ObjectsOrDefault() {
		writeMeshObject(bw, m, obj, tracker)
	}

	return bw.Flush()
}

func writeHeader(bw *bufio.Writer, cfg SceneConfig, plan *Plan) {
	fmt.Fprintf(bw, "// Generated by obj2pov\n")
	fmt.Fprintf(bw, "// Render with: povray +W%d +H%d <file>.pov\n\n", cfg.Width, cfg.Height)
	fmt.Fprintf(bw, "#version 3.7;\n\n")
	fmt.Fprintf(bw, "#declare ImageWidth = %d;\n", cfg.Width)
	fmt.Fprintf(bw, "#declare ImageHeight = %d;\n\n", cfg.Height)

	fmt.Fprintf(bw, "global_settings {\n")
	fmt.Fprintf(bw, "    assumed_gamma 1.0\n")
	if plan.Radiosity {
		fmt.Fprintf(bw, "    radiosity {\n")
		fmt.Fprintf(bw, "        pretrace_start 0.08\n")
		fmt.Fprintf(bw, "        pretrace_end 0.01\n")
		fmt.Fprintf(bw, "        count 35\n")
		fmt.Fprintf(bw, "        nearest_count 5\n")
		fmt.Fprintf(bw, "        error_bound 0.5\n")
		fmt.Fprintf(bw, "        recursion_limit 3\n")
		fmt.Fprintf(bw, "        low_error_factor 0.8\n")
		fmt.Fprintf(bw, "        gray_threshold 0.0\n")
		fmt.Fprintf(bw, "        minimum_reuse 0.015\n")
		fmt.Fprintf(bw, "        brightness 1.0\n")
		fmt.Fprintf(bw, "        adc_bailout 0.01/2\n")
		fmt.Fprintf(bw, "        normal on\n")
		fmt.Fprintf(bw, "        media on\n")
		fmt.Fprintf(bw, "    }\n")
	}
	if plan.Photons {
		fmt.Fprintf(bw, "    photons {\n")
		fmt.Fprintf(bw, "        spacing 0.1\n")
		fmt.Fprintf(bw, "        max_trace_level 5\n")
		fmt.Fprintf(bw, "        autostop 0\n")
		fmt.Fprintf(bw, "        expand_thresholds 0.1, 0.1\n")
		fmt.Fprintf(bw, "        media 10\n")
		fmt.Fprintf(bw, "        jitter 0.4\n")
		fmt.Fprintf(bw, "        count 100000\n")
		fmt.Fprintf(bw, "        gather 20, 20\n")
		fmt.Fprintf(bw, "    }\n")
	}
	fmt.Fprintf(bw, "}\n\n")
}

func writeCamera(bw *bufio.Writer, cam *Camera) {
	fmt.Fprintf(bw, "// Camera framing the full mesh bounds\n")
	fmt.Fprintf(bw, "camera {\n")
	fmt.Fprintf(bw, "    location <%.3f, %.3f, %.3f>\n", cam.Position.X, cam.Position.Y, cam.Position.Z)
	fmt.Fprintf(bw, "    look_at <%.3f, %.3f, %.3f>\n", cam.LookAt.X, cam.LookAt.Y, cam.LookAt.Z)
	fmt.Fprintf(bw, "    angle %.1f\n", cam.Angle)
	fmt.Fprintf(bw, "    sky <%.3f, %.3f, %.3f>\n", cam.Up.X, cam.Up.Y, cam.Up.Z)
	fmt.Fprintf(bw, "    right x*ImageWidth/ImageHeight\n")
	fmt.Fprintf(bw, "    up y\n")
	fmt.Fprintf(bw, "}\n\n")
}

func writeLights(bw *bufio.Writer, plan *Plan) {
	fmt.Fprintf(bw, "// Lighting\n")
	for _, l := range plan.Lights {
		fmt.Fprintf(bw, "light_source {\n")
		fmt.Fprintf(bw, "    <%.3f, %.3f, %.3f>\n", l.Position.X, l.Position.Y, l.Position.Z)
		fmt.Fprintf(bw, "    color rgb <%.3f, %.3f, %.3f> * %.3f\n", l.Color[0], l.Color[1], l.Color[2], l.Intensity)
		if l.Area {
			fmt.Fprintf(bw, "    area_light <%.3f, 0, 0>, <0, %.3f, 0>, %d, %d\n", l.Extent, l.Extent, l.Samples, l.Samples)
			fmt.Fprintf(bw, "    adaptive 1\n")
			fmt.Fprintf(bw, "    jitter\n")
			fmt.Fprintf(bw, "    circular\n")
			fmt.Fprintf(bw, "    orient\n")
		}
		if l.Parallel {
			fmt.Fprintf(bw, "    parallel\n")
			fmt.Fprintf(bw, "    point_at <%.3f, %.3f, %.3f>\n", l.PointAt.X, l.PointAt.Y, l.PointAt.Z)
		}
		fmt.Fprintf(bw, "}\n\n")
	}
}

func writeMaterials(bw *bufio.Writer, ambient float64) {
	fmt.Fprintf(bw, "// Physically-based material definitions (bronze default)\n")
	for _, mat := range []Material{Bronze, Aluminum, Plastic} {
		writeMaterial(bw, mat, ambient)
	}
	fmt.Fprintf(bw, "#declare DefaultMaterial = %s\n\n", Bronze.Name)
	fmt.Fprintf(bw, "#default {\n")
	fmt.Fprintf(bw, "    texture { DefaultMaterial }\n")
	fmt.Fprintf(bw, "}\n\n")
}

func writeMaterial(bw *bufio.Writer, mat Material, ambient float64) {
	fmt.Fprintf(bw, "#declare %s = texture {\n", mat.Name)
	fmt.Fprintf(bw, "    pigment {\n")
	fmt.Fprintf(bw, "        color rgb <%g, %g, %g>\n", mat.Pigment[0], mat.Pigment[1], mat.Pigment[2])
	fmt.Fprintf(bw, "    }\n")
	fmt.Fprintf(bw, "    normal {\n")
	fmt.Fprintf(bw, "        bumps %g\n", mat.BumpAmount)
	fmt.Fprintf(bw, "        scale %g\n", mat.BumpScale)
	fmt.Fprintf(bw, "    }\n")
	fmt.Fprintf(bw, "    finish {\n")
	fmt.Fprintf(bw, "        ambient %g\n", ambient)
	fmt.Fprintf(bw, "        diffuse %g\n", mat.Diffuse)
	fmt.Fprintf(bw, "        specular %g\n", mat.Specular)
	fmt.Fprintf(bw, "        roughness %g\n", mat.Roughness)
	fmt.Fprintf(bw, "        reflection {\n")
	fmt.Fprintf(bw, "            %g\n", mat.Reflection)
	fmt.Fprintf(bw, "            fresnel on\n")
	fmt.Fprintf(bw, "        }\n")
	fmt.Fprintf(bw, "        metallic %g\n", mat.Metallic)
	fmt.Fprintf(bw, "        conserve_energy\n")
	fmt.Fprintf(bw, "    }\n")
	fmt.Fprintf(bw, "}\n\n")
}

// writeMinimalDefault keeps the scene renderable when material
// declarations are suppressed.
func writeMinimalDefault(bw *bufio.Writer, ambient float64) {
	fmt.Fprintf(bw, "#default {\n")
	fmt.Fprintf(bw, "    finish { ambient %g diffuse 0.8 }\n", ambient)
	fmt.Fprintf(bw, "}\n\n")
}

func writeMeshObject(bw *bufio.Writer, m *mesh.Model, obj mesh.Object, tracker *progress.Tracker) {
	if len(m.Vertices) == 0 || obj.Count == 0 {
		fmt.Fprintf(bw, "// No geometry for object %q\n\n", obj.Name)
		return
	}
	tris := m.Triangles[obj.Start : obj.Start+obj.Count]

	if obj.Name != "" {
		fmt.Fprintf(bw, "// Mesh object %q\n", obj.Name)
	} else {
		fmt.Fprintf(bw, "// Mesh object\n")
	}
	fmt.Fprintf(bw, "mesh2 {\n")

	writeVectorList(bw, "vertex_vectors", m.Vertices, tracker)
	if m.HasNormals() {
		writeVectorList(bw, "normal_vectors", m.Normals, tracker)
	}
	if m.HasUVs() {
		writeUVList(bw, m.UVs, tracker)
	}

	writeIndexList(bw, "face_indices", tris, func(t mesh.Triangle) [3]int { return t.V }, tracker)
	if m.HasNormals() {
		writeIndexList(bw, "normal_indices", tris, func(t mesh.Triangle) [3]int { return t.N }, tracker)
	}
	if m.HasUVs() {
		writeIndexList(bw, "uv_indices", tris, func(t mesh.Triangle) [3]int { return t.UV }, tracker)
	}

	fmt.Fprintf(bw, "}\n\n")
}

func writeVectorList(bw *bufio.Writer, keyword string, vs []geom.Vec3, tracker *progress.Tracker) {
	fmt.Fprintf(bw, "    %s {\n", keyword)
	fmt.Fprintf(bw, "        %d,\n", len(vs))
	for i, v := range vs {
		fmt.Fprintf(bw, "        <%.6f, %.6f, %.6f>%s\n", v.X, v.Y, v.Z, listSep(i, len(vs)))
		tracker.AddEmitted(1)
	}
	fmt.Fprintf(bw, "    }\n\n")
}

func writeUVList(bw *bufio.Writer, uvs []mesh.UV, tracker *progress.Tracker) {
	fmt.Fprintf(bw, "    uv_vectors {\n")
	fmt.Fprintf(bw, "        %d,\n", len(uvs))
	for i, uv := range uvs {
		fmt.Fprintf(bw, "        <%.6f, %.6f>%s\n", uv.U, uv.V, listSep(i, len(uvs)))
		tracker.AddEmitted(1)
	}
	fmt.Fprintf(bw, "    }\n\n")
}

func writeIndexList(bw *bufio.Writer, keyword string, tris []mesh.Triangle, pick func(mesh.Triangle) [3]int, tracker *progress.Tracker) {
	fmt.Fprintf(bw, "    %s {\n", keyword)
	fmt.Fprintf(bw, "        %d,\n", len(tris))
	for i, t := range tris {
		idx := pick(t)
		for k := range idx {
			// mesh2 index lists cannot express an absent reference.
			if idx[k] == mesh.NoIndex {
				idx[k] = 0
			}
		}
		fmt.Fprintf(bw, "        <%d, %d, %d>%s\n", idx[0], idx[1], idx[2], listSep(i, len(tris)))
		tracker.AddEmitted(1)
	}
	fmt.Fprintf(bw, "    }\n\n")
}

// listSep returns the separator after element i of an n-element POV list.
func listSep(i, n int) string {
	if i == n-1 {
		return ""
	}
	return ","
}
