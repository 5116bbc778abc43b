// Package main is the entry point for the obj2pov converter.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/obj2pov/internal/config"
	"github.com/Faultbox/obj2pov/internal/logger"
	"github.com/Faultbox/obj2pov/internal/progress"
	"github.com/Faultbox/obj2pov/pkg/formats"
	"github.com/Faultbox/obj2pov/pkg/mesh"
	"github.com/Faultbox/obj2pov/pkg/pov"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Error("failed to write config", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config written", zap.String("path", path))
		return
	}

	input := flag.Arg(0)
	if input == "" {
		printUsage()
		os.Exit(1)
	}

	output := config.OutputPath()
	if output == "" {
		output = replaceExt(input, ".pov")
	}

	if err := convert(cfg, input, output); err != nil {
		logger.Error("conversion failed", zap.Error(err))
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `obj2pov - convert OBJ/STL models to POV-Ray scenes

Usage:
  obj2pov [options] <input.obj|input.stl>

Run "obj2pov -h" for the full option list.

Examples:
  obj2pov model.obj
  obj2pov -o scene.pov -lighting-preset studio model.stl
  obj2pov -rotate-camera 90 -camera-pitch 30 model.obj`)
}

// convert runs the full pipeline: parse, post-process, plan, emit.
func convert(cfg *config.Config, input, output string) error {
	start := time.Now()
	tracker := &progress.Tracker{}

	if config.Verbose() {
		stop := reportProgress(tracker)
		defer stop()
	}

	logSettings(cfg, input, output)

	m, err := parseInput(input, tracker)
	if err != nil {
		return err
	}
	logger.Info("model parsed",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", len(m.Triangles)),
		zap.Int("objects", len(m.ObjectsOrDefault())))

	if cfg.Mesh.Simplify > 0 && cfg.Mesh.Simplify < 1 {
		before := len(m.Triangles)
		m = mesh.Simplify(m, cfg.Mesh.Simplify)
		logger.Info("mesh simplified",
			zap.Int("before", before),
			zap.Int("after", len(m.Triangles)))
	}

	mesh.FixNormals(m)
	if cfg.Mesh.FlipX {
		mesh.FlipX(m)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("validating mesh: %w", err)
	}

	box, err := m.Bounds()
	if err != nil {
		return fmt.Errorf("computing bounds: %w", err)
	}

	cam, err := pov.PlanCamera(box, pov.CameraConfig{
		Pitch:    cfg.Camera.Pitch,
		Yaw:      cfg.Camera.Yaw,
		Roll:     cfg.Camera.Roll,
		Distance: cfg.Camera.Distance,
		Rotation: cfg.Camera.Rotation,
	})
	if err != nil {
		return fmt.Errorf("planning camera: %w", err)
	}

	plan, err := pov.PlanLighting(cam, pov.LightingConfig{
		Preset:        cfg.Lighting.Preset,
		Ambient:       cfg.Lighting.Ambient,
		Intensity:     cfg.Lighting.Intensity,
		Softness:      cfg.Lighting.Softness,
		AreaLights:    cfg.Lighting.AreaLights,
		Radiosity:     cfg.Lighting.Radiosity,
		PhotonMapping: cfg.Lighting.PhotonMapping,
	})
	if err != nil {
		return fmt.Errorf("planning lighting: %w", err)
	}

	if err := writeScene(m, cam, plan, cfg, output, tracker); err != nil {
		return err
	}

	logger.Info("scene written",
		zap.String("path", output),
		zap.Int64("elements", tracker.Emitted()),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// parseInput dispatches on the input file extension.
func parseInput(path string, tracker *progress.Tracker) (*mesh.Model, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return formats.ParseOBJFile(path, tracker)
	case ".stl":
		return formats.ParseSTLFile(path, tracker)
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .obj or .stl)", filepath.Ext(path))
	}
}

// writeScene emits the scene to a temp file in the destination directory
// and renames it into place, so a failed conversion never leaves a
// truncated scene behind.
func writeScene(m *mesh.Model, cam *pov.Camera, plan *pov.Plan, cfg *config.Config, output string, tracker *progress.Tracker) error {
	dir := filepath.Dir(output)
	tmp, err := os.CreateTemp(dir, ".obj2pov-*.pov")
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	scn := pov.SceneConfig{
		Width:         cfg.Output.Width,
		Height:        cfg.Output.Height,
		SkipMaterials: cfg.Output.SkipMaterials,
	}
	if err := pov.WriteScene(tmp, m, cam, plan, scn, tracker); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing scene: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing output file: %w", err)
	}
	if err := os.Rename(tmp.Name(), output); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("renaming output file: %w", err)
	}
	return nil
}

// logSettings emits a one-shot summary of the effective settings.
func logSettings(cfg *config.Config, input, output string) {
	logger.Info("converting",
		zap.String("input", input),
		zap.String("output", output),
		zap.String("preset", cfg.Lighting.Preset),
		zap.Float64("ambient", cfg.Lighting.Ambient),
		zap.Float64("intensity", cfg.Lighting.Intensity),
		zap.Float64("camera_distance", cfg.Camera.Distance),
		zap.Bool("flip_x", cfg.Mesh.FlipX),
		zap.Bool("skip_materials", cfg.Output.SkipMaterials))
}

// reportProgress polls the tracker and logs counters until the returned
// stop function is called.
func reportProgress(tracker *progress.Tracker) func() {
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(500 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				logger.Debug("progress",
					zap.Int64("lines", tracker.Lines()),
					zap.Int64("triangles", tracker.Triangles()),
					zap.Int64("emitted", tracker.Emitted()))
			}
		}
	}()
	return func() {
		close(done)
		<-finished
	}
}

// replaceExt swaps the extension of path for ext.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
