package pov

import (
	"errors"
	"fmt"

	"github.com/Faultbox/obj2pov/pkg/geom"
)

var ErrUnknownPreset = errors.New("unknown lighting preset")

// Lighting preset names.
const (
	PresetBasic         = "basic"
	PresetStudio        = "studio"
	PresetOutdoor       = "outdoor"
	PresetDramatic      = "dramatic"
	PresetSoft          = "soft"
	PresetArchitectural = "architectural"
)

// lightDistanceFactor positions lights at 1.5x the camera framing distance.
const lightDistanceFactor = 1.5

// Role tags a light's purpose in the plan.
type Role string

// Light roles.
const (
	RoleKey  Role = "key"
	RoleFill Role = "fill"
	RoleRim  Role = "rim"
	RoleSun  Role = "sun"
	RoleSky  Role = "sky"
)

// Light is one planned light source.
type Light struct {
	Role      Role
	Position  geom.Vec3
	Color     [3]float64
	Intensity float64

	// Area lights carry an extent (edge length of the emitting square) and
	// a per-axis sample count.
	Area    bool
	Extent  float64
	Samples int

	// Parallel lights model distant sources (sun, sky) and aim at PointAt.
	Parallel bool
	PointAt  geom.Vec3
}

// LightingConfig holds the preset name and the overrides applied after
// preset expansion.
type LightingConfig struct {
	Preset        string
	Ambient       float64
	Intensity     float64
	Softness      float64
	AreaLights    bool
	Radiosity     bool
	PhotonMapping bool
}

// DefaultLightingConfig returns the converter defaults.
func DefaultLightingConfig() LightingConfig {
	return LightingConfig{
		Preset:    PresetBasic,
		Ambient:   0.1,
		Intensity: 1.0,
		Softness:  0.5,
	}
}

// Plan is the expanded, ordered set of lights plus scene-wide toggles.
// Radiosity and photon mapping do not alter the light list; only the
// emitter consumes them.
type Plan struct {
	Lights    []Light
	Ambient   float64
	Radiosity bool
	Photons   bool
}

// PlanLighting expands the configured preset into concrete lights placed
// relative to the final camera position, then applies the overrides: the
// intensity multiplier scales every light, and the area-lights flag turns
// every point light into an area light sized by the softness setting.
func PlanLighting(cam *Camera, cfg LightingConfig) (*Plan, error) {
	d := cam.BaseDistance * lightDistanceFactor
	lights, err := presetLights(cfg.Preset, cam.Position, d)
	if err != nil {
		return nil, err
	}

	for i := range lights {
		l := &lights[i]
		l.Intensity *= cfg.Intensity
		if cfg.AreaLights && !l.Parallel {
			l.Area = true
		}
		if l.Area {
			if l.Extent == 0 {
				l.Extent = 2
			}
			// The default softness of 0.5 reproduces the preset extents.
			l.Extent *= cfg.Softness * 2
			if l.Extent <= 0 {
				// Zero softness means hard shadows: a zero-extent area
				// light is degenerate, so emit a point light instead.
				l.Area = false
				l.Extent = 0
				l.Samples = 0
			} else if l.Samples == 0 {
				l.Samples = 4
			}
		}
	}

	return &Plan{
		Lights:    lights,
		Ambient:   cfg.Ambient,
		Radiosity: cfg.Radiosity,
		Photons:   cfg.PhotonMapping,
	}, nil
}

// presetLights returns the fixed relative geometry of each preset. Offsets
// are fractions of the light distance applied to the camera position, so
// lights stay framed regardless of camera angle.
func presetLights(preset string, cam geom.Vec3, d float64) ([]Light, error) {
	off := func(x, y, z float64) geom.Vec3 {
		return cam.Add(geom.Vec3{X: x * d, Y: y * d, Z: z * d})
	}

	switch preset {
	case PresetBasic, "":
		// A single white light at the camera.
		return []Light{
			{Role: RoleKey, Position: cam, Color: [3]float64{1, 1, 1}, Intensity: 1.0},
		}, nil
	case PresetStudio:
		return []Light{
			{Role: RoleKey, Position: off(0.7, 0.5, -0.3), Color: [3]float64{1.0, 0.95, 0.8}, Intensity: 1.0, Extent: 2},
			{Role: RoleFill, Position: off(-0.5, 0.2, -0.4), Color: [3]float64{0.8, 0.9, 1.0}, Intensity: 0.6, Extent: 1.5},
			{Role: RoleRim, Position: off(0.2, 0.8, 0.6), Color: [3]float64{1.0, 0.9, 0.7}, Intensity: 0.4, Extent: 1},
		}, nil
	case PresetOutdoor:
		return []Light{
			{Role: RoleSun, Position: geom.Vec3{Y: 1000}, Color: [3]float64{1.0, 0.95, 0.8}, Intensity: 1.0, Parallel: true},
			{Role: RoleSky, Position: geom.Vec3{}, Color: [3]float64{0.6, 0.8, 1.0}, Intensity: 0.3, Parallel: true, PointAt: geom.Vec3{Y: -1}},
		}, nil
	case PresetDramatic:
		return []Light{
			{Role: RoleKey, Position: off(0.8, 0.9, -0.2), Color: [3]float64{1.0, 0.8, 0.6}, Intensity: 1.0, Extent: 3},
		}, nil
	case PresetSoft:
		return []Light{
			{Role: RoleKey, Position: off(0.6, 0.4, -0.4), Color: [3]float64{1.0, 0.98, 0.9}, Intensity: 1.0, Area: true, Extent: 4, Samples: 8},
		}, nil
	case PresetArchitectural:
		return []Light{
			{Role: RoleKey, Position: off(0.5, 0.8, -0.3), Color: [3]float64{1.0, 1.0, 0.95}, Intensity: 1.0, Extent: 2},
			{Role: RoleFill, Position: off(-0.3, 0.6, 0.4), Color: [3]float64{0.95, 0.98, 1.0}, Intensity: 0.7, Extent: 1.5},
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
}
