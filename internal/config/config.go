// Package config handles converter configuration loading and management.
package config

// Config holds all converter settings.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Mesh     MeshConfig     `yaml:"mesh"`
	Camera   CameraConfig   `yaml:"camera"`
	Lighting LightingConfig `yaml:"lighting"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// OutputConfig holds render-target settings. Width and height feed the
// render hint embedded in the scene header and the camera aspect ratio.
type OutputConfig struct {
	Width         int  `yaml:"width"`
	Height        int  `yaml:"height"`
	SkipMaterials bool `yaml:"skip_materials"`
}

// MeshConfig holds geometry post-processing settings.
type MeshConfig struct {
	FlipX bool `yaml:"flip_x"`
	// Simplify decimates the mesh to this fraction of its triangle count
	// before emission; 0 disables decimation.
	Simplify float64 `yaml:"simplify"`
}

// CameraConfig holds camera framing settings; angles are in degrees.
type CameraConfig struct {
	Pitch    float64 `yaml:"pitch"`
	Yaw      float64 `yaml:"yaw"`
	Roll     float64 `yaml:"roll"`
	Distance float64 `yaml:"distance"`
	// Rotation is the legacy single-axis camera rotation.
	Rotation float64 `yaml:"rotation"`
}

// LightingConfig holds the lighting preset and its overrides.
type LightingConfig struct {
	Preset        string  `yaml:"preset"`
	Ambient       float64 `yaml:"ambient"`
	Intensity     float64 `yaml:"intensity"`
	Softness      float64 `yaml:"softness"`
	AreaLights    bool    `yaml:"area_lights"`
	Radiosity     bool    `yaml:"radiosity"`
	PhotonMapping bool    `yaml:"photon_mapping"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Width:  800,
			Height: 600,
		},
		Camera: CameraConfig{
			Distance: 1.0,
		},
		Lighting: LightingConfig{
			Preset:    "basic",
			Ambient:   0.1,
			Intensity: 1.0,
			Softness:  0.5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
