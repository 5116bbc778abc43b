package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test output defaults
	if cfg.Output.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Output.Width)
	}
	if cfg.Output.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Output.Height)
	}
	if cfg.Output.SkipMaterials {
		t.Error("expected skip_materials to be false by default")
	}

	// Test mesh defaults
	if cfg.Mesh.FlipX {
		t.Error("expected flip_x to be false by default")
	}
	if cfg.Mesh.Simplify != 0 {
		t.Errorf("expected simplify 0, got %f", cfg.Mesh.Simplify)
	}

	// Test camera defaults
	if cfg.Camera.Distance != 1.0 {
		t.Errorf("expected camera distance 1.0, got %f", cfg.Camera.Distance)
	}
	if cfg.Camera.Pitch != 0 || cfg.Camera.Yaw != 0 || cfg.Camera.Roll != 0 {
		t.Error("expected zero camera angles by default")
	}

	// Test lighting defaults
	if cfg.Lighting.Preset != "basic" {
		t.Errorf("expected preset 'basic', got %s", cfg.Lighting.Preset)
	}
	if cfg.Lighting.Ambient != 0.1 {
		t.Errorf("expected ambient 0.1, got %f", cfg.Lighting.Ambient)
	}
	if cfg.Lighting.Intensity != 1.0 {
		t.Errorf("expected intensity 1.0, got %f", cfg.Lighting.Intensity)
	}
	if cfg.Lighting.Softness != 0.5 {
		t.Errorf("expected softness 0.5, got %f", cfg.Lighting.Softness)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "obj2pov.yaml")

	yamlContent := `
output:
  width: 1920
  height: 1080
  skip_materials: true

mesh:
  flip_x: true
  simplify: 0.5

camera:
  pitch: 30
  yaw: 45
  distance: 2.0
  rotation: 90

lighting:
  preset: "studio"
  ambient: 0.2
  intensity: 1.5
  softness: 0.8
  area_lights: true
  radiosity: true

logging:
  level: "debug"
  log_file: "convert.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Output.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Output.Width)
	}
	if cfg.Output.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Output.Height)
	}
	if !cfg.Output.SkipMaterials {
		t.Error("expected skip_materials to be true")
	}

	if !cfg.Mesh.FlipX {
		t.Error("expected flip_x to be true")
	}
	if cfg.Mesh.Simplify != 0.5 {
		t.Errorf("expected simplify 0.5, got %f", cfg.Mesh.Simplify)
	}

	if cfg.Camera.Pitch != 30 {
		t.Errorf("expected pitch 30, got %f", cfg.Camera.Pitch)
	}
	if cfg.Camera.Yaw != 45 {
		t.Errorf("expected yaw 45, got %f", cfg.Camera.Yaw)
	}
	if cfg.Camera.Distance != 2.0 {
		t.Errorf("expected distance 2.0, got %f", cfg.Camera.Distance)
	}
	if cfg.Camera.Rotation != 90 {
		t.Errorf("expected rotation 90, got %f", cfg.Camera.Rotation)
	}

	if cfg.Lighting.Preset != "studio" {
		t.Errorf("expected preset 'studio', got %s", cfg.Lighting.Preset)
	}
	if cfg.Lighting.Ambient != 0.2 {
		t.Errorf("expected ambient 0.2, got %f", cfg.Lighting.Ambient)
	}
	if !cfg.Lighting.AreaLights {
		t.Error("expected area_lights to be true")
	}
	if !cfg.Lighting.Radiosity {
		t.Error("expected radiosity to be true")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "convert.log" {
		t.Errorf("expected log file 'convert.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
output:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/obj2pov.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create obj2pov.yaml in current directory
	configPath := filepath.Join(tmpDir, "obj2pov.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find obj2pov.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "verbose flag",
			setup: func() {
				*flagVerbose = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagVerbose = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Output.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Output.Width)
				}
				if cfg.Output.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Output.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "mesh flags",
			setup: func() {
				*flagFlipX = true
				*flagSimplify = 0.25
			},
			verify: func(cfg *Config) {
				if !cfg.Mesh.FlipX {
					t.Error("expected flip_x to be true with flip-x flag")
				}
				if cfg.Mesh.Simplify != 0.25 {
					t.Errorf("expected simplify 0.25, got %f", cfg.Mesh.Simplify)
				}
			},
			teardown: func() {
				*flagFlipX = false
				*flagSimplify = 0
			},
		},
		{
			name: "camera flags",
			setup: func() {
				*flagCameraPitch = 15
				*flagCameraDistance = 2.5
				*flagRotateCamera = 180
			},
			verify: func(cfg *Config) {
				if cfg.Camera.Pitch != 15 {
					t.Errorf("expected pitch 15, got %f", cfg.Camera.Pitch)
				}
				if cfg.Camera.Distance != 2.5 {
					t.Errorf("expected distance 2.5, got %f", cfg.Camera.Distance)
				}
				if cfg.Camera.Rotation != 180 {
					t.Errorf("expected rotation 180, got %f", cfg.Camera.Rotation)
				}
			},
			teardown: func() {
				*flagCameraPitch = 0
				*flagCameraDistance = 0
				*flagRotateCamera = 0
			},
		},
		{
			name: "ambient zero is a valid override",
			setup: func() {
				*flagAmbientLight = 0
			},
			verify: func(cfg *Config) {
				if cfg.Lighting.Ambient != 0 {
					t.Errorf("expected ambient 0, got %f", cfg.Lighting.Ambient)
				}
			},
			teardown: func() {
				*flagAmbientLight = -1
			},
		},
		{
			name: "ambient sentinel leaves default",
			setup: func() {
				*flagAmbientLight = -1
			},
			verify: func(cfg *Config) {
				if cfg.Lighting.Ambient != 0.1 {
					t.Errorf("expected default ambient 0.1, got %f", cfg.Lighting.Ambient)
				}
			},
			teardown: func() {},
		},
		{
			name: "lighting flags",
			setup: func() {
				*flagLightingPreset = "dramatic"
				*flagLightIntensity = 1.5
				*flagShadowSoftness = 0.8
				*flagAreaLights = true
				*flagRadiosity = true
				*flagPhotonMapping = true
			},
			verify: func(cfg *Config) {
				if cfg.Lighting.Preset != "dramatic" {
					t.Errorf("expected preset 'dramatic', got %s", cfg.Lighting.Preset)
				}
				if cfg.Lighting.Intensity != 1.5 {
					t.Errorf("expected intensity 1.5, got %f", cfg.Lighting.Intensity)
				}
				if cfg.Lighting.Softness != 0.8 {
					t.Errorf("expected softness 0.8, got %f", cfg.Lighting.Softness)
				}
				if !cfg.Lighting.AreaLights || !cfg.Lighting.Radiosity || !cfg.Lighting.PhotonMapping {
					t.Error("expected all lighting toggles to be set")
				}
			},
			teardown: func() {
				*flagLightingPreset = ""
				*flagLightIntensity = -1
				*flagShadowSoftness = -1
				*flagAreaLights = false
				*flagRadiosity = false
				*flagPhotonMapping = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "obj2pov.yaml")

	yamlContent := `
output:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Output.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Output.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Output.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Output.Height)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "obj2pov.yaml")

	cfg := Default()
	cfg.Output.Width = 1024
	cfg.Lighting.Preset = "soft"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}

	if loaded.Output.Width != 1024 {
		t.Errorf("expected width 1024 after round trip, got %d", loaded.Output.Width)
	}
	if loaded.Lighting.Preset != "soft" {
		t.Errorf("expected preset 'soft' after round trip, got %s", loaded.Lighting.Preset)
	}
}
