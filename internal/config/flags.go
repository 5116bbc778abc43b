package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagOutput      = flag.String("o", "", "Output scene path (default: input with .pov extension)")
	flagWidth       = flag.Int("width", 0, "Render width hint")
	flagHeight      = flag.Int("height", 0, "Render height hint")
	flagFlipX       = flag.Bool("flip-x", false, "Mirror the model along the X axis")
	flagNoMaterials = flag.Bool("no-materials", false, "Skip material definitions, emit bare geometry")
	flagSimplify    = flag.Float64("simplify", 0, "Decimate mesh to this fraction of triangles (0 disables)")

	flagCameraPitch    = flag.Float64("camera-pitch", 0, "Camera pitch in degrees")
	flagCameraYaw      = flag.Float64("camera-yaw", 0, "Camera yaw in degrees")
	flagCameraRoll     = flag.Float64("camera-roll", 0, "Camera roll in degrees")
	flagCameraDistance = flag.Float64("camera-distance", 0, "Camera distance multiplier")
	flagRotateCamera   = flag.Float64("rotate-camera", 0, "Rotate camera around the model in degrees")

	flagLightingPreset = flag.String("lighting-preset", "", "Lighting preset (basic, studio, outdoor, dramatic, soft, architectural)")
	flagAmbientLight   = flag.Float64("ambient-light", -1, "Ambient light level")
	flagLightIntensity = flag.Float64("light-intensity", -1, "Light intensity multiplier")
	flagShadowSoftness = flag.Float64("shadow-softness", -1, "Shadow softness for area lights")
	flagAreaLights     = flag.Bool("area-lights", false, "Convert point lights to area lights")
	flagRadiosity      = flag.Bool("radiosity", false, "Enable radiosity global illumination")
	flagPhotonMapping  = flag.Bool("photon-mapping", false, "Enable photon mapping")

	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
	flagVerbose     = flag.Bool("verbose", false, "Enable debug logging and progress output")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// OutputPath returns the explicit output path if provided via -o flag.
func OutputPath() string {
	return *flagOutput
}

// WriteConfigPath returns the path given via --write-config, if any.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// Verbose reports whether --verbose was given.
func Verbose() bool {
	return *flagVerbose
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagVerbose {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Output.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Output.Height = *flagHeight
	}
	if *flagFlipX {
		cfg.Mesh.FlipX = true
	}
	if *flagNoMaterials {
		cfg.Output.SkipMaterials = true
	}
	if *flagSimplify > 0 {
		cfg.Mesh.Simplify = *flagSimplify
	}

	if *flagCameraPitch != 0 {
		cfg.Camera.Pitch = *flagCameraPitch
	}
	if *flagCameraYaw != 0 {
		cfg.Camera.Yaw = *flagCameraYaw
	}
	if *flagCameraRoll != 0 {
		cfg.Camera.Roll = *flagCameraRoll
	}
	if *flagCameraDistance > 0 {
		cfg.Camera.Distance = *flagCameraDistance
	}
	if *flagRotateCamera != 0 {
		cfg.Camera.Rotation = *flagRotateCamera
	}

	if *flagLightingPreset != "" {
		cfg.Lighting.Preset = *flagLightingPreset
	}
	// Negative sentinels distinguish "not given" from a legitimate zero.
	if *flagAmbientLight >= 0 {
		cfg.Lighting.Ambient = *flagAmbientLight
	}
	if *flagLightIntensity >= 0 {
		cfg.Lighting.Intensity = *flagLightIntensity
	}
	if *flagShadowSoftness >= 0 {
		cfg.Lighting.Softness = *flagShadowSoftness
	}
	if *flagAreaLights {
		cfg.Lighting.AreaLights = true
	}
	if *flagRadiosity {
		cfg.Lighting.Radiosity = true
	}
	if *flagPhotonMapping {
		cfg.Lighting.PhotonMapping = true
	}
}
