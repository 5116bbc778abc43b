package pov

// Material describes a fixed PBR-like surface declared in the scene
// header. The ambient term comes from the lighting plan, not the material.
type Material struct {
	Name       string
	Pigment    [3]float64
	BumpAmount float64
	BumpScale  float64
	Diffuse    float64
	Specular   float64
	Roughness  float64
	Reflection float64
	Metallic   float64
}

// Built-in materials emitted by the scene writer; bronze is the default.
var (
	Bronze = Material{
		Name:       "BronzeMaterial",
		Pigment:    [3]float64{0.8, 0.5, 0.2},
		BumpAmount: 0.2,
		BumpScale:  0.05,
		Diffuse:    0.8,
		Specular:   0.9,
		Roughness:  0.1,
		Reflection: 0.8,
		Metallic:   1.0,
	}
	Aluminum = Material{
		Name:       "AluminumMaterial",
		Pigment:    [3]float64{0.9, 0.9, 0.9},
		BumpAmount: 0.1,
		BumpScale:  0.02,
		Diffuse:    0.7,
		Specular:   0.95,
		Roughness:  0.05,
		Reflection: 0.9,
		Metallic:   1.0,
	}
	Plastic = Material{
		Name:       "PlasticMaterial",
		Pigment:    [3]float64{0.2, 0.4, 0.8},
		BumpAmount: 0.05,
		BumpScale:  0.1,
		Diffuse:    0.9,
		Specular:   0.3,
		Roughness:  0.2,
		Reflection: 0.1,
		Metallic:   0.0,
	}
)
