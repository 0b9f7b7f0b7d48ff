package material

import (
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer/bind_group_provider"
	"github.com/lucasb-eyer/go-colorful"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithBaseColor is an option builder that sets the RGBA surface color of the material.
//
// Parameters:
//   - color: the base color as RGBA float32 values
//
// Returns:
//   - MaterialBuilderOption: a function that applies the base color option to a material
func WithBaseColor(color [4]float32) MaterialBuilderOption {
	return func(m *material) {
		m.baseColor = color
	}
}

// WithColor is an option builder that sets the base color from a colorful.Color
// and an alpha value. Accepts hex-parsed or palette-generated colors directly.
//
// Parameters:
//   - c: the color to use for the RGB channels
//   - alpha: the alpha channel value
//
// Returns:
//   - MaterialBuilderOption: a function that applies the color option to a material
func WithColor(c colorful.Color, alpha float32) MaterialBuilderOption {
	return func(m *material) {
		m.baseColor = [4]float32{float32(c.R), float32(c.G), float32(c.B), alpha}
	}
}

// WithEmissive is an option builder that sets the emissive color and strength
// of the material. Emissive surfaces keep their color at full intensity
// regardless of shading.
//
// Parameters:
//   - color: the emissive RGB color
//   - strength: the emissive intensity multiplier
//
// Returns:
//   - MaterialBuilderOption: a function that applies the emissive option to a material
func WithEmissive(color [3]float32, strength float32) MaterialBuilderOption {
	return func(m *material) {
		m.emissiveColor = color
		m.emissiveStrength = strength
	}
}

// WithPipelineKey is an option builder that sets the render pipeline key for the material.
//
// Parameters:
//   - key: the pipeline key to associate with the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the pipeline key option to a material
func WithPipelineKey(key string) MaterialBuilderOption {
	return func(m *material) {
		m.pipelineKey = key
	}
}

// WithBindGroupProvider is an option builder that sets the bind group provider for the material.
//
// Parameters:
//   - provider: the bind group provider containing GPU resources for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the bind group provider option to a material
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) MaterialBuilderOption {
	return func(m *material) {
		m.bindGroupProvider = provider
	}
}
