package material

import (
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer/bind_group_provider"
)

// material is the implementation of the Material interface.
type material struct {
	name              string
	baseColor         [4]float32
	emissiveColor     [3]float32
	emissiveStrength  float32
	pipelineKey       string
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Material defines the interface for a render material, encapsulating surface
// color properties and the GPU resource bindings needed for draw calls.
//
// Color properties (name, base color, emissive) are set at construction time
// and are read-only through this interface. GPU resource references (pipeline
// key, bind group provider) are mutable so they can be configured after
// construction during the scene GPU-init phase.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// BaseColor retrieves the RGBA surface color of the material.
	//
	// Returns:
	//   - [4]float32: the base color as RGBA values
	BaseColor() [4]float32

	// EmissiveColor retrieves the RGB emissive color of the material.
	//
	// Returns:
	//   - [3]float32: the emissive color as RGB values
	EmissiveColor() [3]float32

	// EmissiveStrength retrieves the emissive intensity multiplier.
	// A value of 0.0 means the surface emits no light of its own.
	//
	// Returns:
	//   - float32: the emissive strength
	EmissiveStrength() float32

	// PipelineKey retrieves the key identifying the render pipeline this material uses.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// BindGroupProvider retrieves the bind group provider holding GPU-side resources for this material.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider, or nil if not yet initialized
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetPipelineKey sets the render pipeline key for this material.
	//
	// Parameters:
	//   - key: the pipeline key to associate with this material
	SetPipelineKey(key string)

	// SetBindGroupProvider sets the bind group provider for this material.
	//
	// Parameters:
	//   - provider: the bind group provider containing GPU resources for this material
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)

	// GPUParams builds the GPU-aligned uniform struct for this material.
	//
	// Returns:
	//   - GPUMaterialParams: the uniform values ready to marshal
	GPUParams() GPUMaterialParams
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		baseColor:        [4]float32{1, 1, 1, 1},
		emissiveColor:    [3]float32{0, 0, 0},
		emissiveStrength: 0.0,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) BaseColor() [4]float32 {
	return m.baseColor
}

func (m *material) EmissiveColor() [3]float32 {
	return m.emissiveColor
}

func (m *material) EmissiveStrength() float32 {
	return m.emissiveStrength
}

func (m *material) PipelineKey() string {
	return m.pipelineKey
}

func (m *material) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return m.bindGroupProvider
}

func (m *material) SetPipelineKey(key string) {
	m.pipelineKey = key
}

func (m *material) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	m.bindGroupProvider = provider
}

func (m *material) GPUParams() GPUMaterialParams {
	return GPUMaterialParams{
		BaseColor: m.baseColor,
		EmissiveColor: [4]float32{
			m.emissiveColor[0],
			m.emissiveColor[1],
			m.emissiveColor[2],
			m.emissiveStrength,
		},
	}
}
