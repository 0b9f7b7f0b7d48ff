package population

import (
	_ "embed"
)

// ParticleShaderSource is the complete WGSL program for the star-sparkle
// particle pipeline (vertex + fragment in one source).
//
//go:embed assets/particle.wgsl
var ParticleShaderSource string

// EmberShaderSource is the complete WGSL program for the ember rise-and-fade
// particle pipeline.
//
//go:embed assets/ember.wgsl
var EmberShaderSource string

// InstancedShaderSource is the complete WGSL program for the rigid instanced
// pipeline.
//
//go:embed assets/instanced.wgsl
var InstancedShaderSource string
