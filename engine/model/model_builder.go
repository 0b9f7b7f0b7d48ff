package model

import (
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer/material"
)

// ModelBuilderOption is a function that configures a model instance during construction.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the model.
//
// Parameters:
//   - name: the identifier for the model
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithMesh is an option builder that sets the mesh geometry of the model. The
// vertices and indices are packed into GPU-ready buffers and the bounding
// radius is computed from the vertex positions.
//
// Parameters:
//   - vertices: the mesh vertices
//   - indices: the triangle list indices into the vertex slice
//
// Returns:
//   - ModelBuilderOption: a function that applies the mesh option to a model
func WithMesh(vertices []GPUVertex, indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.vertexData = MarshalVertices(vertices)
		m.indexData = MarshalIndices(indices)
		m.indexCount = len(indices)
		m.boundingRadius = ComputeBoundingRadius(vertices)
	}
}

// WithRenderMaterial is an option builder that sets the render-ready material for the model.
//
// Parameters:
//   - mat: the material to associate with the model
//
// Returns:
//   - ModelBuilderOption: a function that applies the material option to a model
func WithRenderMaterial(mat material.Material) ModelBuilderOption {
	return func(m *model) {
		m.renderMaterial = mat
	}
}

// WithMeshProvider is an option builder that sets the bind group provider holding GPU mesh resources.
//
// Parameters:
//   - provider: the mesh provider to associate with the model
//
// Returns:
//   - ModelBuilderOption: a function that applies the mesh provider option to a model
func WithMeshProvider(provider bind_group_provider.BindGroupProvider) ModelBuilderOption {
	return func(m *model) {
		m.meshProvider = provider
	}
}
