package model

import (
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer/material"
)

// model is the implementation of the Model interface.
type model struct {
	name                  string
	renderMaterial        material.Material
	meshProvider          bind_group_provider.BindGroupProvider
	boundingRadius        float32
	vertexData, indexData []byte
	indexCount            int
}

// Model defines the interface for a GPU-ready mesh. A Model holds packed
// vertex and index data, a bounding radius, and — once initialized against a
// renderer — a BindGroupProvider carrying the GPU-side mesh buffers.
//
// Mesh data is produced procedurally by the primitive constructors in this
// package rather than imported from files.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// MeshProvider retrieves the BindGroupProvider holding GPU mesh resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider, or nil if not yet initialized
	MeshProvider() bind_group_provider.BindGroupProvider

	// SetMeshProvider assigns the BindGroupProvider holding GPU mesh resources.
	//
	// Parameters:
	//   - provider: the mesh provider to associate
	SetMeshProvider(provider bind_group_provider.BindGroupProvider)

	// VertexData returns the raw packed vertex data for this model's mesh.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the raw packed index data for this model's mesh.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices in the model's mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// RenderMaterial retrieves the render-ready material for this model.
	//
	// Returns:
	//   - material.Material: the material, or nil if none is set
	RenderMaterial() material.Material

	// SetRenderMaterial replaces the render-ready material for this model.
	//
	// Parameters:
	//   - mat: the material to set
	SetRenderMaterial(mat material.Material)

	// BoundingRadius returns the bounding sphere radius for this model,
	// measured as the maximum vertex distance from the origin.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) MeshProvider() bind_group_provider.BindGroupProvider {
	return m.meshProvider
}

func (m *model) SetMeshProvider(provider bind_group_provider.BindGroupProvider) {
	m.meshProvider = provider
}

func (m *model) VertexData() []byte {
	return m.vertexData
}

func (m *model) IndexData() []byte {
	return m.indexData
}

func (m *model) IndexCount() int {
	return m.indexCount
}

func (m *model) RenderMaterial() material.Material {
	return m.renderMaterial
}

func (m *model) SetRenderMaterial(mat material.Material) {
	m.renderMaterial = mat
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}
