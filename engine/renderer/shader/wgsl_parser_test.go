package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSource = `
struct MorphUniform {
    time: f32,
    progress: f32,
}

struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) normal: vec3<f32>,
}

@group(0) @binding(0) var<uniform> camera: CameraUniform;
@group(1) @binding(0) var<storage, read> instances: array<mat4x4<f32>>;
@group(1) @binding(1) var<uniform> morph: MorphUniform;

@vertex
fn vs_main(in: VertexInput, @builtin(instance_index) idx: u32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(in.position, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0);
}
`

func TestParseVertexShader(t *testing.T) {
	s := NewShader("test_vert", ShaderTypeVertex, testSource)

	assert.Equal(t, "vs_main", s.EntryPoint())

	layouts := s.VertexLayout()
	require.Len(t, layouts, 1)
	assert.Equal(t, uint64(24), layouts[0].ArrayStride)
	require.Len(t, layouts[0].Attributes, 2)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, layouts[0].Attributes[0].Format)
	assert.Equal(t, uint64(0), layouts[0].Attributes[0].Offset)
	assert.Equal(t, uint64(12), layouts[0].Attributes[1].Offset)
	assert.Equal(t, uint32(1), layouts[0].Attributes[1].ShaderLocation)
}

func TestParseFragmentShader(t *testing.T) {
	s := NewShader("test_frag", ShaderTypeFragment, testSource)
	assert.Equal(t, "fs_main", s.EntryPoint())
	assert.Empty(t, s.VertexLayout())
}

func TestParseBindGroupLayouts(t *testing.T) {
	s := NewShader("test_vert", ShaderTypeVertex, testSource)

	descriptors := s.BindGroupLayoutDescriptors()
	require.Len(t, descriptors, 2)

	group0 := s.BindGroupLayoutDescriptor(0)
	require.Len(t, group0.Entries, 1)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, group0.Entries[0].Buffer.Type)
	assert.Equal(t, wgpu.ShaderStageVertex, group0.Entries[0].Visibility)

	group1 := s.BindGroupLayoutDescriptor(1)
	require.Len(t, group1.Entries, 2)
	assert.Equal(t, wgpu.BufferBindingTypeReadOnlyStorage, group1.Entries[0].Buffer.Type)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, group1.Entries[1].Buffer.Type)
}

func TestBindGroupVarNames(t *testing.T) {
	s := NewShader("test_vert", ShaderTypeVertex, testSource)

	assert.Equal(t, "camera", s.BindGroupVarName(0, 0))
	assert.Equal(t, "instances", s.BindGroupVarName(1, 0))
	assert.Equal(t, "morph", s.BindGroupVarName(1, 1))
	assert.Equal(t, "", s.BindGroupVarName(2, 0))

	binding, ok := s.BindGroupFromVarName(1, "morph")
	require.True(t, ok)
	assert.Equal(t, 1, binding)

	_, ok = s.BindGroupFromVarName(1, "missing")
	assert.False(t, ok)
}

func TestMissingEntryPointPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewShader("bad", ShaderTypeVertex, `@fragment fn fs_main() -> @location(0) vec4<f32> { return vec4<f32>(0.0); }`)
	})
	assert.Panics(t, func() {
		NewShader("empty", ShaderTypeFragment, "")
	})
}

func TestReadWriteStorageBinding(t *testing.T) {
	src := `
@group(0) @binding(0) var<storage, read_write> out_data: array<f32>;
@vertex fn vs_main() -> @builtin(position) vec4<f32> { return vec4<f32>(0.0); }
`
	s := NewShader("rw", ShaderTypeVertex, src)
	d := s.BindGroupLayoutDescriptor(0)
	require.Len(t, d.Entries, 1)
	assert.Equal(t, wgpu.BufferBindingTypeStorage, d.Entries[0].Buffer.Type)
}
