// package renderer owns the GPU device, surface, pipeline cache, and frame
// encoding. Everything above it (scene, populations, camera) describes
// resources through bind group providers and staged buffer writes; only this
// package talks to wgpu directly.
package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/evergreen-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer/shader"
	"github.com/Carmen-Shannon/evergreen-go/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

type renderer struct {
	mu *sync.RWMutex

	backend   RendererBackend
	pipelines map[string]pipeline.Pipeline

	presentMode          PresentMode
	sampleCount          MSAASampleCount
	forceFallbackAdapter bool
}

// Renderer is the public rendering surface of the engine: a pipeline cache
// plus resource initialization, batched buffer writes, and per-frame
// encoding.
type Renderer interface {
	// Pipeline retrieves a cached pipeline by key.
	//
	// Parameters:
	//   - key: the pipeline cache key
	//
	// Returns:
	//   - pipeline.Pipeline: the pipeline, or nil if not registered
	Pipeline(key string) pipeline.Pipeline

	// RegisterPipeline compiles the pipeline's shaders into a wgpu render
	// pipeline and stores it in the cache under its key.
	//
	// Parameters:
	//   - p: the pipeline configuration to compile and cache
	//
	// Returns:
	//   - error: an error if compilation fails
	RegisterPipeline(p pipeline.Pipeline) error

	// Resize reconfigures the surface and depth/MSAA attachments for a new
	// framebuffer size.
	//
	// Parameters:
	//   - width: new framebuffer width in pixels
	//   - height: new framebuffer height in pixels
	Resize(width, height int)

	// SetPresentMode sets how frames are delivered to the display. Takes
	// effect on the next surface configuration.
	//
	// Parameters:
	//   - mode: the present mode
	SetPresentMode(mode PresentMode)

	// InitMeshBuffers creates and uploads vertex and index buffers for a
	// mesh, storing them on the provider.
	//
	// Parameters:
	//   - provider: the provider to store the buffers on
	//   - vertexData: raw vertex bytes
	//   - indexData: raw index bytes (uint32 indices)
	//   - indexCount: number of indices for draw calls
	//
	// Returns:
	//   - error: an error if buffer creation fails
	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error

	// InitBindGroup creates GPU buffers and a bind group for the provider
	// from a layout descriptor. Buffers already present on the provider are
	// reused, which lets layered meshes share one instance buffer.
	//
	// Parameters:
	//   - provider: the provider describing and receiving the resources
	//   - descriptor: the bind group layout descriptor
	//   - bufferUsageOverrides: extra usage flags keyed by binding index
	//   - bufferSizeOverrides: buffer sizes keyed by binding index
	//
	// Returns:
	//   - error: an error if resource creation fails
	InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error

	// WriteBuffers flushes a batch of staged buffer writes to the GPU queue.
	//
	// Parameters:
	//   - writes: the staged writes to flush
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// BeginFrame acquires the next swapchain texture and begins the main
	// render pass. Must be paired with EndFrame.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// DrawCall encodes one instanced indexed draw within the current frame.
	//
	// Parameters:
	//   - p: the cached pipeline to bind
	//   - meshProvider: provider holding vertex and index buffers
	//   - instanceCount: the number of instances to draw
	//   - bindGroups: providers whose bind groups are set by slot order
	DrawCall(p pipeline.Pipeline, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider)

	// EndFrame ends the render pass and submits the command buffer. Call
	// Present afterwards to display the frame.
	EndFrame()

	// Present presents the surface and releases the swapchain texture.
	Present()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer for the given backend type and window,
// configures the surface to the window's framebuffer size, and registers
// any pipelines supplied via options. Panics if the window has no surface
// descriptor or the backend type is unknown — both are unrecoverable setup
// errors.
//
// Parameters:
//   - backendType: the graphics backend to use
//   - win: the window providing the render surface
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the configured renderer
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) Renderer {
	if win == nil {
		panic("renderer: window must not be nil")
	}

	r := &renderer{
		mu:          &sync.RWMutex{},
		pipelines:   make(map[string]pipeline.Pipeline),
		presentMode: PresentModeUncapped,
		sampleCount: MSAA4x,
	}
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		descriptor := win.SurfaceDescriptor()
		if descriptor == nil {
			panic("renderer: window has no surface descriptor")
		}
		r.backend = newWGPURendererBackend(descriptor, r.forceFallbackAdapter, r.sampleCount)
	default:
		panic(fmt.Sprintf("renderer: unknown backend type %d", backendType))
	}

	r.backend.SetPresentMode(r.presentMode)
	r.backend.ConfigureSurface(win.Width(), win.Height())

	// Pipelines supplied via options are compiled now that a device exists.
	for key, p := range r.pipelines {
		if err := r.backend.RegisterRenderPipeline(p); err != nil {
			panic(fmt.Sprintf("renderer: failed to register pipeline %q: %v", key, err))
		}
	}

	return r
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pipelines[key]
}

func (r *renderer) RegisterPipeline(p pipeline.Pipeline) error {
	if p == nil {
		return fmt.Errorf("pipeline must not be nil")
	}
	if err := r.backend.RegisterRenderPipeline(p); err != nil {
		return fmt.Errorf("failed to register pipeline %q: %w", p.PipelineKey(), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pipelines[p.PipelineKey()] = p
	return nil
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.mu.Lock()
	r.presentMode = mode
	r.mu.Unlock()
	r.backend.SetPresentMode(mode)
}

func (r *renderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	return r.backend.InitMeshBuffers(provider, vertexData, indexData, indexCount)
}

func (r *renderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error {
	return r.backend.InitBindGroup(provider, descriptor, bufferUsageOverrides, bufferSizeOverrides)
}

func (r *renderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	r.backend.WriteBuffers(writes)
}

func (r *renderer) BeginFrame() error {
	return r.backend.BeginFrame()
}

func (r *renderer) DrawCall(p pipeline.Pipeline, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) {
	r.backend.DrawCall(p, meshProvider, instanceCount, bindGroups)
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}

// MergedBindGroupLayout merges a pipeline's vertex and fragment layout
// descriptors for one group. Bind groups must be created against this merged
// view whenever a group's bindings are split across shader stages.
//
// Parameters:
//   - p: the pipeline whose shaders declare the group
//   - group: the bind group index
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the merged descriptor
func MergedBindGroupLayout(p pipeline.Pipeline, group int) wgpu.BindGroupLayoutDescriptor {
	var vertex, fragment map[int]wgpu.BindGroupLayoutDescriptor
	if vs := p.Shader(shader.ShaderTypeVertex); vs != nil {
		vertex = vs.BindGroupLayoutDescriptors()
	}
	if fs := p.Shader(shader.ShaderTypeFragment); fs != nil {
		fragment = fs.BindGroupLayoutDescriptors()
	}
	return mergeBindGroupLayouts(vertex, fragment)[group]
}
