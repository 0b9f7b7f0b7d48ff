package renderer

// RendererBackendType selects the graphics API implementation backing the renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU renders through WebGPU via wgpu-native.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how finished frames are delivered to the display.
type PresentMode int

const (
	// PresentModeUncapped presents immediately without waiting for vblank.
	PresentModeUncapped PresentMode = iota

	// PresentModeVSync waits for vblank, capping the frame rate to the
	// display refresh rate.
	PresentModeVSync
)

// MSAASampleCount is the multisample count for the main render pass.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisampling.
	MSAAOff MSAASampleCount = 1

	// MSAA4x renders with 4x multisampling.
	MSAA4x MSAASampleCount = 4
)

// RendererBackend is the graphics-API facing half of the renderer. The
// public Renderer interface delegates resource creation, buffer writes, and
// frame encoding here.
type RendererBackend = wgpuRendererBackend
