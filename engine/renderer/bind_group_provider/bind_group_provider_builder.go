package bind_group_provider

import "github.com/cogentcore/webgpu/wgpu"

// BindGroupProviderBuilderOption is a functional option for configuring a BindGroupProvider.
type BindGroupProviderBuilderOption func(*bindGroupProvider)

// WithBindGroupLayout pre-sets a shared layout so several providers can bind
// against the same pipeline group without recreating it.
//
// Parameters:
//   - layout: the layout to share
//
// Returns:
//   - BindGroupProviderBuilderOption: the configured option function
func WithBindGroupLayout(layout *wgpu.BindGroupLayout) BindGroupProviderBuilderOption {
	return func(p *bindGroupProvider) {
		p.bindGroupLayout = layout
	}
}

// WithBuffer pre-sets a buffer at a binding index, allowing a provider to
// alias a buffer owned elsewhere (e.g. a population's instance buffer reused
// across layered meshes).
//
// Parameters:
//   - binding: the @binding index within the group
//   - buf: the buffer to store
//
// Returns:
//   - BindGroupProviderBuilderOption: the configured option function
func WithBuffer(binding int, buf *wgpu.Buffer) BindGroupProviderBuilderOption {
	return func(p *bindGroupProvider) {
		p.buffers[binding] = buf
	}
}
