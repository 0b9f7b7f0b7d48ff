package renderer

import "github.com/Carmen-Shannon/evergreen-go/engine/renderer/pipeline"

// RendererBuilderOption is a functional option for configuring a Renderer.
type RendererBuilderOption func(*renderer)

// WithPipeline adds a pipeline to register once the device exists.
//
// Parameters:
//   - p: the pipeline configuration to register
//
// Returns:
//   - RendererBuilderOption: the configured option function
func WithPipeline(p pipeline.Pipeline) RendererBuilderOption {
	return func(r *renderer) {
		if p != nil {
			r.pipelines[p.PipelineKey()] = p
		}
	}
}

// WithPresentMode sets the initial present mode.
//
// Parameters:
//   - mode: the present mode
//
// Returns:
//   - RendererBuilderOption: the configured option function
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.presentMode = mode
	}
}

// WithMSAA sets the multisample count for the main render pass.
//
// Parameters:
//   - count: the sample count
//
// Returns:
//   - RendererBuilderOption: the configured option function
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.sampleCount = count
	}
}

// WithForceSoftwareRenderer forces the fallback (software) adapter, useful
// for CI environments without a GPU.
//
// Parameters:
//   - force: true to force the fallback adapter
//
// Returns:
//   - RendererBuilderOption: the configured option function
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}
