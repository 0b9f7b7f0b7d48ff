// package population implements the two morphing render paths: shader-driven
// particles whose motion lives entirely in WGSL, and CPU-transformed rigid
// instances. Both share the same immutable entity store and the same
// two-state assembled/scattered toggle; they differ only in where the
// per-frame work happens.
package population

import (
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer"
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer/bind_group_provider"
)

// settleThreshold is the raw progress above which a rigid entity is
// considered home: tumble stops and the resting yaw is pinned.
const settleThreshold = 0.99

// Population is the common surface of every morphing entity group. The scene
// composer drives populations exclusively through this interface and never
// branches on the concrete type.
type Population interface {
	// Name retrieves the population identifier.
	//
	// Returns:
	//   - string: the population name
	Name() string

	// Count returns the number of entities in the population.
	//
	// Returns:
	//   - int: the entity count
	Count() int

	// SetAssembled sets the morph goal. The transition retargets smoothly
	// from the current progress; it never resets or jumps.
	//
	// Parameters:
	//   - assembled: true to morph toward the assembled arrangement
	SetAssembled(assembled bool)

	// Assembled reports the current morph goal.
	//
	// Returns:
	//   - bool: true if the goal is the assembled arrangement
	Assembled() bool

	// Progress returns the raw morph progress in [0, 1].
	//
	// Returns:
	//   - float32: the current progress value
	Progress() float32

	// InitGPU creates the population's GPU resources against the renderer:
	// mesh buffers, bind groups sized from the pipeline's parsed shader
	// layouts, and the one-time upload of immutable entity data.
	//
	// Parameters:
	//   - r: the renderer to create resources against
	//   - cameraProvider: the shared camera bind group provider (group 0)
	//
	// Returns:
	//   - error: an error if the pipeline is missing or resource creation fails
	InitGPU(r renderer.Renderer, cameraProvider bind_group_provider.BindGroupProvider) error

	// PrepareFrame advances the population's progress and stages its GPU
	// writes for this frame. Safe to call concurrently with other
	// populations' PrepareFrame; each population touches only its own state.
	//
	// Parameters:
	//   - elapsed: scene time in seconds since start
	//   - dt: seconds since the previous frame
	PrepareFrame(elapsed, dt float32)

	// Flush returns the buffer writes staged by the last PrepareFrame. The
	// returned slice and its data are reused between frames; callers must
	// submit them before the next PrepareFrame.
	//
	// Returns:
	//   - []bind_group_provider.BufferWrite: the staged writes
	Flush() []bind_group_provider.BufferWrite

	// Draw encodes this population's draw calls into the current frame.
	//
	// Parameters:
	//   - r: the renderer encoding the frame
	//   - cameraProvider: the shared camera bind group provider (group 0)
	Draw(r renderer.Renderer, cameraProvider bind_group_provider.BindGroupProvider)
}
