// package scene composes populations behind one camera and renderer. The
// scene owns the per-frame ordering contract: every population's progress and
// staging advances first, then all staged writes flush in a single batch, then
// draws encode in stable registration order.
package scene

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/evergreen-go/engine/camera"
	"github.com/Carmen-Shannon/evergreen-go/engine/population"
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer"
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer/bind_group_provider"
)

// Scene manages a set of Populations with a Camera and Renderer. Populations
// render in the order they were added; the morph toggle fans out to all of
// them atomically so the whole scene transitions as one.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// AddPopulation appends a population to the scene. Populations draw in
	// the order they were added; add opaque populations before additive ones.
	// The population inherits the scene's current assembled state so a late
	// addition does not lag the toggle.
	//
	// Parameters:
	//   - p: the population to add; nil is ignored
	AddPopulation(p population.Population)

	// Population retrieves a population by name.
	//
	// Parameters:
	//   - name: the population identifier
	//
	// Returns:
	//   - population.Population: the population, or nil if not found
	Population(name string) population.Population

	// Populations returns the populations in registration order. The slice
	// is a copy; the populations themselves are shared.
	//
	// Returns:
	//   - []population.Population: the registered populations
	Populations() []population.Population

	// Count returns the total entity count across all populations.
	//
	// Returns:
	//   - int: the summed entity count
	Count() int

	// Assembled reports the scene-level morph goal.
	//
	// Returns:
	//   - bool: true if the goal is the assembled arrangement
	Assembled() bool

	// SetAssembled fans the morph goal out to every population. Each
	// population retargets from its own current progress; none of them reset.
	//
	// Parameters:
	//   - assembled: true to morph toward the assembled arrangement
	SetAssembled(assembled bool)

	// Toggle flips the morph goal and returns the new state.
	//
	// Returns:
	//   - bool: the new assembled state
	Toggle() bool

	// InitGPU initializes GPU resources for every registered population
	// against the scene's renderer, sharing the camera's bind group provider.
	// Call once after all populations are added and pipelines registered.
	//
	// Returns:
	//   - error: the first population init failure, or nil
	InitGPU() error

	// Update advances the scene one frame: the camera recomputes its
	// matrices, every population prepares its staged writes in parallel on
	// the compute pool, and all writes flush to the GPU queue in one batch.
	//
	// Parameters:
	//   - elapsed: scene time in seconds since start
	//   - deltaTime: elapsed seconds since the previous frame
	Update(elapsed, deltaTime float32)

	// DrawCalls encodes draw calls for every population in registration
	// order. Must be called within a BeginFrame/EndFrame block on the
	// renderer.
	//
	// Returns:
	//   - error: an error if the scene has no renderer
	DrawCalls() error
}

type scene struct {
	mu *sync.RWMutex

	name      string
	active    bool
	assembled bool

	cam         camera.Camera
	r           renderer.Renderer
	populations []population.Population

	// writePool is reused each frame to coalesce buffer writes without
	// per-frame allocation growth.
	writePool         []bind_group_provider.BufferWrite
	cameraUniformData []byte

	// computePool manages a bounded set of reusable goroutines for the
	// parallel population prep in Update. Workers persist across frames,
	// avoiding per-frame goroutine spawn/teardown overhead.
	computePool    worker.DynamicWorkerPool
	computeWorkers int
}

var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera and renderer. Both are
// required and NewScene panics if either is nil — a scene without them cannot
// render and the failure is a programming error, not a runtime condition.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}

	s := &scene{
		mu:                &sync.RWMutex{},
		name:              name,
		active:            false,
		cam:               cam,
		r:                 r,
		cameraUniformData: make([]byte, (&camera.GPUCameraUniform{}).Size()),
		computeWorkers:    max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the compute pool after options so WithComputeWorkers can
	// override the default. Queue size of 64 comfortably exceeds the
	// population counts this engine targets.
	s.computePool = worker.NewDynamicWorkerPool(s.computeWorkers, 64, 1*time.Second)

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) AddPopulation(p population.Population) {
	if p == nil {
		return
	}
	s.mu.Lock()
	assembled := s.assembled
	s.populations = append(s.populations, p)
	s.mu.Unlock()

	p.SetAssembled(assembled)
}

func (s *scene) Population(name string) population.Population {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.populations {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

func (s *scene) Populations() []population.Population {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]population.Population, len(s.populations))
	copy(out, s.populations)
	return out
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, p := range s.populations {
		total += p.Count()
	}
	return total
}

func (s *scene) Assembled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.assembled
}

func (s *scene) SetAssembled(assembled bool) {
	s.mu.Lock()
	s.assembled = assembled
	pops := s.populations
	s.mu.Unlock()

	for _, p := range pops {
		p.SetAssembled(assembled)
	}
}

func (s *scene) Toggle() bool {
	s.mu.Lock()
	s.assembled = !s.assembled
	assembled := s.assembled
	pops := s.populations
	s.mu.Unlock()

	for _, p := range pops {
		p.SetAssembled(assembled)
	}
	return assembled
}

func (s *scene) InitGPU() error {
	s.mu.RLock()
	pops := s.populations
	cameraProvider := s.cam.BindGroupProvider()
	s.mu.RUnlock()

	for _, p := range pops {
		if err := p.InitGPU(s.r, cameraProvider); err != nil {
			return fmt.Errorf("scene %q: %w", s.name, err)
		}
	}
	return nil
}

func (s *scene) Update(elapsed, deltaTime float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cam.Update()

	// Phase 1: parallel population prep — submit each population's progress
	// update and staging to the compute pool. Workers are reused across
	// frames. A WaitGroup provides the per-frame barrier since pool.Wait()
	// blocks until workers idle-exit, which is unsuitable at frame rate.
	var wg sync.WaitGroup
	for i, p := range s.populations {
		wg.Add(1)
		pCap := p
		s.computePool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				pCap.PrepareFrame(elapsed, deltaTime)
				return nil, nil
			},
		})
	}
	wg.Wait()

	// Phase 2: coalesce every staged write into one batch. The camera
	// uniform rides along with the population writes.
	s.writePool = s.writePool[:0]
	uniform := s.cam.GPUUniform()
	uniform.MarshalInto(s.cameraUniformData)
	s.writePool = append(s.writePool, bind_group_provider.BufferWrite{
		Provider: s.cam.BindGroupProvider(),
		Binding:  0,
		Data:     s.cameraUniformData,
	})
	for _, p := range s.populations {
		s.writePool = append(s.writePool, p.Flush()...)
	}
	s.r.WriteBuffers(s.writePool)
}

func (s *scene) DrawCalls() error {
	s.mu.RLock()
	pops := s.populations
	cameraProvider := s.cam.BindGroupProvider()
	s.mu.RUnlock()

	if s.r == nil {
		return fmt.Errorf("scene %q: no renderer attached", s.name)
	}

	for _, p := range pops {
		p.Draw(s.r, cameraProvider)
	}
	return nil
}
