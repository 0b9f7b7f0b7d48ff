package population

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/evergreen-go/engine/camera"
	"github.com/Carmen-Shannon/evergreen-go/engine/model"
	"github.com/Carmen-Shannon/evergreen-go/engine/progress"
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer"
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer/bind_group_provider"
)

// particleBindingAttrs is the storage binding carrying immutable per-entity
// attributes; particleBindingMorph is the per-frame morph uniform.
const (
	particleBindingAttrs = 0
	particleBindingMorph = 1
)

// particlePopulation is the shader-driven morph path. The entity attributes
// are uploaded to a read-only storage buffer once at init; after that the
// only per-frame GPU traffic is one 16-byte MorphUniform write. Easing,
// jitter, twinkle, and the sprite silhouette all run in WGSL.
type particlePopulation struct {
	mu *sync.Mutex

	name        string
	store       *EntityStore
	ctrl        progress.Controller
	assembled   bool
	pipelineKey string

	quad     model.Model
	provider bind_group_provider.BindGroupProvider

	progressOptions []progress.ControllerBuilderOption
	uniformData     []byte
	writes          []bind_group_provider.BufferWrite
}

var _ Population = &particlePopulation{}

// NewParticlePopulation creates a shader-driven particle population over the
// given entity store.
//
// Parameters:
//   - name: the population identifier
//   - store: the immutable entity store; must be non-nil
//   - options: functional options for pipeline key, progress tuning, and initial state
//
// Returns:
//   - Population: the configured population
//   - error: an error if the store is missing
func NewParticlePopulation(name string, store *EntityStore, options ...ParticlePopulationOption) (Population, error) {
	if store == nil {
		return nil, fmt.Errorf("population %q: entity store is required", name)
	}

	p := &particlePopulation{
		mu:          &sync.Mutex{},
		name:        name,
		store:       store,
		pipelineKey: "particle",
		quad: model.NewUnitQuad(name+"_quad",
			model.WithMeshProvider(bind_group_provider.NewBindGroupProvider(name+"_mesh"))),
		provider:    bind_group_provider.NewBindGroupProvider(name),
		uniformData: make([]byte, 16),
	}

	for _, opt := range options {
		opt(p)
	}
	p.ctrl = progress.NewController(p.progressOptions...)
	p.assembled = p.ctrl.Goal() == 1

	// Single staged write, reused every frame.
	p.writes = []bind_group_provider.BufferWrite{{
		Provider: p.provider,
		Binding:  particleBindingMorph,
		Data:     p.uniformData,
	}}

	return p, nil
}

func (p *particlePopulation) Name() string {
	return p.name
}

func (p *particlePopulation) Count() int {
	return p.store.Count()
}

func (p *particlePopulation) SetAssembled(assembled bool) {
	p.mu.Lock()
	p.assembled = assembled
	p.mu.Unlock()
	p.ctrl.SetAssembled(assembled)
}

func (p *particlePopulation) Assembled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.assembled
}

func (p *particlePopulation) Progress() float32 {
	return p.ctrl.Value()
}

func (p *particlePopulation) InitGPU(r renderer.Renderer, cameraProvider bind_group_provider.BindGroupProvider) error {
	pipe := r.Pipeline(p.pipelineKey)
	if pipe == nil {
		return fmt.Errorf("population %q: pipeline %q is not registered", p.name, p.pipelineKey)
	}

	if err := r.InitMeshBuffers(p.quad.MeshProvider(), p.quad.VertexData(), p.quad.IndexData(), p.quad.IndexCount()); err != nil {
		return fmt.Errorf("population %q: mesh init failed: %w", p.name, err)
	}

	attrSize := (&GPUParticleAttr{}).Size()
	if err := r.InitBindGroup(p.provider, renderer.MergedBindGroupLayout(pipe, 1), nil, map[int]uint64{
		particleBindingAttrs: uint64(p.store.Count() * attrSize),
		particleBindingMorph: uint64(len(p.uniformData)),
	}); err != nil {
		return fmt.Errorf("population %q: bind group init failed: %w", p.name, err)
	}

	cameraSize := (&camera.GPUCameraUniform{}).Size()
	if err := r.InitBindGroup(cameraProvider, renderer.MergedBindGroupLayout(pipe, 0), nil, map[int]uint64{
		0: uint64(cameraSize),
	}); err != nil {
		return fmt.Errorf("population %q: camera bind group init failed: %w", p.name, err)
	}

	// One-time upload of the immutable attribute array.
	data := make([]byte, p.store.Count()*attrSize)
	for i, e := range p.store.Entities() {
		attr := GPUParticleAttr{
			Assembled:  e.AssembledPosition,
			Randomness: e.Randomness,
			Scattered:  e.ScatteredPosition,
			Speed:      e.Speed,
			Color:      e.Color,
			Scale:      e.Scale,
			Phase:      e.Phase,
			Seed:       e.Randomness,
		}
		attr.MarshalInto(data[i*attrSize:])
	}
	r.WriteBuffers([]bind_group_provider.BufferWrite{{
		Provider: p.provider,
		Binding:  particleBindingAttrs,
		Data:     data,
	}})

	return nil
}

func (p *particlePopulation) PrepareFrame(elapsed, dt float32) {
	p.ctrl.Update(dt)

	uniform := GPUMorphUniform{
		Time:     elapsed,
		Progress: p.ctrl.Value(),
	}
	uniform.MarshalInto(p.uniformData)
}

func (p *particlePopulation) Flush() []bind_group_provider.BufferWrite {
	return p.writes
}

func (p *particlePopulation) Draw(r renderer.Renderer, cameraProvider bind_group_provider.BindGroupProvider) {
	pipe := r.Pipeline(p.pipelineKey)
	if pipe == nil {
		return
	}
	r.DrawCall(pipe, p.quad.MeshProvider(), uint32(p.store.Count()), []bind_group_provider.BindGroupProvider{
		cameraProvider,
		p.provider,
	})
}
