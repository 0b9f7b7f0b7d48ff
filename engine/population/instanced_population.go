package population

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/evergreen-go/common"
	"github.com/Carmen-Shannon/evergreen-go/engine/camera"
	"github.com/Carmen-Shannon/evergreen-go/engine/model"
	"github.com/Carmen-Shannon/evergreen-go/engine/progress"
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer"
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer/bind_group_provider"
	"github.com/chewxy/math32"
)

// instancedBindingInstances is the storage binding carrying per-instance model
// matrices; instancedBindingMaterial is the per-layer material uniform.
const (
	instancedBindingInstances = 0
	instancedBindingMaterial  = 1
)

// instancedPopulation is the CPU-transform morph path for rigid meshes. Every
// frame it rebuilds one model matrix per entity into a reused staging buffer
// and stages a single coalesced write. A population may render several layers
// (sub-meshes with their own materials, like a box and its ribbons); every
// layer shares the same instance buffer so the transforms are computed and
// uploaded exactly once.
//
// Unlike the particle path, the rigid path interpolates on the raw damped
// progress without the cubic ease. The two paths settle at slightly different
// rates as a result; see TestRigidLerpIsLinearOnRawProgress.
type instancedPopulation struct {
	mu *sync.Mutex

	name        string
	store       *EntityStore
	ctrl        progress.Controller
	assembled   bool
	pipelineKey string

	layers         []model.Model
	layerProviders []bind_group_provider.BindGroupProvider

	progressOptions []progress.ControllerBuilderOption
	staging         []byte
	matrix          [16]float32
	writes          []bind_group_provider.BufferWrite
}

var _ Population = &instancedPopulation{}

// NewInstancedPopulation creates a rigid instanced population over the given
// entity store. Each layer is drawn once per frame with the shared instance
// transforms and its own material.
//
// Parameters:
//   - name: the population identifier
//   - store: the immutable entity store; must be non-nil
//   - layers: the sub-meshes to draw per instance; at least one, each with a material
//   - options: functional options for pipeline key, progress tuning, and initial state
//
// Returns:
//   - Population: the configured population
//   - error: an error if the store or layers are invalid
func NewInstancedPopulation(name string, store *EntityStore, layers []model.Model, options ...InstancedPopulationOption) (Population, error) {
	if store == nil {
		return nil, fmt.Errorf("population %q: entity store is required", name)
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("population %q: at least one model layer is required", name)
	}
	for i, layer := range layers {
		if layer == nil {
			return nil, fmt.Errorf("population %q: layer %d is nil", name, i)
		}
		if layer.RenderMaterial() == nil {
			return nil, fmt.Errorf("population %q: layer %q has no material", name, layer.Name())
		}
	}

	p := &instancedPopulation{
		mu:          &sync.Mutex{},
		name:        name,
		store:       store,
		pipelineKey: "instanced",
		layers:      layers,
		staging:     make([]byte, store.Count()*(&model.GPUModelData{}).Size()),
	}

	p.layerProviders = make([]bind_group_provider.BindGroupProvider, len(layers))
	for i, layer := range layers {
		p.layerProviders[i] = bind_group_provider.NewBindGroupProvider(fmt.Sprintf("%s_layer%d", name, i))
		if layer.MeshProvider() == nil {
			layer.SetMeshProvider(bind_group_provider.NewBindGroupProvider(fmt.Sprintf("%s_mesh%d", name, i)))
		}
	}

	for _, opt := range options {
		opt(p)
	}
	p.ctrl = progress.NewController(p.progressOptions...)
	p.assembled = p.ctrl.Goal() == 1

	// Transforms are shared across layers, so one staged write covers all of
	// them. Reused every frame.
	p.writes = []bind_group_provider.BufferWrite{{
		Provider: p.layerProviders[0],
		Binding:  instancedBindingInstances,
		Data:     p.staging,
	}}

	return p, nil
}

func (p *instancedPopulation) Name() string {
	return p.name
}

func (p *instancedPopulation) Count() int {
	return p.store.Count()
}

func (p *instancedPopulation) SetAssembled(assembled bool) {
	p.mu.Lock()
	p.assembled = assembled
	p.mu.Unlock()
	p.ctrl.SetAssembled(assembled)
}

func (p *instancedPopulation) Assembled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.assembled
}

func (p *instancedPopulation) Progress() float32 {
	return p.ctrl.Value()
}

func (p *instancedPopulation) InitGPU(r renderer.Renderer, cameraProvider bind_group_provider.BindGroupProvider) error {
	pipe := r.Pipeline(p.pipelineKey)
	if pipe == nil {
		return fmt.Errorf("population %q: pipeline %q is not registered", p.name, p.pipelineKey)
	}

	layout := renderer.MergedBindGroupLayout(pipe, 1)
	params := p.layers[0].RenderMaterial().GPUParams()
	materialSize := uint64(params.Size())

	for i, layer := range p.layers {
		if err := r.InitMeshBuffers(layer.MeshProvider(), layer.VertexData(), layer.IndexData(), layer.IndexCount()); err != nil {
			return fmt.Errorf("population %q: mesh init for layer %q failed: %w", p.name, layer.Name(), err)
		}

		// Layers past the first reuse the instance buffer created for layer
		// zero; InitBindGroup only creates buffers that are still missing.
		if i > 0 {
			p.layerProviders[i].SetBuffer(instancedBindingInstances, p.layerProviders[0].Buffer(instancedBindingInstances))
		}
		if err := r.InitBindGroup(p.layerProviders[i], layout, nil, map[int]uint64{
			instancedBindingInstances: uint64(len(p.staging)),
			instancedBindingMaterial:  materialSize,
		}); err != nil {
			return fmt.Errorf("population %q: bind group init for layer %q failed: %w", p.name, layer.Name(), err)
		}
	}

	cameraSize := (&camera.GPUCameraUniform{}).Size()
	if err := r.InitBindGroup(cameraProvider, renderer.MergedBindGroupLayout(pipe, 0), nil, map[int]uint64{
		0: uint64(cameraSize),
	}); err != nil {
		return fmt.Errorf("population %q: camera bind group init failed: %w", p.name, err)
	}

	// One-time upload of each layer's material parameters.
	materialWrites := make([]bind_group_provider.BufferWrite, 0, len(p.layers))
	for i, layer := range p.layers {
		params := layer.RenderMaterial().GPUParams()
		materialWrites = append(materialWrites, bind_group_provider.BufferWrite{
			Provider: p.layerProviders[i],
			Binding:  instancedBindingMaterial,
			Data:     params.Marshal(),
		})
	}
	r.WriteBuffers(materialWrites)

	return nil
}

func (p *instancedPopulation) PrepareFrame(elapsed, dt float32) {
	p.ctrl.Update(dt)
	current := p.ctrl.Value()

	p.mu.Lock()
	defer p.mu.Unlock()

	var data model.GPUModelData
	stride := data.Size()
	for i, e := range p.store.Entities() {
		px := common.Lerp(e.ScatteredPosition[0], e.AssembledPosition[0], current)
		py := common.Lerp(e.ScatteredPosition[1], e.AssembledPosition[1], current)
		pz := common.Lerp(e.ScatteredPosition[2], e.AssembledPosition[2], current)

		// Tumble fades out as the entity approaches home; past the settle
		// threshold orientation snaps to the fixed resting yaw so settled
		// entities are rock steady.
		var pitch, yaw, roll, bob float32
		if current < settleThreshold {
			wobble := 1 - current
			spin := elapsed*e.Speed + e.Phase
			yaw = e.RestYaw + spin*wobble
			pitch = 0.6 * math32.Sin(spin) * wobble
			roll = 0.4 * math32.Sin(spin*0.8+e.Phase) * wobble
			bob = 0.2 * math32.Sin(spin) * wobble
		} else {
			yaw = e.RestYaw
		}

		// Breathing pulse continues even when settled.
		breathe := e.Scale * (0.95 + 0.05*math32.Sin(elapsed+e.Phase))

		common.BuildModelMatrix(p.matrix[:], px, py+bob, pz, pitch, yaw, roll, breathe, breathe, breathe)
		data.Model = p.matrix
		data.MarshalInto(p.staging[i*stride:])
	}
}

func (p *instancedPopulation) Flush() []bind_group_provider.BufferWrite {
	return p.writes
}

func (p *instancedPopulation) Draw(r renderer.Renderer, cameraProvider bind_group_provider.BindGroupProvider) {
	pipe := r.Pipeline(p.pipelineKey)
	if pipe == nil {
		return
	}
	count := uint32(p.store.Count())
	for i, layer := range p.layers {
		r.DrawCall(pipe, layer.MeshProvider(), count, []bind_group_provider.BindGroupProvider{
			cameraProvider,
			p.layerProviders[i],
		})
	}
}
