package scene

import (
	"testing"

	"github.com/Carmen-Shannon/evergreen-go/engine/camera"
	"github.com/Carmen-Shannon/evergreen-go/engine/population"
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer"
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/evergreen-go/engine/sampler"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRenderer records buffer write batches so scene ordering can be asserted
// without a GPU device.
type stubRenderer struct {
	writeBatches [][]bind_group_provider.BufferWrite
}

var _ renderer.Renderer = &stubRenderer{}

func (s *stubRenderer) Pipeline(key string) pipeline.Pipeline { return nil }
func (s *stubRenderer) RegisterPipeline(p pipeline.Pipeline) error {
	return nil
}
func (s *stubRenderer) Resize(width, height int)                  {}
func (s *stubRenderer) SetPresentMode(mode renderer.PresentMode)  {}
func (s *stubRenderer) BeginFrame() error                         { return nil }
func (s *stubRenderer) EndFrame()                                 {}
func (s *stubRenderer) Present()                                  {}
func (s *stubRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	return nil
}
func (s *stubRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error {
	return nil
}
func (s *stubRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	batch := make([]bind_group_provider.BufferWrite, len(writes))
	copy(batch, writes)
	s.writeBatches = append(s.writeBatches, batch)
}
func (s *stubRenderer) DrawCall(p pipeline.Pipeline, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) {
}

func testCamera() camera.Camera {
	return camera.NewCamera(camera.WithController(camera.NewOrbitController()))
}

func testPopulation(t *testing.T, name string, count int) population.Population {
	t.Helper()
	store, err := population.NewEntityStore(count,
		sampler.NewConeVolume(6, 2.5, sampler.WithSeed(1)),
		sampler.NewSphereVolume(10, sampler.WithSeed(2)),
		population.WithStoreSeed(3),
	)
	require.NoError(t, err)

	pop, err := population.NewParticlePopulation(name, store)
	require.NoError(t, err)
	return pop
}

func TestNewSceneRequiresCameraAndRenderer(t *testing.T) {
	assert.Panics(t, func() { NewScene("bad", nil, &stubRenderer{}) })
	assert.Panics(t, func() { NewScene("bad", testCamera(), nil) })
}

func TestSceneToggleFansOutToAllPopulations(t *testing.T) {
	a := testPopulation(t, "foliage", 8)
	b := testPopulation(t, "embers", 4)

	s := NewScene("tree", testCamera(), &stubRenderer{}, WithPopulations(a, b))
	assert.False(t, s.Assembled())
	assert.Equal(t, 12, s.Count())

	assembled := s.Toggle()
	assert.True(t, assembled)
	assert.True(t, s.Assembled())
	assert.True(t, a.Assembled())
	assert.True(t, b.Assembled())

	assert.False(t, s.Toggle())
	assert.False(t, a.Assembled())
	assert.False(t, b.Assembled())
}

func TestScenePopulationInheritsStateWhenAddedLate(t *testing.T) {
	s := NewScene("tree", testCamera(), &stubRenderer{}, WithAssembled(true))

	late := testPopulation(t, "ornaments", 3)
	require.False(t, late.Assembled())

	s.AddPopulation(late)
	assert.True(t, late.Assembled())
	assert.Same(t, late, s.Population("ornaments"))
	assert.Nil(t, s.Population("missing"))
}

func TestSceneUpdateCoalescesWritesIntoOneBatch(t *testing.T) {
	r := &stubRenderer{}
	a := testPopulation(t, "foliage", 8)
	b := testPopulation(t, "embers", 4)

	s := NewScene("tree", testCamera(), r,
		WithPopulations(a, b),
		WithComputeWorkers(2),
	)

	s.Update(1.0, 0.016)
	require.Len(t, r.writeBatches, 1, "all staged writes flush in a single batch")

	// Camera uniform first, then one morph uniform per particle population.
	batch := r.writeBatches[0]
	require.Len(t, batch, 3)
	assert.Same(t, s.Camera().BindGroupProvider(), batch[0].Provider)
	assert.Len(t, batch[0].Data, 80)
	assert.Len(t, batch[1].Data, 16)
	assert.Len(t, batch[2].Data, 16)

	// Per-frame updates reuse the same batch storage.
	s.Update(1.016, 0.016)
	require.Len(t, r.writeBatches, 2)
	assert.Len(t, r.writeBatches[1], 3)
}

func TestSceneUpdateAdvancesEveryPopulation(t *testing.T) {
	r := &stubRenderer{}
	a := testPopulation(t, "foliage", 8)
	b := testPopulation(t, "embers", 4)

	s := NewScene("tree", testCamera(), r, WithPopulations(a, b), WithComputeWorkers(3))
	s.SetAssembled(true)

	for i := 0; i < 60; i++ {
		s.Update(float32(i)*0.016, 0.016)
	}

	assert.Greater(t, a.Progress(), float32(0.4))
	assert.Greater(t, b.Progress(), float32(0.4))
	assert.InDelta(t, a.Progress(), b.Progress(), 1e-5, "identical controllers advance in lockstep")
}

func TestSceneDrawOrderMatchesRegistrationOrder(t *testing.T) {
	a := testPopulation(t, "foliage", 8)
	b := testPopulation(t, "embers", 4)
	c := testPopulation(t, "stars", 2)

	s := NewScene("tree", testCamera(), &stubRenderer{}, WithPopulations(a, b, c))

	pops := s.Populations()
	require.Len(t, pops, 3)
	assert.Equal(t, "foliage", pops[0].Name())
	assert.Equal(t, "embers", pops[1].Name())
	assert.Equal(t, "stars", pops[2].Name())
}
