package population

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/evergreen-go/common"
	"github.com/Carmen-Shannon/evergreen-go/engine/model"
	"github.com/Carmen-Shannon/evergreen-go/engine/progress"
	"github.com/Carmen-Shannon/evergreen-go/engine/renderer/material"
	"github.com/Carmen-Shannon/evergreen-go/engine/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatAt(data []byte, index int) float32 {
	off := index * 4
	bits := uint32(data[off]) | uint32(data[off+1])<<8 | uint32(data[off+2])<<16 | uint32(data[off+3])<<24
	return math.Float32frombits(bits)
}

func testStore(t *testing.T, count int) *EntityStore {
	t.Helper()
	store, err := NewEntityStore(count,
		sampler.NewConeVolume(6, 2.5, sampler.WithSeed(1)),
		sampler.NewSphereVolume(10, sampler.WithSeed(2)),
		WithStoreSeed(3),
	)
	require.NoError(t, err)
	return store
}

func testLayer(name string) model.Model {
	return model.NewBox(name, 0.4, 0.4, 0.4,
		model.WithRenderMaterial(material.NewMaterial(material.WithBaseColor([4]float32{0.8, 0.1, 0.1, 1}))))
}

func TestNewEntityStoreRejectsNonPositiveCount(t *testing.T) {
	cone := sampler.NewConeVolume(6, 2.5, sampler.WithSeed(1))
	sphere := sampler.NewSphereVolume(10, sampler.WithSeed(2))

	for _, count := range []int{0, -5} {
		_, err := NewEntityStore(count, cone, sphere)
		assert.Error(t, err)
	}
}

func TestNewEntityStoreRequiresSamplers(t *testing.T) {
	cone := sampler.NewConeVolume(6, 2.5, sampler.WithSeed(1))

	_, err := NewEntityStore(10, nil, cone)
	assert.Error(t, err)
	_, err = NewEntityStore(10, cone, nil)
	assert.Error(t, err)
}

func TestEntityStoreReproducibleWithSeed(t *testing.T) {
	build := func() *EntityStore {
		store, err := NewEntityStore(5,
			sampler.NewConeVolume(6, 2.5, sampler.WithSeed(11)),
			sampler.NewSphereVolume(10, sampler.WithSeed(12)),
			WithStoreSeed(13),
			WithPalette(FoliagePalette(4)),
		)
		require.NoError(t, err)
		return store
	}

	a, b := build(), build()
	require.Equal(t, a.Count(), b.Count())
	assert.Equal(t, a.Entities(), b.Entities())
}

func TestEntityStoreRangesAndPaletteCycle(t *testing.T) {
	palette := OrnamentPalette(3)
	store, err := NewEntityStore(7,
		sampler.NewConeVolume(6, 2.5, sampler.WithSeed(1)),
		sampler.NewSphereVolume(10, sampler.WithSeed(2)),
		WithStoreSeed(3),
		WithSpeedRange(0.5, 1.5),
		WithScaleRange(0.8, 1.2),
		WithPalette(palette),
	)
	require.NoError(t, err)

	entities := store.Entities()
	for i, e := range entities {
		assert.GreaterOrEqual(t, e.Speed, float32(0.5))
		assert.Less(t, e.Speed, float32(1.5))
		assert.GreaterOrEqual(t, e.Scale, float32(0.8))
		assert.Less(t, e.Scale, float32(1.2))
		assert.GreaterOrEqual(t, e.Randomness, float32(0))
		assert.Less(t, e.Randomness, float32(1))

		c := palette[i%len(palette)]
		assert.InDelta(t, float32(c.R), e.Color[0], 1e-6)
		assert.InDelta(t, float32(c.G), e.Color[1], 1e-6)
		assert.InDelta(t, float32(c.B), e.Color[2], 1e-6)
	}
}

func TestFoliageEmberOrnamentPalettes(t *testing.T) {
	for _, tc := range []struct {
		name string
		n    int
		got  int
	}{
		{"foliage", 6, len(FoliagePalette(6))},
		{"ember", 4, len(EmberPalette(4))},
		{"ornament", 8, len(OrnamentPalette(8))},
	} {
		assert.Equal(t, tc.n, tc.got, tc.name)
	}

	for _, c := range FoliagePalette(6) {
		r, g, b := c.Clamped().RGB255()
		// Foliage stays green-dominant across the ramp.
		assert.GreaterOrEqual(t, g, r)
		assert.GreaterOrEqual(t, g, b)
	}
}

func TestParticlePopulationRequiresStore(t *testing.T) {
	_, err := NewParticlePopulation("foliage", nil)
	assert.Error(t, err)
}

func TestParticleProgressConvergesAfterSixTimeConstants(t *testing.T) {
	pop, err := NewParticlePopulation("foliage", testStore(t, 16))
	require.NoError(t, err)

	assert.False(t, pop.Assembled())
	assert.Zero(t, pop.Progress())

	pop.SetAssembled(true)
	elapsed := float32(0)
	for elapsed < 6*1.2 {
		pop.PrepareFrame(elapsed, 0.016)
		elapsed += 0.016
	}

	assert.True(t, pop.Assembled())
	assert.Greater(t, pop.Progress(), float32(0.99))
	assert.LessOrEqual(t, pop.Progress(), float32(1))
}

func TestParticleProgressIgnoresBadDeltaTime(t *testing.T) {
	pop, err := NewParticlePopulation("foliage", testStore(t, 8))
	require.NoError(t, err)

	pop.SetAssembled(true)
	pop.PrepareFrame(0, 0.5)
	before := pop.Progress()
	require.Greater(t, before, float32(0))

	for _, dt := range []float32{0, -1, float32(math.NaN()), float32(math.Inf(1))} {
		pop.PrepareFrame(1, dt)
		assert.Equal(t, before, pop.Progress())
	}
}

func TestParticleToggleMidFlightRetargetsWithoutJump(t *testing.T) {
	pop, err := NewParticlePopulation("foliage", testStore(t, 8))
	require.NoError(t, err)

	pop.SetAssembled(true)
	for i := 0; i < 30; i++ {
		pop.PrepareFrame(float32(i)*0.016, 0.016)
	}
	mid := pop.Progress()
	require.Greater(t, mid, float32(0))
	require.Less(t, mid, float32(1))

	pop.SetAssembled(false)
	assert.Equal(t, mid, pop.Progress(), "retargeting must not move the value")

	pop.PrepareFrame(1, 0.016)
	assert.Less(t, pop.Progress(), mid, "value now damps back toward scattered")
}

func TestParticleFlushStagesOnlyTheMorphUniform(t *testing.T) {
	pop, err := NewParticlePopulation("foliage", testStore(t, 8))
	require.NoError(t, err)

	pop.SetAssembled(true)
	pop.PrepareFrame(3, 0.25)

	writes := pop.Flush()
	require.Len(t, writes, 1)
	assert.Equal(t, particleBindingMorph, writes[0].Binding)
	require.Len(t, writes[0].Data, 16)

	assert.InDelta(t, 3.0, floatAt(writes[0].Data, 0), 1e-6)
	assert.InDelta(t, pop.Progress(), floatAt(writes[0].Data, 1), 1e-6)

	// The staged slice is reused between frames, never reallocated.
	first := writes[0].Data
	pop.PrepareFrame(3.25, 0.25)
	again := pop.Flush()
	require.Len(t, again, 1)
	assert.Same(t, &first[0], &again[0].Data[0])
	assert.InDelta(t, 3.25, floatAt(again[0].Data, 0), 1e-6)
}

func TestParticleStartsAssembledWithInitialState(t *testing.T) {
	pop, err := NewParticlePopulation("foliage", testStore(t, 8),
		WithParticleInitialState(true),
		WithParticleTimeConstant(1.0),
	)
	require.NoError(t, err)

	assert.True(t, pop.Assembled())
	assert.Equal(t, float32(1), pop.Progress())

	// At rest on the goal, updates are no-ops.
	pop.PrepareFrame(0, 0.016)
	assert.Equal(t, float32(1), pop.Progress())
}

func TestInstancedPopulationValidation(t *testing.T) {
	store := testStore(t, 4)
	layer := testLayer("box")

	_, err := NewInstancedPopulation("gifts", nil, []model.Model{layer})
	assert.Error(t, err)

	_, err = NewInstancedPopulation("gifts", store, nil)
	assert.Error(t, err)

	bare := model.NewBox("bare", 1, 1, 1)
	_, err = NewInstancedPopulation("gifts", store, []model.Model{bare})
	assert.Error(t, err, "layers without materials are rejected")
}

func TestRigidLerpIsLinearOnRawProgress(t *testing.T) {
	// Phase, speed, and rest yaw are zeroed so at elapsed = 0 the transform
	// reduces to translation plus the breathing scale.
	store := &EntityStore{entities: []Entity{{
		AssembledPosition: [3]float32{1, 5, -2},
		ScatteredPosition: [3]float32{-7, 0, 4},
		Speed:             1,
		Scale:             1,
	}}}

	pop, err := NewInstancedPopulation("gifts", store, []model.Model{testLayer("box")})
	require.NoError(t, err)

	pop.SetAssembled(true)
	pop.PrepareFrame(0, 0.5)
	raw := pop.Progress()
	require.Greater(t, raw, float32(0.2))
	require.Less(t, raw, float32(0.5))

	writes := pop.Flush()
	require.Len(t, writes, 1)
	data := writes[0].Data
	require.Len(t, data, 64)

	e := store.Entities()[0]
	assert.InDelta(t, common.Lerp(e.ScatteredPosition[0], e.AssembledPosition[0], raw), floatAt(data, 12), 1e-5)
	assert.InDelta(t, common.Lerp(e.ScatteredPosition[1], e.AssembledPosition[1], raw), floatAt(data, 13), 1e-5)
	assert.InDelta(t, common.Lerp(e.ScatteredPosition[2], e.AssembledPosition[2], raw), floatAt(data, 14), 1e-5)

	// The particle path eases this same raw value in the shader; the rigid
	// path does not, so mid-flight the two diverge on purpose.
	assert.Greater(t, float32(math.Abs(float64(progress.EaseInOutCubic(raw)-raw))), float32(0.01))
}

func TestRigidSettlesToRestYawAndStaysPut(t *testing.T) {
	store := &EntityStore{entities: []Entity{{
		AssembledPosition: [3]float32{2, 3, 1},
		ScatteredPosition: [3]float32{-8, -1, 6},
		Speed:             1.3,
		Scale:             1.1,
		Phase:             0.9,
		RestYaw:           0.7,
	}}}

	pop, err := NewInstancedPopulation("gifts", store, []model.Model{testLayer("box")},
		WithInstancedInitialState(true))
	require.NoError(t, err)
	require.Equal(t, float32(1), pop.Progress())

	e := store.Entities()[0]
	for _, elapsed := range []float32{0.5, 2.0, 7.3} {
		pop.PrepareFrame(elapsed, 0.016)
		data := pop.Flush()[0].Data

		breathe := e.Scale * (0.95 + 0.05*float32(math.Sin(float64(elapsed+e.Phase))))
		var expected [16]float32
		common.BuildModelMatrix(expected[:], e.AssembledPosition[0], e.AssembledPosition[1], e.AssembledPosition[2],
			0, e.RestYaw, 0, breathe, breathe, breathe)

		for i := 0; i < 16; i++ {
			assert.InDelta(t, expected[i], floatAt(data, i), 1e-4, "matrix element %d at elapsed %.1f", i, elapsed)
		}
	}
}

func TestRigidTumbleFadesWithProgress(t *testing.T) {
	store := &EntityStore{entities: []Entity{{
		AssembledPosition: [3]float32{0, 4, 0},
		ScatteredPosition: [3]float32{5, 0, -5},
		Speed:             1,
		Scale:             1,
		Phase:             0.3,
		RestYaw:           1.1,
	}}}

	pop, err := NewInstancedPopulation("gifts", store, []model.Model{testLayer("box")})
	require.NoError(t, err)

	// Fully scattered: the tumble term spins yaw well away from the rest yaw,
	// and the position sits exactly on the scattered endpoint (Lerp at t = 0
	// returns it bit-exactly; only y carries the bob offset).
	pop.PrepareFrame(4, 0.001)
	scatteredData := make([]byte, 64)
	copy(scatteredData, pop.Flush()[0].Data)
	e0 := store.Entities()[0]
	assert.Equal(t, e0.ScatteredPosition[0], floatAt(scatteredData, 12))
	assert.Equal(t, e0.ScatteredPosition[2], floatAt(scatteredData, 14))

	pop.SetAssembled(true)
	elapsed := float32(0)
	for elapsed < 12 {
		pop.PrepareFrame(4, 0.016)
		elapsed += 0.016
	}
	require.Greater(t, pop.Progress(), float32(settleThreshold))
	settledData := pop.Flush()[0].Data

	// Same elapsed time, but the settled matrix has shed the tumble rotation.
	e := store.Entities()[0]
	breathe := e.Scale * (0.95 + 0.05*float32(math.Sin(float64(4+e.Phase))))
	var expected [16]float32
	common.BuildModelMatrix(expected[:], e.AssembledPosition[0], e.AssembledPosition[1], e.AssembledPosition[2],
		0, e.RestYaw, 0, breathe, breathe, breathe)

	for i := 0; i < 16; i++ {
		assert.InDelta(t, expected[i], floatAt(settledData, i), 1e-3)
	}
	assert.Greater(t, math.Abs(float64(floatAt(scatteredData, 0)-floatAt(settledData, 0))), 1e-3,
		"rotation differs between tumbling and settled states")
}

func TestRigidLayersShareOneInstanceWrite(t *testing.T) {
	store := testStore(t, 6)
	layers := []model.Model{testLayer("box"), testLayer("ribbon_x"), testLayer("ribbon_z")}

	pop, err := NewInstancedPopulation("gifts", store, layers)
	require.NoError(t, err)

	pop.PrepareFrame(1, 0.016)
	writes := pop.Flush()
	require.Len(t, writes, 1, "transforms upload once regardless of layer count")
	assert.Equal(t, instancedBindingInstances, writes[0].Binding)
	assert.Len(t, writes[0].Data, 6*64)

	first := writes[0].Data
	pop.PrepareFrame(1.016, 0.016)
	assert.Same(t, &first[0], &pop.Flush()[0].Data[0])
}

func TestTopperRequiresSampler(t *testing.T) {
	_, err := NewTopper("topper", [3]float32{0, 6, 0}, nil, []model.Model{testLayer("star")})
	assert.Error(t, err)
}

func TestTopperComesHomeToAnchor(t *testing.T) {
	anchor := [3]float32{0, 6.2, 0}
	pop, err := NewTopper("topper", anchor,
		sampler.NewSphereVolume(10, sampler.WithSeed(5)),
		[]model.Model{testLayer("star")},
		WithInstancedInitialState(true))
	require.NoError(t, err)

	assert.Equal(t, 1, pop.Count())
	require.Equal(t, float32(1), pop.Progress())

	pop.PrepareFrame(3.7, 0.016)
	data := pop.Flush()[0].Data
	require.Len(t, data, 64)

	assert.InDelta(t, anchor[0], floatAt(data, 12), 1e-5)
	assert.InDelta(t, anchor[1], floatAt(data, 13), 1e-5)
	assert.InDelta(t, anchor[2], floatAt(data, 14), 1e-5)

	// Zero rest yaw: the rotation block is a pure breathing scale.
	breathe := 0.95 + 0.05*float32(math.Sin(3.7))
	assert.InDelta(t, breathe, floatAt(data, 0), 1e-5)
	assert.InDelta(t, breathe, floatAt(data, 5), 1e-5)
	assert.InDelta(t, breathe, floatAt(data, 10), 1e-5)
	assert.InDelta(t, 0, floatAt(data, 1), 1e-5)
	assert.InDelta(t, 0, floatAt(data, 4), 1e-5)
}

func TestPopulationNamesAndCounts(t *testing.T) {
	store := testStore(t, 12)

	particle, err := NewParticlePopulation("foliage", store)
	require.NoError(t, err)
	assert.Equal(t, "foliage", particle.Name())
	assert.Equal(t, 12, particle.Count())

	rigid, err := NewInstancedPopulation("gifts", store, []model.Model{testLayer("box")},
		WithInstancedPipelineKey("instanced"))
	require.NoError(t, err)
	assert.Equal(t, "gifts", rigid.Name())
	assert.Equal(t, 12, rigid.Count())
}

func TestGPUParticleAttrRoundTrip(t *testing.T) {
	attr := GPUParticleAttr{
		Assembled:  [3]float32{1, 2, 3},
		Randomness: 0.25,
		Scattered:  [3]float32{-4, -5, -6},
		Speed:      1.5,
		Color:      [3]float32{0.1, 0.9, 0.2},
		Scale:      1.1,
		Phase:      2.2,
		Seed:       0.25,
	}
	require.Equal(t, 64, attr.Size())

	buf := attr.Marshal()
	require.Len(t, buf, 64)
	assert.Equal(t, float32(1), floatAt(buf, 0))
	assert.Equal(t, float32(0.25), floatAt(buf, 3))
	assert.Equal(t, float32(-4), floatAt(buf, 4))
	assert.Equal(t, float32(1.5), floatAt(buf, 7))
	assert.Equal(t, float32(0.9), floatAt(buf, 9))
	assert.Equal(t, float32(2.2), floatAt(buf, 12))
}
