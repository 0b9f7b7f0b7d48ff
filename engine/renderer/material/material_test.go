package material

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUParamsPacksEmissiveStrength(t *testing.T) {
	m := NewMaterial(
		WithName("ember"),
		WithBaseColor([4]float32{0.2, 0.4, 0.6, 1.0}),
		WithEmissive([3]float32{1.0, 0.5, 0.1}, 2.5),
	)

	params := m.GPUParams()
	assert.Equal(t, [4]float32{0.2, 0.4, 0.6, 1.0}, params.BaseColor)
	assert.Equal(t, [4]float32{1.0, 0.5, 0.1, 2.5}, params.EmissiveColor)
	assert.Equal(t, 32, params.Size())
	assert.Len(t, params.Marshal(), 32)
}

func TestWithColorFromHex(t *testing.T) {
	c, err := colorful.Hex("#2e6e3f")
	require.NoError(t, err)

	m := NewMaterial(WithColor(c, 1.0))
	base := m.BaseColor()
	assert.InDelta(t, 0.18, base[0], 0.01)
	assert.InDelta(t, 0.43, base[1], 0.01)
	assert.InDelta(t, 0.25, base[2], 0.01)
	assert.Equal(t, float32(1.0), base[3])
}

func TestDefaultsAndMutableGPURefs(t *testing.T) {
	m := NewMaterial(WithName("plain"))
	assert.Equal(t, [4]float32{1, 1, 1, 1}, m.BaseColor())
	assert.Zero(t, m.EmissiveStrength())
	assert.Empty(t, m.PipelineKey())

	m.SetPipelineKey("instanced")
	assert.Equal(t, "instanced", m.PipelineKey())
}
