package model

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitQuadGeometry(t *testing.T) {
	m := NewUnitQuad("quad")
	assert.Equal(t, 6, m.IndexCount())
	assert.Len(t, m.VertexData(), 4*24)
	assert.InDelta(t, math32.Sqrt(0.5), m.BoundingRadius(), 1e-6)
}

func TestBoxGeometry(t *testing.T) {
	m := NewBox("present", 2, 1, 1)
	assert.Equal(t, 36, m.IndexCount())
	assert.Len(t, m.VertexData(), 24*24)

	// Corner (1, 0.5, 0.5) is the farthest point from the origin.
	expected := math32.Sqrt(1 + 0.25 + 0.25)
	assert.InDelta(t, expected, m.BoundingRadius(), 1e-6)

	assert.Panics(t, func() { NewBox("bad", 0, 1, 1) })
}

func TestUVSphereGeometry(t *testing.T) {
	m := NewUVSphere("ornament", 0.5, 16, 8)
	assert.Equal(t, 8*16*6, m.IndexCount())
	assert.InDelta(t, 0.5, m.BoundingRadius(), 1e-5)

	assert.Panics(t, func() { NewUVSphere("bad", 1, 2, 8) })
	assert.Panics(t, func() { NewUVSphere("bad", -1, 16, 8) })
}

func TestOctahedronGeometry(t *testing.T) {
	m := NewOctahedron("diamond", 1, 2)
	// 8 flat faces, 3 unique vertices each.
	assert.Equal(t, 24, m.IndexCount())
	assert.Len(t, m.VertexData(), 24*24)
	assert.InDelta(t, 1.0, m.BoundingRadius(), 1e-6)
}

func TestOctahedronNormalsPointOutward(t *testing.T) {
	m := NewOctahedron("diamond", 1, 1)
	data := m.VertexData()
	require.Len(t, data, 24*24)

	// Every face normal should point away from the origin relative to the
	// face's vertices.
	for face := 0; face < 8; face++ {
		var cx, cy, cz float32
		var n [3]float32
		for v := 0; v < 3; v++ {
			vert := unmarshalVertex(data, face*3+v)
			cx += vert.Position[0] / 3
			cy += vert.Position[1] / 3
			cz += vert.Position[2] / 3
			n = vert.Normal
		}
		dot := cx*n[0] + cy*n[1] + cz*n[2]
		assert.Greater(t, dot, float32(0), "face %d normal points inward", face)
	}
}

func TestStarPrismGeometry(t *testing.T) {
	m := NewStarPrism("topper", 5, 1.0, 0.45, 0.3)
	// 10 outline points: 2 caps of 10 triangles each + 10 side quads.
	assert.Equal(t, 10*3*2+10*6, m.IndexCount())
	assert.InDelta(t, math32.Sqrt(1+0.15*0.15), m.BoundingRadius(), 1e-5)

	assert.Panics(t, func() { NewStarPrism("bad", 2, 1, 0.5, 0.3) })
	assert.Panics(t, func() { NewStarPrism("bad", 5, 0.5, 1, 0.3) })
}

func TestMarshalRoundtripOffsets(t *testing.T) {
	v := GPUVertex{Position: [3]float32{1, 2, 3}, Normal: [3]float32{0, 1, 0}}
	buf := v.Marshal()
	require.Len(t, buf, 24)
	assert.Equal(t, 24, v.Size())

	got := unmarshalVertex(buf, 0)
	assert.Equal(t, v, got)
}

func TestMarshalIndices(t *testing.T) {
	buf := MarshalIndices([]uint32{0, 1, 2})
	require.Len(t, buf, 12)
	assert.Equal(t, byte(1), buf[4])
}

func TestModelDataMarshal(t *testing.T) {
	d := GPUModelData{}
	for i := range d.Model {
		d.Model[i] = float32(i)
	}
	buf := d.Marshal()
	require.Len(t, buf, 64)
	assert.Equal(t, 64, d.Size())
}

// unmarshalVertex reads the vertex at the given index out of packed vertex data.
func unmarshalVertex(data []byte, index int) GPUVertex {
	var v GPUVertex
	base := index * 24
	read := func(offset int) float32 {
		bits := uint32(data[base+offset]) |
			uint32(data[base+offset+1])<<8 |
			uint32(data[base+offset+2])<<16 |
			uint32(data[base+offset+3])<<24
		return math32.Float32frombits(bits)
	}
	for i := 0; i < 3; i++ {
		v.Position[i] = read(i * 4)
		v.Normal[i] = read(12 + i*4)
	}
	return v
}
