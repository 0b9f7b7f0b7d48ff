package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = 7
	}
	Identity(m)
	for i := range m {
		if i%5 == 0 {
			assert.Equal(t, float32(1), m[i], "diagonal element %d", i)
		} else {
			assert.Equal(t, float32(0), m[i], "off-diagonal element %d", i)
		}
	}
}

func TestMul4IdentityIsNoOp(t *testing.T) {
	id := make([]float32, 16)
	Identity(id)

	m := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	out := make([]float32, 16)
	Mul4(out, id, m)
	assert.Equal(t, m, out)

	Mul4(out, m, id)
	assert.Equal(t, m, out)
}

func TestMul4Aliasing(t *testing.T) {
	a := make([]float32, 16)
	BuildModelMatrix(a, 1, 2, 3, 0.1, 0.2, 0.3, 1, 1, 1)
	b := make([]float32, 16)
	BuildModelMatrix(b, -4, 0, 2, 0, 0.5, 0, 2, 2, 2)

	want := make([]float32, 16)
	Mul4(want, a, b)

	// out aliasing the left operand must produce the same result.
	got := make([]float32, 16)
	copy(got, a)
	Mul4(got, got, b)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "element %d", i)
	}
}

func TestBuildModelMatrixTranslationOnly(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 3, -2, 5, 0, 0, 0, 1, 1, 1)

	assert.Equal(t, float32(3), m[12])
	assert.Equal(t, float32(-2), m[13])
	assert.Equal(t, float32(5), m[14])
	// Rotation block should be identity.
	assert.Equal(t, float32(1), m[0])
	assert.Equal(t, float32(1), m[5])
	assert.Equal(t, float32(1), m[10])
}

func TestBuildModelMatrixScale(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 0, 0, 0, 0, 0, 0, 2, 3, 4)
	assert.Equal(t, float32(2), m[0])
	assert.Equal(t, float32(3), m[5])
	assert.Equal(t, float32(4), m[10])
}

func TestBuildModelMatrixYawRotatesX(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 0, 0, 0, 0, math32.Pi/2, 0, 1, 1, 1)

	// Transform the +X basis vector; a 90° yaw should map it near -Z.
	x := m[0]*1 + m[4]*0 + m[8]*0 + m[12]
	y := m[1]*1 + m[5]*0 + m[9]*0 + m[13]
	z := m[2]*1 + m[6]*0 + m[10]*0 + m[14]
	assert.InDelta(t, 0, x, 1e-5)
	assert.InDelta(t, 0, y, 1e-5)
	assert.InDelta(t, -1, z, 1e-5)
}

func TestInvert4RoundTrip(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 1, 2, 3, 0.3, 0.7, 0.1, 1.5, 1.5, 1.5)

	inv := make([]float32, 16)
	require.True(t, Invert4(inv, m))

	out := make([]float32, 16)
	Mul4(out, m, inv)
	for i := range out {
		want := float32(0)
		if i%5 == 0 {
			want = 1
		}
		assert.InDelta(t, want, out[i], 1e-4, "element %d", i)
	}
}

func TestInvert4Singular(t *testing.T) {
	m := make([]float32, 16) // all zeros, determinant 0
	out := make([]float32, 16)
	assert.False(t, Invert4(out, m))
}

func TestLookAtEyeMapsToOrigin(t *testing.T) {
	v := make([]float32, 16)
	LookAt(v, 3, 4, 5, 0, 0, 0, 0, 1, 0)

	// The eye position must transform to the view-space origin.
	x := v[0]*3 + v[4]*4 + v[8]*5 + v[12]
	y := v[1]*3 + v[5]*4 + v[9]*5 + v[13]
	z := v[2]*3 + v[6]*4 + v[10]*5 + v[14]
	assert.InDelta(t, 0, x, 1e-5)
	assert.InDelta(t, 0, y, 1e-5)
	assert.InDelta(t, 0, z, 1e-5)
}

func TestPerspectiveDepthRange(t *testing.T) {
	p := make([]float32, 16)
	Perspective(p, math32.Pi/4, 16.0/9.0, 0.1, 100)

	// A point on the near plane should project to z/w = 0 (WebGPU clip space).
	z := p[10]*(-0.1) + p[14]
	w := p[11] * (-0.1)
	assert.InDelta(t, 0, z/w, 1e-5)

	// A point on the far plane should project to z/w = 1.
	z = p[10]*(-100) + p[14]
	w = p[11] * (-100)
	assert.InDelta(t, 1, z/w, 1e-4)
}

func TestLerpBoundariesExact(t *testing.T) {
	a := float32(1.2345678)
	b := float32(-9.87654)
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.InDelta(t, (a+b)/2, Lerp(a, b, 0.5), 1e-5)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0), Clamp(-1, 0, 1))
	assert.Equal(t, float32(1), Clamp(2, 0, 1))
	assert.Equal(t, float32(0.5), Clamp(0.5, 0, 1))
}

func TestSliceToBytesLength(t *testing.T) {
	data := []float32{1, 2, 3, 4}
	b := SliceToBytes(data)
	require.Len(t, b, 16)
	assert.Nil(t, SliceToBytes([]float32{}))
}

