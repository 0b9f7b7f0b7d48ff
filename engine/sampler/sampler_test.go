package sampler

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphereVolumeRadialDistribution(t *testing.T) {
	const (
		n         = 20000
		maxRadius = float32(5)
	)
	s := NewSphereVolume(maxRadius, WithSeed(42))

	// For uniform volumetric density the radial CDF is (r/R)³. Check the
	// empirical CDF at a few fixed fractions of the radius.
	checkpoints := []float32{0.25, 0.5, 0.75, 0.9}
	counts := make([]int, len(checkpoints))

	for i := 0; i < n; i++ {
		x, y, z := s.Sample()
		r := math32.Sqrt(x*x + y*y + z*z)
		require.LessOrEqual(t, r, maxRadius*1.0001)
		for j, f := range checkpoints {
			if r <= f*maxRadius {
				counts[j]++
			}
		}
	}

	for j, f := range checkpoints {
		expected := float64(f * f * f)
		empirical := float64(counts[j]) / n
		assert.InDelta(t, expected, empirical, 0.02, "CDF at %v*R", f)
	}
}

func TestSphereVolumeAngularSpread(t *testing.T) {
	s := NewSphereVolume(1, WithSeed(7))

	// Mean position should sit near the origin; a polar-clustered sampler
	// would bias the y component.
	var sumX, sumY, sumZ float64
	const n = 20000
	for i := 0; i < n; i++ {
		x, y, z := s.Sample()
		sumX += float64(x)
		sumY += float64(y)
		sumZ += float64(z)
	}
	assert.InDelta(t, 0, sumX/n, 0.02)
	assert.InDelta(t, 0, sumY/n, 0.02)
	assert.InDelta(t, 0, sumZ/n, 0.02)
}

func TestConeVolumeBounds(t *testing.T) {
	const (
		height     = float32(8)
		baseRadius = float32(3)
	)
	s := NewConeVolume(height, baseRadius, WithSeed(1))

	for i := 0; i < 10000; i++ {
		x, y, z := s.Sample()
		require.GreaterOrEqual(t, y, -height/2)
		require.LessOrEqual(t, y, height/2)

		// Radius must stay inside the local cone cross-section.
		progressUp := (y + height/2) / height
		limit := baseRadius * (1 - progressUp)
		r := math32.Sqrt(x*x + z*z)
		require.LessOrEqual(t, r, limit*1.0001, "sample %d outside cone at y=%v", i, y)
	}
}

func TestConeVolumeBottomWiderThanTop(t *testing.T) {
	const (
		height     = float32(8)
		baseRadius = float32(3)
	)
	s := NewConeVolume(height, baseRadius, WithSeed(99))

	var bottomSum, topSum float64
	var bottomCount, topCount int
	for i := 0; i < 30000; i++ {
		x, y, z := s.Sample()
		r := float64(math32.Sqrt(x*x + z*z))
		switch {
		case y < -height/2+height/4:
			bottomSum += r
			bottomCount++
		case y > height/2-height/4:
			topSum += r
			topCount++
		}
	}
	require.Positive(t, bottomCount)
	require.Positive(t, topCount)
	assert.Greater(t, bottomSum/float64(bottomCount), topSum/float64(topCount),
		"mean radius at the bottom band must exceed the top band")
}

func TestConeVolumeArealUniformityInBand(t *testing.T) {
	// Within a thin height band the local disc is nearly constant-radius, so
	// the radial CDF should approach (r/limit)². A center-clustered sampler
	// would overshoot the halfway checkpoint badly.
	const (
		height     = float32(10)
		baseRadius = float32(4)
	)
	s := NewConeVolume(height, baseRadius, WithSeed(5))

	var inHalf, total int
	for i := 0; i < 200000; i++ {
		x, y, z := s.Sample()
		if y < -height*0.45 || y > -height*0.40 {
			continue
		}
		progressUp := (y + height/2) / height
		limit := baseRadius * (1 - progressUp)
		r := math32.Sqrt(x*x + z*z)
		total++
		if r <= limit/2 {
			inHalf++
		}
	}
	require.Greater(t, total, 1000)
	assert.InDelta(t, 0.25, float64(inHalf)/float64(total), 0.04)
}

func TestConeSurfaceSitsOnShell(t *testing.T) {
	const (
		height     = float32(6)
		baseRadius = float32(2)
	)
	s := NewConeSurface(height, baseRadius, WithSeed(11))

	for i := 0; i < 5000; i++ {
		x, y, z := s.Sample()
		progressUp := (y + height/2) / height
		limit := baseRadius * (1 - progressUp)
		r := math32.Sqrt(x*x + z*z)
		assert.InDelta(t, float64(limit), float64(r), 1e-4)
	}
}

func TestSeededSamplersAreReproducible(t *testing.T) {
	a := NewSphereVolume(3, WithSeed(123))
	b := NewSphereVolume(3, WithSeed(123))
	for i := 0; i < 100; i++ {
		ax, ay, az := a.Sample()
		bx, by, bz := b.Sample()
		require.Equal(t, ax, bx)
		require.Equal(t, ay, by)
		require.Equal(t, az, bz)
	}
}

func TestInvalidDimensionsPanic(t *testing.T) {
	assert.Panics(t, func() { NewConeVolume(0, 1) })
	assert.Panics(t, func() { NewConeVolume(1, -1) })
	assert.Panics(t, func() { NewConeSurface(-1, 1) })
	assert.Panics(t, func() { NewSphereVolume(0) })
}

func TestOffsetTranslatesEverySample(t *testing.T) {
	base := NewSphereVolume(2, WithSeed(7))
	shifted := NewOffset(NewSphereVolume(2, WithSeed(7)), 10, -3, 4)

	for i := 0; i < 50; i++ {
		bx, by, bz := base.Sample()
		sx, sy, sz := shifted.Sample()
		require.Equal(t, bx+10, sx)
		require.Equal(t, by-3, sy)
		require.Equal(t, bz+4, sz)
	}
}

func TestOffsetRequiresInnerSampler(t *testing.T) {
	assert.Panics(t, func() { NewOffset(nil, 0, 0, 0) })
}
