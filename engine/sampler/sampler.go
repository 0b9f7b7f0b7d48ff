// package sampler provides the random position generators used to build
// entity populations. Samplers are constructed once per population and
// invoked once per entity at construction time; they are never called per
// frame.
package sampler

import (
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"
)

// Sampler produces random points inside (or on) a target volume with a
// uniform spatial density.
type Sampler interface {
	// Sample draws one random point from the sampler's volume.
	//
	// Returns:
	//   - x, y, z: Cartesian coordinates of the sampled point
	Sample() (x, y, z float32)
}

// coneVolumeSampler draws points uniformly from the interior of an upright
// cone centered on the origin, apex up.
type coneVolumeSampler struct {
	height     float32
	baseRadius float32
	rng        *rand.Rand
}

// coneSurfaceSampler draws points from the lateral surface of the same cone.
// Used for decorations that hang on the foliage shell rather than float
// inside it.
type coneSurfaceSampler struct {
	height     float32
	baseRadius float32
	rng        *rand.Rand
}

// sphereVolumeSampler draws points uniformly from the interior of a sphere
// centered on the origin.
type sphereVolumeSampler struct {
	maxRadius float32
	rng       *rand.Rand
}

var (
	_ Sampler = &coneVolumeSampler{}
	_ Sampler = &coneSurfaceSampler{}
	_ Sampler = &sphereVolumeSampler{}
)

// NewConeVolume creates a Sampler producing points uniformly distributed
// through the interior of a cone of the given height and base radius. The
// cone is centered vertically on the origin: y spans [-height/2, height/2]
// with the apex at the top.
//
// Parameters:
//   - height: vertical extent of the cone (must be > 0)
//   - baseRadius: radius at the bottom of the cone (must be > 0)
//   - options: functional options to configure the sampler
//
// Returns:
//   - Sampler: the configured cone volume sampler
func NewConeVolume(height, baseRadius float32, options ...SamplerBuilderOption) Sampler {
	validateDimensions("cone volume", height, baseRadius)
	s := &coneVolumeSampler{
		height:     height,
		baseRadius: baseRadius,
	}
	cfg := applyOptions(options)
	s.rng = cfg.rng
	return s
}

// NewConeSurface creates a Sampler producing points on the lateral surface
// of a cone of the given height and base radius, vertically centered on the
// origin with the apex at the top.
//
// Parameters:
//   - height: vertical extent of the cone (must be > 0)
//   - baseRadius: radius at the bottom of the cone (must be > 0)
//   - options: functional options to configure the sampler
//
// Returns:
//   - Sampler: the configured cone surface sampler
func NewConeSurface(height, baseRadius float32, options ...SamplerBuilderOption) Sampler {
	validateDimensions("cone surface", height, baseRadius)
	s := &coneSurfaceSampler{
		height:     height,
		baseRadius: baseRadius,
	}
	cfg := applyOptions(options)
	s.rng = cfg.rng
	return s
}

// NewSphereVolume creates a Sampler producing points uniformly distributed
// through the interior of a sphere of the given radius centered on the
// origin.
//
// Parameters:
//   - maxRadius: radius of the sphere (must be > 0)
//   - options: functional options to configure the sampler
//
// Returns:
//   - Sampler: the configured sphere volume sampler
func NewSphereVolume(maxRadius float32, options ...SamplerBuilderOption) Sampler {
	if maxRadius <= 0 {
		panic(fmt.Sprintf("sampler: sphere volume requires a positive radius, got %v", maxRadius))
	}
	s := &sphereVolumeSampler{
		maxRadius: maxRadius,
	}
	cfg := applyOptions(options)
	s.rng = cfg.rng
	return s
}

func (s *coneVolumeSampler) Sample() (x, y, z float32) {
	// Height uniform along the axis; the local disc radius shrinks linearly
	// from baseRadius at the bottom to 0 at the apex.
	u := s.rng.Float32()
	y = (u - 0.5) * s.height
	currentRadius := s.baseRadius * (1 - u)

	theta := s.rng.Float32() * 2 * math32.Pi
	// sqrt corrects for disc area growing with r², keeping areal density
	// uniform instead of clustering at the axis.
	r := math32.Sqrt(s.rng.Float32()) * currentRadius

	sin, cos := math32.Sincos(theta)
	return r * cos, y, r * sin
}

func (s *coneSurfaceSampler) Sample() (x, y, z float32) {
	u := s.rng.Float32()
	y = (u - 0.5) * s.height
	currentRadius := s.baseRadius * (1 - u)

	theta := s.rng.Float32() * 2 * math32.Pi
	sin, cos := math32.Sincos(theta)
	return currentRadius * cos, y, currentRadius * sin
}

func (s *sphereVolumeSampler) Sample() (x, y, z float32) {
	// cbrt corrects for shell volume growing with r³, keeping volumetric
	// density uniform.
	r := math32.Cbrt(s.rng.Float32()) * s.maxRadius
	theta := s.rng.Float32() * 2 * math32.Pi
	// acos of a uniform value in [-1, 1] keeps surface-angle density uniform
	// instead of clustering at the poles.
	phi := math32.Acos(2*s.rng.Float32() - 1)

	sinPhi, cosPhi := math32.Sincos(phi)
	sinTheta, cosTheta := math32.Sincos(theta)
	return r * sinPhi * cosTheta, r * cosPhi, r * sinPhi * sinTheta
}

// offsetSampler translates every point drawn from an inner sampler by a
// fixed vector. Used to park decoration clusters away from the tree axis,
// like gift boxes ringing the trunk base.
type offsetSampler struct {
	inner   Sampler
	x, y, z float32
}

var _ Sampler = &offsetSampler{}

// NewOffset wraps a sampler so every sampled point is translated by the
// given vector.
//
// Parameters:
//   - inner: the sampler to wrap (must not be nil)
//   - x, y, z: the translation applied to each sample
//
// Returns:
//   - Sampler: the offsetting sampler
func NewOffset(inner Sampler, x, y, z float32) Sampler {
	if inner == nil {
		panic("sampler: offset requires a non-nil inner sampler")
	}
	return &offsetSampler{inner: inner, x: x, y: y, z: z}
}

func (s *offsetSampler) Sample() (x, y, z float32) {
	ix, iy, iz := s.inner.Sample()
	return ix + s.x, iy + s.y, iz + s.z
}

func validateDimensions(kind string, height, baseRadius float32) {
	if height <= 0 || baseRadius <= 0 {
		panic(fmt.Sprintf("sampler: %s requires positive dimensions, got height=%v baseRadius=%v", kind, height, baseRadius))
	}
}
