package population

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUParticleAttrSource is the canonical WGSL definition of the ParticleAttr struct.
// Matches GPUParticleAttr layout exactly (64 bytes, std430 aligned).
//
//go:embed assets/particle_attr.wgsl
var GPUParticleAttrSource string

// GPUParticleAttr is the GPU-aligned per-entity attribute record for the
// shader-driven particle path. The whole array is uploaded to a read-only
// storage buffer once at init; the vertex shader pulls it by instance index.
// Matches the WGSL ParticleAttr struct layout exactly (see GPUParticleAttrSource).
// Size: 64 bytes (std430 aligned, vec3 fields padded by the trailing scalar).
type GPUParticleAttr struct {
	Assembled  [3]float32 // offset  0: assembled-arrangement position (12 bytes)
	Randomness float32    // offset 12: per-entity jitter decorrelation in [0,1) (4 bytes)
	Scattered  [3]float32 // offset 16: scattered-cloud position (12 bytes)
	Speed      float32    // offset 28: animation rate multiplier (4 bytes)
	Color      [3]float32 // offset 32: RGB tint (12 bytes)
	Scale      float32    // offset 44: base size multiplier (4 bytes)
	Phase      float32    // offset 48: periodic animation offset in radians (4 bytes)
	Seed       float32    // offset 52: secondary per-entity uniform draw (4 bytes)
	_pad       [2]float32 // offset 56: padding to 64 bytes
}

// Size returns the size of the GPUParticleAttr struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPUParticleAttr) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUParticleAttr struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPUParticleAttr) Marshal() []byte {
	buf := make([]byte, 64)
	g.MarshalInto(buf)
	return buf
}

// MarshalInto serializes the struct into the first 64 bytes of dst, letting
// bulk uploads reuse one contiguous staging buffer.
//
// Parameters:
//   - dst: destination slice, at least 64 bytes
func (g *GPUParticleAttr) MarshalInto(dst []byte) {
	put := func(offset int, v float32) {
		binary.LittleEndian.PutUint32(dst[offset:], math.Float32bits(v))
	}
	for i := range 3 {
		put(i*4, g.Assembled[i])
		put(16+i*4, g.Scattered[i])
		put(32+i*4, g.Color[i])
	}
	put(12, g.Randomness)
	put(28, g.Speed)
	put(44, g.Scale)
	put(48, g.Phase)
	put(52, g.Seed)
	put(56, 0)
	put(60, 0)
}

// GPUMorphUniformSource is the canonical WGSL definition of the MorphUniform struct.
// Matches GPUMorphUniform layout exactly (16 bytes, std430 aligned).
//
//go:embed assets/morph_uniform.wgsl
var GPUMorphUniformSource string

// GPUMorphUniform is the GPU-aligned per-frame uniform for the particle path.
// This is the only data the particle path writes after init: one 16-byte
// record per population per frame.
// Matches the WGSL MorphUniform struct layout exactly (see GPUMorphUniformSource).
// Size: 16 bytes (std430 aligned).
type GPUMorphUniform struct {
	Time     float32    // offset 0: scene elapsed time in seconds (4 bytes)
	Progress float32    // offset 4: raw morph progress in [0,1]; eased in WGSL (4 bytes)
	_pad     [2]float32 // offset 8: padding to 16 bytes
}

// Size returns the size of the GPUMorphUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (g *GPUMorphUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMorphUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload
func (g *GPUMorphUniform) Marshal() []byte {
	buf := make([]byte, 16)
	g.MarshalInto(buf)
	return buf
}

// MarshalInto serializes the struct into the first 16 bytes of dst.
//
// Parameters:
//   - dst: destination slice, at least 16 bytes
func (g *GPUMorphUniform) MarshalInto(dst []byte) {
	binary.LittleEndian.PutUint32(dst[0:], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(dst[4:], math.Float32bits(g.Progress))
	binary.LittleEndian.PutUint32(dst[8:], 0)
	binary.LittleEndian.PutUint32(dst[12:], 0)
}
