package model

import (
	"github.com/chewxy/math32"
)

// NewUnitQuad creates a 1×1 quad centered on the origin in the XY plane,
// facing +Z. Used as the billboard geometry for point-sprite style rendering.
//
// Parameters:
//   - name: the model identifier
//   - options: additional ModelBuilderOption functions to apply
//
// Returns:
//   - Model: the quad model
func NewUnitQuad(name string, options ...ModelBuilderOption) Model {
	vertices := []GPUVertex{
		{Position: [3]float32{-0.5, -0.5, 0}, Normal: [3]float32{0, 0, 1}},
		{Position: [3]float32{0.5, -0.5, 0}, Normal: [3]float32{0, 0, 1}},
		{Position: [3]float32{0.5, 0.5, 0}, Normal: [3]float32{0, 0, 1}},
		{Position: [3]float32{-0.5, 0.5, 0}, Normal: [3]float32{0, 0, 1}},
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}

	opts := append([]ModelBuilderOption{WithName(name), WithMesh(vertices, indices)}, options...)
	return NewModel(opts...)
}

// NewBox creates an axis-aligned box centered on the origin with per-face
// normals.
//
// Parameters:
//   - name: the model identifier
//   - width: the extent along X
//   - height: the extent along Y
//   - depth: the extent along Z
//   - options: additional ModelBuilderOption functions to apply
//
// Returns:
//   - Model: the box model
func NewBox(name string, width, height, depth float32, options ...ModelBuilderOption) Model {
	if width <= 0 || height <= 0 || depth <= 0 {
		panic("model: box dimensions must be positive")
	}
	hw, hh, hd := width/2, height/2, depth/2

	// 4 vertices per face so each face gets a flat normal.
	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-hw, -hh, hd}, {hw, -hh, hd}, {hw, hh, hd}, {-hw, hh, hd}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{hw, -hh, -hd}, {-hw, -hh, -hd}, {-hw, hh, -hd}, {hw, hh, -hd}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{hw, -hh, hd}, {hw, -hh, -hd}, {hw, hh, -hd}, {hw, hh, hd}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-hw, -hh, -hd}, {-hw, -hh, hd}, {-hw, hh, hd}, {-hw, hh, -hd}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-hw, hh, hd}, {hw, hh, hd}, {hw, hh, -hd}, {-hw, hh, -hd}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-hw, -hh, -hd}, {hw, -hh, -hd}, {hw, -hh, hd}, {-hw, -hh, hd}}},
	}

	vertices := make([]GPUVertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(vertices))
		for _, c := range f.corners {
			vertices = append(vertices, GPUVertex{Position: c, Normal: f.normal})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	opts := append([]ModelBuilderOption{WithName(name), WithMesh(vertices, indices)}, options...)
	return NewModel(opts...)
}

// NewUVSphere creates a latitude/longitude sphere centered on the origin with
// smooth normals.
//
// Parameters:
//   - name: the model identifier
//   - radius: the sphere radius
//   - segments: longitudinal subdivisions (minimum 3)
//   - rings: latitudinal subdivisions (minimum 2)
//   - options: additional ModelBuilderOption functions to apply
//
// Returns:
//   - Model: the sphere model
func NewUVSphere(name string, radius float32, segments, rings int, options ...ModelBuilderOption) Model {
	if radius <= 0 {
		panic("model: sphere radius must be positive")
	}
	if segments < 3 || rings < 2 {
		panic("model: sphere requires at least 3 segments and 2 rings")
	}

	vertices := make([]GPUVertex, 0, (rings+1)*(segments+1))
	for ring := 0; ring <= rings; ring++ {
		phi := math32.Pi * float32(ring) / float32(rings)
		sinPhi, cosPhi := math32.Sincos(phi)
		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math32.Pi * float32(seg) / float32(segments)
			sinTheta, cosTheta := math32.Sincos(theta)
			n := [3]float32{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			vertices = append(vertices, GPUVertex{
				Position: [3]float32{n[0] * radius, n[1] * radius, n[2] * radius},
				Normal:   n,
			})
		}
	}

	indices := make([]uint32, 0, rings*segments*6)
	stride := uint32(segments + 1)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			a := uint32(ring)*stride + uint32(seg)
			b := a + stride
			indices = append(indices, a, b, a+1, a+1, b, b+1)
		}
	}

	opts := append([]ModelBuilderOption{WithName(name), WithMesh(vertices, indices)}, options...)
	return NewModel(opts...)
}

// NewOctahedron creates an eight-faced diamond shape centered on the origin
// with flat per-face normals. The equatorial cross-section is a square of the
// given width; the tips sit at ±height/2 on the Y axis.
//
// Parameters:
//   - name: the model identifier
//   - width: the equatorial extent along X and Z
//   - height: the tip-to-tip extent along Y
//   - options: additional ModelBuilderOption functions to apply
//
// Returns:
//   - Model: the octahedron model
func NewOctahedron(name string, width, height float32, options ...ModelBuilderOption) Model {
	if width <= 0 || height <= 0 {
		panic("model: octahedron dimensions must be positive")
	}
	hw, hh := width/2, height/2

	top := [3]float32{0, hh, 0}
	bottom := [3]float32{0, -hh, 0}
	equator := [4][3]float32{
		{hw, 0, 0},
		{0, 0, hw},
		{-hw, 0, 0},
		{0, 0, -hw},
	}

	vertices := make([]GPUVertex, 0, 24)
	indices := make([]uint32, 0, 24)
	addFace := func(a, b, c [3]float32) {
		n := faceNormal(a, b, c)
		base := uint32(len(vertices))
		vertices = append(vertices,
			GPUVertex{Position: a, Normal: n},
			GPUVertex{Position: b, Normal: n},
			GPUVertex{Position: c, Normal: n},
		)
		indices = append(indices, base, base+1, base+2)
	}

	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		addFace(top, equator[j], equator[i])
		addFace(bottom, equator[i], equator[j])
	}

	opts := append([]ModelBuilderOption{WithName(name), WithMesh(vertices, indices)}, options...)
	return NewModel(opts...)
}

// NewStarPrism creates a star polygon extruded along the Z axis, centered on
// the origin and facing ±Z with flat front/back caps and per-edge side walls.
//
// Parameters:
//   - name: the model identifier
//   - points: the number of star points (minimum 3)
//   - outerRadius: the radius at the star tips
//   - innerRadius: the radius at the notches between tips
//   - depth: the extrusion extent along Z
//   - options: additional ModelBuilderOption functions to apply
//
// Returns:
//   - Model: the star prism model
func NewStarPrism(name string, points int, outerRadius, innerRadius, depth float32, options ...ModelBuilderOption) Model {
	if points < 3 {
		panic("model: star prism requires at least 3 points")
	}
	if outerRadius <= 0 || innerRadius <= 0 || depth <= 0 {
		panic("model: star prism dimensions must be positive")
	}
	if innerRadius >= outerRadius {
		panic("model: star prism inner radius must be smaller than outer radius")
	}
	hd := depth / 2

	// Outline alternates outer tips and inner notches, starting with a tip
	// straight up so the topper reads upright.
	outlineCount := points * 2
	outline := make([][2]float32, outlineCount)
	for i := 0; i < outlineCount; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		angle := math32.Pi/2 + 2*math32.Pi*float32(i)/float32(outlineCount)
		sin, cos := math32.Sincos(angle)
		outline[i] = [2]float32{r * cos, r * sin}
	}

	vertices := make([]GPUVertex, 0, outlineCount*6+2)
	indices := make([]uint32, 0, outlineCount*12)

	// Front and back caps as triangle fans around center vertices.
	for side := 0; side < 2; side++ {
		z := hd
		n := [3]float32{0, 0, 1}
		if side == 1 {
			z = -hd
			n = [3]float32{0, 0, -1}
		}
		center := uint32(len(vertices))
		vertices = append(vertices, GPUVertex{Position: [3]float32{0, 0, z}, Normal: n})
		ringBase := uint32(len(vertices))
		for _, p := range outline {
			vertices = append(vertices, GPUVertex{Position: [3]float32{p[0], p[1], z}, Normal: n})
		}
		for i := 0; i < outlineCount; i++ {
			j := (i + 1) % outlineCount
			if side == 0 {
				indices = append(indices, center, ringBase+uint32(i), ringBase+uint32(j))
			} else {
				indices = append(indices, center, ringBase+uint32(j), ringBase+uint32(i))
			}
		}
	}

	// Side walls, one flat quad per outline edge.
	for i := 0; i < outlineCount; i++ {
		j := (i + 1) % outlineCount
		a, b := outline[i], outline[j]
		edge := [2]float32{b[0] - a[0], b[1] - a[1]}
		length := math32.Hypot(edge[0], edge[1])
		n := [3]float32{edge[1] / length, -edge[0] / length, 0}

		base := uint32(len(vertices))
		vertices = append(vertices,
			GPUVertex{Position: [3]float32{a[0], a[1], hd}, Normal: n},
			GPUVertex{Position: [3]float32{b[0], b[1], hd}, Normal: n},
			GPUVertex{Position: [3]float32{b[0], b[1], -hd}, Normal: n},
			GPUVertex{Position: [3]float32{a[0], a[1], -hd}, Normal: n},
		)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	opts := append([]ModelBuilderOption{WithName(name), WithMesh(vertices, indices)}, options...)
	return NewModel(opts...)
}

// faceNormal computes the normalized normal of the triangle (a, b, c) with
// counter-clockwise winding.
func faceNormal(a, b, c [3]float32) [3]float32 {
	u := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	v := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	n := [3]float32{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
	length := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if length == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{n[0] / length, n[1] / length, n[2] / length}
}
