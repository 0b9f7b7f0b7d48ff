package shader

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// The parser covers the WGSL subset these shaders use: one entry point per
// stage, one vertex input struct with @location fields, and var<uniform> /
// var<storage, ...> declarations with @group/@binding attributes. It does
// not attempt to size struct types; buffer sizes come from the GPU-side Go
// structs at bind group creation.

var (
	vertexEntryRe   = regexp.MustCompile(`@vertex\s+fn\s+(\w+)\s*\(([^)]*)\)`)
	fragmentEntryRe = regexp.MustCompile(`@fragment\s+fn\s+(\w+)\s*\(`)
	structRe        = regexp.MustCompile(`struct\s+(\w+)\s*\{([^}]*)\}`)
	locationFieldRe = regexp.MustCompile(`@location\((\d+)\)\s*(\w+)\s*:\s*([\w<>]+)`)
	bindingVarRe    = regexp.MustCompile(`@group\((\d+)\)\s*@binding\((\d+)\)\s*var\s*(?:<([^>]*)>)?\s*(\w+)\s*:`)
)

// vertexFormatInfo maps a WGSL scalar/vector type to its vertex format and
// byte size.
type vertexFormatInfo struct {
	format wgpu.VertexFormat
	size   uint64
}

var vertexFormats = map[string]vertexFormatInfo{
	"f32":       {wgpu.VertexFormatFloat32, 4},
	"vec2<f32>": {wgpu.VertexFormatFloat32x2, 8},
	"vec3<f32>": {wgpu.VertexFormatFloat32x3, 12},
	"vec4<f32>": {wgpu.VertexFormatFloat32x4, 16},
	"u32":       {wgpu.VertexFormatUint32, 4},
	"vec4<u32>": {wgpu.VertexFormatUint32x4, 16},
}

// parseEntryPoint finds the entry function name for the given stage.
//
// Parameters:
//   - source: the WGSL source
//   - t: the shader stage to look for
//
// Returns:
//   - string: the entry point name
//   - error: an error if no entry point for the stage exists in the source
func parseEntryPoint(source string, t ShaderType) (string, error) {
	switch t {
	case ShaderTypeVertex:
		if m := vertexEntryRe.FindStringSubmatch(source); m != nil {
			return m[1], nil
		}
		return "", fmt.Errorf("no @vertex entry point found")
	case ShaderTypeFragment:
		if m := fragmentEntryRe.FindStringSubmatch(source); m != nil {
			return m[1], nil
		}
		return "", fmt.Errorf("no @fragment entry point found")
	default:
		return "", fmt.Errorf("unknown shader type %d", t)
	}
}

// parseVertexLayout builds the vertex buffer layout from the entry point's
// input struct: the first parameter whose type is a struct containing
// @location fields. Fields must be declared in ascending location order;
// offsets accumulate in declaration order with tight packing.
//
// Parameters:
//   - source: the WGSL source
//   - entryPoint: the vertex entry function name
//
// Returns:
//   - []wgpu.VertexBufferLayout: a single-element layout slice, or nil when
//     the entry point takes no vertex input struct
func parseVertexLayout(source, entryPoint string) []wgpu.VertexBufferLayout {
	structs := make(map[string]string)
	for _, m := range structRe.FindAllStringSubmatch(source, -1) {
		structs[m[1]] = m[2]
	}

	entry := vertexEntryRe.FindStringSubmatch(source)
	if entry == nil || entry[1] != entryPoint {
		return nil
	}

	for _, param := range strings.Split(entry[2], ",") {
		parts := strings.SplitN(param, ":", 2)
		if len(parts) != 2 {
			continue
		}
		typeName := strings.TrimSpace(parts[1])
		body, ok := structs[typeName]
		if !ok {
			continue
		}

		fields := locationFieldRe.FindAllStringSubmatch(body, -1)
		if len(fields) == 0 {
			continue
		}

		attributes := make([]wgpu.VertexAttribute, 0, len(fields))
		offset := uint64(0)
		for _, f := range fields {
			location, _ := strconv.Atoi(f[1])
			info, known := vertexFormats[f[3]]
			if !known {
				panic(fmt.Sprintf("shader: unsupported vertex attribute type %q in struct %s", f[3], typeName))
			}
			attributes = append(attributes, wgpu.VertexAttribute{
				Format:         info.format,
				Offset:         offset,
				ShaderLocation: uint32(location),
			})
			offset += info.size
		}

		return []wgpu.VertexBufferLayout{
			{
				ArrayStride: offset,
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes:  attributes,
			},
		}
	}
	return nil
}

// parseBindGroupLayouts extracts bind group layout descriptors and variable
// names from the @group/@binding var declarations in the source.
//
// Parameters:
//   - source: the WGSL source
//   - label: label prefix applied to the descriptors
//   - visibility: the shader stage the declarations are visible to
//
// Returns:
//   - map[int]wgpu.BindGroupLayoutDescriptor: descriptors keyed by group index
//   - map[int]map[int]string: variable names keyed by group and binding index
func parseBindGroupLayouts(source, label string, visibility wgpu.ShaderStage) (map[int]wgpu.BindGroupLayoutDescriptor, map[int]map[int]string) {
	descriptors := make(map[int]wgpu.BindGroupLayoutDescriptor)
	varNames := make(map[int]map[int]string)
	entries := make(map[int][]wgpu.BindGroupLayoutEntry)

	for _, m := range bindingVarRe.FindAllStringSubmatch(source, -1) {
		group, _ := strconv.Atoi(m[1])
		binding, _ := strconv.Atoi(m[2])
		addressSpace := strings.ReplaceAll(m[3], " ", "")
		name := m[4]

		var bufferType wgpu.BufferBindingType
		switch {
		case addressSpace == "uniform":
			bufferType = wgpu.BufferBindingTypeUniform
		case strings.HasPrefix(addressSpace, "storage") && strings.HasSuffix(addressSpace, "read_write"):
			bufferType = wgpu.BufferBindingTypeStorage
		case strings.HasPrefix(addressSpace, "storage"):
			bufferType = wgpu.BufferBindingTypeReadOnlyStorage
		default:
			// Texture and sampler bindings are not used by this engine.
			panic(fmt.Sprintf("shader: unsupported address space %q for %s", m[3], name))
		}

		entries[group] = append(entries[group], wgpu.BindGroupLayoutEntry{
			Binding:    uint32(binding),
			Visibility: visibility,
			Buffer: wgpu.BufferBindingLayout{
				Type: bufferType,
			},
		})
		if varNames[group] == nil {
			varNames[group] = make(map[int]string)
		}
		varNames[group][binding] = name
	}

	for group, groupEntries := range entries {
		descriptors[group] = wgpu.BindGroupLayoutDescriptor{
			Label:   fmt.Sprintf("%s group %d", label, group),
			Entries: groupEntries,
		}
	}
	return descriptors, varNames
}
