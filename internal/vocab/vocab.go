// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vocab holds the shared shader vocabulary: the macro definitions
// that let one shader body compile as GLSL and as HLSL.
//
// Shader bodies are written with HLSL-style types (float4, int2, float4x4)
// and a small set of portable macros (SAMPLE_TEXTURE, VECTOR_EQ, ...).
// GLSL headers rename the HLSL names onto native GLSL; HLSL headers rename
// the common GLSL names onto native HLSL so either spelling works. The
// tables are emitted in slice order, which is part of the output contract.
package vocab

import "github.com/gogpu/shadergen/caps"

// Define is one "#define Name Value" line.
type Define struct {
	Name  string
	Value string
}

// Entry is a shared-vocabulary token with its per-dialect definition.
type Entry struct {
	Name string
	GLSL string
	HLSL string
}

// Define returns the entry as a define for the given dialect.
func (e Entry) Define(glsl bool) Define {
	if glsl {
		return Define{Name: e.Name, Value: e.GLSL}
	}
	return Define{Name: e.Name, Value: e.HLSL}
}

// GLSLRenames maps HLSL vocabulary onto native GLSL.
var GLSLRenames = []Define{
	{"GLSL", "1"},
	{"float2", "vec2"},
	{"float3", "vec3"},
	{"float4", "vec4"},
	{"int2", "ivec2"},
	{"int3", "ivec3"},
	{"int4", "ivec4"},
	{"uint2", "uvec2"},
	{"uint3", "uvec3"},
	{"uint4", "uvec4"},
	{"float2x2", "mat2"},
	{"float3x3", "mat3"},
	{"float4x4", "mat4"},
	{"mul(x, y)", "((x) * (y))"},
	{"nointerpolation", "flat"},
	{"frac", "fract"},
	{"lerp", "mix"},
}

// HLSLRenames maps GLSL vocabulary onto native HLSL.
var HLSLRenames = []Define{
	{"HLSL", "1"},
	{"roundEven", "round"},
	{"mix", "lerp"},
	{"fract", "frac"},
	{"vec2", "float2"},
	{"vec3", "float3"},
	{"vec4", "float4"},
	{"ivec2", "int2"},
	{"ivec3", "int3"},
	{"ivec4", "int4"},
	{"uvec2", "uint2"},
	{"uvec3", "uint3"},
	{"uvec4", "uint4"},
	{"mat2", "float2x2"},
	{"mat3", "float3x3"},
	{"mat4", "float4x4"},
}

// Shared lists the portable macros both dialects define.
var Shared = []Entry{
	{"CONSTANT", "const", "static const"},
	{"VECTOR_EQ(a, b)", "((a) == (b))", "(all((a) == (b)))"},
	{"VECTOR_NEQ(a, b)", "((a) != (b))", "(any((a) != (b)))"},
	{"VECTOR_COMP_EQ(a, b)", "equal((a), (b))", "((a) == (b))"},
	{"VECTOR_COMP_NEQ(a, b)", "notEqual((a), (b))", "((a) != (b))"},
	{"SAMPLE_TEXTURE(name, coords)", "texture(name, coords)", "name.Sample(name##_ss, coords)"},
	{"LOAD_TEXTURE(name, coords, mip)", "texelFetch(name, coords, mip)", "name.Load(int3(coords, mip))"},
	{"LOAD_TEXTURE_OFFSET(name, coords, mip, offset)", "texelFetchOffset(name, coords, mip, offset)", "name.Load(int3(coords, mip), offset)"},
	{"LOAD_TEXTURE_BUFFER(name, index)", "texelFetch(name, index)", "name.Load(index)"},
	{"BEGIN_ARRAY(type, size)", "type[size](", "{"},
	{"END_ARRAY", ")", "}"},
	// Extensions to the core set; headers keep the core prefix unchanged.
	{"GLOBAL", "", "static"},
	{"FOR_UNROLL", "for", "[unroll] for"},
	{"FOR_LOOP", "for", "[loop] for"},
	{"IF_BRANCH", "if", "[branch] if"},
	{"IF_FLATTEN", "if", "[flatten] if"},
}

// Saturate lists the GLSL saturate overloads, one per float arity.
// HLSL has saturate built in.
var Saturate = []string{
	"float saturate(float value) { return clamp(value, 0.0, 1.0); }",
	"float2 saturate(float2 value) { return clamp(value, float2(0.0, 0.0), float2(1.0, 1.0)); }",
	"float3 saturate(float3 value) { return clamp(value, float3(0.0, 0.0, 0.0), float3(1.0, 1.0, 1.0)); }",
	"float4 saturate(float4 value) { return clamp(value, float4(0.0, 0.0, 0.0, 0.0), float4(1.0, 1.0, 1.0, 1.0)); }",
}

// Dialect returns the complete ordered shim for one dialect: renames
// followed by the shared vocabulary.
func Dialect(glsl bool) []Define {
	renames := HLSLRenames
	if glsl {
		renames = GLSLRenames
	}
	defs := make([]Define, 0, len(renames)+len(Shared))
	defs = append(defs, renames...)
	for _, e := range Shared {
		defs = append(defs, e.Define(glsl))
	}
	return defs
}

// BackendMacros returns the four backend identity macros, in caps.Backends
// order, with exactly the active backend set to 1.
func BackendMacros(active caps.Backend) []Define {
	defs := make([]Define, 0, len(caps.Backends))
	for _, b := range caps.Backends {
		value := "0"
		if b == active {
			value = "1"
		}
		defs = append(defs, Define{Name: b.Macro(), Value: value})
	}
	return defs
}

// Line formats a define as a preprocessor line. An empty value yields
// "#define NAME".
func (d Define) Line() string {
	if d.Value == "" {
		return "#define " + d.Name
	}
	return "#define " + d.Name + " " + d.Value
}
