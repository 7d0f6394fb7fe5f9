// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package hlsl emits HLSL shader boilerplate for Direct3D 11.
//
// Shader bodies written against the shared vocabulary compile unchanged
// here: WriteHeader renames the common GLSL spellings (vec4, mix, fract)
// onto HLSL and defines the portable texture macros with method-call
// syntax.
//
// # Register Binding
//
// HLSL uses register-based resource binding:
//
//	cbuffer  : register(b#)  // Constant buffers
//	Texture  : register(t#)  // Textures, texel buffers
//	Sampler  : register(s#)  // Samplers, paired with the texture index
//
// # Entry Points
//
// Stage inputs and outputs are written as parameters of main with
// semantics: ATTRn for vertex attributes, COLORn and TEXCOORDn for
// varyings, SV_Position, SV_VertexID, SV_Target and SV_Depth for built-ins.
package hlsl
