// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package stageio describes the resources and stage interfaces a shader
// declares: uniform blocks, textures, texel buffers and the vertex/fragment
// entry-point signatures.
//
// Descriptors are plain values supplied by the caller. Binding indices are
// never allocated here; keeping them unique across a program is the caller's
// responsibility.
package stageio

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shadergen/caps"
)

// Stage is a programmable pipeline stage.
type Stage uint8

const (
	// StageVertex is the vertex stage.
	StageVertex Stage = iota

	// StageFragment is the fragment (pixel) stage.
	StageFragment
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
}

// Attribute is one vertex input. Its position in a signature determines its
// location (GLSL) or ATTR semantic index (HLSL).
type Attribute struct {
	Type string
	Name string
}

// Decl returns "type name".
func (a Attribute) Decl() string {
	return a.Type + " " + a.Name
}

// Varying is an additional stage output (vertex) or input (fragment) beyond
// the color and texcoord varyings. Its position determines the fallback
// TEXCOORD index in HLSL.
type Varying struct {
	// Qualifier is an optional interpolation qualifier written in the shared
	// vocabulary, e.g. "nointerpolation".
	Qualifier string
	Type      string
	Name      string
}

// Decl returns the declaration with storage keyword inserted after the
// qualifier, e.g. Decl("out") = "nointerpolation out uint v_id".
// An empty storage keyword yields "qualifier type name".
func (v Varying) Decl(storage string) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{v.Qualifier, storage, v.Type, v.Name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// VertexSignature describes a vertex-stage entry point.
type VertexSignature struct {
	// Attributes are the vertex inputs, in location order.
	Attributes []Attribute

	// Colors is the number of float4 v_colN outputs.
	Colors int

	// TexCoords is the number of float2 v_texN outputs.
	TexCoords int

	// Outputs are the additional varyings, written after colors and texcoords.
	Outputs []Varying

	// VertexID declares v_id, the index of the current vertex.
	VertexID bool

	// BlockSuffix is appended to the output interface block name.
	BlockSuffix string
}

// FragmentSignature describes a fragment-stage entry point.
type FragmentSignature struct {
	// Colors is the number of float4 v_colN inputs.
	Colors int

	// TexCoords is the number of float2 v_texN inputs.
	TexCoords int

	// Inputs are the additional varyings, matching VertexSignature.Outputs.
	Inputs []Varying

	// FragCoord declares v_pos, the window-space fragment position.
	FragCoord bool

	// ColorOutputs is the number of float4 o_colN outputs. More than one
	// requires dual-source blending.
	ColorOutputs int

	// DepthOutput declares o_depth.
	DepthOutput bool
}

// Validate checks the signature against the device capabilities.
func (s FragmentSignature) Validate(set caps.Set) error {
	if s.ColorOutputs > 1 && !set.DualSourceBlend() {
		return caps.NewError(caps.ErrTooManyColorOutputs,
			fmt.Sprintf("%d color outputs requested on %s without dual-source blending", s.ColorOutputs, set.Backend()))
	}
	return nil
}

// UniformBlock is a uniform buffer (constant buffer) declaration.
type UniformBlock struct {
	// Name is the block name, e.g. "UBOBlock".
	Name string

	// Binding is the buffer binding / register index.
	Binding uint32

	// Members are declarations such as "float4 u_color", written in order.
	Members []string

	// PushConstant requests a push-constant block on Vulkan. Other backends
	// ignore it.
	PushConstant bool
}

// Texture is a 2D texture with its sampler.
type Texture struct {
	Name    string
	Binding uint32

	// Multisampled declares a multisample texture.
	Multisampled bool
}

// TexelBuffer is a buffer texture.
type TexelBuffer struct {
	Name    string
	Binding uint32

	// SampleType selects float, signed or unsigned texels. Types other than
	// TextureSampleTypeSint and TextureSampleTypeUint are read as float.
	SampleType gputypes.TextureSampleType
}
