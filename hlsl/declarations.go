// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/shadergen/shadertext"
	"github.com/gogpu/shadergen/stageio"
)

// UniformBuffer writes a cbuffer bound to register b<Binding>.
// PushConstant has no HLSL equivalent and is ignored.
func (e *Emitter) UniformBuffer(t *shadertext.Text, b stageio.UniformBlock) {
	t.Line("cbuffer %s : %s", b.Name, RegisterTypeB.Register(b.Binding))
	t.Line("{")
	t.Indent()
	for _, member := range b.Members {
		t.Line("%s;", member)
	}
	t.Outdent()
	t.Line("};")
	t.Blank()
}

// Texture writes a texture object and its sampler state at the same
// register index. The sampler is named <name>_ss, which SAMPLE_TEXTURE
// relies on.
func (e *Emitter) Texture(t *shadertext.Text, tex stageio.Texture) {
	texType := "Texture2D"
	if tex.Multisampled {
		texType = "Texture2DMS<float4>"
	}
	t.Line("%s %s : %s;", texType, tex.Name, RegisterTypeT.Register(tex.Binding))
	t.Line("SamplerState %s_ss : %s;", tex.Name, RegisterTypeS.Register(tex.Binding))
}

// TexelBuffer writes a typed Buffer object.
func (e *Emitter) TexelBuffer(t *shadertext.Text, buf stageio.TexelBuffer) {
	t.Line("Buffer<%s> %s : %s;", bufferElementType(buf.SampleType), buf.Name, RegisterTypeT.Register(buf.Binding))
}

// bufferElementType returns the Buffer element type for a sample type.
func bufferElementType(st gputypes.TextureSampleType) string {
	switch st {
	case gputypes.TextureSampleTypeSint:
		return "int4"
	case gputypes.TextureSampleTypeUint:
		return "uint4"
	default:
		return "float4"
	}
}
