// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shadergen/shadertext"
	"github.com/gogpu/shadergen/stageio"
)

// UniformBuffer writes a std140 uniform block, or a push-constant block on
// Vulkan when the caller asks for one.
func (e *Emitter) UniformBuffer(t *shadertext.Text, b stageio.UniformBlock) {
	var layout string
	switch {
	case e.vulkan() && b.PushConstant:
		layout = layoutQualifier("push_constant")
	case e.vulkan():
		layout = layoutQualifier("std140", "set = 0", bindingArg(b.Binding))
	case e.caps.BindingLayout():
		layout = layoutQualifier("std140", bindingArg(b.Binding))
	default:
		layout = layoutQualifier("std140")
	}

	t.Line("%suniform %s", layout, b.Name)
	t.Line("{")
	t.Indent()
	for _, member := range b.Members {
		t.Line("%s;", member)
	}
	t.Outdent()
	t.Line("};")
	t.Blank()
}

// Texture writes a combined 2D sampler uniform.
func (e *Emitter) Texture(t *shadertext.Text, tex stageio.Texture) {
	sampler := "sampler2D"
	if tex.Multisampled {
		sampler = "sampler2DMS"
	}
	t.Line("%suniform %s %s;", e.resourceLayout(tex.Binding), sampler, tex.Name)
}

// TexelBuffer writes a buffer texture sampler of the requested sample type.
func (e *Emitter) TexelBuffer(t *shadertext.Text, buf stageio.TexelBuffer) {
	t.Line("%suniform %s %s;", e.resourceLayout(buf.Binding), samplerBufferType(buf.SampleType), buf.Name)
}

// samplerBufferType returns the GLSL buffer sampler for a sample type.
func samplerBufferType(st gputypes.TextureSampleType) string {
	switch st {
	case gputypes.TextureSampleTypeSint:
		return "isamplerBuffer"
	case gputypes.TextureSampleTypeUint:
		return "usamplerBuffer"
	default:
		return "samplerBuffer"
	}
}

// layoutQualifier returns "layout(args) " ready to prefix a declaration.
func layoutQualifier(args ...string) string {
	return "layout(" + strings.Join(args, ", ") + ") "
}

func bindingArg(binding uint32) string {
	return fmt.Sprintf("binding = %d", binding)
}

func locationArg(location int) string {
	return fmt.Sprintf("location = %d", location)
}
