// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/shadergen/shadertext"
	"github.com/gogpu/shadergen/stageio"
)

func TestUniformBuffer(t *testing.T) {
	block := stageio.UniformBlock{
		Name:    "UBOBlock",
		Binding: 1,
		Members: []string{"float4 u_color", "float2 u_scale"},
	}
	body := "{\n    float4 u_color;\n    float2 u_scale;\n};\n\n"

	tests := []struct {
		name    string
		emitter *Emitter
		push    bool
		want    string
	}{
		{"vulkan", vulkan(t), false, "layout(std140, set = 0, binding = 1) uniform UBOBlock\n" + body},
		{"vulkan push constant", vulkan(t), true, "layout(push_constant) uniform UBOBlock\n" + body},
		{"binding layout", desktop(t, "4.30", 4, 3), false, "layout(std140, binding = 1) uniform UBOBlock\n" + body},
		{"binding layout ignores push", desktop(t, "4.30", 4, 3), true, "layout(std140, binding = 1) uniform UBOBlock\n" + body},
		{"implicit", desktop(t, "3.30", 3, 3), false, "layout(std140) uniform UBOBlock\n" + body},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := block
			b.PushConstant = tt.push
			got := emit(func(text *shadertext.Text) { tt.emitter.UniformBuffer(text, b) })
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("UniformBuffer() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTexture(t *testing.T) {
	tests := []struct {
		name    string
		emitter *Emitter
		tex     stageio.Texture
		want    string
	}{
		{"vulkan", vulkan(t), stageio.Texture{Name: "samp0"}, "layout(set = 0, binding = 1) uniform sampler2D samp0;\n"},
		{"binding", desktop(t, "4.30", 4, 3), stageio.Texture{Name: "samp1", Binding: 1}, "layout(binding = 1) uniform sampler2D samp1;\n"},
		{"implicit", embedded(t, "OpenGL ES GLSL ES 3.00", 3, 0), stageio.Texture{Name: "samp0"}, "uniform sampler2D samp0;\n"},
		{"multisampled", desktop(t, "3.30", 3, 3), stageio.Texture{Name: "samp0", Multisampled: true}, "uniform sampler2DMS samp0;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := emit(func(text *shadertext.Text) { tt.emitter.Texture(text, tt.tex) })
			if got != tt.want {
				t.Errorf("Texture() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTexelBuffer(t *testing.T) {
	tests := []struct {
		sampleType gputypes.TextureSampleType
		want       string
	}{
		{gputypes.TextureSampleTypeFloat, "layout(binding = 0) uniform samplerBuffer palette;\n"},
		{gputypes.TextureSampleTypeSint, "layout(binding = 0) uniform isamplerBuffer palette;\n"},
		{gputypes.TextureSampleTypeUint, "layout(binding = 0) uniform usamplerBuffer palette;\n"},
	}

	e := desktop(t, "4.30", 4, 3)
	for _, tt := range tests {
		got := emit(func(text *shadertext.Text) {
			e.TexelBuffer(text, stageio.TexelBuffer{Name: "palette", SampleType: tt.sampleType})
		})
		if got != tt.want {
			t.Errorf("TexelBuffer(%v) = %q, want %q", tt.sampleType, got, tt.want)
		}
	}
}
