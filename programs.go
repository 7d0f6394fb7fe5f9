// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shadergen

import (
	"errors"
	"fmt"

	"github.com/gogpu/shadergen/shadertext"
	"github.com/gogpu/shadergen/stageio"
)

// ErrUnknownProgram is returned by Generate for a name not in Programs.
var ErrUnknownProgram = errors.New("shadergen: unknown program")

// uniformBlockName is the block name every built-in program uses.
const uniformBlockName = "UBOBlock"

// Built-in program names.
const (
	ProgramScreenQuadVertex = "screen_quad_vs"
	ProgramUVQuadVertex     = "uv_quad_vs"
	ProgramFillFragment     = "fill_fs"
	ProgramCopyFragment     = "copy_fs"
)

// Program is a complete shader ready for the driver's compiler.
type Program struct {
	// Name is one of the Program* names.
	Name string

	// Stage is the pipeline stage the program runs in.
	Stage stageio.Stage

	// Profile is the compile target, see Generator.Profile.
	Profile string

	// Source is the shader text.
	Source string
}

type programSpec struct {
	name  string
	stage stageio.Stage
	build func(*Generator) (string, error)
}

var programs = []programSpec{
	{ProgramScreenQuadVertex, stageio.StageVertex, (*Generator).ScreenQuadVertexShader},
	{ProgramUVQuadVertex, stageio.StageVertex, (*Generator).UVQuadVertexShader},
	{ProgramFillFragment, stageio.StageFragment, (*Generator).FillFragmentShader},
	{ProgramCopyFragment, stageio.StageFragment, (*Generator).CopyFragmentShader},
}

// Programs returns the names of the built-in programs.
func Programs() []string {
	names := make([]string, len(programs))
	for i, p := range programs {
		names[i] = p.name
	}
	return names
}

// Generate builds the named built-in program.
func (g *Generator) Generate(name string) (Program, error) {
	for _, p := range programs {
		if p.name != name {
			continue
		}
		src, err := p.build(g)
		if err != nil {
			return Program{}, err
		}
		return Program{
			Name:    p.name,
			Stage:   p.stage,
			Profile: g.Profile(p.stage),
			Source:  src,
		}, nil
	}
	return Program{}, fmt.Errorf("%w: %q", ErrUnknownProgram, name)
}

// ScreenQuadVertexShader returns a vertex shader that covers the viewport
// with one triangle, deriving position and v_tex0 from the vertex index.
// Draw it with three vertices and no vertex buffer.
func (g *Generator) ScreenQuadVertexShader() (string, error) {
	var text shadertext.Text
	g.WriteHeader(&text)
	g.DeclareVertexEntryPoint(&text, stageio.VertexSignature{
		TexCoords: 1,
		VertexID:  true,
	})
	text.Raw(`{
    v_tex0 = float2(float((v_id << 1) & 2u), float(v_id & 2u));
    v_pos = float4(v_tex0 * float2(2.0f, -2.0f) + float2(-1.0f, 1.0f), 0.0f, 1.0f);
    #if API_OPENGL || API_OPENGL_ES || API_VULKAN
        v_pos.y = -v_pos.y;
    #endif
}
`)
	g.logProgram(ProgramScreenQuadVertex, &text)
	return text.String(), nil
}

// UVQuadVertexShader is ScreenQuadVertexShader with v_tex0 remapped into
// the [u_uv_min, u_uv_max] rectangle of the bound source.
func (g *Generator) UVQuadVertexShader() (string, error) {
	var text shadertext.Text
	g.WriteHeader(&text)
	g.DeclareUniformBuffer(&text, stageio.UniformBlock{
		Name:         uniformBlockName,
		Members:      []string{"float2 u_uv_min", "float2 u_uv_max"},
		PushConstant: true,
	})
	g.DeclareVertexEntryPoint(&text, stageio.VertexSignature{
		TexCoords: 1,
		VertexID:  true,
	})
	text.Raw(`{
    v_tex0 = float2(float((v_id << 1) & 2u), float(v_id & 2u));
    v_pos = float4(v_tex0 * float2(2.0f, -2.0f) + float2(-1.0f, 1.0f), 0.0f, 1.0f);
    v_tex0 = u_uv_min + (u_uv_max - u_uv_min) * v_tex0;
    #if API_OPENGL || API_OPENGL_ES || API_VULKAN
        v_pos.y = -v_pos.y;
    #endif
}
`)
	g.logProgram(ProgramUVQuadVertex, &text)
	return text.String(), nil
}

// FillFragmentShader returns a fragment shader writing u_fill_color to
// color output 0 and its alpha to depth.
func (g *Generator) FillFragmentShader() (string, error) {
	var text shadertext.Text
	g.WriteHeader(&text)
	g.DeclareUniformBuffer(&text, stageio.UniformBlock{
		Name:         uniformBlockName,
		Members:      []string{"float4 u_fill_color"},
		PushConstant: true,
	})
	if err := g.DeclareFragmentEntryPoint(&text, stageio.FragmentSignature{
		TexCoords:    1,
		ColorOutputs: 1,
		DepthOutput:  true,
	}); err != nil {
		return "", fmt.Errorf("%s: %w", ProgramFillFragment, err)
	}
	text.Raw(`{
    o_col0 = u_fill_color;
    o_depth = u_fill_color.a;
}
`)
	g.logProgram(ProgramFillFragment, &text)
	return text.String(), nil
}

// CopyFragmentShader returns a fragment shader sampling samp0 over the
// source rectangle u_src_rect (xy offset, zw scale).
func (g *Generator) CopyFragmentShader() (string, error) {
	var text shadertext.Text
	g.WriteHeader(&text)
	g.DeclareUniformBuffer(&text, stageio.UniformBlock{
		Name:         uniformBlockName,
		Members:      []string{"float4 u_src_rect"},
		PushConstant: true,
	})
	g.DeclareTexture(&text, stageio.Texture{Name: "samp0", Binding: 0})
	if err := g.DeclareFragmentEntryPoint(&text, stageio.FragmentSignature{
		TexCoords:    1,
		ColorOutputs: 1,
	}); err != nil {
		return "", fmt.Errorf("%s: %w", ProgramCopyFragment, err)
	}
	text.Raw(`{
    float2 coords = u_src_rect.xy + v_tex0 * u_src_rect.zw;
    o_col0 = SAMPLE_TEXTURE(samp0, coords);
}
`)
	g.logProgram(ProgramCopyFragment, &text)
	return text.String(), nil
}
