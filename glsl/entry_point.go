// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/shadergen/shadertext"
	"github.com/gogpu/shadergen/stageio"
)

// vertexDataBlock is the interface block linking the vertex and fragment
// stages.
const vertexDataBlock = "VertexData"

// VertexEntryPoint writes the vertex inputs and outputs followed by
// "void main()". The caller appends the body.
func (e *Emitter) VertexEntryPoint(t *shadertext.Text, sig stageio.VertexSignature) {
	for i, attr := range sig.Attributes {
		if e.caps.BindingLayout() {
			t.Line("%sin %s;", layoutQualifier(locationArg(i)), attr.Decl())
		} else {
			t.Line("in %s;", attr.Decl())
		}
	}

	e.writeVaryings(t, "out", vertexDataBlock+sig.BlockSuffix, sig.Colors, sig.TexCoords, sig.Outputs)

	t.Line("#define v_pos gl_Position")
	if sig.VertexID {
		t.Line("#define v_id uint(%s)", e.vertexIDBuiltin())
	}
	t.Blank()
	t.Line("void main()")
}

// FragmentEntryPoint writes the fragment inputs and outputs followed by
// "void main()". It fails without writing anything when the signature
// violates the device capabilities.
func (e *Emitter) FragmentEntryPoint(t *shadertext.Text, sig stageio.FragmentSignature) error {
	if err := sig.Validate(e.caps); err != nil {
		return err
	}

	e.writeVaryings(t, "in", vertexDataBlock, sig.Colors, sig.TexCoords, sig.Inputs)

	if sig.FragCoord {
		t.Line("#define v_pos gl_FragCoord")
	}
	if sig.DepthOutput {
		t.Line("#define o_depth gl_FragDepth")
	}

	for i := 0; i < sig.ColorOutputs; i++ {
		t.Line("%sout float4 o_col%d;", e.colorOutputLayout(i), i)
	}
	t.Blank()
	t.Line("void main()")
	return nil
}

// colorOutputLayout returns the layout for color output i. With dual-source
// blending every output sits at location 0 and index selects the blend
// source.
func (e *Emitter) colorOutputLayout(i int) string {
	switch {
	case !e.caps.BindingLayout():
		return ""
	case e.caps.DualSourceBlend():
		return layoutQualifier(locationArg(0), fmt.Sprintf("index = %d", i))
	default:
		return layoutQualifier(locationArg(0))
	}
}

// writeVaryings writes the color, texcoord and extra varyings either as one
// interface block or as individual declarations. storage is "in" or "out".
func (e *Emitter) writeVaryings(t *shadertext.Text, storage, block string, colors, texcoords int, extra []stageio.Varying) {
	if colors+texcoords+len(extra) == 0 {
		// GLSL rejects empty interface blocks.
		return
	}

	if e.caps.InterfaceBlocks() {
		prefix := ""
		if e.vulkan() {
			prefix = layoutQualifier(locationArg(0))
		}
		t.Line("%s%s %s {", prefix, storage, block)
		t.Indent()
		for i := 0; i < colors; i++ {
			t.Line("float4 v_col%d;", i)
		}
		for i := 0; i < texcoords; i++ {
			t.Line("float2 v_tex%d;", i)
		}
		for _, v := range extra {
			t.Line("%s;", v.Decl(""))
		}
		t.Outdent()
		t.Line("};")
		return
	}

	for i := 0; i < colors; i++ {
		t.Line("%s float4 v_col%d;", storage, i)
	}
	for i := 0; i < texcoords; i++ {
		t.Line("%s float2 v_tex%d;", storage, i)
	}
	for _, v := range extra {
		t.Line("%s;", v.Decl(storage))
	}
}
