// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"

	"github.com/gogpu/shadergen/shadertext"
	"github.com/gogpu/shadergen/stageio"
)

// HLSL semantic constants.
const (
	semanticSVPosition = "SV_Position"
	semanticSVVertexID = "SV_VertexID"
	semanticSVDepth    = "SV_Depth"
)

// VertexEntryPoint writes "void main(" with one parameter per attribute and
// output, ending with the SV_Position output. The caller appends the body.
func (e *Emitter) VertexEntryPoint(t *shadertext.Text, sig stageio.VertexSignature) {
	params := make([]string, 0, len(sig.Attributes)+sig.Colors+sig.TexCoords+len(sig.Outputs)+2)

	if sig.VertexID {
		params = append(params, "in uint v_id : "+semanticSVVertexID)
	}
	for i, attr := range sig.Attributes {
		params = append(params, fmt.Sprintf("in %s : ATTR%d", attr.Decl(), i))
	}
	params = appendVaryings(params, "out", sig.Colors, sig.TexCoords, sig.Outputs)
	params = append(params, "out float4 v_pos : "+semanticSVPosition)

	writeMain(t, params)
}

// FragmentEntryPoint writes "void main(" with the varying inputs, the
// optional SV_Position input, the optional SV_Depth output and one
// SV_Target output per color. It fails without writing anything when the
// signature violates the device capabilities.
func (e *Emitter) FragmentEntryPoint(t *shadertext.Text, sig stageio.FragmentSignature) error {
	if err := sig.Validate(e.caps); err != nil {
		return err
	}

	params := make([]string, 0, sig.Colors+sig.TexCoords+len(sig.Inputs)+sig.ColorOutputs+2)
	params = appendVaryings(params, "in", sig.Colors, sig.TexCoords, sig.Inputs)
	if sig.FragCoord {
		params = append(params, "in float4 v_pos : "+semanticSVPosition)
	}
	if sig.DepthOutput {
		params = append(params, "out float o_depth : "+semanticSVDepth)
	}
	for i := 0; i < sig.ColorOutputs; i++ {
		params = append(params, fmt.Sprintf("out float4 o_col%d : SV_Target%d", i, i))
	}

	writeMain(t, params)
	return nil
}

// appendVaryings appends the color, texcoord and extra varyings. Extra
// varyings continue the TEXCOORD numbering after the texcoords.
func appendVaryings(params []string, storage string, colors, texcoords int, extra []stageio.Varying) []string {
	for i := 0; i < colors; i++ {
		params = append(params, fmt.Sprintf("%s float4 v_col%d : COLOR%d", storage, i, i))
	}
	for i := 0; i < texcoords; i++ {
		params = append(params, fmt.Sprintf("%s float2 v_tex%d : TEXCOORD%d", storage, i, i))
	}
	for i, v := range extra {
		params = append(params, fmt.Sprintf("%s : TEXCOORD%d", v.Decl(storage), texcoords+i))
	}
	return params
}

// writeMain writes the entry point signature, one parameter per line.
func writeMain(t *shadertext.Text, params []string) {
	if len(params) == 0 {
		t.Line("void main()")
		return
	}

	t.Line("void main(")
	t.Indent()
	for _, p := range params[:len(params)-1] {
		t.Line("%s,", p)
	}
	t.Line("%s)", params[len(params)-1])
	t.Outdent()
}
