// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/shadergen/caps"
	"github.com/gogpu/shadergen/shadertext"
	"github.com/gogpu/shadergen/stageio"
)

var vertexSig = stageio.VertexSignature{
	Attributes: []stageio.Attribute{{Type: "float2", Name: "a_pos"}, {Type: "float4", Name: "a_col0"}},
	Colors:     1,
	TexCoords:  1,
	Outputs:    []stageio.Varying{{Qualifier: "nointerpolation", Type: "uint", Name: "v_layer"}},
	VertexID:   true,
}

func TestVertexEntryPoint(t *testing.T) {
	tests := []struct {
		name    string
		emitter *Emitter
		want    string
	}{
		{
			name:    "vulkan",
			emitter: vulkan(t),
			want: `layout(location = 0) in float2 a_pos;
layout(location = 1) in float4 a_col0;
layout(location = 0) out VertexData {
    float4 v_col0;
    float2 v_tex0;
    nointerpolation uint v_layer;
};
#define v_pos gl_Position
#define v_id uint(gl_VertexIndex)

void main()
`,
		},
		{
			name:    "desktop 4.3",
			emitter: desktop(t, "4.30", 4, 3),
			want: `layout(location = 0) in float2 a_pos;
layout(location = 1) in float4 a_col0;
out VertexData {
    float4 v_col0;
    float2 v_tex0;
    nointerpolation uint v_layer;
};
#define v_pos gl_Position
#define v_id uint(gl_VertexID)

void main()
`,
		},
		{
			name:    "es 3.0",
			emitter: embedded(t, "OpenGL ES GLSL ES 3.00", 3, 0),
			want: `in float2 a_pos;
in float4 a_col0;
out float4 v_col0;
out float2 v_tex0;
nointerpolation out uint v_layer;
#define v_pos gl_Position
#define v_id uint(gl_VertexID)

void main()
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := emit(func(text *shadertext.Text) { tt.emitter.VertexEntryPoint(text, vertexSig) })
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("VertexEntryPoint() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVertexEntryPointBlockSuffix(t *testing.T) {
	sig := stageio.VertexSignature{TexCoords: 1, BlockSuffix: "_GS"}
	got := emit(func(text *shadertext.Text) { desktop(t, "4.30", 4, 3).VertexEntryPoint(text, sig) })
	if !strings.Contains(got, "out VertexData_GS {\n") {
		t.Errorf("block suffix missing:\n%s", got)
	}
}

func TestVertexEntryPointNoVaryings(t *testing.T) {
	got := emit(func(text *shadertext.Text) {
		vulkan(t).VertexEntryPoint(text, stageio.VertexSignature{})
	})
	if want := "#define v_pos gl_Position\n\nvoid main()\n"; got != want {
		t.Errorf("VertexEntryPoint() = %q, want %q", got, want)
	}
}

func TestFragmentEntryPoint(t *testing.T) {
	sig := stageio.FragmentSignature{
		TexCoords:    1,
		FragCoord:    true,
		ColorOutputs: 1,
		DepthOutput:  true,
	}

	tests := []struct {
		name    string
		emitter *Emitter
		want    string
	}{
		{
			name:    "vulkan",
			emitter: vulkan(t),
			want: `layout(location = 0) in VertexData {
    float2 v_tex0;
};
#define v_pos gl_FragCoord
#define o_depth gl_FragDepth
layout(location = 0) out float4 o_col0;

void main()
`,
		},
		{
			name:    "desktop 3.0",
			emitter: desktop(t, "1.30", 3, 0),
			want: `in float2 v_tex0;
#define v_pos gl_FragCoord
#define o_depth gl_FragDepth
out float4 o_col0;

void main()
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var text shadertext.Text
			if err := tt.emitter.FragmentEntryPoint(&text, sig); err != nil {
				t.Fatalf("FragmentEntryPoint() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, text.String()); diff != "" {
				t.Errorf("FragmentEntryPoint() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFragmentEntryPointDualSource(t *testing.T) {
	e := NewEmitter(resolve(t, caps.BackendOpenGL, caps.StaticQuery{
		GLSLVersion: "4.30", APIMajor: 4, APIMinor: 3,
	}, true))

	var text shadertext.Text
	if err := e.FragmentEntryPoint(&text, stageio.FragmentSignature{ColorOutputs: 2}); err != nil {
		t.Fatalf("FragmentEntryPoint() error = %v", err)
	}
	want := "layout(location = 0, index = 0) out float4 o_col0;\n" +
		"layout(location = 0, index = 1) out float4 o_col1;\n" +
		"\nvoid main()\n"
	if got := text.String(); got != want {
		t.Errorf("FragmentEntryPoint() = %q, want %q", got, want)
	}
}

func TestFragmentEntryPointTooManyOutputs(t *testing.T) {
	for _, e := range []*Emitter{desktop(t, "4.30", 4, 3), embedded(t, "OpenGL ES GLSL ES 3.20", 3, 2), vulkan(t)} {
		var text shadertext.Text
		err := e.FragmentEntryPoint(&text, stageio.FragmentSignature{TexCoords: 1, ColorOutputs: 2})

		var ce *caps.Error
		if !errors.As(err, &ce) || ce.Kind != caps.ErrTooManyColorOutputs {
			t.Errorf("%v: error = %v, want TooManyColorOutputs", e.caps.Backend(), err)
		}
		if text.Len() != 0 {
			t.Errorf("%v: partial output written: %q", e.caps.Backend(), text.String())
		}
	}
}
