// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strings"
	"testing"

	"github.com/gogpu/shadergen/caps"
	"github.com/gogpu/shadergen/shadertext"
)

// =============================================================================
// Test Helpers
// =============================================================================

func resolve(t *testing.T, backend caps.Backend, q caps.FeatureQuery, dualSource bool) caps.Set {
	t.Helper()
	opts := caps.DefaultOptions()
	opts.DualSourceBlend = dualSource
	set, err := caps.Resolve(backend, q, opts)
	if err != nil {
		t.Fatalf("Resolve(%v) error = %v", backend, err)
	}
	return set
}

func desktop(t *testing.T, version string, major, minor int, exts ...string) *Emitter {
	t.Helper()
	return NewEmitter(resolve(t, caps.BackendOpenGL, caps.StaticQuery{
		GLSLVersion: version, APIMajor: major, APIMinor: minor, Extensions: exts,
	}, false))
}

func embedded(t *testing.T, version string, major, minor int) *Emitter {
	t.Helper()
	return NewEmitter(resolve(t, caps.BackendOpenGLES, caps.StaticQuery{
		GLSLVersion: version, APIMajor: major, APIMinor: minor,
	}, false))
}

func vulkan(t *testing.T) *Emitter {
	t.Helper()
	return NewEmitter(resolve(t, caps.BackendVulkan, nil, false))
}

func emit(fn func(*shadertext.Text)) string {
	var text shadertext.Text
	fn(&text)
	return text.String()
}

// mustContainInOrder fails unless every part occurs in src, in order.
func mustContainInOrder(t *testing.T, src string, parts ...string) {
	t.Helper()
	pos := 0
	for _, part := range parts {
		i := strings.Index(src[pos:], part)
		if i < 0 {
			t.Fatalf("missing %q after offset %d in:\n%s", part, pos, src)
		}
		pos += i + len(part)
	}
}

// =============================================================================
// Emitter Tests
// =============================================================================

func TestVertexIDBuiltin(t *testing.T) {
	if got := vulkan(t).vertexIDBuiltin(); got != "gl_VertexIndex" {
		t.Errorf("vulkan vertexIDBuiltin() = %q", got)
	}
	if got := desktop(t, "4.30", 4, 3).vertexIDBuiltin(); got != "gl_VertexID" {
		t.Errorf("desktop vertexIDBuiltin() = %q", got)
	}
}

func TestResourceLayout(t *testing.T) {
	tests := []struct {
		name    string
		emitter *Emitter
		want    string
	}{
		{"vulkan", vulkan(t), "layout(set = 0, binding = 3) "},
		{"binding layout", desktop(t, "4.30", 4, 3), "layout(binding = 2) "},
		{"implicit", desktop(t, "3.30", 3, 3), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.emitter.resourceLayout(2); got != tt.want {
				t.Errorf("resourceLayout(2) = %q, want %q", got, tt.want)
			}
		})
	}
}
