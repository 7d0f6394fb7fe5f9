// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package caps

import (
	"errors"
	"testing"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		input string
		want  Backend
	}{
		{"opengl", BackendOpenGL},
		{"GL", BackendOpenGL},
		{"gles", BackendOpenGLES},
		{"opengles", BackendOpenGLES},
		{"d3d11", BackendD3D11},
		{"dx11", BackendD3D11},
		{" vulkan ", BackendVulkan},
		{"vk", BackendVulkan},
	}

	for _, tt := range tests {
		got, err := ParseBackend(tt.input)
		if err != nil {
			t.Errorf("ParseBackend(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBackend(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	_, err := ParseBackend("metal")
	var e *Error
	if !errors.As(err, &e) || e.Kind != ErrUnknownBackend {
		t.Errorf("ParseBackend(metal) error = %v, want UnknownBackend", err)
	}
}

func TestBackendRoundTrip(t *testing.T) {
	for _, b := range Backends {
		got, err := ParseBackend(b.String())
		if err != nil || got != b {
			t.Errorf("ParseBackend(%q) = %v, %v", b.String(), got, err)
		}
		if !b.Valid() {
			t.Errorf("%v.Valid() = false", b)
		}
		if b.Macro() == "" {
			t.Errorf("%v.Macro() is empty", b)
		}
	}
	if Backend(9).Valid() {
		t.Error("Backend(9).Valid() = true")
	}
	if got := Backend(9).String(); got != "Backend(9)" {
		t.Errorf("String() = %q", got)
	}
}

func TestErrorString(t *testing.T) {
	err := NewError(ErrTooManyColorOutputs, "2 color outputs")
	if got, want := err.Error(), "shadergen TooManyColorOutputs: 2 color outputs"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
