// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package caps

import (
	"fmt"
	"strings"
)

// Backend identifies the graphics API a generated shader must run under.
type Backend uint8

// Supported backends. The order matches the order of the identity macros
// written into every shader header.
const (
	// BackendOpenGL is desktop OpenGL.
	BackendOpenGL Backend = iota

	// BackendOpenGLES is OpenGL for embedded systems (GLES / WebGL2).
	BackendOpenGLES

	// BackendD3D11 is Direct3D 11, fed HLSL text.
	BackendD3D11

	// BackendVulkan is Vulkan, fed GLSL text that is compiled to SPIR-V.
	BackendVulkan
)

// Backends lists every backend in identity-macro order.
var Backends = []Backend{BackendOpenGL, BackendOpenGLES, BackendD3D11, BackendVulkan}

// String returns the lower-case backend name used in profiles and logs.
func (b Backend) String() string {
	switch b {
	case BackendOpenGL:
		return "opengl"
	case BackendOpenGLES:
		return "opengles"
	case BackendD3D11:
		return "d3d11"
	case BackendVulkan:
		return "vulkan"
	default:
		return fmt.Sprintf("Backend(%d)", uint8(b))
	}
}

// Macro returns the preprocessor macro that identifies the backend in
// generated shader text.
func (b Backend) Macro() string {
	switch b {
	case BackendOpenGL:
		return "API_OPENGL"
	case BackendOpenGLES:
		return "API_OPENGL_ES"
	case BackendD3D11:
		return "API_D3D11"
	case BackendVulkan:
		return "API_VULKAN"
	default:
		return ""
	}
}

// Valid reports whether b is one of the known backends.
func (b Backend) Valid() bool {
	return b <= BackendVulkan
}

// IsGL reports whether b is desktop GL or GLES, the two backends whose
// language version is negotiated with the driver.
func (b Backend) IsGL() bool {
	return b == BackendOpenGL || b == BackendOpenGLES
}

// ParseBackend parses a backend name as returned by String.
// A few common aliases are accepted.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "opengl", "gl":
		return BackendOpenGL, nil
	case "opengles", "gles", "es":
		return BackendOpenGLES, nil
	case "d3d11", "d3d", "dx11":
		return BackendD3D11, nil
	case "vulkan", "vk":
		return BackendVulkan, nil
	default:
		return 0, NewError(ErrUnknownBackend, fmt.Sprintf("unknown backend %q", name))
	}
}
