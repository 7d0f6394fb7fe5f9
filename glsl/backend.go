// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"github.com/gogpu/shadergen/caps"
)

// Emitter writes GLSL declarations for one resolved capability set.
// It holds no mutable state and is safe for concurrent use.
type Emitter struct {
	caps caps.Set
}

// NewEmitter creates an emitter for set. The set's backend must be one of
// the GLSL-family backends.
func NewEmitter(set caps.Set) *Emitter {
	return &Emitter{caps: set}
}

func (e *Emitter) vulkan() bool {
	return e.caps.Backend() == caps.BackendVulkan
}

// vertexIDBuiltin returns the built-in holding the vertex index.
func (e *Emitter) vertexIDBuiltin() string {
	if e.vulkan() {
		return "gl_VertexIndex"
	}
	return "gl_VertexID"
}

// resourceLayout returns the layout qualifier prefix for a sampler binding,
// or "" when bindings are implicit. Vulkan reserves binding 0 of set 0 for
// the uniform buffer, so resources start at 1.
func (e *Emitter) resourceLayout(binding uint32) string {
	switch {
	case e.vulkan():
		return layoutQualifier("set = 0", bindingArg(binding+1))
	case e.caps.BindingLayout():
		return layoutQualifier(bindingArg(binding))
	default:
		return ""
	}
}
