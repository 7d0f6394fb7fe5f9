// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"github.com/gogpu/shadergen/caps"
	"github.com/gogpu/shadergen/internal/vocab"
	"github.com/gogpu/shadergen/shadertext"
)

// WriteHeader writes the preamble every GLSL shader starts with:
//  1. #version directive
//  2. #extension requirements
//  3. backend identity macros
//  4. precision statements (ES only)
//  5. the shared vocabulary shim
func (e *Emitter) WriteHeader(t *shadertext.Text) {
	e.writeVersionDirective(t)
	e.writeExtensions(t)
	writeDefines(t, vocab.BackendMacros(e.caps.Backend()))
	e.writePrecisionQualifiers(t)
	writeShim(t)
	t.Blank()
}

// writeVersionDirective writes the #version directive.
func (e *Emitter) writeVersionDirective(t *shadertext.Text) {
	t.Line("#version %s", e.caps.VersionDirective())
	t.Blank()
}

// writeExtensions writes the #extension lines negotiated by the resolver.
func (e *Emitter) writeExtensions(t *shadertext.Text) {
	for _, ext := range e.caps.Extensions() {
		t.Line("#extension %s : require", ext)
	}
}

// writePrecisionQualifiers writes default precision statements for ES.
func (e *Emitter) writePrecisionQualifiers(t *shadertext.Text) {
	if e.caps.Backend() != caps.BackendOpenGLES {
		return
	}

	t.Line("precision highp float;")
	t.Line("precision highp int;")
	t.Line("precision highp sampler2D;")
	if e.caps.BufferSamplerPrecision() {
		t.Line("precision highp usamplerBuffer;")
	}
	t.Blank()
}

// writeShim writes the GLSL side of the shared vocabulary and the saturate
// overloads HLSL has built in.
func writeShim(t *shadertext.Text) {
	writeDefines(t, vocab.Dialect(true))
	for _, fn := range vocab.Saturate {
		t.Line("%s", fn)
	}
}

func writeDefines(t *shadertext.Text, defs []vocab.Define) {
	for _, d := range defs {
		t.Line("%s", d.Line())
	}
}
