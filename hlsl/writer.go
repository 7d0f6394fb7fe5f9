// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"github.com/gogpu/shadergen/internal/vocab"
	"github.com/gogpu/shadergen/shadertext"
)

// WriteHeader writes the backend identity macros and the HLSL side of the
// shared vocabulary. HLSL has no version directive or extensions.
func (e *Emitter) WriteHeader(t *shadertext.Text) {
	writeDefines(t, vocab.BackendMacros(e.caps.Backend()))
	writeDefines(t, vocab.Dialect(false))
	t.Blank()
}

func writeDefines(t *shadertext.Text, defs []vocab.Define) {
	for _, d := range defs {
		t.Line("%s", d.Line())
	}
}
