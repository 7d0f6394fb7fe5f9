// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"github.com/gogpu/shadergen/caps"
)

// Emitter writes HLSL declarations for one resolved capability set.
// It holds no mutable state and is safe for concurrent use.
type Emitter struct {
	caps caps.Set
}

// NewEmitter creates an emitter for set.
func NewEmitter(set caps.Set) *Emitter {
	return &Emitter{caps: set}
}
