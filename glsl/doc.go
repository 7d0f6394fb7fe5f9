// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl emits GLSL-family shader boilerplate for desktop OpenGL,
// OpenGL ES and Vulkan.
//
// The three backends share one language but differ in what they accept:
//
//   - Vulkan: #version 450 core, descriptor-set layouts, push constants,
//     gl_VertexIndex, interface blocks pinned to location 0.
//   - OpenGL: version negotiated with the driver and capped at 4.30;
//     binding/location qualifiers and interface blocks only when the
//     context (or its extensions) provides them.
//   - OpenGL ES: version capped at 3.20 ES, default precision statements.
//
// # Basic Usage
//
//	set, err := caps.Resolve(caps.BackendOpenGL, query, caps.DefaultOptions())
//	e := glsl.NewEmitter(set)
//
//	var text shadertext.Text
//	e.WriteHeader(&text)
//	e.Texture(&text, stageio.Texture{Name: "samp0"})
//
// Shader bodies are written against the shared vocabulary (float4,
// SAMPLE_TEXTURE, ...) that WriteHeader defines.
package glsl
