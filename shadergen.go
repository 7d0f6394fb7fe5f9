// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package shadergen generates shader source that compiles unchanged on
// desktop OpenGL, OpenGL ES, Vulkan and Direct3D 11.
//
// A Generator resolves the device capabilities once, then writes GLSL or
// HLSL boilerplate (version and extension preamble, backend macros, a
// vocabulary shim, resource declarations and entry-point signatures) around
// shader bodies written in a shared vocabulary.
//
// Example usage:
//
//	gen, err := shadergen.New(caps.BackendOpenGL, driverQuery, caps.Options{
//	    DualSourceBlend: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vs, err := gen.ScreenQuadVertexShader()
//
// Custom shaders are assembled the same way the built-in ones are:
//
//	var text shadertext.Text
//	gen.WriteHeader(&text)
//	gen.DeclareTexture(&text, stageio.Texture{Name: "samp0"})
//	if err := gen.DeclareFragmentEntryPoint(&text, sig); err != nil {
//	    return err
//	}
//	text.Raw(body)
package shadergen

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/shadergen/caps"
	"github.com/gogpu/shadergen/glsl"
	"github.com/gogpu/shadergen/hlsl"
	"github.com/gogpu/shadergen/shadertext"
	"github.com/gogpu/shadergen/stageio"
)

// dialect is the emitter surface both language backends implement.
type dialect interface {
	WriteHeader(t *shadertext.Text)
	UniformBuffer(t *shadertext.Text, b stageio.UniformBlock)
	Texture(t *shadertext.Text, tex stageio.Texture)
	TexelBuffer(t *shadertext.Text, buf stageio.TexelBuffer)
	VertexEntryPoint(t *shadertext.Text, sig stageio.VertexSignature)
	FragmentEntryPoint(t *shadertext.Text, sig stageio.FragmentSignature) error
}

var (
	_ dialect = (*glsl.Emitter)(nil)
	_ dialect = (*hlsl.Emitter)(nil)
)

// Generator writes shader source for one device. It is immutable after New
// and safe for concurrent use.
type Generator struct {
	caps    caps.Set
	dialect dialect
}

// New resolves the capabilities of backend through q and returns a
// generator for them. q may be nil for D3D11 and Vulkan.
// If opts.Logger is nil the package logger is used.
func New(backend caps.Backend, q caps.FeatureQuery, opts caps.Options) (*Generator, error) {
	if opts.Logger == nil {
		opts.Logger = Logger()
	}
	set, err := caps.Resolve(backend, q, opts)
	if err != nil {
		return nil, fmt.Errorf("shadergen: %w", err)
	}
	return NewWithCaps(set)
}

// NewWithCaps returns a generator for an already resolved capability set.
func NewWithCaps(set caps.Set) (*Generator, error) {
	d, err := newDialect(set)
	if err != nil {
		return nil, fmt.Errorf("shadergen: %w", err)
	}
	return &Generator{caps: set, dialect: d}, nil
}

// newDialect selects the emitter for the set's backend.
func newDialect(set caps.Set) (dialect, error) {
	switch set.Backend() {
	case caps.BackendOpenGL, caps.BackendOpenGLES, caps.BackendVulkan:
		return glsl.NewEmitter(set), nil
	case caps.BackendD3D11:
		return hlsl.NewEmitter(set), nil
	default:
		return nil, caps.NewError(caps.ErrUnknownBackend, fmt.Sprintf("no shader dialect for %s", set.Backend()))
	}
}

// Caps returns the resolved capability set.
func (g *Generator) Caps() caps.Set {
	return g.caps
}

// Backend returns the backend the generator targets.
func (g *Generator) Backend() caps.Backend {
	return g.caps.Backend()
}

// Profile returns the compile target for a stage: the HLSL profile such as
// "vs_5_0" on D3D11, or the GLSL version directive otherwise.
func (g *Generator) Profile(stage stageio.Stage) string {
	if g.caps.GLSL() {
		return g.caps.VersionDirective()
	}

	suffix := g.caps.ShaderModel().ProfileSuffix()
	switch stage {
	case stageio.StageVertex:
		return "vs_" + suffix
	case stageio.StageFragment:
		return "ps_" + suffix
	default:
		return ""
	}
}

// WriteHeader writes the dialect preamble: version, extensions, backend
// identity macros, precision statements and the vocabulary shim.
func (g *Generator) WriteHeader(t *shadertext.Text) {
	g.dialect.WriteHeader(t)
}

// DeclareUniformBuffer writes a uniform buffer declaration.
func (g *Generator) DeclareUniformBuffer(t *shadertext.Text, b stageio.UniformBlock) {
	g.dialect.UniformBuffer(t, b)
}

// DeclareTexture writes a 2D texture and sampler declaration.
func (g *Generator) DeclareTexture(t *shadertext.Text, tex stageio.Texture) {
	g.dialect.Texture(t, tex)
}

// DeclareTexelBuffer writes a buffer texture declaration.
func (g *Generator) DeclareTexelBuffer(t *shadertext.Text, buf stageio.TexelBuffer) {
	g.dialect.TexelBuffer(t, buf)
}

// DeclareVertexEntryPoint writes the vertex-stage entry point signature.
func (g *Generator) DeclareVertexEntryPoint(t *shadertext.Text, sig stageio.VertexSignature) {
	g.dialect.VertexEntryPoint(t, sig)
}

// DeclareFragmentEntryPoint writes the fragment-stage entry point
// signature. More than one color output without dual-source blending is
// rejected with caps.ErrTooManyColorOutputs before anything is written.
func (g *Generator) DeclareFragmentEntryPoint(t *shadertext.Text, sig stageio.FragmentSignature) error {
	return g.dialect.FragmentEntryPoint(t, sig)
}

func (g *Generator) logProgram(name string, text *shadertext.Text) {
	Logger().Debug("shader generated",
		slog.String("shader", name),
		slog.String("backend", g.caps.Backend().String()),
		slog.Int("bytes", text.Len()))
}
