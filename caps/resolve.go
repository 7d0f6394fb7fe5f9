// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package caps

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/gogpu/naga/hlsl"
)

// Options configures capability resolution.
type Options struct {
	// DualSourceBlend is reported by the device layer and passed through.
	DualSourceBlend bool

	// ShaderModel is the HLSL target model for D3D11 compile profiles.
	// Defaults to ShaderModel5_0.
	ShaderModel hlsl.ShaderModel

	// Logger receives the unparsable-version warning and the resolution
	// summary. Nil discards everything.
	Logger *slog.Logger
}

// DefaultOptions returns options for a device without dual-source blending
// targeting Shader Model 5.0.
func DefaultOptions() Options {
	return Options{
		ShaderModel: hlsl.ShaderModel5_0,
	}
}

// Set is the capability record every emitter reads. It is computed once by
// Resolve and never changes afterwards; the zero value is not useful.
type Set struct {
	backend                Backend
	version                Version
	versionFallback        bool
	interfaceBlocks        bool
	bindingLayout          bool
	dualSourceBlend        bool
	bufferSamplerPrecision bool
	extensions             []string
	shaderModel            hlsl.ShaderModel
}

// Backend returns the backend the set was resolved for.
func (s Set) Backend() Backend { return s.backend }

// GLSL reports whether shaders are written in the GLSL family.
func (s Set) GLSL() bool { return s.backend != BackendD3D11 }

// InterfaceBlocks reports whether stage inputs/outputs are grouped into
// named interface blocks.
func (s Set) InterfaceBlocks() bool { return s.interfaceBlocks }

// BindingLayout reports whether explicit binding/location qualifiers are
// emitted.
func (s Set) BindingLayout() bool { return s.bindingLayout }

// DualSourceBlend reports whether the device supports dual-source blending.
func (s Set) DualSourceBlend() bool { return s.dualSourceBlend }

// Version returns the negotiated GLSL version. It is only meaningful for
// the GL backends; Vulkan reports 4.50.
func (s Set) Version() Version { return s.version }

// VersionFallback reports whether the driver version string was unparsable
// and the minimum version was assumed instead.
func (s Set) VersionFallback() bool { return s.versionFallback }

// VersionDirective returns the value written after #version, or "" for HLSL.
func (s Set) VersionDirective() string {
	switch s.backend {
	case BackendVulkan:
		return "450 core"
	case BackendOpenGL, BackendOpenGLES:
		return s.version.Directive()
	default:
		return ""
	}
}

// Extensions returns the #extension requirements in emission order.
func (s Set) Extensions() []string { return slices.Clone(s.extensions) }

// BufferSamplerPrecision reports whether GLES headers declare a precision
// for usamplerBuffer.
func (s Set) BufferSamplerPrecision() bool { return s.bufferSamplerPrecision }

// ShaderModel returns the HLSL target model.
func (s Set) ShaderModel() hlsl.ShaderModel { return s.shaderModel }

// LogValue implements slog.LogValuer.
func (s Set) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", s.backend.String()),
		slog.String("version", s.VersionDirective()),
		slog.Bool("fallback", s.versionFallback),
		slog.Bool("interface_blocks", s.interfaceBlocks),
		slog.Bool("binding_layout", s.bindingLayout),
		slog.Bool("dual_source_blend", s.dualSourceBlend),
		slog.Any("extensions", s.extensions),
	)
}

// Resolve derives the capability set for backend from the feature query.
// q may be nil for D3D11 and Vulkan; the GL backends require it.
//
// A missing version string is a fatal error. An unparsable one is logged
// and the minimum version for the backend is assumed.
func Resolve(backend Backend, q FeatureQuery, opts Options) (Set, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := Set{
		backend:         backend,
		dualSourceBlend: opts.DualSourceBlend,
		shaderModel:     opts.ShaderModel,
	}

	switch backend {
	case BackendD3D11:
		// HLSL: nothing to negotiate.
	case BackendVulkan:
		s.version = Version{Major: 4, Minor: 50}
		s.interfaceBlocks = true
		s.bindingLayout = true
	case BackendOpenGL, BackendOpenGLES:
		if err := s.resolveGL(q, logger); err != nil {
			return Set{}, err
		}
	default:
		return Set{}, NewError(ErrUnknownBackend, fmt.Sprintf("cannot resolve capabilities for %s", backend))
	}

	logger.Debug("shader capabilities resolved", slog.Any("caps", s))
	return s, nil
}

// resolveGL negotiates the GLSL version, feature flags and extension list
// for desktop GL and GLES.
func (s *Set) resolveGL(q FeatureQuery, logger *slog.Logger) error {
	if q == nil {
		return NewError(ErrMissingQuery, fmt.Sprintf("%s requires a feature query", s.backend))
	}

	es := s.backend == BackendOpenGLES
	raw, ok := q.ShadingLanguageVersion()
	if !ok {
		return NewError(ErrMissingVersion, "driver reported no shading language version")
	}

	v, err := ParseVersion(raw, es)
	if err != nil {
		logger.Warn("invalid GLSL version string, using minimum version",
			slog.String("backend", s.backend.String()),
			slog.String("version", raw),
			slog.Any("error", err))
		s.versionFallback = true
		v = VersionDesktopFallback
		if es {
			v = VersionESFallback
		}
	}
	s.version = v

	// During a fallback the context is treated as the minimum one (3.0 for
	// both APIs) so no feature beyond the fallback version is enabled.
	atLeast := q.HasVersion
	if s.versionFallback {
		atLeast = func(major, minor int) bool {
			return major < 3 || (major == 3 && minor == 0)
		}
	}

	s.interfaceBlocks = atLeast(3, 2)

	if es {
		s.bindingLayout = atLeast(3, 1)
		s.bufferSamplerPrecision = atLeast(3, 2)
		if q.HasExtension(ExtBlendFuncExtended) {
			s.extensions = append(s.extensions, ExtBlendFuncExtended)
		}
		return nil
	}

	bindingExts := q.HasExtension(ExtExplicitAttribLocation) &&
		q.HasExtension(ExtExplicitUniformLocation) &&
		q.HasExtension(ExtShadingLanguage420Pack)
	s.bindingLayout = atLeast(4, 2) || bindingExts

	// Explicit uniform locations are core only from 4.3, so a 4.2 context
	// still requires the extensions when it reports them.
	if bindingExts && !atLeast(4, 3) {
		s.extensions = append(s.extensions,
			ExtExplicitAttribLocation,
			ExtExplicitUniformLocation,
			ExtShadingLanguage420Pack)
	}
	if !atLeast(3, 2) {
		s.extensions = append(s.extensions, ExtUniformBufferObject)
	}
	if !atLeast(4, 3) && q.HasExtension(ExtShaderStorageBufferObject) {
		s.extensions = append(s.extensions, ExtShaderStorageBufferObject)
	}
	return nil
}
