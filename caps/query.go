// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package caps

import "slices"

// FeatureQuery is the device-layer surface the resolver reads once.
type FeatureQuery interface {
	// ShadingLanguageVersion returns the driver-reported shading language
	// version string. ok is false when the driver returned nothing.
	ShadingLanguageVersion() (version string, ok bool)

	// HasVersion reports whether the context provides the given API version
	// of the active backend (desktop GL or GLES).
	HasVersion(major, minor int) bool

	// HasExtension reports whether the named extension is available.
	HasExtension(name string) bool
}

// Extension names consulted during resolution.
const (
	ExtBlendFuncExtended         = "GL_EXT_blend_func_extended"
	ExtExplicitAttribLocation    = "GL_ARB_explicit_attrib_location"
	ExtExplicitUniformLocation   = "GL_ARB_explicit_uniform_location"
	ExtShadingLanguage420Pack    = "GL_ARB_shading_language_420pack"
	ExtUniformBufferObject       = "GL_ARB_uniform_buffer_object"
	ExtShaderStorageBufferObject = "GL_ARB_shader_storage_buffer_object"
)

// StaticQuery is a FeatureQuery backed by fixed values. Profiles and tests
// use it in place of a live driver.
type StaticQuery struct {
	// GLSLVersion is the shading language version string. Empty means the
	// driver reports none.
	GLSLVersion string

	// APIMajor and APIMinor are the context version.
	APIMajor int
	APIMinor int

	// Extensions lists the available extensions.
	Extensions []string
}

// ShadingLanguageVersion implements FeatureQuery.
func (q StaticQuery) ShadingLanguageVersion() (string, bool) {
	return q.GLSLVersion, q.GLSLVersion != ""
}

// HasVersion implements FeatureQuery.
func (q StaticQuery) HasVersion(major, minor int) bool {
	if q.APIMajor != major {
		return q.APIMajor > major
	}
	return q.APIMinor >= minor
}

// HasExtension implements FeatureQuery.
func (q StaticQuery) HasExtension(name string) bool {
	return slices.Contains(q.Extensions, name)
}
