// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/shadergen"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestProfilesCommand(t *testing.T) {
	out, err := run(t, "profiles")
	require.NoError(t, err)
	for _, name := range []string{"gl46", "gl33", "gl30", "gles32", "gles30", "vulkan", "d3d11"} {
		assert.Contains(t, out, name)
	}
}

func TestCapsCommand(t *testing.T) {
	out, err := run(t, "caps", "gl33")
	require.NoError(t, err)
	assert.Contains(t, out, "version:          330 (3.30)")
	assert.Contains(t, out, "binding layout:   true")
	assert.Contains(t, out, "GL_ARB_explicit_attrib_location")

	out, err = run(t, "caps", "gl46")
	require.NoError(t, err)
	assert.Contains(t, out, "version:          430 (4.30)")

	out, err = run(t, "caps", "gles30")
	require.NoError(t, err)
	assert.Contains(t, out, "version:          300 es (3.00 es)")

	out, err = run(t, "caps", "d3d11")
	require.NoError(t, err)
	assert.Contains(t, out, "shader model:")
	assert.NotContains(t, out, "version:")
}

func TestCapsUnknownProfile(t *testing.T) {
	_, err := run(t, "caps", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown profile "nope"`)
}

func TestDumpCommand(t *testing.T) {
	out, err := run(t, "dump", "vulkan", shadergen.ProgramFillFragment)
	require.NoError(t, err)
	assert.Contains(t, out, "#version 450 core")
	assert.Contains(t, out, "layout(push_constant) uniform UBOBlock")
	assert.NotContains(t, out, shadergen.ProgramScreenQuadVertex)
}

func TestDumpUnknownProgram(t *testing.T) {
	_, err := run(t, "dump", "gl46", "nope")
	require.ErrorIs(t, err, shadergen.ErrUnknownProgram)
}

func TestDumpAll(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "dump", "--all", "--out", dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 7*len(shadergen.Programs()))

	src, err := os.ReadFile(filepath.Join(dir, "d3d11_"+shadergen.ProgramCopyFragment+".hlsl"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "Texture2D samp0 : register(t0);")

	src, err = os.ReadFile(filepath.Join(dir, "gles30_"+shadergen.ProgramScreenQuadVertex+".glsl"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(src), "#version 300 es\n"))
}

func TestDumpConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`profiles:
  - name: mesa31
    backend: opengl
    shading_language_version: "4.50 (Core Profile) Mesa 23.1"
    api_version: "4.5"
`), 0o644))

	out, err := run(t, "--config", path, "dump", "mesa31", shadergen.ProgramScreenQuadVertex)
	require.NoError(t, err)
	assert.Contains(t, out, "#version 430\n")
}
