// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package profile loads device profiles: fixed answers to the capability
// queries a live driver would give, used to generate shaders offline.
package profile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/naga/hlsl"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/shadergen/caps"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds a set of device profiles.
type Config struct {
	Profiles []Profile `yaml:"profiles"`
}

// Profile describes one device.
type Profile struct {
	Name    string `yaml:"name"`
	Backend string `yaml:"backend"`

	// ShadingLanguageVersion is the driver's version string. Empty means
	// the driver reports none, which GL backends reject.
	ShadingLanguageVersion string `yaml:"shading_language_version"`

	// APIVersion is the context version as "major.minor".
	APIVersion string   `yaml:"api_version"`
	Extensions []string `yaml:"extensions"`

	DualSourceBlend bool `yaml:"dual_source_blend"`

	// ShaderModel is the HLSL target model, e.g. "5.0". Defaults to 5.0.
	ShaderModel string `yaml:"shader_model"`
}

// shaderModels maps profile spellings to naga shader models.
var shaderModels = map[string]hlsl.ShaderModel{
	"":    hlsl.ShaderModel5_0,
	"5.0": hlsl.ShaderModel5_0,
	"5.1": hlsl.ShaderModel5_1,
	"6.0": hlsl.ShaderModel6_0,
}

// Defaults returns the embedded profiles.
func Defaults() (*Config, error) {
	return Parse(defaultsYAML)
}

// Parse decodes a YAML profile document and validates every profile.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}
	seen := make(map[string]struct{}, len(cfg.Profiles))
	for _, p := range cfg.Profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("duplicate profile %q", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return cfg, nil
}

// Load returns the embedded profiles, overlaid with the profiles in path
// when path is not empty. A profile in path replaces the default of the
// same name.
func Load(path string) (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	user, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, p := range user.Profiles {
		cfg.put(p)
	}
	return cfg, nil
}

func (c *Config) put(p Profile) {
	for i := range c.Profiles {
		if c.Profiles[i].Name == p.Name {
			c.Profiles[i] = p
			return
		}
	}
	c.Profiles = append(c.Profiles, p)
}

// Lookup returns the profile named name.
func (c *Config) Lookup(name string) (Profile, bool) {
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Names returns the profile names in file order.
func (c *Config) Names() []string {
	names := make([]string, len(c.Profiles))
	for i, p := range c.Profiles {
		names[i] = p.Name
	}
	return names
}

// Validate checks the fields that can be checked without resolving.
func (p Profile) Validate() error {
	if p.Name == "" {
		return errors.New("profile without name")
	}
	if _, err := caps.ParseBackend(p.Backend); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	if _, _, err := p.apiVersion(); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	if _, ok := shaderModels[p.ShaderModel]; !ok {
		return fmt.Errorf("profile %q: unsupported shader model %q", p.Name, p.ShaderModel)
	}
	return nil
}

// BackendValue returns the parsed backend.
func (p Profile) BackendValue() (caps.Backend, error) {
	return caps.ParseBackend(p.Backend)
}

// Query returns the feature query the profile describes.
func (p Profile) Query() (caps.StaticQuery, error) {
	major, minor, err := p.apiVersion()
	if err != nil {
		return caps.StaticQuery{}, err
	}
	return caps.StaticQuery{
		GLSLVersion: p.ShadingLanguageVersion,
		APIMajor:    major,
		APIMinor:    minor,
		Extensions:  p.Extensions,
	}, nil
}

// Options returns resolver options for the profile.
func (p Profile) Options() caps.Options {
	opts := caps.DefaultOptions()
	opts.DualSourceBlend = p.DualSourceBlend
	if sm, ok := shaderModels[p.ShaderModel]; ok {
		opts.ShaderModel = sm
	}
	return opts
}

func (p Profile) apiVersion() (major, minor int, err error) {
	if p.APIVersion == "" {
		return 0, 0, nil
	}
	if _, err := fmt.Sscanf(p.APIVersion, "%d.%d", &major, &minor); err != nil {
		return 0, 0, fmt.Errorf("invalid api_version %q: %w", p.APIVersion, err)
	}
	return major, minor, nil
}
