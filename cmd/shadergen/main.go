// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command shadergen generates the built-in shader programs for device
// profiles without a live driver.
//
// Usage:
//
//	shadergen [--config FILE] [-v] <command>
//
// Examples:
//
//	shadergen profiles                        # List device profiles
//	shadergen caps gl33                       # Show resolved capabilities
//	shadergen dump vulkan fill_fs             # Print one program
//	shadergen dump --all --out build/shaders  # Write every program for every profile
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/shadergen"
	"github.com/gogpu/shadergen/internal/profile"
)

const shadergenVersion = "0.1.0-dev"

// app holds the state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "shadergen",
		Short:         "Generate portable GLSL and HLSL shader programs",
		Version:       shadergenVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if a.verbose {
				shadergen.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with extra device profiles")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log capability resolution and generation")

	root.AddCommand(
		a.profilesCmd(),
		a.capsCmd(),
		a.dumpCmd(),
	)
	return root
}

func (a *app) loadConfig() (*profile.Config, error) {
	return profile.Load(a.configPath)
}

func (a *app) lookup(name string) (profile.Profile, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return profile.Profile{}, err
	}
	p, ok := cfg.Lookup(name)
	if !ok {
		return profile.Profile{}, fmt.Errorf("unknown profile %q", name)
	}
	return p, nil
}

// newGenerator resolves a profile into a generator.
func newGenerator(p profile.Profile) (*shadergen.Generator, error) {
	backend, err := p.BackendValue()
	if err != nil {
		return nil, err
	}
	q, err := p.Query()
	if err != nil {
		return nil, err
	}
	gen, err := shadergen.New(backend, q, p.Options())
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return gen, nil
}
