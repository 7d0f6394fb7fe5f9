// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/shadergen"
	"github.com/gogpu/shadergen/caps"
)

func (a *app) profilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the known device profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range cfg.Profiles {
				fmt.Fprintf(out, "%-10s %s\n", p.Name, p.Backend)
			}
			return nil
		},
	}
}

func (a *app) capsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "caps <profile>",
		Short: "Print the capability set resolved for a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			gen, err := newGenerator(p)
			if err != nil {
				return err
			}
			writeCaps(cmd.OutOrStdout(), gen.Caps())
			return nil
		},
	}
}

func writeCaps(w io.Writer, set caps.Set) {
	fmt.Fprintf(w, "backend:          %s\n", set.Backend())
	if set.GLSL() {
		fmt.Fprintf(w, "version:          %s (%s)\n", set.VersionDirective(), set.Version())
		fmt.Fprintf(w, "version fallback: %t\n", set.VersionFallback())
		fmt.Fprintf(w, "interface blocks: %t\n", set.InterfaceBlocks())
		fmt.Fprintf(w, "binding layout:   %t\n", set.BindingLayout())
	} else {
		fmt.Fprintf(w, "shader model:     %s\n", set.ShaderModel())
	}
	fmt.Fprintf(w, "dual source:      %t\n", set.DualSourceBlend())
	if exts := set.Extensions(); len(exts) > 0 {
		fmt.Fprintf(w, "extensions:       %s\n", strings.Join(exts, " "))
	}
}

func (a *app) dumpCmd() *cobra.Command {
	var (
		all    bool
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "dump [profile [program]]",
		Short: "Print generated programs, or write all of them with --all",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				if len(args) > 0 {
					return errors.New("--all takes no arguments")
				}
				return a.dumpAll(outDir)
			}
			if len(args) == 0 {
				return errors.New("a profile is required without --all")
			}

			p, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			gen, err := newGenerator(p)
			if err != nil {
				return err
			}

			names := shadergen.Programs()
			if len(args) == 2 {
				names = []string{args[1]}
			}
			out := cmd.OutOrStdout()
			for _, name := range names {
				prog, err := gen.Generate(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "// %s (%s, %s)\n", prog.Name, prog.Stage, prog.Profile)
				fmt.Fprint(out, prog.Source)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "write every program for every profile")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory for --all")
	return cmd
}

// dumpAll writes <profile>_<program>.<glsl|hlsl> for every pair, one
// profile per goroutine.
func (a *app) dumpAll(dir string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, p := range cfg.Profiles {
		g.Go(func() error {
			gen, err := newGenerator(p)
			if err != nil {
				return err
			}
			ext := ".hlsl"
			if gen.Caps().GLSL() {
				ext = ".glsl"
			}
			for _, name := range shadergen.Programs() {
				prog, err := gen.Generate(name)
				if err != nil {
					return fmt.Errorf("profile %q: %w", p.Name, err)
				}
				path := filepath.Join(dir, p.Name+"_"+prog.Name+ext)
				if err := os.WriteFile(path, []byte(prog.Source), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
