// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package shadertext provides the append-only text sink shader generators
// write into.
//
// A Text is created per generation request and owned by the caller. No
// validation is performed on its contents; emitters are responsible for
// producing well-formed shader source by construction.
package shadertext

import (
	"fmt"
	"strings"
)

// indentUnit is the text written per indentation level.
const indentUnit = "    "

// Text accumulates generated shader source.
// The zero value is ready to use.
type Text struct {
	out    strings.Builder
	indent int
}

// Line writes one line at the current indentation, followed by a newline.
// With no args, format is written verbatim.
//
//nolint:goprintffuncname
func (t *Text) Line(format string, args ...any) {
	t.writeIndent()
	if len(args) == 0 {
		t.out.WriteString(format)
	} else {
		fmt.Fprintf(&t.out, format, args...)
	}
	t.out.WriteByte('\n')
}

// Blank writes an empty line.
func (t *Text) Blank() {
	t.out.WriteByte('\n')
}

// Raw appends s unchanged, ignoring indentation.
func (t *Text) Raw(s string) {
	t.out.WriteString(s)
}

// Indent increases the indentation level.
func (t *Text) Indent() {
	t.indent++
}

// Outdent decreases the indentation level.
func (t *Text) Outdent() {
	if t.indent > 0 {
		t.indent--
	}
}

// Len returns the number of bytes written so far.
func (t *Text) Len() int {
	return t.out.Len()
}

// String returns the accumulated source.
func (t *Text) String() string {
	return t.out.String()
}

func (t *Text) writeIndent() {
	for i := 0; i < t.indent; i++ {
		t.out.WriteString(indentUnit)
	}
}
