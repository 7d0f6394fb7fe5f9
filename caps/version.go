// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package caps

import (
	"fmt"
	"strings"
)

// Version represents a GLSL language version.
type Version struct {
	Major uint8
	Minor uint8
	ES    bool // true for GLSL ES
}

// Version ceilings and fallbacks. Generated text never uses a language
// feature newer than the ceiling.
var (
	// VersionDesktopCeiling is the newest desktop GLSL version emitted.
	VersionDesktopCeiling = Version{Major: 4, Minor: 30}

	// VersionESCeiling is the newest GLSL ES version emitted.
	VersionESCeiling = Version{Major: 3, Minor: 20, ES: true}

	// VersionDesktopFallback is used when the driver string is unparsable.
	VersionDesktopFallback = Version{Major: 1, Minor: 30}

	// VersionESFallback is used when the driver string is unparsable.
	VersionESFallback = Version{Major: 3, Minor: 0, ES: true}
)

// Number returns the numeric version code (e.g., "430", "300").
func (v Version) Number() string {
	return fmt.Sprintf("%d%02d", v.Major, v.Minor)
}

// Directive returns the value of the #version directive for v.
// GLSL ES 3.00 and later carry an " es" suffix.
func (v Version) Directive() string {
	if v.ES && v.Major >= 3 {
		return v.Number() + " es"
	}
	return v.Number()
}

// String returns the version in dotted form, e.g. "4.30" or "3.00 es".
func (v Version) String() string {
	if v.ES {
		return fmt.Sprintf("%d.%02d es", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%02d", v.Major, v.Minor)
}

// AtLeast reports whether v is major.minor or newer. Minor is compared in
// GLSL's two-digit form, so AtLeast(4, 30) holds for 4.30 and 4.60.
func (v Version) AtLeast(major, minor int) bool {
	return int(v.Major)*100+int(v.Minor) >= major*100+minor
}

// ParseVersion parses a driver-reported shading language version string
// such as "4.60 NVIDIA" or "OpenGL ES GLSL ES 3.20". Any non-numeric prefix
// is skipped; the remainder must start with <major>.<minor>.
//
// The result is clamped to VersionESCeiling or VersionDesktopCeiling, so any
// number that parses is accepted ("4.600" yields 4.30). Below the ceiling the
// minor version is limited to the two digits a directive can carry.
func ParseVersion(s string, es bool) (Version, error) {
	start := strings.IndexAny(s, "0123456789")
	if start < 0 {
		return Version{}, NewError(ErrInvalidVersion, fmt.Sprintf("no version number in %q", s))
	}

	var major, minor int
	if n, err := fmt.Sscanf(s[start:], "%d.%d", &major, &minor); n != 2 || err != nil {
		return Version{}, NewError(ErrInvalidVersion, fmt.Sprintf("malformed version %q", s))
	}

	ceiling := VersionDesktopCeiling
	if es {
		ceiling = VersionESCeiling
	}
	if major > int(ceiling.Major) || (major == int(ceiling.Major) && minor >= int(ceiling.Minor)) {
		return ceiling, nil
	}

	minor = min(max(minor, 0), 99)
	return Version{Major: uint8(major), Minor: uint8(minor), ES: es}, nil //nolint:gosec // G115: major is below the ceiling, minor is 0..99
}
