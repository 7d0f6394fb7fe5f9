// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package caps

import "fmt"

// ErrorKind categorizes shader generation errors.
type ErrorKind uint8

const (
	// ErrUnknownBackend indicates a Backend value outside the known set.
	ErrUnknownBackend ErrorKind = iota

	// ErrMissingQuery indicates a GL backend was resolved without a
	// feature query to ask for the driver version.
	ErrMissingQuery

	// ErrMissingVersion indicates the driver reported no shading language
	// version string at all.
	ErrMissingVersion

	// ErrInvalidVersion indicates the driver version string could not be
	// parsed. Resolution recovers from it by falling back to the minimum
	// version, so it is only logged.
	ErrInvalidVersion

	// ErrTooManyColorOutputs indicates a fragment entry point asked for more
	// than one color output on a device without dual-source blending.
	ErrTooManyColorOutputs
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownBackend:
		return "UnknownBackend"
	case ErrMissingQuery:
		return "MissingQuery"
	case ErrMissingVersion:
		return "MissingVersion"
	case ErrInvalidVersion:
		return "InvalidVersion"
	case ErrTooManyColorOutputs:
		return "TooManyColorOutputs"
	default:
		return "Unknown"
	}
}

// Error represents a shader generation error.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Message provides details about the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("shadergen %s: %s", e.Kind, e.Message)
}

// NewError creates a new error of the given kind.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

// IsFatal reports whether the error is a contract violation that aborts
// generation. Only ErrInvalidVersion is recoverable.
func (e *Error) IsFatal() bool {
	return e.Kind != ErrInvalidVersion
}
