// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ferrors is the tagged-union error type shared across the
// formant pipeline: Workspace, Polynomial, and Numeric failures, per
// spec §7. Nothing is retried internally -- every failure surfaces to
// the caller at the outermost entry point.
package ferrors

import "fmt"

// Kind classifies a pipeline failure.
type Kind int

const (
	// Workspace means the caller-supplied scratch buffer was too small.
	Workspace Kind = iota
	// Polynomial means zero-degree input, failed deflation, or a
	// divide-by-zero during synthetic division.
	Polynomial
	// Numeric means a downstream numeric propagation. No function in
	// this module returns it: FindFormants passes a collapsed LPC
	// residual (silence, a constant signal) through instead of failing.
	Numeric
)

func (k Kind) String() string {
	switch k {
	case Workspace:
		return "workspace"
	case Polynomial:
		return "polynomial"
	case Numeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// Error is the error type every entry point in this module returns.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// Is reports whether target is an *Error of the same Kind as e, so
// errors.Is(err, ferrors.New(ferrors.Workspace, "")) matches any
// workspace error whatever its Reason.
func (e *Error) Is(target error) bool {
	o, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == o.Kind
}

// New constructs an *Error of the given kind and reason.
func New(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}
