// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"cogentcore.org/glmath/base/errors"
)

var (
	// ErrIndexOutOfBounds is matched by the [*IndexError] panics raised
	// by positional component, row, column, and element access.
	ErrIndexOutOfBounds = errors.New("math32: index out of bounds")

	// ErrSingularMatrix is returned when inverting a matrix whose
	// determinant is within [SingularTolerance] of zero.
	ErrSingularMatrix = errors.New("math32: singular matrix")

	// ErrDegenerateVector is returned when normalizing a zero-length vector.
	ErrDegenerateVector = errors.New("math32: zero-length vector")

	// ErrInvalidComponent is returned when a vector or matrix component
	// in text form is not a valid float.
	ErrInvalidComponent = errors.New("math32: invalid component")

	// ErrTooFewComponents is returned when text has fewer components
	// than the type being decoded.
	ErrTooFewComponents = errors.New("math32: too few components")

	// ErrTooManyComponents is returned when text has more components
	// than the type being decoded.
	ErrTooManyComponents = errors.New("math32: too many components")
)

// SingularTolerance is the largest absolute determinant for which a
// matrix is considered singular (non-invertible) by Inverse.
//
// The comparison is absolute and does not depend on the scale of the
// matrix, so a well-conditioned matrix with very small elements (such
// as a uniform scale by 1e-5, whose determinant is 1e-15) is reported
// as singular. Use InverseUnchecked for such matrices, or rescale
// before inverting and apply the same scale to the result.
const SingularTolerance = 1e-12

// IndexError is the panic value for out of range positional access.
// It matches [ErrIndexOutOfBounds] with [errors.Is].
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: index %d with length %d", ErrIndexOutOfBounds, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}

// ParseError records a failure to decode the text form of a vector or matrix.
type ParseError struct {
	// Type is the name of the type being decoded, e.g. "Vector3".
	Type string

	// Text is the input text.
	Text string

	// Err is one of [ErrInvalidComponent], [ErrTooFewComponents],
	// or [ErrTooManyComponents], possibly wrapped with detail.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s from %q: %v", e.Type, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
