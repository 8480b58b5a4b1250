// SPDX-License-Identifier: MIT
// Package cmatrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// cmatrix package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered error
// conditions.

package cmatrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "cmatrix: ..." for consistency and easy
// grepping. Sentinels are never wrapped at definition site; call sites may
// add context with fmt.Errorf("ctx: %w", ErrX) — callers still match with
// errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0). Constructors validate before allocating.
	ErrBadShape = errors.New("cmatrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("cmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Mul where a.Cols != b.Rows or EqualApprox on
	// differently shaped matrices.
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (Hermiticity,
	// unitarity) but the input wasn't.
	ErrNonSquare = errors.New("cmatrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was
	// used where a matrix is required.
	ErrNilMatrix = errors.New("cmatrix: nil matrix")
)
