// SPDX-License-Identifier: MIT
// Package: cmatrix
//
// ops.go — structural operations and tolerance-based predicates.
//
// Determinism & Policy:
//   - Fixed i/j/k loop orders; results are bit-reproducible for equal inputs.
//   - Predicates take an explicit eps; callers own the numeric policy.
//   - Validation delegates to validators.go; kernels wrap sentinels with a
//     call-site tag.

package cmatrix

import (
	"fmt"
	"math/cmplx"
)

// opErrorf attaches an operation tag to a sentinel for diagnostics.
func opErrorf(op string, err error) error {
	return fmt.Errorf("cmatrix.%s: %w", op, err)
}

// Identity returns I_n (n×n; ones on the diagonal, zeros elsewhere).
//
// Errors: ErrBadShape for n <= 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// ConjTranspose returns m† — the conjugate transpose (adjoint) of m.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ConjTranspose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf("ConjTranspose", err)
	}
	out := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return out, nil
}

// Mul returns the matrix product a×b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(r*n*c) with the classic i-k-j order for cache friendliness.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulShape(a, b); err != nil {
		return nil, opErrorf("Mul", err)
	}
	out := &Dense{r: a.r, c: b.c, data: make([]complex128, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*out.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// EqualApprox reports whether a and b coincide entrywise within eps
// (modulus of the difference).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c), early exit on first violation.
func EqualApprox(a, b *Dense, eps float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, opErrorf("EqualApprox", err)
	}
	for i := range a.data {
		if cmplx.Abs(a.data[i]-b.data[i]) > eps {
			return false, nil
		}
	}

	return true, nil
}

// IsHermitian reports whether m equals its conjugate transpose within eps.
// Only the upper triangle (plus the diagonal's imaginary part) is scanned.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^2 / 2).
func IsHermitian(m *Dense, eps float64) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, opErrorf("IsHermitian", err)
	}
	for i := 0; i < m.r; i++ {
		for j := i; j < m.c; j++ {
			if cmplx.Abs(m.data[i*m.c+j]-cmplx.Conj(m.data[j*m.c+i])) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsUnitary reports whether m†·m equals the identity within eps.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^3) (one product + one comparison sweep).
func IsUnitary(m *Dense, eps float64) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, opErrorf("IsUnitary", err)
	}
	adj, err := ConjTranspose(m)
	if err != nil {
		return false, err
	}
	prod, err := Mul(adj, m)
	if err != nil {
		return false, err
	}
	eye, err := Identity(m.r)
	if err != nil {
		return false, err
	}

	return EqualApprox(prod, eye, eps)
}
