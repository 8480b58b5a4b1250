// SPDX-License-Identifier: MIT
// Package: qpekit/qpe
//
// hermitize.go — pure Hermitian block embedding for non-Hermitian sources.
//
// A non-Hermitian square matrix A cannot be phase-estimated directly, but
// the 2n×2n block matrix
//
//	B = ⎡ 0   A ⎤
//	    ⎣ A†  0 ⎦
//
// is Hermitian by construction and its eigenvalues are ±(singular values
// of A). Phase estimation over B therefore recovers singular values from
// |phase|, which makes the sign slot structurally required: the returned
// Config always has NegativeEvals set.
//
// This is a pure transformation: inputs are never mutated, and the ancilla
// sign-bit increment stays in exactly one place (qpe.New) keyed off the
// NegativeEvals flag, so hermitized configurations cannot double-count it.

package qpe

import "github.com/katalvlaran/qpekit/cmatrix"

// Hermitize embeds the square matrix a into the Hermitian block matrix
// [[0, a], [a†, 0]] and returns it together with a configuration forcing
// negative-eigenvalue support.
//
// Errors: cmatrix.ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^2).
func Hermitize(a *cmatrix.Dense, cfg Config) (*cmatrix.Dense, Config, error) {
	if err := cmatrix.ValidateNotNil(a); err != nil {
		return nil, cfg, err
	}
	if a.Rows() != a.Cols() {
		return nil, cfg, ErrNonSquare
	}

	n := a.Rows()
	b, err := cmatrix.NewDense(2*n, 2*n)
	if err != nil {
		return nil, cfg, err
	}
	adj, err := cmatrix.ConjTranspose(a)
	if err != nil {
		return nil, cfg, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := a.At(i, j) // in bounds by construction
			_ = b.Set(i, n+j, v)
			w, _ := adj.At(i, j)
			_ = b.Set(n+i, j, w)
		}
	}

	out := cfg
	out.HermitianMatrix = true
	out.NegativeEvals = true

	return b, out, nil
}

// PrepareMatrix applies the configuration's hermiticity knowledge at the
// matrix-ingestion boundary: a matrix declared Hermitian passes through
// untouched, anything else is embedded via Hermitize.
func PrepareMatrix(a *cmatrix.Dense, cfg Config) (*cmatrix.Dense, Config, error) {
	if cfg.HermitianMatrix {
		return a, cfg, nil
	}

	return Hermitize(a, cfg)
}
