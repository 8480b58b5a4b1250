// Package cmatrix offers dense complex matrices for circuit-construction
// reference math.
//
// The cmatrix package provides:
//
//   - Dense — a row-major complex128 matrix with safe, error-returning
//     accessors (At/Set never panic on user input).
//   - Structural operations: Clone, ConjTranspose, Mul, Identity.
//   - Predicates under an explicit tolerance: IsHermitian, IsUnitary,
//     EqualApprox.
//
// Matrices here are reference/validation artifacts (e.g. the exact DFT
// matrix, Hermitian block embeddings), so the package favors clarity and
// determinism over BLAS-grade performance: fixed loop orders, a single flat
// buffer, no hidden allocations in accessors.
//
// See qpekit/qft (vector mode) and qpekit/qpe (hermitization) for the
// consuming call sites.
package cmatrix
