// Package pauli models operators as ordered weighted sums of Pauli strings.
//
// 🚀 What is a Pauli decomposition?
//
//	Any operator on n qubits can be written as a weighted sum of tensor
//	products of the Pauli matrices {I, X, Y, Z}. Each term is stored in
//	the symplectic convention: a complex coefficient plus two n-bit masks
//	(Z-mask, X-mask) identifying the Pauli letter on every qubit.
//
// ✨ What this package provides:
//   - Term — one (coefficient, Pauli-string) pair with identity detection
//   - Operator — an ordered, read-only collection of terms over n qubits
//   - Adjoint() — conjugate-transpose at the decomposition level
//   - IsHermitian() — coefficient-reality check within a fixed tolerance
//
// The package is a data contract, not an algebra: term arithmetic,
// simplification and matrix decomposition stay with the caller. Consumers
// (see qpekit/qpe) only iterate terms, read the qubit count and take
// adjoints.
//
// ⚙️ Usage:
//
//	op, err := pauli.NewOperator(2,
//	  pauli.Term{Coeff: 0.5, Z: []bool{true, false}, X: []bool{false, false}},
//	  pauli.Identity(2, 1.0),
//	)
//
// All operations are deterministic and allocation-light; an Operator is
// immutable after construction.
package pauli
