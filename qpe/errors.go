// SPDX-License-Identifier: MIT
// Package qpe: sentinel error set.
// Only sentinel variables are exposed; callers MUST branch with errors.Is.
// Sentinels are never wrapped at definition site; call sites attach context
// via fmt.Errorf("ctx: %w", ErrX).

package qpe

import "errors"

var (
	// ErrNilOperator indicates that no operator was supplied.
	// Classification: configuration error (fatal).
	ErrNilOperator = errors.New("qpe: operator is required")

	// ErrNilIQFT indicates that no inverse-QFT component was supplied.
	ErrNilIQFT = errors.New("qpe: inverse-QFT component is required")

	// ErrNilSynthesizer indicates that no evolution-circuit synthesizer
	// was supplied.
	ErrNilSynthesizer = errors.New("qpe: evolution synthesizer is required")

	// ErrBadAncillae indicates a requested ancilla count below 1.
	ErrBadAncillae = errors.New("qpe: at least one ancilla qubit is required")

	// ErrBadTimeSlices indicates a negative time-slice count.
	ErrBadTimeSlices = errors.New("qpe: time slices must be non-negative")

	// ErrBadExpansionOrder indicates an expansion order below 1.
	ErrBadExpansionOrder = errors.New("qpe: expansion order must be positive")

	// ErrUnknownExpansion indicates an expansion mode outside
	// {trotter, suzuki}.
	ErrUnknownExpansion = errors.New("qpe: unknown expansion mode")

	// ErrMultipleIdentity indicates a Pauli decomposition carrying more
	// than one all-identity term; the decomposition is assumed canonical.
	ErrMultipleIdentity = errors.New("qpe: multiple identity pauli terms are present")

	// ErrZeroOperator indicates that the sum of absolute Pauli
	// coefficients is zero, leaving no spectral bound to scale by.
	ErrZeroOperator = errors.New("qpe: operator has zero spectral bound")

	// ErrVectorMode indicates a request for state-vector construction;
	// phase estimation is only available as a circuit.
	// Classification: unsupported operation (fatal).
	ErrVectorMode = errors.New("qpe: only possible as circuit, not vector")

	// ErrIQFTSize indicates an inverse-QFT component whose qubit count
	// does not equal the effective ancilla count.
	ErrIQFTSize = errors.New("qpe: inverse-QFT size mismatch")

	// ErrNEQFTSize indicates a supplied negative-eigenvalue QFT pair whose
	// qubit count does not equal the magnitude width (ancillae − 1).
	ErrNEQFTSize = errors.New("qpe: negative-eval QFT size mismatch")

	// ErrRegisterSize indicates an input register whose size does not
	// match the operator's qubit count.
	ErrRegisterSize = errors.New("qpe: input register size mismatch")

	// ErrNonSquare indicates a non-square matrix passed to Hermitize.
	ErrNonSquare = errors.New("qpe: matrix must be square")
)
