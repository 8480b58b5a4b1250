// SPDX-License-Identifier: MIT
// Package: qpekit/qpe
//
// config.go — immutable estimator parameters, the expansion-mode enum and
// functional options for optional collaborators.
//
// Contract (strict):
//   • Config is a value; New copies it and never mutates the caller's copy.
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     the estimator itself returns sentinel errors only.

package qpe

import "github.com/katalvlaran/qpekit/qft"

// ExpansionMode selects the product-formula family used by the evolution
// synthesizer to approximate exp(i·H·t).
type ExpansionMode int

const (
	// Trotter is the first-order Lie-Trotter product formula.
	Trotter ExpansionMode = iota
	// Suzuki is the higher-order symmetric Suzuki decomposition.
	Suzuki
)

// String returns the canonical lowercase expansion name.
func (m ExpansionMode) String() string {
	switch m {
	case Trotter:
		return "trotter"
	case Suzuki:
		return "suzuki"
	default:
		return "unknown"
	}
}

// Valid reports whether m is a recognized expansion mode.
func (m ExpansionMode) Valid() bool { return m == Trotter || m == Suzuki }

// ParseExpansion converts a configuration string into an ExpansionMode.
//
// Errors: ErrUnknownExpansion for anything but "trotter" or "suzuki".
func ParseExpansion(s string) (ExpansionMode, error) {
	switch s {
	case "trotter":
		return Trotter, nil
	case "suzuki":
		return Suzuki, nil
	default:
		return 0, ErrUnknownExpansion
	}
}

// Config holds the immutable phase-estimation parameters.
//
// Fields:
//   - NumTimeSlices  — evolution time slices handed to the synthesizer.
//   - Expansion      — Trotter or Suzuki product formula.
//   - ExpansionOrder — order of the chosen expansion (>= 1).
//   - NumAncillae    — requested phase-readout qubits (>= 1). When
//     NegativeEvals is set, one extra sign qubit is added automatically.
//   - EvoTime        — evolution time; 0 means "derive from the spectral
//     bound" (the usual case).
//   - UseBasisGates  — ask the synthesizer for native/basis gates.
//   - HermitianMatrix— whether the source matrix is already Hermitian;
//     consulted by PrepareMatrix at the ingestion boundary.
//   - NegativeEvals  — reserve a sign bit and halve the phase range so
//     negative eigenvalues stay representable.
type Config struct {
	NumTimeSlices   int
	Expansion       ExpansionMode
	ExpansionOrder  int
	NumAncillae     int
	EvoTime         float64
	UseBasisGates   bool
	HermitianMatrix bool
	NegativeEvals   bool
}

// DefaultConfig mirrors the canonical defaults: one time slice, first-order
// Trotter, one ancilla, auto-derived evolution time, basis gates on, a
// Hermitian source and non-negative eigenvalues.
func DefaultConfig() Config {
	return Config{
		NumTimeSlices:   1,
		Expansion:       Trotter,
		ExpansionOrder:  1,
		NumAncillae:     1,
		EvoTime:         0,
		UseBasisGates:   true,
		HermitianMatrix: true,
		NegativeEvals:   false,
	}
}

// Option customizes optional estimator collaborators at construction.
type Option func(*Estimator)

// WithNegativeEvalQFTs supplies the forward/inverse QFT pair used by the
// negative-eigenvalue correction, each sized to ancillae−1 qubits. When
// omitted, two fresh exact builders are constructed internally — the pair
// is never shared between estimators. Panics on nil components (programmer
// error); size mismatches surface later as ErrNEQFTSize.
func WithNegativeEvalQFTs(forward, inverse qft.Builder) Option {
	if forward == nil || inverse == nil {
		panic("qpe: WithNegativeEvalQFTs(nil)")
	}
	return func(e *Estimator) {
		e.neQFTs[0] = forward
		e.neQFTs[1] = inverse
	}
}
