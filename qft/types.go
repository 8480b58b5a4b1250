// SPDX-License-Identifier: MIT
// Package: qpekit/qft
//
// types.go — the output Mode enum, its string boundary, and the Builder
// capability interface injected into consumers.

package qft

import (
	"errors"

	"github.com/katalvlaran/qpekit/circuit"
	"github.com/katalvlaran/qpekit/cmatrix"
)

var (
	// ErrUnknownMode indicates a mode string (or enum value) outside the
	// recognized {vector, circuit} set.
	ErrUnknownMode = errors.New("qft: unknown construction mode")

	// ErrBadQubits indicates a non-positive qubit count.
	ErrBadQubits = errors.New("qft: qubit count must be positive")

	// ErrBadDegree indicates a negative truncation degree.
	ErrBadDegree = errors.New("qft: degree must be non-negative")

	// ErrRegisterSize indicates that the supplied qubit window does not
	// match the builder's qubit count.
	ErrRegisterSize = errors.New("qft: register size mismatch")
)

// Mode selects the output representation of a transform builder.
type Mode int

const (
	// ModeVector asks for the transform as a dense matrix.
	ModeVector Mode = iota
	// ModeCircuit asks for the transform as an appended gate sequence.
	ModeCircuit
)

// String returns the canonical lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeVector:
		return "vector"
	case ModeCircuit:
		return "circuit"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the two recognized modes.
func (m Mode) Valid() bool { return m == ModeVector || m == ModeCircuit }

// ParseMode converts a configuration string into a Mode.
//
// Errors: ErrUnknownMode for anything but "vector" or "circuit".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "vector":
		return ModeVector, nil
	case "circuit":
		return ModeCircuit, nil
	default:
		return 0, ErrUnknownMode
	}
}

// Builder is the Fourier-transform capability consumed by the phase
// estimation assembly (qpekit/qpe): an explicit matrix operation (vector
// mode) and a circuit operation (circuit mode). Implementations are
// injected by the caller; nothing is looked up by name at runtime.
type Builder interface {
	// NumQubits returns the qubit count the transform operates on.
	NumQubits() int

	// Matrix returns the transform as a dense 2^n × 2^n matrix.
	Matrix() (*cmatrix.Dense, error)

	// ConstructCircuit appends the transform's gates over the given qubit
	// window to qc and returns the circuit. A nil window allocates a fresh
	// n-qubit register; a nil qc allocates a fresh circuit.
	ConstructCircuit(qubits []circuit.Qubit, qc *circuit.Circuit) (*circuit.Circuit, error)
}
