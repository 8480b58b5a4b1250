// SPDX-License-Identifier: MIT
// Package: qpekit/qft
//
// qft.go — the Approximate builder: exact DFT matrix mode and the
// degree-truncated circuit mode.
//
// Circuit construction (inverse direction):
//  1. For qubit j from n−1 down to 0: apply H on qubit j.
//  2. Then, for each qubit k in the window [max(0, j−degree), j), iterated
//     descending, apply CU1(−π / 2^(j−k)) controlled by j onto k.
//  3. The forward direction flips the rotation sign; connectivity is equal.
//
// Degree bounds the retained interaction distance j−k. Smaller degree
// shrinks the window, dropping the long-range (small-angle) rotations
// first; degree >= n−1 reproduces the exact transform's connectivity and
// degree = 0 leaves only the Hadamards.

package qft

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qpekit/circuit"
	"github.com/katalvlaran/qpekit/cmatrix"
)

// defaultRegisterName names the register allocated when ConstructCircuit
// receives a nil qubit window.
const defaultRegisterName = "q"

// Approximate builds a (inverse) QFT with bounded interaction range.
// Immutable after construction; safe to reuse across circuits.
type Approximate struct {
	numQubits int
	degree    int
	inverse   bool
}

// Compile-time assertion: *Approximate satisfies the Builder capability.
var _ Builder = (*Approximate)(nil)

// NewInverse returns an approximate inverse-QFT builder on numQubits
// qubits, keeping controlled rotations of index distance up to degree.
//
// Errors: ErrBadQubits (numQubits <= 0), ErrBadDegree (degree < 0).
func NewInverse(numQubits, degree int) (*Approximate, error) {
	return newApproximate(numQubits, degree, true)
}

// NewForward returns an approximate forward-QFT builder. Same connectivity
// as NewInverse, opposite rotation sign.
//
// Errors: ErrBadQubits, ErrBadDegree.
func NewForward(numQubits, degree int) (*Approximate, error) {
	return newApproximate(numQubits, degree, false)
}

func newApproximate(numQubits, degree int, inverse bool) (*Approximate, error) {
	if numQubits <= 0 {
		return nil, ErrBadQubits
	}
	if degree < 0 {
		return nil, ErrBadDegree
	}

	return &Approximate{numQubits: numQubits, degree: degree, inverse: inverse}, nil
}

// NumQubits returns the qubit count the transform operates on.
func (a *Approximate) NumQubits() int { return a.numQubits }

// Degree returns the truncation degree.
func (a *Approximate) Degree() int { return a.degree }

// Inverse reports whether the builder emits the inverse transform.
func (a *Approximate) Inverse() bool { return a.inverse }

// Matrix returns the exact normalized DFT matrix of size 2^n:
// entry (j,k) = ω^(j·k)/√N with N = 2^n and ω = e^(∓2πi/N) (minus for the
// inverse builder, plus for the forward one). Degree has no effect here —
// the matrix path is the exact reference, not an approximation.
//
// Complexity: O(4^n) time and space; intended for validation sizes only.
func (a *Approximate) Matrix() (*cmatrix.Dense, error) {
	n := 1 << a.numQubits
	m, err := cmatrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	sign := -1.0
	if !a.inverse {
		sign = 1.0
	}
	scale := 1.0 / math.Sqrt(float64(n))
	base := sign * 2 * math.Pi / float64(n)
	for j := 0; j < n; j++ {
		for k := 0; k < n; k++ {
			// exponent j*k mod N keeps the angle argument small.
			theta := base * float64((j*k)%n)
			_ = m.Set(j, k, cmplx.Rect(scale, theta))
		}
	}

	return m, nil
}

// ConstructCircuit appends the degree-truncated transform over the given
// qubit window to qc. A nil window allocates a fresh register named "q"; a
// nil qc allocates a fresh circuit over the window's registers.
//
// Errors: ErrRegisterSize (window length != NumQubits), plus circuit
// append errors (foreign/out-of-range qubits).
func (a *Approximate) ConstructCircuit(qubits []circuit.Qubit, qc *circuit.Circuit) (*circuit.Circuit, error) {
	var err error
	if qubits == nil {
		var reg *circuit.Register
		if reg, err = circuit.NewRegister(defaultRegisterName, a.numQubits); err != nil {
			return nil, err
		}
		qubits = reg.Qubits()
	}
	if len(qubits) != a.numQubits {
		return nil, ErrRegisterSize
	}
	if qc == nil {
		if qc, err = circuit.NewCircuit(); err != nil {
			return nil, err
		}
	}
	// Attach every register the window touches; AddRegister is idempotent.
	for _, q := range qubits {
		if err = qc.AddRegister(q.Reg); err != nil {
			return nil, err
		}
	}

	sign := -1.0
	if !a.inverse {
		sign = 1.0
	}
	for j := a.numQubits - 1; j >= 0; j-- {
		if err = qc.H(qubits[j]); err != nil {
			return nil, err
		}
		lo := j - a.degree
		if lo < 0 {
			lo = 0
		}
		for k := j - 1; k >= lo; k-- {
			theta := sign * math.Pi / math.Exp2(float64(j-k))
			if err = qc.CU1(theta, qubits[j], qubits[k]); err != nil {
				return nil, err
			}
		}
	}

	return qc, nil
}
