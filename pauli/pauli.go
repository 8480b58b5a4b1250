// SPDX-License-Identifier: MIT
// Package: qpekit/pauli
//
// pauli.go — the Term and Operator types plus their read-only operations.
//
// Contract (strict):
//   • An Operator is immutable after NewOperator returns.
//   • Term masks are length-validated against the qubit count at construction.
//   • Accessors hand out copies; callers can never alias internal state.
//   • No panics on user input; sentinel errors only (errors.Is).

package pauli

import (
	"errors"
	"math"
	"math/cmplx"
)

// hermEps is the tolerance used by IsHermitian when testing whether every
// coefficient is real. Pauli strings are self-adjoint, so hermiticity of the
// sum reduces to reality of the weights.
const hermEps = 1e-12

var (
	// ErrNoQubits indicates a non-positive qubit count passed to NewOperator.
	ErrNoQubits = errors.New("pauli: qubit count must be positive")

	// ErrBadTerm indicates a term whose Z or X mask length does not match
	// the operator's qubit count.
	ErrBadTerm = errors.New("pauli: term mask length mismatch")
)

// Term is a single weighted Pauli string in symplectic form.
//
// For qubit i the Pauli letter is decoded as:
//
//	Z[i]=false, X[i]=false → I
//	Z[i]=false, X[i]=true  → X
//	Z[i]=true,  X[i]=true  → Y (up to phase, carried by Coeff)
//	Z[i]=true,  X[i]=false → Z
type Term struct {
	Coeff complex128
	Z     []bool
	X     []bool
}

// IsIdentity reports whether the term is the all-identity string,
// i.e. every Z and X bit is zero.
func (t Term) IsIdentity() bool {
	for _, z := range t.Z {
		if z {
			return false
		}
	}
	for _, x := range t.X {
		if x {
			return false
		}
	}

	return true
}

// clone returns a deep copy of the term so Operator accessors never alias
// caller-visible mask slices.
func (t Term) clone() Term {
	z := make([]bool, len(t.Z))
	copy(z, t.Z)
	x := make([]bool, len(t.X))
	copy(x, t.X)

	return Term{Coeff: t.Coeff, Z: z, X: x}
}

// Operator is an ordered, immutable weighted sum of Pauli strings over a
// fixed number of qubits. Term order is preserved exactly as supplied.
type Operator struct {
	numQubits int
	terms     []Term
}

// NewOperator builds an Operator over n qubits from the given terms.
// Every term's Z and X masks must have length n.
//
// Errors:
//   - ErrNoQubits — n <= 0.
//   - ErrBadTerm  — some mask length differs from n.
//
// Complexity: O(T·n) time and space (terms are deep-copied).
func NewOperator(n int, terms ...Term) (*Operator, error) {
	if n <= 0 {
		return nil, ErrNoQubits
	}
	copied := make([]Term, 0, len(terms))
	for _, t := range terms {
		if len(t.Z) != n || len(t.X) != n {
			return nil, ErrBadTerm
		}
		copied = append(copied, t.clone())
	}

	return &Operator{numQubits: n, terms: copied}, nil
}

// Identity returns the all-identity term over n qubits with the given
// coefficient. Handy for global-energy offsets in decompositions.
func Identity(n int, coeff complex128) Term {
	return Term{Coeff: coeff, Z: make([]bool, n), X: make([]bool, n)}
}

// NumQubits returns the number of qubits the operator acts on.
func (o *Operator) NumQubits() int { return o.numQubits }

// NumTerms returns the number of Pauli terms in the decomposition.
func (o *Operator) NumTerms() int { return len(o.terms) }

// Terms returns the ordered terms as a fresh slice of deep copies.
// Mutating the result never affects the operator.
func (o *Operator) Terms() []Term {
	out := make([]Term, 0, len(o.terms))
	for _, t := range o.terms {
		out = append(out, t.clone())
	}

	return out
}

// Adjoint returns the conjugate transpose of the operator. Pauli strings
// are self-adjoint, so the adjoint conjugates every coefficient and keeps
// the strings (and their order) intact.
func (o *Operator) Adjoint() *Operator {
	terms := make([]Term, 0, len(o.terms))
	for _, t := range o.terms {
		c := t.clone()
		c.Coeff = cmplx.Conj(c.Coeff)
		terms = append(terms, c)
	}

	return &Operator{numQubits: o.numQubits, terms: terms}
}

// IsHermitian reports whether the operator equals its adjoint, which for a
// Pauli decomposition reduces to every coefficient being real within a
// fixed tolerance.
func (o *Operator) IsHermitian() bool {
	for _, t := range o.terms {
		if math.Abs(imag(t.Coeff)) > hermEps {
			return false
		}
	}

	return true
}
