// Package qft builds approximate (inverse) Quantum Fourier Transforms.
//
// 🚀 What is an approximate QFT?
//
//	The exact QFT on n qubits needs a controlled phase rotation between
//	every qubit pair — n(n−1)/2 two-qubit gates. The longest-range
//	rotations carry the smallest angles, so dropping them trades a little
//	fidelity for a lot of circuit. The "degree" parameter bounds how far
//	a controlled rotation may reach:
//	  • degree = n — exact connectivity (every pair)
//	  • degree = 0 — Hadamards only, no cross-qubit phases
//
// ✨ Two output modes per builder:
//   - Matrix()           — the exact normalized DFT matrix (2^n × 2^n,
//     scaled by 1/√(2^n)); a reference/validation path on which degree
//     intentionally has no effect.
//   - ConstructCircuit() — the degree-truncated gate sequence over a
//     caller-supplied qubit window, appended to a caller-supplied circuit
//     (both optional; fresh ones are allocated when nil).
//
// NewInverse builds the IQFT (negative rotation angles), NewForward the
// QFT (positive angles); connectivity is identical. The Builder interface
// is the injection point consumed by qpekit/qpe — components are passed by
// the caller, never resolved by name.
//
// ⚙️ Usage:
//
//	iqft, err := qft.NewInverse(4, 2) // 4 qubits, keep range-≤2 rotations
//	qc, err := iqft.ConstructCircuit(nil, nil)
//
// Construction is deterministic: fixed loop orders, no global state.
package qft
