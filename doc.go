// Package qpekit is your toolkit for building Quantum Phase Estimation
// circuits — from Pauli-decomposed operators and spectral-bound timing to
// approximate inverse Fourier transforms and signed-eigenvalue readout.
//
// 🚀 What is qpekit?
//
//	A deterministic, construction-only library that brings together:
//		• Operator contract: ordered weighted Pauli terms with adjoints
//		• Complex matrices: dense storage, conjugate transpose, unitarity
//		• Circuit model: registers plus ordered H / CX / CU1 gate lists
//		• Approximate QFT: degree-truncated (inverse) Fourier transforms
//		• QPE assembly: evolution-time derivation, Hermitian block
//		  embedding, negative-eigenvalue sign correction
//
// ✨ Why choose qpekit?
//
//   - Pure construction — no simulation, no I/O, no global state
//   - Injected collaborators — QFT components and the time-evolution
//     synthesizer arrive through constructors, never by name lookup
//   - Rock-solid error contracts — package sentinels, matched by errors.Is
//   - Pure Go — no cgo, no hidden deps
//
// Everything is organized under five subpackages:
//
//	pauli/   — operator terms, adjoint, hermiticity
//	cmatrix/ — dense complex128 matrices & predicates
//	circuit/ — registers, qubits, gate lists
//	qft/     — approximate (inverse) QFT builder, vector & circuit modes
//	qpe/     — the eigenvalue estimator: constants, assembly, correction
//
// Quick sketch of the assembled circuit:
//
//	ancillas ──H──●────────── IQFT ──(sign fix)── measure
//	              │
//	state ───────U^2^k──────────────────────────
//
// Each builder instance is independent; batch estimation across operators
// runs in parallel with no coordination.
package qpekit
