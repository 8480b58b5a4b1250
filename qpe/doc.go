// Package qpe assembles Quantum Phase Estimation circuits that estimate
// eigenvalues (or singular values) of a Pauli-decomposed operator.
//
// 🚀 How the estimator works:
//
//  1. Spectral constants — from the operator's Pauli coefficients it
//     derives the evolution time t = (1−2^−a)·2π/λmax (or, with negative
//     eigenvalues enabled, (1/2−2^−a)·2π/λmax, halving the usable phase
//     range to reserve a sign bit), where λmax = Σ|cᵢ| is the
//     triangle-inequality bound on the spectral norm. The bound is loose
//     but safe; it never requires an eigendecomposition.
//  2. Assembly — it delegates the controlled time-evolution / phase
//     kickback block (ancilla Hadamards, controlled powers of
//     exp(i·H·t), inverse QFT) to an injected EvolutionSynthesizer and
//     wires it to the input and ancilla registers.
//  3. Sign handling — when negative eigenvalues are possible, a purely
//     unitary correction remaps the ancillas' two's-complement-style
//     phase encoding into sign-magnitude form, using one forward and one
//     inverse QFT over the magnitude bits.
//
// Non-Hermitian matrices are supported through Hermitize, which embeds A
// into the Hermitian block matrix [[0, A], [A†, 0]]; phase estimation on
// the embedding recovers |singular values|, with the sign slot
// structurally required.
//
// ✨ Design points:
//   - All collaborators (IQFT, correction QFT pair, evolution synthesizer)
//     are injected through the constructor — no name-based lookup.
//   - Config is immutable; each ConstructCircuit call re-derives its
//     ancilla register and result from scratch.
//   - Circuit mode only: vector (state-vector) mode fails with
//     ErrVectorMode by design.
//
// ⚙️ Usage:
//
//	est, err := qpe.New(op, iqft, synth, cfg)
//	qc, err := est.ConstructCircuit(qft.ModeCircuit, nil)
//	opQubits, ancillae := est.RegisterSizes()
//	t := est.Scaling()
package qpe
