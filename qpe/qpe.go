// SPDX-License-Identifier: MIT
// Package: qpekit/qpe
//
// qpe.go — the Estimator: spectral-constant derivation, circuit assembly
// over an injected evolution synthesizer, and the negative-eigenvalue
// correction.
//
// Assembly is inherently sequential (register allocation → evolution →
// correction); each ConstructCircuit call re-derives the ancilla register
// and result from scratch, so independent estimators may run in parallel
// with no coordination.

package qpe

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qpekit/circuit"
	"github.com/katalvlaran/qpekit/pauli"
	"github.com/katalvlaran/qpekit/qft"
)

// Register names used for freshly allocated registers.
const (
	inputRegisterName   = "q"
	ancillaRegisterName = "a"
)

// EvolutionSynthesizer is the consumed time-evolution contract. Given the
// operator, the evolution time and the expansion parameters, it returns a
// circuit implementing the phase-kickback block: Hadamards on the ancilla
// register, controlled powers of exp(i·H·t) on the state register, and the
// supplied inverse QFT on the ancillas. Trotter/Suzuki internals live
// entirely behind this interface.
type EvolutionSynthesizer interface {
	Construct(
		op *pauli.Operator,
		evoTime float64,
		numTimeSlices int,
		expansion ExpansionMode,
		expansionOrder int,
		useBasisGates bool,
		state, ancilla *circuit.Register,
		iqft qft.Builder,
	) (*circuit.Circuit, error)
}

// Estimator builds phase-estimation circuits for one operator under one
// immutable Config. Construct once via New; the derived constants
// (evolution time, phase offset, effective ancilla count) are fixed for
// the estimator's lifetime.
type Estimator struct {
	op    *pauli.Operator
	iqft  qft.Builder
	synth EvolutionSynthesizer
	cfg   Config

	numAncillae  int // effective count: cfg.NumAncillae plus the sign bit
	evoTime      float64
	phaseCoef    float64 // real coefficient of the identity term, if any
	hasPhaseCoef bool
	neQFTs       [2]qft.Builder // [forward, inverse] over magnitude bits

	// Result state of the latest ConstructCircuit call.
	circ   *circuit.Circuit
	input  *circuit.Register
	output *circuit.Register
}

// New validates the configuration, derives the spectral constants and
// returns a ready estimator.
//
// The effective ancilla count is cfg.NumAncillae plus one automatic sign
// qubit when cfg.NegativeEvals is set; every downstream derivation (the
// evolution-time margin, the IQFT width, the correction pair width) uses
// the effective count.
//
// Errors: ErrNilOperator, ErrNilIQFT, ErrNilSynthesizer, ErrBadAncillae,
// ErrBadTimeSlices, ErrBadExpansionOrder, ErrUnknownExpansion,
// ErrMultipleIdentity, ErrZeroOperator, ErrIQFTSize, ErrNEQFTSize.
func New(op *pauli.Operator, iqft qft.Builder, synth EvolutionSynthesizer, cfg Config, opts ...Option) (*Estimator, error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	if iqft == nil {
		return nil, ErrNilIQFT
	}
	if synth == nil {
		return nil, ErrNilSynthesizer
	}
	if cfg.NumAncillae < 1 {
		return nil, ErrBadAncillae
	}
	if cfg.NumTimeSlices < 0 {
		return nil, ErrBadTimeSlices
	}
	if cfg.ExpansionOrder < 1 {
		return nil, ErrBadExpansionOrder
	}
	if !cfg.Expansion.Valid() {
		return nil, ErrUnknownExpansion
	}

	e := &Estimator{op: op, iqft: iqft, synth: synth, cfg: cfg}
	e.numAncillae = cfg.NumAncillae
	if cfg.NegativeEvals {
		// One automatic flag qubit for the eigenvalue sign.
		e.numAncillae++
	}
	for _, opt := range opts {
		opt(e)
	}

	if iqft.NumQubits() != e.numAncillae {
		return nil, fmt.Errorf("iqft on %d qubits, want %d: %w", iqft.NumQubits(), e.numAncillae, ErrIQFTSize)
	}
	if err := e.initNegativeEvalQFTs(); err != nil {
		return nil, err
	}
	if err := e.initConstants(); err != nil {
		return nil, err
	}

	return e, nil
}

// initNegativeEvalQFTs resolves the correction pair: validate a supplied
// pair's width, or build two fresh exact transforms over the magnitude
// bits. Nothing is shared between estimators.
func (e *Estimator) initNegativeEvalQFTs() error {
	if !e.cfg.NegativeEvals {
		return nil
	}
	width := e.numAncillae - 1
	if e.neQFTs[0] != nil {
		if e.neQFTs[0].NumQubits() != width || e.neQFTs[1].NumQubits() != width {
			return ErrNEQFTSize
		}

		return nil
	}
	fwd, err := qft.NewForward(width, width)
	if err != nil {
		return err
	}
	inv, err := qft.NewInverse(width, width)
	if err != nil {
		return err
	}
	e.neQFTs[0], e.neQFTs[1] = fwd, inv

	return nil
}

// initConstants derives the evolution time and the ancilla global-phase
// offset from the Pauli decomposition.
//
// λmax = Σ|cᵢ| bounds the spectral norm by the triangle inequality —
// loose, but it never requires eigenvalues. The 2^−a margin keeps the
// largest phase strictly inside the ancilla register's range; with
// negative eigenvalues the usable range is additionally halved for the
// sign bit.
func (e *Estimator) initConstants() error {
	lmax := 0.0
	identities := 0
	for _, t := range e.op.Terms() {
		lmax += cmplx.Abs(t.Coeff)
		if !t.IsIdentity() {
			continue
		}
		identities++
		if identities > 1 {
			return ErrMultipleIdentity
		}
		// Real part only: the offset shifts the ancilla phase globally.
		e.phaseCoef = real(t.Coeff)
		e.hasPhaseCoef = true
	}

	if e.cfg.EvoTime != 0 {
		// Caller-supplied scaling wins; no bound needed.
		e.evoTime = e.cfg.EvoTime

		return nil
	}
	if lmax == 0 {
		return ErrZeroOperator
	}
	margin := math.Exp2(-float64(e.numAncillae))
	if e.cfg.NegativeEvals {
		e.evoTime = (0.5 - margin) * 2 * math.Pi / lmax
	} else {
		e.evoTime = (1 - margin) * 2 * math.Pi / lmax
	}

	return nil
}

// RegisterSizes returns the operator qubit count and the effective
// ancilla count (including the automatic sign qubit, when present).
func (e *Estimator) RegisterSizes() (operatorQubits, ancillaQubits int) {
	return e.op.NumQubits(), e.numAncillae
}

// Scaling returns the evolution time used as the eigenvalue scaling
// factor — derived from the spectral bound or supplied by the caller.
func (e *Estimator) Scaling() float64 { return e.evoTime }

// PhaseOffset returns the real coefficient of the identity Pauli term and
// whether such a term exists. Callers apply it as a global phase shift on
// the ancilla readout.
func (e *Estimator) PhaseOffset() (coef float64, ok bool) {
	return e.phaseCoef, e.hasPhaseCoef
}

// Circuit returns the circuit assembled by the latest ConstructCircuit
// call, or nil before the first call.
func (e *Estimator) Circuit() *circuit.Circuit { return e.circ }

// InputRegister returns the state register of the latest assembly.
func (e *Estimator) InputRegister() *circuit.Register { return e.input }

// OutputRegister returns the ancilla register of the latest assembly;
// qubit 0 is the sign bit when negative-eigenvalue handling is active.
func (e *Estimator) OutputRegister() *circuit.Register { return e.output }

// ConstructCircuit assembles the phase-estimation circuit.
//
// Only ModeCircuit is supported: the estimator allocates the ancilla
// register, delegates the phase-kickback block to the synthesizer and,
// when negative eigenvalues are enabled, appends the sign-magnitude
// correction. A nil register allocates a fresh state register sized to
// the operator.
//
// Errors: ErrVectorMode (mode == ModeVector), qft.ErrUnknownMode (any
// other unrecognized mode), ErrRegisterSize, plus synthesizer and circuit
// append failures.
func (e *Estimator) ConstructCircuit(mode qft.Mode, register *circuit.Register) (*circuit.Circuit, error) {
	switch mode {
	case qft.ModeCircuit:
		// supported; fall through to assembly
	case qft.ModeVector:
		return nil, ErrVectorMode
	default:
		return nil, fmt.Errorf("ConstructCircuit(%v): %w", mode, qft.ErrUnknownMode)
	}

	state := register
	var err error
	if state == nil {
		if state, err = circuit.NewRegister(inputRegisterName, e.op.NumQubits()); err != nil {
			return nil, err
		}
	} else if state.Size() != e.op.NumQubits() {
		return nil, fmt.Errorf("register %q size %d, operator needs %d: %w",
			state.Name(), state.Size(), e.op.NumQubits(), ErrRegisterSize)
	}
	ancilla, err := circuit.NewRegister(ancillaRegisterName, e.numAncillae)
	if err != nil {
		return nil, err
	}

	qc, err := e.synth.Construct(
		e.op, e.evoTime,
		e.cfg.NumTimeSlices, e.cfg.Expansion, e.cfg.ExpansionOrder, e.cfg.UseBasisGates,
		state, ancilla, e.iqft,
	)
	if err != nil {
		return nil, fmt.Errorf("evolution synthesis: %w", err)
	}
	if qc == nil {
		return nil, fmt.Errorf("evolution synthesis: %w", ErrNilSynthesizer)
	}
	// The correction below gates against both registers; make sure they
	// are attached even if the synthesizer built a fresh circuit.
	if err = qc.AddRegister(state); err != nil {
		return nil, err
	}
	if err = qc.AddRegister(ancilla); err != nil {
		return nil, err
	}

	if e.cfg.NegativeEvals {
		if err = e.handleNegativeEvals(qc, ancilla); err != nil {
			return nil, err
		}
	}

	e.circ = qc
	e.input = state
	e.output = ancilla

	return qc, nil
}

// handleNegativeEvals remaps the ancillas' two's-complement-style phase
// encoding into sign-magnitude form, entirely with unitary gates (no
// mid-circuit classical branching exists):
//
//  1. CX from the sign qubit (ancilla 0) onto every magnitude qubit;
//  2. forward QFT over the magnitude qubits;
//  3. descending controlled rotations CU1(2π/2^(i+1)) from the sign qubit
//     onto the magnitude qubits in reverse order;
//  4. inverse QFT over the magnitude qubits.
func (e *Estimator) handleNegativeEvals(qc *circuit.Circuit, ancilla *circuit.Register) error {
	sign, err := ancilla.Qubit(0)
	if err != nil {
		return err
	}
	magnitude := ancilla.Qubits()[1:]

	for _, qi := range magnitude {
		if err = qc.CX(sign, qi); err != nil {
			return err
		}
	}
	if _, err = e.neQFTs[0].ConstructCircuit(magnitude, qc); err != nil {
		return fmt.Errorf("negative-eval forward QFT: %w", err)
	}
	for i := range magnitude {
		qi := magnitude[len(magnitude)-1-i]
		if err = qc.CU1(2*math.Pi/math.Exp2(float64(i+1)), sign, qi); err != nil {
			return err
		}
	}
	if _, err = e.neQFTs[1].ConstructCircuit(magnitude, qc); err != nil {
		return fmt.Errorf("negative-eval inverse QFT: %w", err)
	}

	return nil
}
