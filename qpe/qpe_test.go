package qpe_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/qpekit/circuit"
	"github.com/katalvlaran/qpekit/pauli"
	"github.com/katalvlaran/qpekit/qft"
	"github.com/katalvlaran/qpekit/qpe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// stubSynth is a recording stand-in for the external time-evolution
// synthesizer: it captures every argument and emits one marker Hadamard on
// the first ancilla qubit so tests can separate its output from the
// correction gates appended afterwards.
type stubSynth struct {
	calls     int
	op        *pauli.Operator
	evoTime   float64
	slices    int
	expansion qpe.ExpansionMode
	order     int
	useBasis  bool
	iqft      qft.Builder
	err       error
}

func (s *stubSynth) Construct(
	op *pauli.Operator,
	evoTime float64,
	numTimeSlices int,
	expansion qpe.ExpansionMode,
	expansionOrder int,
	useBasisGates bool,
	state, ancilla *circuit.Register,
	iqft qft.Builder,
) (*circuit.Circuit, error) {
	s.calls++
	s.op = op
	s.evoTime = evoTime
	s.slices = numTimeSlices
	s.expansion = expansion
	s.order = expansionOrder
	s.useBasis = useBasisGates
	s.iqft = iqft
	if s.err != nil {
		return nil, s.err
	}

	qc, err := circuit.NewCircuit(state, ancilla)
	if err != nil {
		return nil, err
	}
	a0, err := ancilla.Qubit(0)
	if err != nil {
		return nil, err
	}
	if err = qc.H(a0); err != nil {
		return nil, err
	}

	return qc, nil
}

// zTerm builds a single-qubit Z term with the given real coefficient.
func zTerm(coeff float64) pauli.Term {
	return pauli.Term{Coeff: complex(coeff, 0), Z: []bool{true}, X: []bool{false}}
}

// xTerm builds a single-qubit X term with the given real coefficient.
func xTerm(coeff float64) pauli.Term {
	return pauli.Term{Coeff: complex(coeff, 0), Z: []bool{false}, X: []bool{true}}
}

// mustIQFT returns an exact inverse-QFT builder of the given width.
func mustIQFT(t *testing.T, n int) qft.Builder {
	t.Helper()
	b, err := qft.NewInverse(n, n)
	require.NoError(t, err)

	return b
}

// mustOperator builds a 1-qubit operator from terms.
func mustOperator(t *testing.T, terms ...pauli.Term) *pauli.Operator {
	t.Helper()
	op, err := pauli.NewOperator(1, terms...)
	require.NoError(t, err)

	return op
}

// TestNew_Validation walks the constructor's configuration error set.
func TestNew_Validation(t *testing.T) {
	op := mustOperator(t, zTerm(1))
	iqft := mustIQFT(t, 1)
	synth := &stubSynth{}
	cfg := qpe.DefaultConfig()

	_, err := qpe.New(nil, iqft, synth, cfg)
	assert.ErrorIs(t, err, qpe.ErrNilOperator, "missing operator")

	_, err = qpe.New(op, nil, synth, cfg)
	assert.ErrorIs(t, err, qpe.ErrNilIQFT, "missing IQFT")

	_, err = qpe.New(op, iqft, nil, cfg)
	assert.ErrorIs(t, err, qpe.ErrNilSynthesizer, "missing synthesizer")

	bad := cfg
	bad.NumAncillae = 0
	_, err = qpe.New(op, iqft, synth, bad)
	assert.ErrorIs(t, err, qpe.ErrBadAncillae, "zero ancillae")

	bad = cfg
	bad.NumTimeSlices = -1
	_, err = qpe.New(op, iqft, synth, bad)
	assert.ErrorIs(t, err, qpe.ErrBadTimeSlices, "negative time slices")

	bad = cfg
	bad.ExpansionOrder = 0
	_, err = qpe.New(op, iqft, synth, bad)
	assert.ErrorIs(t, err, qpe.ErrBadExpansionOrder, "zero expansion order")

	bad = cfg
	bad.Expansion = qpe.ExpansionMode(7)
	_, err = qpe.New(op, iqft, synth, bad)
	assert.ErrorIs(t, err, qpe.ErrUnknownExpansion, "unrecognized expansion")
}

// TestNew_IQFTSizeMismatch rejects an IQFT not sized to the effective
// ancilla count.
func TestNew_IQFTSizeMismatch(t *testing.T) {
	op := mustOperator(t, zTerm(1))
	cfg := qpe.DefaultConfig()
	cfg.NumAncillae = 3

	_, err := qpe.New(op, mustIQFT(t, 2), &stubSynth{}, cfg)
	assert.ErrorIs(t, err, qpe.ErrIQFTSize, "IQFT width must equal ancilla count")

	// With negative evals the effective count gains the sign bit.
	cfg.NegativeEvals = true
	_, err = qpe.New(op, mustIQFT(t, 3), &stubSynth{}, cfg)
	assert.ErrorIs(t, err, qpe.ErrIQFTSize, "IQFT must cover the sign bit too")

	_, err = qpe.New(op, mustIQFT(t, 4), &stubSynth{}, cfg)
	assert.NoError(t, err, "width 3+1 matches")
}

// TestScaling_Formula pins the derived evolution time against the
// spectral-bound formula for both eigenvalue-sign regimes.
func TestScaling_Formula(t *testing.T) {
	// λmax = |1.5| + |−1.0| = 2.5.
	op := mustOperator(t, zTerm(1.5), xTerm(-1.0))
	const lmax = 2.5

	cfg := qpe.DefaultConfig()
	cfg.NumAncillae = 3
	est, err := qpe.New(op, mustIQFT(t, 3), &stubSynth{}, cfg)
	require.NoError(t, err)
	want := (1 - math.Exp2(-3)) * 2 * math.Pi / lmax
	assert.InDelta(t, want, est.Scaling(), eps, "non-negative regime")

	cfg.NegativeEvals = true // effective ancillae = 4
	est, err = qpe.New(op, mustIQFT(t, 4), &stubSynth{}, cfg)
	require.NoError(t, err)
	want = (0.5 - math.Exp2(-4)) * 2 * math.Pi / lmax
	assert.InDelta(t, want, est.Scaling(), eps, "negative regime halves the range")
}

// TestScaling_Supplied verifies a caller-provided evolution time bypasses
// the derivation entirely.
func TestScaling_Supplied(t *testing.T) {
	op := mustOperator(t, zTerm(2))
	cfg := qpe.DefaultConfig()
	cfg.EvoTime = 0.75

	est, err := qpe.New(op, mustIQFT(t, 1), &stubSynth{}, cfg)
	require.NoError(t, err)
	assert.Equal(t, 0.75, est.Scaling(), "supplied scaling wins")
}

// TestIdentityScan covers the 0 / 1 / ≥2 identity-term cases.
func TestIdentityScan(t *testing.T) {
	cfg := qpe.DefaultConfig()

	// No identity term: no offset, no error.
	est, err := qpe.New(mustOperator(t, zTerm(1)), mustIQFT(t, 1), &stubSynth{}, cfg)
	require.NoError(t, err)
	_, ok := est.PhaseOffset()
	assert.False(t, ok, "no identity term ⇒ no offset")

	// One identity term: offset equals its real coefficient.
	op := mustOperator(t, pauli.Identity(1, complex(0.25, 0)), zTerm(1))
	est, err = qpe.New(op, mustIQFT(t, 1), &stubSynth{}, cfg)
	require.NoError(t, err)
	coef, ok := est.PhaseOffset()
	assert.True(t, ok)
	assert.Equal(t, 0.25, coef, "offset = identity coefficient")

	// Two identity terms: fatal configuration error.
	op = mustOperator(t, pauli.Identity(1, 1), pauli.Identity(1, 2))
	_, err = qpe.New(op, mustIQFT(t, 1), &stubSynth{}, cfg)
	assert.ErrorIs(t, err, qpe.ErrMultipleIdentity, "duplicate identities rejected")
}

// TestZeroOperator rejects derivation over a zero spectral bound, but
// accepts it when the caller supplies the scaling.
func TestZeroOperator(t *testing.T) {
	op := mustOperator(t, zTerm(0))
	cfg := qpe.DefaultConfig()

	_, err := qpe.New(op, mustIQFT(t, 1), &stubSynth{}, cfg)
	assert.ErrorIs(t, err, qpe.ErrZeroOperator, "nothing to scale by")

	cfg.EvoTime = 1.0
	_, err = qpe.New(op, mustIQFT(t, 1), &stubSynth{}, cfg)
	assert.NoError(t, err, "explicit scaling needs no bound")
}

// TestConstructCircuit_ModeGuards verifies the circuit-only contract.
func TestConstructCircuit_ModeGuards(t *testing.T) {
	est, err := qpe.New(mustOperator(t, zTerm(1)), mustIQFT(t, 1), &stubSynth{}, qpe.DefaultConfig())
	require.NoError(t, err)

	_, err = est.ConstructCircuit(qft.ModeVector, nil)
	assert.ErrorIs(t, err, qpe.ErrVectorMode, "vector mode is unsupported by design")

	_, err = est.ConstructCircuit(qft.Mode(9), nil)
	assert.ErrorIs(t, err, qft.ErrUnknownMode, "unrecognized mode value")
}

// TestConstructCircuit_EndToEnd runs the reference flow: a single
// identity term with coefficient 1.0 and two ancillae.
func TestConstructCircuit_EndToEnd(t *testing.T) {
	op := mustOperator(t, pauli.Identity(1, 1.0))
	cfg := qpe.DefaultConfig()
	cfg.NumAncillae = 2
	synth := &stubSynth{}

	est, err := qpe.New(op, mustIQFT(t, 2), synth, cfg)
	require.NoError(t, err)

	// (1 − 2^−2) · 2π / 1.0 = 1.5π.
	assert.InDelta(t, 1.5*math.Pi, est.Scaling(), eps, "derived evolution time")
	coef, ok := est.PhaseOffset()
	require.True(t, ok)
	assert.Equal(t, 1.0, coef, "ancilla phase offset")

	qc, err := est.ConstructCircuit(qft.ModeCircuit, nil)
	require.NoError(t, err)
	require.NotNil(t, qc)

	// The synthesizer saw exactly the derived parameters.
	assert.Equal(t, 1, synth.calls)
	assert.InDelta(t, est.Scaling(), synth.evoTime, eps)
	assert.Equal(t, 1, synth.slices)
	assert.Equal(t, qpe.Trotter, synth.expansion)
	assert.Equal(t, 1, synth.order)
	assert.True(t, synth.useBasis)
	assert.Same(t, op, synth.op)

	// Builder state: registers and metadata.
	opQubits, ancillae := est.RegisterSizes()
	assert.Equal(t, 1, opQubits)
	assert.Equal(t, 2, ancillae)
	require.NotNil(t, est.InputRegister())
	require.NotNil(t, est.OutputRegister())
	assert.Equal(t, 1, est.InputRegister().Size())
	assert.Equal(t, 2, est.OutputRegister().Size())
	assert.Same(t, qc, est.Circuit())

	// No correction requested: only the stub's marker gate.
	assert.Equal(t, 1, qc.Len(), "marker Hadamard only")
}

// TestConstructCircuit_NegativeEvalCorrection counts and inspects the
// correction gates appended after the synthesizer block.
func TestConstructCircuit_NegativeEvalCorrection(t *testing.T) {
	op := mustOperator(t, zTerm(1))
	cfg := qpe.DefaultConfig()
	cfg.NumAncillae = 2
	cfg.NegativeEvals = true // effective ancillae 3: 1 sign + 2 magnitude

	est, err := qpe.New(op, mustIQFT(t, 3), &stubSynth{}, cfg)
	require.NoError(t, err)

	qc, err := est.ConstructCircuit(qft.ModeCircuit, nil)
	require.NoError(t, err)

	// Census: 1 marker H + two exact 2-qubit QFTs (2 H + 1 CU1 each),
	// 2 CX (sign onto each magnitude bit), 2 correction CU1.
	assert.Equal(t, 2, qc.CountKind(circuit.GateCX), "one CX per magnitude qubit")
	assert.Equal(t, 5, qc.CountKind(circuit.GateH), "marker + 2 per QFT block")
	assert.Equal(t, 4, qc.CountKind(circuit.GateCU1), "QFT pair + correction rotations")

	// The correction rotations are controlled by the sign qubit (index 0)
	// with angles 2π/2^(i+1) over the reversed magnitude order.
	var corr []circuit.Gate
	for _, g := range qc.Gates() {
		if g.Kind == circuit.GateCU1 && g.Qubits[0].Index == 0 && g.Qubits[0].Reg == est.OutputRegister() {
			corr = append(corr, g)
		}
	}
	require.Len(t, corr, 2)
	assert.InDelta(t, math.Pi, corr[0].Theta, eps, "i=0 → 2π/2 targeting the last magnitude bit")
	assert.Equal(t, 2, corr[0].Qubits[1].Index)
	assert.InDelta(t, math.Pi/2, corr[1].Theta, eps, "i=1 → 2π/4")
	assert.Equal(t, 1, corr[1].Qubits[1].Index)
}

// TestConstructCircuit_RegisterMismatch rejects wrongly sized state
// registers.
func TestConstructCircuit_RegisterMismatch(t *testing.T) {
	est, err := qpe.New(mustOperator(t, zTerm(1)), mustIQFT(t, 1), &stubSynth{}, qpe.DefaultConfig())
	require.NoError(t, err)

	reg, err := circuit.NewRegister("q", 2)
	require.NoError(t, err)
	_, err = est.ConstructCircuit(qft.ModeCircuit, reg)
	assert.ErrorIs(t, err, qpe.ErrRegisterSize, "2-qubit register for a 1-qubit operator")
}

// TestConstructCircuit_SynthesizerFailure propagates synthesizer errors.
func TestConstructCircuit_SynthesizerFailure(t *testing.T) {
	boom := errors.New("no evolution today")
	est, err := qpe.New(mustOperator(t, zTerm(1)), mustIQFT(t, 1), &stubSynth{err: boom}, qpe.DefaultConfig())
	require.NoError(t, err)

	_, err = est.ConstructCircuit(qft.ModeCircuit, nil)
	assert.ErrorIs(t, err, boom, "synthesizer failure surfaces to the caller")
}

// TestWithNegativeEvalQFTs covers the injected correction pair: size
// validation, acceptance, and the nil panic.
func TestWithNegativeEvalQFTs(t *testing.T) {
	op := mustOperator(t, zTerm(1))
	cfg := qpe.DefaultConfig()
	cfg.NumAncillae = 2
	cfg.NegativeEvals = true // magnitude width = 2

	wrongF, err := qft.NewForward(3, 3)
	require.NoError(t, err)
	wrongI, err := qft.NewInverse(3, 3)
	require.NoError(t, err)
	_, err = qpe.New(op, mustIQFT(t, 3), &stubSynth{}, cfg, qpe.WithNegativeEvalQFTs(wrongF, wrongI))
	assert.ErrorIs(t, err, qpe.ErrNEQFTSize, "pair must match the magnitude width")

	okF, err := qft.NewForward(2, 2)
	require.NoError(t, err)
	okI, err := qft.NewInverse(2, 2)
	require.NoError(t, err)
	_, err = qpe.New(op, mustIQFT(t, 3), &stubSynth{}, cfg, qpe.WithNegativeEvalQFTs(okF, okI))
	assert.NoError(t, err, "correctly sized pair accepted")

	assert.Panics(t, func() { qpe.WithNegativeEvalQFTs(nil, okI) }, "nil component is programmer error")
}

// TestParseExpansion covers the expansion-mode string boundary.
func TestParseExpansion(t *testing.T) {
	m, err := qpe.ParseExpansion("trotter")
	require.NoError(t, err)
	assert.Equal(t, qpe.Trotter, m)

	m, err = qpe.ParseExpansion("suzuki")
	require.NoError(t, err)
	assert.Equal(t, qpe.Suzuki, m)

	_, err = qpe.ParseExpansion("magnus")
	assert.ErrorIs(t, err, qpe.ErrUnknownExpansion)
}
