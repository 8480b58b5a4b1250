// SPDX-License-Identifier: MIT
// Package: qpekit/circuit
//
// circuit.go — registers, qubit references, gate kinds and the Circuit
// container with validated appenders.
//
// Contract (strict):
//   • Gate order is append order; no reordering, no optimization.
//   • Appenders validate register membership and index bounds and return
//     sentinel errors; they never panic on user input.
//   • Accessors hand out copies of the gate list.

package circuit

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRegister indicates a register with a non-positive size or an
	// empty name.
	ErrBadRegister = errors.New("circuit: invalid register")

	// ErrOutOfRange indicates a qubit index outside its register's bounds.
	ErrOutOfRange = errors.New("circuit: qubit index out of range")

	// ErrForeignQubit indicates a qubit whose register is not attached to
	// the circuit being appended to.
	ErrForeignQubit = errors.New("circuit: qubit from unattached register")

	// ErrNilRegister indicates a nil *Register argument.
	ErrNilRegister = errors.New("circuit: nil register")
)

// Register is an ordered, fixed-size collection of qubits with a name.
// Registers are identified by pointer: two registers with equal names are
// still distinct.
type Register struct {
	name string
	size int
}

// NewRegister creates a register of the given size.
//
// Errors: ErrBadRegister for empty name or size <= 0.
func NewRegister(name string, size int) (*Register, error) {
	if name == "" || size <= 0 {
		return nil, ErrBadRegister
	}

	return &Register{name: name, size: size}, nil
}

// Name returns the register's name.
func (r *Register) Name() string { return r.name }

// Size returns the number of qubits in the register.
func (r *Register) Size() int { return r.size }

// Qubit returns a reference to the i-th qubit of the register.
//
// Errors: ErrOutOfRange, ErrNilRegister.
func (r *Register) Qubit(i int) (Qubit, error) {
	if r == nil {
		return Qubit{}, ErrNilRegister
	}
	if i < 0 || i >= r.size {
		return Qubit{}, fmt.Errorf("Register %q qubit %d: %w", r.name, i, ErrOutOfRange)
	}

	return Qubit{Reg: r, Index: i}, nil
}

// Qubits returns references to all qubits of the register in order.
func (r *Register) Qubits() []Qubit {
	out := make([]Qubit, r.size)
	for i := 0; i < r.size; i++ {
		out[i] = Qubit{Reg: r, Index: i}
	}

	return out
}

// Qubit references one wire: a register plus an index into it.
type Qubit struct {
	Reg   *Register
	Index int
}

// GateKind enumerates the gate vocabulary of this package.
type GateKind int

const (
	// GateH is a single-qubit Hadamard.
	GateH GateKind = iota
	// GateCX is a controlled-NOT; Qubits[0] controls, Qubits[1] is target.
	GateCX
	// GateCU1 is a controlled phase rotation by Theta; Qubits[0] controls,
	// Qubits[1] is target.
	GateCU1
)

// String names the gate kind in lowercase QASM-style spelling.
func (k GateKind) String() string {
	switch k {
	case GateH:
		return "h"
	case GateCX:
		return "cx"
	case GateCU1:
		return "cu1"
	default:
		return "unknown"
	}
}

// Gate is one placed gate: a kind, its qubit operands in role order
// (control first for two-qubit kinds) and an optional angle.
type Gate struct {
	Kind   GateKind
	Qubits []Qubit
	Theta  float64
}

// Circuit is an ordered gate list over a set of attached registers.
// The zero value is not usable; construct with NewCircuit.
type Circuit struct {
	regs  []*Register
	gates []Gate
}

// NewCircuit creates a circuit over the given registers.
//
// Errors: ErrNilRegister if any register is nil.
func NewCircuit(regs ...*Register) (*Circuit, error) {
	c := &Circuit{}
	for _, r := range regs {
		if err := c.AddRegister(r); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// AddRegister attaches a register to the circuit. Attaching an already
// attached register is a no-op, so builders can merge register sets freely.
//
// Errors: ErrNilRegister.
func (c *Circuit) AddRegister(r *Register) error {
	if r == nil {
		return ErrNilRegister
	}
	for _, have := range c.regs {
		if have == r {
			return nil
		}
	}
	c.regs = append(c.regs, r)

	return nil
}

// Registers returns the attached registers in attachment order.
func (c *Circuit) Registers() []*Register {
	out := make([]*Register, len(c.regs))
	copy(out, c.regs)

	return out
}

// checkQubit validates that q belongs to an attached register and its
// index is in bounds.
func (c *Circuit) checkQubit(q Qubit) error {
	if q.Reg == nil {
		return ErrNilRegister
	}
	if q.Index < 0 || q.Index >= q.Reg.size {
		return fmt.Errorf("qubit %q[%d]: %w", q.Reg.name, q.Index, ErrOutOfRange)
	}
	for _, have := range c.regs {
		if have == q.Reg {
			return nil
		}
	}

	return fmt.Errorf("qubit %q[%d]: %w", q.Reg.name, q.Index, ErrForeignQubit)
}

// H appends a Hadamard gate on q.
func (c *Circuit) H(q Qubit) error {
	if err := c.checkQubit(q); err != nil {
		return err
	}
	c.gates = append(c.gates, Gate{Kind: GateH, Qubits: []Qubit{q}})

	return nil
}

// CX appends a controlled-NOT with the given control and target.
func (c *Circuit) CX(ctrl, tgt Qubit) error {
	if err := c.checkQubit(ctrl); err != nil {
		return err
	}
	if err := c.checkQubit(tgt); err != nil {
		return err
	}
	c.gates = append(c.gates, Gate{Kind: GateCX, Qubits: []Qubit{ctrl, tgt}})

	return nil
}

// CU1 appends a controlled phase rotation by theta with the given control
// and target.
func (c *Circuit) CU1(theta float64, ctrl, tgt Qubit) error {
	if err := c.checkQubit(ctrl); err != nil {
		return err
	}
	if err := c.checkQubit(tgt); err != nil {
		return err
	}
	c.gates = append(c.gates, Gate{Kind: GateCU1, Qubits: []Qubit{ctrl, tgt}, Theta: theta})

	return nil
}

// Append concatenates the gates of other onto c, attaching other's
// registers first so membership checks keep holding.
//
// Errors: ErrNilRegister (nil other treated as empty is NOT supported —
// pass a real circuit).
func (c *Circuit) Append(other *Circuit) error {
	if other == nil {
		return errors.New("circuit: append of nil circuit")
	}
	for _, r := range other.regs {
		if err := c.AddRegister(r); err != nil {
			return err
		}
	}
	c.gates = append(c.gates, other.gates...)

	return nil
}

// Len returns the number of gates in the circuit.
func (c *Circuit) Len() int { return len(c.gates) }

// Gates returns a copy of the ordered gate list.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)

	return out
}

// CountKind returns how many gates of kind k the circuit holds.
func (c *Circuit) CountKind(k GateKind) int {
	n := 0
	for _, g := range c.gates {
		if g.Kind == k {
			n++
		}
	}

	return n
}
