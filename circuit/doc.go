// Package circuit models quantum registers and gate-list circuits.
//
// 🚀 What lives here?
//
//	The minimal circuit contract shared by the qpekit builders: named
//	qubit registers, qubit references, and an ordered list of gates.
//	Three gate kinds cover everything phase estimation emits directly:
//	  • H   — Hadamard on one qubit
//	  • CX  — controlled-NOT (control, target)
//	  • CU1 — controlled phase rotation by an angle θ (control, target)
//
// ✨ Guarantees:
//   - Deterministic gate order — gates appear exactly in append order.
//   - Safe appends — qubits are validated against the circuit's registers
//     (ErrForeignQubit) and their register bounds (ErrOutOfRange).
//   - Value-like reads — Gates() returns a copy; external mutation never
//     reaches the circuit.
//
// The package is intentionally not a simulator: no state vectors, no
// transpilation, no measurement. Execution backends consume the gate list
// through Gates() and translate it to their own IR.
package circuit
