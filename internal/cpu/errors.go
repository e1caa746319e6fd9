package cpu

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidState is returned by Validate when a loaded state holds a
// stage the CPU cannot resume.
var ErrInvalidState = errors.New("cpu: invalid state")

// UnimplementedOpcodeError is returned when a fetched opcode matches no
// instruction family. The CPU is left as it was before the fetch,
// including the opcode reported by Opcode.
type UnimplementedOpcodeError struct {
	Opcode   uint8
	Prefixed bool
	// PC is the address of the first byte of the instruction.
	PC uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: unimplemented opcode 0xCB 0x%02X at 0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("cpu: unimplemented opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

// InvalidOperandIndexError is returned when decode produces an operand
// selector outside its table. It indicates a decode bug.
type InvalidOperandIndexError struct {
	Kind  string
	Index uint8
}

func (e *InvalidOperandIndexError) Error() string {
	return fmt.Sprintf("cpu: invalid %s operand index %d", e.Kind, e.Index)
}

// InterruptDispatchError is returned at an instruction boundary when
// an enabled interrupt is pending with IME set. Dispatch is not
// implemented, so the CPU does not advance.
type InterruptDispatchError struct {
	PC uint16
}

func (e *InterruptDispatchError) Error() string {
	return fmt.Sprintf("cpu: interrupt dispatch not implemented (PC=0x%04X)", e.PC)
}
