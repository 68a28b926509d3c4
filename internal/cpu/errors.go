package cpu

import (
	"errors"
	"fmt"
)

// RunMode selects how the CPU reacts to an undefined opcode.
type RunMode uint8

const (
	// Strict stops execution, Step returns an *UndefinedOpcodeError.
	Strict RunMode = iota
	// Lenient logs the opcode and carries on with the next byte.
	Lenient
)

func (m RunMode) String() string {
	if m == Lenient {
		return "lenient"
	}
	return "strict"
}

// ErrUndefinedOpcode matches every *UndefinedOpcodeError with errors.Is.
var ErrUndefinedOpcode = errors.New("undefined opcode")

// UndefinedOpcodeError is returned by Step when the fetched byte
// does not decode to any instruction. This includes the reserved
// opcodes 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4,
// 0xFC and 0xFD.
type UndefinedOpcodeError struct {
	PC     uint16
	Opcode uint8
}

func (e *UndefinedOpcodeError) Error() string {
	return fmt.Sprintf("undefined opcode 0x%02X (0b%08b) at 0x%04X", e.Opcode, e.Opcode, e.PC)
}

func (e *UndefinedOpcodeError) Is(target error) bool {
	return target == ErrUndefinedOpcode
}
