// Package opcode holds the 6502/65C02 instruction set: for each mnemonic, the addressing modes it
// supports and the opcode byte, cycle count, and legality flags for each. The table is grounded on
// the original assembler's opcodeDict (a map from mnemonic token to OpCodeInfo).
package opcode

// Mode identifies an addressing mode. The mode selector in internal/asm picks among them by
// operand form and value, not by the order of these constants.
type Mode int

const (
	ModeImplied Mode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeZeroPageRelative
	ModeRelative
	ModeIndirectX
	ModeIndirectY
	ModeIndirect
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
)

//go:generate go run golang.org/x/tools/cmd/stringer -type Mode -output mode_string.go

// OperandBytes reports how many operand bytes follow the opcode byte in a mode's encoding, or 0
// for an unknown mode.
func (m Mode) OperandBytes() int {
	switch m {
	case ModeImplied, ModeAccumulator:
		return 0
	case ModeImmediate, ModeZeroPage, ModeZeroPageX, ModeZeroPageY, ModeIndirectX, ModeIndirectY, ModeRelative:
		return 1
	case ModeZeroPageRelative:
		return 2
	case ModeIndirect, ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY:
		return 2
	default:
		return 0
	}
}
