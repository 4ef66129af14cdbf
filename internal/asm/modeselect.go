package asm

import (
	"github.com/pbaxter/sixasm/internal/opcode"
	"github.com/pbaxter/sixasm/internal/token"
)

// operandForm classifies the syntactic shape of an operand, independent of which concrete
// addressing mode it ultimately resolves to -- that resolution happens in selectMode, which also
// knows the target value (for size-dependent narrow/wide choices).
type operandForm int

const (
	formNone operandForm = iota
	formAccumulator
	formImmediate
	formIndirectX   // (expr,X)
	formIndirectY   // (expr),Y
	formIndirect    // (expr)  -- 65C02 (zp)/(abs) indirect without index
	formIndexedX    // expr,X
	formIndexedY    // expr,Y
	formDirect      // expr alone: zero page / absolute / relative, by value size and opcode support
	formZPRelative  // expr,expr: zero-page test address, relative branch target (BBRn/BBSn)
)

// operand is a parsed instruction operand: its syntactic form plus the one or two expression
// values it carries.
type operand struct {
	form  operandForm
	value int
	value2 int // second value for formZPRelative (the relative branch target)
}

// selectMode chooses the narrowest legal addressing mode for instr given operand, following the
// two processRule overloads in the grounding source: a no-operand lookup with an accumulator
// fallback, and an operand-bearing lookup that prefers relative, then zero-page/narrow indexed,
// then absolute/wide, deferring range errors until the resolver has converged (confirming).
func selectMode(instr opcode.Instruction, mnemonic string, op operand, pc int, confirming bool, pos SourceInfo) (opcode.Mode, opcode.Encoding, []byte, error) {
	switch op.form {
	case formNone:
		if enc, ok := instr.Modes[opcode.ModeImplied]; ok {
			return opcode.ModeImplied, enc, nil, nil
		}

		if enc, ok := instr.Modes[opcode.ModeAccumulator]; ok {
			return opcode.ModeAccumulator, enc, nil, nil
		}

		return 0, opcode.Encoding{}, nil, &UnsupportedModeError{SourceInfo: pos, Mnemonic: mnemonic, Mode: "Implied"}

	case formAccumulator:
		if enc, ok := instr.Modes[opcode.ModeAccumulator]; ok {
			return opcode.ModeAccumulator, enc, nil, nil
		}

		return 0, opcode.Encoding{}, nil, &UnsupportedModeError{SourceInfo: pos, Mnemonic: mnemonic, Mode: "Accumulator"}

	case formImmediate:
		if enc, ok := instr.Modes[opcode.ModeImmediate]; ok {
			return opcode.ModeImmediate, enc, []byte{byte(op.value)}, nil
		}

		return 0, opcode.Encoding{}, nil, &UnsupportedModeError{SourceInfo: pos, Mnemonic: mnemonic, Mode: "Immediate"}

	case formIndirectX:
		if enc, ok := instr.Modes[opcode.ModeIndirectX]; ok {
			return opcode.ModeIndirectX, enc, []byte{byte(op.value)}, nil
		}

		return 0, opcode.Encoding{}, nil, &UnsupportedModeError{SourceInfo: pos, Mnemonic: mnemonic, Mode: "IndirectX"}

	case formIndirectY:
		if enc, ok := instr.Modes[opcode.ModeIndirectY]; ok {
			return opcode.ModeIndirectY, enc, []byte{byte(op.value)}, nil
		}

		return 0, opcode.Encoding{}, nil, &UnsupportedModeError{SourceInfo: pos, Mnemonic: mnemonic, Mode: "IndirectY"}

	case formIndirect:
		if enc, ok := instr.Modes[opcode.ModeIndirect]; ok {
			// (zp) belongs to instructions that also have a zero-page mode; JMP (abs) always
			// takes a two-byte address.
			if _, hasZP := instr.Modes[opcode.ModeZeroPage]; hasZP && op.value&^0xFF == 0 {
				return opcode.ModeIndirect, enc, []byte{byte(op.value)}, nil
			}

			return opcode.ModeIndirect, enc, []byte{byte(op.value), byte(op.value >> 8)}, nil
		}

		return 0, opcode.Encoding{}, nil, &UnsupportedModeError{SourceInfo: pos, Mnemonic: mnemonic, Mode: "Indirect"}

	case formIndexedX:
		return selectIndexed(instr, mnemonic, op.value, opcode.ModeZeroPageX, opcode.ModeAbsoluteX, confirming, pos)

	case formIndexedY:
		return selectIndexed(instr, mnemonic, op.value, opcode.ModeZeroPageY, opcode.ModeAbsoluteY, confirming, pos)

	case formZPRelative:
		if enc, ok := instr.Modes[opcode.ModeZeroPageRelative]; ok {
			rel := op.value2 - (pc + 2)
			if confirming && (rel+128 < 0 || rel+128 > 0xFF) {
				return 0, opcode.Encoding{}, nil, &OperandRangeError{SourceInfo: pos, Mnemonic: mnemonic, Value: op.value2}
			}

			return opcode.ModeZeroPageRelative, enc, []byte{byte(op.value), byte(rel)}, nil
		}

		return 0, opcode.Encoding{}, nil, &UnsupportedModeError{SourceInfo: pos, Mnemonic: mnemonic, Mode: "ZeroPageRelative"}

	case formDirect:
		return selectDirect(instr, mnemonic, op.value, pc, confirming, pos)
	}

	return 0, opcode.Encoding{}, nil, &UnsupportedModeError{SourceInfo: pos, Mnemonic: mnemonic, Mode: "Unknown"}
}

// selectIndexed picks the zero-page or absolute indexed encoding, narrowest first, matching the
// operand-bearing processRule overload's supports_one_byte / supports_two_byte dispatch.
func selectIndexed(instr opcode.Instruction, mnemonic string, value int, narrow, wide opcode.Mode, confirming bool, pos SourceInfo) (opcode.Mode, opcode.Encoding, []byte, error) {
	narrowEnc, supportsNarrow := instr.Modes[narrow]
	wideEnc, supportsWide := instr.Modes[wide]

	if !supportsNarrow && !supportsWide {
		return 0, opcode.Encoding{}, nil, &UnsupportedModeError{SourceInfo: pos, Mnemonic: mnemonic, Mode: narrow.String()}
	}

	isLarge := value&^0xFF != 0

	if confirming && (value&^0xFFFF) != 0 {
		return 0, opcode.Encoding{}, nil, &OperandRangeError{SourceInfo: pos, Mnemonic: mnemonic, Value: value}
	}

	if !isLarge && supportsNarrow {
		return narrow, narrowEnc, []byte{byte(value)}, nil
	}

	if supportsWide {
		return wide, wideEnc, []byte{byte(value), byte(value >> 8)}, nil
	}

	if confirming {
		return 0, opcode.Encoding{}, nil, &OperandRangeError{SourceInfo: pos, Mnemonic: mnemonic, Value: value}
	}

	// Not yet confirming: tentatively emit the narrow form; a later pass may still resolve the
	// forward reference to something that fits.
	return narrow, narrowEnc, []byte{byte(value)}, nil
}

// selectDirect picks among zero page, absolute, and relative for a bare expr operand, preferring
// relative (for branch mnemonics) and narrowest-fit otherwise.
func selectDirect(instr opcode.Instruction, mnemonic string, value int, pc int, confirming bool, pos SourceInfo) (opcode.Mode, opcode.Encoding, []byte, error) {
	if enc, ok := instr.Modes[opcode.ModeRelative]; ok {
		// offset = target - (PC + 2), per the relative-branch encoding's own two-byte length.
		rel := value - (pc + 2)
		if confirming && (rel < -128 || rel > 127) {
			return 0, opcode.Encoding{}, nil, &OperandRangeError{SourceInfo: pos, Mnemonic: mnemonic, Value: value}
		}

		return opcode.ModeRelative, enc, []byte{byte(rel)}, nil
	}

	narrowEnc, supportsNarrow := instr.Modes[opcode.ModeZeroPage]
	wideEnc, supportsWide := instr.Modes[opcode.ModeAbsolute]

	if !supportsNarrow && !supportsWide {
		return 0, opcode.Encoding{}, nil, &UnsupportedModeError{SourceInfo: pos, Mnemonic: mnemonic, Mode: "ZeroPage/Absolute"}
	}

	isLarge := value&^0xFF != 0

	if confirming && (value&^0xFFFF) != 0 {
		return 0, opcode.Encoding{}, nil, &OperandRangeError{SourceInfo: pos, Mnemonic: mnemonic, Value: value}
	}

	if !isLarge && supportsNarrow {
		return opcode.ModeZeroPage, narrowEnc, []byte{byte(value)}, nil
	}

	if supportsWide {
		return opcode.ModeAbsolute, wideEnc, []byte{byte(value), byte(value >> 8)}, nil
	}

	if confirming {
		return 0, opcode.Encoding{}, nil, &OperandRangeError{SourceInfo: pos, Mnemonic: mnemonic, Value: value}
	}

	return opcode.ModeZeroPage, narrowEnc, []byte{byte(value)}, nil
}

// checkLegality rejects a mnemonic forbidden by the current dialect flags.
func checkLegality(mnemonicTok token.Type, opts Options, mnemonic string, pos SourceInfo) error {
	if token.Illegal[mnemonicTok] && !opts.EnableIllegal {
		return &UnknownOpcodeError{SourceInfo: pos, Mnemonic: mnemonic}
	}

	if token.Legal65C02Only[mnemonicTok] && !opts.Enable65C02 {
		return &UnknownOpcodeError{SourceInfo: pos, Mnemonic: mnemonic}
	}

	return nil
}
