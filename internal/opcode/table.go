package opcode

import "github.com/pbaxter/sixasm/internal/token"

// Encoding is one addressing mode's opcode byte and base cycle count (the extra cycle some modes
// take when a page boundary is crossed is not modelled).
type Encoding struct {
	Opcode byte
	Cycles int
}

// Instruction is one mnemonic's full addressing-mode table plus its legality flags.
type Instruction struct {
	Mnemonic    string
	Modes       map[Mode]Encoding
	Is65C02     bool
	IsIllegal   bool
	Description string
}

// Table maps each mnemonic token to its Instruction entry. It is the table the mode selector
// consults; the legal 6502 core, 65C02 additions (including the
// bit-manipulation family RMBn/SMBn/BBRn/BBSn and STZ/TRB/TSB/STP/WAI/PHX/PHY/PLX/PLY/BRA/the
// indirect zero-page modes), and a representative illegal/undocumented subset (SLO/RLA/SRE/RRA/
// SAX/LAX/DCP/ISC/ANC/ANC2/ALR/ARR/XAA/AXS/USBC/AHX/SHY/SHX/TAS/LAS) are all present.
var Table = map[token.Type]Instruction{
	token.ORA: {Mnemonic: "ORA", Description: "Logical Inclusive OR with Accumulator", Modes: map[Mode]Encoding{
		ModeImmediate: {0x09, 2}, ModeZeroPage: {0x05, 3}, ModeZeroPageX: {0x15, 4},
		ModeAbsolute: {0x0D, 4}, ModeAbsoluteX: {0x1D, 4}, ModeAbsoluteY: {0x19, 4},
		ModeIndirectX: {0x01, 6}, ModeIndirectY: {0x11, 5}, ModeIndirect: {0x12, 5},
	}},
	token.AND: {Mnemonic: "AND", Description: "Logical AND with Accumulator", Modes: map[Mode]Encoding{
		ModeImmediate: {0x29, 2}, ModeZeroPage: {0x25, 3}, ModeZeroPageX: {0x35, 4},
		ModeAbsolute: {0x2D, 4}, ModeAbsoluteX: {0x3D, 4}, ModeAbsoluteY: {0x39, 4},
		ModeIndirectX: {0x21, 6}, ModeIndirectY: {0x31, 5}, ModeIndirect: {0x32, 5},
	}},
	token.EOR: {Mnemonic: "EOR", Description: "Exclusive OR with Accumulator", Modes: map[Mode]Encoding{
		ModeImmediate: {0x49, 2}, ModeZeroPage: {0x45, 3}, ModeZeroPageX: {0x55, 4},
		ModeAbsolute: {0x4D, 4}, ModeAbsoluteX: {0x5D, 4}, ModeAbsoluteY: {0x59, 4},
		ModeIndirectX: {0x41, 6}, ModeIndirectY: {0x51, 5}, ModeIndirect: {0x52, 5},
	}},
	token.ADC: {Mnemonic: "ADC", Description: "Add with Carry", Modes: map[Mode]Encoding{
		ModeImmediate: {0x69, 2}, ModeZeroPage: {0x65, 3}, ModeZeroPageX: {0x75, 4},
		ModeAbsolute: {0x6D, 4}, ModeAbsoluteX: {0x7D, 4}, ModeAbsoluteY: {0x79, 4},
		ModeIndirectX: {0x61, 6}, ModeIndirectY: {0x71, 5}, ModeIndirect: {0x72, 5},
	}},
	token.SBC: {Mnemonic: "SBC", Description: "Subtract with Carry", Modes: map[Mode]Encoding{
		ModeImmediate: {0xE9, 2}, ModeZeroPage: {0xE5, 3}, ModeZeroPageX: {0xF5, 4},
		ModeAbsolute: {0xED, 4}, ModeAbsoluteX: {0xFD, 4}, ModeAbsoluteY: {0xF9, 4},
		ModeIndirectX: {0xE1, 6}, ModeIndirectY: {0xF1, 5}, ModeIndirect: {0xF2, 5},
	}},
	token.CMP: {Mnemonic: "CMP", Description: "Compare Accumulator", Modes: map[Mode]Encoding{
		ModeImmediate: {0xC9, 2}, ModeZeroPage: {0xC5, 3}, ModeZeroPageX: {0xD5, 4},
		ModeAbsolute: {0xCD, 4}, ModeAbsoluteX: {0xDD, 4}, ModeAbsoluteY: {0xD9, 4},
		ModeIndirectX: {0xC1, 6}, ModeIndirectY: {0xD1, 5}, ModeIndirect: {0xD2, 6},
	}},
	token.CPX: {Mnemonic: "CPX", Description: "Compare X Register", Modes: map[Mode]Encoding{
		ModeImmediate: {0xE0, 2}, ModeZeroPage: {0xE4, 3}, ModeAbsolute: {0xEC, 4},
	}},
	token.CPY: {Mnemonic: "CPY", Description: "Compare Y Register", Modes: map[Mode]Encoding{
		ModeImmediate: {0xC0, 2}, ModeZeroPage: {0xC4, 3}, ModeAbsolute: {0xCC, 4},
	}},
	token.DEC: {Mnemonic: "DEC", Description: "Decrement Memory", Modes: map[Mode]Encoding{
		ModeZeroPage: {0xC6, 5}, ModeZeroPageX: {0xD6, 6}, ModeAbsolute: {0xCE, 6}, ModeAbsoluteX: {0xDE, 7},
	}},
	token.DEX: {Mnemonic: "DEX", Description: "Decrement X Register", Modes: map[Mode]Encoding{ModeImplied: {0xCA, 2}}},
	token.DEY: {Mnemonic: "DEY", Description: "Decrement Y Register", Modes: map[Mode]Encoding{ModeImplied: {0x88, 2}}},
	token.INC: {Mnemonic: "INC", Description: "Increment Memory", Modes: map[Mode]Encoding{
		ModeZeroPage: {0xE6, 5}, ModeZeroPageX: {0xF6, 6}, ModeAbsolute: {0xEE, 6}, ModeAbsoluteX: {0xFE, 7},
	}},
	token.INX: {Mnemonic: "INX", Description: "Increment X Register", Modes: map[Mode]Encoding{ModeImplied: {0xE8, 2}}},
	token.INY: {Mnemonic: "INY", Description: "Increment Y Register", Modes: map[Mode]Encoding{ModeImplied: {0xC8, 2}}},
	token.ASL: {Mnemonic: "ASL", Description: "Arithmetic Shift Left", Modes: map[Mode]Encoding{
		ModeAccumulator: {0x0A, 2}, ModeZeroPage: {0x06, 5}, ModeZeroPageX: {0x16, 6}, ModeAbsolute: {0x0E, 6}, ModeAbsoluteX: {0x1E, 7},
	}},
	token.ROL: {Mnemonic: "ROL", Description: "Rotate Left", Modes: map[Mode]Encoding{
		ModeAccumulator: {0x2A, 2}, ModeZeroPage: {0x26, 5}, ModeZeroPageX: {0x36, 6}, ModeAbsolute: {0x2E, 6}, ModeAbsoluteX: {0x3E, 7},
	}},
	token.LSR: {Mnemonic: "LSR", Description: "Logical Shift Right", Modes: map[Mode]Encoding{
		ModeAccumulator: {0x4A, 2}, ModeZeroPage: {0x46, 5}, ModeZeroPageX: {0x56, 6}, ModeAbsolute: {0x4E, 6}, ModeAbsoluteX: {0x5E, 7},
	}},
	token.ROR: {Mnemonic: "ROR", Description: "Rotate Right", Modes: map[Mode]Encoding{
		ModeAccumulator: {0x6A, 2}, ModeZeroPage: {0x66, 5}, ModeZeroPageX: {0x76, 6}, ModeAbsolute: {0x6E, 6}, ModeAbsoluteX: {0x7E, 7},
	}},
	token.LDA: {Mnemonic: "LDA", Description: "Load Accumulator", Modes: map[Mode]Encoding{
		ModeImmediate: {0xA9, 2}, ModeZeroPage: {0xA5, 3}, ModeZeroPageX: {0xB5, 4},
		ModeAbsolute: {0xAD, 4}, ModeAbsoluteX: {0xBD, 4}, ModeAbsoluteY: {0xB9, 4},
		ModeIndirectX: {0xA1, 6}, ModeIndirectY: {0xB1, 5}, ModeIndirect: {0xB2, 5},
	}},
	token.STA: {Mnemonic: "STA", Description: "Store Accumulator", Modes: map[Mode]Encoding{
		ModeZeroPage: {0x85, 3}, ModeZeroPageX: {0x95, 4}, ModeAbsolute: {0x8D, 5}, ModeAbsoluteX: {0x9D, 5},
		ModeAbsoluteY: {0x99, 6}, ModeIndirectX: {0x81, 6}, ModeIndirectY: {0x91, 6}, ModeIndirect: {0x92, 6},
	}},
	token.LDX: {Mnemonic: "LDX", Description: "Load X Register", Modes: map[Mode]Encoding{
		ModeImmediate: {0xA2, 2}, ModeZeroPage: {0xA6, 3}, ModeZeroPageY: {0xB6, 4}, ModeAbsolute: {0xAE, 4}, ModeAbsoluteY: {0xBE, 4},
	}},
	token.STX: {Mnemonic: "STX", Description: "Store X Register", Modes: map[Mode]Encoding{
		ModeZeroPage: {0x86, 3}, ModeZeroPageY: {0x96, 4}, ModeAbsolute: {0x8E, 4},
	}},
	token.LDY: {Mnemonic: "LDY", Description: "Load Y Register", Modes: map[Mode]Encoding{
		ModeImmediate: {0xA0, 2}, ModeZeroPage: {0xA4, 3}, ModeZeroPageX: {0xB4, 4}, ModeAbsolute: {0xAC, 4}, ModeAbsoluteX: {0xBC, 4},
	}},
	token.STY: {Mnemonic: "STY", Description: "Store Y Register", Modes: map[Mode]Encoding{
		ModeZeroPage: {0x84, 3}, ModeZeroPageX: {0x94, 4}, ModeAbsolute: {0x8C, 4},
	}},

	// 65C02 bit-manipulation family.
	token.RMB0: {Mnemonic: "RMB0", Is65C02: true, Description: "Reset Memory Bit 0", Modes: map[Mode]Encoding{ModeZeroPage: {0x07, 5}}},
	token.RMB1: {Mnemonic: "RMB1", Is65C02: true, Description: "Reset Memory Bit 1", Modes: map[Mode]Encoding{ModeZeroPage: {0x17, 5}}},
	token.RMB2: {Mnemonic: "RMB2", Is65C02: true, Description: "Reset Memory Bit 2", Modes: map[Mode]Encoding{ModeZeroPage: {0x27, 5}}},
	token.RMB3: {Mnemonic: "RMB3", Is65C02: true, Description: "Reset Memory Bit 3", Modes: map[Mode]Encoding{ModeZeroPage: {0x37, 5}}},
	token.RMB4: {Mnemonic: "RMB4", Is65C02: true, Description: "Reset Memory Bit 4", Modes: map[Mode]Encoding{ModeZeroPage: {0x47, 5}}},
	token.RMB5: {Mnemonic: "RMB5", Is65C02: true, Description: "Reset Memory Bit 5", Modes: map[Mode]Encoding{ModeZeroPage: {0x57, 5}}},
	token.RMB6: {Mnemonic: "RMB6", Is65C02: true, Description: "Reset Memory Bit 6", Modes: map[Mode]Encoding{ModeZeroPage: {0x67, 5}}},
	token.RMB7: {Mnemonic: "RMB7", Is65C02: true, Description: "Reset Memory Bit 7", Modes: map[Mode]Encoding{ModeZeroPage: {0x77, 5}}},
	token.SMB0: {Mnemonic: "SMB0", Is65C02: true, Description: "Set Memory Bit 0", Modes: map[Mode]Encoding{ModeZeroPage: {0x87, 5}}},
	token.SMB1: {Mnemonic: "SMB1", Is65C02: true, Description: "Set Memory Bit 1", Modes: map[Mode]Encoding{ModeZeroPage: {0x97, 5}}},
	token.SMB2: {Mnemonic: "SMB2", Is65C02: true, Description: "Set Memory Bit 2", Modes: map[Mode]Encoding{ModeZeroPage: {0xA7, 5}}},
	token.SMB3: {Mnemonic: "SMB3", Is65C02: true, Description: "Set Memory Bit 3", Modes: map[Mode]Encoding{ModeZeroPage: {0xB7, 5}}},
	token.SMB4: {Mnemonic: "SMB4", Is65C02: true, Description: "Set Memory Bit 4", Modes: map[Mode]Encoding{ModeZeroPage: {0xC7, 5}}},
	token.SMB5: {Mnemonic: "SMB5", Is65C02: true, Description: "Set Memory Bit 5", Modes: map[Mode]Encoding{ModeZeroPage: {0xD7, 5}}},
	token.SMB6: {Mnemonic: "SMB6", Is65C02: true, Description: "Set Memory Bit 6", Modes: map[Mode]Encoding{ModeZeroPage: {0xE7, 5}}},
	token.SMB7: {Mnemonic: "SMB7", Is65C02: true, Description: "Set Memory Bit 7", Modes: map[Mode]Encoding{ModeZeroPage: {0xF7, 5}}},

	token.STZ: {Mnemonic: "STZ", Is65C02: true, Description: "Store Zero", Modes: map[Mode]Encoding{
		ModeZeroPage: {0x64, 3}, ModeZeroPageX: {0x74, 4}, ModeAbsolute: {0x9C, 4}, ModeAbsoluteX: {0x9E, 5},
	}},
	token.TRB: {Mnemonic: "TRB", Is65C02: true, Description: "Test and Reset Bits", Modes: map[Mode]Encoding{
		ModeZeroPage: {0x14, 5}, ModeAbsolute: {0x1C, 6},
	}},
	token.TSB: {Mnemonic: "TSB", Is65C02: true, Description: "Test and Set Bits", Modes: map[Mode]Encoding{
		ModeZeroPage: {0x04, 5}, ModeAbsolute: {0x0C, 6},
	}},

	token.TAX: {Mnemonic: "TAX", Description: "Transfer Accumulator to X", Modes: map[Mode]Encoding{ModeImplied: {0xAA, 2}}},
	token.TXA: {Mnemonic: "TXA", Description: "Transfer X to Accumulator", Modes: map[Mode]Encoding{ModeImplied: {0x8A, 2}}},
	token.TAY: {Mnemonic: "TAY", Description: "Transfer Accumulator to Y", Modes: map[Mode]Encoding{ModeImplied: {0xA8, 2}}},
	token.TYA: {Mnemonic: "TYA", Description: "Transfer Y to Accumulator", Modes: map[Mode]Encoding{ModeImplied: {0x98, 2}}},
	token.TSX: {Mnemonic: "TSX", Description: "Transfer Stack Pointer to X", Modes: map[Mode]Encoding{ModeImplied: {0xBA, 2}}},
	token.TXS: {Mnemonic: "TXS", Description: "Transfer X to Stack Pointer", Modes: map[Mode]Encoding{ModeImplied: {0x9A, 2}}},
	token.PLA: {Mnemonic: "PLA", Description: "Pull Accumulator", Modes: map[Mode]Encoding{ModeImplied: {0x68, 4}}},
	token.PHA: {Mnemonic: "PHA", Description: "Push Accumulator", Modes: map[Mode]Encoding{ModeImplied: {0x48, 3}}},
	token.PLP: {Mnemonic: "PLP", Description: "Pull Processor Status", Modes: map[Mode]Encoding{ModeImplied: {0x28, 4}}},
	token.PHP: {Mnemonic: "PHP", Description: "Push Processor Status", Modes: map[Mode]Encoding{ModeImplied: {0x08, 4}}},
	token.PHX: {Mnemonic: "PHX", Is65C02: true, Description: "Push X Register", Modes: map[Mode]Encoding{ModeImplied: {0xDA, 3}}},
	token.PHY: {Mnemonic: "PHY", Is65C02: true, Description: "Push Y Register", Modes: map[Mode]Encoding{ModeImplied: {0x5A, 3}}},
	token.PLX: {Mnemonic: "PLX", Is65C02: true, Description: "Pull X Register", Modes: map[Mode]Encoding{ModeImplied: {0xFA, 4}}},
	token.PLY: {Mnemonic: "PLY", Is65C02: true, Description: "Pull Y Register", Modes: map[Mode]Encoding{ModeImplied: {0x7A, 4}}},

	token.BRA: {Mnemonic: "BRA", Is65C02: true, Description: "Branch Always", Modes: map[Mode]Encoding{ModeRelative: {0x80, 3}}},
	token.BPL: {Mnemonic: "BPL", Description: "Branch if Positive (N=0)", Modes: map[Mode]Encoding{ModeRelative: {0x10, 2}}},
	token.BMI: {Mnemonic: "BMI", Description: "Branch if Minus (N=1)", Modes: map[Mode]Encoding{ModeRelative: {0x30, 2}}},
	token.BVC: {Mnemonic: "BVC", Description: "Branch if Overflow Clear (V=0)", Modes: map[Mode]Encoding{ModeRelative: {0x50, 2}}},
	token.BVS: {Mnemonic: "BVS", Description: "Branch if Overflow Set (V=1)", Modes: map[Mode]Encoding{ModeRelative: {0x70, 2}}},
	token.BCC: {Mnemonic: "BCC", Description: "Branch if Carry Clear (C=0)", Modes: map[Mode]Encoding{ModeRelative: {0x90, 2}}},
	token.BCS: {Mnemonic: "BCS", Description: "Branch if Carry Set (C=1)", Modes: map[Mode]Encoding{ModeRelative: {0xB0, 2}}},
	token.BNE: {Mnemonic: "BNE", Description: "Branch if Not Equal (Z=0)", Modes: map[Mode]Encoding{ModeRelative: {0xD0, 2}}},
	token.BEQ: {Mnemonic: "BEQ", Description: "Branch if Equal (Z=1)", Modes: map[Mode]Encoding{ModeRelative: {0xF0, 2}}},

	token.BBR0: {Mnemonic: "BBR0", Is65C02: true, Description: "Branch if Bit 0 Reset", Modes: map[Mode]Encoding{ModeZeroPageRelative: {0x0F, 5}}},
	token.BBR1: {Mnemonic: "BBR1", Is65C02: true, Description: "Branch if Bit 1 Reset", Modes: map[Mode]Encoding{ModeZeroPageRelative: {0x1F, 5}}},
	token.BBR2: {Mnemonic: "BBR2", Is65C02: true, Description: "Branch if Bit 2 Reset", Modes: map[Mode]Encoding{ModeZeroPageRelative: {0x2F, 5}}},
	token.BBR3: {Mnemonic: "BBR3", Is65C02: true, Description: "Branch if Bit 3 Reset", Modes: map[Mode]Encoding{ModeZeroPageRelative: {0x3F, 5}}},
	token.BBR4: {Mnemonic: "BBR4", Is65C02: true, Description: "Branch if Bit 4 Reset", Modes: map[Mode]Encoding{ModeZeroPageRelative: {0x4F, 5}}},
	token.BBR5: {Mnemonic: "BBR5", Is65C02: true, Description: "Branch if Bit 5 Reset", Modes: map[Mode]Encoding{ModeZeroPageRelative: {0x5F, 5}}},
	token.BBR6: {Mnemonic: "BBR6", Is65C02: true, Description: "Branch if Bit 6 Reset", Modes: map[Mode]Encoding{ModeZeroPageRelative: {0x6F, 5}}},
	token.BBR7: {Mnemonic: "BBR7", Is65C02: true, Description: "Branch if Bit 7 Reset", Modes: map[Mode]Encoding{ModeZeroPageRelative: {0x7F, 5}}},
	token.BBS0: {Mnemonic: "BBS0", Is65C02: true, Description: "Branch if Bit 0 Set", Modes: map[Mode]Encoding{ModeZeroPageRelative: {0x8F, 5}}},
	token.BBS1: {Mnemonic: "BBS1", Is65C02: true, Description: "Branch if Bit 1 Set", Modes: map[Mode]Encoding{ModeZeroPageRelative: {0x9F, 5}}},
	token.BBS2: {Mnemonic: "BBS2", Is65C02: true, Description: "Branch if Bit 2 Set", Modes: map[Mode]Encoding{ModeZeroPageRelative: {0xAF, 5}}},
	token.BBS3: {Mnemonic: "BBS3", Is65C02: true, Description: "Branch if Bit 3 Set", Modes: map[Mode]Encoding{ModeZeroPageRelative: {0xBF, 5}}},
	token.BBS4: {Mnemonic: "BBS4", Is65C02: true, Description: "Branch if Bit 4 Set", Modes: map[Mode]Encoding{ModeZeroPageRelative: {0xCF, 5}}},
	token.BBS5: {Mnemonic: "BBS5", Is65C02: true, Description: "Branch if Bit 5 Set", Modes: map[Mode]Encoding{ModeZeroPageRelative: {0xDF, 5}}},
	token.BBS6: {Mnemonic: "BBS6", Is65C02: true, Description: "Branch if Bit 6 Set", Modes: map[Mode]Encoding{ModeZeroPageRelative: {0xEF, 5}}},
	token.BBS7: {Mnemonic: "BBS7", Is65C02: true, Description: "Branch if Bit 7 Set", Modes: map[Mode]Encoding{ModeZeroPageRelative: {0xFF, 5}}},

	token.STP: {Mnemonic: "STP", Is65C02: true, Description: "Stop the Processor (WDC)", Modes: map[Mode]Encoding{ModeImplied: {0xDB, 3}}},
	token.WAI: {Mnemonic: "WAI", Is65C02: true, Description: "Wait for Interrupt (WDC)", Modes: map[Mode]Encoding{ModeImplied: {0xCB, 3}}},

	token.BRK: {Mnemonic: "BRK", Description: "Break/Interrupt", Modes: map[Mode]Encoding{ModeImplied: {0x00, 7}}},
	token.RTI: {Mnemonic: "RTI", Description: "Return from Interrupt", Modes: map[Mode]Encoding{ModeImplied: {0x40, 6}}},
	token.JSR: {Mnemonic: "JSR", Description: "Jump to Subroutine", Modes: map[Mode]Encoding{ModeAbsolute: {0x20, 6}}},
	token.RTS: {Mnemonic: "RTS", Description: "Return from Subroutine", Modes: map[Mode]Encoding{ModeImplied: {0x60, 6}}},
	token.JMP: {Mnemonic: "JMP", Description: "Jump", Modes: map[Mode]Encoding{
		ModeAbsolute: {0x4C, 3}, ModeIndirect: {0x6C, 5}, ModeIndirectX: {0x7C, 6},
	}},
	token.BIT: {Mnemonic: "BIT", Description: "Test Bits in Memory with Accumulator", Modes: map[Mode]Encoding{
		ModeZeroPage: {0x24, 3}, ModeAbsolute: {0x2C, 4}, ModeImmediate: {0x89, 2}, ModeZeroPageX: {0x34, 4}, ModeAbsoluteX: {0x3C, 4},
	}},

	token.CLC: {Mnemonic: "CLC", Description: "Clear Carry Flag", Modes: map[Mode]Encoding{ModeImplied: {0x18, 2}}},
	token.SEC: {Mnemonic: "SEC", Description: "Set Carry Flag", Modes: map[Mode]Encoding{ModeImplied: {0x38, 2}}},
	token.CLD: {Mnemonic: "CLD", Description: "Clear Decimal Mode", Modes: map[Mode]Encoding{ModeImplied: {0xD8, 2}}},
	token.SED: {Mnemonic: "SED", Description: "Set Decimal Mode", Modes: map[Mode]Encoding{ModeImplied: {0xF8, 2}}},
	token.CLI: {Mnemonic: "CLI", Description: "Clear Interrupt Disable", Modes: map[Mode]Encoding{ModeImplied: {0x58, 2}}},
	token.SEI: {Mnemonic: "SEI", Description: "Set Interrupt Disable", Modes: map[Mode]Encoding{ModeImplied: {0x78, 2}}},
	token.CLV: {Mnemonic: "CLV", Description: "Clear Overflow Flag", Modes: map[Mode]Encoding{ModeImplied: {0xB8, 2}}},
	token.NOP: {Mnemonic: "NOP", Description: "No Operation", Modes: map[Mode]Encoding{ModeImplied: {0xEA, 2}}},

	// Illegal/undocumented opcodes (-il).
	token.SLO: {Mnemonic: "SLO", IsIllegal: true, Description: "ASL then ORA", Modes: map[Mode]Encoding{
		ModeZeroPage: {0x07, 5}, ModeZeroPageX: {0x17, 6}, ModeAbsolute: {0x0F, 6},
		ModeAbsoluteX: {0x1F, 7}, ModeAbsoluteY: {0x1B, 7}, ModeIndirectX: {0x03, 8}, ModeIndirectY: {0x13, 8},
	}},
	token.RLA: {Mnemonic: "RLA", IsIllegal: true, Description: "ROL then AND", Modes: map[Mode]Encoding{
		ModeZeroPage: {0x27, 5}, ModeZeroPageX: {0x37, 6}, ModeAbsolute: {0x2F, 6},
		ModeAbsoluteX: {0x3F, 7}, ModeAbsoluteY: {0x3B, 7}, ModeIndirectX: {0x23, 8}, ModeIndirectY: {0x33, 8},
	}},
	token.SRE: {Mnemonic: "SRE", IsIllegal: true, Description: "LSR then EOR", Modes: map[Mode]Encoding{
		ModeZeroPage: {0x47, 5}, ModeZeroPageX: {0x57, 6}, ModeAbsolute: {0x4F, 6},
		ModeAbsoluteX: {0x5F, 7}, ModeAbsoluteY: {0x5B, 7}, ModeIndirectX: {0x43, 8}, ModeIndirectY: {0x53, 8},
	}},
	token.RRA: {Mnemonic: "RRA", IsIllegal: true, Description: "ROR then ADC", Modes: map[Mode]Encoding{
		ModeZeroPage: {0x67, 5}, ModeZeroPageX: {0x77, 6}, ModeAbsolute: {0x6F, 6},
		ModeAbsoluteX: {0x7F, 7}, ModeAbsoluteY: {0x7B, 7}, ModeIndirectX: {0x63, 8}, ModeIndirectY: {0x73, 8},
	}},
	token.SAX: {Mnemonic: "SAX", IsIllegal: true, Description: "STA AND STX", Modes: map[Mode]Encoding{
		ModeZeroPage: {0x87, 3}, ModeZeroPageY: {0x97, 4}, ModeAbsolute: {0x8F, 4}, ModeIndirectX: {0x83, 6},
	}},
	token.LAX: {Mnemonic: "LAX", IsIllegal: true, Description: "LDA then LDX", Modes: map[Mode]Encoding{
		ModeZeroPage: {0xA7, 3}, ModeZeroPageY: {0xB7, 4}, ModeAbsolute: {0xAF, 4},
		ModeAbsoluteY: {0xBF, 4}, ModeIndirectX: {0xA3, 6}, ModeIndirectY: {0xB3, 5}, ModeImmediate: {0xAB, 2},
	}},
	token.DCP: {Mnemonic: "DCP", IsIllegal: true, Description: "DEC then CMP", Modes: map[Mode]Encoding{
		ModeZeroPage: {0xC7, 5}, ModeZeroPageX: {0xD7, 6}, ModeAbsolute: {0xCF, 6},
		ModeAbsoluteX: {0xDF, 7}, ModeAbsoluteY: {0xDB, 7}, ModeIndirectX: {0xC3, 8}, ModeIndirectY: {0xD3, 8},
	}},
	token.ISC: {Mnemonic: "ISC", IsIllegal: true, Description: "INC then SBC", Modes: map[Mode]Encoding{
		ModeZeroPage: {0xE7, 5}, ModeZeroPageX: {0xF7, 6}, ModeAbsolute: {0xEF, 6},
		ModeAbsoluteX: {0xFF, 7}, ModeAbsoluteY: {0xFB, 7}, ModeIndirectX: {0xE3, 8}, ModeIndirectY: {0xF3, 8},
	}},
	token.ANC:  {Mnemonic: "ANC", IsIllegal: true, Description: "AND then set Carry", Modes: map[Mode]Encoding{ModeImmediate: {0x0B, 2}}},
	token.ANC2: {Mnemonic: "ANC2", IsIllegal: true, Description: "AND then set Carry (alternate encoding)", Modes: map[Mode]Encoding{ModeImmediate: {0x2B, 2}}},
	token.ALR:  {Mnemonic: "ALR", IsIllegal: true, Description: "AND then LSR", Modes: map[Mode]Encoding{ModeImmediate: {0x4B, 2}}},
	token.ARR:  {Mnemonic: "ARR", IsIllegal: true, Description: "AND then ROR", Modes: map[Mode]Encoding{ModeImmediate: {0x6B, 2}}},
	token.XAA:  {Mnemonic: "XAA", IsIllegal: true, Description: "TXA then AND (unstable)", Modes: map[Mode]Encoding{ModeImmediate: {0x8B, 2}}},
	token.AXS:  {Mnemonic: "AXS", IsIllegal: true, Description: "CMP then DEX", Modes: map[Mode]Encoding{ModeImmediate: {0xCB, 2}}},
	token.USBC: {Mnemonic: "USBC", IsIllegal: true, Description: "Unstable SBC", Modes: map[Mode]Encoding{ModeImmediate: {0xEB, 2}}},
	token.AHX:  {Mnemonic: "AHX", IsIllegal: true, Description: "STA AND STX AND STY (unstable)", Modes: map[Mode]Encoding{ModeAbsoluteY: {0x9F, 5}, ModeIndirectY: {0x93, 6}}},
	token.SHY:  {Mnemonic: "SHY", IsIllegal: true, Description: "Store Y AND high byte (unstable)", Modes: map[Mode]Encoding{ModeAbsoluteX: {0x9C, 5}}},
	token.SHX:  {Mnemonic: "SHX", IsIllegal: true, Description: "Store X AND high byte (unstable)", Modes: map[Mode]Encoding{ModeAbsoluteY: {0x9E, 5}}},
	token.TAS:  {Mnemonic: "TAS", IsIllegal: true, Description: "Transfer A AND X to SP (unstable)", Modes: map[Mode]Encoding{ModeAbsoluteY: {0x9B, 5}}},
	token.LAS:  {Mnemonic: "LAS", IsIllegal: true, Description: "LDA then TSX", Modes: map[Mode]Encoding{ModeAbsoluteY: {0xBB, 4}}},
}

// Lookup returns the Instruction entry for a mnemonic token and whether it was found.
func Lookup(t token.Type) (Instruction, bool) {
	i, ok := Table[t]
	return i, ok
}
