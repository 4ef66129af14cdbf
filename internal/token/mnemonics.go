package token

// MnemonicSpelling maps each mnemonic Type to its canonical (upper-case) source spelling. It is
// the inverse of MnemonicTypes and is used to render mnemonics back into diagnostics and listings.
var MnemonicSpelling = map[Type]string{
	ORA: "ORA", AND: "AND", EOR: "EOR", ADC: "ADC", SBC: "SBC",
	CMP: "CMP", CPX: "CPX", CPY: "CPY",
	DEC: "DEC", DEX: "DEX", DEY: "DEY", INC: "INC", INX: "INX", INY: "INY",
	ASL: "ASL", ROL: "ROL", LSR: "LSR", ROR: "ROR",
	LDA: "LDA", STA: "STA", LDX: "LDX", STX: "STX", LDY: "LDY", STY: "STY",
	RMB0: "RMB0", RMB1: "RMB1", RMB2: "RMB2", RMB3: "RMB3",
	RMB4: "RMB4", RMB5: "RMB5", RMB6: "RMB6", RMB7: "RMB7",
	SMB0: "SMB0", SMB1: "SMB1", SMB2: "SMB2", SMB3: "SMB3",
	SMB4: "SMB4", SMB5: "SMB5", SMB6: "SMB6", SMB7: "SMB7",
	STZ: "STZ",
	TAX: "TAX", TXA: "TXA", TAY: "TAY", TYA: "TYA", TSX: "TSX", TXS: "TXS",
	PLA: "PLA", PHA: "PHA", PLP: "PLP", PHP: "PHP",
	PHX: "PHX", PHY: "PHY", PLX: "PLX", PLY: "PLY",
	BRA: "BRA", BPL: "BPL", BMI: "BMI", BVC: "BVC", BVS: "BVS",
	BCC: "BCC", BCS: "BCS", BNE: "BNE", BEQ: "BEQ",
	BBR0: "BBR0", BBR1: "BBR1", BBR2: "BBR2", BBR3: "BBR3",
	BBR4: "BBR4", BBR5: "BBR5", BBR6: "BBR6", BBR7: "BBR7",
	BBS0: "BBS0", BBS1: "BBS1", BBS2: "BBS2", BBS3: "BBS3",
	BBS4: "BBS4", BBS5: "BBS5", BBS6: "BBS6", BBS7: "BBS7",
	STP: "STP", WAI: "WAI",
	BRK: "BRK", RTI: "RTI", JSR: "JSR", RTS: "RTS", JMP: "JMP",
	BIT: "BIT", TRB: "TRB", TSB: "TSB",
	CLC: "CLC", SEC: "SEC", CLD: "CLD", SED: "SED", CLI: "CLI", SEI: "SEI", CLV: "CLV",
	NOP: "NOP",

	// Illegal/undocumented opcodes.
	SLO: "SLO", RLA: "RLA", SRE: "SRE", RRA: "RRA",
	SAX: "SAX", LAX: "LAX", DCP: "DCP", ISC: "ISC",
	ANC: "ANC", ANC2: "ANC2", ALR: "ALR", ARR: "ARR",
	XAA: "XAA", AXS: "AXS", USBC: "USBC",
	AHX: "AHX", SHY: "SHY", SHX: "SHX", TAS: "TAS", LAS: "LAS",
}

// MnemonicTypes is the inverse of MnemonicSpelling: the lexer uses it to classify an identifier
// as a mnemonic token instead of a symbol reference.
var MnemonicTypes = func() map[string]Type {
	m := make(map[string]Type, len(MnemonicSpelling))
	for t, s := range MnemonicSpelling {
		m[s] = t
	}

	return m
}()

// Legal65C02Only lists mnemonics that require -65c02 because the base 6502 has no encoding for
// them at all (as opposed to mnemonics like BIT that merely gain new addressing modes on 65C02).
var Legal65C02Only = map[Type]bool{
	BRA: true, PHX: true, PHY: true, PLX: true, PLY: true, STZ: true,
	TRB: true, TSB: true, STP: true, WAI: true,
	RMB0: true, RMB1: true, RMB2: true, RMB3: true, RMB4: true, RMB5: true, RMB6: true, RMB7: true,
	SMB0: true, SMB1: true, SMB2: true, SMB3: true, SMB4: true, SMB5: true, SMB6: true, SMB7: true,
	BBR0: true, BBR1: true, BBR2: true, BBR3: true, BBR4: true, BBR5: true, BBR6: true, BBR7: true,
	BBS0: true, BBS1: true, BBS2: true, BBS3: true, BBS4: true, BBS5: true, BBS6: true, BBS7: true,
}

// Illegal lists mnemonics that only exist as undocumented opcodes and thus require -il.
var Illegal = map[Type]bool{
	SLO: true, RLA: true, SRE: true, RRA: true, SAX: true, LAX: true,
	DCP: true, ISC: true, ANC: true, ANC2: true, ALR: true, ARR: true,
	XAA: true, AXS: true, USBC: true, AHX: true, SHY: true, SHX: true,
	TAS: true, LAS: true,
}
