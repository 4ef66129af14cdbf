package opcode_test

import (
	"testing"

	"github.com/pbaxter/sixasm/internal/opcode"
	"github.com/pbaxter/sixasm/internal/token"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	instr, ok := opcode.Lookup(token.LDA)
	if !ok {
		t.Fatal("LDA should be in the table")
	}

	enc, ok := instr.Modes[opcode.ModeImmediate]
	if !ok || enc.Opcode != 0xA9 {
		t.Errorf("LDA immediate = %#x, want 0xA9", enc.Opcode)
	}

	if _, ok := opcode.Lookup(token.EOL); ok {
		t.Error("EOL is not a mnemonic and should not be found")
	}
}

func TestIllegalAndC02Flags(t *testing.T) {
	t.Parallel()

	slo, ok := opcode.Lookup(token.SLO)
	if !ok || !slo.IsIllegal {
		t.Error("SLO should be flagged illegal")
	}

	stz, ok := opcode.Lookup(token.STZ)
	if !ok || !stz.Is65C02 {
		t.Error("STZ should be flagged 65C02-only")
	}

	lda, ok := opcode.Lookup(token.LDA)
	if !ok || lda.IsIllegal || lda.Is65C02 {
		t.Error("LDA is a core 6502 opcode, should have neither flag")
	}
}

func TestOperandBytes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		mode opcode.Mode
		want int
	}{
		{opcode.ModeImplied, 0},
		{opcode.ModeAccumulator, 0},
		{opcode.ModeImmediate, 1},
		{opcode.ModeZeroPage, 1},
		{opcode.ModeZeroPageRelative, 2},
		{opcode.ModeAbsolute, 2},
	}

	for _, tc := range cases {
		if got := tc.mode.OperandBytes(); got != tc.want {
			t.Errorf("%s.OperandBytes() = %d, want %d", tc.mode, got, tc.want)
		}
	}
}

func TestModeString(t *testing.T) {
	t.Parallel()

	if got := opcode.ModeZeroPageX.String(); got != "ZeroPageX" {
		t.Errorf("ModeZeroPageX.String() = %q, want ZeroPageX", got)
	}
}
