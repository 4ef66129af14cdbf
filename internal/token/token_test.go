package token_test

import (
	"testing"

	"github.com/pbaxter/sixasm/internal/token"
)

func TestIsMnemonic(t *testing.T) {
	t.Parallel()

	if !token.IsMnemonic(token.LDA) {
		t.Error("LDA should be a mnemonic")
	}

	if token.IsMnemonic(token.EOL) {
		t.Error("EOL should not be a mnemonic")
	}

	if token.IsMnemonic(0) {
		t.Error("zero value should not be a mnemonic")
	}
}

func TestMnemonicTypesRoundTrip(t *testing.T) {
	t.Parallel()

	for typ, spelling := range token.MnemonicSpelling {
		got, ok := token.MnemonicTypes[spelling]
		if !ok {
			t.Fatalf("MnemonicTypes missing entry for %q", spelling)
		}

		if got != typ {
			t.Errorf("MnemonicTypes[%q] = %v, want %v", spelling, got, typ)
		}
	}
}

func TestLegalityTablesDisjointFromCore(t *testing.T) {
	t.Parallel()

	for typ := range token.Illegal {
		if token.Legal65C02Only[typ] {
			t.Errorf("%s listed as both illegal and 65C02-only", token.Name(typ))
		}
	}
}

func TestName(t *testing.T) {
	t.Parallel()

	if got := token.Name(token.LDA); got != "LDA" {
		t.Errorf("Name(LDA) = %q, want LDA", got)
	}

	if got := token.Name(token.EOL); got != "EOL" {
		t.Errorf("Name(EOL) = %q, want EOL", got)
	}
}
