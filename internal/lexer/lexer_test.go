package lexer_test

import (
	"strings"
	"testing"

	"github.com/pbaxter/sixasm/internal/lexer"
	"github.com/pbaxter/sixasm/internal/source"
	"github.com/pbaxter/sixasm/internal/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()

	cache := source.NewCache()

	if _, err := cache.Read("test.asm", strings.NewReader(src)); err != nil {
		t.Fatalf("read: %s", err)
	}

	toks, err := lexer.New(cache, "test.asm").Tokenize()
	if err != nil {
		t.Fatalf("tokenize: %s", err)
	}

	return toks
}

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}

	return out
}

func TestTokenizeInstruction(t *testing.T) {
	t.Parallel()

	toks := tokenize(t, "LDA #$10")

	want := []token.Type{token.LDA, token.POUND, token.HEXNUM, token.EOL}
	got := types(toks)

	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeLabelAndComment(t *testing.T) {
	t.Parallel()

	toks := tokenize(t, "LOOP: DEC COUNT ; decrement")

	want := []token.Type{token.SYM, token.COLON, token.DEC, token.SYM, token.COMMENT, token.EOL}
	got := types(toks)

	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
}

func TestTokenizeAnonymousLabels(t *testing.T) {
	t.Parallel()

	toks := tokenize(t, "BNE ++")

	if len(toks) < 2 || toks[1].Type != token.SYM || toks[1].Value != "++" {
		t.Fatalf("expected anonymous label token, got %v", toks)
	}
}

func TestTokenizeDirectiveNotIdentifierPrefix(t *testing.T) {
	t.Parallel()

	// ".DOUBLE" must not be split as the ".DO" loop directive followed by "UBLE".
	toks := tokenize(t, ".DOUBLE 1")

	if toks[0].Type != token.SYM {
		t.Fatalf("expected .DOUBLE to lex as a symbol-like token, got %v", toks[0])
	}
}

func TestTokenizeMacroParam(t *testing.T) {
	t.Parallel()

	toks := tokenize(t, "LDA \\1")

	if toks[1].Type != token.MACRO_PARAM || toks[1].Value != "\\1" {
		t.Fatalf("expected macro param token, got %v", toks[1])
	}
}

func TestTokenizeStringLiteral(t *testing.T) {
	t.Parallel()

	toks := tokenize(t, `.INCLUDE "foo.asm"`)

	if toks[1].Type != token.TEXT || toks[1].Value != "foo.asm" {
		t.Fatalf("expected quoted path token, got %v", toks[1])
	}
}

func TestTokenizeLexicalError(t *testing.T) {
	t.Parallel()

	cache := source.NewCache()

	if _, err := cache.Read("bad.asm", strings.NewReader("LDA `")); err != nil {
		t.Fatalf("read: %s", err)
	}

	_, err := lexer.New(cache, "bad.asm").Tokenize()
	if err == nil {
		t.Fatal("expected a lexical error")
	}
}
