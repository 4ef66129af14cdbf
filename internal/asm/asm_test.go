package asm_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pbaxter/sixasm/internal/asm"
	"github.com/pbaxter/sixasm/internal/emit"
	"github.com/pbaxter/sixasm/internal/source"
)

// assemble writes src to a temporary file and runs it through a fresh Parser, returning the
// byte image of the resolved program and the accumulated error.
func assemble(t *testing.T, src string, opts asm.Options) (*emit.Image, error) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.asm")

	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write source: %s", err)
	}

	cache := source.NewCache()
	p := asm.NewParser(cache, opts, nil)

	if err := p.Load(path); err != nil {
		t.Fatalf("Load: %s", err)
	}

	prog, err := p.Run(context.Background())
	if err != nil {
		return nil, err
	}

	return emit.Walk(prog, cache), p.Err()
}

func TestForwardReferenceResolves(t *testing.T) {
	t.Parallel()

	img, err := assemble(t, `
.org $0800
start:
  JMP loop
loop:
  NOP
  JMP loop
`, asm.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := []byte{0x4C, 0x03, 0x08, 0xEA, 0x4C, 0x03, 0x08}
	if string(img.Bytes) != string(want) {
		t.Errorf("got % X, want % X", img.Bytes, want)
	}
}

func TestMacroExpansion(t *testing.T) {
	t.Parallel()

	img, err := assemble(t, `
.org $0800
.macro INCBOTH 2
  INC \1
  INC \2
.endm
INCBOTH $10, $11
`, asm.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := []byte{0xE6, 0x10, 0xE6, 0x11}
	if string(img.Bytes) != string(want) {
		t.Errorf("got % X, want % X", img.Bytes, want)
	}
}

func TestIfElseConditionalAssembly(t *testing.T) {
	t.Parallel()

	img, err := assemble(t, `
.org $0800
FLAG = 0
.if FLAG
  LDA #$01
.else
  LDA #$02
.endif
`, asm.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := []byte{0xA9, 0x02}
	if string(img.Bytes) != string(want) {
		t.Errorf("got % X, want % X", img.Bytes, want)
	}
}

func TestDoWhileUnrolling(t *testing.T) {
	t.Parallel()

	img, err := assemble(t, `
.org $0800
.var I = 0
.do
  NOP
  .var I = I + 1
.while I < 3
`, asm.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := []byte{0xEA, 0xEA, 0xEA}
	if string(img.Bytes) != string(want) {
		t.Errorf("got % X, want % X", img.Bytes, want)
	}
}

func TestIllegalOpcodeRejectedWithoutFlag(t *testing.T) {
	t.Parallel()

	_, err := assemble(t, ".org $0800\nSLO $10\n", asm.Options{})

	var unk *asm.UnknownOpcodeError
	if !errors.As(err, &unk) {
		t.Fatalf("expected *asm.UnknownOpcodeError, got %v", err)
	}
}

func TestIllegalOpcodeAcceptedWithFlag(t *testing.T) {
	t.Parallel()

	img, err := assemble(t, ".org $0800\nSLO $10\n", asm.Options{EnableIllegal: true})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := []byte{0x07, 0x10}
	if string(img.Bytes) != string(want) {
		t.Errorf("got % X, want % X", img.Bytes, want)
	}
}

func Test65C02OnlyRejectedWithoutFlag(t *testing.T) {
	t.Parallel()

	_, err := assemble(t, ".org $0800\nSTZ $10\n", asm.Options{})

	var unk *asm.UnknownOpcodeError
	if !errors.As(err, &unk) {
		t.Fatalf("expected *asm.UnknownOpcodeError, got %v", err)
	}
}

func TestUnresolvedSymbolReported(t *testing.T) {
	t.Parallel()

	_, err := assemble(t, ".org $0800\nJMP nowhere\n", asm.Options{})

	var unresolved *asm.UnresolvedSymbolError
	if !errors.As(err, &unresolved) {
		t.Fatalf("expected *asm.UnresolvedSymbolError, got %v", err)
	}
}

func TestDuplicateDefinitionRejected(t *testing.T) {
	t.Parallel()

	_, err := assemble(t, `
.org $0800
FOO = 1
FOO = 2
`, asm.Options{})

	var dup *asm.DuplicateDefinitionError
	if !errors.As(err, &dup) {
		t.Fatalf("expected *asm.DuplicateDefinitionError, got %v", err)
	}
}
