package emit_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pbaxter/sixasm/internal/ast"
	"github.com/pbaxter/sixasm/internal/emit"
	"github.com/pbaxter/sixasm/internal/source"
)

// line builds a RuleLine node with a single instruction child carrying the given bytes.
func line(pc int, pos source.Pos, code ...byte) *ast.Node {
	instr := &ast.Node{Rule: ast.RuleOpInstruction, Pos: pos, PC: pc, Bytes: code}
	ln := ast.New(ast.RuleLine, pos, ast.NodeArg(instr))
	ln.PC = pc

	return ln
}

func TestWalkConcatenatesBytesInOrder(t *testing.T) {
	t.Parallel()

	cache := source.NewCache()
	if _, err := cache.Read("a.asm", strings.NewReader("LDA #$01\nSTA $10\n")); err != nil {
		t.Fatalf("read: %s", err)
	}

	prog := ast.New(ast.RuleProg, source.Pos{},
		ast.NodeArg(line(0x0800, source.Pos{File: "a.asm", Line: 1}, 0xA9, 0x01)),
		ast.NodeArg(line(0x0802, source.Pos{File: "a.asm", Line: 2}, 0x85, 0x10)),
	)

	img := emit.Walk(prog, cache)

	want := []byte{0xA9, 0x01, 0x85, 0x10}
	if !bytes.Equal(img.Bytes, want) {
		t.Fatalf("got %v, want %v", img.Bytes, want)
	}

	if len(img.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(img.Rows))
	}

	if img.Rows[0].Text != "LDA #$01" {
		t.Errorf("first row text = %q, want %q", img.Rows[0].Text, "LDA #$01")
	}
}

func TestWalkSkipsEmptyLines(t *testing.T) {
	t.Parallel()

	cache := source.NewCache()
	if _, err := cache.Read("a.asm", strings.NewReader("; just a comment\n")); err != nil {
		t.Fatalf("read: %s", err)
	}

	empty := ast.New(ast.RuleLine, source.Pos{File: "a.asm", Line: 1})

	prog := ast.New(ast.RuleProg, source.Pos{}, ast.NodeArg(empty))

	img := emit.Walk(prog, cache)

	if len(img.Bytes) != 0 || len(img.Rows) != 0 {
		t.Errorf("comment-only line should produce no bytes or rows, got %v, %v", img.Bytes, img.Rows)
	}
}

func TestWalkWrapsLongLinesOntoSyntheticRows(t *testing.T) {
	t.Parallel()

	cache := source.NewCache()
	if _, err := cache.Read("a.asm", strings.NewReader(".byte 1,2,3,4,5\n")); err != nil {
		t.Fatalf("read: %s", err)
	}

	prog := ast.New(ast.RuleProg, source.Pos{},
		ast.NodeArg(line(0x0800, source.Pos{File: "a.asm", Line: 1}, 1, 2, 3, 4, 5)),
	)

	img := emit.Walk(prog, cache)

	if len(img.Rows) != 2 {
		t.Fatalf("5 bytes at width 3 should wrap onto 2 rows, got %d", len(img.Rows))
	}

	if img.Rows[0].Text == "" || img.Rows[1].Text != "" {
		t.Error("only the first row of a wrapped line should carry source text")
	}

	if img.Rows[1].PC != 0x0803 {
		t.Errorf("second row PC = %#x, want 0x0803", img.Rows[1].PC)
	}
}

func TestWriteListingFormatsAddressAndHex(t *testing.T) {
	t.Parallel()

	img := &emit.Image{
		Bytes: []byte{0xA9, 0x01},
		Rows:  []emit.Row{{PC: 0x0800, Text: "LDA #$01"}},
	}

	var buf bytes.Buffer
	if err := emit.WriteListing(&buf, img); err != nil {
		t.Fatalf("WriteListing: %s", err)
	}

	got := buf.String()
	if !strings.Contains(got, "0800") || !strings.Contains(got, "A9 01") || !strings.Contains(got, "LDA #$01") {
		t.Errorf("listing output missing expected fields: %q", got)
	}
}
