// Package emit walks a resolved program tree into a byte image and a human-readable listing,
// following spec.md's depth-first emission algorithm: each instruction or data-directive node
// already carries its final encoded bytes (set during parsing once the resolver has converged),
// so emission is a straight concatenation in source order rather than a second resolution pass.
package emit

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/pbaxter/sixasm/internal/ast"
	"github.com/pbaxter/sixasm/internal/source"
)

// Row is one line of the assembly listing: the address it starts at and the source line it came
// from. A Row does not hold its bytes; those are in Image.Bytes. A line producing more than three
// bytes wraps onto additional Rows
// sharing the same Pos but an empty Text, matching spec.md's listing-wrap rule.
type Row struct {
	PC   int
	Text string
	Pos  source.Pos
}

// maxBytesPerRow is the width of the listing's hex column before a line wraps onto a synthetic row.
const maxBytesPerRow = 3

// Image is the result of a successful emission: the linked byte image and its listing rows.
type Image struct {
	Bytes []byte
	Rows  []Row
}

// Walk performs the depth-first emission over prog (a RuleProg node whose children are RuleLine
// nodes), producing the final byte image and listing.
func Walk(prog *ast.Node, cache *source.Cache) *Image {
	img := &Image{}

	for _, lineArg := range prog.Children {
		line := lineArg.Node
		if line == nil {
			continue
		}

		walkLine(line, cache, img)
	}

	return img
}

// walkLine emits one line's bytes and listing row(s), recursing into a RuleMacroCall statement's
// nested RuleLine children. Those children were parsed from the macro's expanded body and carry
// their own PCs, distinct from the line the call itself appears on, so they get their own rows
// rather than being flattened into the call's line.
func walkLine(line *ast.Node, cache *source.Cache, img *Image) {
	var bytes []byte

	flush := func() {
		if len(bytes) == 0 {
			return
		}

		img.Bytes = append(img.Bytes, bytes...)
		img.Rows = append(img.Rows, rowsFor(line, bytes, cache)...)
		bytes = nil
	}

	for _, stmtArg := range line.Children {
		stmt := stmtArg.Node
		if stmt == nil {
			continue
		}

		if stmt.Rule == ast.RuleMacroCall {
			flush()

			for _, childArg := range stmt.Children {
				if child := childArg.Node; child != nil {
					walkLine(child, cache, img)
				}
			}

			continue
		}

		if len(stmt.Bytes) == 0 {
			continue
		}

		bytes = append(bytes, stmt.Bytes...)
	}

	flush()
}

// rowsFor splits a line's bytes into one or more listing rows of at most maxBytesPerRow bytes
// each; only the first row carries the source text.
func rowsFor(line *ast.Node, bytes []byte, cache *source.Cache) []Row {
	var rows []Row

	text := sourceText(line.Pos, cache)

	for i := 0; i < len(bytes); i += maxBytesPerRow {
		row := Row{PC: line.PC + i, Pos: line.Pos}

		if i == 0 {
			row.Text = text
		}

		rows = append(rows, row)
	}

	return rows
}

func sourceText(pos source.Pos, cache *source.Cache) string {
	for _, l := range cache.Lines(pos.File) {
		if l.Pos.Line == pos.Line {
			return l.Text
		}
	}

	return ""
}

// WriteListing renders rows alongside image bytes as "ADDR  HEX...  SOURCE" lines. When w is a
// terminal (golang.org/x/term), the address column is highlighted; piped or file output gets the
// plain form.
func WriteListing(w io.Writer, img *Image) error {
	highlight := false

	if f, ok := w.(*os.File); ok {
		highlight = term.IsTerminal(int(f.Fd()))
	}

	offset := 0

	for _, row := range img.Rows {
		n := maxBytesPerRow
		if offset+n > len(img.Bytes) {
			n = len(img.Bytes) - offset
		}

		chunk := img.Bytes[offset : offset+n]
		offset += n

		hex := ""
		for _, b := range chunk {
			hex += fmt.Sprintf("%02X ", b)
		}

		addr := fmt.Sprintf("%04X", row.PC)
		if highlight {
			addr = "\x1b[1;36m" + addr + "\x1b[0m"
		}

		if _, err := fmt.Fprintf(w, "%s  %-9s%s\n", addr, hex, row.Text); err != nil {
			return err
		}
	}

	return nil
}
