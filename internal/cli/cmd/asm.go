package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pbaxter/sixasm/internal/asm"
	"github.com/pbaxter/sixasm/internal/ast"
	"github.com/pbaxter/sixasm/internal/cli"
	"github.com/pbaxter/sixasm/internal/emit"
	"github.com/pbaxter/sixasm/internal/encoding"
	"github.com/pbaxter/sixasm/internal/log"
	"github.com/pbaxter/sixasm/internal/source"
)

// Assembler is the command that translates 6502/65C02 assembly source into an object image.
//
//	sixasm asm [-o a.out] [-65c02] [-il] [-c64] file.asm
func Assembler() cli.Command {
	return new(assembler)
}

type assembler struct {
	verbose    bool
	nowarn     bool
	output     string
	enable65c2 bool
	enableIll  bool
	c64Header  bool
	dumpAST    bool
}

func (assembler) Description() string {
	return "assemble 6502/65C02 source into an object image"
}

func (assembler) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `asm [-o file] [-65c02] [-il] [-c64] [-ast] [-v] [-nowarn] file.asm

Assemble source into a raw byte image, optionally prefixed with a two-byte
little-endian load address (-c64).`)

	return err
}

func (a *assembler) FlagSet() *cli.FlagSet {
	fs := flag.NewFlagSet("asm", flag.ExitOnError)
	fs.BoolVar(&a.verbose, "v", false, "enable verbose/debug logging")
	fs.BoolVar(&a.nowarn, "nowarn", false, "suppress non-fatal diagnostics")
	fs.StringVar(&a.output, "o", "a.out", "output `filename`")
	fs.BoolVar(&a.enable65c2, "65c02", false, "enable 65C02-only mnemonics")
	fs.BoolVar(&a.enableIll, "il", false, "enable undocumented/illegal opcodes")
	fs.BoolVar(&a.c64Header, "c64", false, "prefix output with a two-byte little-endian load address")
	fs.BoolVar(&a.dumpAST, "ast", false, "write the resolved parse tree to stderr")

	return fs
}

// Run assembles the first file named in args, writing the object image to -o. Further file
// arguments are ignored.
func (a *assembler) Run(ctx context.Context, args []string, stdout io.Writer, logger *log.Logger) int {
	if a.verbose {
		log.LogLevel.Set(log.Debug)
	}

	if len(args) == 0 {
		logger.Error("no input files")
		return 1
	}

	cache := source.NewCache()

	opts := asm.Options{Enable65C02: a.enable65c2, EnableIllegal: a.enableIll}
	parser := asm.NewParser(cache, opts, logger)

	if err := parser.Load(args[0]); err != nil {
		logger.Error("read failed", "file", args[0], "err", err)
		return 1
	}

	prog, err := parser.Run(ctx)
	if err != nil {
		logger.Error("assembly failed", "err", err)
		return 1
	}

	if a.dumpAST {
		ast.Walk(prog, func(n *ast.Node) bool {
			logger.Info("node", "rule", n.Rule, "value", n.Value, "num", n.Num, "pc", n.PC)
			return true
		})
	}

	image := emit.Walk(prog, cache)

	out, err := os.Create(a.output)
	if err != nil {
		logger.Error("open failed", "out", a.output, "err", err)
		return 1
	}
	defer out.Close()

	orig := 0
	if len(image.Rows) > 0 {
		orig = image.Rows[0].PC
	}

	obj := encoding.Image{Orig: orig, Code: image.Bytes, Header: a.c64Header}

	bs, err := obj.MarshalBinary()
	if err != nil {
		logger.Error("encode failed", "err", err)
		return 1
	}

	buf := bufio.NewWriter(out)

	if _, err := buf.Write(bs); err != nil {
		logger.Error("I/O error", "out", a.output, "err", err)
		return 1
	}

	if err := buf.Flush(); err != nil {
		logger.Error("I/O error", "out", a.output, "err", err)
		return 1
	}

	logger.Debug("assembled",
		"out", a.output,
		"size", len(bs),
		"symbols", parser.Symbols().Len(),
	)

	return 0
}
