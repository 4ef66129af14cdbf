package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/pbaxter/sixasm/internal/asm"
	"github.com/pbaxter/sixasm/internal/cli"
	"github.com/pbaxter/sixasm/internal/emit"
	"github.com/pbaxter/sixasm/internal/log"
	"github.com/pbaxter/sixasm/internal/source"
)

// Dump is the command that assembles a source file and writes its listing (address, bytes,
// source text) to stdout instead of an object image. It is the sibling of "-li" from spec.md's
// flat flag table, split out the way the teacher splits its subcommands.
//
//	sixasm dump [-65c02] [-il] file.asm
func Dump() cli.Command {
	return new(dump)
}

type dump struct {
	enable65c2 bool
	enableIll  bool
}

func (dump) Description() string {
	return "assemble a file and print its listing"
}

func (dump) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `dump [-65c02] [-il] file.asm

Assemble source and print a listing: address, bytes, and source text per line.`)

	return err
}

func (d *dump) FlagSet() *cli.FlagSet {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	fs.BoolVar(&d.enable65c2, "65c02", false, "enable 65C02-only mnemonics")
	fs.BoolVar(&d.enableIll, "il", false, "enable undocumented/illegal opcodes")

	return fs
}

func (d *dump) Run(ctx context.Context, args []string, stdout io.Writer, logger *log.Logger) int {
	if len(args) == 0 {
		logger.Error("no input files")
		return 1
	}

	cache := source.NewCache()

	opts := asm.Options{Enable65C02: d.enable65c2, EnableIllegal: d.enableIll}
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

	image := emit.Walk(prog, cache)

	if err := emit.WriteListing(stdout, image); err != nil {
		logger.Error("I/O error", "err", err)
		return 1
	}

	return 0
}
