// sixasm is a multi-pass assembler for the 6502 and 65C02, including undocumented opcodes.
package main

import (
	"context"
	"os"

	"github.com/pbaxter/sixasm/internal/cli"
	"github.com/pbaxter/sixasm/internal/cli/cmd"
)

var commands = []cli.Command{
	cmd.Assembler(),
	cmd.Dump(),
}

// Entry point.
func main() {
	result :=
		cli.New(context.Background()).
			WithLogger(os.Stderr).
			WithCommands(commands).
			WithHelp(cmd.Help(commands)).
			Execute(os.Args[1:])

	os.Exit(result)
}
