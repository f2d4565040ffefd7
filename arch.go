package main

import (
	"context"
	"io"
	"os"

	"github.com/stealthrocket/sysabi/abi"
	"github.com/stealthrocket/sysabi/internal/stream"
)

const archUsage = `
Usage:	sysabi arch [options]

   Show how this build of sysabi traps into the kernel: the instruction, the
   register carrying the syscall number, the argument and result registers,
   and the registers clobbered by the kernel.

Options:
   -h, --help           Show this usage information
   -o, --output format  Output format, one of: text, json, yaml
`

type archRow struct {
	Arch        string   `text:"ARCH"`
	Instruction string   `text:"INSTRUCTION"`
	Number      string   `text:"NUMBER"`
	Args        []string `text:"ARGS"`
	Return      string   `text:"RETURN"`
	Clobbers    []string `text:"CLOBBERS"`
	WordSize    int      `text:"WORD SIZE"`
}

func arch(ctx context.Context, args []string) error {
	output := outputFormat("text")
	flagSet := newFlagSet("sysabi arch", archUsage)
	customVar(flagSet, &output, "o", "output")

	args, err := parseFlags(flagSet, args)
	if err != nil {
		return err
	}
	if _, err := loadConfig(flagSet, &output); err != nil {
		return err
	}
	if len(args) != 0 {
		return usageError("sysabi arch: unexpected arguments: %q", args)
	}

	w := newWriter(os.Stdout, output, func(w io.Writer) stream.WriteCloser[abi.Convention] {
		return newTableWriter(w, func(c abi.Convention) (archRow, error) {
			return archRow{
				Arch:        c.Arch,
				Instruction: c.Instruction,
				Number:      c.Number,
				Args:        c.Args,
				Return:      c.Return,
				Clobbers:    c.Clobbers,
				WordSize:    c.WordSize,
			}, nil
		})
	})
	return writeAll(w, abi.Native())
}
