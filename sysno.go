package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/stealthrocket/sysabi/internal/print/textprint"
	"github.com/stealthrocket/sysabi/internal/stream"
	"github.com/stealthrocket/sysabi/sysno"
)

const sysnoUsage = `
Usage:	sysabi sysno [options] [name|number...]

   Show the syscall numbers of the architecture sysabi was built for. Without
   arguments the whole table is printed, ordered by number. Syscalls that do
   not exist on this architecture are reported as errors.

Example:

   $ sysabi sysno openat getpid
   NAME    NUMBER
   openat  257
   getpid  39

Options:
   -h, --help           Show this usage information
   -o, --output format  Output format, one of: text, json, yaml
`

type syscallEntry struct {
	Name   string  `json:"name"   yaml:"name"   text:"NAME"`
	Number uintptr `json:"number" yaml:"number" text:"NUMBER"`
}

func sysnoCommand(ctx context.Context, args []string) error {
	output := outputFormat("text")
	flagSet := newFlagSet("sysabi sysno", sysnoUsage)
	customVar(flagSet, &output, "o", "output")

	args, err := parseFlags(flagSet, args)
	if err != nil {
		return err
	}
	if _, err := loadConfig(flagSet, &output); err != nil {
		return err
	}

	var entries []syscallEntry
	var orderBy func(a, b syscallEntry) bool

	if len(args) == 0 {
		for _, name := range sysno.Names() {
			n, _ := sysno.Lookup(name)
			entries = append(entries, syscallEntry{Name: name, Number: uintptr(n)})
		}
		orderBy = func(a, b syscallEntry) bool { return a.Number < b.Number }
	} else {
		for _, arg := range args {
			e, err := lookupSyscall(arg)
			if err != nil {
				return err
			}
			entries = append(entries, e)
		}
	}

	w := newWriter(os.Stdout, output, func(w io.Writer) stream.WriteCloser[syscallEntry] {
		var opts []textprint.TableOption[syscallEntry]
		if orderBy != nil {
			opts = append(opts, textprint.OrderBy(orderBy))
		}
		return textprint.NewTableWriter[syscallEntry](w, opts...)
	})
	return writeAll(w, entries...)
}

func lookupSyscall(arg string) (syscallEntry, error) {
	if u, err := strconv.ParseUint(arg, 10, 64); err == nil {
		n := sysno.Number(u)
		name := n.String()
		if _, ok := sysno.Lookup(name); !ok {
			return syscallEntry{}, fmt.Errorf("no syscall has number %d on this architecture", u)
		}
		return syscallEntry{Name: name, Number: uintptr(n)}, nil
	}
	name := strings.ToLower(strings.TrimPrefix(strings.ToUpper(arg), "SYS_"))
	n, ok := sysno.Lookup(name)
	if !ok {
		return syscallEntry{}, fmt.Errorf("unknown syscall: %q", arg)
	}
	return syscallEntry{Name: name, Number: uintptr(n)}, nil
}
