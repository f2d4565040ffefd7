package main

// Notes on program structure
// --------------------------
//
// sysabi uses subcommands to invoke specific functionalities of the program.
// Each subcommand is implemented by a function named after the command, in a
// file of the same name (e.g. the "help" command is implemented by the help
// function in help.go). Commands sharing their name with a package of the
// module carry the "Command" suffix (e.g. sysnoCommand in sysno.go).
//
// The usage message for each command is declared by a constant starting with
// the command name and followed by the suffix "Usage". For example, the usage
// message for the "help" command is declared by the constant helpUsage.
//
// The usage message contains a "Usage:	sysabi <command>" section presenting
// the structure of the command. Note the tabulation separating "Usage:" and
// "sysabi".

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/stealthrocket/sysabi/internal/print/jsonprint"
	"github.com/stealthrocket/sysabi/internal/print/textprint"
	"github.com/stealthrocket/sysabi/internal/print/yamlprint"
	"github.com/stealthrocket/sysabi/internal/stream"
	"github.com/stealthrocket/sysabi/sys"
)

const rootUsage = `sysabi - Linux system calls without libc

   sysabi traps into the kernel directly from Go, using the syscall numbers and
   register conventions of the architecture it was compiled for. The commands
   expose the tables and codecs of the library, and run live scenarios through
   the same code paths.

Example:

   $ sysabi sysno openat
   NAME    NUMBER
   openat  257

   $ sysabi probe --family inet6 --hop-limit 7
   ...

For a list of commands available, run 'sysabi help'.`

// root is the sysabi entrypoint.
func root(ctx context.Context, args ...string) int {
	flagSet := newFlagSet("sysabi", helpUsage)
	if err := flagSet.Parse(args); err != nil {
		return exitStatus("", flagError(flagSet, err))
	}

	if args = flagSet.Args(); len(args) == 0 {
		fmt.Println(rootUsage)
		return 0
	}

	cmd, args := args[0], args[1:]

	var err error
	switch cmd {
	case "arch":
		err = arch(ctx, args)
	case "config":
		err = config(ctx, args)
	case "errno":
		err = errno(ctx, args)
	case "help":
		err = help(ctx, args)
	case "probe":
		err = probe(ctx, args)
	case "sockaddr":
		err = sockaddrCommand(ctx, args)
	case "sysno":
		err = sysnoCommand(ctx, args)
	case "version":
		err = version(ctx, args)
	default:
		err = unknown(ctx, cmd)
	}
	return exitStatus(cmd, err)
}

func exitStatus(cmd string, err error) int {
	switch e := err.(type) {
	case nil:
		return 0
	case exitCode:
		return int(e)
	case usage:
		fmt.Fprintf(os.Stderr, "%s\n", e)
		return 2
	default:
		fmt.Fprintf(os.Stderr, "ERR: %s: %s\n", strings.TrimSpace("sysabi "+cmd), err)
		return 1
	}
}

// exitCode is an error type returned from command functions to indicate the
// exit code that should be returned by the program.
type exitCode int

func (e exitCode) Error() string {
	return fmt.Sprintf("exit: %d", e)
}

// usage is an error type returned from command functions to indicate a usage
// error.
//
// Usage errors cause the program to exit with status code 2.
type usage string

func usageError(msg string, args ...any) error {
	return usage(fmt.Sprintf(msg, args...))
}

func (e usage) Error() string {
	return string(e)
}

func setEnum[T ~string](enum *T, typ string, value string, options ...string) error {
	for _, option := range options {
		if option == value {
			*enum = T(option)
			return nil
		}
	}
	return fmt.Errorf("unsupported %s: %q (not one of %s)", typ, value, strings.Join(options, ", "))
}

type outputFormat string

func (o outputFormat) String() string {
	return string(o)
}

func (o *outputFormat) Set(value string) error {
	return setEnum(o, "output format", value, "text", "json", "yaml")
}

func (o *outputFormat) UnmarshalText(b []byte) error {
	return o.Set(string(b))
}

type family string

func (f family) String() string {
	return string(f)
}

func (f *family) Set(value string) error {
	return setEnum(f, "address family", value, "inet", "inet6")
}

func (f *family) UnmarshalText(b []byte) error {
	return f.Set(string(b))
}

// newWriter returns the printer for values of type T selected by the output
// format. The text printer is only constructed when no other format applies.
func newWriter[T any](w io.Writer, output outputFormat, text func(io.Writer) stream.WriteCloser[T]) stream.WriteCloser[T] {
	switch output {
	case "json":
		return jsonprint.NewWriter[T](w)
	case "yaml":
		return yamlprint.NewWriter[T](w)
	default:
		return text(w)
	}
}

// newTableWriter returns a text printer of T2 values presented as rows of T1.
func newTableWriter[T1, T2 any](w io.Writer, conv func(T2) (T1, error)) stream.WriteCloser[T2] {
	tw := textprint.NewTableWriter[T1](w)
	cw := stream.ConvertWriter[T1](tw, conv)
	return stream.NewWriteCloser(cw, tw)
}

// writeAll prints values to w and closes it.
func writeAll[T any](w stream.WriteCloser[T], values ...T) error {
	return copyAndClose[T](w, stream.NewReader(values...))
}

func copyAndClose[T any](w stream.WriteCloser[T], r stream.Reader[T]) error {
	if _, err := stream.Copy[T](w, r); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// loadConfig loads the configuration after the flags of f were parsed, so the
// -c option is honored. When the -o option was not passed, output is set to
// the format of the configuration.
func loadConfig(f *flag.FlagSet, output *outputFormat) (*Config, error) {
	c, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	if output != nil && !isSet(f, "o", "output") {
		*output = c.Output
	}
	return c, nil
}

// isSet reports whether any of the named flags was passed on the command line.
func isSet(f *flag.FlagSet, names ...string) (set bool) {
	f.Visit(func(fl *flag.Flag) {
		if slices.Contains(names, fl.Name) {
			set = true
		}
	})
	return set
}

func newFlagSet(cmd, usage string) *flag.FlagSet {
	usage = strings.TrimSpace(usage)
	flagSet := flag.NewFlagSet(cmd, flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() { fmt.Println(usage) }
	customVar(flagSet, &configPath, "c", "config")
	return flagSet
}

// parseFlags is a greedy parser which consumes all options known to f and
// returns the remaining arguments.
//
// Requesting help prints the usage message and returns exitCode(0); other
// parsing errors are returned as usage errors.
func parseFlags(f *flag.FlagSet, args []string) ([]string, error) {
	var unknownArgs []string
	for {
		if err := f.Parse(args); err != nil {
			return nil, flagError(f, err)
		}
		parsed := args[:len(args)-f.NArg()]
		if args = f.Args(); len(args) == 0 {
			return unknownArgs, nil
		}
		if n := len(parsed); n > 0 && parsed[n-1] == "--" {
			return append(unknownArgs, args...), nil
		}
		i := slices.IndexFunc(args, func(s string) bool {
			return strings.HasPrefix(s, "-")
		})
		if i < 0 {
			i = len(args)
		} else if args[i] == "-" {
			i++
		}
		if i == 0 {
			return nil, usageError("%s: cannot parse argument %q", f.Name(), args[0])
		}
		unknownArgs = append(unknownArgs, args[:i]...)
		args = args[i:]
	}
}

func flagError(f *flag.FlagSet, err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return exitCode(0)
	}
	return usageError("%s: %s", f.Name(), err)
}

func boolVar(f *flag.FlagSet, dst *bool, name string, alias ...string) {
	f.BoolVar(dst, name, *dst, "")
	for _, name := range alias {
		f.BoolVar(dst, name, *dst, "")
	}
}

func intVar(f *flag.FlagSet, dst *int, name string, alias ...string) {
	f.IntVar(dst, name, *dst, "")
	for _, name := range alias {
		f.IntVar(dst, name, *dst, "")
	}
}

func stringVar(f *flag.FlagSet, dst *string, name string, alias ...string) {
	f.StringVar(dst, name, *dst, "")
	for _, name := range alias {
		f.StringVar(dst, name, *dst, "")
	}
}

func customVar(f *flag.FlagSet, dst flag.Value, name string, alias ...string) {
	f.Var(dst, name, "")
	for _, name := range alias {
		f.Var(dst, name, "")
	}
}

// closeTraceError closes a descriptor opened by a command. Failing to close is
// a bug in the command, so the error is reported with the stack of the caller.
func closeTraceError(fd int) {
	if err := sys.Close(fd); err != nil {
		fmt.Fprintf(os.Stderr, "WARN: close(%d): %s\n", fd, err)
		debug.PrintStack()
	}
}
