package main

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/stealthrocket/sysabi/abi"
)

const versionUsage = `
Usage:	sysabi version [options]

   Print the version of sysabi. With --verbose, the Go toolchain and the
   system call convention the program was built for are printed as well.

Options:
   -h, --help     Show this usage information
   -v, --verbose  Print the toolchain and target details
`

func version(ctx context.Context, args []string) error {
	var verbose bool

	flagSet := newFlagSet("sysabi version", versionUsage)
	boolVar(flagSet, &verbose, "v", "verbose")

	args, err := parseFlags(flagSet, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return usageError("sysabi version: unexpected arguments: %q", args)
	}

	fmt.Printf("sysabi %s\n", currentVersion())
	if verbose {
		native := abi.Native()
		fmt.Printf("go:     %s\n", runtime.Version())
		fmt.Printf("target: %s/%s (%s, %d-bit words)\n", runtime.GOOS, native.Arch, native.Instruction, 8*native.WordSize)
	}
	return nil
}

// currentVersion returns the module version of the binary. Development builds
// report the abbreviated VCS revision when it was stamped, or "devel".
func currentVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "devel"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 12 {
			return "devel-" + s.Value[:12]
		}
	}
	return "devel"
}
