package main

import (
	"context"
	"fmt"
	"strings"
)

const helpUsage = `
Usage:	sysabi <command> [options]

Inspection Commands:
   arch      Show the syscall calling convention of this architecture
   errno     Look up kernel error codes by number or name
   sockaddr  Encode or decode socket addresses in their kernel layout
   sysno     Show the syscall numbers of this architecture

Scenario Commands:
   probe     Exchange datagrams carrying a hop limit between socket pairs

Other Commands:
   config   Show or edit the sysabi configuration
   help     Show usage information about sysabi commands
   version  Show the sysabi version information

Global Options:
   -c, --config  Path to the sysabi configuration file (overrides SYSABICONFIG)

For a description of each command, run 'sysabi help <command>'.`

func help(ctx context.Context, args []string) error {
	flagSet := newFlagSet("sysabi help", helpUsage)
	args, err := parseFlags(flagSet, args)
	if err != nil {
		return err
	}

	var cmd string
	var msg string

	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "arch":
		msg = archUsage
	case "config":
		msg = configUsage
	case "errno":
		msg = errnoUsage
	case "help", "":
		msg = helpUsage
	case "probe":
		msg = probeUsage
	case "sockaddr":
		msg = sockaddrUsage
	case "sysno":
		msg = sysnoUsage
	case "version":
		msg = versionUsage
	default:
		return usageError("sysabi help %s: unknown command", cmd)
	}

	fmt.Println(strings.TrimSpace(msg))
	return nil
}
