package main

import (
	"context"
)

const unknownCommand = `sysabi %s: unknown command
For a list of commands available, run 'sysabi help'.`

func unknown(ctx context.Context, cmd string) error {
	return usageError(unknownCommand, cmd)
}
