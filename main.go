package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

func init() {
	// Nothing in sysabi writes to the standard logger.
	log.SetOutput(io.Discard)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, unix.SIGTERM)
	code := root(ctx, os.Args[1:]...)
	stop()
	os.Exit(code)
}
