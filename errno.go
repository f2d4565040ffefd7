package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/stealthrocket/sysabi/internal/print/textprint"
	"github.com/stealthrocket/sysabi/internal/stream"
	"github.com/stealthrocket/sysabi/result"
)

const errnoUsage = `
Usage:	sysabi errno [options] [code|name...]

   Look up kernel error codes. A syscall failing with code N returns the raw
   value -N, which sysabi decodes as the error below. Without arguments every
   known code is printed.

Example:

   $ sysabi errno ENOENT 13
   NAME    CODE  DESCRIPTION
   ENOENT  2     no such file or directory
   EACCES  13    permission denied

Options:
   -h, --help           Show this usage information
   -o, --output format  Output format, one of: text, json, yaml
`

// maxErrno is the largest code the kernel reports through a negative result.
const maxErrno = 4095

type errnoEntry struct {
	Name        string `json:"name"        yaml:"name"        text:"NAME"`
	Code        int    `json:"code"        yaml:"code"        text:"CODE"`
	Description string `json:"description" yaml:"description" text:"DESCRIPTION"`
}

func errno(ctx context.Context, args []string) error {
	output := outputFormat("text")
	flagSet := newFlagSet("sysabi errno", errnoUsage)
	customVar(flagSet, &output, "o", "output")

	args, err := parseFlags(flagSet, args)
	if err != nil {
		return err
	}
	if _, err := loadConfig(flagSet, &output); err != nil {
		return err
	}

	var entries []errnoEntry
	if len(args) == 0 {
		for code := 1; code <= maxErrno; code++ {
			if e := newErrnoEntry(result.Errno(code)); e.Name != "" {
				entries = append(entries, e)
			}
		}
	} else {
		for _, arg := range args {
			code, err := lookupErrno(arg)
			if err != nil {
				return err
			}
			entries = append(entries, newErrnoEntry(code))
		}
	}

	w := newWriter(os.Stdout, output, func(w io.Writer) stream.WriteCloser[errnoEntry] {
		return textprint.NewTableWriter[errnoEntry](w)
	})
	return writeAll(w, entries...)
}

func newErrnoEntry(code result.Errno) errnoEntry {
	return errnoEntry{
		Name:        result.Name(code),
		Code:        int(code),
		Description: result.Describe(code),
	}
}

func lookupErrno(arg string) (result.Errno, error) {
	if code, err := strconv.Atoi(arg); err == nil {
		if code < 0 {
			code = -code
		}
		if code == 0 || code > maxErrno {
			return 0, fmt.Errorf("error codes are between 1 and %d: %s", maxErrno, arg)
		}
		return result.Errno(code), nil
	}
	if code, ok := errnoByName()[strings.ToUpper(arg)]; ok {
		return code, nil
	}
	return 0, fmt.Errorf("unknown error name: %q", arg)
}

var errnoByName = sync.OnceValue(func() map[string]result.Errno {
	m := make(map[string]result.Errno)
	for code := 1; code <= maxErrno; code++ {
		if name := result.Name(result.Errno(code)); name != "" {
			m[name] = result.Errno(code)
		}
	}
	return m
})
