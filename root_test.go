package main

import (
	"testing"

	"github.com/stealthrocket/sysabi/internal/assert"
)

var rootTests = tests{
	"invoking sysabi without a command prints the introduction message": func(t *testing.T) {
		stdout, stderr, exitCode := sysabi(t)
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "sysabi - Linux system calls without libc\n")
		assert.Equal(t, stderr, "")
	},

	"show the sysabi help with the short option": func(t *testing.T) {
		stdout, stderr, exitCode := sysabi(t, "-h")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\tsysabi <command> ")
		assert.Equal(t, stderr, "")
	},

	"show the sysabi help with the long option": func(t *testing.T) {
		stdout, stderr, exitCode := sysabi(t, "--help")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\tsysabi <command> ")
		assert.Equal(t, stderr, "")
	},

	"passing an unsupported flag before the command causes an error": func(t *testing.T) {
		_, stderr, exitCode := sysabi(t, "-_", "version")
		assert.Equal(t, exitCode, 2)
		assert.HasPrefix(t, stderr, "sysabi: flag provided but not defined: -_")
	},
}
