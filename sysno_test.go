package main

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/stealthrocket/sysabi/internal/assert"
	"github.com/stealthrocket/sysabi/sysno"
)

var sysnoTests = tests{
	"looking up a syscall by name": func(t *testing.T) {
		stdout, stderr, exitCode := sysabi(t, "sysno", "-o", "json", "getpid")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stderr, "")

		var e syscallEntry
		assert.OK(t, json.Unmarshal([]byte(stdout), &e))
		assert.Equal(t, e, syscallEntry{Name: "getpid", Number: unix.SYS_GETPID})
	},

	"looking up a syscall by number": func(t *testing.T) {
		number := strconv.Itoa(unix.SYS_WRITE)
		stdout, _, exitCode := sysabi(t, "sysno", number, "--output", "json")
		assert.Equal(t, exitCode, 0)

		var e syscallEntry
		assert.OK(t, json.Unmarshal([]byte(stdout), &e))
		assert.Equal(t, e, syscallEntry{Name: "write", Number: unix.SYS_WRITE})
	},

	"names are matched regardless of their case and prefix": func(t *testing.T) {
		stdout, _, exitCode := sysabi(t, "sysno", "SYS_CLOSE")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stdout, "NAME   NUMBER\nclose  "+strconv.Itoa(unix.SYS_CLOSE)+"\n")
	},

	"the table lists every syscall": func(t *testing.T) {
		stdout, _, exitCode := sysabi(t, "sysno")
		assert.Equal(t, exitCode, 0)

		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		assert.Equal(t, len(lines), len(sysno.Names())+1)
		assert.HasPrefix(t, lines[0], "NAME ")
	},

	"an unknown syscall name causes an error": func(t *testing.T) {
		stdout, stderr, exitCode := sysabi(t, "sysno", "nosuchcall")
		assert.Equal(t, exitCode, 1)
		assert.Equal(t, stdout, "")
		assert.Equal(t, stderr, "ERR: sysabi sysno: unknown syscall: \"nosuchcall\"\n")
	},

	"an unknown syscall number causes an error": func(t *testing.T) {
		_, stderr, exitCode := sysabi(t, "sysno", "100000")
		assert.Equal(t, exitCode, 1)
		assert.HasPrefix(t, stderr, "ERR: sysabi sysno: no syscall has number 100000")
	},
}
