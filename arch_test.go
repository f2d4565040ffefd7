package main

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/stealthrocket/sysabi/abi"
	"github.com/stealthrocket/sysabi/internal/assert"
)

var archTests = tests{
	"the json output matches the native calling convention": func(t *testing.T) {
		stdout, stderr, exitCode := sysabi(t, "arch", "-o", "json")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stderr, "")

		var c abi.Convention
		assert.OK(t, json.Unmarshal([]byte(stdout), &c))
		assert.DeepEqual(t, c, abi.Native())
	},

	"the text output is a table for the build architecture": func(t *testing.T) {
		stdout, stderr, exitCode := sysabi(t, "arch")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stderr, "")

		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		assert.Equal(t, len(lines), 2)
		assert.HasPrefix(t, lines[0], "ARCH")
		assert.HasPrefix(t, lines[1], runtime.GOARCH+" ")
	},

	"the output format is read from the configuration": func(t *testing.T) {
		withConfig(t, "output: yaml\n")
		stdout, _, exitCode := sysabi(t, "arch")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "arch: "+runtime.GOARCH+"\n")
	},

	"passing arguments causes an error": func(t *testing.T) {
		_, _, exitCode := sysabi(t, "arch", "amd64")
		assert.Equal(t, exitCode, 2)
	},

	"passing an unsupported output format causes an error": func(t *testing.T) {
		_, stderr, exitCode := sysabi(t, "arch", "-o", "xml")
		assert.Equal(t, exitCode, 2)
		assert.HasPrefix(t, stderr, "sysabi arch: invalid value \"xml\" for flag -o")
	},
}
