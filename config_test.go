package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stealthrocket/sysabi/internal/assert"
	"github.com/stealthrocket/sysabi/internal/print/human"
)

var configTests = tests{
	"the default configuration is shown when the file does not exist": func(t *testing.T) {
		stdout, stderr, exitCode := sysabi(t, "config")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stderr, "")

		c, err := ReadConfig(strings.NewReader(stdout))
		assert.OK(t, err)
		assert.DeepEqual(t, c, DefaultConfig())
	},

	"the configuration can be shown as json": func(t *testing.T) {
		withConfig(t, "probe:\n  family: inet6\n  rate: 10/s\n  timeout: 250 milliseconds\n")
		stdout, _, exitCode := sysabi(t, "config", "-o", "json")
		assert.Equal(t, exitCode, 0)

		want := DefaultConfig()
		want.Probe.Family = "inet6"
		want.Probe.Rate = 10
		want.Probe.Timeout = human.Duration(250 * time.Millisecond)

		got := new(Config)
		assert.OK(t, json.Unmarshal([]byte(stdout), got))
		assert.DeepEqual(t, got, want)
	},

	"the text output is the content of the file": func(t *testing.T) {
		const content = "# comments are preserved\noutput: yaml\n"
		withConfig(t, content)
		stdout, _, exitCode := sysabi(t, "config")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stdout, content)
	},

	"the configuration path can be passed as an option": func(t *testing.T) {
		saved := configPath
		t.Cleanup(func() { configPath = saved })

		path := filepath.Join(t.TempDir(), "sysabi.yaml")
		assert.OK(t, os.WriteFile(path, []byte("probe:\n  count: 4\n"), 0666))

		stdout, _, exitCode := sysabi(t, "config", "-c", path, "-o", "json")
		assert.Equal(t, exitCode, 0)

		got := new(Config)
		assert.OK(t, json.Unmarshal([]byte(stdout), got))
		assert.Equal(t, got.Probe.Count, 4)
	},

	"unknown fields cause an error": func(t *testing.T) {
		withConfig(t, "probe:\n  hops: 3\n")
		_, stderr, exitCode := sysabi(t, "config")
		assert.Equal(t, exitCode, 1)
		assert.HasPrefix(t, stderr, "ERR: sysabi config: ")
	},

	"invalid values cause an error": func(t *testing.T) {
		for _, content := range []string{
			"output: xml\n",
			"probe:\n  family: unix\n",
			"probe:\n  hop-limit: 0\n",
			"probe:\n  count: 0\n",
			"probe:\n  rate: fast\n",
			"probe:\n  timeout: 0\n",
			"probe:\n  timeout: later\n",
		} {
			withConfig(t, content)
			_, stderr, exitCode := sysabi(t, "config")
			assert.Equal(t, exitCode, 1)
			assert.HasPrefix(t, stderr, "ERR: sysabi config: ")
		}
	},

	"invalid configurations are reported by other commands": func(t *testing.T) {
		withConfig(t, "output: xml\n")
		_, stderr, exitCode := sysabi(t, "errno", "1")
		assert.Equal(t, exitCode, 1)
		assert.HasPrefix(t, stderr, "ERR: sysabi errno: ")
	},

	"editing the configuration applies the changes": func(t *testing.T) {
		withConfig(t, "probe:\n  count: 1\n")
		t.Setenv("SHELL", "/bin/sh")
		t.Setenv("EDITOR", "sed -i 's/count: 1/count: 3/'")

		stdout, stderr, exitCode := sysabi(t, "config", "--edit")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stderr, "")
		assert.Equal(t, stdout, "probe:\n  count: 3\n")

		c, err := LoadConfig()
		assert.OK(t, err)
		assert.Equal(t, c.Probe.Count, 3)
	},

	"editing requires an editor": func(t *testing.T) {
		withConfig(t, "")
		t.Setenv("EDITOR", "")
		_, stderr, exitCode := sysabi(t, "config", "--edit")
		assert.Equal(t, exitCode, 1)
		assert.Equal(t, stderr, "ERR: sysabi config: $EDITOR is not set\n")
	},
}
