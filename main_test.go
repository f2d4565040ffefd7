package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/stealthrocket/sysabi/internal/print/human"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "sysabi-test-*")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	// Commands must not pick up the configuration of the user running the
	// tests; the file does not exist so the defaults apply.
	configPath = human.Path(filepath.Join(dir, "config.yaml"))
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestSysabi(t *testing.T) {
	t.Run("arch", archTests.run)
	t.Run("config", configTests.run)
	t.Run("errno", errnoTests.run)
	t.Run("help", helpTests.run)
	t.Run("probe", probeTests.run)
	t.Run("root", rootTests.run)
	t.Run("sockaddr", sockaddrTests.run)
	t.Run("sysno", sysnoTests.run)
	t.Run("unknown", unknownTests.run)
	t.Run("version", versionTests.run)
}

type tests map[string]func(*testing.T)

func (suite tests) run(t *testing.T) {
	names := maps.Keys(suite)
	slices.Sort(names)

	for _, name := range names {
		test := suite[name]
		t.Run(name, test)
	}
}

// sysabi runs the program with args, capturing what it writes to the standard
// output and error.
func sysabi(t *testing.T, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	outC := readAll(outR)
	errC := readAll(errR)

	func() {
		savedOut, savedErr := os.Stdout, os.Stderr
		os.Stdout, os.Stderr = outW, errW
		defer func() {
			os.Stdout, os.Stderr = savedOut, savedErr
			outW.Close()
			errW.Close()
		}()
		exitCode = root(context.Background(), args...)
	}()

	return <-outC, <-errC, exitCode
}

func readAll(r *os.File) <-chan string {
	c := make(chan string, 1)
	go func() {
		defer r.Close()
		b := new(bytes.Buffer)
		_, _ = io.Copy(b, r)
		c <- b.String()
	}()
	return c
}

// withConfig points the program at a configuration file holding content for
// the duration of the test.
func withConfig(t *testing.T, content string) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal("writing sysabi configuration:", err)
	}
	saved := configPath
	configPath = human.Path(path)
	t.Cleanup(func() { configPath = saved })
}

func PASS(rc int) {
	if rc != 0 {
		fmt.Printf("exit: %d\n", rc)
	}
}

func FAIL(rc int) {
	if rc != 1 {
		fmt.Printf("exit: %d\n", rc)
	}
}

func USAGE(rc int) {
	if rc != 2 {
		fmt.Printf("exit: %d\n", rc)
	}
}
