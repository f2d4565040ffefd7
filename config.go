package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/stealthrocket/sysabi/internal/print/human"
)

const configUsage = `
Usage:	sysabi config [options]

Options:
   -c, --config path    Path to the sysabi configuration file (overrides SYSABICONFIG)
       --edit           Open $EDITOR to edit the configuration
   -h, --help           Show usage information
   -o, --output format  Output format, one of: text, json, yaml
`

const defaultConfigPath = "~/.sysabi/config.yaml"

// configPath is the path to the sysabi configuration, set by the -c option of
// every command.
var configPath = func() human.Path {
	if path, ok := os.LookupEnv("SYSABICONFIG"); ok && path != "" {
		return human.Path(path)
	}
	return defaultConfigPath
}()

// Config is the sysabi configuration.
type Config struct {
	Output outputFormat `json:"output" yaml:"output"`
	Probe  ProbeConfig  `json:"probe"  yaml:"probe"`
}

// ProbeConfig holds the defaults of the probe command.
type ProbeConfig struct {
	Family   family         `json:"family"    yaml:"family"`
	HopLimit int            `json:"hop-limit" yaml:"hop-limit"`
	Count    int            `json:"count"     yaml:"count"`
	Payload  string         `json:"payload"   yaml:"payload"`
	Rate     human.Rate     `json:"rate"      yaml:"rate"`
	Timeout  human.Duration `json:"timeout"   yaml:"timeout"`
}

// DefaultConfig is the configuration used when no file exists.
func DefaultConfig() *Config {
	c := new(Config)
	c.Output = "text"
	c.Probe.Family = "inet"
	c.Probe.HopLimit = 1
	c.Probe.Count = 1
	c.Probe.Payload = "sysabi"
	c.Probe.Timeout = human.Duration(5 * time.Second)
	return c
}

// LoadConfig opens and reads the configuration file.
func LoadConfig() (*Config, error) {
	r, _, err := OpenConfig()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return ReadConfig(r)
}

// OpenConfig opens the configuration file. When the file does not exist, the
// returned reader yields the YAML form of the default configuration.
func OpenConfig() (io.ReadCloser, string, error) {
	path, err := configPath.Resolve()
	if err != nil {
		return nil, path, err
	}
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, path, err
		}
		b, _ := yaml.Marshal(DefaultConfig())
		return io.NopCloser(bytes.NewReader(b)), path, nil
	}
	return f, path, nil
}

// ReadConfig reads and parses configuration. Fields missing from r keep their
// default value; unknown fields are errors.
func ReadConfig(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return c, nil
		}
		return nil, err
	}
	if c.Probe.Count < 1 {
		return nil, fmt.Errorf("probe.count must be at least 1, got %d", c.Probe.Count)
	}
	if c.Probe.HopLimit < 1 || c.Probe.HopLimit > 255 {
		return nil, fmt.Errorf("probe.hop-limit must be between 1 and 255, got %d", c.Probe.HopLimit)
	}
	if c.Probe.Timeout <= 0 {
		return nil, fmt.Errorf("probe.timeout must be positive, got %s", c.Probe.Timeout)
	}
	return c, nil
}

func config(ctx context.Context, args []string) error {
	var (
		edit   bool
		output = outputFormat("text")
	)

	flagSet := newFlagSet("sysabi config", configUsage)
	boolVar(flagSet, &edit, "edit")
	customVar(flagSet, &output, "o", "output")

	if _, err := parseFlags(flagSet, args); err != nil {
		return err
	}

	r, path, err := OpenConfig()
	if err != nil {
		return err
	}
	defer r.Close()

	if edit {
		if err := editConfig(path, r); err != nil {
			return err
		}
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	w := io.Writer(os.Stdout)
	switch output {
	case "json":
		e := json.NewEncoder(w)
		e.SetEscapeHTML(false)
		e.SetIndent("", "  ")
		return e.Encode(config)
	case "yaml":
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(config); err != nil {
			return err
		}
		return e.Close()
	default:
		r, _, err := OpenConfig()
		if err != nil {
			return err
		}
		defer r.Close()
		_, err = io.Copy(w, r)
		return err
	}
}

func editConfig(path string, r io.Reader) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		return errors.New(`$EDITOR is not set`)
	}
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		if !errors.Is(err, fs.ErrExist) {
			return err
		}
	}

	tmp, err := createTempFile(path, r)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	p, err := os.StartProcess(shell, []string{shell, "-c", editor + " " + tmp}, &os.ProcAttr{
		Files: []*os.File{
			0: os.Stdin,
			1: os.Stdout,
			2: os.Stderr,
		},
	})
	if err != nil {
		return err
	}
	if _, err := p.Wait(); err != nil {
		return err
	}
	f, err := os.Open(tmp)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := ReadConfig(f); err != nil {
		return fmt.Errorf("not applying configuration updates because the file has a syntax error: %w", err)
	}
	return os.Rename(tmp, path)
}

func createTempFile(path string, r io.Reader) (string, error) {
	dir, file := filepath.Split(path)
	w, err := os.CreateTemp(dir, "."+file+".*")
	if err != nil {
		return "", err
	}
	defer w.Close()
	_, err = io.Copy(w, r)
	return w.Name(), err
}
