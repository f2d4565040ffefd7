package human

import (
	"encoding"
	"flag"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// Path represents a path on the file system.
//
// The type interprets the special prefix "~/" as representing the home
// directory of the user that the program is running as. The prefix is kept
// in the value and only expanded by Resolve, so configuration files can be
// printed back the way they were written.
type Path string

func (p Path) String() string {
	return string(p)
}

// Resolve returns the path with the "~/" prefix expanded.
func (p Path) Resolve() (string, error) {
	s := string(p)
	if s != "~" && !strings.HasPrefix(s, "~"+string(os.PathSeparator)) {
		return s, nil
	}
	home, ok := os.LookupEnv("HOME")
	if !ok {
		u, err := user.Current()
		if err != nil {
			return "", err
		}
		home = u.HomeDir
	}
	return filepath.Join(home, strings.TrimPrefix(s[1:], string(os.PathSeparator))), nil
}

func (p *Path) Set(s string) error {
	*p = Path(s)
	return nil
}

func (p Path) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

func (p *Path) UnmarshalText(b []byte) error {
	return p.Set(string(b))
}

var (
	_ encoding.TextMarshaler   = Path("")
	_ encoding.TextUnmarshaler = (*Path)(nil)
	_ flag.Value               = (*Path)(nil)
)
