package human

import (
	"encoding"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// Duration is a time.Duration which also parses values spelled out with long
// unit names:
//
//	5s
//	1m30s
//	250 milliseconds
//	2 minutes
//
// A bare "0" is accepted as the zero duration.
type Duration time.Duration

func ParseDuration(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	if s == "0" {
		return 0, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return Duration(d), nil
	}

	i := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	if i <= 0 {
		return 0, fmt.Errorf("malformed duration representation: %q", s)
	}
	n, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, fmt.Errorf("malformed duration representation: %q", s)
	}

	var unit time.Duration
	switch name := strings.TrimSpace(s[i:]); {
	case match(name, "hours"):
		unit = time.Hour
	case match(name, "minutes"):
		unit = time.Minute
	case match(name, "seconds"):
		unit = time.Second
	case match(name, "milliseconds"):
		unit = time.Millisecond
	case match(name, "microseconds"):
		unit = time.Microsecond
	case match(name, "nanoseconds"):
		unit = time.Nanosecond
	default:
		return 0, fmt.Errorf("malformed unit representation: %q", s)
	}
	return Duration(n * float64(unit)), nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d *Duration) Set(s string) error {
	p, err := ParseDuration(s)
	if err != nil {
		return err
	}
	*d = p
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *Duration) UnmarshalYAML(y *yaml.Node) error {
	var s string
	if err := y.Decode(&s); err != nil {
		return err
	}
	return d.Set(s)
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	return d.Set(string(b))
}

var (
	_ fmt.Stringer = Duration(0)

	_ yaml.Marshaler   = Duration(0)
	_ yaml.Unmarshaler = (*Duration)(nil)

	_ encoding.TextMarshaler   = Duration(0)
	_ encoding.TextUnmarshaler = (*Duration)(nil)
	_ flag.Value               = (*Duration)(nil)
)
