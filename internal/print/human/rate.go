package human

import (
	"encoding"
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// Rate represents a count divided by a unit of time.
//
// The type supports parsing and formatting values like:
//
//	200/s
//	1 / minute
//	0.5/h
//
// Rate values are always stored in their per-second form, and converted
// during parsing. A zero rate means no limit.
type Rate float64

func ParseRate(s string) (Rate, error) {
	text, unit, _ := strings.Cut(s, "/")
	text = strings.TrimSpace(text)
	unit = strings.TrimSpace(unit)

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("malformed rate representation: %q", s)
	}

	var seconds float64
	switch {
	case unit == "", unit == "s", match(unit, "second"):
		seconds = 1
	case unit == "m", match(unit, "minute"):
		seconds = 60
	case unit == "h", match(unit, "hour"):
		seconds = 3600
	default:
		return 0, fmt.Errorf("malformed unit representation: %q", s)
	}
	return Rate(f / seconds), nil
}

func (r Rate) String() string {
	return strconv.FormatFloat(float64(r), 'f', -1, 64) + "/s"
}

// Interval returns the time between two events at rate r, or zero if r is
// not positive.
func (r Rate) Interval() time.Duration {
	if r <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / float64(r))
}

func (r *Rate) Set(s string) error {
	p, err := ParseRate(s)
	if err != nil {
		return err
	}
	*r = p
	return nil
}

func (r Rate) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

func (r *Rate) UnmarshalYAML(y *yaml.Node) error {
	var s string
	if err := y.Decode(&s); err != nil {
		return err
	}
	return r.Set(s)
}

func (r Rate) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rate) UnmarshalText(b []byte) error {
	return r.Set(string(b))
}

var (
	_ fmt.Stringer = Rate(0)

	_ yaml.Marshaler   = Rate(0)
	_ yaml.Unmarshaler = (*Rate)(nil)

	_ encoding.TextMarshaler   = Rate(0)
	_ encoding.TextUnmarshaler = (*Rate)(nil)
	_ flag.Value               = (*Rate)(nil)
)
