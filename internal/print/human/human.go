// Package human provides types that parse and format human-friendly
// representations of CLI and configuration values.
package human

import "strings"

func match(unit, name string) bool {
	if unit == "" {
		return false
	}
	return strings.HasPrefix(name, unit) || unit == name+"s"
}
