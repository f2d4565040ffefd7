// Package sysno maps symbolic syscall identifiers to the numbers of the
// architecture the program is compiled for.
//
// Each architecture has its own table in zsysno_linux_$GOARCH.go. A syscall
// that does not exist on an architecture has no constant there, so code that
// references it fails to build for that target instead of trapping into an
// unrelated kernel operation at runtime.
package sysno

import (
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Number is a syscall number valid for the target architecture.
type Number uintptr

func (n Number) String() string {
	if name, ok := numberToName[n]; ok {
		return name
	}
	return "SYS_" + strconv.FormatUint(uint64(n), 10)
}

// Lookup returns the number of the syscall with the given name, as spelled in
// the kernel headers without the __NR_ prefix (e.g. "openat").
func Lookup(name string) (Number, bool) {
	n, ok := nameToNumber[name]
	return n, ok
}

// Names returns the sorted list of syscall names known on this architecture.
func Names() []string {
	names := maps.Keys(nameToNumber)
	slices.Sort(names)
	return names
}

var numberToName = func() map[Number]string {
	m := make(map[Number]string, len(nameToNumber))
	for name, n := range nameToNumber {
		m[n] = name
	}
	return m
}()
