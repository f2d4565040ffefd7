package sysno_test

import (
	"testing"

	"github.com/stealthrocket/sysabi/internal/assert"
	"github.com/stealthrocket/sysabi/sysno"
	"golang.org/x/exp/slices"
)

func TestTableMatchesKernelHeaders(t *testing.T) {
	for _, test := range crossCheck {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, uintptr(test.got), test.want)

			n, ok := sysno.Lookup(test.name)
			assert.Equal(t, ok, true)
			assert.Equal(t, n, test.got)
			assert.Equal(t, n.String(), test.name)
		})
	}
}

func TestNames(t *testing.T) {
	names := sysno.Names()
	assert.Equal(t, len(names), len(crossCheck))
	assert.Equal(t, slices.IsSorted(names), true)

	// The table is a bijection; two names sharing a number would make String
	// ambiguous.
	seen := make(map[sysno.Number]string)
	for _, name := range names {
		n, _ := sysno.Lookup(name)
		if other, dup := seen[n]; dup {
			t.Fatalf("%s and %s share syscall number %d", name, other, n)
		}
		seen[n] = name
	}
}

func TestLookupUnknown(t *testing.T) {
	_, ok := sysno.Lookup("frobnicate")
	assert.Equal(t, ok, false)
	assert.Equal(t, sysno.Number(99999).String(), "SYS_99999")
}
