// Package assert contains the test assertions shared by the sysabi packages.
package assert

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"
)

func OK(t testing.TB, err error) {
	if err != nil {
		t.Helper()
		t.Fatal("error:", err)
	}
}

// Error asserts that got matches want according to errors.Is.
func Error(t testing.TB, got, want error) {
	if !errors.Is(got, want) {
		t.Helper()
		t.Fatalf("error mismatch\nwant = %v\ngot  = %v", want, got)
	}
}

// ErrorAs asserts that got wraps an error of type T and returns it.
func ErrorAs[T error](t testing.TB, got error) T {
	var target T
	if !errors.As(got, &target) {
		t.Helper()
		t.Fatalf("error type mismatch\nwant = %T\ngot  = %#v", target, got)
	}
	return target
}

func Equal[T comparable](t testing.TB, got, want T) {
	if got != want {
		t.Helper()
		t.Fatalf("value mismatch\nwant = %#v\ngot  = %#v", want, got)
	}
}

func NotEqual[T comparable](t testing.TB, got, want T) {
	if got == want {
		t.Helper()
		t.Fatalf("value must not be %#v", got)
	}
}

func EqualAll[T comparable](t testing.TB, got, want []T) {
	if len(got) != len(want) {
		t.Helper()
		t.Fatalf("number of values mismatch\nwant = %#v\ngot  = %#v", want, got)
	}

	for i, value := range want {
		if value != got[i] {
			t.Helper()
			t.Fatalf("value at index %d/%d mismatch\nwant = %#v\ngot  = %#v", i, len(want), value, got[i])
		}
	}
}

func Less[T constraints.Ordered](t testing.TB, less, more T) {
	if less >= more {
		t.Helper()
		t.Fatalf("value is too large: %v >= %v", less, more)
	}
}

func DeepEqual(t testing.TB, got, want any) {
	if !reflect.DeepEqual(got, want) {
		t.Helper()
		t.Fatalf("value mismatch\n%s", cmp.Diff(want, got))
	}
}

func HasPrefix(t testing.TB, got, prefix string) {
	if !strings.HasPrefix(got, prefix) {
		t.Helper()
		t.Fatalf("prefix mismatch\nwant = %q\ngot  = %q", prefix, got)
	}
}

// Panics asserts that f panics and returns the recovered value.
func Panics(t testing.TB, f func()) (v any) {
	t.Helper()
	defer func() {
		if v = recover(); v == nil {
			t.Fatal("function did not panic")
		}
	}()
	f()
	return nil
}

// Bytes compares byte slices and reports the first differing offset along
// with a hex dump of both values.
func Bytes(t testing.TB, got, want []byte) {
	if len(got) != len(want) {
		t.Helper()
		t.Fatalf("length mismatch: want %d bytes, got %d\nwant = %sgot  = %s", len(want), len(got), spew.Sdump(want), spew.Sdump(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Helper()
			t.Fatalf("byte %d differs\nwant = %sgot  = %s", i, spew.Sdump(want), spew.Sdump(got))
		}
	}
}
