// Package result decodes the raw value returned by the kernel.
//
// Linux reports failure by returning the negation of an error code in the same
// register that carries the success value. The functions in this package turn
// that convention into a Go (value, error) pair; nothing outside of this
// package should inspect the sign of a raw result.
//
// The decoding assumes that a negative raw value is always an error, which
// holds for every syscall sysabi exposes. Binding a new syscall must
// re-verify that it never returns a negative success value (lseek on files
// larger than 2^63 bytes, or getpriority on older kernels, are examples of
// syscalls where the assumption does not hold).
package result

import (
	"fmt"

	"github.com/stealthrocket/sysabi/abi"
	"golang.org/x/sys/unix"
)

// Errno is an error code reported by the kernel.
//
// Errno values implement the Is method of syscall.Errno, so they can be
// compared to the io/fs sentinel errors:
//
//	errors.Is(err, fs.ErrNotExist)
type Errno = unix.Errno

const (
	EAFNOSUPPORT = unix.EAFNOSUPPORT
	EAGAIN       = unix.EAGAIN
	EBADF        = unix.EBADF
	EEXIST       = unix.EEXIST
	EFAULT       = unix.EFAULT
	EINTR        = unix.EINTR
	EINVAL       = unix.EINVAL
	ENAMETOOLONG = unix.ENAMETOOLONG
	ENOENT       = unix.ENOENT
	ENOSYS       = unix.ENOSYS
	ENOTSOCK     = unix.ENOTSOCK
	EPERM        = unix.EPERM
	ESRCH        = unix.ESRCH
)

// Name returns the symbolic name of errno (e.g. "ENOENT"), or an empty string
// if the code is unknown.
func Name(errno Errno) string {
	return unix.ErrnoName(errno)
}

// Describe returns the human-readable description of errno.
func Describe(errno Errno) string {
	return errno.Error()
}

// Value decodes r as an unsigned machine word.
func Value(r abi.Word) (uintptr, error) {
	if r < 0 {
		return 0, Errno(-r)
	}
	return uintptr(r), nil
}

// Count decodes r as a byte or element count.
func Count(r abi.Word) (int, error) {
	v, err := Value(r)
	return int(v), err
}

// Fd decodes r as a file descriptor.
func Fd(r abi.Word) (int, error) {
	if r < 0 {
		return -1, Errno(-r)
	}
	return int(r), nil
}

// Offset decodes r as a file offset.
func Offset(r abi.Word) (int64, error) {
	v, err := Value(r)
	return int64(v), err
}

// Unit decodes the result of a syscall which returns zero on success.
//
// A positive result means the syscall number bound to op is not the operation
// the caller believes it invoked; Unit panics with a *ContractError rather than
// letting the program proceed on a misidentified kernel operation.
func Unit(op string, r abi.Word) error {
	switch {
	case r < 0:
		return Errno(-r)
	case r > 0:
		panic(&ContractError{Op: op, Result: r})
	default:
		return nil
	}
}

// ContractError is the panic value raised when a syscall returns a value its
// documented contract excludes.
type ContractError struct {
	Op     string
	Result abi.Word
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: kernel returned %d where the syscall contract guarantees 0", e.Op, e.Result)
}
