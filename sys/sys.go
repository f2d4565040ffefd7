// Package sys contains typed wrappers of kernel operations built on the abi,
// sysno and result packages.
//
// Each wrapper resolves its syscall number for the target architecture,
// converts its arguments to machine words, traps into the kernel and decodes
// the result. Kernel errors are returned as result.Errno values; errors
// detected before reaching the kernel (a NUL byte in a path, an address that
// cannot be encoded) are returned as sentinel errors instead.
//
// Only the operations that the kernel allows to be safely restarted (read,
// write, sendmsg, recvmsg and accept) are retried when interrupted by a
// signal, and at most MaxInterruptRetries times.
package sys

import (
	"errors"
	"strings"
	"unsafe"

	"github.com/stealthrocket/sysabi/result"
	"golang.org/x/sys/unix"
)

const (
	EINTR = result.EINTR
	EBADF = result.EBADF
)

// MaxInterruptRetries is the number of times an operation is restarted after
// being interrupted by a signal before EINTR is returned to the caller.
const MaxInterruptRetries = 16

var ErrInteriorNull = errors.New("sys: path contains a NUL byte")

// atFDCWD is a variable so it can be converted to a uintptr.
var atFDCWD = unix.AT_FDCWD

// retryEINTR calls f again when it returns EINTR, up to MaxInterruptRetries
// times. The operations using it report EINTR only when nothing was
// transferred, so restarting them cannot duplicate data.
func retryEINTR[R any](f func() (R, error)) (R, error) {
	for i := 0; ; i++ {
		v, err := f()
		if err != EINTR || i == MaxInterruptRetries {
			return v, err
		}
	}
}

func retryEINTR3[R1, R2 any](f func() (R1, R2, error)) (R1, R2, error) {
	for i := 0; ; i++ {
		v1, v2, err := f()
		if err != EINTR || i == MaxInterruptRetries {
			return v1, v2, err
		}
	}
}

// cstring returns a pointer to a NUL terminated copy of s.
func cstring(s string) (*byte, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, ErrInteriorNull
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0], nil
}

func sliceData(b []byte) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(b))
}
