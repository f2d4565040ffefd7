//go:build linux && 386

package sys

import (
	"unsafe"

	"github.com/stealthrocket/sysabi/abi"
	"github.com/stealthrocket/sysabi/result"
	"github.com/stealthrocket/sysabi/sockaddr"
	"github.com/stealthrocket/sysabi/sysno"
	"golang.org/x/sys/unix"
)

// The 32 bits kernel interface uses fcntl64 to accept the flock64 layout of
// unix.Flock_t, and requires O_LARGEFILE to open files larger than 2 GiB.
const (
	sysFcntl      = sysno.FCNTL64
	openFlagsArch = unix.O_LARGEFILE
)

// There is no accept syscall on 386, accept4 without flags is equivalent.
func accept(fd int, name *sockaddr.Storage, namelen *uint32) (int, error) {
	return result.Fd(abi.Syscall4(uintptr(sysno.ACCEPT4), uintptr(fd), uintptr(name.Pointer()), uintptr(unsafe.Pointer(namelen)), 0))
}
