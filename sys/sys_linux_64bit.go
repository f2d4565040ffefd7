//go:build linux && (amd64 || arm64 || riscv64)

package sys

import (
	"unsafe"

	"github.com/stealthrocket/sysabi/abi"
	"github.com/stealthrocket/sysabi/result"
	"github.com/stealthrocket/sysabi/sockaddr"
	"github.com/stealthrocket/sysabi/sysno"
)

const (
	sysFcntl      = sysno.FCNTL
	openFlagsArch = 0
)

func accept(fd int, name *sockaddr.Storage, namelen *uint32) (int, error) {
	return result.Fd(abi.Syscall3(uintptr(sysno.ACCEPT), uintptr(fd), uintptr(name.Pointer()), uintptr(unsafe.Pointer(namelen))))
}

// Seek repositions the offset of fd and returns the resulting offset.
func Seek(fd int, offset int64, whence int) (int64, error) {
	return result.Offset(abi.Syscall3(uintptr(sysno.LSEEK), uintptr(fd), uintptr(offset), uintptr(whence)))
}
