package sys

import (
	"io/fs"
	"unsafe"

	"github.com/stealthrocket/sysabi/abi"
	"github.com/stealthrocket/sysabi/result"
	"github.com/stealthrocket/sysabi/sysno"
	"golang.org/x/sys/unix"
)

// Open opens the file at path relative to the current working directory and
// returns its descriptor.
func Open(path string, flags Flags) (int, error) {
	p, err := cstring(path)
	if err != nil {
		return -1, err
	}
	f, mode := flags.sysFlags()
	return result.Fd(abi.Syscall4(uintptr(sysno.OPENAT), uintptr(atFDCWD), uintptr(unsafe.Pointer(p)), uintptr(f|openFlagsArch), uintptr(mode)))
}

func Read(fd int, b []byte) (int, error) {
	return retryEINTR(func() (int, error) {
		return result.Count(abi.Syscall3(uintptr(sysno.READ), uintptr(fd), uintptr(sliceData(b)), uintptr(len(b))))
	})
}

func Write(fd int, b []byte) (int, error) {
	return retryEINTR(func() (int, error) {
		return result.Count(abi.Syscall3(uintptr(sysno.WRITE), uintptr(fd), uintptr(sliceData(b)), uintptr(len(b))))
	})
}

// Close closes fd. It is never retried: the descriptor is released even when
// the kernel reports EINTR.
func Close(fd int) error {
	return result.Unit("close", abi.Syscall1(uintptr(sysno.CLOSE), uintptr(fd)))
}

func Unlink(path string) error {
	p, err := cstring(path)
	if err != nil {
		return err
	}
	return result.Unit("unlink", abi.Syscall3(uintptr(sysno.UNLINKAT), uintptr(atFDCWD), uintptr(unsafe.Pointer(p)), 0))
}

// Rmdir removes the empty directory at path.
func Rmdir(path string) error {
	p, err := cstring(path)
	if err != nil {
		return err
	}
	return result.Unit("rmdir", abi.Syscall3(uintptr(sysno.UNLINKAT), uintptr(atFDCWD), uintptr(unsafe.Pointer(p)), unix.AT_REMOVEDIR))
}

func Mkdir(path string, mode fs.FileMode) error {
	p, err := cstring(path)
	if err != nil {
		return err
	}
	return result.Unit("mkdir", abi.Syscall3(uintptr(sysno.MKDIRAT), uintptr(atFDCWD), uintptr(unsafe.Pointer(p)), uintptr(fileMode(mode))))
}

func Rename(oldPath, newPath string) error {
	p0, err := cstring(oldPath)
	if err != nil {
		return err
	}
	p1, err := cstring(newPath)
	if err != nil {
		return err
	}
	return result.Unit("rename", abi.Syscall5(uintptr(sysno.RENAMEAT2), uintptr(atFDCWD), uintptr(unsafe.Pointer(p0)), uintptr(atFDCWD), uintptr(unsafe.Pointer(p1)), 0))
}

func Getcwd() (string, error) {
	buf := make([]byte, unix.PathMax)
	n, err := result.Count(abi.Syscall2(uintptr(sysno.GETCWD), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf))))
	if err != nil {
		return "", err
	}
	// The length reported by the kernel includes the NUL terminator.
	if n > 0 && buf[n-1] == 0 {
		n--
	}
	return string(buf[:n]), nil
}

// Getpid returns the process id. getpid cannot fail.
func Getpid() int {
	pid, _ := result.Count(abi.RawSyscall6(uintptr(sysno.GETPID), 0, 0, 0, 0, 0, 0))
	return pid
}

func Kill(pid int, sig unix.Signal) error {
	return result.Unit("kill", abi.Syscall2(uintptr(sysno.KILL), uintptr(pid), uintptr(sig)))
}

// Pipe creates a pipe and returns its read and write ends. The only flags
// honored by the kernel are O_CLOEXEC, O_NONBLOCK and O_DIRECT.
func Pipe(flags OpenFlags) (r, w int, err error) {
	var fds [2]int32
	if err := result.Unit("pipe2", abi.Syscall2(uintptr(sysno.PIPE2), uintptr(unsafe.Pointer(&fds)), uintptr(flags))); err != nil {
		return -1, -1, err
	}
	return int(fds[0]), int(fds[1]), nil
}
