package sys

import (
	"unsafe"

	"github.com/stealthrocket/sysabi/abi"
	"github.com/stealthrocket/sysabi/result"
	"golang.org/x/sys/unix"
)

// Command is an fcntl operation together with its argument. The set of
// commands is closed: GetFlags, SetFlags, GetDescriptorFlags,
// SetDescriptorFlags, Dup, GetLock and SetLock.
type Command interface {
	String() string
	fcntl(fd int) (int, error)
}

// Lock is a POSIX record lock (struct flock, or struct flock64 on 32 bits
// architectures).
type Lock = unix.Flock_t

// Fcntl applies cmd to fd. The returned value depends on the command; it is
// zero for the commands that only report success.
func Fcntl(fd int, cmd Command) (int, error) {
	return cmd.fcntl(fd)
}

func fcntl(fd, cmd, arg int) (int, error) {
	return result.Count(abi.Syscall3(uintptr(sysFcntl), uintptr(fd), uintptr(cmd), uintptr(arg)))
}

// GetFlags returns the file status flags and access mode (F_GETFL).
type GetFlags struct{}

func (GetFlags) String() string { return "F_GETFL" }

func (GetFlags) fcntl(fd int) (int, error) { return fcntl(fd, unix.F_GETFL, 0) }

// SetFlags sets the file status flags (F_SETFL). The kernel ignores the
// access mode bits and only changes O_APPEND, O_NONBLOCK, O_DIRECT and
// O_NOATIME.
type SetFlags struct {
	Flags OpenFlags
}

func (c SetFlags) String() string { return "F_SETFL(" + c.Flags.String() + ")" }

func (c SetFlags) fcntl(fd int) (int, error) { return fcntl(fd, unix.F_SETFL, int(c.Flags)) }

// GetDescriptorFlags returns the descriptor flags (F_GETFD), which is either
// zero or FD_CLOEXEC.
type GetDescriptorFlags struct{}

func (GetDescriptorFlags) String() string { return "F_GETFD" }

func (GetDescriptorFlags) fcntl(fd int) (int, error) { return fcntl(fd, unix.F_GETFD, 0) }

// SetDescriptorFlags sets the close-on-exec flag of the descriptor (F_SETFD).
type SetDescriptorFlags struct {
	CloseOnExec bool
}

func (c SetDescriptorFlags) String() string {
	if c.CloseOnExec {
		return "F_SETFD(FD_CLOEXEC)"
	}
	return "F_SETFD(0)"
}

func (c SetDescriptorFlags) fcntl(fd int) (int, error) {
	flags := 0
	if c.CloseOnExec {
		flags = unix.FD_CLOEXEC
	}
	return fcntl(fd, unix.F_SETFD, flags)
}

// Dup duplicates the descriptor to the lowest available number greater than
// or equal to Min (F_DUPFD or F_DUPFD_CLOEXEC) and returns the new descriptor.
type Dup struct {
	Min         int
	CloseOnExec bool
}

func (c Dup) String() string {
	if c.CloseOnExec {
		return "F_DUPFD_CLOEXEC"
	}
	return "F_DUPFD"
}

func (c Dup) fcntl(fd int) (int, error) {
	cmd := unix.F_DUPFD
	if c.CloseOnExec {
		cmd = unix.F_DUPFD_CLOEXEC
	}
	return fcntl(fd, cmd, c.Min)
}

// GetLock tests whether the lock described by *Lock could be placed (F_GETLK).
// The kernel overwrites *Lock with a conflicting lock, or sets its type to
// F_UNLCK if there is none.
type GetLock struct {
	Lock *Lock
}

func (GetLock) String() string { return "F_GETLK" }

func (c GetLock) fcntl(fd int) (int, error) {
	return result.Count(abi.Syscall3(uintptr(sysFcntl), uintptr(fd), unix.F_GETLK, uintptr(unsafe.Pointer(c.Lock))))
}

// SetLock acquires or releases a lock (F_SETLK). When Wait is true the call
// blocks until the lock can be acquired (F_SETLKW).
type SetLock struct {
	Lock Lock
	Wait bool
}

func (c SetLock) String() string {
	if c.Wait {
		return "F_SETLKW"
	}
	return "F_SETLK"
}

func (c SetLock) fcntl(fd int) (int, error) {
	cmd := uintptr(unix.F_SETLK)
	if c.Wait {
		cmd = unix.F_SETLKW
	}
	lock := c.Lock
	return result.Count(abi.Syscall3(uintptr(sysFcntl), uintptr(fd), cmd, uintptr(unsafe.Pointer(&lock))))
}
