//go:build linux && (386 || amd64 || arm64 || riscv64)

package abi

// Syscall0 through Syscall6 invoke the kernel entry point with the syscall
// number trap and the given arguments. The calling goroutine is marked as
// being in a system call for the duration of the trap so the scheduler can
// hand its P to other goroutines if the call blocks.
//
// Argument registers not used by an entry point are zeroed before the trap.

func Syscall0(trap uintptr) (r Word)

func Syscall1(trap, a1 uintptr) (r Word)

func Syscall2(trap, a1, a2 uintptr) (r Word)

func Syscall3(trap, a1, a2, a3 uintptr) (r Word)

func Syscall4(trap, a1, a2, a3, a4 uintptr) (r Word)

func Syscall5(trap, a1, a2, a3, a4, a5 uintptr) (r Word)

func Syscall6(trap, a1, a2, a3, a4, a5, a6 uintptr) (r Word)

// RawSyscall6 is like Syscall6 but does not notify the scheduler. It must only
// be used for syscalls that are guaranteed not to block.
func RawSyscall6(trap, a1, a2, a3, a4, a5, a6 uintptr) (r Word)
