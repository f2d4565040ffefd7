// Package abi is the lowest layer of sysabi: it traps into the Linux kernel
// with a syscall number and up to six machine-word arguments, and returns the
// raw machine-word result.
//
// Exactly one implementation is compiled per target architecture, selected by
// the file name suffix of the assembly trampolines (asm_linux_$GOARCH.s). The
// trampolines never fail; errors are encoded in the returned Word, which must
// be handed to the result package to be decoded.
//
// Callers are responsible for the validity of the arguments: pointers must
// reference live memory for the duration of the call, buffers must be sized
// for what the kernel will read or write, and descriptors must be open. When
// passing a pointer, the uintptr(unsafe.Pointer(p)) conversion must appear in
// the argument list of the call itself so the compiler keeps p alive.
package abi

import "unsafe"

// Word is the native register-width signed integer. Every value crossing the
// kernel boundary (pointers, descriptors, lengths, flags) is carried in a Word.
type Word int

// WordSize is the size of a Word in bytes.
const WordSize = int(unsafe.Sizeof(Word(0)))

// The constant expressions below overflow, and fail to compile, when the
// target violates the width assumptions the trampolines rely on.
const (
	_ = uintptr(unsafe.Sizeof(uintptr(0)) - unsafe.Sizeof(Word(0)))
	_ = uintptr(unsafe.Sizeof(Word(0)) - unsafe.Sizeof(uintptr(0)))
	_ = uintptr(unsafe.Sizeof(Word(0)) - unsafe.Sizeof(unsafe.Pointer(nil)))
	_ = uintptr(unsafe.Sizeof(Word(0)) - unsafe.Sizeof(int32(0)))
	_ = uintptr(unsafe.Sizeof(Word(0)) - unsafe.Sizeof(uint32(0)))
	_ = uintptr(unsafe.Sizeof(Word(0)) - unsafe.Sizeof(int(0)))
)

// Convention describes how the kernel entry point of an architecture receives
// its arguments.
type Convention struct {
	Arch        string   `json:"arch"        yaml:"arch"`
	Instruction string   `json:"instruction" yaml:"instruction"`
	Number      string   `json:"number"      yaml:"number"`
	Return      string   `json:"return"      yaml:"return"`
	Args        []string `json:"args"        yaml:"args"`
	Clobbers    []string `json:"clobbers"    yaml:"clobbers"`
	WordSize    int      `json:"wordSize"    yaml:"wordSize"`
}

// Native returns the calling convention of the architecture the program was
// compiled for.
func Native() Convention {
	c := native
	c.Args = append([]string(nil), native.Args...)
	c.Clobbers = append([]string(nil), native.Clobbers...)
	c.WordSize = WordSize
	return c
}
