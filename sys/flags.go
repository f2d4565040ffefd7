package sys

import (
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/sys/unix"
)

// OpenFlags is a bitset of flags that can be passed to Open.
//
// The set does not contain O_CREAT: creating a file requires a permission
// mode, so it is expressed with the Create and CreateExclusive methods, which
// return the Flags to pass to Open.
type OpenFlags int

const (
	O_RDONLY    OpenFlags = unix.O_RDONLY
	O_WRONLY    OpenFlags = unix.O_WRONLY
	O_RDWR      OpenFlags = unix.O_RDWR
	O_APPEND    OpenFlags = unix.O_APPEND
	O_TRUNC     OpenFlags = unix.O_TRUNC
	O_SYNC      OpenFlags = unix.O_SYNC
	O_DIRECTORY OpenFlags = unix.O_DIRECTORY
	O_NOFOLLOW  OpenFlags = unix.O_NOFOLLOW
	O_NONBLOCK  OpenFlags = unix.O_NONBLOCK
	O_CLOEXEC   OpenFlags = unix.O_CLOEXEC
)

func (openFlags OpenFlags) String() string {
	var names []string

	switch openFlags & (O_RDWR | O_WRONLY | O_RDONLY) {
	case O_RDWR:
		names = append(names, "O_RDWR")
	case O_WRONLY:
		names = append(names, "O_WRONLY")
	}

	for _, f := range [...]struct {
		flag OpenFlags
		name string
	}{
		{O_APPEND, "O_APPEND"},
		{O_TRUNC, "O_TRUNC"},
		{O_SYNC, "O_SYNC"},
		{O_DIRECTORY, "O_DIRECTORY"},
		{O_NOFOLLOW, "O_NOFOLLOW"},
		{O_NONBLOCK, "O_NONBLOCK"},
		{O_CLOEXEC, "O_CLOEXEC"},
	} {
		if (openFlags & f.flag) == f.flag {
			names = append(names, f.name)
		}
	}

	if len(names) == 0 {
		names = append(names, "O_RDONLY")
	}

	sort.Strings(names)
	return strings.Join(names, "|")
}

// Create returns flags opening or creating a file with the given mode.
func (openFlags OpenFlags) Create(mode fs.FileMode) Flags {
	return createFlags{flags: openFlags, mode: mode}
}

// CreateExclusive is like Create but fails with EEXIST if the file exists.
func (openFlags OpenFlags) CreateExclusive(mode fs.FileMode) Flags {
	return createFlags{flags: openFlags, mode: mode, excl: true}
}

func (openFlags OpenFlags) sysFlags() (int, uint32) {
	return int(openFlags), 0
}

// Flags is the set of flags and the permission mode passed to Open. It is
// either an OpenFlags value or the result of its Create methods.
type Flags interface {
	String() string
	sysFlags() (flags int, mode uint32)
}

type createFlags struct {
	flags OpenFlags
	mode  fs.FileMode
	excl  bool
}

func (f createFlags) String() string {
	s := f.flags.String() + "|O_CREAT"
	if f.excl {
		s += "|O_EXCL"
	}
	return s + "(" + f.mode.String() + ")"
}

func (f createFlags) sysFlags() (int, uint32) {
	flags := int(f.flags) | unix.O_CREAT
	if f.excl {
		flags |= unix.O_EXCL
	}
	return flags, fileMode(f.mode)
}

// fileMode converts mode to the permission bits expected by the kernel.
func fileMode(mode fs.FileMode) uint32 {
	m := uint32(mode.Perm())
	if mode&fs.ModeSetuid != 0 {
		m |= unix.S_ISUID
	}
	if mode&fs.ModeSetgid != 0 {
		m |= unix.S_ISGID
	}
	if mode&fs.ModeSticky != 0 {
		m |= unix.S_ISVTX
	}
	return m
}
