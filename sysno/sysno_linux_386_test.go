//go:build linux && 386

package sysno_test

import (
	"github.com/stealthrocket/sysabi/sysno"
	"golang.org/x/sys/unix"
)

var crossCheck = []struct {
	name string
	got  sysno.Number
	want uintptr
}{
	{"read", sysno.READ, unix.SYS_READ},
	{"write", sysno.WRITE, unix.SYS_WRITE},
	{"open", sysno.OPEN, unix.SYS_OPEN},
	{"close", sysno.CLOSE, unix.SYS_CLOSE},
	{"unlink", sysno.UNLINK, unix.SYS_UNLINK},
	{"getpid", sysno.GETPID, unix.SYS_GETPID},
	{"kill", sysno.KILL, unix.SYS_KILL},
	{"mkdir", sysno.MKDIR, unix.SYS_MKDIR},
	{"fcntl", sysno.FCNTL, unix.SYS_FCNTL},
	{"getcwd", sysno.GETCWD, unix.SYS_GETCWD},
	{"fcntl64", sysno.FCNTL64, unix.SYS_FCNTL64},
	{"openat", sysno.OPENAT, unix.SYS_OPENAT},
	{"mkdirat", sysno.MKDIRAT, unix.SYS_MKDIRAT},
	{"unlinkat", sysno.UNLINKAT, unix.SYS_UNLINKAT},
	{"pipe2", sysno.PIPE2, unix.SYS_PIPE2},
	{"renameat2", sysno.RENAMEAT2, unix.SYS_RENAMEAT2},
	{"socket", sysno.SOCKET, unix.SYS_SOCKET},
	{"socketpair", sysno.SOCKETPAIR, unix.SYS_SOCKETPAIR},
	{"bind", sysno.BIND, unix.SYS_BIND},
	{"connect", sysno.CONNECT, unix.SYS_CONNECT},
	{"listen", sysno.LISTEN, unix.SYS_LISTEN},
	{"accept4", sysno.ACCEPT4, unix.SYS_ACCEPT4},
	{"getsockopt", sysno.GETSOCKOPT, unix.SYS_GETSOCKOPT},
	{"setsockopt", sysno.SETSOCKOPT, unix.SYS_SETSOCKOPT},
	{"getsockname", sysno.GETSOCKNAME, unix.SYS_GETSOCKNAME},
	{"getpeername", sysno.GETPEERNAME, unix.SYS_GETPEERNAME},
	{"sendto", sysno.SENDTO, unix.SYS_SENDTO},
	{"sendmsg", sysno.SENDMSG, unix.SYS_SENDMSG},
	{"recvfrom", sysno.RECVFROM, unix.SYS_RECVFROM},
	{"recvmsg", sysno.RECVMSG, unix.SYS_RECVMSG},
	{"shutdown", sysno.SHUTDOWN, unix.SYS_SHUTDOWN},
}
