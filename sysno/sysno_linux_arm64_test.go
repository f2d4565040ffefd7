//go:build linux && arm64

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
	{"getcwd", sysno.GETCWD, unix.SYS_GETCWD},
	{"fcntl", sysno.FCNTL, unix.SYS_FCNTL},
	{"mkdirat", sysno.MKDIRAT, unix.SYS_MKDIRAT},
	{"unlinkat", sysno.UNLINKAT, unix.SYS_UNLINKAT},
	{"openat", sysno.OPENAT, unix.SYS_OPENAT},
	{"close", sysno.CLOSE, unix.SYS_CLOSE},
	{"pipe2", sysno.PIPE2, unix.SYS_PIPE2},
	{"lseek", sysno.LSEEK, unix.SYS_LSEEK},
	{"read", sysno.READ, unix.SYS_READ},
	{"write", sysno.WRITE, unix.SYS_WRITE},
	{"kill", sysno.KILL, unix.SYS_KILL},
	{"getpid", sysno.GETPID, unix.SYS_GETPID},
	{"socket", sysno.SOCKET, unix.SYS_SOCKET},
	{"socketpair", sysno.SOCKETPAIR, unix.SYS_SOCKETPAIR},
	{"bind", sysno.BIND, unix.SYS_BIND},
	{"listen", sysno.LISTEN, unix.SYS_LISTEN},
	{"accept", sysno.ACCEPT, unix.SYS_ACCEPT},
	{"connect", sysno.CONNECT, unix.SYS_CONNECT},
	{"getsockname", sysno.GETSOCKNAME, unix.SYS_GETSOCKNAME},
	{"getpeername", sysno.GETPEERNAME, unix.SYS_GETPEERNAME},
	{"sendto", sysno.SENDTO, unix.SYS_SENDTO},
	{"recvfrom", sysno.RECVFROM, unix.SYS_RECVFROM},
	{"setsockopt", sysno.SETSOCKOPT, unix.SYS_SETSOCKOPT},
	{"getsockopt", sysno.GETSOCKOPT, unix.SYS_GETSOCKOPT},
	{"shutdown", sysno.SHUTDOWN, unix.SYS_SHUTDOWN},
	{"sendmsg", sysno.SENDMSG, unix.SYS_SENDMSG},
	{"recvmsg", sysno.RECVMSG, unix.SYS_RECVMSG},
	{"accept4", sysno.ACCEPT4, unix.SYS_ACCEPT4},
	{"renameat2", sysno.RENAMEAT2, unix.SYS_RENAMEAT2},
}
