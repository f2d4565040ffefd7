//go:build linux && amd64

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
	{"lseek", sysno.LSEEK, unix.SYS_LSEEK},
	{"getpid", sysno.GETPID, unix.SYS_GETPID},
	{"socket", sysno.SOCKET, unix.SYS_SOCKET},
	{"connect", sysno.CONNECT, unix.SYS_CONNECT},
	{"accept", sysno.ACCEPT, unix.SYS_ACCEPT},
	{"sendto", sysno.SENDTO, unix.SYS_SENDTO},
	{"recvfrom", sysno.RECVFROM, unix.SYS_RECVFROM},
	{"sendmsg", sysno.SENDMSG, unix.SYS_SENDMSG},
	{"recvmsg", sysno.RECVMSG, unix.SYS_RECVMSG},
	{"shutdown", sysno.SHUTDOWN, unix.SYS_SHUTDOWN},
	{"bind", sysno.BIND, unix.SYS_BIND},
	{"listen", sysno.LISTEN, unix.SYS_LISTEN},
	{"getsockname", sysno.GETSOCKNAME, unix.SYS_GETSOCKNAME},
	{"getpeername", sysno.GETPEERNAME, unix.SYS_GETPEERNAME},
	{"socketpair", sysno.SOCKETPAIR, unix.SYS_SOCKETPAIR},
	{"setsockopt", sysno.SETSOCKOPT, unix.SYS_SETSOCKOPT},
	{"getsockopt", sysno.GETSOCKOPT, unix.SYS_GETSOCKOPT},
	{"kill", sysno.KILL, unix.SYS_KILL},
	{"fcntl", sysno.FCNTL, unix.SYS_FCNTL},
	{"getcwd", sysno.GETCWD, unix.SYS_GETCWD},
	{"mkdir", sysno.MKDIR, unix.SYS_MKDIR},
	{"unlink", sysno.UNLINK, unix.SYS_UNLINK},
	{"openat", sysno.OPENAT, unix.SYS_OPENAT},
	{"mkdirat", sysno.MKDIRAT, unix.SYS_MKDIRAT},
	{"unlinkat", sysno.UNLINKAT, unix.SYS_UNLINKAT},
	{"accept4", sysno.ACCEPT4, unix.SYS_ACCEPT4},
	{"pipe2", sysno.PIPE2, unix.SYS_PIPE2},
	{"renameat2", sysno.RENAMEAT2, unix.SYS_RENAMEAT2},
}
