//go:build linux && arm64

package sysno

// Syscall numbers for linux/arm64, from the kernel's include/uapi/asm-generic/unistd.h.
const (
	GETCWD      Number = 17
	FCNTL       Number = 25
	MKDIRAT     Number = 34
	UNLINKAT    Number = 35
	OPENAT      Number = 56
	CLOSE       Number = 57
	PIPE2       Number = 59
	LSEEK       Number = 62
	READ        Number = 63
	WRITE       Number = 64
	KILL        Number = 129
	GETPID      Number = 172
	SOCKET      Number = 198
	SOCKETPAIR  Number = 199
	BIND        Number = 200
	LISTEN      Number = 201
	ACCEPT      Number = 202
	CONNECT     Number = 203
	GETSOCKNAME Number = 204
	GETPEERNAME Number = 205
	SENDTO      Number = 206
	RECVFROM    Number = 207
	SETSOCKOPT  Number = 208
	GETSOCKOPT  Number = 209
	SHUTDOWN    Number = 210
	SENDMSG     Number = 211
	RECVMSG     Number = 212
	ACCEPT4     Number = 242
	RENAMEAT2   Number = 276
)

var nameToNumber = map[string]Number{
	"getcwd":      GETCWD,
	"fcntl":       FCNTL,
	"mkdirat":     MKDIRAT,
	"unlinkat":    UNLINKAT,
	"openat":      OPENAT,
	"close":       CLOSE,
	"pipe2":       PIPE2,
	"lseek":       LSEEK,
	"read":        READ,
	"write":       WRITE,
	"kill":        KILL,
	"getpid":      GETPID,
	"socket":      SOCKET,
	"socketpair":  SOCKETPAIR,
	"bind":        BIND,
	"listen":      LISTEN,
	"accept":      ACCEPT,
	"connect":     CONNECT,
	"getsockname": GETSOCKNAME,
	"getpeername": GETPEERNAME,
	"sendto":      SENDTO,
	"recvfrom":    RECVFROM,
	"setsockopt":  SETSOCKOPT,
	"getsockopt":  GETSOCKOPT,
	"shutdown":    SHUTDOWN,
	"sendmsg":     SENDMSG,
	"recvmsg":     RECVMSG,
	"accept4":     ACCEPT4,
	"renameat2":   RENAMEAT2,
}
