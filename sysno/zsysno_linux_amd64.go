//go:build linux && amd64

package sysno

// Syscall numbers for linux/amd64, from the kernel's arch/x86/entry/syscalls/syscall_64.tbl.
const (
	READ        Number = 0
	WRITE       Number = 1
	OPEN        Number = 2
	CLOSE       Number = 3
	LSEEK       Number = 8
	GETPID      Number = 39
	SOCKET      Number = 41
	CONNECT     Number = 42
	ACCEPT      Number = 43
	SENDTO      Number = 44
	RECVFROM    Number = 45
	SENDMSG     Number = 46
	RECVMSG     Number = 47
	SHUTDOWN    Number = 48
	BIND        Number = 49
	LISTEN      Number = 50
	GETSOCKNAME Number = 51
	GETPEERNAME Number = 52
	SOCKETPAIR  Number = 53
	SETSOCKOPT  Number = 54
	GETSOCKOPT  Number = 55
	KILL        Number = 62
	FCNTL       Number = 72
	GETCWD      Number = 79
	MKDIR       Number = 83
	UNLINK      Number = 87
	OPENAT      Number = 257
	MKDIRAT     Number = 258
	UNLINKAT    Number = 263
	ACCEPT4     Number = 288
	PIPE2       Number = 293
	RENAMEAT2   Number = 316
)

var nameToNumber = map[string]Number{
	"read":        READ,
	"write":       WRITE,
	"open":        OPEN,
	"close":       CLOSE,
	"lseek":       LSEEK,
	"getpid":      GETPID,
	"socket":      SOCKET,
	"connect":     CONNECT,
	"accept":      ACCEPT,
	"sendto":      SENDTO,
	"recvfrom":    RECVFROM,
	"sendmsg":     SENDMSG,
	"recvmsg":     RECVMSG,
	"shutdown":    SHUTDOWN,
	"bind":        BIND,
	"listen":      LISTEN,
	"getsockname": GETSOCKNAME,
	"getpeername": GETPEERNAME,
	"socketpair":  SOCKETPAIR,
	"setsockopt":  SETSOCKOPT,
	"getsockopt":  GETSOCKOPT,
	"kill":        KILL,
	"fcntl":       FCNTL,
	"getcwd":      GETCWD,
	"mkdir":       MKDIR,
	"unlink":      UNLINK,
	"openat":      OPENAT,
	"mkdirat":     MKDIRAT,
	"unlinkat":    UNLINKAT,
	"accept4":     ACCEPT4,
	"pipe2":       PIPE2,
	"renameat2":   RENAMEAT2,
}
