//go:build linux && 386

package sysno

// Syscall numbers for linux/386, from the kernel's arch/x86/entry/syscalls/syscall_32.tbl.
const (
	READ        Number = 3
	WRITE       Number = 4
	OPEN        Number = 5
	CLOSE       Number = 6
	UNLINK      Number = 10
	GETPID      Number = 20
	KILL        Number = 37
	MKDIR       Number = 39
	FCNTL       Number = 55
	GETCWD      Number = 183
	FCNTL64     Number = 221
	OPENAT      Number = 295
	MKDIRAT     Number = 296
	UNLINKAT    Number = 301
	PIPE2       Number = 331
	RENAMEAT2   Number = 353
	SOCKET      Number = 359
	SOCKETPAIR  Number = 360
	BIND        Number = 361
	CONNECT     Number = 362
	LISTEN      Number = 363
	ACCEPT4     Number = 364
	GETSOCKOPT  Number = 365
	SETSOCKOPT  Number = 366
	GETSOCKNAME Number = 367
	GETPEERNAME Number = 368
	SENDTO      Number = 369
	SENDMSG     Number = 370
	RECVFROM    Number = 371
	RECVMSG     Number = 372
	SHUTDOWN    Number = 373
)

var nameToNumber = map[string]Number{
	"read":        READ,
	"write":       WRITE,
	"open":        OPEN,
	"close":       CLOSE,
	"unlink":      UNLINK,
	"getpid":      GETPID,
	"kill":        KILL,
	"mkdir":       MKDIR,
	"fcntl":       FCNTL,
	"getcwd":      GETCWD,
	"fcntl64":     FCNTL64,
	"openat":      OPENAT,
	"mkdirat":     MKDIRAT,
	"unlinkat":    UNLINKAT,
	"pipe2":       PIPE2,
	"renameat2":   RENAMEAT2,
	"socket":      SOCKET,
	"socketpair":  SOCKETPAIR,
	"bind":        BIND,
	"connect":     CONNECT,
	"listen":      LISTEN,
	"accept4":     ACCEPT4,
	"getsockopt":  GETSOCKOPT,
	"setsockopt":  SETSOCKOPT,
	"getsockname": GETSOCKNAME,
	"getpeername": GETPEERNAME,
	"sendto":      SENDTO,
	"sendmsg":     SENDMSG,
	"recvfrom":    RECVFROM,
	"recvmsg":     RECVMSG,
	"shutdown":    SHUTDOWN,
}
