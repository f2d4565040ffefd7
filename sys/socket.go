package sys

import (
	"unsafe"

	"github.com/stealthrocket/sysabi/abi"
	"github.com/stealthrocket/sysabi/result"
	"github.com/stealthrocket/sysabi/sockaddr"
	"github.com/stealthrocket/sysabi/sockopt"
	"github.com/stealthrocket/sysabi/sysno"
	"golang.org/x/sys/unix"
)

type Family = sockaddr.Family

const (
	UNIX  = sockaddr.UNIX
	INET  = sockaddr.INET
	INET6 = sockaddr.INET6
)

type Socktype int

const (
	STREAM    Socktype = unix.SOCK_STREAM
	DGRAM     Socktype = unix.SOCK_DGRAM
	SEQPACKET Socktype = unix.SOCK_SEQPACKET
	RAW       Socktype = unix.SOCK_RAW
)

func (t Socktype) String() string {
	switch t {
	case STREAM:
		return "STREAM"
	case DGRAM:
		return "DGRAM"
	case SEQPACKET:
		return "SEQPACKET"
	case RAW:
		return "RAW"
	default:
		return "UNKNOWN"
	}
}

type Protocol int

const (
	NOPROTO Protocol = 0
	TCP     Protocol = unix.IPPROTO_TCP
	UDP     Protocol = unix.IPPROTO_UDP
)

func (p Protocol) String() string {
	switch p {
	case NOPROTO:
		return "NOPROTO"
	case TCP:
		return "TCP"
	case UDP:
		return "UDP"
	default:
		return "UNKNOWN"
	}
}

// SocketFlags are the flags applied to descriptors created by Socket,
// Socketpair and Accept4.
type SocketFlags int

const (
	SOCK_NONBLOCK SocketFlags = unix.SOCK_NONBLOCK
	SOCK_CLOEXEC  SocketFlags = unix.SOCK_CLOEXEC
)

func (f SocketFlags) String() string {
	switch f & (SOCK_NONBLOCK | SOCK_CLOEXEC) {
	case SOCK_NONBLOCK:
		return "SOCK_NONBLOCK"
	case SOCK_CLOEXEC:
		return "SOCK_CLOEXEC"
	case SOCK_NONBLOCK | SOCK_CLOEXEC:
		return "SOCK_CLOEXEC|SOCK_NONBLOCK"
	default:
		return "0"
	}
}

const (
	SHUT_RD   = unix.SHUT_RD
	SHUT_WR   = unix.SHUT_WR
	SHUT_RDWR = unix.SHUT_RDWR
)

func Socket(family Family, socktype Socktype, flags SocketFlags, protocol Protocol) (int, error) {
	return result.Fd(abi.Syscall3(uintptr(sysno.SOCKET), uintptr(family), uintptr(int(socktype)|int(flags)), uintptr(protocol)))
}

func Socketpair(family Family, socktype Socktype, flags SocketFlags, protocol Protocol) ([2]int, error) {
	var fds [2]int32
	r := abi.Syscall4(uintptr(sysno.SOCKETPAIR), uintptr(family), uintptr(int(socktype)|int(flags)), uintptr(protocol), uintptr(unsafe.Pointer(&fds)))
	if err := result.Unit("socketpair", r); err != nil {
		return [2]int{-1, -1}, err
	}
	return [2]int{int(fds[0]), int(fds[1])}, nil
}

func Bind(fd int, addr sockaddr.Addr) error {
	var name sockaddr.Storage
	ptr, namelen, err := sockaddr.Encode(addr, &name)
	if err != nil {
		return err
	}
	return result.Unit("bind", abi.Syscall3(uintptr(sysno.BIND), uintptr(fd), uintptr(ptr), uintptr(namelen)))
}

// Connect connects fd to addr. It is not retried when interrupted: the
// connection continues asynchronously and a second connect would fail with
// EALREADY.
func Connect(fd int, addr sockaddr.Addr) error {
	var name sockaddr.Storage
	ptr, namelen, err := sockaddr.Encode(addr, &name)
	if err != nil {
		return err
	}
	return result.Unit("connect", abi.Syscall3(uintptr(sysno.CONNECT), uintptr(fd), uintptr(ptr), uintptr(namelen)))
}

func Listen(fd, backlog int) error {
	return result.Unit("listen", abi.Syscall2(uintptr(sysno.LISTEN), uintptr(fd), uintptr(backlog)))
}

// Accept returns the next connection queued on the listening socket fd and
// the address of the peer.
func Accept(fd int) (int, sockaddr.Addr, error) {
	return retryEINTR3(func() (int, sockaddr.Addr, error) {
		var name sockaddr.Storage
		namelen := uint32(sockaddr.SizeofStorage)
		conn, err := accept(fd, &name, &namelen)
		if err != nil {
			return -1, nil, err
		}
		return decodePeer(conn, name.Bytes(namelen))
	})
}

// Accept4 is like Accept but applies flags to the new descriptor.
func Accept4(fd int, flags SocketFlags) (int, sockaddr.Addr, error) {
	return retryEINTR3(func() (int, sockaddr.Addr, error) {
		var name sockaddr.Storage
		namelen := uint32(sockaddr.SizeofStorage)
		conn, err := result.Fd(abi.Syscall4(uintptr(sysno.ACCEPT4), uintptr(fd), uintptr(name.Pointer()), uintptr(unsafe.Pointer(&namelen)), uintptr(flags)))
		if err != nil {
			return -1, nil, err
		}
		return decodePeer(conn, name.Bytes(namelen))
	})
}

func decodePeer(conn int, name []byte) (int, sockaddr.Addr, error) {
	addr, err := sockaddr.Decode(name)
	if err != nil {
		_ = Close(conn)
		return -1, nil, err
	}
	return conn, addr, nil
}

func Getsockname(fd int) (sockaddr.Addr, error) {
	var name sockaddr.Storage
	namelen := uint32(sockaddr.SizeofStorage)
	r := abi.Syscall3(uintptr(sysno.GETSOCKNAME), uintptr(fd), uintptr(name.Pointer()), uintptr(unsafe.Pointer(&namelen)))
	if err := result.Unit("getsockname", r); err != nil {
		return nil, err
	}
	return sockaddr.Decode(name.Bytes(namelen))
}

func Getpeername(fd int) (sockaddr.Addr, error) {
	var name sockaddr.Storage
	namelen := uint32(sockaddr.SizeofStorage)
	r := abi.Syscall3(uintptr(sysno.GETPEERNAME), uintptr(fd), uintptr(name.Pointer()), uintptr(unsafe.Pointer(&namelen)))
	if err := result.Unit("getpeername", r); err != nil {
		return nil, err
	}
	return sockaddr.Decode(name.Bytes(namelen))
}

func Shutdown(fd, how int) error {
	return result.Unit("shutdown", abi.Syscall2(uintptr(sysno.SHUTDOWN), uintptr(fd), uintptr(how)))
}

func Setsockopt(fd int, opt sockopt.Option) error {
	b := make([]byte, opt.Len())
	opt.MarshalTo(b)
	r := abi.Syscall5(uintptr(sysno.SETSOCKOPT), uintptr(fd), uintptr(opt.Level()), uintptr(opt.Type()), uintptr(sliceData(b)), uintptr(len(b)))
	return result.Unit("setsockopt", r)
}

// Getsockopt reads the current value of opt from the socket into opt.
func Getsockopt(fd int, opt sockopt.Option) error {
	b := make([]byte, opt.Len())
	optlen := uint32(len(b))
	r := abi.Syscall5(uintptr(sysno.GETSOCKOPT), uintptr(fd), uintptr(opt.Level()), uintptr(opt.Type()), uintptr(sliceData(b)), uintptr(unsafe.Pointer(&optlen)))
	if err := result.Unit("getsockopt", r); err != nil {
		return err
	}
	if int(optlen) < len(b) {
		b = b[:optlen]
	}
	return opt.UnmarshalFrom(b)
}
