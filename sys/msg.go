package sys

import (
	"sort"
	"strings"
	"unsafe"

	"github.com/stealthrocket/sysabi/abi"
	"github.com/stealthrocket/sysabi/cmsg"
	"github.com/stealthrocket/sysabi/result"
	"github.com/stealthrocket/sysabi/sockaddr"
	"github.com/stealthrocket/sysabi/sysno"
	"golang.org/x/sys/unix"
)

// MsgFlags is a bitset of flags passed to and returned by Sendmsg and Recvmsg.
type MsgFlags int

const (
	MSG_CONFIRM      MsgFlags = unix.MSG_CONFIRM
	MSG_DONTROUTE    MsgFlags = unix.MSG_DONTROUTE
	MSG_DONTWAIT     MsgFlags = unix.MSG_DONTWAIT
	MSG_EOR          MsgFlags = unix.MSG_EOR
	MSG_MORE         MsgFlags = unix.MSG_MORE
	MSG_NOSIGNAL     MsgFlags = unix.MSG_NOSIGNAL
	MSG_OOB          MsgFlags = unix.MSG_OOB
	MSG_CMSG_CLOEXEC MsgFlags = unix.MSG_CMSG_CLOEXEC
	MSG_ERRQUEUE     MsgFlags = unix.MSG_ERRQUEUE
	MSG_PEEK         MsgFlags = unix.MSG_PEEK
	MSG_TRUNC        MsgFlags = unix.MSG_TRUNC
	MSG_CTRUNC       MsgFlags = unix.MSG_CTRUNC
	MSG_WAITALL      MsgFlags = unix.MSG_WAITALL
)

// Has reports whether all the flags of f are set in msgFlags.
func (msgFlags MsgFlags) Has(f MsgFlags) bool {
	return (msgFlags & f) == f
}

func (msgFlags MsgFlags) String() string {
	var names []string

	for _, f := range [...]struct {
		flag MsgFlags
		name string
	}{
		{MSG_CONFIRM, "MSG_CONFIRM"},
		{MSG_DONTROUTE, "MSG_DONTROUTE"},
		{MSG_DONTWAIT, "MSG_DONTWAIT"},
		{MSG_EOR, "MSG_EOR"},
		{MSG_MORE, "MSG_MORE"},
		{MSG_NOSIGNAL, "MSG_NOSIGNAL"},
		{MSG_OOB, "MSG_OOB"},
		{MSG_CMSG_CLOEXEC, "MSG_CMSG_CLOEXEC"},
		{MSG_ERRQUEUE, "MSG_ERRQUEUE"},
		{MSG_PEEK, "MSG_PEEK"},
		{MSG_TRUNC, "MSG_TRUNC"},
		{MSG_CTRUNC, "MSG_CTRUNC"},
		{MSG_WAITALL, "MSG_WAITALL"},
	} {
		if (msgFlags & f.flag) != 0 {
			names = append(names, f.name)
		}
	}

	if len(names) == 0 {
		return "0"
	}

	sort.Strings(names)
	return strings.Join(names, "|")
}

// Sendmsg sends b to the address to, which may be nil on connected sockets,
// with the ancillary records encoded from oob.
func Sendmsg(fd int, to sockaddr.Addr, b []byte, oob []cmsg.Message, flags MsgFlags) (int, error) {
	var name sockaddr.Storage
	var msg unix.Msghdr

	if to != nil {
		ptr, namelen, err := sockaddr.Encode(to, &name)
		if err != nil {
			return 0, err
		}
		msg.Name = (*byte)(ptr)
		msg.Namelen = namelen
	}

	control, err := cmsg.Encode(oob...)
	if err != nil {
		return 0, err
	}
	if control.Len() > 0 {
		msg.Control = (*byte)(control.Pointer())
		msg.SetControllen(control.Len())
	}

	var iov unix.Iovec
	iov.Base = (*byte)(sliceData(b))
	iov.SetLen(len(b))
	msg.Iov = &iov
	msg.SetIovlen(1)

	return retryEINTR(func() (int, error) {
		return result.Count(abi.Syscall3(uintptr(sysno.SENDMSG), uintptr(fd), uintptr(unsafe.Pointer(&msg)), uintptr(flags)))
	})
}

// Recvmsg receives a message into b. The ancillary records received with the
// message are decoded into the first element of oob with a matching level and
// type; records matching none of them are discarded.
//
// The returned address is nil when the kernel did not report one, which is
// the case on TCP sockets. The returned flags are those set by
// the kernel in msg_flags (e.g. MSG_TRUNC or MSG_CTRUNC).
func Recvmsg(fd int, b []byte, oob []cmsg.Message, flags MsgFlags) (n int, from sockaddr.Addr, rflags MsgFlags, err error) {
	var name sockaddr.Storage
	var control cmsg.Buffer
	var msg unix.Msghdr

	var iov unix.Iovec
	iov.Base = (*byte)(sliceData(b))
	iov.SetLen(len(b))

	n, err = retryEINTR(func() (int, error) {
		msg = unix.Msghdr{
			Name:    (*byte)(name.Pointer()),
			Namelen: sockaddr.SizeofStorage,
			Iov:     &iov,
		}
		msg.SetIovlen(1)
		if len(oob) > 0 {
			msg.Control = (*byte)(control.Pointer())
			msg.SetControllen(cmsg.Capacity)
		}
		return result.Count(abi.Syscall3(uintptr(sysno.RECVMSG), uintptr(fd), uintptr(unsafe.Pointer(&msg)), uintptr(flags)))
	})
	if err != nil {
		return 0, nil, 0, err
	}

	rflags = MsgFlags(msg.Flags)
	from, err = sockaddr.Decode(name.Bytes(msg.Namelen))
	if err != nil {
		return n, nil, rflags, err
	}
	if len(oob) > 0 {
		control.SetLen(int(msg.Controllen))
		err = cmsg.Decode(control.Bytes(), oob...)
	}
	return n, from, rflags, err
}

// Sendto sends b to the address to without ancillary data.
func Sendto(fd int, b []byte, flags MsgFlags, to sockaddr.Addr) (int, error) {
	var name sockaddr.Storage
	var ptr unsafe.Pointer
	var namelen uint32

	if to != nil {
		var err error
		if ptr, namelen, err = sockaddr.Encode(to, &name); err != nil {
			return 0, err
		}
	}

	return retryEINTR(func() (int, error) {
		return result.Count(abi.Syscall6(uintptr(sysno.SENDTO), uintptr(fd), uintptr(sliceData(b)), uintptr(len(b)), uintptr(flags), uintptr(ptr), uintptr(namelen)))
	})
}

// Recvfrom receives a message into b and returns the address of the sender.
func Recvfrom(fd int, b []byte, flags MsgFlags) (int, sockaddr.Addr, error) {
	return retryEINTR3(func() (int, sockaddr.Addr, error) {
		var name sockaddr.Storage
		namelen := uint32(sockaddr.SizeofStorage)
		n, err := result.Count(abi.Syscall6(uintptr(sysno.RECVFROM), uintptr(fd), uintptr(sliceData(b)), uintptr(len(b)), uintptr(flags), uintptr(name.Pointer()), uintptr(unsafe.Pointer(&namelen))))
		if err != nil {
			return 0, nil, err
		}
		from, err := sockaddr.Decode(name.Bytes(namelen))
		return n, from, err
	})
}
