// Package sockaddr converts between typed socket addresses and the binary
// layouts the kernel reads and writes (sockaddr_un, sockaddr_in and
// sockaddr_in6).
package sockaddr

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

type Family uint16

const (
	UNSPEC Family = unix.AF_UNSPEC
	UNIX   Family = unix.AF_UNIX
	INET   Family = unix.AF_INET
	INET6  Family = unix.AF_INET6
)

func (f Family) String() string {
	switch f {
	case UNIX:
		return "UNIX"
	case INET:
		return "INET"
	case INET6:
		return "INET6"
	case UNSPEC:
		return "UNSPEC"
	default:
		return "AF_" + strconv.Itoa(int(f))
	}
}

const (
	SizeofStorage = 128
	SizeofInet4   = 16
	SizeofInet6   = 28
	SizeofUnix    = 110

	// MaxPathLen is the size of the sun_path field of sockaddr_un. Filesystem
	// paths must be shorter to leave room for the terminating NUL; abstract
	// names have no terminator and may use all MaxPathLen bytes, the leading
	// '@' included.
	MaxPathLen = 108

	sizeofFamily = 2
)

var (
	ErrInteriorNull = errors.New("sockaddr: unix socket path contains a NUL byte")
	ErrPathTooLong  = errors.New("sockaddr: unix socket path is too long")
	ErrShortAddress = errors.New("sockaddr: address is shorter than its family requires")
)

// UnknownFamilyError is returned by Decode when the kernel reports an address
// of a family the package does not know how to represent.
type UnknownFamilyError struct {
	Family Family
}

func (e *UnknownFamilyError) Error() string {
	return fmt.Sprintf("sockaddr: unknown address family %d", uint16(e.Family))
}

// Addr is a socket address of one of the supported families: Unix, Inet4 or
// Inet6. Addr values are comparable.
type Addr interface {
	Family() Family
	String() string
	encode(*Storage) (uint32, error)
}

// Unix is a sockaddr_un. A Path starting with '@' names an address in the
// abstract namespace, the '@' standing for the leading NUL byte of sun_path;
// an empty Path is the unnamed address.
//
// Encoding fails with ErrPathTooLong for filesystem paths of MaxPathLen bytes
// or more, and for abstract names longer than MaxPathLen. A filesystem path
// whose first character is '@' cannot be written as is and must be prefixed
// with "./", as with net.UnixAddr.
type Unix struct {
	Path string
}

func (a Unix) Family() Family { return UNIX }

func (a Unix) String() string { return a.Path }

// Abstract reports whether a is in the abstract namespace.
func (a Unix) Abstract() bool {
	return strings.HasPrefix(a.Path, "@")
}

func (a Unix) encode(s *Storage) (uint32, error) {
	if strings.IndexByte(a.Path, 0) >= 0 {
		return 0, ErrInteriorNull
	}
	n := len(a.Path)
	if a.Abstract() {
		if n > MaxPathLen {
			return 0, ErrPathTooLong
		}
	} else if n >= MaxPathLen {
		return 0, ErrPathTooLong
	}
	s.clear(sizeofFamily + MaxPathLen)
	s.putFamily(UNIX)
	path := s.b[sizeofFamily : sizeofFamily+MaxPathLen]
	copy(path, a.Path)
	switch {
	case n == 0:
		return sizeofFamily, nil
	case a.Abstract():
		path[0] = 0
		return uint32(sizeofFamily + n), nil
	default:
		return uint32(sizeofFamily + n + 1), nil
	}
}

// Inet4 is a sockaddr_in.
type Inet4 struct {
	Addr [4]byte
	Port uint16
}

func (a Inet4) Family() Family { return INET }

func (a Inet4) String() string { return a.AddrPort().String() }

func (a Inet4) AddrPort() netip.AddrPort {
	return netip.AddrPortFrom(netip.AddrFrom4(a.Addr), a.Port)
}

func (a Inet4) encode(s *Storage) (uint32, error) {
	s.clear(SizeofInet4)
	s.putFamily(INET)
	binary.BigEndian.PutUint16(s.b[2:4], a.Port)
	*(*[4]byte)(s.b[4:8]) = a.Addr
	return SizeofInet4, nil
}

// Inet6 is a sockaddr_in6.
type Inet6 struct {
	Addr     [16]byte
	Port     uint16
	FlowInfo uint32
	ScopeID  uint32
}

func (a Inet6) Family() Family { return INET6 }

func (a Inet6) String() string { return a.AddrPort().String() }

// AddrPort returns a as a netip.AddrPort. A non-zero ScopeID is carried as
// the numeric zone of the address; FlowInfo has no representation and is
// dropped.
func (a Inet6) AddrPort() netip.AddrPort {
	addr := netip.AddrFrom16(a.Addr)
	if a.ScopeID != 0 {
		addr = addr.WithZone(strconv.FormatUint(uint64(a.ScopeID), 10))
	}
	return netip.AddrPortFrom(addr, a.Port)
}

func (a Inet6) encode(s *Storage) (uint32, error) {
	s.clear(SizeofInet6)
	s.putFamily(INET6)
	binary.BigEndian.PutUint16(s.b[2:4], a.Port)
	binary.BigEndian.PutUint32(s.b[4:8], a.FlowInfo)
	*(*[16]byte)(s.b[8:24]) = a.Addr
	binary.NativeEndian.PutUint32(s.b[24:28], a.ScopeID)
	return SizeofInet6, nil
}

// Storage is a sockaddr_storage: a buffer large and aligned enough to hold
// an address of any family.
type Storage struct {
	_ [0]uintptr
	b [SizeofStorage]byte
}

func (s *Storage) Pointer() unsafe.Pointer { return unsafe.Pointer(&s.b) }

// Bytes returns the first n bytes of the storage, which is how the buffer
// must be sliced with the length returned by the kernel before decoding.
func (s *Storage) Bytes(n uint32) []byte {
	if n > SizeofStorage {
		n = SizeofStorage
	}
	return s.b[:n]
}

func (s *Storage) clear(n int) {
	b := s.b[:n]
	for i := range b {
		b[i] = 0
	}
}

func (s *Storage) putFamily(f Family) {
	binary.NativeEndian.PutUint16(s.b[:2], uint16(f))
}

// Encode writes addr into s and returns the pointer and length to pass to the
// kernel.
func Encode(addr Addr, s *Storage) (unsafe.Pointer, uint32, error) {
	n, err := addr.encode(s)
	if err != nil {
		return nil, 0, err
	}
	return s.Pointer(), n, nil
}

// Decode parses an address written by the kernel. The length of b must be the
// address length reported by the kernel; a zero length means the kernel did
// not produce an address, and Decode returns a nil Addr.
func Decode(b []byte) (Addr, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b) < sizeofFamily {
		return nil, ErrShortAddress
	}
	switch f := Family(binary.NativeEndian.Uint16(b)); f {
	case UNIX:
		return decodeUnix(b), nil
	case INET:
		if len(b) < SizeofInet4 {
			return nil, ErrShortAddress
		}
		return Inet4{
			Port: binary.BigEndian.Uint16(b[2:4]),
			Addr: ([4]byte)(b[4:8]),
		}, nil
	case INET6:
		if len(b) < SizeofInet6 {
			return nil, ErrShortAddress
		}
		return Inet6{
			Port:     binary.BigEndian.Uint16(b[2:4]),
			FlowInfo: binary.BigEndian.Uint32(b[4:8]),
			Addr:     ([16]byte)(b[8:24]),
			ScopeID:  binary.NativeEndian.Uint32(b[24:28]),
		}, nil
	default:
		return nil, &UnknownFamilyError{Family: f}
	}
}

func decodeUnix(b []byte) Unix {
	path := b[sizeofFamily:]
	if len(path) > MaxPathLen {
		path = path[:MaxPathLen]
	}
	switch {
	case len(path) == 0:
		return Unix{}
	case path[0] == 0:
		return Unix{Path: "@" + string(path[1:])}
	default:
		if i := indexNull(path); i >= 0 {
			path = path[:i]
		}
		return Unix{Path: string(path)}
	}
}

func indexNull(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return -1
}
