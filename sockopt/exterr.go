package sockopt

import (
	"encoding/binary"
	"fmt"

	"github.com/stealthrocket/sysabi/cmsg"
	"github.com/stealthrocket/sysabi/sockaddr"
	"golang.org/x/sys/unix"
)

// SizeofExtendedErr is the size of struct sock_extended_err.
const SizeofExtendedErr = 16

type Origin uint8

const (
	OriginNone  Origin = 0
	OriginLocal Origin = 1
	OriginICMP  Origin = 2
	OriginICMP6 Origin = 3
)

func (o Origin) String() string {
	switch o {
	case OriginLocal:
		return "local"
	case OriginICMP:
		return "icmp"
	case OriginICMP6:
		return "icmp6"
	default:
		return "none"
	}
}

// ExtendedError is the ancillary record the kernel queues on sockets with
// IP_RECVERR or IPV6_RECVERR enabled. It is read with the MSG_ERRQUEUE flag.
type ExtendedError struct {
	Key      Key
	Errno    unix.Errno
	Origin   Origin
	ICMPType uint8
	ICMPCode uint8
	Info     uint32
	Data     uint32
	// Offender is the address of the node that reported the error, nil if
	// the kernel did not include one.
	Offender sockaddr.Addr
}

// IPv4ExtendedError and IPv6ExtendedError return destinations for the
// extended errors of each protocol.
func IPv4ExtendedError() *ExtendedError { return &ExtendedError{Key: IPv4RecvErr} }

func IPv6ExtendedError() *ExtendedError { return &ExtendedError{Key: IPv6RecvErr} }

func (e *ExtendedError) Level() int32 { return e.Key.Level }

func (e *ExtendedError) Type() int32 { return e.Key.Name }

func (e *ExtendedError) Len() int {
	if e.Offender == nil {
		return SizeofExtendedErr
	}
	var s sockaddr.Storage
	_, n, err := sockaddr.Encode(e.Offender, &s)
	if err != nil {
		return SizeofExtendedErr
	}
	return SizeofExtendedErr + int(n)
}

func (e *ExtendedError) MarshalTo(b []byte) {
	binary.NativeEndian.PutUint32(b[0:4], uint32(e.Errno))
	b[4] = uint8(e.Origin)
	b[5] = e.ICMPType
	b[6] = e.ICMPCode
	b[7] = 0
	binary.NativeEndian.PutUint32(b[8:12], e.Info)
	binary.NativeEndian.PutUint32(b[12:16], e.Data)
	if e.Offender != nil {
		var s sockaddr.Storage
		if _, n, err := sockaddr.Encode(e.Offender, &s); err == nil {
			copy(b[SizeofExtendedErr:], s.Bytes(n))
		}
	}
}

func (e *ExtendedError) UnmarshalFrom(b []byte) error {
	if len(b) < SizeofExtendedErr {
		return fmt.Errorf("%s: payload of %d bytes: %w", e.Key, len(b), cmsg.ErrMalformed)
	}
	e.Errno = unix.Errno(binary.NativeEndian.Uint32(b[0:4]))
	e.Origin = Origin(b[4])
	e.ICMPType = b[5]
	e.ICMPCode = b[6]
	e.Info = binary.NativeEndian.Uint32(b[8:12])
	e.Data = binary.NativeEndian.Uint32(b[12:16])
	e.Offender = nil

	offender := b[SizeofExtendedErr:]
	if len(offender) < 2 || binary.NativeEndian.Uint16(offender) == unix.AF_UNSPEC {
		return nil
	}
	addr, err := sockaddr.Decode(offender)
	if err != nil {
		return err
	}
	e.Offender = addr
	return nil
}

func (e *ExtendedError) Error() string {
	return fmt.Sprintf("%s (origin=%s type=%d code=%d offender=%v)", e.Errno, e.Origin, e.ICMPType, e.ICMPCode, e.Offender)
}

func (e *ExtendedError) Unwrap() error { return e.Errno }
