// Package sockopt declares typed socket options.
//
// An option is identified by a (level, name) Key and carries an integer or
// structured payload. Option values serve both as arguments to
// setsockopt/getsockopt and as ancillary records sent and received with
// sendmsg/recvmsg, where the option name is the record type.
package sockopt

import (
	"encoding/binary"
	"fmt"

	"github.com/stealthrocket/sysabi/cmsg"
	"golang.org/x/sys/unix"
)

// Option is the interface implemented by socket option values.
type Option = cmsg.Message

type Key struct {
	Level int32
	Name  int32
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d,%d)", k.Level, k.Name)
}

// Option names from include/uapi/linux/in6.h missing from x/sys/unix.
const (
	ipv6FlowInfo     = 11
	ipv6FlowInfoSend = 33
)

var (
	IPv4TOS         = Key{unix.IPPROTO_IP, unix.IP_TOS}
	IPv4RecvTOS     = Key{unix.IPPROTO_IP, unix.IP_RECVTOS}
	IPv4TTL         = Key{unix.IPPROTO_IP, unix.IP_TTL}
	IPv4RecvTTL     = Key{unix.IPPROTO_IP, unix.IP_RECVTTL}
	IPv4RecvErr     = Key{unix.IPPROTO_IP, unix.IP_RECVERR}
	IPv4MTUDiscover = Key{unix.IPPROTO_IP, unix.IP_MTU_DISCOVER}
	IPv4MTU         = Key{unix.IPPROTO_IP, unix.IP_MTU}

	IPv6TClass        = Key{unix.IPPROTO_IPV6, unix.IPV6_TCLASS}
	IPv6RecvTClass    = Key{unix.IPPROTO_IPV6, unix.IPV6_RECVTCLASS}
	IPv6HopLimit      = Key{unix.IPPROTO_IPV6, unix.IPV6_HOPLIMIT}
	IPv6RecvHopLimit  = Key{unix.IPPROTO_IPV6, unix.IPV6_RECVHOPLIMIT}
	IPv6UnicastHops   = Key{unix.IPPROTO_IPV6, unix.IPV6_UNICAST_HOPS}
	IPv6AutoFlowLabel = Key{unix.IPPROTO_IPV6, unix.IPV6_AUTOFLOWLABEL}
	IPv6FlowInfo      = Key{unix.IPPROTO_IPV6, ipv6FlowInfo}
	IPv6FlowInfoSend  = Key{unix.IPPROTO_IPV6, ipv6FlowInfoSend}
	IPv6RecvErr       = Key{unix.IPPROTO_IPV6, unix.IPV6_RECVERR}
	IPv6MTUDiscover   = Key{unix.IPPROTO_IPV6, unix.IPV6_MTU_DISCOVER}
	IPv6MTU           = Key{unix.IPPROTO_IPV6, unix.IPV6_MTU}

	SocketReuseAddr = Key{unix.SOL_SOCKET, unix.SO_REUSEADDR}
	SocketRcvBuf    = Key{unix.SOL_SOCKET, unix.SO_RCVBUF}
	SocketSndBuf    = Key{unix.SOL_SOCKET, unix.SO_SNDBUF}
	SocketRights    = Key{unix.SOL_SOCKET, unix.SCM_RIGHTS}
)

var keyNames = map[Key]string{
	IPv4TOS:           "IP_TOS",
	IPv4RecvTOS:       "IP_RECVTOS",
	IPv4TTL:           "IP_TTL",
	IPv4RecvTTL:       "IP_RECVTTL",
	IPv4RecvErr:       "IP_RECVERR",
	IPv4MTUDiscover:   "IP_MTU_DISCOVER",
	IPv4MTU:           "IP_MTU",
	IPv6TClass:        "IPV6_TCLASS",
	IPv6RecvTClass:    "IPV6_RECVTCLASS",
	IPv6HopLimit:      "IPV6_HOPLIMIT",
	IPv6RecvHopLimit:  "IPV6_RECVHOPLIMIT",
	IPv6UnicastHops:   "IPV6_UNICAST_HOPS",
	IPv6AutoFlowLabel: "IPV6_AUTOFLOWLABEL",
	IPv6FlowInfo:      "IPV6_FLOWINFO",
	IPv6FlowInfoSend:  "IPV6_FLOWINFO_SEND",
	IPv6RecvErr:       "IPV6_RECVERR",
	IPv6MTUDiscover:   "IPV6_MTU_DISCOVER",
	IPv6MTU:           "IPV6_MTU",
	SocketReuseAddr:   "SO_REUSEADDR",
	SocketRcvBuf:      "SO_RCVBUF",
	SocketSndBuf:      "SO_SNDBUF",
	SocketRights:      "SCM_RIGHTS",
	SocketRcvTimeo:    "SO_RCVTIMEO",
	SocketSndTimeo:    "SO_SNDTIMEO",
}

// Int is an option with a C int payload.
type Int struct {
	Key   Key
	Value int32
}

func NewInt(key Key, value int32) *Int {
	return &Int{Key: key, Value: value}
}

// Bool returns an Int option holding 1 if on is true, 0 otherwise.
func Bool(key Key, on bool) *Int {
	o := &Int{Key: key}
	if on {
		o.Value = 1
	}
	return o
}

func (o *Int) Level() int32 { return o.Key.Level }

func (o *Int) Type() int32 { return o.Key.Name }

func (o *Int) Len() int { return 4 }

func (o *Int) Bool() bool { return o.Value != 0 }

func (o *Int) String() string {
	return fmt.Sprintf("%s=%d", o.Key, o.Value)
}

func (o *Int) MarshalTo(b []byte) {
	binary.NativeEndian.PutUint32(b, uint32(o.Value))
}

// UnmarshalFrom also accepts a single byte payload, which is how the kernel
// reports IP_TOS in ancillary data.
func (o *Int) UnmarshalFrom(b []byte) error {
	switch len(b) {
	case 1:
		o.Value = int32(b[0])
	case 4:
		o.Value = int32(binary.NativeEndian.Uint32(b))
	default:
		return fmt.Errorf("%s: payload of %d bytes: %w", o.Key, len(b), cmsg.ErrMalformed)
	}
	return nil
}

// PMTUDisc is the path MTU discovery mode of IP_MTU_DISCOVER and
// IPV6_MTU_DISCOVER.
type PMTUDisc int32

const (
	PMTUDiscDont  PMTUDisc = unix.IP_PMTUDISC_DONT
	PMTUDiscWant  PMTUDisc = unix.IP_PMTUDISC_WANT
	PMTUDiscDo    PMTUDisc = unix.IP_PMTUDISC_DO
	PMTUDiscProbe PMTUDisc = unix.IP_PMTUDISC_PROBE
)

func (d PMTUDisc) String() string {
	switch d {
	case PMTUDiscDont:
		return "dont"
	case PMTUDiscWant:
		return "want"
	case PMTUDiscDo:
		return "do"
	case PMTUDiscProbe:
		return "probe"
	default:
		return fmt.Sprintf("PMTUDisc(%d)", int32(d))
	}
}

func MTUDiscover(key Key, mode PMTUDisc) *Int {
	return &Int{Key: key, Value: int32(mode)}
}
