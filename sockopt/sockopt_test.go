package sockopt_test

import (
	"testing"
	"time"
	"unsafe"

	"github.com/stealthrocket/sysabi/cmsg"
	"github.com/stealthrocket/sysabi/internal/assert"
	"github.com/stealthrocket/sysabi/sockaddr"
	"github.com/stealthrocket/sysabi/sockopt"
	"golang.org/x/sys/unix"
)

func TestTrafficClass(t *testing.T) {
	tc := sockopt.TrafficClass(0).WithECN(sockopt.ECT0).WithDSCP(46)
	assert.Equal(t, tc, 46<<2|0b10)
	assert.Equal(t, tc.ECN(), sockopt.ECT0)
	assert.Equal(t, tc.DSCP(), 46)
	assert.Equal(t, tc.String(), "dscp=46,ecn=ECT(0)")

	tc = tc.WithECN(sockopt.CE)
	assert.Equal(t, tc.ECN(), sockopt.CE)
	assert.Equal(t, tc.DSCP(), 46)

	tc = tc.WithDSCP(0xff)
	assert.Equal(t, tc.DSCP(), 0b111111)
	assert.Equal(t, tc.ECN(), sockopt.CE)

	assert.Equal(t, sockopt.TOS(tc).Key, sockopt.IPv4TOS)
	assert.Equal(t, sockopt.TClass(tc).TrafficClass(), tc)
}

func TestIntPayload(t *testing.T) {
	o := sockopt.NewInt(sockopt.IPv4TOS, 0)

	assert.OK(t, o.UnmarshalFrom([]byte{0xb8}))
	assert.Equal(t, o.Value, 0xb8)

	b := make([]byte, o.Len())
	sockopt.NewInt(sockopt.IPv4TTL, 64).MarshalTo(b)
	assert.OK(t, o.UnmarshalFrom(b))
	assert.Equal(t, o.Value, 64)

	assert.Error(t, o.UnmarshalFrom([]byte{1, 2, 3}), cmsg.ErrMalformed)

	assert.Equal(t, sockopt.Bool(sockopt.IPv6RecvHopLimit, true).Value, 1)
	assert.Equal(t, sockopt.Bool(sockopt.IPv6RecvHopLimit, false).Bool(), false)
	assert.Equal(t, sockopt.MTUDiscover(sockopt.IPv4MTUDiscover, sockopt.PMTUDiscProbe).Value, unix.IP_PMTUDISC_PROBE)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, sockopt.IPv6HopLimit.String(), "IPV6_HOPLIMIT")
	assert.Equal(t, sockopt.NewInt(sockopt.IPv4TTL, 3).String(), "IP_TTL=3")
	assert.Equal(t, sockopt.Key{Level: 1000, Name: 1}.String(), "Key(1000,1)")
	assert.Equal(t, sockopt.PMTUDiscWant.String(), "want")
}

func TestRightsMatchesUnix(t *testing.T) {
	buf, err := cmsg.Encode(&sockopt.Rights{FDs: []int32{0, 1, 2}})
	assert.OK(t, err)
	assert.Bytes(t, buf.Bytes(), unix.UnixRights(0, 1, 2))

	var rights sockopt.Rights
	assert.OK(t, cmsg.Decode(unix.UnixRights(7, 8), &rights))
	assert.EqualAll(t, rights.FDs, []int32{7, 8})
}

func TestExtendedError(t *testing.T) {
	assert.Equal(t, sockopt.SizeofExtendedErr, int(unsafe.Sizeof(unix.SockExtendedErr{})))

	offender := sockaddr.Inet4{Addr: [4]byte{192, 0, 2, 1}}
	var s sockaddr.Storage
	_, n, err := sockaddr.Encode(offender, &s)
	assert.OK(t, err)

	ee := unix.SockExtendedErr{
		Errno:  uint32(unix.ECONNREFUSED),
		Origin: uint8(sockopt.OriginICMP),
		Type:   3,
		Code:   3,
	}
	payload := append((*[sockopt.SizeofExtendedErr]byte)(unsafe.Pointer(&ee))[:], s.Bytes(n)...)

	rec := &sockopt.ExtendedError{
		Key:      sockopt.IPv4RecvErr,
		Errno:    unix.ECONNREFUSED,
		Origin:   sockopt.OriginICMP,
		ICMPType: 3,
		ICMPCode: 3,
		Offender: offender,
	}
	assert.Equal(t, rec.Len(), len(payload))

	buf, err := cmsg.Encode(rec)
	assert.OK(t, err)

	got := sockopt.IPv4ExtendedError()
	assert.OK(t, cmsg.Decode(buf.Bytes(), got))
	assert.DeepEqual(t, got, rec)
	assert.Error(t, got, unix.ECONNREFUSED)

	dst := sockopt.IPv4ExtendedError()
	assert.OK(t, dst.UnmarshalFrom(payload))
	assert.DeepEqual(t, dst, rec)

	local := sockopt.IPv6ExtendedError()
	assert.OK(t, local.UnmarshalFrom(make([]byte, sockopt.SizeofExtendedErr+sockaddr.SizeofInet6)))
	assert.Equal(t, local.Offender, sockaddr.Addr(nil))

	assert.Error(t, local.UnmarshalFrom(payload[:8]), cmsg.ErrMalformed)
}

func TestTimeoutMatchesTimeval(t *testing.T) {
	timeout := sockopt.RecvTimeout(1500 * time.Millisecond)
	b := make([]byte, timeout.Len())
	timeout.MarshalTo(b)

	tv := unix.NsecToTimeval(int64(1500 * time.Millisecond))
	want := unsafe.Slice((*byte)(unsafe.Pointer(&tv)), unsafe.Sizeof(tv))
	assert.Bytes(t, b, want)

	got := sockopt.SendTimeout(0)
	assert.OK(t, got.UnmarshalFrom(b))
	assert.Equal(t, got.Duration, 1500*time.Millisecond)
	assert.Equal(t, got.Key, sockopt.SocketSndTimeo)
	assert.Equal(t, timeout.String(), "SO_RCVTIMEO=1.5s")

	assert.Error(t, got.UnmarshalFrom(b[:3]), cmsg.ErrMalformed)
}

func TestFlowInfoKeys(t *testing.T) {
	assert.Equal(t, sockopt.IPv6FlowInfo, sockopt.Key{Level: unix.IPPROTO_IPV6, Name: 11})
	assert.Equal(t, sockopt.IPv6FlowInfoSend, sockopt.Key{Level: unix.IPPROTO_IPV6, Name: 33})
	assert.Equal(t, sockopt.IPv6FlowInfo.String(), "IPV6_FLOWINFO")
}
