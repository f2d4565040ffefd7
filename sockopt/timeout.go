package sockopt

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/stealthrocket/sysabi/abi"
	"github.com/stealthrocket/sysabi/cmsg"
	"golang.org/x/sys/unix"
)

var (
	SocketRcvTimeo = Key{unix.SOL_SOCKET, unix.SO_RCVTIMEO}
	SocketSndTimeo = Key{unix.SOL_SOCKET, unix.SO_SNDTIMEO}
)

// Timeout is an SO_RCVTIMEO or SO_SNDTIMEO value, a struct timeval made of
// two machine words. A zero Duration blocks forever. Blocking calls that time
// out fail with EAGAIN.
type Timeout struct {
	Key      Key
	Duration time.Duration
}

func RecvTimeout(d time.Duration) *Timeout { return &Timeout{Key: SocketRcvTimeo, Duration: d} }

func SendTimeout(d time.Duration) *Timeout { return &Timeout{Key: SocketSndTimeo, Duration: d} }

func (o *Timeout) Level() int32 { return o.Key.Level }

func (o *Timeout) Type() int32 { return o.Key.Name }

func (o *Timeout) Len() int { return 2 * abi.WordSize }

func (o *Timeout) String() string {
	return fmt.Sprintf("%s=%s", o.Key, o.Duration)
}

func (o *Timeout) MarshalTo(b []byte) {
	tv := unix.NsecToTimeval(o.Duration.Nanoseconds())
	putWord(b[:abi.WordSize], int64(tv.Sec))
	putWord(b[abi.WordSize:], int64(tv.Usec))
}

func (o *Timeout) UnmarshalFrom(b []byte) error {
	if len(b) != o.Len() {
		return fmt.Errorf("%s: payload of %d bytes: %w", o.Key, len(b), cmsg.ErrMalformed)
	}
	sec, usec := word(b[:abi.WordSize]), word(b[abi.WordSize:])
	o.Duration = time.Duration(sec)*time.Second + time.Duration(usec)*time.Microsecond
	return nil
}

func putWord(b []byte, v int64) {
	if len(b) == 4 {
		binary.NativeEndian.PutUint32(b, uint32(v))
	} else {
		binary.NativeEndian.PutUint64(b, uint64(v))
	}
}

func word(b []byte) int64 {
	if len(b) == 4 {
		return int64(int32(binary.NativeEndian.Uint32(b)))
	}
	return int64(binary.NativeEndian.Uint64(b))
}
