package sockopt

import (
	"encoding/binary"
	"fmt"

	"github.com/stealthrocket/sysabi/cmsg"
)

// Rights is an SCM_RIGHTS record transferring file descriptors over a unix
// socket.
type Rights struct {
	FDs []int32
}

func (r *Rights) Level() int32 { return SocketRights.Level }

func (r *Rights) Type() int32 { return SocketRights.Name }

func (r *Rights) Len() int { return 4 * len(r.FDs) }

func (r *Rights) MarshalTo(b []byte) {
	for i, fd := range r.FDs {
		binary.NativeEndian.PutUint32(b[4*i:], uint32(fd))
	}
}

func (r *Rights) UnmarshalFrom(b []byte) error {
	if len(b)%4 != 0 {
		return fmt.Errorf("%s: payload of %d bytes: %w", SocketRights, len(b), cmsg.ErrMalformed)
	}
	r.FDs = r.FDs[:0]
	for i := 0; i < len(b); i += 4 {
		r.FDs = append(r.FDs, int32(binary.NativeEndian.Uint32(b[i:])))
	}
	return nil
}
