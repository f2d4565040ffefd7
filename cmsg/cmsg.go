// Package cmsg encodes and decodes the ancillary data (control messages)
// exchanged with the kernel through the msg_control field of sendmsg and
// recvmsg.
//
// Each record is a cmsghdr followed by its payload, padded so the next header
// starts on a word boundary:
//
//	+---------+-------+------+---------+-----+---------+-----+
//	| len     | level | type | payload | pad | len ... | pad |
//	+---------+-------+------+---------+-----+---------+-----+
//	 uintptr   int32   int32
package cmsg

import (
	"encoding/binary"
	"errors"
	"unsafe"

	"github.com/stealthrocket/sysabi/abi"
)

const (
	// SizeofHeader is the size of a cmsghdr.
	SizeofHeader = abi.WordSize + 8

	// Capacity is the size of the control buffer used for sends and
	// receives. It fits a handful of small options (hop limits, traffic
	// classes, a few descriptors, an extended error with its offender).
	Capacity = 255
)

var (
	ErrCapacity  = errors.New("cmsg: control buffer capacity exceeded")
	ErrMalformed = errors.New("cmsg: malformed control message")
)

// Message is an ancillary option. The same value is used to produce a record
// when sending and to receive the payload of a matching record when decoding.
type Message interface {
	Level() int32
	Type() int32
	// Len is the size of the payload written by MarshalTo.
	Len() int
	MarshalTo(b []byte)
	UnmarshalFrom(b []byte) error
}

// Align rounds n up to the next multiple of the word size.
func Align(n int) int {
	return (n + abi.WordSize - 1) &^ (abi.WordSize - 1)
}

// Space returns the number of bytes a record with a payload of n bytes
// occupies in a control buffer, padding included (CMSG_SPACE).
func Space(n int) int {
	return Align(SizeofHeader) + Align(n)
}

// Len returns the value of the len field of a record with a payload of n
// bytes (CMSG_LEN).
func Len(n int) int {
	return Align(SizeofHeader) + n
}

// Buffer is a control buffer aligned for the largest header field.
type Buffer struct {
	_ [0]uint64
	b [Capacity]byte
	n int
}

// Encode appends msgs to a new buffer, in order.
func Encode(msgs ...Message) (*Buffer, error) {
	buf := new(Buffer)
	for _, msg := range msgs {
		if err := buf.Append(msg); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// Append adds a record for msg at the end of the buffer. The buffer is left
// unchanged if the record does not fit.
func (buf *Buffer) Append(msg Message) error {
	size := msg.Len()
	if size < 0 || buf.n+Space(size) > Capacity {
		return ErrCapacity
	}
	rec := buf.b[buf.n : buf.n+Space(size)]
	for i := range rec {
		rec[i] = 0
	}
	putHeader(rec, Len(size), msg.Level(), msg.Type())
	msg.MarshalTo(rec[Align(SizeofHeader) : Align(SizeofHeader)+size])
	buf.n += len(rec)
	return nil
}

// Bytes returns the encoded records.
func (buf *Buffer) Bytes() []byte { return buf.b[:buf.n] }

// Len returns the number of bytes of encoded records.
func (buf *Buffer) Len() int { return buf.n }

// Pointer returns the address of the first byte of the buffer.
func (buf *Buffer) Pointer() unsafe.Pointer { return unsafe.Pointer(&buf.b) }

// Reset empties the buffer.
func (buf *Buffer) Reset() { buf.n = 0 }

// SetLen sets the number of valid bytes in the buffer, as reported by the
// kernel after a receive.
func (buf *Buffer) SetLen(n int) {
	if n < 0 {
		n = 0
	}
	if n > Capacity {
		n = Capacity
	}
	buf.n = n
}

// Parse calls fn for each record of b, stopping early if fn returns false.
// b must be sliced to the control length reported by the kernel.
func Parse(b []byte, fn func(level, typ int32, data []byte) bool) error {
	for len(b) > 0 {
		if len(b) < SizeofHeader {
			return ErrMalformed
		}
		size, level, typ := getHeader(b)
		if size < uint64(SizeofHeader) || size > uint64(len(b)) {
			return ErrMalformed
		}
		if !fn(level, typ, b[Align(SizeofHeader):size]) {
			return nil
		}
		next := Align(int(size))
		if next >= len(b) {
			break
		}
		b = b[next:]
	}
	return nil
}

// Decode writes the payload of each record of b into the first message of
// dst with the same level and type. Records matching no message are skipped.
func Decode(b []byte, dst ...Message) error {
	var err error
	perr := Parse(b, func(level, typ int32, data []byte) bool {
		for _, msg := range dst {
			if msg.Level() == level && msg.Type() == typ {
				err = msg.UnmarshalFrom(data)
				break
			}
		}
		return err == nil
	})
	if perr != nil {
		return perr
	}
	return err
}

func putHeader(b []byte, size int, level, typ int32) {
	switch abi.WordSize {
	case 8:
		binary.NativeEndian.PutUint64(b, uint64(size))
	default:
		binary.NativeEndian.PutUint32(b, uint32(size))
	}
	binary.NativeEndian.PutUint32(b[abi.WordSize:], uint32(level))
	binary.NativeEndian.PutUint32(b[abi.WordSize+4:], uint32(typ))
}

func getHeader(b []byte) (size uint64, level, typ int32) {
	switch abi.WordSize {
	case 8:
		size = binary.NativeEndian.Uint64(b)
	default:
		size = uint64(binary.NativeEndian.Uint32(b))
	}
	level = int32(binary.NativeEndian.Uint32(b[abi.WordSize:]))
	typ = int32(binary.NativeEndian.Uint32(b[abi.WordSize+4:]))
	return size, level, typ
}
