package stream

import "io"

// Optional is either a value or the error that ended a stream.
type Optional[T any] struct {
	val T
	err error
}

// Ok returns an Optional holding v.
func Ok[T any](v T) Optional[T] { return Optional[T]{val: v} }

// Err returns an Optional holding err.
func Err[T any](err error) Optional[T] { return Optional[T]{err: err} }

func (opt Optional[T]) Value() (T, error) {
	return opt.val, opt.err
}

// ChanReader returns a Reader of the values sent on ch by concurrent
// producers. Read waits for at least one value, then takes whatever else is
// ready without blocking. A closed channel ends the stream with io.EOF and an
// Err value ends it with that error.
func ChanReader[T any](ch <-chan Optional[T]) Reader[T] {
	return chanReader[T](ch)
}

type chanReader[T any] <-chan Optional[T]

func (r chanReader[T]) Read(values []T) (n int, err error) {
	if len(values) == 0 {
		return 0, nil
	}
	opt, ok := <-r
	for {
		if !ok {
			return n, io.EOF
		}
		if values[n], err = opt.Value(); err != nil {
			return n, err
		}
		if n++; n == len(values) {
			return n, nil
		}
		select {
		case opt, ok = <-r:
		default:
			return n, nil
		}
	}
}
