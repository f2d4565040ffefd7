package stream

// ConvertWriter returns a Writer which applies conv to each value before
// passing them to base.
func ConvertWriter[To, From any](base Writer[To], conv func(From) (To, error)) Writer[From] {
	return &convertWriter[To, From]{base: base, conv: conv}
}

type convertWriter[To, From any] struct {
	base Writer[To]
	to   []To
	conv func(From) (To, error)
}

func (w *convertWriter[To, From]) Write(values []From) (n int, err error) {
	defer func() {
		w.to = w.to[:0]
	}()

	for _, from := range values {
		to, err := w.conv(from)
		if err != nil {
			return 0, err
		}
		w.to = append(w.to, to)
	}

	return w.base.Write(w.to)
}
