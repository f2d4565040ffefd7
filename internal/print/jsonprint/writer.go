// Package jsonprint prints streams of values as JSON documents.
package jsonprint

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/stealthrocket/sysabi/internal/stream"
)

// NewWriter returns a writer printing each value as an indented JSON
// document. Output is buffered until Close; after the first error, every
// call returns it.
func NewWriter[T any](w io.Writer) stream.WriteCloser[T] {
	b := bufio.NewWriter(w)
	e := json.NewEncoder(b)
	e.SetEscapeHTML(false)
	e.SetIndent("", "  ")
	return &writer[T]{buffer: b, encoder: e}
}

type writer[T any] struct {
	buffer  *bufio.Writer
	encoder *json.Encoder
	err     error
}

func (w *writer[T]) Write(values []T) (int, error) {
	for i, v := range values {
		if w.err != nil {
			return i, w.err
		}
		w.err = w.encoder.Encode(v)
		if w.err != nil {
			return i, w.err
		}
	}
	return len(values), nil
}

func (w *writer[T]) Close() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.buffer.Flush()
	return w.err
}
