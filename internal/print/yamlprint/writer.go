// Package yamlprint prints streams of values as YAML documents.
package yamlprint

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/stealthrocket/sysabi/internal/stream"
)

// NewWriter returns a writer printing each value as a YAML document, with
// "---" separating consecutive documents. Closing a writer that printed
// nothing leaves the output empty.
func NewWriter[T any](w io.Writer) stream.WriteCloser[T] {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	return &writer[T]{encoder: e}
}

type writer[T any] struct {
	encoder *yaml.Encoder
	count   int
}

func (w *writer[T]) Write(values []T) (int, error) {
	for i, v := range values {
		if err := w.encoder.Encode(v); err != nil {
			return i, err
		}
		w.count++
	}
	return len(values), nil
}

func (w *writer[T]) Close() error {
	if w.count == 0 {
		return nil
	}
	return w.encoder.Close()
}
