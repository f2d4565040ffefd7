package yamlprint_test

import (
	"bytes"
	"testing"

	"github.com/stealthrocket/sysabi/internal/assert"
	"github.com/stealthrocket/sysabi/internal/print/yamlprint"
)

type errno struct {
	Name string `yaml:"name"`
	Code int    `yaml:"code"`
}

func TestWriteNothing(t *testing.T) {
	b := new(bytes.Buffer)
	w := yamlprint.NewWriter[errno](b)
	assert.OK(t, w.Close())
	assert.Equal(t, b.String(), "")
}

func TestWriteValues(t *testing.T) {
	b := new(bytes.Buffer)
	w := yamlprint.NewWriter[errno](b)
	_, err := w.Write([]errno{
		{Name: "EPERM", Code: 1},
		{Name: "ENOENT", Code: 2},
	})
	assert.OK(t, err)
	assert.OK(t, w.Close())
	assert.Equal(t, b.String(), `name: EPERM
code: 1
---
name: ENOENT
code: 2
`)
}
