package page

import (
	"bytes"
	_ "embed"
)

//go:embed demo.yaml
var demo []byte

// Demo returns the built-in page showing every widget kind.
func Demo() (*Document, error) {
	return Load(bytes.NewReader(demo))
}

// Open loads path, or the demo page when path is empty.
func Open(path string) (*Document, error) {
	if path == "" {
		return Demo()
	}
	return LoadFile(path)
}
