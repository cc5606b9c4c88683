package page

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// WidgetSpec places one widget on a page.
type WidgetSpec struct {
	ID       string         `yaml:"id,omitempty" json:"id,omitempty"`
	Kind     string         `yaml:"kind" json:"kind"`
	Settings map[string]any `yaml:"settings,omitempty" json:"settings,omitempty"`
}

// Document is a declarative page: a title and widgets in mount order.
type Document struct {
	Title   string       `yaml:"title,omitempty" json:"title,omitempty"`
	Widgets []WidgetSpec `yaml:"widgets" json:"widgets"`
}

// Load decodes a YAML page document. Unknown top-level fields are errors.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	doc := &Document{}
	if err := dec.Decode(doc); err != nil {
		if errors.Is(err, io.EOF) {
			return doc, nil
		}
		return nil, fmt.Errorf("decode page: %w", err)
	}
	for i, w := range doc.Widgets {
		if w.Kind == "" {
			return nil, fmt.Errorf("decode page: widget %d has no kind", i)
		}
	}
	return doc, nil
}

// LoadFile reads a page document from path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
