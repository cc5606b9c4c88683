// Package render prints the markup of a mounted page.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"go.uber.org/zap"

	"tableflip.dev/uikit/pkg/page"
	"tableflip.dev/uikit/pkg/skin"
)

// Render mounts a page document and writes every widget anchor.
type Render struct {
	File   string
	Width  int
	Skins  *skin.Registry
	Logger *zap.Logger
	Out    io.Writer
}

// Do renders the page to Out, stdout by default.
func (r *Render) Do(ctx context.Context) error {
	if r.Skins == nil {
		return errors.New("can not render, no skins")
	}
	doc, err := page.Open(r.File)
	if err != nil {
		return err
	}
	p, err := page.Mount(doc, page.WithSkins(r.Skins), page.WithLogger(r.Logger))
	if err != nil {
		return err
	}
	defer p.Destroy()

	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	if p.Title != "" {
		_, _ = color.New(color.Bold, color.Underline).Fprintln(out, p.Title)
	}
	_, err = fmt.Fprint(out, Wrap(p.Render(), r.Width))
	return err
}

// Wrap breaks markup at width columns, on spaces where it can. A width of
// zero or less returns s unchanged.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wrap.String(wordwrap.String(s, width), width)
}
