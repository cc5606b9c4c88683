// Package inspect prints the state of every widget on a page.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"go.uber.org/zap"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/page"
	"tableflip.dev/uikit/pkg/skin"
)

// Row is the state of one widget.
type Row struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Enabled bool   `json:"enabled"`
	View    string `json:"view"`
	State   string `json:"state"`
}

// Inspect mounts a page document and reports widget state.
type Inspect struct {
	File   string
	Skins  *skin.Registry
	Logger *zap.Logger
	// JSON receives the rows instead of the table when set.
	JSON func(v any) error
	Out  io.Writer
}

// Rows mounts the page and collects one row per widget.
func (i *Inspect) Rows() ([]Row, error) {
	if i.Skins == nil {
		return nil, errors.New("can not inspect, no skins")
	}
	doc, err := page.Open(i.File)
	if err != nil {
		return nil, err
	}
	p, err := page.Mount(doc, page.WithSkins(i.Skins), page.WithLogger(i.Logger))
	if err != nil {
		return nil, err
	}
	defer p.Destroy()

	rows := make([]Row, 0, len(p.Entries()))
	for _, e := range p.Entries() {
		rows = append(rows, Row{
			ID:      e.ID,
			Kind:    e.Kind,
			Enabled: e.Widget.IsEnabled(),
			View:    viewState(e.Widget),
			State:   page.Describe(e.Widget),
		})
	}
	return rows, nil
}

func viewState(w page.Widget) string {
	if v, ok := w.(interface{ ViewState() component.State }); ok {
		return v.ViewState().String()
	}
	return ""
}

// Do prints the rows as a table, or as JSON when requested.
func (i *Inspect) Do(ctx context.Context) error {
	rows, err := i.Rows()
	if err != nil {
		return err
	}
	if i.JSON != nil {
		return i.JSON(rows)
	}

	out := i.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	off := color.New(color.FgRed)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Kind"), bold.Sprint("Enabled"), bold.Sprint("View"), bold.Sprint("State"))
	for _, r := range rows {
		enabled := faint.Sprint("yes")
		if !r.Enabled {
			enabled = off.Sprint("no")
		}
		tbl.AddRow(r.ID, r.Kind, enabled, faint.Sprint(r.View), r.State)
	}
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
