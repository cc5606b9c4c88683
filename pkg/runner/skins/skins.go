// Package skins lists the templates widgets can render with.
package skins

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/uikit/pkg/skin"
)

// Entry is one registered skin.
type Entry struct {
	Name     string `json:"name"`
	Override bool   `json:"override"`
}

// Skins lists Registry, marking skins that differ from the built-in set.
type Skins struct {
	Registry *skin.Registry
	// Overrides names the skins loaded from the config directory.
	Overrides []string
	JSON      func(v any) error
	Out       io.Writer
}

// Entries returns every skin in name order.
func (s *Skins) Entries() []Entry {
	over := make(map[string]bool, len(s.Overrides))
	for _, n := range s.Overrides {
		over[skin.Name(n)] = true
	}
	names := s.Registry.Names()
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		out = append(out, Entry{Name: n, Override: over[n]})
	}
	return out
}

// Do prints the skins.
func (s *Skins) Do(ctx context.Context) error {
	entries := s.Entries()
	if s.JSON != nil {
		return s.JSON(entries)
	}
	out := s.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)
	hi := color.New(color.FgHiYellow)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Skin"), bold.Sprint("Source"))
	for _, e := range entries {
		source := "built-in"
		if e.Override {
			source = hi.Sprint("override")
		}
		tbl.AddRow(e.Name, source)
	}
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
