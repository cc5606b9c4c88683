// Package page mounts a declarative document of widgets and fans their
// events into a single listener.
package page

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/dom"
	"tableflip.dev/uikit/pkg/skin"
	"tableflip.dev/uikit/pkg/tabindex"
	"tableflip.dev/uikit/pkg/widget/button"
	"tableflip.dev/uikit/pkg/widget/checkbox"
	"tableflip.dev/uikit/pkg/widget/dropdown"
	"tableflip.dev/uikit/pkg/widget/label"
	"tableflip.dev/uikit/pkg/widget/spinner"
	"tableflip.dev/uikit/pkg/widget/textbox"
	"tableflip.dev/uikit/pkg/widget/tree"
)

// ErrUnknownWidget is returned for ids that are not mounted.
var ErrUnknownWidget = errors.New("unknown widget")

// Event is a widget event as seen by the page listener.
type Event struct {
	WidgetID string
	Kind     string
	Name     string
	Payload  any
}

// Listener receives every public event on the page.
type Listener func(Event)

// Options configure Mount.
type Options struct {
	Registry  Registry
	Listener  Listener
	Logger    *zap.Logger
	Skins     *skin.Registry
	Component []component.Option
}

// Option adjusts Mount.
type Option func(*Options)

// WithRegistry replaces the widget kinds Mount understands.
func WithRegistry(r Registry) Option { return func(o *Options) { o.Registry = r } }

// WithListener receives every widget event.
func WithListener(l Listener) Option { return func(o *Options) { o.Listener = l } }

// WithLogger logs mounting and is handed to every widget.
func WithLogger(l *zap.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithSkins resolves widget templates from r.
func WithSkins(r *skin.Registry) Option { return func(o *Options) { o.Skins = r } }

// WithComponentOptions passes extra options to every widget.
func WithComponentOptions(opts ...component.Option) Option {
	return func(o *Options) { o.Component = append(o.Component, opts...) }
}

// Entry is one mounted widget.
type Entry struct {
	ID     string
	Kind   string
	Anchor *dom.Anchor
	Widget Widget
}

// Page is a mounted document.
type Page struct {
	Title string

	entries []*Entry
	byID    map[string]*Entry
	log     *zap.Logger
	tabs    *tabindex.Allocator
}

// Mount builds every widget in doc. On failure the widgets built so far are
// destroyed.
func Mount(doc *Document, opts ...Option) (*Page, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Registry == nil {
		o.Registry = DefaultRegistry()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Skins == nil {
		o.Skins = skin.Default()
	}

	p := &Page{
		Title: doc.Title,
		byID:  make(map[string]*Entry, len(doc.Widgets)),
		log:   o.Logger,
		tabs:  tabindex.New(),
	}
	for _, ws := range doc.Widgets {
		if err := p.mount(ws, o); err != nil {
			p.Destroy()
			return nil, err
		}
	}
	p.log.Debug("page mounted", zap.String("title", p.Title), zap.Int("widgets", len(p.entries)))
	return p, nil
}

func (p *Page) mount(ws WidgetSpec, o Options) error {
	id := ws.ID
	if id == "" {
		id = uuid.NewString()
	}
	if _, ok := p.byID[id]; ok {
		return fmt.Errorf("mount %s: duplicate widget id %q", ws.Kind, id)
	}
	anchor := dom.NewAnchor(id, ws.Kind)

	var emit Emitter
	if o.Listener != nil {
		listener := o.Listener
		emit = func(name string, payload any) {
			listener(Event{WidgetID: id, Kind: ws.Kind, Name: name, Payload: payload})
		}
	}
	copts := append([]component.Option{
		component.WithID(id),
		component.WithLogger(o.Logger),
		component.WithSkins(o.Skins),
		component.WithTabIndex(p.tabs),
	}, o.Component...)

	w, err := o.Registry.build(ws.Kind, anchor, ws.Settings, emit, copts...)
	if err != nil {
		return fmt.Errorf("mount %s %q: %w", ws.Kind, id, err)
	}
	e := &Entry{ID: id, Kind: ws.Kind, Anchor: anchor, Widget: w}
	p.entries = append(p.entries, e)
	p.byID[id] = e
	return nil
}

// Entries returns the mounted widgets in document order.
func (p *Page) Entries() []*Entry {
	return append([]*Entry(nil), p.entries...)
}

// Widgets returns the mounted widgets in document order.
func (p *Page) Widgets() []Widget {
	out := make([]Widget, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Widget
	}
	return out
}

// Lookup finds a mounted widget by id.
func (p *Page) Lookup(id string) (Widget, bool) {
	e, ok := p.byID[id]
	if !ok {
		return nil, false
	}
	return e.Widget, true
}

// Anchors returns every anchor a widget owns: its own and, for dropdowns,
// the option list and the open close layer.
func (e *Entry) Anchors() []*dom.Anchor {
	anchors := []*dom.Anchor{e.Anchor}
	if d, ok := e.Widget.(*dropdown.Dropdown); ok && !d.IsDestroyed() {
		anchors = append(anchors, d.List())
		if layer := d.CloseLayer(); layer != nil {
			anchors = append(anchors, layer)
		}
	}
	return anchors
}

// Render returns the markup of every anchor in document order.
func (p *Page) Render() string {
	var b strings.Builder
	for _, e := range p.entries {
		if e.Widget.IsDestroyed() {
			continue
		}
		for _, a := range e.Anchors() {
			b.WriteString(a.HTML())
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Dispatch delivers ev to the anchor of widget id that contains the event
// target. A nil target goes to the widget anchor.
func (p *Page) Dispatch(id string, ev *dom.Event) error {
	e, ok := p.byID[id]
	if !ok {
		return fmt.Errorf("dispatch %s: %w", id, ErrUnknownWidget)
	}
	if e.Widget.IsDestroyed() {
		return fmt.Errorf("dispatch %s: %w", id, component.ErrDestroyed)
	}
	if ev.Target == nil {
		e.Anchor.Dispatch(ev)
		return nil
	}
	for _, a := range e.Anchors() {
		if a.Contains(ev.Target) {
			a.Dispatch(ev)
			return nil
		}
	}
	return fmt.Errorf("dispatch %s: target outside widget", id)
}

// Destroy tears down every widget. It is safe to call more than once.
func (p *Page) Destroy() {
	for _, e := range p.entries {
		e.Widget.Destroy()
	}
}

// Describe summarises the user-visible state of w in one line.
func Describe(w Widget) string {
	if w.IsDestroyed() {
		return "destroyed"
	}
	switch w := w.(type) {
	case *button.Button:
		return fmt.Sprintf("caption=%q state=%t", w.Caption(), w.State())
	case *checkbox.Checkbox:
		return fmt.Sprintf("caption=%q checked=%t", w.Caption(), w.IsChecked())
	case *dropdown.Dropdown:
		return fmt.Sprintf("value=%q opened=%t", w.Value(), w.IsOpened())
	case *label.Label:
		return fmt.Sprintf("caption=%q", w.Caption())
	case *spinner.Spinner:
		return "value=" + strconv.FormatFloat(w.Value(), 'f', -1, 64)
	case *textbox.Textbox:
		s := fmt.Sprintf("value=%q", w.Value())
		if err := w.Error(); err != nil {
			s += fmt.Sprintf(" error=%d", err.Code)
		}
		return s
	case *tree.Tree:
		if v, ok := w.Selected(); ok {
			return fmt.Sprintf("selected=%q", v)
		}
		return fmt.Sprintf("items=%d", len(w.Items()))
	}
	return ""
}
