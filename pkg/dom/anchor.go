package dom

import (
	"golang.org/x/net/html"
)

// Event types dispatched by hosts.
const (
	Click     = "click"
	TouchEnd  = "touchend"
	KeyPress  = "keypress"
	KeyUp     = "keyup"
	Focus     = "focus"
	Blur      = "blur"
	MouseOver = "mouseover"
	MouseOut  = "mouseout"
)

// Key codes understood by the widgets.
const (
	KeyEnter     = 13
	KeyArrowUp   = 38
	KeyArrowDown = 40
)

// Event is a UI event travelling from Target up to the anchor.
type Event struct {
	Type    string
	Target  *html.Node
	Related *html.Node
	Key     int
	Ctrl    bool
	Shift   bool

	// Current is the node whose binding is running.
	Current *html.Node

	stopped bool
}

// StopPropagation keeps the event from reaching outer bindings.
func (e *Event) StopPropagation() { e.stopped = true }

// Stopped reports whether propagation was stopped.
func (e *Event) Stopped() bool { return e.stopped }

// Handler runs for a bound event.
type Handler func(*Event)

type binding struct {
	ns       string
	event    string
	selector string
	fn       Handler
}

// Anchor is the host element a widget owns for its lifetime. Bindings are
// delegated: they live on the anchor and survive re-renders of its content.
type Anchor struct {
	node     *html.Node
	bindings []binding
}

// NewAnchor creates a detached <div> anchor with the given id.
func NewAnchor(id string, classes ...string) *Anchor {
	n := NewElement("div", classes...)
	if id != "" {
		SetAttr(n, "id", id)
	}
	return &Anchor{node: n}
}

// Wrap turns an existing element into an anchor.
func Wrap(n *html.Node) *Anchor {
	return &Anchor{node: n}
}

// Node exposes the anchor element.
func (a *Anchor) Node() *html.Node { return a.node }

// ID returns the id attribute of the anchor.
func (a *Anchor) ID() string {
	id, _ := Attr(a.node, "id")
	return id
}

// SetInnerHTML replaces the anchor content.
func (a *Anchor) SetInnerHTML(markup string) error { return SetInnerHTML(a.node, markup) }

// InnerHTML renders the anchor content.
func (a *Anchor) InnerHTML() string { return InnerHTML(a.node) }

// HTML renders the anchor including its own tag.
func (a *Anchor) HTML() string { return OuterHTML(a.node) }

// Find returns the first descendant matching selector.
func (a *Anchor) Find(selector string) *html.Node { return Find(a.node, selector) }

// FindAll returns every descendant matching selector.
func (a *Anchor) FindAll(selector string) []*html.Node { return FindAll(a.node, selector) }

// HasClass reports whether the anchor carries class c.
func (a *Anchor) HasClass(c string) bool { return HasClass(a.node, c) }

// ToggleClass sets class c on the anchor according to on.
func (a *Anchor) ToggleClass(c string, on bool) { ToggleClass(a.node, c, on) }

// Contains reports whether n lives inside the anchor.
func (a *Anchor) Contains(n *html.Node) bool { return Contains(a.node, n) }

// Bind registers fn for event under namespace ns. An empty selector binds
// the anchor itself; otherwise fn runs for every matching node between the
// target and the anchor.
func (a *Anchor) Bind(ns, event, selector string, fn Handler) {
	a.bindings = append(a.bindings, binding{ns: ns, event: event, selector: selector, fn: fn})
}

// Unbind removes every binding registered under ns.
func (a *Anchor) Unbind(ns string) {
	out := a.bindings[:0]
	for _, b := range a.bindings {
		if b.ns != ns {
			out = append(out, b)
		}
	}
	for i := len(out); i < len(a.bindings); i++ {
		a.bindings[i] = binding{}
	}
	a.bindings = out
}

// Bindings counts bindings registered under ns.
func (a *Anchor) Bindings(ns string) int {
	n := 0
	for _, b := range a.bindings {
		if b.ns == ns {
			n++
		}
	}
	return n
}

// Dispatch delivers ev. Targets outside the anchor are ignored; a nil
// target means the anchor itself.
func (a *Anchor) Dispatch(ev *Event) {
	if ev.Target == nil {
		ev.Target = a.node
	}
	if !a.Contains(ev.Target) {
		return
	}
	bindings := make([]binding, len(a.bindings))
	copy(bindings, a.bindings)

	for n := ev.Target; n != nil && n != a.node; n = n.Parent {
		for _, b := range bindings {
			if b.event != ev.Type || b.selector == "" || !Matches(n, b.selector) {
				continue
			}
			ev.Current = n
			b.fn(ev)
		}
		if ev.stopped {
			return
		}
	}
	for _, b := range bindings {
		if b.event != ev.Type || b.selector != "" {
			continue
		}
		ev.Current = a.node
		b.fn(ev)
	}
}
