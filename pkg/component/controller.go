package component

import (
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/uikit/pkg/dom"
	"tableflip.dev/uikit/pkg/observable"
)

// CheckAnchor rejects a missing host element.
func CheckAnchor(anchor *dom.Anchor) error {
	if anchor == nil {
		return ErrNilAnchor
	}
	return nil
}

// Lifecycle is what every widget handle offers regardless of kind.
type Lifecycle interface {
	ID() string
	Kind() string
	SetEnabled(enabled bool)
	IsEnabled() bool
	Destroy()
	IsDestroyed() bool
	HTML() string
}

// Controller is the public side of a widget: it owns the model and view and
// re-emits model changes as namespaced public events of type E carrying P.
// Widgets embed it and add their own chainable operations.
type Controller[E comparable, P any] struct {
	id     string
	kind   string
	events observable.Bus[E, P]
	model  *Model
	view   *View
	hook   func()
	log    *zap.Logger

	destroyed bool
}

// Init wires the controller to its model and view. hook runs during
// Destroy after the view has released its bindings.
func (c *Controller[E, P]) Init(kind string, o Options, model *Model, view *View, hook func()) {
	c.id = o.ID
	c.kind = kind
	c.model = model
	c.view = view
	c.hook = hook
	c.log = o.Logger
}

// ID names the widget.
func (c *Controller[E, P]) ID() string { return c.id }

// Kind is the widget type, e.g. "button".
func (c *Controller[E, P]) Kind() string { return c.kind }

// Logger returns the widget logger.
func (c *Controller[E, P]) Logger() *zap.Logger { return c.log }

// On subscribes an external listener to a public event.
func (c *Controller[E, P]) On(event E, fn func(P)) *observable.Subscription[E, P] {
	return c.events.On(event, nil, fn)
}

// OnOwned subscribes fn on behalf of owner, so Off or OffOwner can detach
// it later.
func (c *Controller[E, P]) OnOwned(event E, owner any, fn func(P)) *observable.Subscription[E, P] {
	return c.events.On(event, owner, fn)
}

// Off detaches listeners by event and owner; see observable.Bus.Off.
func (c *Controller[E, P]) Off(event E, owner any) {
	c.events.Off(event, owner)
}

// OffOwner detaches every listener owner registered.
func (c *Controller[E, P]) OffOwner(owner any) {
	var zero E
	c.events.Off(zero, owner)
}

// Listeners reports how many live public listeners exist.
func (c *Controller[E, P]) Listeners() int { return c.events.Len() }

// Emit fires a public event.
func (c *Controller[E, P]) Emit(event E, payload P) {
	c.log.Debug("emit", zap.Any("event", event))
	c.events.Emit(event, payload)
}

// MustLive panics with ErrDestroyed once the widget is destroyed. Every
// public operation calls it first.
func (c *Controller[E, P]) MustLive() {
	if c.destroyed {
		panic(fmt.Errorf("%s %s: %w", c.kind, c.id, ErrDestroyed))
	}
}

// SetEnabled enables or disables interaction.
func (c *Controller[E, P]) SetEnabled(enabled bool) {
	c.MustLive()
	if enabled {
		c.model.Enable()
	} else {
		c.model.Disable()
	}
}

// IsEnabled reports whether the widget accepts interaction.
func (c *Controller[E, P]) IsEnabled() bool {
	c.MustLive()
	return c.model.IsEnabled()
}

// IsDisabled is the negation of IsEnabled.
func (c *Controller[E, P]) IsDisabled() bool {
	c.MustLive()
	return c.model.IsDisabled()
}

// ViewState returns the view lifecycle state.
func (c *Controller[E, P]) ViewState() State {
	if c.destroyed {
		return StateDestroyed
	}
	return c.view.State()
}

// HTML renders the widget anchor with its current content.
func (c *Controller[E, P]) HTML() string {
	c.MustLive()
	return c.view.Anchor().HTML()
}

// Destroy releases the view and drops the model and view. Calling it again
// does nothing.
func (c *Controller[E, P]) Destroy() {
	if c.destroyed {
		return
	}
	c.view.Destroy(c, c.hook)
	c.view = nil
	c.model = nil
	c.hook = nil
	c.destroyed = true
	c.log.Debug("component destroyed")
}

// IsDestroyed reports whether Destroy ran.
func (c *Controller[E, P]) IsDestroyed() bool { return c.destroyed }
