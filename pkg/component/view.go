package component

import (
	"fmt"
	"html/template"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"tableflip.dev/uikit/pkg/dom"
	"tableflip.dev/uikit/pkg/skin"
)

// State is the lifecycle position of a view.
type State int

const (
	// StateConstructed is a view that has not rendered yet.
	StateConstructed State = iota
	// StateRendered is a view whose anchor reflects the model.
	StateRendered
	// StateDestroyed is terminal.
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateRendered:
		return "rendered"
	case StateDestroyed:
		return "destroyed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// OwnerDetacher drops every subscription held by an owner. Controllers
// implement it so a view can release what it subscribed to on them.
type OwnerDetacher interface {
	OffOwner(owner any)
}

// View binds a model to its anchor. Concrete widget views embed it and use
// the View pointer itself as the owner of every subscription they make.
type View struct {
	model     *Model
	anchor    *dom.Anchor
	namespace string
	skins     *skin.Registry
	tmpl      *template.Template
	state     State
	log       *zap.Logger
}

// NewView prepares a view. Nothing is rendered yet.
func NewView(model *Model, anchor *dom.Anchor, namespace string, o Options) *View {
	return &View{
		model:     model,
		anchor:    anchor,
		namespace: namespace,
		skins:     o.Skins,
		log:       o.Logger,
	}
}

// Anchor returns the host element.
func (v *View) Anchor() *dom.Anchor { return v.anchor }

// Namespace is the binding namespace on the anchor, e.g. ".button".
func (v *View) Namespace() string { return v.namespace }

// State reports the lifecycle position.
func (v *View) State() State { return v.state }

// Logger returns the widget logger.
func (v *View) Logger() *zap.Logger { return v.log }

// Skin resolves a skin by name; an empty name means the model's template.
func (v *View) Skin(name string) (*template.Template, error) {
	if name == "" {
		name = v.model.TemplateName()
	}
	return v.skins.Lookup(name)
}

// Compile resolves the model's skin and keeps it for Render.
func (v *View) Compile() error {
	t, err := v.Skin("")
	if err != nil {
		return err
	}
	v.tmpl = t
	return nil
}

// Execute renders the compiled skin to a string.
func (v *View) Execute(data any) (string, error) {
	return v.ExecuteSkin(v.tmpl, data)
}

// ExecuteSkin renders t to a string.
func (v *View) ExecuteSkin(t *template.Template, data any) (string, error) {
	if t == nil {
		return "", ErrMissingTemplate
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return b.String(), nil
}

// Render replaces the anchor content with the skin rendered from data.
// Calling it again with the same data yields the same markup.
func (v *View) Render(data any) error {
	if v.state == StateDestroyed {
		return ErrDestroyed
	}
	if v.tmpl == nil {
		if err := v.Compile(); err != nil {
			return err
		}
	}
	out, err := v.Execute(data)
	if err != nil {
		return err
	}
	if err := v.anchor.SetInnerHTML(out); err != nil {
		return err
	}
	v.MarkRendered()
	return nil
}

// MarkRendered records that the anchor now reflects the model, for views
// that update the anchor without going through Render.
func (v *View) MarkRendered() {
	if v.state == StateConstructed {
		v.log.Debug("view rendered")
	}
	if v.state != StateDestroyed {
		v.state = StateRendered
	}
}

// Rerendered logs err when redrawing after a model change failed. The
// anchor keeps its previous markup.
func (v *View) Rerendered(err error) {
	if err != nil {
		v.log.Error("view re-render failed", zap.Stringer("state", v.state), zap.Error(err))
	}
}

// Require finds selector in the anchor or fails with ErrStructure.
func (v *View) Require(selector string) (*html.Node, error) {
	n := v.anchor.Find(selector)
	if n == nil {
		return nil, fmt.Errorf("%w: skin %q should contain %q", ErrStructure, v.model.TemplateName(), selector)
	}
	return n, nil
}

// Bind attaches a delegated handler under the view namespace.
func (v *View) Bind(event, selector string, fn dom.Handler) {
	v.anchor.Bind(v.namespace, event, selector, fn)
}

// ToggleClass sets a state class on the anchor.
func (v *View) ToggleClass(class string, on bool) {
	v.anchor.ToggleClass(class, on)
}

// ToggleDisabled mirrors the disabled flag onto class and, when given, the
// disabled attribute of an input.
func (v *View) ToggleDisabled(class string, input *html.Node) {
	disabled := v.model.IsDisabled()
	v.ToggleClass(class, disabled)
	if input == nil {
		return
	}
	if disabled {
		dom.SetAttr(input, "disabled", "disabled")
	} else {
		dom.RemoveAttr(input, "disabled")
	}
}

// Destroy tears the view down: anchor bindings in the namespace, model and
// controller subscriptions owned by the view, then the widget hook. It is
// safe before the first render and a no-op once destroyed.
func (v *View) Destroy(controller OwnerDetacher, hook func()) {
	if v.state == StateDestroyed {
		return
	}
	v.anchor.Unbind(v.namespace)
	v.model.Off("", v)
	if controller != nil {
		controller.OffOwner(v)
	}
	if hook != nil {
		hook()
	}
	v.log.Debug("view destroyed", zap.Stringer("from", v.state))
	v.state = StateDestroyed
	v.tmpl = nil
}
