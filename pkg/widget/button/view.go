package button

import (
	"golang.org/x/net/html"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/dom"
)

const (
	namespace = ".button"

	classDisabled = "ui-btn-disabled"
	classActive   = "ui-btn-active"

	selectorCaption = ".js-btn-caption"
)

type view struct {
	*component.View

	model   *model
	ctl     *Button
	caption *html.Node
}

func newView(m *model, anchor *dom.Anchor, ctl *Button, o component.Options) *view {
	return &view{
		View:  component.NewView(m.Model, anchor, namespace, o),
		model: m,
		ctl:   ctl,
	}
}

func (v *view) initialize() error {
	m := v.model
	m.OnDisabledChange(v.View, func(bool) { v.handleDisabledChange() })
	m.state.OnChange(v.View, func(bool, bool) { v.handleStateChange() })
	m.caption.OnChange(v.View, func(string, string) { v.Rerendered(v.handleCaptionChange()) })

	v.Bind(dom.Click, "", v.handleClickEvent)
	v.Bind(dom.TouchEnd, "", v.handleClickEvent)

	if err := v.Compile(); err != nil {
		return err
	}
	// Host markup may already carry the caption element.
	v.caption = v.Anchor().Find(selectorCaption)
	return v.render()
}

func (v *view) render() error {
	if err := v.handleCaptionChange(); err != nil {
		return err
	}
	v.handleDisabledChange()
	v.handleStateChange()
	return nil
}

// handleCaptionChange updates only the caption element when the skin has
// one, and re-renders the whole skin otherwise.
func (v *view) handleCaptionChange() error {
	if v.caption != nil {
		dom.SetText(v.caption, v.model.caption.Get())
		v.MarkRendered()
		return nil
	}
	if err := v.Render(v.model.Snapshot()); err != nil {
		return err
	}
	v.caption = v.Anchor().Find(selectorCaption)
	return nil
}

func (v *view) handleClickEvent(*dom.Event) {
	v.ctl.handleClickEvent()
}

func (v *view) handleDisabledChange() {
	v.ToggleDisabled(classDisabled, nil)
}

func (v *view) handleStateChange() {
	v.ToggleClass(classActive, v.model.state.Get())
}
