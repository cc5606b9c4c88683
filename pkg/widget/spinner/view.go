package spinner

import (
	"golang.org/x/net/html"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/dom"
	"tableflip.dev/uikit/pkg/observable"
)

const (
	namespace = ".spinner"

	classDisabled = "ui-sp-disabled"

	selectorInput = "input.js-sp-input"
	selectorUp    = ".js-sp-btn-up"
	selectorDown  = ".js-sp-btn-down"
)

type view struct {
	*component.View

	model *model
	ctl   *Spinner
	input *html.Node
}

func newView(m *model, anchor *dom.Anchor, ctl *Spinner, o component.Options) *view {
	return &view{
		View:  component.NewView(m.Model, anchor, namespace, o),
		model: m,
		ctl:   ctl,
	}
}

func (v *view) initialize() error {
	m := v.model
	m.OnDisabledChange(v.View, func(bool) { v.handleDisabledChange() })
	m.value.OnChange(v.View, func(float64, float64) { v.syncInput() })
	m.On(signalRevert, v.View, func(observable.Change) { v.syncInput() })

	v.Bind(dom.Click, selectorUp, func(*dom.Event) { v.ctl.handleButtonUpClick() })
	v.Bind(dom.Click, selectorDown, func(*dom.Event) { v.ctl.handleButtonDownClick() })
	v.Bind(dom.KeyPress, selectorInput, v.handleKeyPress)
	v.Bind(dom.Blur, selectorInput, v.handleBlur)
	return v.render()
}

func (v *view) render() error {
	m := v.model
	data := map[string]any{
		"Value":    formatValue(m.value.Get()),
		"TabIndex": m.tabIndex.Get(),
	}
	if err := v.Render(data); err != nil {
		return err
	}
	input, err := v.Require(selectorInput)
	if err != nil {
		return err
	}
	v.input = input
	v.handleDisabledChange()
	return nil
}

func (v *view) syncInput() {
	if v.input != nil {
		dom.SetValue(v.input, formatValue(v.model.value.Get()))
	}
}

func (v *view) handleKeyPress(e *dom.Event) {
	v.ctl.handleKey(dom.Value(v.input), e.Key, e.Ctrl, e.Shift)
}

func (v *view) handleBlur(*dom.Event) {
	v.ctl.handleInputBlur(dom.Value(v.input))
}

func (v *view) handleDisabledChange() {
	v.ToggleDisabled(classDisabled, v.input)
}
