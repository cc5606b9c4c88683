package textbox

import (
	"golang.org/x/net/html"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/dom"
	"tableflip.dev/uikit/pkg/schedule"
)

const (
	namespace = ".textbox"

	classEmpty    = "ui-txt-empty"
	classClear    = "ui-txt-clear"
	classDisabled = "ui-txt-disabled"
	classError    = "ui-txt-error"

	selectorInput = "input.js-txt-input"
	selectorEmpty = ".js-txt-empty"
	selectorClear = ".js-txt-clear"
	selectorError = ".js-txt-error"
)

type view struct {
	*component.View

	model  *model
	ctl    *Textbox
	typing *schedule.Debouncer

	input    *html.Node
	errorBox *html.Node
}

func newView(m *model, anchor *dom.Anchor, ctl *Textbox, o component.Options, typing *schedule.Debouncer) *view {
	return &view{
		View:   component.NewView(m.Model, anchor, namespace, o),
		model:  m,
		ctl:    ctl,
		typing: typing,
	}
}

func (v *view) initialize() error {
	m := v.model
	m.OnDisabledChange(v.View, func(bool) { v.handleDisabledChange() })
	m.value.OnChange(v.View, func(string, string) { v.handleValueChange() })
	m.err.OnChange(v.View, func(_, _ *ErrorDescriptor) { v.handleErrorChange() })

	v.Bind(dom.KeyPress, selectorInput, v.handleInputKeyPressEvent)
	v.Bind(dom.KeyUp, selectorInput, v.handleInputKeyUpEvent)
	v.Bind(dom.Focus, selectorInput, v.handleInputFocusEvent)
	v.Bind(dom.Blur, selectorInput, v.handleInputBlurEvent)
	v.Bind(dom.Click, selectorEmpty, v.handleEmptyMessageClickEvent)
	v.Bind(dom.Click, selectorClear, v.handleClearButtonClickEvent)
	return v.render()
}

func (v *view) render() error {
	m := v.model
	data := map[string]any{
		"Value":        m.value.Get(),
		"EmptyMessage": m.emptyMessage.Get(),
		"TabIndex":     m.tabIndex.Get(),
	}
	if err := v.Render(data); err != nil {
		return err
	}
	input, err := v.Require(selectorInput)
	if err != nil {
		return err
	}
	v.input = input
	v.errorBox = v.Anchor().Find(selectorError)

	v.handleDisabledChange()
	v.checkForEmptyMessage()
	v.checkForClearButton()
	v.checkForError(false)
	return nil
}

func (v *view) inputValue() string { return dom.Value(v.input) }

func (v *view) checkForEmptyMessage() {
	m := v.model
	v.ToggleClass(classEmpty, m.isEmpty() && !m.isError())
}

func (v *view) checkForClearButton() {
	m := v.model
	show := m.clearButton.Get() && v.inputValue() != "" && (!m.isEmpty() || m.isError())
	v.ToggleClass(classClear, show)
}

// checkForError shows the current error next to a non-empty input and,
// when announce is set, publishes it whatever the input holds.
func (v *view) checkForError(announce bool) {
	m := v.model
	v.checkForClearButton()
	desc := m.err.Get()
	show := desc != nil && v.inputValue() != ""
	if show && v.errorBox != nil {
		msg := desc.Msg
		if custom := m.invalid.Get(); custom != "" {
			msg = custom
		}
		dom.SetText(v.errorBox, msg)
	}
	v.ToggleClass(classError, show)
	if desc != nil && announce {
		v.ctl.emitError(desc)
	}
}

func (v *view) handleErrorChange() {
	v.checkForError(true)
}

func (v *view) handleValueChange() {
	dom.SetValue(v.input, v.model.value.Get())
	v.checkForEmptyMessage()
	v.checkForClearButton()
	v.checkForError(false)
}

func (v *view) handleDisabledChange() {
	v.ToggleDisabled(classDisabled, v.input)
}

func (v *view) handleInputKeyPressEvent(e *dom.Event) {
	v.ctl.handleInputKeyPress(e.Key, v.inputValue())
}

// handleInputKeyUpEvent restarts the live typing delay; only the last
// keystroke inside the window commits.
func (v *view) handleInputKeyUpEvent(*dom.Event) {
	m := v.model
	if m.IsDisabled() || !m.live.Get() {
		return
	}
	v.typing.Trigger(func() {
		if v.State() == component.StateDestroyed {
			return
		}
		v.ctl.handleLiveTyping(v.inputValue())
	})
}

func (v *view) handleInputFocusEvent(*dom.Event) {
	if v.model.IsDisabled() {
		return
	}
	v.ToggleClass(classEmpty, false)
	v.ctl.emitFocus()
}

func (v *view) handleInputBlurEvent(*dom.Event) {
	if value := v.inputValue(); value != "" {
		v.ctl.handleInputBlur(value)
	}
	v.checkForEmptyMessage()
}

func (v *view) handleEmptyMessageClickEvent(*dom.Event) {
	if v.model.IsDisabled() {
		return
	}
	v.ToggleClass(classEmpty, false)
}

func (v *view) handleClearButtonClickEvent(*dom.Event) {
	v.ToggleClass(classClear, false)
	dom.SetValue(v.input, "")
	v.ctl.handleClearButtonClick()
}
