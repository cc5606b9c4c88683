// Package checkbox is a two-state check widget.
package checkbox

import (
	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/dom"
	"tableflip.dev/uikit/pkg/observable"
)

// Kind names the widget in page documents and logs.
const Kind = "checkbox"

// EventName is the closed set of public checkbox events.
type EventName string

// EventChangeChecked fires after the checked flag changes.
const EventChangeChecked EventName = "cbx:change:checked"

// Event is the payload of checkbox events.
type Event struct {
	Name     EventName
	Checkbox *Checkbox
	Checked  bool
}

// Settings configure a checkbox.
type Settings struct {
	component.Settings `mapstructure:",squash" yaml:",inline"`

	Caption string `mapstructure:"caption" yaml:"caption" json:"caption"`
	Checked bool   `mapstructure:"checked" yaml:"checked" json:"checked"`
}

// Defaults returns the settings a checkbox starts from.
func Defaults() Settings {
	return Settings{
		Settings: component.Settings{Template: "#tpl_checkbox"},
		Caption:  "Default Checkbox",
	}
}

// Decode merges raw settings over Defaults.
func Decode(raw map[string]any) (Settings, error) {
	s := Defaults()
	if err := component.Decode(raw, &s); err != nil {
		return s, err
	}
	return s, component.Validate(s)
}

const (
	namespace = ".checkbox"

	classDisabled = "ui-cbx-disabled"
	classChecked  = "ui-cbx-check"
)

type model struct {
	*component.Model

	caption *observable.Attr[string]
	checked *observable.Attr[bool]
}

// Checkbox is the public handle.
type Checkbox struct {
	component.Controller[EventName, Event]

	model *model
	view  *component.View
}

// New builds a checkbox on anchor and renders it.
func New(anchor *dom.Anchor, s Settings, opts ...component.Option) (*Checkbox, error) {
	if err := component.CheckAnchor(anchor); err != nil {
		return nil, err
	}
	o := component.Resolve(Kind, opts...)
	m := &model{Model: component.NewModel(s.Settings)}
	m.caption = observable.NewAttr(m.Store, "caption", s.Caption)
	m.checked = observable.NewAttr(m.Store, "checked", s.Checked)

	c := &Checkbox{model: m, view: component.NewView(m.Model, anchor, namespace, o)}
	c.Init(Kind, o, m.Model, c.view, func() {
		c.model = nil
		c.view = nil
	})

	v := c.view
	m.OnDisabledChange(v, func(bool) { c.renderDisabled() })
	m.checked.OnChange(v, func(bool, bool) { c.renderChecked() })
	m.caption.OnChange(v, func(string, string) { v.Rerendered(c.Render()) })
	v.Bind(dom.Click, "", func(*dom.Event) { c.handleClickEvent() })

	m.checked.OnChange(c, func(checked, _ bool) {
		c.Emit(EventChangeChecked, Event{Name: EventChangeChecked, Checkbox: c, Checked: checked})
	})

	if err := c.Render(); err != nil {
		return nil, err
	}
	return c, nil
}

// Render redraws the checkbox from its model.
func (c *Checkbox) Render() error {
	c.MustLive()
	if err := c.view.Render(c.model.Snapshot()); err != nil {
		return err
	}
	c.renderDisabled()
	c.renderChecked()
	return nil
}

func (c *Checkbox) renderDisabled() { c.view.ToggleDisabled(classDisabled, nil) }

func (c *Checkbox) renderChecked() { c.view.ToggleClass(classChecked, c.model.checked.Get()) }

func (c *Checkbox) handleClickEvent() {
	if c.model.IsDisabled() {
		return
	}
	c.model.checked.Set(!c.model.checked.Get())
}

// Click performs a user click.
func (c *Checkbox) Click() *Checkbox {
	c.MustLive()
	c.handleClickEvent()
	return c
}

// Enable allows clicks.
func (c *Checkbox) Enable() *Checkbox {
	c.SetEnabled(true)
	return c
}

// Disable ignores clicks.
func (c *Checkbox) Disable() *Checkbox {
	c.SetEnabled(false)
	return c
}

// IsChecked reports the checked flag.
func (c *Checkbox) IsChecked() bool {
	c.MustLive()
	return c.model.checked.Get()
}

// Check sets the flag.
func (c *Checkbox) Check() *Checkbox {
	c.MustLive()
	c.model.checked.Set(true)
	return c
}

// Uncheck clears the flag.
func (c *Checkbox) Uncheck() *Checkbox {
	c.MustLive()
	c.model.checked.Set(false)
	return c
}

// ToggleCheck flips the flag.
func (c *Checkbox) ToggleCheck() *Checkbox {
	c.MustLive()
	c.model.checked.Set(!c.model.checked.Get())
	return c
}

// Caption returns the caption.
func (c *Checkbox) Caption() string {
	c.MustLive()
	return c.model.caption.Get()
}

// SetCaption changes the caption.
func (c *Checkbox) SetCaption(caption string) *Checkbox {
	c.MustLive()
	c.model.caption.Set(caption)
	return c
}
