// Package button is a clickable widget with an optional two-state toggle.
package button

import (
	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/dom"
)

// Kind names the widget in page documents and logs.
const Kind = "button"

// EventName is the closed set of public button events.
type EventName string

const (
	// EventClick fires on every enabled click.
	EventClick EventName = "btn:click"
	// EventClickEven fires for toggle buttons clicked while state is true.
	EventClickEven EventName = "btn:click:even"
	// EventClickOdd fires for toggle buttons clicked while state is false.
	EventClickOdd EventName = "btn:click:odd"
)

// Event is the payload of every button event.
type Event struct {
	Name   EventName
	Button *Button
}

// Settings configure a button.
type Settings struct {
	component.Settings `mapstructure:",squash" yaml:",inline"`

	Caption string `mapstructure:"caption" yaml:"caption" json:"caption"`
	Toggle  bool   `mapstructure:"toggle" yaml:"toggle" json:"toggle"`
	State   bool   `mapstructure:"state" yaml:"state" json:"state"`
}

// Defaults returns the settings a button starts from.
func Defaults() Settings {
	return Settings{
		Settings: component.Settings{Template: "#tpl_button"},
		State:    true,
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

// Button is the public handle.
type Button struct {
	component.Controller[EventName, Event]

	model *model
	view  *view
}

// New builds a button on anchor and renders it.
func New(anchor *dom.Anchor, s Settings, opts ...component.Option) (*Button, error) {
	if err := component.CheckAnchor(anchor); err != nil {
		return nil, err
	}
	o := component.Resolve(Kind, opts...)
	b := &Button{model: newModel(s)}
	b.view = newView(b.model, anchor, b, o)
	b.Init(Kind, o, b.model.Model, b.view.View, func() {
		b.model = nil
		b.view = nil
	})
	if err := b.view.initialize(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Button) handleClickEvent() {
	m := b.model
	if m.IsDisabled() {
		return
	}
	b.Emit(EventClick, Event{Name: EventClick, Button: b})
	if m.isTogglable() {
		name := EventClickOdd
		if m.state.Get() {
			name = EventClickEven
		}
		b.Emit(name, Event{Name: name, Button: b})
		m.toggleState()
	}
}

// Click performs a user click.
func (b *Button) Click() *Button {
	b.MustLive()
	b.handleClickEvent()
	return b
}

// Enable allows clicks.
func (b *Button) Enable() *Button {
	b.SetEnabled(true)
	return b
}

// Disable ignores clicks.
func (b *Button) Disable() *Button {
	b.SetEnabled(false)
	return b
}

// SetCaption changes the caption.
func (b *Button) SetCaption(caption string) *Button {
	b.MustLive()
	b.model.caption.Set(caption)
	return b
}

// Caption returns the caption.
func (b *Button) Caption() string {
	b.MustLive()
	return b.model.caption.Get()
}

// State returns the toggle state.
func (b *Button) State() bool {
	b.MustLive()
	return b.model.state.Get()
}

// SetState sets the toggle state.
func (b *Button) SetState(state bool) *Button {
	b.MustLive()
	b.model.state.Set(state)
	return b
}

// ToggleState flips the toggle state.
func (b *Button) ToggleState() *Button {
	b.MustLive()
	b.model.toggleState()
	return b
}

// IsTogglable reports whether clicks flip the state.
func (b *Button) IsTogglable() bool {
	b.MustLive()
	return b.model.isTogglable()
}

// Render redraws the button from its model.
func (b *Button) Render() error {
	b.MustLive()
	return b.view.render()
}
