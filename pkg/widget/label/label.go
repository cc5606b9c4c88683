// Package label renders a caption.
package label

import (
	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/dom"
	"tableflip.dev/uikit/pkg/observable"
)

// Kind names the widget in page documents and logs.
const Kind = "label"

// EventName is the closed set of public label events.
type EventName string

// EventChangeCaption fires after the caption changes.
const EventChangeCaption EventName = "lbl:change:caption"

// Event is the payload of label events.
type Event struct {
	Name     EventName
	Label    *Label
	Caption  string
	Previous string
}

// Settings configure a label.
type Settings struct {
	component.Settings `mapstructure:",squash" yaml:",inline"`

	Caption string `mapstructure:"caption" yaml:"caption" json:"caption"`
}

// Defaults returns the settings a label starts from.
func Defaults() Settings {
	return Settings{
		Settings: component.Settings{Template: "#tpl_label"},
		Caption:  "Default caption",
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

const classDisabled = "ui-lbl-disabled"

// Label is the public handle.
type Label struct {
	component.Controller[EventName, Event]

	model   *component.Model
	caption *observable.Attr[string]
	view    *component.View
}

// New builds a label on anchor and renders it.
func New(anchor *dom.Anchor, s Settings, opts ...component.Option) (*Label, error) {
	if err := component.CheckAnchor(anchor); err != nil {
		return nil, err
	}
	o := component.Resolve(Kind, opts...)
	l := &Label{model: component.NewModel(s.Settings)}
	l.caption = observable.NewAttr(l.model.Store, "caption", s.Caption)
	l.view = component.NewView(l.model, anchor, ".label", o)
	l.Init(Kind, o, l.model, l.view, func() {
		l.model = nil
		l.view = nil
	})

	l.caption.OnChange(l.view, func(string, string) { l.view.Rerendered(l.Render()) })
	l.model.OnDisabledChange(l.view, func(bool) { l.view.ToggleDisabled(classDisabled, nil) })
	l.caption.OnChange(l, func(caption, previous string) {
		l.Emit(EventChangeCaption, Event{Name: EventChangeCaption, Label: l, Caption: caption, Previous: previous})
	})

	if err := l.Render(); err != nil {
		return nil, err
	}
	return l, nil
}

// Render redraws the label from its model.
func (l *Label) Render() error {
	l.MustLive()
	if err := l.view.Render(map[string]any{"caption": l.caption.Get()}); err != nil {
		return err
	}
	l.view.ToggleDisabled(classDisabled, nil)
	return nil
}

// Enable clears the disabled look.
func (l *Label) Enable() *Label {
	l.SetEnabled(true)
	return l
}

// Disable greys the label out.
func (l *Label) Disable() *Label {
	l.SetEnabled(false)
	return l
}

// Caption returns the caption.
func (l *Label) Caption() string {
	l.MustLive()
	return l.caption.Get()
}

// SetCaption changes the caption.
func (l *Label) SetCaption(caption string) *Label {
	l.MustLive()
	l.caption.Set(caption)
	return l
}
