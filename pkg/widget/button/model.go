package button

import (
	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/observable"
)

const (
	keyCaption observable.Key = "caption"
	keyToggle  observable.Key = "toggle"
	keyState   observable.Key = "state"
)

type model struct {
	*component.Model

	caption *observable.Attr[string]
	toggle  *observable.Attr[bool]
	state   *observable.Attr[bool]
}

func newModel(s Settings) *model {
	m := &model{Model: component.NewModel(s.Settings)}
	m.caption = observable.NewAttr(m.Store, keyCaption, s.Caption)
	m.toggle = observable.NewAttr(m.Store, keyToggle, s.Toggle)
	m.state = observable.NewAttr(m.Store, keyState, s.State)
	return m
}

func (m *model) toggleState() { m.state.Set(!m.state.Get()) }

func (m *model) isTogglable() bool { return m.toggle.Get() }
