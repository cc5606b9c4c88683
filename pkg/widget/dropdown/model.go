package dropdown

import (
	"slices"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/observable"
)

// ListItem is an option as the list skin sees it.
type ListItem struct {
	Option
	Disabled bool
}

type model struct {
	*component.Model

	opened         *observable.Attr[bool]
	value          *observable.Attr[string]
	openOnClick    *observable.Attr[bool]
	openOnHover    *observable.Attr[bool]
	listPosition   *observable.Attr[Position]
	initialMessage *observable.Attr[string]
	className      *observable.Attr[string]
	listTemplate   *observable.Attr[string]
	options        *observable.Attr[[]Option]
	exclusions     *observable.Attr[[]string]
}

func newModel(s Settings) *model {
	m := &model{Model: component.NewModel(s.Settings)}
	m.opened = observable.NewAttr(m.Store, "opened", s.Opened)
	m.value = observable.NewAttr(m.Store, "value", s.Value)
	m.openOnClick = observable.NewAttr(m.Store, "openOnClick", s.OpenOnClick)
	m.openOnHover = observable.NewAttr(m.Store, "openOnHover", s.OpenOnHover)
	m.listPosition = observable.NewAttr(m.Store, "listPosition", s.ListPosition)
	m.initialMessage = observable.NewAttr(m.Store, "initialMessage", s.InitialMessage)
	m.className = observable.NewAttr(m.Store, "className", s.ClassName)
	m.listTemplate = observable.NewAttr(m.Store, "listTemplate", s.ListTemplate)
	m.options = observable.NewAttrFunc(m.Store, "options", slices.Clone(s.Options), slices.Equal[[]Option])
	m.exclusions = observable.NewAttrFunc(m.Store, "exclusions", slices.Clone(s.Exclusions), slices.Equal[[]string])
	return m
}

func (m *model) open()  { m.opened.Set(true) }
func (m *model) close() { m.opened.Set(false) }

func (m *model) toggleOpened() { m.opened.Set(!m.opened.Get()) }

func (m *model) isExcluded(value string) bool {
	return slices.Contains(m.exclusions.Get(), value)
}

// listItems returns a copy of the options with exclusions marked disabled.
func (m *model) listItems() []ListItem {
	opts := m.options.Get()
	items := make([]ListItem, len(opts))
	for i, o := range opts {
		items[i] = ListItem{Option: o, Disabled: m.isExcluded(o.Value)}
	}
	return items
}

// selected returns the option matching the current value.
func (m *model) selected() (Option, bool) {
	value := m.value.Get()
	for _, o := range m.options.Get() {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}
