// Package tree renders a nested list with single selection and
// collapsible branches.
package tree

import (
	"fmt"
	"slices"
	"sort"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/dom"
	"tableflip.dev/uikit/pkg/observable"
)

// Kind names the widget in page documents and logs.
const Kind = "tree"

// EventName is the closed set of public tree events.
type EventName string

// EventItemClick fires when an item is clicked, with the item value.
const EventItemClick EventName = "tree:item:click"

// Event is the payload of tree events.
type Event struct {
	Name  EventName
	Tree  *Tree
	Value string
}

const (
	namespace = ".tree"

	classDisabled = "ui-tree-disabled"
	classOpened   = "ui-tree-opened"
	classSelected = "ui-tree-selected"
	classArrow    = "ui-tree-arrow"

	selectorItem     = ".js-tree-item"
	selectorSubitems = ".js-tree-subitems"
	attrValue        = "data-tree-value"
)

// Item is one node of the hierarchy.
type Item struct {
	Caption  string `mapstructure:"caption" yaml:"caption" json:"caption"`
	Value    string `mapstructure:"value" yaml:"value" json:"value"`
	Opened   bool   `mapstructure:"opened" yaml:"opened" json:"opened"`
	Selected bool   `mapstructure:"selected" yaml:"selected" json:"selected"`
	Items    []Item `mapstructure:"items" yaml:"items" json:"items"`
}

func equalItems(a, b []Item) bool {
	return slices.EqualFunc(a, b, func(x, y Item) bool {
		return x.Caption == y.Caption && x.Value == y.Value && x.Opened == y.Opened &&
			x.Selected == y.Selected && equalItems(x.Items, y.Items)
	})
}

// FromMap converts a nested mapping into items. Keys become captions in
// sorted order; nested maps become children and other values become the
// leaf value.
func FromMap(m map[string]any) []Item {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]Item, 0, len(keys))
	for _, k := range keys {
		item := Item{Caption: k}
		switch v := m[k].(type) {
		case map[string]any:
			item.Items = FromMap(v)
		case map[any]any:
			item.Items = FromMap(stringKeys(v))
		case nil:
		default:
			item.Value = fmt.Sprint(v)
		}
		items = append(items, item)
	}
	return items
}

func stringKeys(m map[any]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[fmt.Sprint(k)] = v
	}
	return out
}

// Settings configure a tree.
type Settings struct {
	component.Settings `mapstructure:",squash" yaml:",inline"`

	Items []Item `mapstructure:"items" yaml:"items" json:"items"`
}

// Defaults returns the settings a tree starts from.
func Defaults() Settings {
	return Settings{Settings: component.Settings{Template: "#tpl_tree_item"}}
}

// Decode merges raw settings over Defaults. Items may be a list of items or
// a nested mapping.
func Decode(raw map[string]any) (Settings, error) {
	s := Defaults()
	switch items := raw["items"].(type) {
	case map[string]any:
		raw = cloneWithout(raw, "items")
		s.Items = FromMap(items)
	case map[any]any:
		raw = cloneWithout(raw, "items")
		s.Items = FromMap(stringKeys(items))
	}
	if err := component.Decode(raw, &s); err != nil {
		return s, err
	}
	return s, component.Validate(s)
}

func cloneWithout(raw map[string]any, key string) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		if k != key {
			out[k] = v
		}
	}
	return out
}

type model struct {
	*component.Model
	items *observable.Attr[[]Item]
}

// Tree is the public handle.
type Tree struct {
	component.Controller[EventName, Event]

	model *model
	view  *view
}

// New builds a tree on anchor and renders it.
func New(anchor *dom.Anchor, s Settings, opts ...component.Option) (*Tree, error) {
	if err := component.CheckAnchor(anchor); err != nil {
		return nil, err
	}
	o := component.Resolve(Kind, opts...)
	m := &model{Model: component.NewModel(s.Settings)}
	m.items = observable.NewAttrFunc(m.Store, "items", s.Items, equalItems)

	t := &Tree{model: m, view: newView(m, anchor, o)}
	t.Init(Kind, o, m.Model, t.view.View, func() {
		t.model = nil
		t.view = nil
	})

	v := t.view
	m.OnDisabledChange(v.View, func(bool) { v.handleDisabledChange() })
	m.items.OnChange(v.View, func(_, _ []Item) { v.handleItemsChange() })
	v.Bind(dom.Click, selectorItem, t.handleItemClickEvent)

	if err := v.render(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree) handleItemClickEvent(e *dom.Event) {
	e.StopPropagation()
	if t.model.IsDisabled() {
		return
	}
	item := e.Current
	t.view.selectItem(item, dom.HasClass(e.Target, classArrow))

	value, _ := dom.Attr(item, attrValue)
	t.Emit(EventItemClick, Event{Name: EventItemClick, Tree: t, Value: value})
}

// Enable allows item clicks.
func (t *Tree) Enable() *Tree {
	t.SetEnabled(true)
	return t
}

// Disable ignores item clicks.
func (t *Tree) Disable() *Tree {
	t.SetEnabled(false)
	return t
}

// Items returns the hierarchy.
func (t *Tree) Items() []Item {
	t.MustLive()
	return t.model.items.Get()
}

// SetItems replaces the hierarchy and redraws it. Items the skin cannot
// nest fail with ErrStructure and leave the tree unchanged.
func (t *Tree) SetItems(items []Item) error {
	t.MustLive()
	if _, err := t.view.build(items); err != nil {
		return err
	}
	t.model.items.Set(items)
	return nil
}

// Selected returns the value of the highlighted item.
func (t *Tree) Selected() (string, bool) {
	t.MustLive()
	n := t.view.Anchor().Find("." + classSelected)
	if n == nil {
		return "", false
	}
	return dom.Attr(n, attrValue)
}

// Render redraws the hierarchy; branch and selection state reset to the
// items.
func (t *Tree) Render() error {
	t.MustLive()
	return t.view.render()
}
