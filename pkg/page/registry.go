package page

import (
	"fmt"
	"sort"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/dom"
	"tableflip.dev/uikit/pkg/observable"
	"tableflip.dev/uikit/pkg/widget/button"
	"tableflip.dev/uikit/pkg/widget/checkbox"
	"tableflip.dev/uikit/pkg/widget/dropdown"
	"tableflip.dev/uikit/pkg/widget/label"
	"tableflip.dev/uikit/pkg/widget/spinner"
	"tableflip.dev/uikit/pkg/widget/textbox"
	"tableflip.dev/uikit/pkg/widget/tree"
)

// Widget is what a page holds for every mounted widget.
type Widget interface {
	component.Lifecycle
	Render() error
}

// Emitter receives every public event of a mounted widget.
type Emitter func(name string, payload any)

// Factory decodes raw settings and builds a widget on anchor, forwarding its
// public events to emit.
type Factory func(anchor *dom.Anchor, raw map[string]any, emit Emitter, opts ...component.Option) (Widget, error)

// Registry maps widget kinds to factories.
type Registry map[string]Factory

// Kinds lists registered kinds in sorted order.
func (r Registry) Kinds() []string {
	kinds := make([]string, 0, len(r))
	for k := range r {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func (r Registry) build(kind string, anchor *dom.Anchor, raw map[string]any, emit Emitter, opts ...component.Option) (Widget, error) {
	f, ok := r[kind]
	if !ok {
		return nil, fmt.Errorf("%w: widget kind %q", component.ErrUnsupportedType, kind)
	}
	return f(anchor, raw, emit, opts...)
}

type emitting[E ~string, P any] interface {
	Widget
	On(event E, fn func(P)) *observable.Subscription[E, P]
}

// Kind adapts a widget package to a Factory.
func Kind[S any, W emitting[E, P], E ~string, P any](
	decode func(map[string]any) (S, error),
	build func(*dom.Anchor, S, ...component.Option) (W, error),
	events ...E,
) Factory {
	return func(anchor *dom.Anchor, raw map[string]any, emit Emitter, opts ...component.Option) (Widget, error) {
		s, err := decode(raw)
		if err != nil {
			return nil, err
		}
		w, err := build(anchor, s, opts...)
		if err != nil {
			return nil, err
		}
		if emit != nil {
			for _, name := range events {
				name := name
				w.On(name, func(p P) { emit(string(name), p) })
			}
		}
		return w, nil
	}
}

// DefaultRegistry knows every widget in this module.
func DefaultRegistry() Registry {
	return Registry{
		button.Kind: Kind[button.Settings, *button.Button, button.EventName, button.Event](
			button.Decode, button.New,
			button.EventClick, button.EventClickEven, button.EventClickOdd),
		checkbox.Kind: Kind[checkbox.Settings, *checkbox.Checkbox, checkbox.EventName, checkbox.Event](
			checkbox.Decode, checkbox.New,
			checkbox.EventChangeChecked),
		dropdown.Kind: Kind[dropdown.Settings, *dropdown.Dropdown, dropdown.EventName, dropdown.Event](
			dropdown.Decode, dropdown.New,
			dropdown.EventChangeValue, dropdown.EventChangeOpened),
		label.Kind: Kind[label.Settings, *label.Label, label.EventName, label.Event](
			label.Decode, label.New,
			label.EventChangeCaption),
		spinner.Kind: Kind[spinner.Settings, *spinner.Spinner, spinner.EventName, spinner.Event](
			spinner.Decode, spinner.New,
			spinner.EventChangeValue, spinner.EventChangeMax, spinner.EventChangeMin, spinner.EventRevertValue),
		textbox.Kind: Kind[textbox.Settings, *textbox.Textbox, textbox.EventName, textbox.Event](
			textbox.Decode, textbox.New,
			textbox.EventChangeValue, textbox.EventError, textbox.EventFocus),
		tree.Kind: Kind[tree.Settings, *tree.Tree, tree.EventName, tree.Event](
			tree.Decode, tree.New,
			tree.EventItemClick),
	}
}
