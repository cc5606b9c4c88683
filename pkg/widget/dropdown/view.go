package dropdown

import (
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/dom"
)

const (
	namespace     = ".dropdown"
	listNamespace = ".dropdown-list"

	classDisabled   = "ui-dd-disabled"
	classOpened     = "opened"
	classList       = "dropdown-list"
	classCloseLayer = "dd-close-list-layer"

	selectorOption = ".dd-option"
	attrOptionData = "dd-data"
)

type view struct {
	*component.View

	model *model
	ctl   *Dropdown
	list  *listView
}

func newView(m *model, anchor *dom.Anchor, ctl *Dropdown, o component.Options) *view {
	return &view{
		View:  component.NewView(m.Model, anchor, namespace, o),
		model: m,
		ctl:   ctl,
		list:  newListView(m, ctl, o),
	}
}

func (v *view) initialize() error {
	m := v.model
	m.OnDisabledChange(v.View, func(bool) { v.handleDisabledChange() })
	m.value.OnChange(v.View, func(string, string) { v.Rerendered(v.render()) })
	m.options.OnChange(v.View, func(_, _ []Option) { v.Rerendered(v.render()) })
	m.initialMessage.OnChange(v.View, func(string, string) { v.Rerendered(v.render()) })

	v.Bind(dom.Click, "", func(*dom.Event) { v.ctl.handleClickEvent() })
	v.Bind(dom.MouseOver, "", func(*dom.Event) { v.ctl.handleMouseOverEvent() })
	v.Bind(dom.MouseOut, "", func(e *dom.Event) { v.ctl.handleMouseOutEvent(e) })

	if err := v.list.initialize(); err != nil {
		return err
	}
	if err := v.render(); err != nil {
		return err
	}
	if m.opened.Get() {
		v.list.open(v.Anchor())
	}
	return nil
}

func (v *view) render() error {
	m := v.model
	opt, found := m.selected()
	data := map[string]any{
		"Value":          m.value.Get(),
		"Name":           opt.Name,
		"Found":          found,
		"InitialMessage": m.initialMessage.Get(),
	}
	if err := v.Render(data); err != nil {
		return err
	}
	v.handleDisabledChange()
	return nil
}

func (v *view) handleDisabledChange() {
	v.ToggleDisabled(classDisabled, nil)
}

// listView renders the options into a separate anchor that the host places
// next to the dropdown.
type listView struct {
	*component.View

	model *model
	ctl   *Dropdown
	index int
	// closeLayer covers the page while the list is open.
	closeLayer *dom.Anchor
}

func newListView(m *model, ctl *Dropdown, o component.Options) *listView {
	index := o.Tabs.NextList()
	anchor := dom.NewAnchor(fmt.Sprintf("dd_list_%d", index), classList)
	if c := m.className.Get(); c != "" {
		anchor.ToggleClass(c, true)
	}
	return &listView{
		View:  component.NewView(m.Model, anchor, listNamespace, o),
		model: m,
		ctl:   ctl,
		index: index,
	}
}

func (l *listView) initialize() error {
	m := l.model
	m.value.OnChange(l.View, func(string, string) { l.Rerendered(l.render()) })
	m.options.OnChange(l.View, func(_, _ []Option) { l.Rerendered(l.render()) })
	m.exclusions.OnChange(l.View, func(_, _ []string) { l.Rerendered(l.render()) })
	m.opened.OnChange(l.View, func(opened, _ bool) {
		if opened {
			l.open(l.ctl.view.Anchor())
		} else {
			l.close(l.ctl.view.Anchor())
		}
	})

	l.Bind(dom.Click, selectorOption, func(e *dom.Event) {
		value, _ := dom.Attr(e.Current, attrOptionData)
		l.ctl.handleListOptionClickEvent(value)
	})
	l.Bind(dom.MouseOut, "", func(e *dom.Event) { l.ctl.handleListMouseOutEvent(e) })
	return l.render()
}

func (l *listView) render() error {
	m := l.model
	tmpl, err := l.Skin(m.listTemplate.Get())
	if err != nil {
		return err
	}
	out, err := l.ExecuteSkin(tmpl, map[string]any{
		"Value":   m.value.Get(),
		"Options": m.listItems(),
	})
	if err != nil {
		return err
	}
	if err := l.Anchor().SetInnerHTML(out); err != nil {
		return err
	}
	l.MarkRendered()
	return nil
}

func (l *listView) open(parent *dom.Anchor) {
	if l.closeLayer == nil {
		l.closeLayer = dom.NewAnchor(fmt.Sprintf("dd_close_layer_%d", l.index), classCloseLayer)
		if c := l.model.className.Get(); c != "" {
			l.closeLayer.ToggleClass(c, true)
		}
		l.closeLayer.Bind(listNamespace, dom.Click, "", func(*dom.Event) { l.ctl.handleCloseListLayerClickEvent() })
	}
	parent.ToggleClass(classOpened, true)
	l.ToggleClass(classOpened, true)
	l.Logger().Debug("list opened", zap.String("position", string(l.model.listPosition.Get())))
}

func (l *listView) close(parent *dom.Anchor) {
	parent.ToggleClass(classOpened, false)
	l.ToggleClass(classOpened, false)
	if l.closeLayer != nil {
		l.closeLayer.Unbind(listNamespace)
		l.closeLayer = nil
	}
}
