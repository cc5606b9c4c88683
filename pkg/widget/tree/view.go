package tree

import (
	"fmt"

	"golang.org/x/net/html"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/dom"
)

type view struct {
	*component.View

	model *model
}

func newView(m *model, anchor *dom.Anchor, o component.Options) *view {
	return &view{View: component.NewView(m.Model, anchor, namespace, o), model: m}
}

// build renders items into a detached container shaped like the anchor.
func (v *view) build(items []Item) (*html.Node, error) {
	tmpl, err := v.Skin("")
	if err != nil {
		return nil, err
	}
	root := dom.NewElement(v.Anchor().Node().Data)

	var renderItems func(parent *html.Node, items []Item) error
	renderItems = func(parent *html.Node, items []Item) error {
		for _, item := range items {
			out, err := v.ExecuteSkin(tmpl, item)
			if err != nil {
				return err
			}
			nodes, err := dom.AppendHTML(parent, out)
			if err != nil {
				return err
			}
			if len(item.Items) == 0 {
				continue
			}
			var sub *html.Node
			for _, n := range nodes {
				if sub = dom.Find(n, selectorSubitems); sub != nil {
					break
				}
			}
			if sub == nil {
				return fmt.Errorf("%w: skin %q should contain %q for sub items", component.ErrStructure, v.model.TemplateName(), selectorSubitems)
			}
			if err := renderItems(sub, item.Items); err != nil {
				return err
			}
		}
		return nil
	}
	if err := renderItems(root, items); err != nil {
		return nil, err
	}
	return root, nil
}

// render replaces the anchor content. On error the anchor is left as it was.
func (v *view) render() error {
	built, err := v.build(v.model.items.Get())
	if err != nil {
		return err
	}
	root := v.Anchor().Node()
	if err := dom.SetInnerHTML(root, ""); err != nil {
		return err
	}
	for c := built.FirstChild; c != nil; {
		next := c.NextSibling
		built.RemoveChild(c)
		root.AppendChild(c)
		c = next
	}
	v.handleDisabledChange()
	v.MarkRendered()
	return nil
}

func (v *view) handleItemsChange() {
	v.Rerendered(v.render())
}

func (v *view) handleDisabledChange() {
	v.ToggleClass(classDisabled, v.model.IsDisabled())
}

// selectItem highlights item alone, flipping its branch when toggle is set.
func (v *view) selectItem(item *html.Node, toggle bool) {
	if toggle {
		dom.ToggleClass(item, classOpened, !dom.HasClass(item, classOpened))
	}
	for _, n := range v.Anchor().FindAll(selectorItem) {
		dom.RemoveClass(n, classSelected)
	}
	dom.AddClass(item, classSelected)
}
