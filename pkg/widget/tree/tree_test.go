package tree

import (
	"errors"
	"testing"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/dom"
	"tableflip.dev/uikit/pkg/skin"
)

func sample() []Item {
	return []Item{
		{Caption: "Fruit", Value: "fruit", Items: []Item{
			{Caption: "Apple", Value: "apple"},
			{Caption: "Pear", Value: "pear"},
		}},
		{Caption: "Bread", Value: "bread"},
	}
}

func newTree(t *testing.T, s Settings, opts ...component.Option) (*Tree, *dom.Anchor) {
	t.Helper()
	anchor := dom.NewAnchor("tree", "tree")
	tr, err := New(anchor, s, opts...)
	if err != nil {
		t.Fatalf("new tree: %v", err)
	}
	return tr, anchor
}

func item(anchor *dom.Anchor, value string) *dom.Event {
	for _, n := range anchor.FindAll(selectorItem) {
		if v, _ := dom.Attr(n, attrValue); v == value {
			return &dom.Event{Type: dom.Click, Target: dom.Find(n, ".tree-caption")}
		}
	}
	return nil
}

func TestRenderNested(t *testing.T) {
	s := Defaults()
	s.Items = sample()
	_, anchor := newTree(t, s)
	items := anchor.FindAll(selectorItem)
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	fruit := items[0]
	if got := len(dom.FindAll(fruit, selectorItem)); got != 2 {
		t.Fatalf("expected 2 children under fruit, got %d", got)
	}
}

func TestItemClickSelectsOne(t *testing.T) {
	s := Defaults()
	s.Items = sample()
	tr, anchor := newTree(t, s)
	var got []string
	tr.On(EventItemClick, func(e Event) { got = append(got, e.Value) })

	anchor.Dispatch(item(anchor, "apple"))
	anchor.Dispatch(item(anchor, "bread"))

	if len(got) != 2 || got[0] != "apple" || got[1] != "bread" {
		t.Fatalf("expected one event per click from the innermost item, got %v", got)
	}
	if len(anchor.FindAll("."+classSelected)) != 1 {
		t.Fatal("expected a single selected item")
	}
	if v, ok := tr.Selected(); !ok || v != "bread" {
		t.Fatalf("expected bread selected, got %q", v)
	}
}

func TestArrowTogglesOpened(t *testing.T) {
	s := Defaults()
	s.Items = sample()
	_, anchor := newTree(t, s)
	fruit := anchor.FindAll(selectorItem)[0]
	arrow := dom.Find(fruit, ".js-tree-arrow")

	anchor.Dispatch(&dom.Event{Type: dom.Click, Target: arrow})
	if !dom.HasClass(fruit, classOpened) {
		t.Fatal("expected branch opened")
	}
	anchor.Dispatch(&dom.Event{Type: dom.Click, Target: arrow})
	if dom.HasClass(fruit, classOpened) {
		t.Fatal("expected branch closed")
	}
	anchor.Dispatch(item(anchor, "fruit"))
	if dom.HasClass(fruit, classOpened) {
		t.Fatal("expected caption click to leave the branch closed")
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	items := FromMap(map[string]any{
		"b": map[string]any{"y": 2, "x": 1},
		"a": "leaf",
	})
	if len(items) != 2 || items[0].Caption != "a" || items[0].Value != "leaf" {
		t.Fatalf("unexpected items %+v", items)
	}
	if kids := items[1].Items; len(kids) != 2 || kids[0].Caption != "x" || kids[0].Value != "1" {
		t.Fatalf("unexpected children %+v", items[1].Items)
	}
}

func TestDecodeMapItems(t *testing.T) {
	s, err := Decode(map[string]any{"items": map[string]any{"one": 1}, "disabled": true})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(s.Items) != 1 || s.Items[0].Value != "1" || !s.Disabled {
		t.Fatalf("unexpected settings %+v", s)
	}
}

func TestMissingSubitemsContainer(t *testing.T) {
	skins := skin.Default()
	if err := skins.Add("#tpl_flat", `<li class="js-tree-item">{{.Caption}}</li>`); err != nil {
		t.Fatalf("add skin: %v", err)
	}
	s := Defaults()
	s.Template = "#tpl_flat"
	s.Items = sample()
	if _, err := New(dom.NewAnchor("t"), s, component.WithSkins(skins)); !errors.Is(err, component.ErrStructure) {
		t.Fatalf("expected ErrStructure, got %v", err)
	}
}

func TestSetItemsKeepsTreeOnStructureError(t *testing.T) {
	skins := skin.Default()
	if err := skins.Add("#tpl_flat", `<li class="js-tree-item" data-tree-value="{{.Value}}">{{.Caption}}</li>`); err != nil {
		t.Fatalf("add skin: %v", err)
	}
	s := Defaults()
	s.Template = "#tpl_flat"
	s.Items = []Item{{Caption: "a", Value: "a"}, {Caption: "b", Value: "b"}}
	tr, anchor := newTree(t, s, component.WithSkins(skins))
	before := anchor.InnerHTML()

	err := tr.SetItems([]Item{{Caption: "x", Value: "x", Items: []Item{{Caption: "y", Value: "y"}}}})
	if !errors.Is(err, component.ErrStructure) {
		t.Fatalf("expected ErrStructure, got %v", err)
	}
	if got := anchor.InnerHTML(); got != before {
		t.Fatalf("expected markup untouched, got %s", got)
	}
	if got := tr.Items(); len(got) != 2 || got[0].Value != "a" {
		t.Fatalf("expected old items kept, got %+v", got)
	}
}

func TestSetItemsRedraws(t *testing.T) {
	tr, anchor := newTree(t, Defaults())
	if len(anchor.FindAll(selectorItem)) != 0 {
		t.Fatal("expected empty tree")
	}
	if err := tr.SetItems(sample()); err != nil {
		t.Fatalf("set items: %v", err)
	}
	if err := tr.SetItems(sample()[1:]); err != nil {
		t.Fatalf("set items: %v", err)
	}
	if len(anchor.FindAll(selectorItem)) != 1 {
		t.Fatalf("expected redraw to replace items, got %s", anchor.InnerHTML())
	}
}

func TestDisabledIgnoresClicks(t *testing.T) {
	s := Defaults()
	s.Items = sample()
	s.Disabled = true
	tr, anchor := newTree(t, s)
	clicks := 0
	tr.On(EventItemClick, func(Event) { clicks++ })
	anchor.Dispatch(item(anchor, "bread"))
	if clicks != 0 || !anchor.HasClass(classDisabled) {
		t.Fatal("expected disabled tree to ignore clicks")
	}
}

var _ component.Lifecycle = (*Tree)(nil)
