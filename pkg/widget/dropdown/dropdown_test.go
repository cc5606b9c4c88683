package dropdown

import (
	"errors"
	"slices"
	"testing"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/dom"
	"tableflip.dev/uikit/pkg/tabindex"
)

func colours() Settings {
	s := Defaults()
	s.InitialMessage = "Pick one"
	s.Options = []Option{{Name: "Red", Value: "r"}, {Name: "Green", Value: "g"}, {Name: "Blue", Value: "b"}}
	s.Exclusions = []string{"g"}
	return s
}

func newDropdown(t *testing.T, s Settings, opts ...component.Option) (*Dropdown, *dom.Anchor) {
	t.Helper()
	anchor := dom.NewAnchor("dd", "dropdown")
	d, err := New(anchor, s, opts...)
	if err != nil {
		t.Fatalf("new dropdown: %v", err)
	}
	return d, anchor
}

func option(d *Dropdown, value string) *dom.Event {
	for _, n := range d.List().FindAll(selectorOption) {
		if v, _ := dom.Attr(n, attrOptionData); v == value {
			return &dom.Event{Type: dom.Click, Target: n}
		}
	}
	return nil
}

func TestInitialMessageUntilSelected(t *testing.T) {
	d, anchor := newDropdown(t, colours())
	if got := dom.Text(anchor.Find(".dd-value")); got != "Pick one" {
		t.Fatalf("expected initial message, got %q", got)
	}
	d.SetValue("b")
	if got := dom.Text(anchor.Find(".dd-value")); got != "Blue" {
		t.Fatalf("expected Blue, got %q", got)
	}
	if n := d.List().Find(".dd-option-selected"); n == nil || dom.Text(n) != "Blue" {
		t.Fatal("expected Blue marked selected in the list")
	}
}

func TestClickTogglesAndOptionSelects(t *testing.T) {
	d, anchor := newDropdown(t, colours())
	var values []string
	var opened []bool
	d.On(EventChangeValue, func(e Event) { values = append(values, e.Value) })
	d.On(EventChangeOpened, func(e Event) { opened = append(opened, e.Opened) })

	anchor.Dispatch(&dom.Event{Type: dom.Click})
	if !d.IsOpened() || !anchor.HasClass(classOpened) || !d.List().HasClass(classOpened) {
		t.Fatal("expected list opened")
	}
	if d.CloseLayer() == nil {
		t.Fatal("expected close layer while open")
	}

	d.List().Dispatch(option(d, "g"))
	if d.Value() != "" || !d.IsOpened() {
		t.Fatal("expected excluded option to be ignored")
	}

	d.List().Dispatch(option(d, "r"))
	if d.Value() != "r" || d.IsOpened() {
		t.Fatalf("expected r selected and list closed, got %q opened=%v", d.Value(), d.IsOpened())
	}
	if d.CloseLayer() != nil {
		t.Fatal("expected close layer removed")
	}
	if !slices.Equal(values, []string{"r"}) || !slices.Equal(opened, []bool{true, false}) {
		t.Fatalf("unexpected events %v %v", values, opened)
	}
}

func TestCloseLayerClick(t *testing.T) {
	d, _ := newDropdown(t, colours())
	d.Open()
	layer := d.CloseLayer()
	layer.Dispatch(&dom.Event{Type: dom.Click})
	if d.IsOpened() {
		t.Fatal("expected close layer click to close the list")
	}
}

func TestHover(t *testing.T) {
	d, anchor := newDropdown(t, colours())
	anchor.Dispatch(&dom.Event{Type: dom.MouseOver})
	if !d.IsOpened() {
		t.Fatal("expected hover to open")
	}

	inList := d.List().Find(selectorOption)
	anchor.Dispatch(&dom.Event{Type: dom.MouseOut, Related: inList})
	if !d.IsOpened() {
		t.Fatal("expected moving into the list to keep it open")
	}

	d.List().Dispatch(&dom.Event{Type: dom.MouseOut, Target: inList})
	if d.IsOpened() {
		t.Fatal("expected leaving the list to close it")
	}

	s := colours()
	s.OpenOnHover = false
	d2, anchor2 := newDropdown(t, s)
	anchor2.Dispatch(&dom.Event{Type: dom.MouseOver})
	if d2.IsOpened() {
		t.Fatal("expected hover ignored")
	}
}

func TestDisabledIgnoresPointer(t *testing.T) {
	s := colours()
	s.Disabled = true
	d, anchor := newDropdown(t, s)
	anchor.Dispatch(&dom.Event{Type: dom.Click})
	anchor.Dispatch(&dom.Event{Type: dom.MouseOver})
	if d.IsOpened() {
		t.Fatal("expected disabled dropdown to stay closed")
	}
	if !anchor.HasClass(classDisabled) {
		t.Fatal("expected disabled class")
	}
}

func TestOptionsAndExclusions(t *testing.T) {
	d, _ := newDropdown(t, colours())
	items := d.Options()
	if len(items) != 3 || !items[1].Disabled || items[0].Disabled {
		t.Fatalf("unexpected items %+v", items)
	}
	d.SetExclusions(nil)
	if d.IsExcluded("g") || d.List().Find(".dd-option-disabled") != nil {
		t.Fatal("expected exclusions cleared")
	}
	d.SetOptions([]Option{{Name: "One", Value: "1"}})
	if got := len(d.List().FindAll(selectorOption)); got != 1 {
		t.Fatalf("expected one option rendered, got %d", got)
	}
}

func TestListIDs(t *testing.T) {
	tabs := tabindex.New()
	a, _ := newDropdown(t, colours(), component.WithTabIndex(tabs))
	s := colours()
	s.ClassName = "wide"
	b, _ := newDropdown(t, s, component.WithTabIndex(tabs))
	if a.List().ID() != "dd_list_1" || b.List().ID() != "dd_list_2" {
		t.Fatalf("unexpected list ids %s %s", a.List().ID(), b.List().ID())
	}
	if !b.List().HasClass("wide") || !b.List().HasClass(classList) {
		t.Fatal("expected list classes")
	}
}

func TestListOffset(t *testing.T) {
	cases := []struct {
		pos         Position
		anchor      float64
		list        float64
		left, width float64
	}{
		{PositionLeft, 100, 160, 0, 160},
		{PositionCenter, 100, 160, -30, 160},
		{PositionRight, 100, 160, -60, 160},
		{PositionRight, 100, 80, 0, 100},
	}
	for _, c := range cases {
		left, width := ListOffset(c.pos, c.anchor, c.list)
		if left != c.left || width != c.width {
			t.Fatalf("%s: got (%v, %v), want (%v, %v)", c.pos, left, width, c.left, c.width)
		}
	}
}

func TestDestroyDetachesList(t *testing.T) {
	d, anchor := newDropdown(t, colours())
	list := d.List()
	d.Open()
	d.Destroy()
	if list.Bindings(listNamespace) != 0 || anchor.Bindings(namespace) != 0 {
		t.Fatal("expected bindings removed")
	}
	if anchor.HasClass(classOpened) {
		t.Fatal("expected opened class removed")
	}
	d.Destroy()

	defer func() {
		if r := recover(); r == nil || !errors.Is(r.(error), component.ErrDestroyed) {
			t.Fatalf("expected ErrDestroyed panic, got %v", r)
		}
	}()
	d.Open()
}

func TestDecodeValidatesPosition(t *testing.T) {
	if _, err := Decode(map[string]any{"listPosition": "top"}); !errors.Is(err, component.ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings, got %v", err)
	}
	s, err := Decode(map[string]any{"options": []any{map[string]any{"name": "One", "value": 1}}})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(s.Options) != 1 || s.Options[0].Value != "1" {
		t.Fatalf("unexpected options %+v", s.Options)
	}
}

var _ component.Lifecycle = (*Dropdown)(nil)
