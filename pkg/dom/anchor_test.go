package dom

import (
	"slices"
	"testing"
)

func TestInnerHTMLAndFind(t *testing.T) {
	a := NewAnchor("spin")
	if err := a.SetInnerHTML(`<input class="js-sp-input" value="3"/><a class="js-sp-btn-up">+</a>`); err != nil {
		t.Fatalf("set inner html: %v", err)
	}

	input := a.Find("input.js-sp-input")
	if input == nil {
		t.Fatal("expected to find input")
	}
	if got := Value(input); got != "3" {
		t.Fatalf("expected value 3, got %q", got)
	}
	if a.Find(".missing") != nil {
		t.Fatal("expected nil for missing selector")
	}
	if got := a.InnerHTML(); got != `<input class="js-sp-input" value="3"/><a class="js-sp-btn-up">+</a>` {
		t.Fatalf("unexpected markup %q", got)
	}
}

func TestToggleClassIsIdempotent(t *testing.T) {
	a := NewAnchor("btn", "button")
	a.ToggleClass("active", true)
	a.ToggleClass("active", true)
	first := a.HTML()
	if got := Classes(a.Node()); !slices.Equal(got, []string{"button", "active"}) {
		t.Fatalf("unexpected classes %v", got)
	}

	a.ToggleClass("active", false)
	a.ToggleClass("active", false)
	a.ToggleClass("active", true)
	if a.HTML() != first {
		t.Fatalf("expected identical markup, got %q vs %q", a.HTML(), first)
	}
}

func TestDelegatedDispatch(t *testing.T) {
	a := NewAnchor("tree")
	if err := a.SetInnerHTML(`<li class="js-item outer"><span class="js-item inner"><b class="arrow">&gt;</b></span></li>`); err != nil {
		t.Fatalf("set inner html: %v", err)
	}
	var got []string
	a.Bind(".tree", Click, ".js-item", func(ev *Event) {
		got = append(got, Classes(ev.Current)[1])
	})
	a.Bind(".tree", Click, "", func(ev *Event) {
		got = append(got, "anchor")
	})

	a.Dispatch(&Event{Type: Click, Target: a.Find(".arrow")})
	if !slices.Equal(got, []string{"inner", "outer", "anchor"}) {
		t.Fatalf("unexpected dispatch order %v", got)
	}
}

func TestStopPropagation(t *testing.T) {
	a := NewAnchor("tree")
	_ = a.SetInnerHTML(`<li class="js-item outer"><span class="js-item inner">x</span></li>`)
	calls := 0
	a.Bind(".tree", Click, ".js-item", func(ev *Event) {
		calls++
		ev.StopPropagation()
	})
	a.Bind(".tree", Click, "", func(*Event) { calls += 100 })

	a.Dispatch(&Event{Type: Click, Target: a.Find(".inner")})
	if calls != 1 {
		t.Fatalf("expected a single handler call, got %d", calls)
	}
}

func TestBindingsSurviveRender(t *testing.T) {
	a := NewAnchor("btn")
	calls := 0
	a.Bind(".button", Click, "", func(*Event) { calls++ })
	for i := 0; i < 3; i++ {
		_ = a.SetInnerHTML(`<span>caption</span>`)
	}
	a.Dispatch(&Event{Type: Click, Target: a.Find("span")})
	if calls != 1 {
		t.Fatalf("expected one call after re-renders, got %d", calls)
	}
}

func TestUnbindNamespace(t *testing.T) {
	a := NewAnchor("x")
	calls := 0
	a.Bind(".one", Click, "", func(*Event) { calls++ })
	a.Bind(".two", Click, "", func(*Event) { calls += 10 })

	a.Unbind(".one")
	a.Dispatch(&Event{Type: Click})
	if calls != 10 {
		t.Fatalf("expected only second namespace, got %d", calls)
	}
	if a.Bindings(".one") != 0 || a.Bindings(".two") != 1 {
		t.Fatalf("unexpected binding counts")
	}
}

func TestDispatchIgnoresForeignTarget(t *testing.T) {
	a := NewAnchor("a")
	b := NewAnchor("b")
	calls := 0
	a.Bind(".x", Click, "", func(*Event) { calls++ })
	a.Dispatch(&Event{Type: Click, Target: b.Node()})
	if calls != 0 {
		t.Fatalf("expected foreign target to be ignored")
	}
}

func TestSetTextEscapes(t *testing.T) {
	a := NewAnchor("lbl")
	SetText(a.Node(), "<b>hi</b>")
	if got := a.InnerHTML(); got != "&lt;b&gt;hi&lt;/b&gt;" {
		t.Fatalf("unexpected escaped text %q", got)
	}
	if Text(a.Node()) != "<b>hi</b>" {
		t.Fatalf("unexpected text content %q", Text(a.Node()))
	}
}
