package spinner

import (
	"errors"
	"math"
	"testing"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/dom"
	"tableflip.dev/uikit/pkg/tabindex"
)

func newSpinner(t *testing.T, s Settings, opts ...component.Option) (*Spinner, *dom.Anchor) {
	t.Helper()
	anchor := dom.NewAnchor("sp", "spinner")
	sp, err := New(anchor, s, opts...)
	if err != nil {
		t.Fatalf("new spinner: %v", err)
	}
	return sp, anchor
}

type counter struct {
	changes []Event
	reverts int
	maxes   int
}

func listen(sp *Spinner) *counter {
	c := &counter{}
	sp.On(EventChangeValue, func(e Event) { c.changes = append(c.changes, e) })
	sp.On(EventRevertValue, func(Event) { c.reverts++ })
	sp.On(EventChangeMax, func(Event) { c.maxes++ })
	return c
}

func TestStepUpClampsThenReverts(t *testing.T) {
	s := Defaults()
	s.Type = TypeInteger
	s.Value = 10
	s.Step = 5
	s.Max = 12
	s.Min = 0
	sp, anchor := newSpinner(t, s)
	c := listen(sp)

	sp.StepUp()
	if sp.Value() != 12 {
		t.Fatalf("expected 12, got %v", sp.Value())
	}
	if len(c.changes) != 1 || c.changes[0].Value != 12 || c.changes[0].Previous != 10 {
		t.Fatalf("unexpected changes %+v", c.changes)
	}
	if got := dom.Value(anchor.Find(selectorInput)); got != "12" {
		t.Fatalf("expected input to show 12, got %q", got)
	}

	sp.StepUp()
	if len(c.changes) != 1 || c.reverts != 1 {
		t.Fatalf("expected a revert only, got %d changes %d reverts", len(c.changes), c.reverts)
	}
}

func TestFloatRoundsToTwoDecimals(t *testing.T) {
	s := Defaults()
	s.Type = TypeFloat
	s.Step = 0.015
	sp, _ := newSpinner(t, s)

	sp.StepUp()
	v := sp.Value()
	if v*100 != math.Floor(v*100) {
		t.Fatalf("expected at most two decimals, got %v", v)
	}
	if v != 0.02 && v != 0.01 {
		t.Fatalf("unexpected rounded value %v", v)
	}
}

func TestIntegerTruncates(t *testing.T) {
	s := Defaults()
	sp, _ := newSpinner(t, s)
	sp.SetValue(7.9)
	if sp.Value() != 7 {
		t.Fatalf("expected 7, got %v", sp.Value())
	}
	sp.SetValueText("42abc")
	if sp.Value() != 42 {
		t.Fatalf("expected 42, got %v", sp.Value())
	}
	sp.SetValue(-3)
	if sp.Value() != 0 {
		t.Fatalf("expected clamp to min, got %v", sp.Value())
	}
}

func TestTextWithoutNumberReverts(t *testing.T) {
	sp, _ := newSpinner(t, Defaults())
	c := listen(sp)
	sp.SetValueText("abc")
	if c.reverts != 1 || len(c.changes) != 0 {
		t.Fatalf("expected revert, got %d reverts %d changes", c.reverts, len(c.changes))
	}
}

func TestSetMaxReclamps(t *testing.T) {
	s := Defaults()
	s.Value = 100
	sp, _ := newSpinner(t, s)
	c := listen(sp)

	sp.SetMax(50)
	if sp.Value() != 50 {
		t.Fatalf("expected 50, got %v", sp.Value())
	}
	if c.maxes != 1 {
		t.Fatalf("expected one max event, got %d", c.maxes)
	}
	sp.SetMin(60)
	if sp.Value() != 60 {
		t.Fatalf("expected value raised to the new min, got %v", sp.Value())
	}
}

func TestKeys(t *testing.T) {
	s := Defaults()
	s.Step = 1
	s.Max = 20
	sp, anchor := newSpinner(t, s)
	input := anchor.Find(selectorInput)

	anchor.Dispatch(&dom.Event{Type: dom.KeyPress, Target: input, Key: dom.KeyArrowUp})
	if sp.Value() != 1 {
		t.Fatalf("expected 1, got %v", sp.Value())
	}
	anchor.Dispatch(&dom.Event{Type: dom.KeyPress, Target: input, Key: dom.KeyArrowUp, Ctrl: true})
	if sp.Value() != 3 {
		t.Fatalf("expected ctrl to double the step, got %v", sp.Value())
	}
	anchor.Dispatch(&dom.Event{Type: dom.KeyPress, Target: input, Key: dom.KeyArrowUp, Shift: true})
	if sp.Value() != 20 {
		t.Fatalf("expected shift to jump to max, got %v", sp.Value())
	}
	anchor.Dispatch(&dom.Event{Type: dom.KeyPress, Target: input, Key: dom.KeyArrowDown, Shift: true})
	if sp.Value() != 0 {
		t.Fatalf("expected shift to jump to min, got %v", sp.Value())
	}

	dom.SetValue(input, "7")
	anchor.Dispatch(&dom.Event{Type: dom.KeyPress, Target: input, Key: dom.KeyEnter})
	if sp.Value() != 7 {
		t.Fatalf("expected enter to commit 7, got %v", sp.Value())
	}

	anchor.Dispatch(&dom.Event{Type: dom.Click, Target: anchor.Find(selectorDown)})
	if sp.Value() != 6 {
		t.Fatalf("expected down button to step, got %v", sp.Value())
	}

	sp.Disable()
	anchor.Dispatch(&dom.Event{Type: dom.KeyPress, Target: input, Key: dom.KeyArrowUp})
	if sp.Value() != 6 {
		t.Fatalf("expected disabled spinner to ignore keys, got %v", sp.Value())
	}
	if _, ok := dom.Attr(input, "disabled"); !ok {
		t.Fatal("expected input disabled")
	}
}

func TestButtonClicks(t *testing.T) {
	s := Defaults()
	s.Step = 2
	sp, anchor := newSpinner(t, s)
	c := listen(sp)
	up, down := anchor.Find(selectorUp), anchor.Find(selectorDown)

	anchor.Dispatch(&dom.Event{Type: dom.Click, Target: up})
	anchor.Dispatch(&dom.Event{Type: dom.Click, Target: up})
	if sp.Value() != 4 {
		t.Fatalf("expected 4 after two up clicks, got %v", sp.Value())
	}
	anchor.Dispatch(&dom.Event{Type: dom.Click, Target: down})
	if sp.Value() != 2 {
		t.Fatalf("expected 2 after a down click, got %v", sp.Value())
	}
	if len(c.changes) != 3 {
		t.Fatalf("expected 3 change events, got %d", len(c.changes))
	}
	if got := dom.Value(anchor.Find(selectorInput)); got != "2" {
		t.Fatalf("expected input to show 2, got %q", got)
	}

	sp.Disable()
	anchor.Dispatch(&dom.Event{Type: dom.Click, Target: up})
	anchor.Dispatch(&dom.Event{Type: dom.Click, Target: down})
	if sp.Value() != 2 || len(c.changes) != 3 || c.reverts != 0 {
		t.Fatalf("expected disabled buttons to do nothing, got %v with %d changes %d reverts", sp.Value(), len(c.changes), c.reverts)
	}

	sp.Enable()
	anchor.Dispatch(&dom.Event{Type: dom.Click, Target: up})
	if sp.Value() != 4 {
		t.Fatalf("expected up click after enable, got %v", sp.Value())
	}
}

func TestBlurCommitsSilently(t *testing.T) {
	sp, anchor := newSpinner(t, Defaults())
	c := listen(sp)
	input := anchor.Find(selectorInput)
	dom.SetValue(input, "9")
	anchor.Dispatch(&dom.Event{Type: dom.Blur, Target: input})
	if sp.Value() != 9 || len(c.changes) != 0 {
		t.Fatalf("expected silent commit of 9, got %v with %d events", sp.Value(), len(c.changes))
	}
}

func TestTabIndexAllocation(t *testing.T) {
	tabs := tabindex.New()
	a, _ := newSpinner(t, Defaults(), component.WithTabIndex(tabs))
	b, _ := newSpinner(t, Defaults(), component.WithTabIndex(tabs))
	if a.TabIndex() != 1 || b.TabIndex() != 2 {
		t.Fatalf("unexpected tab indexes %d %d", a.TabIndex(), b.TabIndex())
	}
}

func TestUnsupportedType(t *testing.T) {
	s := Defaults()
	s.Type = "hex"
	if _, err := New(dom.NewAnchor("x"), s); !errors.Is(err, component.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if _, err := Decode(map[string]any{"type": "hex"}); !errors.Is(err, component.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType from decode, got %v", err)
	}
}

func TestMissingInput(t *testing.T) {
	anchor := dom.NewAnchor("x")
	s := Defaults()
	s.Template = "#tpl_label"
	if _, err := New(anchor, s); !errors.Is(err, component.ErrStructure) {
		t.Fatalf("expected ErrStructure, got %v", err)
	}
}

var _ component.Lifecycle = (*Spinner)(nil)
