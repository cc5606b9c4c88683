package textbox

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/dom"
	"tableflip.dev/uikit/pkg/schedule"
)

func newTextbox(t *testing.T, s Settings, opts ...component.Option) (*Textbox, *dom.Anchor) {
	t.Helper()
	anchor := dom.NewAnchor("txt", "textbox")
	tb, err := New(anchor, s, opts...)
	if err != nil {
		t.Fatalf("new textbox: %v", err)
	}
	return tb, anchor
}

func number(value string) Settings {
	s := Defaults()
	s.Type = TypeNumber
	s.Min = 0
	s.Max = 10
	s.Value = value
	return s
}

func TestRejectKeepsValue(t *testing.T) {
	tb, anchor := newTextbox(t, number("5"))
	var errs []*ErrorDescriptor
	var changes int
	tb.On(EventError, func(e Event) { errs = append(errs, e.Error) })
	tb.On(EventChangeValue, func(Event) { changes++ })

	if tb.SetValue("15") {
		t.Fatal("expected 15 to be rejected")
	}
	if tb.Value() != "5" || changes != 0 {
		t.Fatalf("expected value kept, got %q with %d changes", tb.Value(), changes)
	}
	desc := tb.Error()
	if desc == nil || desc.Code != CodeTooBig || desc.Suggestion != "10" || desc.Value != "15" {
		t.Fatalf("unexpected descriptor %+v", desc)
	}
	if len(errs) != 1 || errs[0] != desc {
		t.Fatalf("expected one error event, got %v", errs)
	}
	if !anchor.HasClass(classError) || dom.Text(anchor.Find(selectorError)) != "Value is too big" {
		t.Fatal("expected error shown")
	}

	if !tb.SetValue("7") || tb.Error() != nil || anchor.HasClass(classError) {
		t.Fatal("expected valid value to clear the error")
	}
}

func TestNumberErrors(t *testing.T) {
	tb, _ := newTextbox(t, number("5"))
	tb.SetValue("-1")
	if d := tb.Error(); d == nil || d.Code != CodeTooSmall || d.Suggestion != "0" {
		t.Fatalf("unexpected descriptor %+v", d)
	}
	tb.SetValue("abc")
	if d := tb.Error(); d == nil || d.Code != CodeNaN {
		t.Fatalf("unexpected descriptor %+v", d)
	}
	if !tb.SetValue("8px") || tb.Value() != "8" {
		t.Fatalf("expected leading integer to be read, got %q", tb.Value())
	}
}

func TestCorrectPolicy(t *testing.T) {
	s := number("5")
	s.Policy = PolicyCorrect
	tb, _ := newTextbox(t, s)
	var got []string
	tb.On(EventChangeValue, func(e Event) { got = append(got, e.Value+"<"+e.Previous) })

	if tb.SetValue("15") {
		t.Fatal("expected corrected value to report false")
	}
	if tb.Value() != "10" {
		t.Fatalf("expected suggestion committed, got %q", tb.Value())
	}
	if d := tb.Error(); d == nil || d.Code != CodeTooBig {
		t.Fatalf("expected descriptor kept, got %+v", d)
	}
	if len(got) != 1 || got[0] != "10<5" {
		t.Fatalf("unexpected changes %v", got)
	}
}

func TestRegexp(t *testing.T) {
	s := Defaults()
	s.Regexp = "^[a-z]+$"
	tb, _ := newTextbox(t, s)
	if tb.SetValue("ABC") {
		t.Fatal("expected mismatch")
	}
	if d := tb.Error(); d == nil || d.Code != CodeRegexp {
		t.Fatalf("unexpected descriptor %+v", d)
	}
	if !tb.SetValue("abc") {
		t.Fatal("expected match")
	}

	s.Regexp = "("
	if _, err := New(dom.NewAnchor("x"), s); !errors.Is(err, component.ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings, got %v", err)
	}
}

func TestRejectOnEmptyInputStillAnnounced(t *testing.T) {
	s := Defaults()
	s.Regexp = "^[a-z]+$"
	tb, anchor := newTextbox(t, s)
	var errs []*ErrorDescriptor
	tb.On(EventError, func(e Event) { errs = append(errs, e.Error) })

	if tb.SetValue("123") {
		t.Fatal("expected 123 to be rejected")
	}
	if tb.Value() != "" {
		t.Fatalf("expected value kept empty, got %q", tb.Value())
	}
	if len(errs) != 1 || errs[0].Code != CodeRegexp {
		t.Fatalf("expected one regexp error event, got %v", errs)
	}
	if anchor.HasClass(classError) {
		t.Fatal("expected no error class next to an empty input")
	}
}

func TestSetPolicy(t *testing.T) {
	tb, _ := newTextbox(t, number("5"))
	if err := tb.SetPolicy("fix"); !errors.Is(err, component.ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings, got %v", err)
	}
	if tb.Policy() != PolicyReject {
		t.Fatalf("expected policy unchanged, got %q", tb.Policy())
	}
	if err := tb.SetPolicy(PolicyCorrect); err != nil {
		t.Fatalf("set policy: %v", err)
	}
	tb.SetValue("15")
	if tb.Value() != "10" {
		t.Fatalf("expected correct policy to commit 10, got %q", tb.Value())
	}
}

func TestLiveTypingLastKeystrokeWins(t *testing.T) {
	clock := &schedule.Manual{}
	s := Defaults()
	s.Live = true
	tb, anchor := newTextbox(t, s, component.WithScheduler(clock))
	var got []string
	tb.On(EventChangeValue, func(e Event) { got = append(got, e.Value) })

	input := anchor.Find(selectorInput)
	for _, typed := range []string{"h", "he", "hey"} {
		dom.SetValue(input, typed)
		anchor.Dispatch(&dom.Event{Type: dom.KeyUp, Target: input})
		clock.Advance(100 * time.Millisecond)
	}
	if len(got) != 0 {
		t.Fatalf("expected nothing before the delay, got %v", got)
	}
	clock.Advance(schedule.DefaultDelay)
	if len(got) != 1 || got[0] != "hey" {
		t.Fatalf("expected a single commit of hey, got %v", got)
	}
}

func TestLiveTypingUsesHostDelay(t *testing.T) {
	clock := &schedule.Manual{}
	s := Defaults()
	s.Live = true
	tb, anchor := newTextbox(t, s, component.WithScheduler(clock), component.WithDelay(50*time.Millisecond))
	var got []string
	tb.On(EventChangeValue, func(e Event) { got = append(got, e.Value) })

	input := anchor.Find(selectorInput)
	dom.SetValue(input, "go")
	anchor.Dispatch(&dom.Event{Type: dom.KeyUp, Target: input})
	clock.Advance(50 * time.Millisecond)
	if len(got) != 1 || got[0] != "go" {
		t.Fatalf("expected commit after the host delay, got %v", got)
	}
}

func TestDestroyCancelsLiveTyping(t *testing.T) {
	clock := &schedule.Manual{}
	s := Defaults()
	s.Live = true
	tb, anchor := newTextbox(t, s, component.WithScheduler(clock))
	input := anchor.Find(selectorInput)
	dom.SetValue(input, "x")
	anchor.Dispatch(&dom.Event{Type: dom.KeyUp, Target: input})
	tb.Destroy()
	if clock.Pending() != 0 {
		t.Fatal("expected pending commit stopped")
	}
}

func TestEnterAndBlur(t *testing.T) {
	tb, anchor := newTextbox(t, Defaults())
	input := anchor.Find(selectorInput)

	dom.SetValue(input, "one")
	anchor.Dispatch(&dom.Event{Type: dom.KeyPress, Target: input, Key: 'a'})
	if tb.Value() != "" {
		t.Fatal("expected only enter to commit")
	}
	anchor.Dispatch(&dom.Event{Type: dom.KeyPress, Target: input, Key: dom.KeyEnter})
	if tb.Value() != "one" {
		t.Fatalf("expected one, got %q", tb.Value())
	}
	dom.SetValue(input, "two")
	anchor.Dispatch(&dom.Event{Type: dom.Blur, Target: input})
	if tb.Value() != "two" {
		t.Fatalf("expected two, got %q", tb.Value())
	}
}

func TestEmptyMessageAndFocus(t *testing.T) {
	s := Defaults()
	s.EmptyMessage = "Type here"
	tb, anchor := newTextbox(t, s)
	if !anchor.HasClass(classEmpty) {
		t.Fatal("expected empty class")
	}
	focused := 0
	tb.On(EventFocus, func(e Event) {
		if e.Textbox == tb {
			focused++
		}
	})
	anchor.Dispatch(&dom.Event{Type: dom.Focus, Target: anchor.Find(selectorInput)})
	if focused != 1 || anchor.HasClass(classEmpty) {
		t.Fatal("expected focus event and empty message hidden")
	}
}

func TestClearButton(t *testing.T) {
	s := Defaults()
	s.ClearButton = true
	s.Value = "abc"
	tb, anchor := newTextbox(t, s)
	if !anchor.HasClass(classClear) {
		t.Fatal("expected clear button shown")
	}
	anchor.Dispatch(&dom.Event{Type: dom.Click, Target: anchor.Find(selectorClear)})
	if tb.Value() != "" || tb.Error() != nil {
		t.Fatalf("expected cleared value, got %q", tb.Value())
	}
	if anchor.HasClass(classClear) || !anchor.HasClass(classEmpty) {
		t.Fatal("expected clear hidden and empty shown")
	}
}

func TestDisabled(t *testing.T) {
	tb, anchor := newTextbox(t, Defaults())
	tb.Disable()
	input := anchor.Find(selectorInput)
	if _, ok := dom.Attr(input, "disabled"); !ok || !anchor.HasClass(classDisabled) {
		t.Fatal("expected disabled input")
	}
	dom.SetValue(input, "x")
	anchor.Dispatch(&dom.Event{Type: dom.KeyPress, Target: input, Key: dom.KeyEnter})
	if tb.Value() != "" {
		t.Fatal("expected disabled textbox to ignore enter")
	}
}

func TestDecode(t *testing.T) {
	s, err := Decode(map[string]any{"type": "number", "max": "20", "delay": "100ms", "policy": "correct"})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Max != 20 || s.Delay != 100*time.Millisecond || s.Policy != PolicyCorrect {
		t.Fatalf("unexpected settings %+v", s)
	}
	if _, err := Decode(map[string]any{"type": "date"}); !errors.Is(err, component.ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if _, err := Decode(map[string]any{"policy": "ignore"}); !errors.Is(err, component.ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings, got %v", err)
	}
}

var _ component.Lifecycle = (*Textbox)(nil)
