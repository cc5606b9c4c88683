// Package spinner is a numeric input stepped with buttons and arrow keys.
package spinner

import (
	"fmt"
	"math"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/dom"
	"tableflip.dev/uikit/pkg/observable"
)

// Kind names the widget in page documents and logs.
const Kind = "spinner"

// Type selects how values are coerced.
type Type string

const (
	// TypeInteger truncates values towards zero.
	TypeInteger Type = "integer"
	// TypeFloat rounds values to two decimals.
	TypeFloat Type = "float"
)

// EventName is the closed set of public spinner events.
type EventName string

const (
	EventChangeValue EventName = "sp:change:value"
	EventChangeMax   EventName = "sp:change:max"
	EventChangeMin   EventName = "sp:change:min"
	// EventRevertValue fires when an adjustment left the value unchanged.
	EventRevertValue EventName = "sp:revert:value"
)

// Event is the payload of every spinner event. Previous is only meaningful
// for EventChangeValue.
type Event struct {
	Name     EventName
	Spinner  *Spinner
	Value    float64
	Previous float64
}

// Settings configure a spinner. A zero TabIndex is replaced by the next
// index from the page allocator.
type Settings struct {
	component.Settings `mapstructure:",squash" yaml:",inline"`

	Type     Type    `mapstructure:"type" yaml:"type" json:"type"`
	Value    float64 `mapstructure:"value" yaml:"value" json:"value"`
	Step     float64 `mapstructure:"step" yaml:"step" json:"step" validate:"gte=0"`
	Max      float64 `mapstructure:"max" yaml:"max" json:"max"`
	Min      float64 `mapstructure:"min" yaml:"min" json:"min"`
	TabIndex int     `mapstructure:"tabIndex" yaml:"tabIndex" json:"tabIndex" validate:"gte=0"`
}

// Defaults returns the settings a spinner starts from.
func Defaults() Settings {
	return Settings{
		Settings: component.Settings{Template: "#tpl_spinner"},
		Type:     TypeInteger,
		Step:     500,
		Max:      math.Inf(1),
		Min:      0,
	}
}

// Decode merges raw settings over Defaults.
func Decode(raw map[string]any) (Settings, error) {
	s := Defaults()
	if err := component.Decode(raw, &s); err != nil {
		return s, err
	}
	if err := checkType(s.Type); err != nil {
		return s, err
	}
	return s, component.Validate(s)
}

func checkType(t Type) error {
	switch t {
	case TypeInteger, TypeFloat:
		return nil
	}
	return fmt.Errorf("%w: spinner type %q", component.ErrUnsupportedType, t)
}

// Spinner is the public handle.
type Spinner struct {
	component.Controller[EventName, Event]

	model *model
	view  *view
}

// New builds a spinner on anchor and renders it.
func New(anchor *dom.Anchor, s Settings, opts ...component.Option) (*Spinner, error) {
	if err := component.CheckAnchor(anchor); err != nil {
		return nil, err
	}
	if err := checkType(s.Type); err != nil {
		return nil, err
	}
	o := component.Resolve(Kind, opts...)
	if s.TabIndex == 0 {
		s.TabIndex = o.Tabs.NextTab()
	}
	sp := &Spinner{model: newModel(s)}
	sp.view = newView(sp.model, anchor, sp, o)
	sp.Init(Kind, o, sp.model.Model, sp.view.View, func() {
		sp.model = nil
		sp.view = nil
	})

	m := sp.model
	m.value.OnChange(sp, func(value, previous float64) {
		sp.Emit(EventChangeValue, Event{Name: EventChangeValue, Spinner: sp, Value: value, Previous: previous})
	})
	m.max.OnChange(sp, func(value, _ float64) {
		sp.Emit(EventChangeMax, Event{Name: EventChangeMax, Spinner: sp, Value: value})
	})
	m.min.OnChange(sp, func(value, _ float64) {
		sp.Emit(EventChangeMin, Event{Name: EventChangeMin, Spinner: sp, Value: value})
	})
	m.On(signalRevert, sp, func(c observable.Change) {
		v, _ := c.Value.(float64)
		sp.Emit(EventRevertValue, Event{Name: EventRevertValue, Spinner: sp, Value: v, Previous: v})
	})

	if err := sp.view.initialize(); err != nil {
		return nil, err
	}
	return sp, nil
}

// Enable allows user input.
func (sp *Spinner) Enable() *Spinner {
	sp.SetEnabled(true)
	return sp
}

// Disable ignores user input.
func (sp *Spinner) Disable() *Spinner {
	sp.SetEnabled(false)
	return sp
}

// Value returns the current value.
func (sp *Spinner) Value() float64 {
	sp.MustLive()
	return sp.model.value.Get()
}

// PreviousValue returns the value before the last change.
func (sp *Spinner) PreviousValue() float64 {
	sp.MustLive()
	return sp.model.value.Previous()
}

// SetValue coerces and clamps v before storing it.
func (sp *Spinner) SetValue(v float64) *Spinner {
	sp.MustLive()
	sp.model.setValue(v)
	return sp
}

// SetValueText reads the leading number of text, as typed into the field.
func (sp *Spinner) SetValueText(text string) *Spinner {
	sp.MustLive()
	sp.model.setValueText(text)
	return sp
}

// StepUp adds one step.
func (sp *Spinner) StepUp() *Spinner { return sp.StepUpBy(1) }

// StepDown subtracts one step.
func (sp *Spinner) StepDown() *Spinner { return sp.StepDownBy(1) }

// StepUpBy adds multiplier steps.
func (sp *Spinner) StepUpBy(multiplier float64) *Spinner {
	sp.MustLive()
	sp.model.stepUp(multiplier)
	return sp
}

// StepDownBy subtracts multiplier steps.
func (sp *Spinner) StepDownBy(multiplier float64) *Spinner {
	sp.MustLive()
	sp.model.stepDown(multiplier)
	return sp
}

// Step returns the step size.
func (sp *Spinner) Step() float64 {
	sp.MustLive()
	return sp.model.step.Get()
}

// SetStep changes the step size.
func (sp *Spinner) SetStep(step float64) *Spinner {
	sp.MustLive()
	sp.model.step.Set(step)
	return sp
}

// Max returns the upper bound.
func (sp *Spinner) Max() float64 {
	sp.MustLive()
	return sp.model.max.Get()
}

// SetMax changes the upper bound and re-clamps the value.
func (sp *Spinner) SetMax(max float64) *Spinner {
	sp.MustLive()
	sp.model.setMax(max)
	return sp
}

// Min returns the lower bound.
func (sp *Spinner) Min() float64 {
	sp.MustLive()
	return sp.model.min.Get()
}

// SetMin changes the lower bound and re-clamps the value.
func (sp *Spinner) SetMin(min float64) *Spinner {
	sp.MustLive()
	sp.model.setMin(min)
	return sp
}

// Type returns the value type.
func (sp *Spinner) Type() Type {
	sp.MustLive()
	return sp.model.typ.Get()
}

// SetType switches the value type and re-coerces the value.
func (sp *Spinner) SetType(t Type) error {
	sp.MustLive()
	if err := checkType(t); err != nil {
		return err
	}
	sp.model.typ.Set(t)
	return nil
}

// TabIndex returns the tab index rendered into the input.
func (sp *Spinner) TabIndex() int {
	sp.MustLive()
	return sp.model.tabIndex.Get()
}

// Render redraws the spinner from its model.
func (sp *Spinner) Render() error {
	sp.MustLive()
	return sp.view.render()
}

// handleKey applies a key press typed into the field holding text.
func (sp *Spinner) handleKey(text string, key int, ctrl, shift bool) {
	m := sp.model
	if m.IsDisabled() {
		return
	}
	multiplier := 1.0
	if ctrl {
		multiplier = 2
	}
	switch key {
	case dom.KeyEnter:
		m.setValueText(text)
	case dom.KeyArrowUp:
		if max := m.max.Get(); shift && !math.IsInf(max, 0) {
			m.setValue(max)
			return
		}
		m.stepUp(multiplier)
	case dom.KeyArrowDown:
		if min := m.min.Get(); shift && !math.IsInf(min, 0) {
			m.setValue(min)
			return
		}
		m.stepDown(multiplier)
	}
}

func (sp *Spinner) handleButtonUpClick() {
	if sp.model.IsEnabled() {
		sp.model.stepUp(1)
	}
}

func (sp *Spinner) handleButtonDownClick() {
	if sp.model.IsEnabled() {
		sp.model.stepDown(1)
	}
}

// handleInputBlur commits the typed text without announcing it.
func (sp *Spinner) handleInputBlur(text string) {
	sp.model.setValueText(text, observable.Silent())
}
