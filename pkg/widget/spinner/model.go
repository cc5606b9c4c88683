package spinner

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/observable"
)

const (
	keyType     observable.Key = "type"
	keyValue    observable.Key = "value"
	keyStep     observable.Key = "step"
	keyMax      observable.Key = "max"
	keyMin      observable.Key = "min"
	keyTabIndex observable.Key = "tabIndex"

	// signalRevert fires when an adjustment leaves the value where it was.
	signalRevert observable.Key = "sp:revert:value"
)

var (
	leadingInt   = regexp.MustCompile(`^\s*[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^\s*[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

type model struct {
	*component.Model

	typ      *observable.Attr[Type]
	value    *observable.Attr[float64]
	step     *observable.Attr[float64]
	max      *observable.Attr[float64]
	min      *observable.Attr[float64]
	tabIndex *observable.Attr[int]
}

func newModel(s Settings) *model {
	m := &model{Model: component.NewModel(s.Settings)}
	m.typ = observable.NewAttr(m.Store, keyType, s.Type)
	m.value = observable.NewAttr(m.Store, keyValue, s.Value)
	m.step = observable.NewAttr(m.Store, keyStep, s.Step)
	m.max = observable.NewAttr(m.Store, keyMax, s.Max)
	m.min = observable.NewAttr(m.Store, keyMin, s.Min)
	m.tabIndex = observable.NewAttr(m.Store, keyTabIndex, s.TabIndex)

	// Bounds and type changes re-apply coercion and clamping.
	reapply := func(observable.Change) { m.setValue(m.value.Get()) }
	m.On(keyType, m, reapply)
	m.On(keyMax, m, reapply)
	m.On(keyMin, m, reapply)
	return m
}

// adjust computes the next value from value moved by sign*step, coerced to
// the spinner type and clamped into [min, max].
func adjust(typ Type, value, step, sign, min, max float64) float64 {
	switch typ {
	case TypeInteger:
		value = math.Trunc(value) + sign*step
	case TypeFloat:
		value = roundHalfUp((value + sign*step) * 100) / 100
	}
	if value > max {
		value = max
	} else if value < min {
		value = min
	}
	return value
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func (m *model) changeValue(value, step, sign float64, opts ...observable.SetOption) {
	current := m.value.Get()
	next := adjust(m.typ.Get(), value, step, sign, m.min.Get(), m.max.Get())
	m.value.Set(next, opts...)
	if current == next {
		m.Signal(signalRevert, next)
	}
}

func (m *model) setValue(value float64, opts ...observable.SetOption) {
	m.changeValue(value, 0, 1, opts...)
}

// setValueText parses the leading number of text the way the input field is
// read. Text without a number reverts the field.
func (m *model) setValueText(text string, opts ...observable.SetOption) {
	v, ok := parseNumber(m.typ.Get(), text)
	if !ok {
		m.Signal(signalRevert, m.value.Get())
		return
	}
	m.setValue(v, opts...)
}

func (m *model) stepUp(multiplier float64) {
	m.changeValue(m.value.Get(), m.step.Get()*multiplier, 1)
}

func (m *model) stepDown(multiplier float64) {
	m.changeValue(m.value.Get(), m.step.Get()*multiplier, -1)
}

func (m *model) setMax(max float64) {
	value := m.value.Get()
	m.max.Set(max)
	if value > max {
		m.setValue(max)
	}
}

func (m *model) setMin(min float64) {
	value := m.value.Get()
	m.min.Set(min)
	if value < min {
		m.setValue(min)
	}
}

func parseNumber(typ Type, text string) (float64, bool) {
	re := leadingFloat
	if typ == TypeInteger {
		re = leadingInt
	}
	match := re.FindString(text)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(match), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
