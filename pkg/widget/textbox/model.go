package textbox

import (
	"regexp"
	"strconv"
	"strings"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/observable"
)

// Error codes carried by ErrorDescriptor.
const (
	CodeRegexp   = 1
	CodeNaN      = 10
	CodeTooBig   = 11
	CodeTooSmall = 12
)

// ErrorDescriptor describes a rejected or corrected value.
type ErrorDescriptor struct {
	Msg        string
	Value      string
	Suggestion string
	Code       int
}

func (e *ErrorDescriptor) Error() string { return e.Msg }

var leadingInt = regexp.MustCompile(`^\s*[+-]?\d+`)

type model struct {
	*component.Model

	value        *observable.Attr[string]
	typ          *observable.Attr[Type]
	policy       *observable.Attr[Policy]
	min          *observable.Attr[int]
	max          *observable.Attr[int]
	live         *observable.Attr[bool]
	clearButton  *observable.Attr[bool]
	emptyMessage *observable.Attr[string]
	invalid      *observable.Attr[string]
	tabIndex     *observable.Attr[int]
	err          *observable.Attr[*ErrorDescriptor]

	pattern *regexp.Regexp
}

func newModel(s Settings, pattern *regexp.Regexp) *model {
	m := &model{Model: component.NewModel(s.Settings), pattern: pattern}
	m.value = observable.NewAttr(m.Store, "value", s.Value)
	m.typ = observable.NewAttr(m.Store, "type", s.Type)
	m.policy = observable.NewAttr(m.Store, "policy", s.Policy)
	m.min = observable.NewAttr(m.Store, "min", s.Min)
	m.max = observable.NewAttr(m.Store, "max", s.Max)
	m.live = observable.NewAttr(m.Store, "live", s.Live)
	m.clearButton = observable.NewAttr(m.Store, "clearButton", s.ClearButton)
	m.emptyMessage = observable.NewAttr(m.Store, "emptyMessage", s.EmptyMessage)
	m.invalid = observable.NewAttr(m.Store, "invalidMessage", s.InvalidMessage)
	m.tabIndex = observable.NewAttr(m.Store, "tabIndex", s.TabIndex)
	m.err = observable.NewAttrFunc(m.Store, "error", nil, sameError)
	return m
}

func sameError(a, b *ErrorDescriptor) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// check validates value against the type rules. It returns the value to
// store, normalised for numbers, or a descriptor of the failure.
func (m *model) check(value string) (string, *ErrorDescriptor) {
	switch m.typ.Get() {
	case TypeNumber:
		match := leadingInt.FindString(value)
		n, err := strconv.Atoi(strings.TrimSpace(match))
		if match == "" || err != nil {
			return value, &ErrorDescriptor{Msg: "Value is not a number", Value: value, Code: CodeNaN}
		}
		if max := m.max.Get(); n > max {
			return value, &ErrorDescriptor{Msg: "Value is too big", Value: strconv.Itoa(n), Suggestion: strconv.Itoa(max), Code: CodeTooBig}
		}
		if min := m.min.Get(); n < min {
			return value, &ErrorDescriptor{Msg: "Value is too small", Value: strconv.Itoa(n), Suggestion: strconv.Itoa(min), Code: CodeTooSmall}
		}
		return strconv.Itoa(n), nil
	default:
		if m.pattern != nil && !m.pattern.MatchString(value) {
			return value, &ErrorDescriptor{Msg: "Value doesn't match regexp", Value: value, Code: CodeRegexp}
		}
		return value, nil
	}
}

// setValue stores value when it passes validation. Under the correct policy
// a bounds failure commits the suggestion and keeps the descriptor.
func (m *model) setValue(value string, opts ...observable.SetOption) bool {
	_, force := observable.Apply(opts...)
	if !force {
		normalised, desc := m.check(value)
		if desc != nil {
			m.err.Set(desc)
			if m.policy.Get() == PolicyCorrect && desc.Suggestion != "" {
				m.value.Set(desc.Suggestion, opts...)
			}
			return false
		}
		value = normalised
	}
	m.err.Set(nil)
	m.value.Set(value, opts...)
	return true
}

func (m *model) isEmpty() bool { return m.value.Get() == "" }

func (m *model) isError() bool { return m.err.Get() != nil }
