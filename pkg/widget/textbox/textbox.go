// Package textbox is a validated single-line text or integer input.
package textbox

import (
	"fmt"
	"regexp"
	"time"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/dom"
	"tableflip.dev/uikit/pkg/observable"
	"tableflip.dev/uikit/pkg/schedule"
)

// Kind names the widget in page documents and logs.
const Kind = "textbox"

// Type selects the validation rules.
type Type string

const (
	TypeText   Type = "text"
	TypeNumber Type = "number"
)

// Policy decides what happens to a value that fails validation.
type Policy string

const (
	// PolicyReject keeps the old value and records the error.
	PolicyReject Policy = "reject"
	// PolicyCorrect commits the suggestion when the error carries one.
	PolicyCorrect Policy = "correct"
)

// EventName is the closed set of public textbox events.
type EventName string

const (
	EventChangeValue EventName = "txt:change:value"
	EventError       EventName = "txt:error"
	EventFocus       EventName = "txt:focus"
)

// Event is the payload of every textbox event.
type Event struct {
	Name     EventName
	Textbox  *Textbox
	Value    string
	Previous string
	Error    *ErrorDescriptor
}

// Settings configure a textbox. A zero TabIndex takes the next index from
// the page allocator and a zero Delay takes the host delay.
type Settings struct {
	component.Settings `mapstructure:",squash" yaml:",inline"`

	Type           Type          `mapstructure:"type" yaml:"type" json:"type"`
	Value          string        `mapstructure:"value" yaml:"value" json:"value"`
	Min            int           `mapstructure:"min" yaml:"min" json:"min"`
	Max            int           `mapstructure:"max" yaml:"max" json:"max"`
	Regexp         string        `mapstructure:"regexp" yaml:"regexp" json:"regexp"`
	Live           bool          `mapstructure:"live" yaml:"live" json:"live"`
	ClearButton    bool          `mapstructure:"clearButton" yaml:"clearButton" json:"clearButton"`
	EmptyMessage   string        `mapstructure:"emptyMessage" yaml:"emptyMessage" json:"emptyMessage"`
	InvalidMessage string        `mapstructure:"invalidMessage" yaml:"invalidMessage" json:"invalidMessage"`
	TabIndex       int           `mapstructure:"tabIndex" yaml:"tabIndex" json:"tabIndex" validate:"gte=0"`
	Policy         Policy        `mapstructure:"policy" yaml:"policy" json:"policy" validate:"oneof=reject correct"`
	Delay          time.Duration `mapstructure:"delay" yaml:"delay" json:"delay" validate:"gte=0"`
}

// Defaults returns the settings a textbox starts from.
func Defaults() Settings {
	return Settings{
		Settings: component.Settings{Template: "#tpl_textbox"},
		Type:     TypeText,
		Min:      0,
		Max:      10,
		Policy:   PolicyReject,
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
	if _, err := compile(s.Regexp); err != nil {
		return s, err
	}
	return s, component.Validate(s)
}

func checkType(t Type) error {
	switch t {
	case TypeText, TypeNumber:
		return nil
	}
	return fmt.Errorf("%w: textbox type %q", component.ErrUnsupportedType, t)
}

func compile(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: regexp: %v", component.ErrInvalidSettings, err)
	}
	return re, nil
}

// Textbox is the public handle.
type Textbox struct {
	component.Controller[EventName, Event]

	model  *model
	view   *view
	typing *schedule.Debouncer
}

// New builds a textbox on anchor and renders it.
func New(anchor *dom.Anchor, s Settings, opts ...component.Option) (*Textbox, error) {
	if err := component.CheckAnchor(anchor); err != nil {
		return nil, err
	}
	if err := checkType(s.Type); err != nil {
		return nil, err
	}
	pattern, err := compile(s.Regexp)
	if err != nil {
		return nil, err
	}
	if s.Policy == "" {
		s.Policy = PolicyReject
	}
	o := component.Resolve(Kind, opts...)
	if s.Delay == 0 {
		s.Delay = o.Delay
	}
	if s.TabIndex == 0 {
		s.TabIndex = o.Tabs.NextTab()
	}

	t := &Textbox{
		model:  newModel(s, pattern),
		typing: schedule.NewDebouncer(o.Scheduler, s.Delay),
	}
	t.view = newView(t.model, anchor, t, o, t.typing)
	t.Init(Kind, o, t.model.Model, t.view.View, func() {
		t.typing.Stop()
		t.model = nil
		t.view = nil
	})

	t.model.value.OnChange(t, func(value, previous string) {
		t.Emit(EventChangeValue, Event{Name: EventChangeValue, Textbox: t, Value: value, Previous: previous})
	})

	if err := t.view.initialize(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Textbox) emitError(desc *ErrorDescriptor) {
	t.Emit(EventError, Event{Name: EventError, Textbox: t, Value: t.model.value.Get(), Error: desc})
}

func (t *Textbox) emitFocus() {
	t.Emit(EventFocus, Event{Name: EventFocus, Textbox: t, Value: t.model.value.Get()})
}

func (t *Textbox) handleInputKeyPress(key int, value string) {
	if t.model.IsDisabled() {
		return
	}
	if key == dom.KeyEnter {
		t.model.setValue(value)
	}
}

func (t *Textbox) handleInputBlur(value string) {
	if t.model.IsDisabled() {
		return
	}
	t.model.setValue(value)
}

func (t *Textbox) handleClearButtonClick() {
	t.model.err.Set(nil)
	t.model.setValue("", observable.Force())
}

func (t *Textbox) handleLiveTyping(value string) {
	t.model.setValue(value)
}

// Enable allows input.
func (t *Textbox) Enable() *Textbox {
	t.SetEnabled(true)
	return t
}

// Disable ignores input.
func (t *Textbox) Disable() *Textbox {
	t.SetEnabled(false)
	return t
}

// SetValue validates and stores value. It reports whether value was
// accepted as given.
func (t *Textbox) SetValue(value string) bool {
	t.MustLive()
	return t.model.setValue(value)
}

// Value returns the stored value.
func (t *Textbox) Value() string {
	t.MustLive()
	return t.model.value.Get()
}

// PreviousValue returns the value before the last change.
func (t *Textbox) PreviousValue() string {
	t.MustLive()
	return t.model.value.Previous()
}

// Error returns the descriptor of the last failed value, or nil.
func (t *Textbox) Error() *ErrorDescriptor {
	t.MustLive()
	return t.model.err.Get()
}

// IsEmpty reports whether no value is stored.
func (t *Textbox) IsEmpty() bool {
	t.MustLive()
	return t.model.isEmpty()
}

// SetMax changes the upper bound for number textboxes.
func (t *Textbox) SetMax(max int) *Textbox {
	t.MustLive()
	t.model.max.Set(max)
	return t
}

// SetMin changes the lower bound for number textboxes.
func (t *Textbox) SetMin(min int) *Textbox {
	t.MustLive()
	t.model.min.Set(min)
	return t
}

// Max returns the upper bound.
func (t *Textbox) Max() int {
	t.MustLive()
	return t.model.max.Get()
}

// Min returns the lower bound.
func (t *Textbox) Min() int {
	t.MustLive()
	return t.model.min.Get()
}

// Policy returns how invalid values are handled.
func (t *Textbox) Policy() Policy {
	t.MustLive()
	return t.model.policy.Get()
}

// SetPolicy changes how invalid values are handled. Unknown policies fail
// with ErrInvalidSettings and leave the current one in place.
func (t *Textbox) SetPolicy(p Policy) error {
	t.MustLive()
	switch p {
	case PolicyReject, PolicyCorrect:
	default:
		return fmt.Errorf("%w: textbox policy %q", component.ErrInvalidSettings, p)
	}
	t.model.policy.Set(p)
	return nil
}

// TabIndex returns the tab index rendered into the input.
func (t *Textbox) TabIndex() int {
	t.MustLive()
	return t.model.tabIndex.Get()
}

// Render redraws the textbox from its model.
func (t *Textbox) Render() error {
	t.MustLive()
	return t.view.render()
}
