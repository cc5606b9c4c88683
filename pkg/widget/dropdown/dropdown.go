// Package dropdown is a single-choice select with a detachable option list.
package dropdown

import (
	"slices"

	"tableflip.dev/uikit/pkg/component"
	"tableflip.dev/uikit/pkg/dom"
)

// Kind names the widget in page documents and logs.
const Kind = "dropdown"

// Position aligns the option list against the dropdown.
type Position string

const (
	PositionLeft   Position = "left"
	PositionCenter Position = "center"
	PositionRight  Position = "right"
)

// EventName is the closed set of public dropdown events.
type EventName string

const (
	EventChangeValue  EventName = "dd:change:value"
	EventChangeOpened EventName = "dd:change:opened"
)

// Event is the payload of every dropdown event.
type Event struct {
	Name     EventName
	Dropdown *Dropdown
	Value    string
	Opened   bool
}

// Option is one selectable entry.
type Option struct {
	Name  string `mapstructure:"name" yaml:"name" json:"name"`
	Value string `mapstructure:"value" yaml:"value" json:"value"`
}

// Settings configure a dropdown.
type Settings struct {
	component.Settings `mapstructure:",squash" yaml:",inline"`

	Value          string   `mapstructure:"value" yaml:"value" json:"value"`
	Opened         bool     `mapstructure:"opened" yaml:"opened" json:"opened"`
	OpenOnClick    bool     `mapstructure:"openOnClick" yaml:"openOnClick" json:"openOnClick"`
	OpenOnHover    bool     `mapstructure:"openOnHover" yaml:"openOnHover" json:"openOnHover"`
	ListPosition   Position `mapstructure:"listPosition" yaml:"listPosition" json:"listPosition" validate:"oneof=left center right"`
	InitialMessage string   `mapstructure:"initialMessage" yaml:"initialMessage" json:"initialMessage"`
	ClassName      string   `mapstructure:"className" yaml:"className" json:"className"`
	ListTemplate   string   `mapstructure:"listTemplate" yaml:"listTemplate" json:"listTemplate" validate:"required"`
	Options        []Option `mapstructure:"options" yaml:"options" json:"options"`
	Exclusions     []string `mapstructure:"exclusions" yaml:"exclusions" json:"exclusions"`
}

// Defaults returns the settings a dropdown starts from.
func Defaults() Settings {
	return Settings{
		Settings:     component.Settings{Template: "#tpl_dropdown"},
		OpenOnClick:  true,
		OpenOnHover:  true,
		ListPosition: PositionRight,
		ListTemplate: "#tpl_dropdown_list",
	}
}

// Decode merges raw settings over Defaults.
func Decode(raw map[string]any) (Settings, error) {
	s := Defaults()
	if err := component.Decode(raw, &s); err != nil {
		return s, err
	}
	return s, component.Validate(s)
}

// ListOffset places a list of listWidth under an anchor of anchorWidth. It
// returns the horizontal offset from the anchor's left edge and the width
// the list should take; the list is never narrower than the anchor.
func ListOffset(position Position, anchorWidth, listWidth float64) (left, width float64) {
	width = max(anchorWidth, listWidth)
	switch position {
	case PositionCenter:
		left = -(width - anchorWidth) / 2
	case PositionRight:
		left = anchorWidth - width
	}
	return left, width
}

// Dropdown is the public handle.
type Dropdown struct {
	component.Controller[EventName, Event]

	model *model
	view  *view
}

// New builds a dropdown on anchor, renders it and its option list.
func New(anchor *dom.Anchor, s Settings, opts ...component.Option) (*Dropdown, error) {
	if err := component.CheckAnchor(anchor); err != nil {
		return nil, err
	}
	o := component.Resolve(Kind, opts...)
	d := &Dropdown{model: newModel(s)}
	d.view = newView(d.model, anchor, d, o)
	d.Init(Kind, o, d.model.Model, d.view.View, func() {
		d.view.list.close(anchor)
		d.view.list.Destroy(d, nil)
		d.model = nil
		d.view = nil
	})

	d.model.value.OnChange(d, func(value, _ string) {
		d.Emit(EventChangeValue, Event{Name: EventChangeValue, Dropdown: d, Value: value, Opened: d.model.opened.Get()})
	})
	d.model.opened.OnChange(d, func(opened, _ bool) {
		d.Emit(EventChangeOpened, Event{Name: EventChangeOpened, Dropdown: d, Value: d.model.value.Get(), Opened: opened})
	})

	if err := d.view.initialize(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dropdown) handleClickEvent() {
	m := d.model
	if !m.IsDisabled() && m.openOnClick.Get() {
		m.toggleOpened()
	}
}

func (d *Dropdown) handleMouseOverEvent() {
	m := d.model
	if !m.IsDisabled() && m.openOnHover.Get() {
		m.open()
	}
}

// handleMouseOutEvent closes a hover dropdown once the pointer left both the
// dropdown and its list.
func (d *Dropdown) handleMouseOutEvent(e *dom.Event) {
	m := d.model
	if m.IsDisabled() || !m.openOnHover.Get() {
		return
	}
	if e.Related != nil && (d.view.Anchor().Contains(e.Related) || d.view.list.Anchor().Contains(e.Related)) {
		return
	}
	m.close()
}

func (d *Dropdown) handleListMouseOutEvent(e *dom.Event) {
	m := d.model
	if !m.openOnHover.Get() {
		return
	}
	if e.Related != nil && d.view.list.Anchor().Contains(e.Related) {
		return
	}
	m.close()
}

func (d *Dropdown) handleCloseListLayerClickEvent() {
	d.model.close()
}

func (d *Dropdown) handleListOptionClickEvent(value string) {
	m := d.model
	if m.isExcluded(value) {
		return
	}
	m.value.Set(value)
	m.close()
}

// List returns the anchor holding the rendered options.
func (d *Dropdown) List() *dom.Anchor {
	d.MustLive()
	return d.view.list.Anchor()
}

// CloseLayer returns the page-covering layer that closes the list on click,
// or nil while the list is closed.
func (d *Dropdown) CloseLayer() *dom.Anchor {
	d.MustLive()
	return d.view.list.closeLayer
}

// Enable allows opening the list.
func (d *Dropdown) Enable() *Dropdown {
	d.SetEnabled(true)
	return d
}

// Disable ignores pointer input.
func (d *Dropdown) Disable() *Dropdown {
	d.SetEnabled(false)
	return d
}

// Open shows the list.
func (d *Dropdown) Open() *Dropdown {
	d.MustLive()
	d.model.open()
	return d
}

// Close hides the list.
func (d *Dropdown) Close() *Dropdown {
	d.MustLive()
	d.model.close()
	return d
}

// ToggleOpen flips the list visibility.
func (d *Dropdown) ToggleOpen() *Dropdown {
	d.MustLive()
	d.model.toggleOpened()
	return d
}

// IsOpened reports whether the list is shown.
func (d *Dropdown) IsOpened() bool {
	d.MustLive()
	return d.model.opened.Get()
}

// Value returns the selected value.
func (d *Dropdown) Value() string {
	d.MustLive()
	return d.model.value.Get()
}

// SetValue selects value. Values missing from the options render the
// initial message.
func (d *Dropdown) SetValue(value string) *Dropdown {
	d.MustLive()
	d.model.value.Set(value)
	return d
}

// Selected returns the option matching the value.
func (d *Dropdown) Selected() (Option, bool) {
	d.MustLive()
	return d.model.selected()
}

// Options returns the options with exclusions marked disabled.
func (d *Dropdown) Options() []ListItem {
	d.MustLive()
	return d.model.listItems()
}

// SetOptions replaces the options.
func (d *Dropdown) SetOptions(options []Option) *Dropdown {
	d.MustLive()
	d.model.options.Set(slices.Clone(options))
	return d
}

// SetExclusions replaces the values shown disabled in the list.
func (d *Dropdown) SetExclusions(values []string) *Dropdown {
	d.MustLive()
	d.model.exclusions.Set(slices.Clone(values))
	return d
}

// IsExcluded reports whether value is disabled in the list.
func (d *Dropdown) IsExcluded(value string) bool {
	d.MustLive()
	return d.model.isExcluded(value)
}

// ListPosition returns where the list aligns.
func (d *Dropdown) ListPosition() Position {
	d.MustLive()
	return d.model.listPosition.Get()
}

// ClassName returns the extra class put on the list and close layer.
func (d *Dropdown) ClassName() string {
	d.MustLive()
	return d.model.className.Get()
}

// Render redraws the dropdown and its list.
func (d *Dropdown) Render() error {
	d.MustLive()
	if err := d.view.render(); err != nil {
		return err
	}
	return d.view.list.render()
}
