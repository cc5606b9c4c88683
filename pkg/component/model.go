package component

import "tableflip.dev/uikit/pkg/observable"

// Attribute keys shared by every model.
const (
	KeyDisabled observable.Key = "disabled"
	KeyTemplate observable.Key = "template"
)

// Model is the state every widget model embeds: an observable store with a
// disabled flag and the name of its skin.
type Model struct {
	*observable.Store

	disabled *observable.Attr[bool]
	template *observable.Attr[string]
}

// NewModel builds the base model from settings. The template name is not
// resolved here; an unknown skin fails on first render.
func NewModel(s Settings) *Model {
	store := observable.NewStore()
	return &Model{
		Store:    store,
		disabled: observable.NewAttr(store, KeyDisabled, s.Disabled),
		template: observable.NewAttr(store, KeyTemplate, s.Template),
	}
}

// Enable allows user interaction.
func (m *Model) Enable() { m.disabled.Set(false) }

// Disable blocks user interaction.
func (m *Model) Disable() { m.disabled.Set(true) }

// IsDisabled reports the disabled flag.
func (m *Model) IsDisabled() bool { return m.disabled.Get() }

// IsEnabled is the negation of IsDisabled.
func (m *Model) IsEnabled() bool { return !m.disabled.Get() }

// TemplateName returns the configured skin name.
func (m *Model) TemplateName() string { return m.template.Get() }

// OnDisabledChange subscribes fn to enable/disable transitions.
func (m *Model) OnDisabledChange(owner any, fn func(disabled bool)) {
	m.disabled.OnChange(owner, func(v, _ bool) { fn(v) })
}
