// Package observable provides the state container shared by every widget
// model: a Store of typed attributes that notifies subscribers per key.
package observable

import "sort"

// Key names an attribute inside a Store.
type Key string

// Change is delivered to key subscribers after an attribute changes. The
// store has already recorded Previous when subscribers run.
type Change struct {
	Key      Key
	Value    any
	Previous any
}

// SetOption adjusts a single Set call.
type SetOption func(*setOptions)

type setOptions struct {
	silent bool
	force  bool
}

// Silent updates the value without notifying subscribers.
func Silent() SetOption {
	return func(o *setOptions) { o.silent = true }
}

// Force notifies subscribers even when the value did not change.
func Force() SetOption {
	return func(o *setOptions) { o.force = true }
}

// Apply returns the combined effect of opts; useful to callers that forward
// options through their own setters.
func Apply(opts ...SetOption) (silent, force bool) {
	o := setOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o.silent, o.force
}

type entry interface {
	current() any
	previous() any
}

// Store holds named attributes and the per-key change bus.
type Store struct {
	bus   Bus[Key, Change]
	attrs map[Key]entry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{attrs: make(map[Key]entry)}
}

func (s *Store) register(key Key, e entry) {
	if _, ok := s.attrs[key]; ok {
		panic("observable: duplicate attribute " + string(key))
	}
	s.attrs[key] = e
}

// Get returns the current value for key, or nil when the key is unknown.
func (s *Store) Get(key Key) any {
	if e, ok := s.attrs[key]; ok {
		return e.current()
	}
	return nil
}

// Previous returns the value key held before its last change.
func (s *Store) Previous(key Key) any {
	if e, ok := s.attrs[key]; ok {
		return e.previous()
	}
	return nil
}

// Has reports whether key is a registered attribute.
func (s *Store) Has(key Key) bool {
	_, ok := s.attrs[key]
	return ok
}

// Keys lists registered attribute names in sorted order.
func (s *Store) Keys() []Key {
	keys := make([]Key, 0, len(s.attrs))
	for k := range s.attrs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Snapshot copies every current value into a plain map, keyed by attribute
// name. Templates render from it.
func (s *Store) Snapshot() map[string]any {
	out := make(map[string]any, len(s.attrs))
	for k, e := range s.attrs {
		out[string(k)] = e.current()
	}
	return out
}

// On subscribes fn to changes of key.
func (s *Store) On(key Key, owner any, fn func(Change)) *Subscription[Key, Change] {
	return s.bus.On(key, owner, fn)
}

// Off detaches subscriptions for key and owner; see Bus.Off for matching.
func (s *Store) Off(key Key, owner any) {
	s.bus.Off(key, owner)
}

// Subscribers reports how many live subscriptions owner holds.
func (s *Store) Subscribers(owner any) int {
	return s.bus.Count(owner)
}

// Trigger notifies key subscribers without touching state.
func (s *Store) Trigger(key Key) {
	e, ok := s.attrs[key]
	if !ok {
		return
	}
	s.bus.Emit(key, Change{Key: key, Value: e.current(), Previous: e.previous()})
}

// Signal notifies subscribers of a key that is not an attribute, for
// model-level notices such as "the value was reverted".
func (s *Store) Signal(key Key, value any) {
	s.bus.Emit(key, Change{Key: key, Value: value, Previous: value})
}

func (s *Store) emit(c Change) {
	s.bus.Emit(c.Key, c)
}
