package observable

// Attr is a typed attribute registered in a Store. Models declare one Attr
// per field instead of addressing a string-keyed bag.
type Attr[T any] struct {
	store *Store
	key   Key
	value T
	prev  T
	equal func(a, b T) bool
}

// NewAttr registers a comparable attribute; equality is ==.
func NewAttr[T comparable](s *Store, key Key, initial T) *Attr[T] {
	return NewAttrFunc(s, key, initial, func(a, b T) bool { return a == b })
}

// NewAttrFunc registers an attribute whose equality is decided by equal,
// for slices, maps and other non-comparable values.
func NewAttrFunc[T any](s *Store, key Key, initial T, equal func(a, b T) bool) *Attr[T] {
	a := &Attr[T]{store: s, key: key, value: initial, prev: initial, equal: equal}
	s.register(key, a)
	return a
}

// Key returns the attribute name.
func (a *Attr[T]) Key() Key { return a.key }

// Get returns the current value.
func (a *Attr[T]) Get() T { return a.value }

// Previous returns the value held before the last change.
func (a *Attr[T]) Previous() T { return a.prev }

// Set stores v. Subscribers are notified only when the value changed (or
// Force is given) and Silent is absent. It reports whether a notification
// was sent.
func (a *Attr[T]) Set(v T, opts ...SetOption) bool {
	silent, force := Apply(opts...)
	same := a.equal(a.value, v)
	if same && !force {
		return false
	}
	a.prev = a.value
	a.value = v
	if silent {
		return false
	}
	a.store.emit(Change{Key: a.key, Value: v, Previous: a.prev})
	return true
}

// OnChange subscribes fn to changes of this attribute with typed values.
func (a *Attr[T]) OnChange(owner any, fn func(value, previous T)) *Subscription[Key, Change] {
	return a.store.On(a.key, owner, func(Change) {
		fn(a.value, a.prev)
	})
}

func (a *Attr[T]) current() any  { return a.value }
func (a *Attr[T]) previous() any { return a.prev }
