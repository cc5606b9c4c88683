package observable

// Bus is a synchronous publish/subscribe hub keyed by a closed set of event
// names. Handlers run in subscription order on the caller's goroutine.
//
// A Bus is not safe for concurrent use; every widget lives on a single UI
// loop and all emits happen there.
type Bus[E comparable, P any] struct {
	subs []*Subscription[E, P]
}

// Subscription is the handle returned by On.
type Subscription[E comparable, P any] struct {
	bus     *Bus[E, P]
	event   E
	owner   any
	fn      func(P)
	removed bool
}

// Cancel detaches the subscription. Calling it more than once is harmless.
func (s *Subscription[E, P]) Cancel() {
	if s == nil || s.removed {
		return
	}
	s.removed = true
	s.bus.compact()
}

// Event returns the event name the subscription listens to.
func (s *Subscription[E, P]) Event() E { return s.event }

// On registers fn for event. The owner groups subscriptions so they can be
// detached together with Off; it may be nil.
func (b *Bus[E, P]) On(event E, owner any, fn func(P)) *Subscription[E, P] {
	sub := &Subscription[E, P]{bus: b, event: event, owner: owner, fn: fn}
	b.subs = append(b.subs, sub)
	return sub
}

// Off detaches subscriptions matching event and owner. The zero event
// matches every event and a nil owner matches every owner, so Off(zero, nil)
// clears the bus and Off(zero, owner) drops everything owner registered.
func (b *Bus[E, P]) Off(event E, owner any) {
	var zero E
	for _, sub := range b.subs {
		if event != zero && sub.event != event {
			continue
		}
		if owner != nil && sub.owner != owner {
			continue
		}
		sub.removed = true
	}
	b.compact()
}

// Emit calls every live handler registered for event. Handlers detached by
// an earlier handler in the same emit are skipped.
func (b *Bus[E, P]) Emit(event E, payload P) {
	if len(b.subs) == 0 {
		return
	}
	snapshot := make([]*Subscription[E, P], len(b.subs))
	copy(snapshot, b.subs)
	for _, sub := range snapshot {
		if sub.removed || sub.event != event {
			continue
		}
		sub.fn(payload)
	}
}

// Len reports the number of live subscriptions.
func (b *Bus[E, P]) Len() int { return len(b.subs) }

// Count reports the live subscriptions held by owner.
func (b *Bus[E, P]) Count(owner any) int {
	n := 0
	for _, sub := range b.subs {
		if sub.owner == owner {
			n++
		}
	}
	return n
}

func (b *Bus[E, P]) compact() {
	live := b.subs[:0]
	for _, sub := range b.subs {
		if !sub.removed {
			live = append(live, sub)
		}
	}
	for i := len(live); i < len(b.subs); i++ {
		b.subs[i] = nil
	}
	b.subs = live
}
