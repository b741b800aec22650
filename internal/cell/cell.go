// Package cell implements the observable value primitive the binding engine
// works in terms of.
//
// A Cell holds a single typed value and notifies its listeners synchronously
// on every Set. Two cells of the same type can be linked so a change to
// either propagates to the other; the link carries an update-suppression
// guard, so a single external write converges in one propagation step
// instead of echoing back and forth.
//
// Cells are not safe for concurrent use. The whole pipeline runs on one
// goroutine and propagation is synchronous, matching the UI-thread ownership
// rule of the surrounding engine.
package cell

// Observable is the kind-erased read surface of a cell. The property store
// hands cells around as Observable so callers can dispatch on Kind without
// knowing the concrete value type.
type Observable interface {
	Kind() Kind
	Interface() any
}

// listener pairs a subscriber with its registration id, so removal keeps the
// notification order of the remaining subscribers stable.
type listener[T any] struct {
	id int
	fn func(T)
}

// Cell is a single mutable, observable value slot.
type Cell[T any] struct {
	value     T
	kind      Kind
	listeners []listener[T]
	nextID    int
}

// New returns a cell seeded with the given value and no listeners.
func New[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial, kind: kindOf[T]()}
}

// Value returns the current value.
func (c *Cell[T]) Value() T {
	return c.value
}

// Set stores v and synchronously notifies every listener in subscription
// order. It notifies even when v equals the stored value; loop prevention is
// the linker's job, not an equality check.
func (c *Cell[T]) Set(v T) {
	c.value = v
	// Snapshot first so a callback that subscribes or unsubscribes does not
	// disturb the in-flight notification pass.
	active := make([]listener[T], len(c.listeners))
	copy(active, c.listeners)
	for _, l := range active {
		l.fn(v)
	}
}

// AddListener subscribes fn to value changes. The returned function removes
// the subscription; calling it more than once is a no-op.
func (c *Cell[T]) AddListener(fn func(T)) func() {
	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, listener[T]{id: id, fn: fn})
	return func() {
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// Kind reports the kind fixed by the cell's type parameter. A Cell[any]
// reports KindObject regardless of the value it currently holds.
func (c *Cell[T]) Kind() Kind {
	return c.kind
}

// Interface returns the current value boxed as any.
func (c *Cell[T]) Interface() any {
	return c.value
}

// Link subscribes a and b to each other so a change to either propagates to
// the other. A guard shared by both subscriptions suppresses the echo write
// that would otherwise re-enter the link while a propagation is in flight.
// The returned function removes both subscriptions.
func Link[T any](a, b *Cell[T]) func() {
	var syncing bool
	push := func(to *Cell[T]) func(T) {
		return func(v T) {
			if syncing {
				return
			}
			syncing = true
			defer func() { syncing = false }()
			to.Set(v)
		}
	}
	removeA := a.AddListener(push(b))
	removeB := b.AddListener(push(a))
	return func() {
		removeA()
		removeB()
	}
}
