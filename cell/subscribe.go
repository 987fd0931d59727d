package cell

// Subscription is the handle returned by Listen: one terminal listener
// installation plus its cancellation state.
type Subscription[T comparable] struct {
	src      Observable[T]
	tok      Token
	canceled bool
}

// Listen installs handler as a terminal listener on src. On every change
// reaching src the handler receives the current value and the subscription
// itself, so it may Cancel from inside its own invocation.
//
// The subscription is fully constructed before the listener closure is
// bound over it, which is what makes mid-invocation self-cancellation
// safe.
func Listen[T comparable](src Observable[T], handler func(v T, sub *Subscription[T])) *Subscription[T] {
	s := &Subscription[T]{src: src}
	s.tok = src.AddListener(func() {
		handler(src.Value(), s)
	})
	return s
}

// Canceled reports whether Cancel has run. It never reverts to false.
func (s *Subscription[T]) Canceled() bool {
	return s.canceled
}

// Cancel removes the installed listener. It is idempotent, safe to call
// before any notification has occurred, and safe to call from inside the
// handler while the triggering notification is still being delivered.
// Cancellation is purely local: sibling subscriptions and upstream cells
// are unaffected.
func (s *Subscription[T]) Cancel() {
	if s.canceled {
		return
	}
	s.canceled = true
	if s.src == nil {
		// zero-valued subscription; nothing was ever installed
		return
	}
	s.src.RemoveListener(s.tok)
}

// Dispose makes a Subscription a Disposer so it can join a DisposeGroup.
func (s *Subscription[T]) Dispose() {
	s.Cancel()
}
