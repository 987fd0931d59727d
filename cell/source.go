package cell

type listenerEntry struct {
	tok Token
	fn  func()
}

// Source is the root observable value a pipeline hangs off. It holds a
// current value and an ordered listener registry, and notifies all
// registered listeners synchronously whenever SetValue changes the value.
type Source[T comparable] struct {
	v         T
	lastToken Token
	listeners []listenerEntry
}

// NewSource returns a Source holding initial.
func NewSource[T comparable](initial T) *Source[T] {
	return &Source[T]{v: initial}
}

func (s *Source[T]) Value() T {
	return s.v
}

// SetValue stores next and notifies listeners iff next differs from the
// current value. Notification is depth-first on the calling goroutine; a
// listener writing back into an upstream observable recurses.
func (s *Source[T]) SetValue(next T) {
	if s.v == next {
		return
	}
	s.v = next
	s.notify()
}

// AddListener registers fn and returns its removal token. fn is invoked
// with no arguments; it reads the current value from the observable.
func (s *Source[T]) AddListener(fn func()) Token {
	s.lastToken++
	s.listeners = append(s.listeners, listenerEntry{tok: s.lastToken, fn: fn})
	return s.lastToken
}

// RemoveListener unregisters the listener added under tok. Removing an
// unknown or already-removed token is a no-op.
func (s *Source[T]) RemoveListener(tok Token) {
	for i, e := range s.listeners {
		if e.tok == tok {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// notify runs every listener registered at the start of the pass, skipping
// any that were removed by an earlier listener of the same pass. Listeners
// added mid-pass first see the next change.
func (s *Source[T]) notify() {
	snapshot := make([]listenerEntry, len(s.listeners))
	copy(snapshot, s.listeners)
	for _, e := range snapshot {
		if !s.registered(e.tok) {
			continue
		}
		e.fn()
	}
}

func (s *Source[T]) registered(tok Token) bool {
	for _, e := range s.listeners {
		if e.tok == tok {
			return true
		}
	}
	return false
}
