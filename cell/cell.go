// Package cell builds pipelines of derived observable values on top of a
// plain observable source, using composable combinators (Map, Where,
// Debounce, Combine2 and friends) instead of hand-wired change listeners.
//
// Delivery is synchronous, depth-first and cooperative: setting a source's
// value runs every downstream recomputation and handler on the calling
// goroutine before SetValue returns. The one deferred step is a Debounce
// cell, which republishes through its Scheduler after a quiet period.
//
// Nothing in this package is safe for concurrent use from multiple
// goroutines; a pipeline must be driven from a single goroutine, or the
// caller must serialize all interaction with it (including wall-clock
// debounce callbacks).
package cell

// Token identifies one registered listener. Listeners are added and removed
// by token, never by comparing function values.
type Token uint64

// Observable is the read/listen surface shared by the Source primitive and
// every derived cell.
type Observable[T comparable] interface {
	Value() T
	AddListener(fn func()) Token
	RemoveListener(tok Token)
}

// Disposer is implemented by every derived cell and by Subscription.
// Dispose is idempotent. Disposing a derived cell detaches it from its
// upstream(s), releases any owned timer, and then disposes each upstream
// that is itself a derived cell, so a chain built with combinators tears
// down whole from its tail. A plain *Source is never a Disposer and is
// never touched.
type Disposer interface {
	Dispose()
}

func disposeUpstream(src any) {
	if d, ok := src.(Disposer); ok {
		d.Dispose()
	}
}
