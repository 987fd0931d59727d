package cell

import "time"

type debounceState uint8

const (
	idle debounceState = iota
	pending
)

// DebounceCell republishes the latest upstream value once a quiet period
// has elapsed since the last upstream change. Every change while Pending
// restarts the window, so a burst collapses to its final value.
type DebounceCell[T comparable] struct {
	out      Source[T]
	src      Observable[T]
	tok      Token
	sched    Scheduler
	quiet    time.Duration
	state    debounceState
	timer    Timer
	seq      uint64
	latest   T
	disposed bool
}

// Debounce derives a quiet-period cell from src. The initial value is
// src's current value, published immediately without waiting out a window.
func Debounce[T comparable](src Observable[T], quiet time.Duration, sched Scheduler) *DebounceCell[T] {
	c := &DebounceCell[T]{src: src, quiet: quiet, sched: sched}
	c.out.v = src.Value()
	c.tok = src.AddListener(c.restart)
	return c
}

// restart remembers the new upstream value and (re)opens the quiet window.
func (c *DebounceCell[T]) restart() {
	c.latest = c.src.Value()
	if c.state == pending {
		c.timer.Stop()
	}
	c.seq++
	seq := c.seq
	c.timer = c.sched.ScheduleOnce(c.quiet, func() { c.fire(seq) })
	c.state = pending
}

// fire ignores stale invocations: a wall-clock callback can still arrive
// after the window was restarted or the cell disposed, when Stop returned
// false because the callback was already in flight behind the caller's
// serialization lock.
func (c *DebounceCell[T]) fire(seq uint64) {
	if c.disposed || seq != c.seq {
		return
	}
	c.state = idle
	c.timer = nil
	c.out.SetValue(c.latest)
}

func (c *DebounceCell[T]) Value() T { return c.out.Value() }

func (c *DebounceCell[T]) AddListener(fn func()) Token { return c.out.AddListener(fn) }

func (c *DebounceCell[T]) RemoveListener(tok Token) { c.out.RemoveListener(tok) }

// Dispose detaches from upstream and stops any pending timer, so a
// disposed cell never publishes again and holds no live timer.
func (c *DebounceCell[T]) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.src.RemoveListener(c.tok)
	if c.state == pending {
		c.timer.Stop()
		c.timer = nil
		c.state = idle
	}
	disposeUpstream(c.src)
}
