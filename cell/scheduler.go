package cell

import "time"

// Timer is a single-shot timer handle. Stop reports whether it prevented
// the callback from running; stopping an already-fired or already-stopped
// timer returns false.
type Timer interface {
	Stop() bool
}

// Scheduler is the timer facility Debounce defers through.
type Scheduler interface {
	ScheduleOnce(d time.Duration, fn func()) Timer
}

type wallClock struct{}

type wallTimer struct {
	t *time.Timer
}

// WallClock returns the real-time Scheduler. Callbacks fire on the runtime
// timer goroutine; when a pipeline is driven from another goroutine the
// caller must serialize (see the package comment).
func WallClock() Scheduler {
	return wallClock{}
}

func (wallClock) ScheduleOnce(d time.Duration, fn func()) Timer {
	return wallTimer{t: time.AfterFunc(d, fn)}
}

func (w wallTimer) Stop() bool {
	return w.t.Stop()
}

// Manual is a deterministic Scheduler for tests: time only moves when
// Advance is called, and due callbacks run synchronously inside Advance on
// the calling goroutine, in due-time order.
type Manual struct {
	now     time.Duration
	pending []*manualTimer
}

type manualTimer struct {
	due     time.Duration
	fn      func()
	fired   bool
	stopped bool
}

// NewManual returns a Manual scheduler with its clock at zero and no
// timers pending.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) ScheduleOnce(d time.Duration, fn func()) Timer {
	t := &manualTimer{due: m.now + d, fn: fn}
	m.pending = append(m.pending, t)
	return t
}

// Advance moves the clock forward by d, running every callback that comes
// due along the way. A callback may schedule further timers; those are
// honored within the same Advance if they come due before it ends.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.earliest(target)
		if next == nil {
			break
		}
		m.now = next.due
		next.fired = true
		next.fn()
	}
	m.now = target
}

func (m *Manual) earliest(limit time.Duration) *manualTimer {
	var found *manualTimer
	live := m.pending[:0]
	for _, t := range m.pending {
		if t.fired || t.stopped {
			continue
		}
		live = append(live, t)
	}
	m.pending = live
	for _, t := range m.pending {
		if t.due > limit {
			continue
		}
		if found == nil || t.due < found.due {
			found = t
		}
	}
	return found
}

func (t *manualTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
