package cell_test

import (
	"sync"
	"testing"
	"time"

	"github.com/cellpipe/cellpipe/cell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quiet = 500 * time.Millisecond

// a burst collapses to its last value, published one quiet window after
// the final change; every restart pushes the window out
func TestDebounceBurstScenario(t *testing.T) {
	sched := cell.NewManual()
	src := cell.NewSource(42)
	deb := cell.Debounce[int](src, quiet, sched)
	require.Equal(t, 42, deb.Value())

	var published []int
	cell.Listen[int](deb, func(v int, _ *cell.Subscription[int]) {
		published = append(published, v)
	})

	sched.Advance(100 * time.Millisecond)
	src.SetValue(43) // t=100, due t=600
	sched.Advance(100 * time.Millisecond)
	src.SetValue(44) // t=200, due t=700
	sched.Advance(350 * time.Millisecond)
	src.SetValue(45) // t=550, restarts; due t=1050
	assert.Empty(t, published)

	sched.Advance(650 * time.Millisecond) // fires at t=1050
	assert.Equal(t, []int{45}, published)

	src.SetValue(46) // t=1200, due t=1700
	sched.Advance(quiet)
	assert.Equal(t, []int{45, 46}, published)
	assert.Equal(t, 46, deb.Value())
}

func TestDebounceSingleChange(t *testing.T) {
	sched := cell.NewManual()
	src := cell.NewSource("a")
	deb := cell.Debounce[string](src, quiet, sched)

	var published []string
	cell.Listen[string](deb, func(v string, _ *cell.Subscription[string]) {
		published = append(published, v)
	})

	src.SetValue("b")
	assert.Empty(t, published)
	assert.Equal(t, "a", deb.Value())

	sched.Advance(quiet - time.Millisecond)
	assert.Empty(t, published)
	sched.Advance(time.Millisecond)
	assert.Equal(t, []string{"b"}, published)
}

// a change back to the debounced cell's current value publishes nothing
// when the window closes, because outputs elide equal values
func TestDebounceRoundTripToSameValue(t *testing.T) {
	sched := cell.NewManual()
	src := cell.NewSource(1)
	deb := cell.Debounce[int](src, quiet, sched)

	callCount := 0
	cell.Listen[int](deb, func(int, *cell.Subscription[int]) {
		callCount++
	})

	src.SetValue(2)
	src.SetValue(1)
	sched.Advance(quiet)
	assert.Equal(t, 0, callCount)
}

// disposing while Pending stops the timer; nothing fires afterwards
func TestDebounceDisposeStopsPendingTimer(t *testing.T) {
	sched := cell.NewManual()
	src := cell.NewSource(1)
	deb := cell.Debounce[int](src, quiet, sched)

	callCount := 0
	cell.Listen[int](deb, func(int, *cell.Subscription[int]) {
		callCount++
	})

	src.SetValue(2)
	deb.Dispose()
	sched.Advance(quiet * 2)
	assert.Equal(t, 0, callCount)
	assert.Equal(t, 1, deb.Value())

	// detached from upstream too
	src.SetValue(3)
	sched.Advance(quiet * 2)
	assert.Equal(t, 0, callCount)

	deb.Dispose() // idempotent
}

// lockedScheduler serializes wall-clock callbacks against a goroutine
// that holds the same mutex around its writes.
type lockedScheduler struct {
	mu    *sync.Mutex
	inner cell.Scheduler
}

func (s lockedScheduler) ScheduleOnce(d time.Duration, fn func()) cell.Timer {
	return s.inner.ScheduleOnce(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		fn()
	})
}

// a wall-clock callback that fired before Dispose but was blocked on the
// caller's lock must not publish once it gets in
func TestDebounceDisposeBeatsBlockedWallClockCallback(t *testing.T) {
	var mu sync.Mutex
	src := cell.NewSource(1)
	deb := cell.Debounce[int](src, time.Millisecond, lockedScheduler{mu: &mu, inner: cell.WallClock()})

	var published []int
	cell.Listen[int](deb, func(v int, _ *cell.Subscription[int]) {
		published = append(published, v)
	})

	mu.Lock()
	src.SetValue(2)
	time.Sleep(50 * time.Millisecond) // timer fires, callback blocks on mu
	deb.Dispose()
	mu.Unlock()

	time.Sleep(50 * time.Millisecond) // let the blocked callback drain
	mu.Lock()
	defer mu.Unlock()
	assert.Empty(t, published)
	assert.Equal(t, 1, deb.Value())
}

// inFlightScheduler hands every callback to the test and reports Stop as
// too late, modeling a timer whose callback is already in flight.
type inFlightScheduler struct {
	fns []func()
}

type inFlightTimer struct{}

func (s *inFlightScheduler) ScheduleOnce(d time.Duration, fn func()) cell.Timer {
	s.fns = append(s.fns, fn)
	return inFlightTimer{}
}

func (inFlightTimer) Stop() bool { return false }

// an unstoppable callback from a superseded window is stale: it must not
// publish early, and the restarted window must still publish
func TestDebounceRestartDiscardsInFlightCallback(t *testing.T) {
	sched := &inFlightScheduler{}
	src := cell.NewSource(1)
	deb := cell.Debounce[int](src, quiet, sched)

	var published []int
	cell.Listen[int](deb, func(v int, _ *cell.Subscription[int]) {
		published = append(published, v)
	})

	src.SetValue(2)
	src.SetValue(3) // restarts; the first callback is already in flight
	require.Len(t, sched.fns, 2)

	sched.fns[0]()
	assert.Empty(t, published)

	sched.fns[1]()
	assert.Equal(t, []int{3}, published)
}

// an unstoppable callback arriving after Dispose publishes nothing
func TestDebounceDisposeDiscardsInFlightCallback(t *testing.T) {
	sched := &inFlightScheduler{}
	src := cell.NewSource(1)
	deb := cell.Debounce[int](src, quiet, sched)

	callCount := 0
	cell.Listen[int](deb, func(int, *cell.Subscription[int]) {
		callCount++
	})

	src.SetValue(2)
	deb.Dispose()
	require.Len(t, sched.fns, 1)

	sched.fns[0]()
	assert.Equal(t, 0, callCount)
	assert.Equal(t, 1, deb.Value())
}
