package cell_test

import (
	"testing"
	"time"

	"github.com/cellpipe/cellpipe/cell"
	"github.com/stretchr/testify/assert"
)

func TestManualFiresInDueOrder(t *testing.T) {
	sched := cell.NewManual()

	var fired []string
	sched.ScheduleOnce(30*time.Millisecond, func() { fired = append(fired, "b") })
	sched.ScheduleOnce(10*time.Millisecond, func() { fired = append(fired, "a") })
	sched.ScheduleOnce(50*time.Millisecond, func() { fired = append(fired, "c") })

	sched.Advance(40 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, fired)
	sched.Advance(10 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
}

func TestManualStop(t *testing.T) {
	sched := cell.NewManual()

	fired := false
	tm := sched.ScheduleOnce(10*time.Millisecond, func() { fired = true })
	assert.True(t, tm.Stop())
	assert.False(t, tm.Stop())

	sched.Advance(time.Second)
	assert.False(t, fired)
}

func TestManualStopAfterFire(t *testing.T) {
	sched := cell.NewManual()

	tm := sched.ScheduleOnce(10*time.Millisecond, func() {})
	sched.Advance(20 * time.Millisecond)
	assert.False(t, tm.Stop())
}

// a callback may schedule another timer; it fires within the same Advance
// if it comes due before the advance ends
func TestManualReschedulingCallback(t *testing.T) {
	sched := cell.NewManual()

	var fired []string
	sched.ScheduleOnce(10*time.Millisecond, func() {
		fired = append(fired, "first")
		sched.ScheduleOnce(10*time.Millisecond, func() {
			fired = append(fired, "second")
		})
	})

	sched.Advance(15 * time.Millisecond)
	assert.Equal(t, []string{"first"}, fired)
	sched.Advance(5 * time.Millisecond)
	assert.Equal(t, []string{"first", "second"}, fired)
}

func TestWallClockSchedulesOnce(t *testing.T) {
	sched := cell.WallClock()

	fired := make(chan struct{})
	sched.ScheduleOnce(time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		assert.FailNow(t, "timer never fired")
	}
}

func TestWallClockStop(t *testing.T) {
	sched := cell.WallClock()

	tm := sched.ScheduleOnce(time.Hour, func() {
		assert.FailNow(t, "stopped timer fired")
	})
	assert.True(t, tm.Stop())
}
