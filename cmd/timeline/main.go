package main

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/cellpipe/cellpipe/cell"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// Replays a burst/quiet scenario against the wall clock and prints when
// each debounced value actually reached the terminal subscription. Bursts
// collapse to their final value; only values followed by a full quiet
// window get published.

const quiet = 250 * time.Millisecond

// lockedScheduler serializes wall-clock debounce callbacks against the
// main goroutine, which holds the same mutex around every SetValue.
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

type publication struct {
	value   int
	elapsed time.Duration
}

func main() {
	log.Print("Replaying debounce timeline, please wait...")

	var (
		mu        sync.Mutex
		published []publication
		start     = time.Now()
	)

	src := cell.NewSource(42)
	deb := cell.Debounce[int](src, quiet, lockedScheduler{mu: &mu, inner: cell.WallClock()})
	sub := cell.Listen[int](deb, func(v int, _ *cell.Subscription[int]) {
		published = append(published, publication{value: v, elapsed: time.Since(start)})
	})

	write := func(v int) {
		mu.Lock()
		defer mu.Unlock()
		src.SetValue(v)
	}

	// A burst of three writes inside one window, then a value that gets a
	// full quiet period, then a final one.
	write(43)
	time.Sleep(quiet / 5)
	write(44)
	time.Sleep(quiet / 5)
	write(45)
	time.Sleep(quiet + quiet/4)
	write(46)
	time.Sleep(quiet + quiet/4)
	write(47)
	time.Sleep(quiet + quiet/4)

	mu.Lock()
	sub.Cancel()
	deb.Dispose()
	rows := published
	mu.Unlock()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"value", "published after (µs)"})
	for _, p := range rows {
		table.Append([]string{
			fmt.Sprintf("%d", p.value),
			humanize.Comma(p.elapsed.Microseconds()),
		})
	}
	table.Render()

	log.Printf("final value %d, %d publications survived the debounce", deb.Value(), len(rows))
}
