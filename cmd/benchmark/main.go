package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cellpipe/cellpipe/cell"
	"github.com/cespare/xxhash/v2"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	ww    = []int{1, 10, 100}
	hh    = []int{1, 10, 100}
	iters = 100
)

// digest folds every value observed at a pipeline tail, so the compiler
// cannot elide the pipelines and two runs of the same scenario can be
// compared for determinism.
var digest = xxhash.New()

func fold(v int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	digest.Write(buf[:])
}

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")
	benchmarkMapChains(false)

	benchmarkMapChains(true)
	benchmarkCombineFanIn(true)
	benchmarkDebounceBursts(true)

	log.Printf("observed-value digest: %016x", digest.Sum64())
}

func addOne(v int) int {
	return v + 1
}

func benchmarkMapChains(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Map Chains")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := cell.NewSource(1)
			for i := 0; i < w; i++ {
				var last cell.Observable[int] = src
				for j := 0; j < h; j++ {
					last = cell.Map(last, addOne)
				}
				cell.Listen(last, func(v int, _ *cell.Subscription[int]) {
					fold(v)
				})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.SetValue(src.Value() + 1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkCombineFanIn(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Combine Fan-In")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	sum2 := func(a, b int) int { return a + b }
	sum8 := func(a, b, c, d, e, f, g, h int) int {
		return a + b + c + d + e + f + g + h
	}

	tach := tachymeter.New(&tachymeter.Config{Size: iters})
	a := cell.NewSource(0)
	b := cell.NewSource(0)
	pair := cell.Combine2(a, b, sum2)
	cell.Listen[int](pair, func(v int, _ *cell.Subscription[int]) {
		fold(v)
	})
	for i := 0; i < iters; i++ {
		start := time.Now()
		a.SetValue(a.Value() + 1)
		b.SetValue(b.Value() + 1)
		tach.AddTime(time.Since(start))
	}
	appendCalc(tbl, "combine2: both sides", tach)

	tach = tachymeter.New(&tachymeter.Config{Size: iters})
	srcs := make([]*cell.Source[int], 8)
	for i := range srcs {
		srcs[i] = cell.NewSource(0)
	}
	wide := cell.Combine8(
		srcs[0], srcs[1], srcs[2], srcs[3],
		srcs[4], srcs[5], srcs[6], srcs[7],
		sum8,
	)
	cell.Listen[int](wide, func(v int, _ *cell.Subscription[int]) {
		fold(v)
	})
	for i := 0; i < iters; i++ {
		start := time.Now()
		for _, s := range srcs {
			s.SetValue(s.Value() + 1)
		}
		tach.AddTime(time.Since(start))
	}
	appendCalc(tbl, "combine8: all sides", tach)

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkDebounceBursts(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Debounce Bursts")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	const burst = 50

	tach := tachymeter.New(&tachymeter.Config{Size: iters})
	sched := cell.NewManual()
	src := cell.NewSource(0)
	deb := cell.Debounce[int](src, 10*time.Millisecond, sched)
	cell.Listen[int](deb, func(v int, _ *cell.Subscription[int]) {
		fold(v)
	})

	for i := 0; i < iters; i++ {
		start := time.Now()
		for j := 0; j < burst; j++ {
			src.SetValue(src.Value() + 1)
		}
		sched.Advance(10 * time.Millisecond)
		tach.AddTime(time.Since(start))
	}
	appendCalc(tbl, fmt.Sprintf("burst of %d, one publication", burst), tach)

	if shouldRender {
		tbl.Render()
	}
}

func appendCalc(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRows([]table.Row{
		{
			name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		},
	})
}
