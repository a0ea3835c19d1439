package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cellgraph/cellgraph/graph"
	"github.com/cellgraph/cellgraph/store"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100
)

func main() {
	profile := flag.String("profile", "", "write a CPU profile to this path")
	flag.Parse()

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchmarkPropagate(true)
}

func benchmarkPropagate(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Cellgraph propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			run := buildChains(w, h)

			for i := 0; i < iters; i++ {
				start := time.Now()
				run(i)
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

// buildChains wires w parallel chains of h computed cells, each chain ending
// in an effect, all hanging off one root. The returned func performs a single
// root write.
func buildChains(w, h int) func(i int) {
	st := store.New(func(ref graph.CellRef, err error) {
		log.Panic(err)
	})
	src := store.Signal(st, 1)
	for i := 0; i < w; i++ {
		var last store.Readable[int] = src
		for j := 0; j < h; j++ {
			prev := last
			last = store.Computed1(st, prev, func(v int) int {
				return v + 1
			})
		}
		store.Effect(st, func() error {
			last.Value()
			return nil
		}, last)
	}
	return func(i int) {
		src.SetValue(src.Value() + 1)
	}
}
