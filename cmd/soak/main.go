// Command soak runs the engine headless and reports how long random boards
// survive before the loop detector retires them.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"time"

	"torus-life/internal/eventlog"
	"torus-life/internal/sims/life"
)

// collector tallies detector events and finished runs.
type collector struct {
	shortLoops int
	longLoops  int
	forced     int
	reports    []life.ResetReport
}

func (c *collector) Emit(ev life.Event) {
	switch ev.Kind {
	case life.EventShortLoop:
		c.shortLoops++
	case life.EventLongLoop:
		c.longLoops++
	case life.EventManualReset:
		c.forced++
	}
}

func (c *collector) ResetHappened(rep life.ResetReport) {
	c.reports = append(c.reports, rep)
}

func main() {
	modeFlag := flag.String("mode", "A", "board mode: A (128x64) or B (64x32)")
	runs := flag.Int("runs", 50, "completed runs to collect")
	maxSteps := flag.Int("max-steps", 200000, "step cap per run before forcing a reset")
	seed := flag.Int64("seed", 1, "seed for the first board")
	verbose := flag.Bool("v", false, "log every detector event")
	flag.Parse()

	mode, err := life.ParseMode(*modeFlag)
	if err != nil {
		log.Fatal(err)
	}

	cfg := life.DefaultConfig()
	cfg.Mode = mode
	cfg.Seed = *seed
	eng := life.NewWithConfig(cfg)

	col := &collector{}
	eng.AttachEventSink(col)
	eng.AttachResetSink(col)

	if *verbose {
		recorder := eventlog.New(slog.New(slog.NewTextHandler(os.Stderr, nil)), 256)
		defer recorder.Close()
		eng.AttachEventSink(recorder)
		eng.AttachResetSink(recorder)
	}

	eng.Reset(*seed)

	start := time.Now()
	stepsThisRun := 0
	totalSteps := 0
	for len(col.reports) < *runs {
		before := len(col.reports)
		eng.Step()
		stepsThisRun++
		totalSteps++
		if len(col.reports) != before {
			stepsThisRun = 0
			continue
		}
		if stepsThisRun >= *maxSteps {
			// Most likely a traveler looping forever; retire it.
			eng.ManualReset()
			stepsThisRun = 0
		}
	}
	wall := time.Since(start)

	gens := make([]uint64, len(col.reports))
	var sum uint64
	for i, rep := range col.reports {
		gens[i] = rep.Generations
		sum += rep.Generations
	}
	sort.Slice(gens, func(i, j int) bool { return gens[i] < gens[j] })

	fmt.Printf("mode %s: %d runs, %d steps in %s (%.0f steps/s)\n",
		mode, len(gens), totalSteps, wall.Round(time.Millisecond),
		float64(totalSteps)/wall.Seconds())
	fmt.Printf("generations to reset: min=%d median=%d max=%d mean=%.1f\n",
		gens[0], gens[len(gens)/2], gens[len(gens)-1],
		float64(sum)/float64(len(gens)))
	fmt.Printf("events: %d short loops, %d long loops, %d forced resets\n",
		col.shortLoops, col.longLoops, col.forced)
}
